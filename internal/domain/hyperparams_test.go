package domain

import (
	"reflect"
	"testing"
)

func TestDefaultHyperparams(t *testing.T) {
	hp := DefaultHyperparams()

	if hp.SourceLang != "vi" || hp.TargetLang != "en" {
		t.Errorf("language pair = %v-%v, want vi-en", hp.SourceLang, hp.TargetLang)
	}
	if hp.NumTrainSteps != 12000 {
		t.Errorf("NumTrainSteps = %v, want 12000", hp.NumTrainSteps)
	}
	if hp.StepsPerStats != 100 {
		t.Errorf("StepsPerStats = %v, want 100", hp.StepsPerStats)
	}
	if hp.NumLayers != 2 || hp.NumUnits != 128 {
		t.Errorf("model shape = %dx%d, want 2x128", hp.NumLayers, hp.NumUnits)
	}
	if hp.Dropout != 0.2 {
		t.Errorf("Dropout = %v, want 0.2", hp.Dropout)
	}
	if hp.Metrics != "bleu" {
		t.Errorf("Metrics = %v, want bleu", hp.Metrics)
	}
	if hp.BatchSize != 32 {
		t.Errorf("BatchSize = %v, want 32", hp.BatchSize)
	}
}

func TestHyperparams_Args(t *testing.T) {
	hp := DefaultHyperparams()
	ws := NewWorkspace("data/nmt")

	got := hp.Args(ws)
	want := []string{
		"--src=vi",
		"--tgt=en",
		"--vocab_prefix=data/nmt/nmt_data/vocab",
		"--train_prefix=data/nmt/nmt_data/train",
		"--dev_prefix=data/nmt/nmt_data/tst2012",
		"--test_prefix=data/nmt/nmt_data/tst2013",
		"--out_dir=data/nmt/nmt_model",
		"--num_train_steps=12000",
		"--steps_per_stats=100",
		"--num_layers=2",
		"--num_units=128",
		"--dropout=0.2",
		"--metrics=bleu",
		"--batch_size=32",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Args() = %v, want %v", got, want)
	}
}

func TestHyperparams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Hyperparams)
		wantErr bool
	}{
		{"defaults are valid", func(h *Hyperparams) {}, false},
		{"missing source lang", func(h *Hyperparams) { h.SourceLang = "" }, true},
		{"missing target lang", func(h *Hyperparams) { h.TargetLang = "" }, true},
		{"zero train steps", func(h *Hyperparams) { h.NumTrainSteps = 0 }, true},
		{"negative stats interval", func(h *Hyperparams) { h.StepsPerStats = -1 }, true},
		{"zero layers", func(h *Hyperparams) { h.NumLayers = 0 }, true},
		{"zero units", func(h *Hyperparams) { h.NumUnits = 0 }, true},
		{"dropout at one", func(h *Hyperparams) { h.Dropout = 1.0 }, true},
		{"dropout zero is valid", func(h *Hyperparams) { h.Dropout = 0 }, false},
		{"negative dropout", func(h *Hyperparams) { h.Dropout = -0.1 }, true},
		{"missing metric", func(h *Hyperparams) { h.Metrics = "" }, true},
		{"zero batch size", func(h *Hyperparams) { h.BatchSize = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hp := DefaultHyperparams()
			tt.mutate(&hp)
			err := hp.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
