package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/nmtkit/nmtlaunch"
	"github.com/nmtkit/nmtlaunch/internal/cliconfig"
)

const helpDescription = `
Launch a neural machine translation training run against an external
framework's command-line entry point.

Highlights:
  - Sets up the data/nmt workspace (model dir, data dir) and keeps it stable
    across runs so training can resume from its own checkpoints.
  - Pass "1" as the only argument to download the IWSLT'15 vi-en corpus
    into the data dir before training; anything else skips the download.
  - Ships the stock tutorial hyperparameters as defaults; override any of
    them via config file, NMTLAUNCH_* env vars, or flags.
  - Reports checkpoints as the trainer saves them.
`

var longHelp = strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  nmtlaunch            # train with data already in place
  nmtlaunch 1          # download the dataset first, then train
  nmtlaunch --base-dir /scratch/nmt --train-steps 50000
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "nmtlaunch [download]",
		Short:   "Launch an NMT training run with the stock vi-en configuration",
		Long:    longHelp,
		Example: exampleUsage,
		Args:    cobra.MaximumNArgs(1),
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.nmtlaunch/config.toml), then apply flag overrides
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// The positional download trigger outranks file and env, like a
			// flag. Only the literal "1" enables the download; any other
			// value skips it, deliberately without a validation error.
			if len(args) > 0 {
				cfg.Download = args[0] == "1"
				changed["download"] = true
			}

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Apply environment variables (NMTLAUNCH_*)
			// These override file config but are overridden by flags (checked via changed map)
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			// Validate and set derived defaults
			if err := cfg.Validate(); err != nil {
				return err
			}

			log.Info().Interface("config", cfg).Msg("configuration")

			// Setup signal handling for graceful shutdown
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				log.Info().Msg("received signal, stopping...")
				cancel()
			}()

			return nmtlaunch.Run(ctx, cfg)
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.nmtlaunch/config.toml)")
	root.Flags().StringVar(&cfg.BaseDir, "base-dir", cfg.BaseDir, "workspace base directory holding nmt_model and nmt_data")
	root.Flags().StringVar(&cfg.Python, "python", cfg.Python, "python interpreter used to run the trainer")
	root.Flags().StringVar(&cfg.TrainerModule, "trainer-module", cfg.TrainerModule, "trainer entry-point module passed to -m")

	root.Flags().StringVar(&cfg.DatasetURL, "dataset-url", cfg.DatasetURL, "base URL for the dataset download (override only for mirrors)")
	if err := root.Flags().MarkHidden("dataset-url"); err != nil {
		log.Info().Err(err).Msg("failed to hide dataset-url flag")
	}
	root.Flags().DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "per-file HTTP timeout for the dataset download")

	root.Flags().StringVar(&cfg.SourceLang, "src", cfg.SourceLang, "source language code")
	root.Flags().StringVar(&cfg.TargetLang, "tgt", cfg.TargetLang, "target language code")
	root.Flags().IntVar(&cfg.TrainSteps, "train-steps", cfg.TrainSteps, "total training steps")
	root.Flags().IntVar(&cfg.StepsPerStats, "steps-per-stats", cfg.StepsPerStats, "statistics logging interval in steps")
	root.Flags().IntVar(&cfg.NumLayers, "num-layers", cfg.NumLayers, "encoder/decoder depth in layers")
	root.Flags().IntVar(&cfg.NumUnits, "num-units", cfg.NumUnits, "hidden width in units")
	root.Flags().Float64Var(&cfg.Dropout, "dropout", cfg.Dropout, "dropout rate")
	root.Flags().StringVar(&cfg.Metrics, "metrics", cfg.Metrics, "evaluation metric")
	root.Flags().IntVar(&cfg.BatchSize, "batch-size", cfg.BatchSize, "training batch size")

	root.Flags().BoolVar(&cfg.WatchCheckpoints, "watch-checkpoints", cfg.WatchCheckpoints, "log checkpoints as the trainer saves them")
	root.Flags().BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "print the trainer command line and exit")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("nmtlaunch")
		os.Exit(nmtlaunch.ExitCode(err))
	}
}
