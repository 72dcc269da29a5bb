package domain

// DefaultDatasetURL is the Stanford NMT page hosting the preprocessed
// IWSLT'15 English-Vietnamese corpus.
const DefaultDatasetURL = "https://nlp.stanford.edu/projects/nmt/data/iwslt15.en-vi"

// DatasetFiles lists the corpus and vocabulary files the download step
// fetches into the data directory, in fetch order: each prefix paired for
// the source and target language.
func DatasetFiles(src, tgt string) []string {
	prefixes := []string{TrainPrefixName, DevPrefixName, TestPrefixName, VocabPrefixName}
	files := make([]string, 0, len(prefixes)*2)
	for _, p := range prefixes {
		files = append(files, p+"."+src, p+"."+tgt)
	}
	return files
}
