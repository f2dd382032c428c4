package importer

// Frequency-ranked, so the resulting dictionary favours common words.
func init() {
	Register(&wordListAdapter{
		id:          "google-10000-en",
		dictID:      "common-en",
		description: "10,000 most common English words from the Google Trillion Word Corpus",
		url:         "https://raw.githubusercontent.com/first20hours/google-10000-english/master/google-10000-english-no-swears.txt",
		license:     "LDC (derived)",
		source:      "first20hours/google-10000-english",
	})
}
