package importer

func init() {
	Register(&wordListAdapter{
		id:          "dwyl-words-en",
		dictID:      "words-en",
		description: "dwyl english-words, alphabetic entries (~370k words)",
		url:         "https://raw.githubusercontent.com/dwyl/english-words/master/words_alpha.txt",
		license:     "Unlicense",
		source:      "dwyl/english-words",
	})
}
