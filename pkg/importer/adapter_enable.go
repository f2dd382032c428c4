package importer

func init() {
	Register(&wordListAdapter{
		id:          "enable-en",
		dictID:      "enable-en",
		description: "ENABLE word game list (Enhanced North American Benchmark Lexicon)",
		url:         "https://raw.githubusercontent.com/dolph/dictionary/master/enable1.txt",
		license:     "Public Domain",
		source:      "ENABLE",
	})
}
