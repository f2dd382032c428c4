package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hazyhaar/unemph/pkg/doubles"
	"github.com/hazyhaar/unemph/pkg/importer"
)

func cmdImport(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	cfgPath := configFlag(fs)
	source := fs.String("source", "", "adapter ID to import (e.g. dwyl-words-en)")
	all := fs.Bool("all", false, "import all available sources")
	outputDir := fs.String("output-dir", "", "output directory for dictionaries (default: dicts_dir)")
	setURL := fs.String("set-url", "", "override the source URL of -source instead of importing")
	check := fs.Bool("check", false, "check every source for changes since its last import")
	fs.Parse(args)

	cfg, _, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	if *outputDir == "" {
		*outputDir = cfg.DictsDir
	}
	dbPath := cfg.SourcesDB
	if dbPath == "" {
		dbPath = filepath.Join(*outputDir, "sources.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create sources db dir: %w", err)
	}

	// Open source DB and seed defaults.
	sdb, err := importer.OpenSourceDB(dbPath)
	if err != nil {
		return err
	}
	defer sdb.Close()

	if err := sdb.Seed(importer.All()); err != nil {
		return fmt.Errorf("seed sources: %w", err)
	}

	if *setURL != "" {
		if *source == "" {
			return fmt.Errorf("-set-url needs -source")
		}
		if err := sdb.SetURL(*source, *setURL); err != nil {
			return err
		}
		fmt.Printf("[%s] source URL -> %s\n", *source, *setURL)
		return nil
	}

	if *check {
		return runCheck(sdb, *outputDir)
	}

	if !*all && *source == "" {
		printSources(sdb)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	if *all {
		failed := 0
		for _, a := range importer.All() {
			if err := runImport(ctx, sdb, a, *outputDir); err != nil {
				fmt.Fprintf(os.Stderr, "[%s] ERROR: %v\n", a.ID(), err)
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d imports failed", failed, len(importer.All()))
		}
		return nil
	}

	a, err := importer.Get(*source)
	if err != nil {
		fmt.Println("\nAvailable sources:")
		for _, a := range importer.All() {
			fmt.Printf("  %s\n", a.ID())
		}
		return err
	}
	return runImport(ctx, sdb, a, *outputDir)
}

// runImport imports one source, verifies the result loads, and records it.
func runImport(ctx context.Context, sdb *importer.SourceDB, a importer.Adapter, outputDir string) error {
	url, err := sdb.GetURL(a.ID())
	if err != nil {
		return err
	}

	fmt.Printf("[%s] importing...\n", a.ID())
	if err := a.Import(ctx, url, outputDir); err != nil {
		return err
	}

	dictDir := filepath.Join(outputDir, a.DictID())
	d, err := doubles.LoadDictionary(dictDir)
	if err != nil {
		return fmt.Errorf("verify %s: %w", dictDir, err)
	}
	if err := sdb.RecordImport(a.ID(), d.Words()); err != nil {
		return err
	}
	fmt.Printf("[%s] OK -> %s/ (%d words, %d codes)\n", a.ID(), dictDir, d.Words(), d.Codes())
	return nil
}

func printSources(sdb *importer.SourceDB) {
	fmt.Println("Available sources:")
	fmt.Println()
	sources, _ := sdb.ListSources()
	for _, src := range sources {
		status := ""
		if src.LastStatus != nil {
			status = fmt.Sprintf("  [%d]", *src.LastStatus)
		}
		if src.LastWords != nil {
			status += fmt.Sprintf("  %d words", *src.LastWords)
		}
		if src.Stale() {
			status += "  (source changed since import)"
		}
		fmt.Printf("  %-18s  %s  (-> %s)%s\n", src.AdapterID, src.Description, src.DictID, status)
	}
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  unemph import -source <id> [-output-dir <dir>]")
	fmt.Println("  unemph import -all [-output-dir <dir>]")
	fmt.Println("  unemph import -source <id> -set-url <url>")
	fmt.Println("  unemph import -check [-output-dir <dir>]")
}

// runCheck checks every source once against the dictionaries in dictsDir.
func runCheck(sdb *importer.SourceDB, dictsDir string) error {
	reg := doubles.NewRegistry(dictsDir)
	if err := reg.Load(); err != nil {
		return fmt.Errorf("load dictionaries: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	results, err := importer.NewChecker(sdb, reg, nil, 0).CheckAll(ctx)
	if err != nil {
		return err
	}
	writeFreshness(os.Stdout, results)
	return nil
}

func writeFreshness(w io.Writer, results []importer.Freshness) {
	for _, f := range results {
		state := "not installed"
		switch {
		case !f.Reachable():
			state = "unreachable"
		case f.Stale:
			state = "stale"
		case f.Installed:
			state = "up to date"
		}
		fmt.Fprintf(w, "  %-18s  %-10s  %s\n", f.AdapterID, f.DictID, state)
	}
}
