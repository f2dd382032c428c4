package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hazyhaar/unemph/pkg/doubles"
	"github.com/hazyhaar/unemph/pkg/normalize"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "serve":
		err = cmdServe(os.Args[2:])
	case "mcp":
		err = cmdMCP(os.Args[2:])
	case "repl":
		err = cmdREPL(os.Args[2:])
	case "normalize":
		err = cmdNormalize(os.Args[2:])
	case "import":
		err = cmdImport(os.Args[2:])
	case "version":
		fmt.Println(version)
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "unemph %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: unemph <command> [flags]

Commands:
  serve       Start the HTTP server
  mcp         Serve MCP tools over stdio
  repl        Normalize lines read from stdin until "q"
  normalize   Normalize the tokens given as arguments
  import      Build double-letter dictionaries from public word lists
  version     Print the version
`)
}

// app is what every command needs once configuration is loaded.
type app struct {
	cfg    config
	logger *slog.Logger
	closer io.Closer
	svc    *normalize.Service
}

func (a *app) Close() error {
	return a.closer.Close()
}

// configFlag registers the -config flag shared by all commands.
func configFlag(fs *flag.FlagSet) *string {
	return fs.String("config", "config.yaml", "path to config file")
}

// setup loads configuration, builds the logger and loads every dictionary.
func setup(cfgPath string) (*app, error) {
	cfg, found, err := loadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	logger, closer, err := newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	if !found {
		logger.Info("no config file, using defaults", "path", cfgPath)
	}

	reg := doubles.NewRegistry(cfg.DictsDir)
	if err := reg.Load(); err != nil {
		closer.Close()
		return nil, fmt.Errorf("load dictionaries: %w", err)
	}
	if cfg.DefaultDict != "" {
		if _, ok := reg.Get(cfg.DefaultDict); !ok {
			closer.Close()
			return nil, fmt.Errorf("default_dict %q is not loaded", cfg.DefaultDict)
		}
	}
	logger.Info("dictionaries loaded", "count", reg.DictCount(), "words", reg.TotalWords())

	svc := normalize.NewService(reg, normalize.ServiceOptions{
		Options: normalize.Options{
			StemCleanTokens: cfg.StemCleanTokens,
			FoldAccents:     cfg.FoldAccents,
			Logger:          logger,
		},
		DefaultDict: cfg.DefaultDict,
		CacheSize:   cfg.Cache.Size,
		CacheTTL:    cfg.Cache.TTL,
	})
	return &app{cfg: cfg, logger: logger, closer: closer, svc: svc}, nil
}
