package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

type config struct {
	Addr            string        `yaml:"addr" env:"UNEMPH_ADDR"`
	DictsDir        string        `yaml:"dicts_dir" env:"UNEMPH_DICTS_DIR"`
	DefaultDict     string        `yaml:"default_dict" env:"UNEMPH_DEFAULT_DICT"`
	SourcesDB       string        `yaml:"sources_db" env:"UNEMPH_SOURCES_DB"`
	CheckInterval   time.Duration `yaml:"check_interval" env:"UNEMPH_CHECK_INTERVAL"`
	StemCleanTokens bool          `yaml:"stem_clean_tokens" env:"UNEMPH_STEM_CLEAN_TOKENS"`
	FoldAccents     bool          `yaml:"fold_accents" env:"UNEMPH_FOLD_ACCENTS"`
	Cache           cacheConfig   `yaml:"cache" env-prefix:"UNEMPH_CACHE_"`
	Log             logConfig     `yaml:"log" env-prefix:"UNEMPH_LOG_"`
}

type cacheConfig struct {
	Size int           `yaml:"size" env:"SIZE"`
	TTL  time.Duration `yaml:"ttl" env:"TTL"`
}

type logConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
	File  string `yaml:"file" env:"FILE"`
}

func defaultConfig() config {
	return config{
		Addr:          ":8421",
		DictsDir:      "dicts",
		SourcesDB:     "dicts/sources.db",
		CheckInterval: 24 * time.Hour,
		Cache:         cacheConfig{Size: 4096, TTL: time.Hour},
		Log:           logConfig{Level: "info"},
	}
}

// loadConfig applies defaults, then the YAML file at path (a missing file is
// not an error), then UNEMPH_* environment overrides.
func loadConfig(path string) (config, bool, error) {
	cfg := defaultConfig()

	found := true
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		found = false
	case err != nil:
		return cfg, false, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, true, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, found, fmt.Errorf("read env: %w", err)
	}
	if cfg.Cache.Size < 0 {
		return cfg, found, fmt.Errorf("cache.size must not be negative (got %d)", cfg.Cache.Size)
	}
	return cfg, found, nil
}
