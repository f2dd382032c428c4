package importer

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hazyhaar/unemph/pkg/doubles"
)

// Dicts reports which dictionaries are loaded. *doubles.Registry implements it.
type Dicts interface {
	Get(id string) (*doubles.Dictionary, bool)
}

// Freshness is what one check learned about a word list source.
type Freshness struct {
	AdapterID string
	DictID    string
	Status    int       // HTTP status of the HEAD request, 0 on network error
	Modified  time.Time // Last-Modified, zero when the server sends none
	Installed bool      // DictID is loaded
	Stale     bool      // installed, and the source changed after the last import
	Err       error
}

// Reachable reports whether the source answered with a 2xx or 3xx status.
func (f Freshness) Reachable() bool {
	return f.Status >= 200 && f.Status < 400
}

// Checker watches the upstream word lists behind the installed dictionaries.
// Each round it sends a HEAD to every source, stores status and Last-Modified,
// and flags dictionaries whose source changed since they were imported.
type Checker struct {
	sources  *SourceDB
	dicts    Dicts
	logger   *slog.Logger
	interval time.Duration
	client   *http.Client
}

// NewChecker returns a Checker over sources. dicts may be nil, in which case
// no dictionary counts as installed and nothing is flagged stale.
func NewChecker(sources *SourceDB, dicts Dicts, logger *slog.Logger, interval time.Duration) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{
		sources:  sources,
		dicts:    dicts,
		logger:   logger,
		interval: interval,
		client: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Start checks immediately, then every interval until ctx is done.
func (c *Checker) Start(ctx context.Context) {
	tick := time.NewTicker(c.interval)
	defer tick.Stop()
	for {
		if _, err := c.CheckAll(ctx); err != nil && ctx.Err() == nil {
			c.logger.Error("word list check failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
		}
	}
}

// CheckAll checks every source once, in adapter order, and logs a summary.
func (c *Checker) CheckAll(ctx context.Context) ([]Freshness, error) {
	sources, err := c.sources.ListSources()
	if err != nil {
		return nil, err
	}

	out := make([]Freshness, 0, len(sources))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		out = append(out, c.check(ctx, src))
	}
	c.summarize(out)
	return out, nil
}

func (c *Checker) check(ctx context.Context, src Source) Freshness {
	f := Freshness{AdapterID: src.AdapterID, DictID: src.DictID}
	if c.dicts != nil {
		_, f.Installed = c.dicts.Get(src.DictID)
	}
	f.Status, f.Modified, f.Err = c.head(ctx, src.SourceURL)

	errMsg := ""
	if f.Err != nil {
		errMsg = f.Err.Error()
	}
	if err := c.sources.UpdateCheck(src.AdapterID, f.Status, f.Modified, errMsg); err != nil {
		c.logger.Error("word list check: store result", "adapter", src.AdapterID, "error", err)
	}

	if f.Installed && src.LastImport != nil && !f.Modified.IsZero() {
		f.Stale = f.Modified.Unix() > *src.LastImport
	}
	return f
}

func (c *Checker) summarize(results []Freshness) {
	var reachable, installed, stale int
	for _, f := range results {
		if f.Installed {
			installed++
		}
		if !f.Reachable() {
			c.logger.Warn("word list source unreachable",
				"adapter", f.AdapterID, "status", f.Status, "error", f.Err)
			continue
		}
		reachable++
		if f.Stale {
			stale++
			c.logger.Warn("word list out of date",
				"dict", f.DictID,
				"adapter", f.AdapterID,
				"modified", f.Modified.UTC().Format(time.RFC3339),
			)
		}
	}
	c.logger.Info("word list check complete",
		"sources", len(results),
		"reachable", reachable,
		"installed", installed,
		"stale", stale,
	)
}

// head returns the status and Last-Modified time of url.
func (c *Checker) head(ctx context.Context, url string) (int, time.Time, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("HEAD %s: %w", url, err)
	}
	resp.Body.Close()

	var mod time.Time
	if lm := resp.Header.Get("Last-Modified"); lm != "" {
		if t, err := http.ParseTime(lm); err == nil {
			mod = t
		}
	}
	return resp.StatusCode, mod, nil
}
