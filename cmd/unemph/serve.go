package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hazyhaar/unemph/pkg/api"
	"github.com/hazyhaar/unemph/pkg/importer"
)

func cmdServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := configFlag(fs)
	fs.Parse(args)

	a, err := setup(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	logger := a.logger

	srv := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           api.NewRouter(a.svc, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// SIGHUP: hot reload dictionaries.
	// SIGINT/SIGTERM: graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("unemph listening", "addr", a.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		sighup := make(chan os.Signal, 1)
		signal.Notify(sighup, syscall.SIGHUP)
		defer signal.Stop(sighup)
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-sighup:
				logger.Info("SIGHUP received, reloading dictionaries")
				if err := a.svc.Reload(); err != nil {
					logger.Error("reload failed", "error", err)
					continue
				}
				reg := a.svc.Registry()
				logger.Info("dictionaries reloaded", "count", reg.DictCount(), "words", reg.TotalWords())
			}
		}
	})

	if a.cfg.SourcesDB != "" && a.cfg.CheckInterval > 0 {
		sdb, err := importer.OpenSourceDB(a.cfg.SourcesDB)
		if err != nil {
			logger.Warn("source checks disabled", "error", err)
		} else {
			defer sdb.Close()
			if err := sdb.Seed(importer.All()); err != nil {
				logger.Warn("seed sources", "error", err)
			}
			checker := importer.NewChecker(sdb, a.svc.Registry(), logger, a.cfg.CheckInterval)
			g.Go(func() error {
				checker.Start(ctx)
				return nil
			})
		}
	}

	return g.Wait()
}
