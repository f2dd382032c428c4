package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/hazyhaar/unemph/pkg/api"
)

// cmdMCP serves the MCP tools on stdin/stdout. Logs go to stderr or the log file.
func cmdMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	cfgPath := configFlag(fs)
	fs.Parse(args)

	a, err := setup(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stdio := server.NewStdioServer(api.NewMCPServer(a.svc, a.logger, version))
	stdio.SetErrorLogger(slog.NewLogLogger(a.logger.Handler(), slog.LevelError))
	a.logger.Info("MCP stdio session starting")
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}

