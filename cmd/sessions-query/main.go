package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	querycmd "github.com/louisbranch/sessionsearch/internal/cmd/query"
	entrypoint "github.com/louisbranch/sessionsearch/internal/platform/cmd"
	"github.com/louisbranch/sessionsearch/internal/platform/config"
)

// main invokes one catalog tool and prints its result.
func main() {
	log.SetPrefix("[QUERY] ")
	cfg, err := querycmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceQuery, func(ctx context.Context) error {
		return querycmd.Run(ctx, cfg, os.Stdout)
	})
	if err != nil {
		config.Exitf("Error: %v", err)
	}
}
