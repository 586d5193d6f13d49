package main

import (
	"context"
	"flag"
	"log"
	"os"

	entrypoint "github.com/louisbranch/sessionsearch/internal/platform/cmd"
	"github.com/louisbranch/sessionsearch/internal/platform/config"
	sessionimporter "github.com/louisbranch/sessionsearch/internal/tools/importer/sessions"
)

func main() {
	log.SetPrefix("[IMPORT] ")
	cfg, err := sessionimporter.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	err = entrypoint.RunWithTelemetry(context.Background(), entrypoint.ServiceImport, func(ctx context.Context) error {
		return sessionimporter.Run(ctx, cfg, os.Stdout)
	})
	if err != nil {
		config.Exitf("Error: %v", err)
	}
}
