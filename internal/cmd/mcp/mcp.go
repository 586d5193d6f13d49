// Package mcp configures the MCP command and serves the session catalog
// over stdio or HTTP.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	entrypoint "github.com/louisbranch/sessionsearch/internal/platform/cmd"
	mcpservice "github.com/louisbranch/sessionsearch/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	DataPath     string   `env:"DATA_PATH"         envDefault:"data/sessions.msgpack"`
	Transport    string   `env:"MCP_TRANSPORT"     envDefault:"stdio"`
	HTTPAddr     string   `env:"MCP_HTTP_ADDR"     envDefault:"localhost:8081"`
	AllowedHosts []string `env:"MCP_ALLOWED_HOSTS" envSeparator:","`
	AuthToken    string   `env:"MCP_AUTH_TOKEN"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DataPath, "data", cfg.DataPath, "session dataset path (.json, .msgpack or .db)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	cfg.Transport = strings.ToLower(strings.TrimSpace(cfg.Transport))
	switch mcpservice.TransportKind(cfg.Transport) {
	case mcpservice.TransportStdio, mcpservice.TransportHTTP:
	default:
		return Config{}, fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
	if strings.TrimSpace(cfg.DataPath) == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	return cfg, nil
}

// Run loads the dataset and serves the MCP tools until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		engine, err := mcpservice.LoadCatalog(ctx, cfg.DataPath)
		if err != nil {
			return err
		}
		log.Printf("loaded %d sessions from %s", engine.Len(), cfg.DataPath)

		return mcpservice.Run(ctx, mcpservice.Config{
			Transport:    mcpservice.TransportKind(cfg.Transport),
			HTTPAddr:     cfg.HTTPAddr,
			AllowedHosts: cfg.AllowedHosts,
			AuthToken:    cfg.AuthToken,
		}, engine)
	})
}
