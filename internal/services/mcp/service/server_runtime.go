package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/sessionsearch/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Run is the service entrypoint for MCP and blocks until context cancellation.
// stdio serves a single local client; HTTP serves streamable sessions.
func Run(ctx context.Context, cfg Config, catalog domain.Catalog) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	server, err := New(catalog)
	if err != nil {
		return err
	}

	switch cfg.Transport {
	case TransportStdio:
		return server.serveWithTransport(ctx, &mcp.StdioTransport{})
	case TransportHTTP:
		return server.serveHTTP(ctx, cfg)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// serveWithTransport runs the MCP server over one transport. Context
// cancellation is a clean shutdown.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

func (s *Server) serveHTTP(ctx context.Context, cfg Config) error {
	transport := NewHTTPTransport(cfg.HTTPAddr, s.mcpServer)
	transport.applyConfig(cfg)
	return transport.Start(ctx)
}
