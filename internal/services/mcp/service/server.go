package service

import (
	"context"
	"fmt"

	"github.com/louisbranch/sessionsearch/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies the MCP server implementation.
	serverName = "sessionsearch"
	// serverVersion identifies the MCP server version.
	serverVersion = "1.0.0"
)

// TransportKind selects how the MCP server is exposed.
type TransportKind string

const (
	TransportStdio TransportKind = "stdio"
	TransportHTTP  TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	Transport TransportKind
	HTTPAddr  string // HTTP server address (e.g., "localhost:8081"). Defaults to localhost:8081 for HTTP transport.
	// AllowedHosts extends the loopback-only Host/Origin allowlist.
	AllowedHosts []string
	// AuthToken, when set, is required as a Bearer token on HTTP requests.
	AuthToken string
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
	catalog   domain.Catalog
}

// New creates an MCP server whose tools and resources answer from catalog.
func New(catalog domain.Catalog) (*Server, error) {
	if catalog == nil {
		return nil, fmt.Errorf("session catalog is required")
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		CompletionHandler: domain.CompletionHandler(catalog),
	})

	server := &Server{mcpServer: mcpServer, catalog: catalog}
	for _, module := range newMCPRegistrationModules(catalog) {
		if err := module.register(mcpServerRegistrationAdapter{server: mcpServer}); err != nil {
			return nil, fmt.Errorf("register MCP module %q: %w", module.name, err)
		}
	}
	return server, nil
}

// Connect attaches one client transport to the server, typically an
// in-memory transport for an in-process client.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	if s == nil || s.mcpServer == nil {
		return nil, fmt.Errorf("MCP server is not configured")
	}
	return s.mcpServer.Connect(ctx, transport, nil)
}
