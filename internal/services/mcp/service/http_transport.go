package service

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/louisbranch/sessionsearch/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var listenTCP = net.Listen

// defaultHTTPAddr keeps the HTTP transport bound to loopback unless configured.
const defaultHTTPAddr = "localhost:8081"

// HTTPTransport serves the MCP server over streamable HTTP on /mcp, guarded by
// a Host/Origin allowlist and an optional bearer token.
type HTTPTransport struct {
	addr         string
	allowedHosts map[string]struct{}
	apiToken     string
	server       *mcp.Server
	httpServer   *http.Server
}

// NewHTTPTransport creates an HTTP transport for server. An empty addr binds
// to localhost:8081.
func NewHTTPTransport(addr string, server *mcp.Server) *HTTPTransport {
	if strings.TrimSpace(addr) == "" {
		addr = defaultHTTPAddr
	}
	return &HTTPTransport{
		addr:         addr,
		allowedHosts: map[string]struct{}{},
		server:       server,
	}
}

func (t *HTTPTransport) applyConfig(cfg Config) {
	if t == nil {
		return
	}
	t.allowedHosts = parseAllowedHosts(cfg.AllowedHosts)
	t.apiToken = strings.TrimSpace(cfg.AuthToken)
}

// Handler returns the HTTP handler for the MCP endpoints.
func (t *HTTPTransport) Handler() http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return t.server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", t.guard(streamable))
	mux.HandleFunc("/mcp/health", t.handleHealth)
	return mux
}

// guard applies host validation and bearer auth before the MCP handler.
func (t *HTTPTransport) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := t.validateLocalRequest(r); err != nil {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		if !t.authorizeRequest(w, r) {
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Start serves HTTP until ctx is cancelled, then shuts down gracefully.
func (t *HTTPTransport) Start(ctx context.Context) error {
	if t.server == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	listener, err := listenTCP("tcp", t.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", t.addr, err)
	}

	t.httpServer = &http.Server{
		Handler:           t.Handler(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	log.Printf("Starting MCP HTTP server on %s", listener.Addr())

	errChan := make(chan error, 1)
	go func() {
		if err := t.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Printf("Shutting down MCP HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := t.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("HTTP server error: %w", err)
	}
}

// handleHealth handles GET /mcp/health for health checks.
func (t *HTTPTransport) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := t.validateLocalRequest(r); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		log.Printf("Failed to write health response: %v", err)
	}
}
