package service

import (
	"context"
	"testing"
	"time"

	catalog "github.com/louisbranch/sessionsearch/internal/services/catalog/domain"
	"github.com/louisbranch/sessionsearch/internal/services/catalog/query"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func testEngine(t *testing.T) *query.Engine {
	t.Helper()
	records := []map[string]any{
		{
			"code":     "AIM236-S",
			"title":    "AI session",
			"abstract": "Build with foundation models",
			"speakers": []any{"Jane Roe"},
			"attributes": map[string]any{
				"level":    "300 – Advanced",
				"services": []any{"Amazon Bedrock"},
				"topics":   []any{"Generative AI"},
			},
		},
		{
			"code":     "DVT222-S",
			"title":    "Developer productivity",
			"abstract": "Ship code faster",
			"attributes": map[string]any{
				"level":    "200 – Intermediate",
				"services": []any{"AWS CodeBuild"},
			},
		},
	}
	sessions := make([]catalog.Session, 0, len(records))
	for _, record := range records {
		session, err := catalog.SessionFromMap(record)
		if err != nil {
			t.Fatalf("build session: %v", err)
		}
		sessions = append(sessions, session)
	}
	return query.NewEngine(sessions)
}

// connectInMemory serves a new server over in-memory transports and returns
// a connected client session.
func connectInMemory(t *testing.T, ctx context.Context) *mcp.ClientSession {
	t.Helper()
	server, err := New(testEngine(t))
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	if _, err := server.Connect(ctx, serverTransport); err != nil {
		t.Fatalf("connect server: %v", err)
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	clientCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	session, err := client.Connect(clientCtx, clientTransport, nil)
	if err != nil {
		t.Fatalf("connect client: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}
