package mcp

import (
	"flag"
	"slices"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.DataPath != "data/sessions.msgpack" {
		t.Fatalf("expected default data path, got %q", cfg.DataPath)
	}
	if cfg.HTTPAddr != "localhost:8081" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Transport != "stdio" {
		t.Fatalf("expected default transport stdio, got %q", cfg.Transport)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("SESSIONSEARCH_DATA_PATH", "env.json")
	t.Setenv("SESSIONSEARCH_MCP_HTTP_ADDR", "env-http")
	t.Setenv("SESSIONSEARCH_MCP_ALLOWED_HOSTS", "a.example.com,b.example.com")
	t.Setenv("SESSIONSEARCH_MCP_AUTH_TOKEN", "secret")

	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	args := []string{"-data", "flag.db", "-http-addr", "flag-http", "-transport", "HTTP"}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.DataPath != "flag.db" {
		t.Fatalf("expected flag data path, got %q", cfg.DataPath)
	}
	if cfg.HTTPAddr != "flag-http" {
		t.Fatalf("expected flag http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Transport != "http" {
		t.Fatalf("expected transport http, got %q", cfg.Transport)
	}
	if !slices.Equal(cfg.AllowedHosts, []string{"a.example.com", "b.example.com"}) {
		t.Fatalf("allowed hosts = %v", cfg.AllowedHosts)
	}
	if cfg.AuthToken != "secret" {
		t.Fatalf("auth token = %q", cfg.AuthToken)
	}
}

func TestParseConfigRejectsUnknownTransport(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-transport", "websocket"}); err == nil {
		t.Fatal("expected error for unsupported transport")
	}
}
