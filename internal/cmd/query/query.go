// Package query runs one MCP tool against a dataset through an in-process
// client and prints the tool's text result.
package query

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	entrypoint "github.com/louisbranch/sessionsearch/internal/platform/cmd"
	apperrors "github.com/louisbranch/sessionsearch/internal/platform/errors"
	"github.com/louisbranch/sessionsearch/internal/platform/timeouts"
	mcpservice "github.com/louisbranch/sessionsearch/internal/services/mcp/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Config holds query command configuration.
type Config struct {
	DataPath string `env:"DATA_PATH" envDefault:"data/sessions.msgpack"`
	Tool     string
	Args     string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DataPath, "data", cfg.DataPath, "session dataset path (.json, .msgpack or .db)")
	fs.StringVar(&cfg.Tool, "tool", "", "tool name, e.g. search_sessions")
	fs.StringVar(&cfg.Args, "args", "{}", "tool arguments as a JSON object")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.Tool) == "" {
		return Config{}, apperrors.New(apperrors.CodeInvalidArgument, "tool is required")
	}
	return cfg, nil
}

// Run loads the dataset, calls the configured tool and writes its text
// content to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	arguments, err := decodeArguments(cfg.Args)
	if err != nil {
		return err
	}

	engine, err := mcpservice.LoadCatalog(ctx, cfg.DataPath)
	if err != nil {
		return err
	}
	server, err := mcpservice.New(engine)
	if err != nil {
		return err
	}

	session, err := connect(ctx, server)
	if err != nil {
		return err
	}
	defer session.Close()

	callCtx, cancel := context.WithTimeout(ctx, timeouts.ClientCall)
	defer cancel()

	if err := requireTool(callCtx, session, cfg.Tool); err != nil {
		return err
	}
	result, err := session.CallTool(callCtx, &mcp.CallToolParams{Name: cfg.Tool, Arguments: arguments})
	if err != nil {
		return fmt.Errorf("call %s: %w", cfg.Tool, err)
	}

	text := textOf(result)
	if result.IsError {
		return fmt.Errorf("tool %s failed: %s", cfg.Tool, text)
	}
	_, err = fmt.Fprintln(out, text)
	return err
}

func connect(ctx context.Context, server *mcpservice.Server) (*mcp.ClientSession, error) {
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	if _, err := server.Connect(ctx, serverTransport); err != nil {
		return nil, fmt.Errorf("connect server: %w", err)
	}
	client := mcp.NewClient(&mcp.Implementation{Name: entrypoint.ServiceQuery, Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		return nil, fmt.Errorf("connect client: %w", err)
	}
	return session, nil
}

// requireTool fails with UNKNOWN_OPERATION when the server does not list name.
func requireTool(ctx context.Context, session *mcp.ClientSession, name string) error {
	result, err := session.ListTools(ctx, nil)
	if err != nil {
		return fmt.Errorf("list tools: %w", err)
	}
	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	if slices.Contains(names, name) {
		return nil
	}
	slices.Sort(names)
	return apperrors.WithMetadata(apperrors.CodeUnknownOperation, "unknown tool",
		map[string]string{"tool": name, "available": strings.Join(names, ",")})
}

func decodeArguments(raw string) (map[string]any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string]any{}, nil
	}
	var arguments map[string]any
	if err := json.Unmarshal([]byte(raw), &arguments); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidArgument, "args must be a JSON object", err)
	}
	if arguments == nil {
		arguments = map[string]any{}
	}
	return arguments, nil
}

func textOf(result *mcp.CallToolResult) string {
	var parts []string
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}
