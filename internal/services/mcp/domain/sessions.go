package domain

import (
	"context"

	"github.com/louisbranch/sessionsearch/internal/platform/pagination"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchSessionsInput represents the MCP tool input for searching sessions.
type SearchSessionsInput struct {
	Query  string `json:"query" jsonschema:"text matched against title, abstract, and speaker names; empty lists every session"`
	Limit  int    `json:"limit,omitempty" jsonschema:"page size (default 20, max 100)"`
	Cursor string `json:"cursor,omitempty" jsonschema:"nextCursor from a previous page"`
}

// SearchSessionsTool defines the MCP tool schema for searching sessions.
func SearchSessionsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "search_sessions",
		Description: "Searches sessions by case-insensitive text in the title, abstract, or speaker names. Returns code, title, and abstract for each match.",
		InputSchema: inputSchema[SearchSessionsInput](limitBounds(sessionPageSize)),
	}
}

// SearchSessionsHandler executes a session text search.
func SearchSessionsHandler(c Catalog) mcp.ToolHandlerFor[SearchSessionsInput, SessionPage] {
	return Traced("search_sessions", func(ctx context.Context, _ *mcp.CallToolRequest, input SearchSessionsInput) (*mcp.CallToolResult, SessionPage, error) {
		if err := catalogUnavailable(ctx, c); err != nil {
			return nil, SessionPage{}, err
		}
		page := c.SearchSessions(input.Query, pagination.ClampPageSize(input.Limit, sessionPageSize), input.Cursor)
		result, err := jsonResult(page)
		if err != nil {
			return nil, SessionPage{}, err
		}
		return result, page, nil
	}, sessionPageTotal)
}

// SessionDetailsInput represents the MCP tool input for a session lookup.
type SessionDetailsInput struct {
	SessionCode string `json:"session_code" jsonschema:"exact session code, for example AIM236-S"`
}

// SessionDetailsResult carries the detail view, or null when no session has
// the requested code.
type SessionDetailsResult struct {
	Session any `json:"session" jsonschema:"session details without internal bookkeeping fields, or null when not found"`
}

// SessionDetailsTool defines the MCP tool schema for a session lookup.
func SessionDetailsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_session_details",
		Description: "Returns every field of one session by exact code, with speakers normalized. Returns null when the code is unknown.",
		InputSchema: inputSchema[SessionDetailsInput](),
	}
}

// SessionDetailsHandler executes a session lookup.
func SessionDetailsHandler(c Catalog) mcp.ToolHandlerFor[SessionDetailsInput, SessionDetailsResult] {
	return Traced("get_session_details", func(ctx context.Context, _ *mcp.CallToolRequest, input SessionDetailsInput) (*mcp.CallToolResult, SessionDetailsResult, error) {
		if err := catalogUnavailable(ctx, c); err != nil {
			return nil, SessionDetailsResult{}, err
		}
		output := SessionDetailsResult{}
		if detail, ok := c.GetSessionDetails(input.SessionCode); ok {
			output.Session = detail
		}
		result, err := jsonResult(output.Session)
		if err != nil {
			return nil, SessionDetailsResult{}, err
		}
		return result, output, nil
	}, func(output SessionDetailsResult) int {
		if output.Session == nil {
			return 0
		}
		return 1
	})
}

// FilterSessionsInput represents the MCP tool input for filtering sessions.
type FilterSessionsInput struct {
	Filter string `json:"filter" jsonschema:"AIP-160 filter, for example level = \"300\" AND services:\"bedrock\""`
	Limit  int    `json:"limit,omitempty" jsonschema:"page size (default 20, max 100)"`
	Cursor string `json:"cursor,omitempty" jsonschema:"nextCursor from a previous page"`
}

// FilterSessionsTool defines the MCP tool schema for filtering sessions.
func FilterSessionsTool() *mcp.Tool {
	return &mcp.Tool{
		Name: "filter_sessions",
		Description: "Filters sessions with an AIP-160 expression. Supported fields: code, title, abstract, type, level, topics, " +
			"services, industries, roles, segments, areas_of_interest, features, speaker. Operators: =, !=, : (contains), AND, OR, NOT.",
		InputSchema: inputSchema[FilterSessionsInput](limitBounds(sessionPageSize)),
	}
}

// FilterSessionsHandler executes a filtered session listing.
func FilterSessionsHandler(c Catalog) mcp.ToolHandlerFor[FilterSessionsInput, SessionPage] {
	return Traced("filter_sessions", func(ctx context.Context, _ *mcp.CallToolRequest, input FilterSessionsInput) (*mcp.CallToolResult, SessionPage, error) {
		if err := catalogUnavailable(ctx, c); err != nil {
			return nil, SessionPage{}, err
		}
		page, err := c.FilterSessions(input.Filter, pagination.ClampPageSize(input.Limit, sessionPageSize), input.Cursor)
		if err != nil {
			return nil, SessionPage{}, err
		}
		result, err := jsonResult(page)
		if err != nil {
			return nil, SessionPage{}, err
		}
		return result, page, nil
	}, sessionPageTotal)
}
