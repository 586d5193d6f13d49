package domain

import (
	"context"

	"github.com/louisbranch/sessionsearch/internal/platform/pagination"
	"github.com/louisbranch/sessionsearch/internal/services/catalog/query"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchSpeakersInput represents the MCP tool input for searching speakers.
type SearchSpeakersInput struct {
	SpeakerName string `json:"speaker_name" jsonschema:"text matched against speaker names; empty lists every speaker"`
	Limit       int    `json:"limit,omitempty" jsonschema:"page size (default 5, max 50)"`
	Cursor      string `json:"cursor,omitempty" jsonschema:"nextCursor from a previous page"`
}

// SearchSpeakersTool defines the MCP tool schema for searching speakers.
func SearchSpeakersTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "search_speakers",
		Description: "Searches speakers by name and lists the sessions each one presents.",
		InputSchema: inputSchema[SearchSpeakersInput](limitBounds(speakerPageSize)),
	}
}

// SearchSpeakersHandler executes a speaker search.
func SearchSpeakersHandler(c Catalog) mcp.ToolHandlerFor[SearchSpeakersInput, query.SpeakerPage] {
	return Traced("search_speakers", func(ctx context.Context, _ *mcp.CallToolRequest, input SearchSpeakersInput) (*mcp.CallToolResult, query.SpeakerPage, error) {
		if err := catalogUnavailable(ctx, c); err != nil {
			return nil, query.SpeakerPage{}, err
		}
		page := c.SearchSpeakers(input.SpeakerName, pagination.ClampPageSize(input.Limit, speakerPageSize), input.Cursor)
		result, err := jsonResult(page)
		if err != nil {
			return nil, query.SpeakerPage{}, err
		}
		return result, page, nil
	}, func(page query.SpeakerPage) int { return page.Total })
}
