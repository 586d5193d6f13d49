package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/louisbranch/sessionsearch/internal/platform/pagination"
	catalog "github.com/louisbranch/sessionsearch/internal/services/catalog/domain"
	"github.com/louisbranch/sessionsearch/internal/services/catalog/query"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Catalog is the read-only query surface the MCP handlers need.
type Catalog interface {
	Codes() []string
	SearchSessions(query string, limit int, cursor string) pagination.Page[catalog.Summary]
	GetSessionDetails(code string) (map[string]any, bool)
	SessionsByService(service string, limit int, cursor string) pagination.Page[catalog.Summary]
	SessionsByLevel(code string, limit int, cursor string) pagination.Page[catalog.Summary]
	SessionsByRole(role string, limit int, cursor string) pagination.Page[catalog.Summary]
	SessionsByIndustry(industry string, limit int, cursor string) pagination.Page[catalog.Summary]
	SessionsBySegment(segment string, limit int, cursor string) pagination.Page[catalog.Summary]
	SessionsByFeature(feature string, limit int, cursor string) pagination.Page[catalog.Summary]
	SessionsByTopic(topic string, limit int, cursor string) pagination.Page[catalog.Summary]
	SessionsByAreaOfInterest(area string, limit int, cursor string) pagination.Page[catalog.Summary]
	FilterSessions(filter string, limit int, cursor string) (pagination.Page[catalog.Summary], error)
	SearchServices(query string, limit int, cursor string) pagination.Page[query.ServiceEntry]
	ListCategories(category string) []query.FacetValue
	SearchSpeakers(text string, limit int, cursor string) query.SpeakerPage
}

var _ Catalog = (*query.Engine)(nil)

// Page size limits applied to tool input before it reaches the catalog.
var (
	sessionPageSize = pagination.PageSizeConfig{Default: query.DefaultPageSize, Max: 100}
	speakerPageSize = pagination.PageSizeConfig{Default: query.DefaultSpeakerPageSize, Max: 50}
)

// SessionPage is a page of minimal session views.
type SessionPage = pagination.Page[catalog.Summary]

// ServicePage is a page of distinct services.
type ServicePage = pagination.Page[query.ServiceEntry]

// jsonResult renders output as indented JSON text content. The SDK fills the
// structured content from the typed output.
func jsonResult(output any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tool result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil
}

func catalogUnavailable(ctx context.Context, c Catalog) error {
	if c == nil {
		return fmt.Errorf("session catalog is not configured")
	}
	return ctx.Err()
}
