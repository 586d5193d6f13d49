package domain

import (
	"context"

	"github.com/louisbranch/sessionsearch/internal/platform/pagination"
	catalog "github.com/louisbranch/sessionsearch/internal/services/catalog/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// dimensionInput is implemented by every get_sessions_by_* input.
type dimensionInput interface {
	pageArgs() (value string, limit int, cursor string)
}

type dimensionLookup func(c Catalog, value string, limit int, cursor string) SessionPage

func dimensionHandler[I dimensionInput](name string, c Catalog, lookup dimensionLookup) mcp.ToolHandlerFor[I, SessionPage] {
	return Traced(name, func(ctx context.Context, _ *mcp.CallToolRequest, input I) (*mcp.CallToolResult, SessionPage, error) {
		if err := catalogUnavailable(ctx, c); err != nil {
			return nil, SessionPage{}, err
		}
		value, limit, cursor := input.pageArgs()
		page := lookup(c, value, pagination.ClampPageSize(limit, sessionPageSize), cursor)
		result, err := jsonResult(page)
		if err != nil {
			return nil, SessionPage{}, err
		}
		return result, page, nil
	}, sessionPageTotal)
}

// SessionsByServiceInput represents the MCP tool input for a service lookup.
type SessionsByServiceInput struct {
	Service string `json:"service" jsonschema:"exact service name, for example Amazon Bedrock"`
	Limit   int    `json:"limit,omitempty" jsonschema:"page size (default 20, max 100)"`
	Cursor  string `json:"cursor,omitempty" jsonschema:"nextCursor from a previous page"`
}

func (i SessionsByServiceInput) pageArgs() (string, int, string) { return i.Service, i.Limit, i.Cursor }

// SessionsByServiceTool defines the MCP tool schema for a service lookup.
func SessionsByServiceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_sessions_by_service",
		Description: "Lists sessions covering a service. Use search_services to find exact service names.",
		InputSchema: inputSchema[SessionsByServiceInput](limitBounds(sessionPageSize)),
	}
}

// SessionsByServiceHandler executes a service lookup.
func SessionsByServiceHandler(c Catalog) mcp.ToolHandlerFor[SessionsByServiceInput, SessionPage] {
	return dimensionHandler[SessionsByServiceInput]("get_sessions_by_service", c, Catalog.SessionsByService)
}

// SessionsByLevelInput represents the MCP tool input for a level lookup.
type SessionsByLevelInput struct {
	Level  string `json:"level" jsonschema:"level code: 100, 200, 300, 400, or 500"`
	Limit  int    `json:"limit,omitempty" jsonschema:"page size (default 20, max 100)"`
	Cursor string `json:"cursor,omitempty" jsonschema:"nextCursor from a previous page"`
}

func (i SessionsByLevelInput) pageArgs() (string, int, string) { return i.Level, i.Limit, i.Cursor }

// SessionsByLevelTool defines the MCP tool schema for a level lookup.
func SessionsByLevelTool() *mcp.Tool {
	return &mcp.Tool{
		Name: "get_sessions_by_level",
		Description: "Lists sessions at a technical level. Supported levels: 100 (Foundational), 200 (Intermediate), " +
			"300 (Advanced), 400 (Expert), 500 (Distinguished).",
		InputSchema: inputSchema[SessionsByLevelInput](limitBounds(sessionPageSize), enumOf("level", catalog.LevelCodes)),
	}
}

// SessionsByLevelHandler executes a level lookup.
func SessionsByLevelHandler(c Catalog) mcp.ToolHandlerFor[SessionsByLevelInput, SessionPage] {
	return dimensionHandler[SessionsByLevelInput]("get_sessions_by_level", c, Catalog.SessionsByLevel)
}

// SessionsByRoleInput represents the MCP tool input for a role lookup.
type SessionsByRoleInput struct {
	Role   string `json:"role" jsonschema:"exact role name, for example Developer / Engineer"`
	Limit  int    `json:"limit,omitempty" jsonschema:"page size (default 20, max 100)"`
	Cursor string `json:"cursor,omitempty" jsonschema:"nextCursor from a previous page"`
}

func (i SessionsByRoleInput) pageArgs() (string, int, string) { return i.Role, i.Limit, i.Cursor }

// SessionsByRoleTool defines the MCP tool schema for a role lookup.
func SessionsByRoleTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_sessions_by_role",
		Description: "Lists sessions aimed at a job role. Supported roles are the values of list_categories with category roles.",
		InputSchema: inputSchema[SessionsByRoleInput](limitBounds(sessionPageSize)),
	}
}

// SessionsByRoleHandler executes a role lookup.
func SessionsByRoleHandler(c Catalog) mcp.ToolHandlerFor[SessionsByRoleInput, SessionPage] {
	return dimensionHandler[SessionsByRoleInput]("get_sessions_by_role", c, Catalog.SessionsByRole)
}

// SessionsByIndustryInput represents the MCP tool input for an industry lookup.
type SessionsByIndustryInput struct {
	Industry string `json:"industry" jsonschema:"exact industry name, for example Financial Services"`
	Limit    int    `json:"limit,omitempty" jsonschema:"page size (default 20, max 100)"`
	Cursor   string `json:"cursor,omitempty" jsonschema:"nextCursor from a previous page"`
}

func (i SessionsByIndustryInput) pageArgs() (string, int, string) { return i.Industry, i.Limit, i.Cursor }

// SessionsByIndustryTool defines the MCP tool schema for an industry lookup.
func SessionsByIndustryTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_sessions_by_industry",
		Description: "Lists sessions for an industry. Supported industries are the values of list_categories with category industries.",
		InputSchema: inputSchema[SessionsByIndustryInput](limitBounds(sessionPageSize)),
	}
}

// SessionsByIndustryHandler executes an industry lookup.
func SessionsByIndustryHandler(c Catalog) mcp.ToolHandlerFor[SessionsByIndustryInput, SessionPage] {
	return dimensionHandler[SessionsByIndustryInput]("get_sessions_by_industry", c, Catalog.SessionsByIndustry)
}

// SessionsBySegmentInput represents the MCP tool input for a segment lookup.
type SessionsBySegmentInput struct {
	Segment string `json:"segment" jsonschema:"exact segment name, for example Enterprise"`
	Limit   int    `json:"limit,omitempty" jsonschema:"page size (default 20, max 100)"`
	Cursor  string `json:"cursor,omitempty" jsonschema:"nextCursor from a previous page"`
}

func (i SessionsBySegmentInput) pageArgs() (string, int, string) { return i.Segment, i.Limit, i.Cursor }

// SessionsBySegmentTool defines the MCP tool schema for a segment lookup.
func SessionsBySegmentTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_sessions_by_segment",
		Description: "Lists sessions for a customer segment. Values come from list_categories with category segments.",
		InputSchema: inputSchema[SessionsBySegmentInput](limitBounds(sessionPageSize)),
	}
}

// SessionsBySegmentHandler executes a segment lookup.
func SessionsBySegmentHandler(c Catalog) mcp.ToolHandlerFor[SessionsBySegmentInput, SessionPage] {
	return dimensionHandler[SessionsBySegmentInput]("get_sessions_by_segment", c, Catalog.SessionsBySegment)
}

// SessionsByFeatureInput represents the MCP tool input for a feature lookup.
type SessionsByFeatureInput struct {
	Feature string `json:"feature" jsonschema:"exact feature name, for example Interactive"`
	Limit   int    `json:"limit,omitempty" jsonschema:"page size (default 20, max 100)"`
	Cursor  string `json:"cursor,omitempty" jsonschema:"nextCursor from a previous page"`
}

func (i SessionsByFeatureInput) pageArgs() (string, int, string) { return i.Feature, i.Limit, i.Cursor }

// SessionsByFeatureTool defines the MCP tool schema for a feature lookup.
func SessionsByFeatureTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_sessions_by_feature",
		Description: "Lists sessions with a session feature. Values come from list_categories with category features.",
		InputSchema: inputSchema[SessionsByFeatureInput](limitBounds(sessionPageSize)),
	}
}

// SessionsByFeatureHandler executes a feature lookup.
func SessionsByFeatureHandler(c Catalog) mcp.ToolHandlerFor[SessionsByFeatureInput, SessionPage] {
	return dimensionHandler[SessionsByFeatureInput]("get_sessions_by_feature", c, Catalog.SessionsByFeature)
}

// SessionsByTopicInput represents the MCP tool input for a topic lookup.
type SessionsByTopicInput struct {
	Topic  string `json:"topic" jsonschema:"exact topic name, for example Artificial Intelligence"`
	Limit  int    `json:"limit,omitempty" jsonschema:"page size (default 20, max 100)"`
	Cursor string `json:"cursor,omitempty" jsonschema:"nextCursor from a previous page"`
}

func (i SessionsByTopicInput) pageArgs() (string, int, string) { return i.Topic, i.Limit, i.Cursor }

// SessionsByTopicTool defines the MCP tool schema for a topic lookup.
func SessionsByTopicTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_sessions_by_topic",
		Description: "Lists sessions on a topic. Supported topics are the values of list_categories with category topics.",
		InputSchema: inputSchema[SessionsByTopicInput](limitBounds(sessionPageSize)),
	}
}

// SessionsByTopicHandler executes a topic lookup.
func SessionsByTopicHandler(c Catalog) mcp.ToolHandlerFor[SessionsByTopicInput, SessionPage] {
	return dimensionHandler[SessionsByTopicInput]("get_sessions_by_topic", c, Catalog.SessionsByTopic)
}

// SessionsByAreaOfInterestInput represents the MCP tool input for an area of
// interest lookup.
type SessionsByAreaOfInterestInput struct {
	AreaOfInterest string `json:"area_of_interest" jsonschema:"exact area of interest, for example Serverless"`
	Limit          int    `json:"limit,omitempty" jsonschema:"page size (default 20, max 100)"`
	Cursor         string `json:"cursor,omitempty" jsonschema:"nextCursor from a previous page"`
}

func (i SessionsByAreaOfInterestInput) pageArgs() (string, int, string) {
	return i.AreaOfInterest, i.Limit, i.Cursor
}

// SessionsByAreaOfInterestTool defines the MCP tool schema for an area of
// interest lookup.
func SessionsByAreaOfInterestTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_sessions_by_area_of_interest",
		Description: "Lists sessions in an area of interest. Values come from list_categories with category areas_of_interest.",
		InputSchema: inputSchema[SessionsByAreaOfInterestInput](limitBounds(sessionPageSize)),
	}
}

// SessionsByAreaOfInterestHandler executes an area of interest lookup.
func SessionsByAreaOfInterestHandler(c Catalog) mcp.ToolHandlerFor[SessionsByAreaOfInterestInput, SessionPage] {
	return dimensionHandler[SessionsByAreaOfInterestInput]("get_sessions_by_area_of_interest", c, Catalog.SessionsByAreaOfInterest)
}
