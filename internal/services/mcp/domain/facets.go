package domain

import (
	"context"
	"strings"

	"github.com/louisbranch/sessionsearch/internal/platform/pagination"
	catalog "github.com/louisbranch/sessionsearch/internal/services/catalog/domain"
	"github.com/louisbranch/sessionsearch/internal/services/catalog/query"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListCategoriesInput represents the MCP tool input for listing facet values.
type ListCategoriesInput struct {
	Category string `json:"category" jsonschema:"one of topics, services, industries, roles, levels, segments, areas_of_interest, features, types"`
}

// ListCategoriesResult lists the values of one category.
type ListCategoriesResult struct {
	Categories []query.FacetValue `json:"categories" jsonschema:"distinct values with session count and percentage"`
}

// ListCategoriesTool defines the MCP tool schema for listing facet values.
func ListCategoriesTool() *mcp.Tool {
	return &mcp.Tool{
		Name: "list_categories",
		Description: "Lists the distinct values of a session category with how many sessions carry each. Supported categories: " +
			strings.Join(catalog.CategoryKeys, ", ") + ".",
		InputSchema: inputSchema[ListCategoriesInput](enumOf("category", catalog.CategoryKeys)),
	}
}

// ListCategoriesHandler executes a facet listing.
func ListCategoriesHandler(c Catalog) mcp.ToolHandlerFor[ListCategoriesInput, ListCategoriesResult] {
	return Traced("list_categories", func(ctx context.Context, _ *mcp.CallToolRequest, input ListCategoriesInput) (*mcp.CallToolResult, ListCategoriesResult, error) {
		if err := catalogUnavailable(ctx, c); err != nil {
			return nil, ListCategoriesResult{}, err
		}
		output := ListCategoriesResult{Categories: c.ListCategories(input.Category)}
		result, err := jsonResult(output.Categories)
		if err != nil {
			return nil, ListCategoriesResult{}, err
		}
		return result, output, nil
	}, func(output ListCategoriesResult) int { return len(output.Categories) })
}

// SearchServicesInput represents the MCP tool input for searching services.
type SearchServicesInput struct {
	Query  string `json:"query" jsonschema:"text matched against service names; empty lists every service"`
	Limit  int    `json:"limit,omitempty" jsonschema:"page size (default 20, max 100)"`
	Cursor string `json:"cursor,omitempty" jsonschema:"nextCursor from a previous page"`
}

// SearchServicesTool defines the MCP tool schema for searching services.
func SearchServicesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "search_services",
		Description: "Searches the distinct services covered by sessions, with the number of sessions for each service.",
		InputSchema: inputSchema[SearchServicesInput](limitBounds(sessionPageSize)),
	}
}

// SearchServicesHandler executes a service search.
func SearchServicesHandler(c Catalog) mcp.ToolHandlerFor[SearchServicesInput, ServicePage] {
	return Traced("search_services", func(ctx context.Context, _ *mcp.CallToolRequest, input SearchServicesInput) (*mcp.CallToolResult, ServicePage, error) {
		if err := catalogUnavailable(ctx, c); err != nil {
			return nil, ServicePage{}, err
		}
		page := c.SearchServices(input.Query, pagination.ClampPageSize(input.Limit, sessionPageSize), input.Cursor)
		result, err := jsonResult(page)
		if err != nil {
			return nil, ServicePage{}, err
		}
		return result, page, nil
	}, func(page ServicePage) int { return page.Total })
}
