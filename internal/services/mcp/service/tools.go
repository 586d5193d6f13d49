package service

import (
	"fmt"

	"github.com/louisbranch/sessionsearch/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type mcpRegistrationTarget interface {
	AddTool(*mcp.Tool, any) error
	AddResourceTemplate(*mcp.ResourceTemplate, mcp.ResourceHandler)
}

func registerSessionTools(registrar mcpRegistrationTarget, catalog domain.Catalog) error {
	registrations := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{tool: domain.SearchSessionsTool(), handler: domain.SearchSessionsHandler(catalog)},
		{tool: domain.SessionDetailsTool(), handler: domain.SessionDetailsHandler(catalog)},
		{tool: domain.SessionsByServiceTool(), handler: domain.SessionsByServiceHandler(catalog)},
		{tool: domain.SessionsByLevelTool(), handler: domain.SessionsByLevelHandler(catalog)},
		{tool: domain.SessionsByRoleTool(), handler: domain.SessionsByRoleHandler(catalog)},
		{tool: domain.SessionsByIndustryTool(), handler: domain.SessionsByIndustryHandler(catalog)},
		{tool: domain.SessionsBySegmentTool(), handler: domain.SessionsBySegmentHandler(catalog)},
		{tool: domain.SessionsByFeatureTool(), handler: domain.SessionsByFeatureHandler(catalog)},
		{tool: domain.SessionsByTopicTool(), handler: domain.SessionsByTopicHandler(catalog)},
		{tool: domain.SessionsByAreaOfInterestTool(), handler: domain.SessionsByAreaOfInterestHandler(catalog)},
		{tool: domain.FilterSessionsTool(), handler: domain.FilterSessionsHandler(catalog)},
	}
	for _, registration := range registrations {
		if err := registerTool(registrar, registration.tool, registration.handler); err != nil {
			return err
		}
	}
	return nil
}

func registerFacetTools(registrar mcpRegistrationTarget, catalog domain.Catalog) error {
	if err := registerTool(registrar, domain.ListCategoriesTool(), domain.ListCategoriesHandler(catalog)); err != nil {
		return err
	}
	return registerTool(registrar, domain.SearchServicesTool(), domain.SearchServicesHandler(catalog))
}

func registerTool(registrar mcpRegistrationTarget, tool *mcp.Tool, handler any) error {
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}
	return registrar.AddTool(tool, handler)
}
