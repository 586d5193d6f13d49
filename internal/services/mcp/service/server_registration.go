package service

import (
	"fmt"

	"github.com/louisbranch/sessionsearch/internal/services/catalog/query"
	"github.com/louisbranch/sessionsearch/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type mcpRegistrationKind int

const (
	mcpRegistrationKindTools mcpRegistrationKind = iota
	mcpRegistrationKindResources
)

type mcpRegistrationModule struct {
	name     string
	kind     mcpRegistrationKind
	register func(mcpRegistrationTarget) error
}

const (
	mcpSessionToolsModuleName     = "session-tools"
	mcpFacetToolsModuleName       = "facet-tools"
	mcpSpeakerToolsModuleName     = "speaker-tools"
	mcpSessionResourceModuleName  = "session-resources"
	mcpCategoryResourceModuleName = "category-resources"
)

type mcpServerRegistrationAdapter struct {
	server *mcp.Server
}

func (r mcpServerRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	return addMCPTool(r.server, tool, handler)
}

func (r mcpServerRegistrationAdapter) AddResourceTemplate(resourceTemplate *mcp.ResourceTemplate, handler mcp.ResourceHandler) {
	r.server.AddResourceTemplate(resourceTemplate, handler)
}

type mcpToolRegistrar struct {
	matches func(any) bool
	add     func(*mcp.Server, *mcp.Tool, any)
}

func newMCPToolRegistrar[I any, O any]() mcpToolRegistrar {
	return mcpToolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, O])
			return ok
		},
		add: func(server *mcp.Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server, tool, handler.(mcp.ToolHandlerFor[I, O]))
		},
	}
}

var mcpToolRegistrars = []mcpToolRegistrar{
	newMCPToolRegistrar[domain.SearchSessionsInput, domain.SessionPage](),
	newMCPToolRegistrar[domain.SessionDetailsInput, domain.SessionDetailsResult](),
	newMCPToolRegistrar[domain.FilterSessionsInput, domain.SessionPage](),
	newMCPToolRegistrar[domain.SessionsByServiceInput, domain.SessionPage](),
	newMCPToolRegistrar[domain.SessionsByLevelInput, domain.SessionPage](),
	newMCPToolRegistrar[domain.SessionsByRoleInput, domain.SessionPage](),
	newMCPToolRegistrar[domain.SessionsByIndustryInput, domain.SessionPage](),
	newMCPToolRegistrar[domain.SessionsBySegmentInput, domain.SessionPage](),
	newMCPToolRegistrar[domain.SessionsByFeatureInput, domain.SessionPage](),
	newMCPToolRegistrar[domain.SessionsByTopicInput, domain.SessionPage](),
	newMCPToolRegistrar[domain.SessionsByAreaOfInterestInput, domain.SessionPage](),
	newMCPToolRegistrar[domain.ListCategoriesInput, domain.ListCategoriesResult](),
	newMCPToolRegistrar[domain.SearchServicesInput, domain.ServicePage](),
	newMCPToolRegistrar[domain.SearchSpeakersInput, query.SpeakerPage](),
}

func addMCPTool(server *mcp.Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range mcpToolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("mcp registration adapter does not support handler type %T for tool %q", handler, toolName)
}

func newMCPRegistrationModules(catalog domain.Catalog) []mcpRegistrationModule {
	return []mcpRegistrationModule{
		{
			name: mcpSessionToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(registrar mcpRegistrationTarget) error {
				return registerSessionTools(registrar, catalog)
			},
		},
		{
			name: mcpFacetToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(registrar mcpRegistrationTarget) error {
				return registerFacetTools(registrar, catalog)
			},
		},
		{
			name: mcpSpeakerToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(registrar mcpRegistrationTarget) error {
				return registerTool(registrar, domain.SearchSpeakersTool(), domain.SearchSpeakersHandler(catalog))
			},
		},
		{
			name: mcpSessionResourceModuleName,
			kind: mcpRegistrationKindResources,
			register: func(registrar mcpRegistrationTarget) error {
				registrar.AddResourceTemplate(domain.SessionResourceTemplate(), domain.SessionResourceHandler(catalog))
				return nil
			},
		},
		{
			name: mcpCategoryResourceModuleName,
			kind: mcpRegistrationKindResources,
			register: func(registrar mcpRegistrationTarget) error {
				registrar.AddResourceTemplate(domain.CategoryResourceTemplate(), domain.CategoryResourceHandler(catalog))
				return nil
			},
		},
	}
}
