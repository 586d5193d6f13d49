package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/sessionsearch/internal/platform/errors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	sessionURIPrefix  = "session://"
	categoryURIPrefix = "catalog://categories/"

	// maxCompletionValues caps one completion response.
	maxCompletionValues = 100
)

// SessionResourceTemplate defines the MCP resource template for one session.
func SessionResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "session",
		Title:       "Session",
		Description: "Readable session details. URI format: session://{code}",
		MIMEType:    "application/json",
		URITemplate: "session://{code}",
	}
}

// SessionResourceHandler returns a readable session detail resource.
func SessionResourceHandler(c Catalog) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if err := catalogUnavailable(ctx, c); err != nil {
			return nil, err
		}
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("session code is required; use URI format session://{code}")
		}
		uri := req.Params.URI
		code, err := parseResourceKey(uri, sessionURIPrefix)
		if err != nil {
			return nil, fmt.Errorf("parse session code from URI: %w", err)
		}

		detail, ok := c.GetSessionDetails(code)
		if !ok {
			return nil, apperrors.WrapWithMetadata(apperrors.CodeNotFound, "session not found",
				map[string]string{"code": code}, mcp.ResourceNotFoundError(uri))
		}
		return jsonResource(uri, detail)
	}
}

// CategoryResourceTemplate defines the MCP resource template for one category.
func CategoryResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "category",
		Title:       "Session category",
		Description: "Distinct values of a session category with counts. URI format: catalog://categories/{category}",
		MIMEType:    "application/json",
		URITemplate: "catalog://categories/{category}",
	}
}

// CategoryResourceHandler returns a readable facet listing resource.
func CategoryResourceHandler(c Catalog) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if err := catalogUnavailable(ctx, c); err != nil {
			return nil, err
		}
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("category is required; use URI format catalog://categories/{category}")
		}
		uri := req.Params.URI
		category, err := parseResourceKey(uri, categoryURIPrefix)
		if err != nil {
			return nil, fmt.Errorf("parse category from URI: %w", err)
		}
		return jsonResource(uri, ListCategoriesResult{Categories: c.ListCategories(category)})
	}
}

// CompletionHandler completes the code argument of session resources by
// case-insensitive prefix. Other completion requests get no values.
func CompletionHandler(c Catalog) func(context.Context, *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
	return func(_ context.Context, req *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
		result := &mcp.CompleteResult{Completion: mcp.CompletionResultDetails{Values: []string{}}}
		if c == nil || req == nil || req.Params == nil || req.Params.Ref == nil {
			return result, nil
		}
		if req.Params.Ref.URI != SessionResourceTemplate().URITemplate || req.Params.Argument.Name != "code" {
			return result, nil
		}

		prefix := strings.ToUpper(req.Params.Argument.Value)
		var matched []string
		for _, code := range c.Codes() {
			if strings.HasPrefix(strings.ToUpper(code), prefix) {
				matched = append(matched, code)
			}
		}
		result.Completion.Total = len(matched)
		if len(matched) > maxCompletionValues {
			matched = matched[:maxCompletionValues]
			result.Completion.HasMore = true
		}
		result.Completion.Values = append(result.Completion.Values, matched...)
		return result, nil
	}
}

func parseResourceKey(uri, prefix string) (string, error) {
	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("URI must start with %q", prefix)
	}
	key := strings.TrimSpace(strings.TrimPrefix(uri, prefix))
	if key == "" || strings.Contains(key, "/") {
		return "", fmt.Errorf("URI must be %s{key}", prefix)
	}
	return key, nil
}

func jsonResource(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
