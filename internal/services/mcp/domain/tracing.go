package domain

import (
	"context"

	apperrors "github.com/louisbranch/sessionsearch/internal/platform/errors"
	platformotel "github.com/louisbranch/sessionsearch/internal/platform/otel"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Traced wraps a tool handler in a span named after the tool. When total is
// non-nil its value is recorded as the result.total attribute.
func Traced[I, O any](name string, handler mcp.ToolHandlerFor[I, O], total func(O) int) mcp.ToolHandlerFor[I, O] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input I) (*mcp.CallToolResult, O, error) {
		ctx, span := platformotel.Tracer().Start(ctx, "mcp.tool "+name,
			trace.WithAttributes(attribute.String("mcp.tool.name", name)),
		)
		defer span.End()

		result, output, err := handler(ctx, req, input)
		if err != nil {
			recordToolError(span, err)
			return result, output, err
		}
		if total != nil {
			span.SetAttributes(attribute.Int("result.total", total(output)))
		}
		return result, output, nil
	}
}

// recordToolError tags the span with the error code. Only failures the caller
// cannot fix mark the span as errored.
func recordToolError(span trace.Span, err error) {
	code := apperrors.GetCode(err)
	span.RecordError(err)
	span.SetAttributes(attribute.String("error.code", string(code)))
	if !code.CallerFault() {
		span.SetStatus(codes.Error, err.Error())
	}
}

func sessionPageTotal(page SessionPage) int { return page.Total }
