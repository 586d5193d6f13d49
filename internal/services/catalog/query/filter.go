package query

import (
	"fmt"
	"strings"

	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"

	apperrors "github.com/louisbranch/sessionsearch/internal/platform/errors"
	"github.com/louisbranch/sessionsearch/internal/platform/pagination"
	"github.com/louisbranch/sessionsearch/internal/services/catalog/domain"
)

// Predicate reports whether a session satisfies a filter.
type Predicate func(domain.Session) bool

// filterFields maps filter identifiers to the session values they read.
var filterFields = map[string]func(domain.Session) []string{
	"code":              func(s domain.Session) []string { return []string{s.Code} },
	"title":             func(s domain.Session) []string { return []string{s.Title} },
	"abstract":          func(s domain.Session) []string { return []string{s.Abstract} },
	"type":              attributeField(domain.AttrType),
	"level":             attributeField(domain.AttrLevel),
	"topics":            attributeField(domain.AttrTopics),
	"services":          attributeField(domain.AttrServices),
	"industries":        attributeField(domain.AttrIndustries),
	"roles":             attributeField(domain.AttrRoles),
	"segments":          attributeField(domain.AttrSegments),
	"areas_of_interest": attributeField(domain.AttrAreasOfInterest),
	"features":          attributeField(domain.AttrFeatures),
	"speaker":           speakerNames,
}

func attributeField(field string) func(domain.Session) []string {
	return func(s domain.Session) []string { return s.Attributes[field] }
}

func speakerNames(s domain.Session) []string {
	speakers := domain.NormalizeSpeakers(s.Speakers)
	names := make([]string, len(speakers))
	for i, speaker := range speakers {
		names[i] = speaker.Name
	}
	return names
}

// FilterDeclarations returns the identifiers accepted in session filters.
func FilterDeclarations() (*filtering.Declarations, error) {
	opts := []filtering.DeclarationOption{filtering.DeclareStandardFunctions()}
	for name := range filterFields {
		opts = append(opts, filtering.DeclareIdent(name, filtering.TypeString))
	}
	return filtering.NewDeclarations(opts...)
}

// ParseFilter compiles an AIP-160 filter expression into a session predicate.
// A blank filter matches every session.
func ParseFilter(filterStr string) (Predicate, error) {
	if strings.TrimSpace(filterStr) == "" {
		return func(domain.Session) bool { return true }, nil
	}

	decls, err := FilterDeclarations()
	if err != nil {
		return nil, fmt.Errorf("create declarations: %w", err)
	}

	filter, err := filtering.ParseFilterString(filterStr, decls)
	if err != nil {
		return nil, apperrors.WrapWithMetadata(apperrors.CodeInvalidFilter, "parse filter",
			map[string]string{"filter": filterStr}, err)
	}

	pred, err := compileExpr(filter.CheckedExpr.GetExpr())
	if err != nil {
		return nil, apperrors.WrapWithMetadata(apperrors.CodeInvalidFilter, "compile filter",
			map[string]string{"filter": filterStr}, err)
	}
	return pred, nil
}

// FilterSessions pages the sessions matching an AIP-160 filter.
func (e *Engine) FilterSessions(filterStr string, limit int, cursor string) (pagination.Page[domain.Summary], error) {
	pred, err := ParseFilter(filterStr)
	if err != nil {
		return pagination.Page[domain.Summary]{}, err
	}
	return e.page(e.where(pred), limit, cursor), nil
}

func compileExpr(e *expr.Expr) (Predicate, error) {
	if e == nil {
		return nil, fmt.Errorf("nil expression")
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_CallExpr:
		return compileCall(kind.CallExpr)
	default:
		return nil, fmt.Errorf("unsupported expression type: %T", kind)
	}
}

func compileCall(call *expr.Expr_Call) (Predicate, error) {
	switch call.Function {
	case "_&&_", "AND", "FUZZY":
		return compileJunction(call.Args, true)
	case "_||_", "OR":
		return compileJunction(call.Args, false)
	case "!_", "NOT":
		if len(call.Args) != 1 {
			return nil, fmt.Errorf("NOT requires 1 argument")
		}
		inner, err := compileExpr(call.Args[0])
		if err != nil {
			return nil, err
		}
		return func(s domain.Session) bool { return !inner(s) }, nil
	case "_==_", "=":
		return compileComparison(call.Args, equalsAny)
	case "_!=_", "!=":
		return compileComparison(call.Args, func(values []string, want string) bool {
			return !equalsAny(values, want)
		})
	case ":":
		return compileComparison(call.Args, containsAny)
	default:
		return nil, fmt.Errorf("unsupported function: %s", call.Function)
	}
}

func compileJunction(args []*expr.Expr, all bool) (Predicate, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("junction requires at least 2 arguments")
	}
	preds := make([]Predicate, len(args))
	for i, arg := range args {
		pred, err := compileExpr(arg)
		if err != nil {
			return nil, err
		}
		preds[i] = pred
	}
	return func(s domain.Session) bool {
		for _, pred := range preds {
			if pred(s) != all {
				return !all
			}
		}
		return all
	}, nil
}

func compileComparison(args []*expr.Expr, match func(values []string, want string) bool) (Predicate, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("comparison requires 2 arguments")
	}

	field, err := extractFieldName(args[0])
	if err != nil {
		return nil, err
	}
	read, ok := filterFields[field]
	if !ok {
		return nil, fmt.Errorf("unknown field: %s", field)
	}
	want, err := extractString(args[1])
	if err != nil {
		return nil, err
	}
	if field == "level" {
		if label, ok := domain.LevelLabel(want); ok {
			want = label
		}
	}
	return func(s domain.Session) bool { return match(read(s), want) }, nil
}

func equalsAny(values []string, want string) bool {
	for _, value := range values {
		if value == want {
			return true
		}
	}
	return false
}

func containsAny(values []string, want string) bool {
	folder := domain.NewFolder()
	needle := folder.Fold(want)
	for _, value := range values {
		if folder.Contains(value, needle) {
			return true
		}
	}
	return false
}

func extractFieldName(e *expr.Expr) (string, error) {
	if e == nil {
		return "", fmt.Errorf("nil expression")
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_IdentExpr:
		return kind.IdentExpr.Name, nil
	default:
		return "", fmt.Errorf("expected identifier, got %T", kind)
	}
}

func extractString(e *expr.Expr) (string, error) {
	if e == nil {
		return "", fmt.Errorf("nil expression")
	}

	constant, ok := e.ExprKind.(*expr.Expr_ConstExpr)
	if !ok {
		return "", fmt.Errorf("expected constant, got %T", e.ExprKind)
	}
	switch kind := constant.ConstExpr.ConstantKind.(type) {
	case *expr.Constant_StringValue:
		return kind.StringValue, nil
	default:
		return "", fmt.Errorf("unsupported constant type: %T", kind)
	}
}
