package domain

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/sessionsearch/internal/platform/errors"
	catalog "github.com/louisbranch/sessionsearch/internal/services/catalog/domain"
	"github.com/louisbranch/sessionsearch/internal/services/catalog/query"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func testCatalog(t *testing.T) *query.Engine {
	t.Helper()
	records := []map[string]any{
		{
			"code":     "AIM236-S",
			"title":    "AI session",
			"abstract": "Build with foundation models",
			"length":   60,
			"speakers": []any{
				map[string]any{"firstName": "John", "lastName": "Doe", "jobTitle": "Data Scientist"},
			},
			"attributes": map[string]any{
				"level":             "300 – Advanced",
				"services":          []any{"Amazon Bedrock"},
				"topics":            []any{"Generative AI"},
				"roles":             []any{"Data Scientist"},
				"industries":        []any{"Healthcare"},
				"segments":          []any{"Enterprise"},
				"features":          []any{"Demo"},
				"areas_of_interest": []any{"Machine Learning"},
			},
		},
		{
			"code":     "DVT222-S",
			"title":    "Developer productivity",
			"abstract": "Ship code faster with better tooling",
			"speakers": []any{"Jane Roe"},
			"attributes": map[string]any{
				"level":    "200 – Intermediate",
				"services": []any{"AWS CodeBuild"},
			},
		},
	}
	sessions := make([]catalog.Session, 0, len(records))
	for _, record := range records {
		session, err := catalog.SessionFromMap(record)
		if err != nil {
			t.Fatalf("build session: %v", err)
		}
		sessions = append(sessions, session)
	}
	return query.NewEngine(sessions)
}

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) != 1 {
		t.Fatalf("expected one content item, got %+v", result)
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestSearchSessionsHandler(t *testing.T) {
	handler := SearchSessionsHandler(testCatalog(t))

	t.Run("match", func(t *testing.T) {
		toolResult, page, err := handler(context.Background(), nil, SearchSessionsInput{Query: "AI"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Total != 1 || page.Items[0].Code != "AIM236-S" {
			t.Fatalf("unexpected page %+v", page)
		}
		text := textContent(t, toolResult)
		if !strings.Contains(text, "\n  \"items\"") {
			t.Errorf("expected indented JSON text, got %q", text)
		}
		var decoded SessionPage
		if err := json.Unmarshal([]byte(text), &decoded); err != nil {
			t.Fatalf("decode text content: %v", err)
		}
		if decoded.Total != page.Total {
			t.Errorf("text total %d, structured total %d", decoded.Total, page.Total)
		}
	})

	t.Run("limit is clamped", func(t *testing.T) {
		_, page, err := handler(context.Background(), nil, SearchSessionsInput{Query: "", Limit: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Items) != 1 || !page.HasMore || page.NextCursor != "1" {
			t.Fatalf("unexpected page %+v", page)
		}
		_, page, err = handler(context.Background(), nil, SearchSessionsInput{Limit: 1000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Items) != 2 || page.HasMore {
			t.Fatalf("unexpected page %+v", page)
		}
	})

	t.Run("nil catalog", func(t *testing.T) {
		_, _, err := SearchSessionsHandler(nil)(context.Background(), nil, SearchSessionsInput{})
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, _, err := handler(ctx, nil, SearchSessionsInput{}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestSessionDetailsHandler(t *testing.T) {
	handler := SessionDetailsHandler(testCatalog(t))

	t.Run("found", func(t *testing.T) {
		toolResult, result, err := handler(context.Background(), nil, SessionDetailsInput{SessionCode: "AIM236-S"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		detail, ok := result.Session.(map[string]any)
		if !ok {
			t.Fatalf("expected detail map, got %T", result.Session)
		}
		if _, ok := detail["length"]; ok {
			t.Error("length must be excluded")
		}
		if !strings.Contains(textContent(t, toolResult), "John Doe") {
			t.Error("expected normalized speaker in text content")
		}
	})

	t.Run("not found is null", func(t *testing.T) {
		toolResult, result, err := handler(context.Background(), nil, SessionDetailsInput{SessionCode: "INVALID"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Session != nil {
			t.Fatalf("expected nil session, got %v", result.Session)
		}
		if got := textContent(t, toolResult); got != "null" {
			t.Errorf("text = %q, want null", got)
		}
		data, err := json.Marshal(result)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(data) != `{"session":null}` {
			t.Errorf("structured = %s", data)
		}
	})
}

func TestDimensionHandlers(t *testing.T) {
	c := testCatalog(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() (SessionPage, error)
		want string
	}{
		{"service", func() (SessionPage, error) {
			_, page, err := SessionsByServiceHandler(c)(ctx, nil, SessionsByServiceInput{Service: "AWS CodeBuild"})
			return page, err
		}, "DVT222-S"},
		{"level", func() (SessionPage, error) {
			_, page, err := SessionsByLevelHandler(c)(ctx, nil, SessionsByLevelInput{Level: "300"})
			return page, err
		}, "AIM236-S"},
		{"role", func() (SessionPage, error) {
			_, page, err := SessionsByRoleHandler(c)(ctx, nil, SessionsByRoleInput{Role: "Data Scientist"})
			return page, err
		}, "AIM236-S"},
		{"industry", func() (SessionPage, error) {
			_, page, err := SessionsByIndustryHandler(c)(ctx, nil, SessionsByIndustryInput{Industry: "Healthcare"})
			return page, err
		}, "AIM236-S"},
		{"segment", func() (SessionPage, error) {
			_, page, err := SessionsBySegmentHandler(c)(ctx, nil, SessionsBySegmentInput{Segment: "Enterprise"})
			return page, err
		}, "AIM236-S"},
		{"feature", func() (SessionPage, error) {
			_, page, err := SessionsByFeatureHandler(c)(ctx, nil, SessionsByFeatureInput{Feature: "Demo"})
			return page, err
		}, "AIM236-S"},
		{"topic", func() (SessionPage, error) {
			_, page, err := SessionsByTopicHandler(c)(ctx, nil, SessionsByTopicInput{Topic: "Generative AI"})
			return page, err
		}, "AIM236-S"},
		{"area of interest", func() (SessionPage, error) {
			_, page, err := SessionsByAreaOfInterestHandler(c)(ctx, nil, SessionsByAreaOfInterestInput{AreaOfInterest: "Machine Learning"})
			return page, err
		}, "AIM236-S"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, err := tc.call()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if page.Total != 1 || page.Items[0].Code != tc.want {
				t.Fatalf("page = %+v, want single %s", page, tc.want)
			}
		})
	}

	t.Run("unknown level is empty", func(t *testing.T) {
		_, page, err := SessionsByLevelHandler(c)(ctx, nil, SessionsByLevelInput{Level: "999"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Total != 0 || len(page.Items) != 0 {
			t.Fatalf("page = %+v", page)
		}
	})
}

func TestFilterSessionsHandler(t *testing.T) {
	handler := FilterSessionsHandler(testCatalog(t))

	_, page, err := handler(context.Background(), nil, FilterSessionsInput{Filter: `services:"bedrock" OR level = "200"`})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("page = %+v", page)
	}

	_, _, err = handler(context.Background(), nil, FilterSessionsInput{Filter: `room = "A"`})
	if !apperrors.IsCode(err, apperrors.CodeInvalidFilter) {
		t.Fatalf("expected invalid filter, got %v", err)
	}
}

func TestListCategoriesHandler(t *testing.T) {
	handler := ListCategoriesHandler(testCatalog(t))

	toolResult, result, err := handler(context.Background(), nil, ListCategoriesInput{Category: "levels"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Categories) != 2 || result.Categories[0].Percentage != "50.00" {
		t.Fatalf("categories = %+v", result.Categories)
	}
	if !strings.HasPrefix(textContent(t, toolResult), "[") {
		t.Error("expected text content to be the value list")
	}

	_, result, err = handler(context.Background(), nil, ListCategoriesInput{Category: "unknown"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Categories == nil || len(result.Categories) != 0 {
		t.Fatalf("categories = %#v", result.Categories)
	}
}

func TestSearchServicesHandler(t *testing.T) {
	handler := SearchServicesHandler(testCatalog(t))

	_, page, err := handler(context.Background(), nil, SearchServicesInput{Query: "aws"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 1 || page.Items[0] != (query.ServiceEntry{Name: "AWS CodeBuild", SessionCount: 1}) {
		t.Fatalf("page = %+v", page)
	}
}

func TestSearchSpeakersHandler(t *testing.T) {
	handler := SearchSpeakersHandler(testCatalog(t))

	toolResult, page, err := handler(context.Background(), nil, SearchSpeakersInput{SpeakerName: "John"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 1 || page.Speakers[0].Name != "John Doe" {
		t.Fatalf("page = %+v", page)
	}
	if len(page.Speakers[0].Sessions) != 1 || page.Speakers[0].Sessions[0].Code != "AIM236-S" {
		t.Fatalf("sessions = %+v", page.Speakers[0].Sessions)
	}
	if !strings.Contains(textContent(t, toolResult), `"speakers"`) {
		t.Error("expected speakers key in text content")
	}

	_, page, err = handler(context.Background(), nil, SearchSpeakersInput{Limit: 500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 2 || page.HasMore {
		t.Fatalf("page = %+v", page)
	}
}
