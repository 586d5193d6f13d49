package query

import (
	"testing"

	"github.com/louisbranch/sessionsearch/internal/services/catalog/domain"
)

func mustSessions(t *testing.T, records ...map[string]any) []domain.Session {
	t.Helper()
	sessions := make([]domain.Session, 0, len(records))
	for _, record := range records {
		session, err := domain.SessionFromMap(record)
		if err != nil {
			t.Fatalf("build session: %v", err)
		}
		sessions = append(sessions, session)
	}
	return sessions
}

// exampleEngine holds the two-session catalog used throughout these tests.
func exampleEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(mustSessions(t,
		map[string]any{
			"code":     "AIM236-S",
			"title":    "AI session",
			"abstract": "Build with foundation models",
			"speakers": []any{
				map[string]any{"firstName": "John", "lastName": "Doe", "jobTitle": "Data Scientist"},
			},
			"attributes": map[string]any{
				"level":    "300 – Advanced",
				"services": []any{"Amazon Bedrock"},
				"topics":   []any{"Generative AI"},
				"type":     "Breakout session",
			},
		},
		map[string]any{
			"code":     "DVT222-S",
			"title":    "Developer productivity",
			"abstract": "Ship code faster with better tooling",
			"speakers": []any{"Jane Roe"},
			"attributes": map[string]any{
				"level":    []any{"200 – Intermediate"},
				"services": []any{"AWS CodeBuild", "Amazon Bedrock"},
				"topics":   []any{"Developer tools"},
				"type":     "Chalk talk",
			},
		},
	))
}

// catalogEngine holds a larger catalog for paging and facet tests.
func catalogEngine(t *testing.T) *Engine {
	t.Helper()
	levels := []string{"100 – Foundational", "200 – Intermediate", "300 – Advanced", "300 – Advanced", "400 – Expert"}
	services := [][]any{
		{"Amazon S3"},
		{"Amazon S3", "AWS Lambda"},
		{"AWS Lambda"},
		{"Amazon DynamoDB", "Amazon S3"},
		{"AWS Lambda", "AWS Lambda"},
	}
	records := make([]map[string]any, len(levels))
	for i := range levels {
		records[i] = map[string]any{
			"code":     string(rune('A'+i)) + "01",
			"title":    "Session " + string(rune('A'+i)),
			"abstract": "Abstract",
			"speakers": []any{
				map[string]any{"fullName": "Shared Speaker", "jobTitle": levels[i]},
				map[string]any{"fullName": "Guest " + string(rune('A'+i))},
			},
			"attributes": map[string]any{
				"level":             levels[i],
				"services":          services[i],
				"roles":             []any{"Developer"},
				"industries":        []any{"Retail"},
				"segments":          []any{"Enterprise"},
				"features":          []any{"Hands-on"},
				"areas_of_interest": []any{"Serverless"},
			},
		}
	}
	return NewEngine(mustSessions(t, records...))
}
