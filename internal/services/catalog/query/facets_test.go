package query

import (
	"reflect"
	"strconv"
	"testing"
)

func TestListCategories(t *testing.T) {
	engine := catalogEngine(t)

	t.Run("levels in first occurrence order", func(t *testing.T) {
		got := engine.ListCategories("levels")
		want := []FacetValue{
			{Name: "100 – Foundational", Count: 1, Percentage: "20.00"},
			{Name: "200 – Intermediate", Count: 1, Percentage: "20.00"},
			{Name: "300 – Advanced", Count: 2, Percentage: "40.00"},
			{Name: "400 – Expert", Count: 1, Percentage: "20.00"},
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("levels = %+v", got)
		}
	})

	t.Run("repeated value in one session counts once", func(t *testing.T) {
		got := engine.ListCategories("services")
		if len(got) != 3 || got[1].Name != "AWS Lambda" || got[1].Count != 3 || got[1].Percentage != "60.00" {
			t.Fatalf("services = %+v", got)
		}
	})

	t.Run("unknown key is empty", func(t *testing.T) {
		for _, key := range []string{"level", "speakers", ""} {
			got := engine.ListCategories(key)
			if got == nil || len(got) != 0 {
				t.Fatalf("ListCategories(%q) = %#v", key, got)
			}
		}
	})

	t.Run("known key with no values is empty", func(t *testing.T) {
		if got := engine.ListCategories("topics"); len(got) != 0 {
			t.Fatalf("topics = %+v", got)
		}
	})

	t.Run("percentage matches count", func(t *testing.T) {
		for _, value := range engine.ListCategories("services") {
			pct, err := strconv.ParseFloat(value.Percentage, 64)
			if err != nil {
				t.Fatalf("parse percentage %q: %v", value.Percentage, err)
			}
			want := float64(value.Count) / float64(engine.Len()) * 100
			if diff := pct - want; diff > 0.005 || diff < -0.005 {
				t.Fatalf("%s percentage %s, want %.4f", value.Name, value.Percentage, want)
			}
		}
	})
}

func TestListCategoriesRoundsToTwoDecimals(t *testing.T) {
	engine := NewEngine(mustSessions(t,
		map[string]any{"code": "A", "attributes": map[string]any{"type": "Workshop"}},
		map[string]any{"code": "B", "attributes": map[string]any{"type": "Keynote"}},
		map[string]any{"code": "C", "attributes": map[string]any{"type": "Keynote"}},
	))
	got := engine.ListCategories("types")
	want := []FacetValue{
		{Name: "Workshop", Count: 1, Percentage: "33.33"},
		{Name: "Keynote", Count: 2, Percentage: "66.67"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("types = %+v", got)
	}
}
