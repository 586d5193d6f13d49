package query

import (
	"strconv"

	"github.com/louisbranch/sessionsearch/internal/services/catalog/domain"
)

// FacetValue is one distinct attribute value with its session count.
type FacetValue struct {
	Name       string `json:"name" jsonschema:"attribute value"`
	Count      int    `json:"count" jsonschema:"number of sessions carrying the value"`
	Percentage string `json:"percentage" jsonschema:"share of all sessions, two decimals"`
}

type valueCount struct {
	value    string
	sessions int
}

// ListCategories returns the distinct values of a category in order of first
// appearance. Unknown categories yield an empty list.
func (e *Engine) ListCategories(category string) []FacetValue {
	field, ok := domain.CategoryField(category)
	if !ok {
		return []FacetValue{}
	}
	counts := countValues(e.sessions, field)
	total := float64(len(e.sessions))
	values := make([]FacetValue, len(counts))
	for i, count := range counts {
		values[i] = FacetValue{
			Name:       count.value,
			Count:      count.sessions,
			Percentage: strconv.FormatFloat(float64(count.sessions)/total*100, 'f', 2, 64),
		}
	}
	return values
}

// countValues counts, per distinct value of field, the sessions whose list
// includes it. A value repeated inside one session counts once.
func countValues(sessions []domain.Session, field string) []valueCount {
	var counts []valueCount
	index := map[string]int{}
	for _, session := range sessions {
		seen := map[string]bool{}
		for _, value := range session.Attributes[field] {
			if seen[value] {
				continue
			}
			seen[value] = true
			i, ok := index[value]
			if !ok {
				i = len(counts)
				index[value] = i
				counts = append(counts, valueCount{value: value})
			}
			counts[i].sessions++
		}
	}
	return counts
}
