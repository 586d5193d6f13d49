package domain

import (
	"fmt"
	"maps"
	"slices"
)

// detailExcludedFields never appear in a session detail view.
var detailExcludedFields = []string{"length", "sessionID", "eventId", "published", "modified"}

// Session is one conference session. Raw keeps every decoded top-level field
// so the detail view can show fields this type does not model.
type Session struct {
	Code       string
	Title      string
	Abstract   string
	Speakers   []RawSpeaker
	Attributes map[string][]string
	Raw        map[string]any
}

// Summary is the minimal session view used in result lists.
type Summary struct {
	Code     string `json:"code" jsonschema:"session code"`
	Title    string `json:"title" jsonschema:"session title"`
	Abstract string `json:"abstract" jsonschema:"session abstract"`
}

// SessionRef identifies a session a speaker appears in.
type SessionRef struct {
	Code  string `json:"code" jsonschema:"session code"`
	Title string `json:"title" jsonschema:"session title"`
}

// SessionFromMap builds a session from a decoded dataset record. The record
// must carry a non-empty string code.
func SessionFromMap(raw map[string]any) (Session, error) {
	if raw == nil {
		return Session{}, fmt.Errorf("session record is empty")
	}
	code, ok := raw["code"].(string)
	if !ok || code == "" {
		return Session{}, fmt.Errorf("session record has no code")
	}

	session := Session{
		Code:       code,
		Title:      stringField(raw, "title"),
		Abstract:   stringField(raw, "abstract"),
		Attributes: map[string][]string{},
		Raw:        raw,
	}
	if list, ok := raw["speakers"].([]any); ok {
		session.Speakers = make([]RawSpeaker, 0, len(list))
		for _, entry := range list {
			session.Speakers = append(session.Speakers, RawSpeakerFromValue(entry))
		}
	}
	if attrs, ok := raw["attributes"].(map[string]any); ok {
		for field, value := range attrs {
			session.Attributes[field] = attributeValues(value)
		}
	}
	return session, nil
}

// attributeValues treats every attribute as a list: a scalar string becomes a
// one-element list and non-string members are skipped.
func attributeValues(value any) []string {
	switch v := value.(type) {
	case string:
		return []string{v}
	case []string:
		return slices.Clone(v)
	case []any:
		values := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}
		return values
	default:
		return nil
	}
}

// Summary projects the session to its minimal view.
func (s Session) Summary() Summary {
	return Summary{Code: s.Code, Title: s.Title, Abstract: s.Abstract}
}

// Ref returns the code and title pair used by the speaker index.
func (s Session) Ref() SessionRef {
	return SessionRef{Code: s.Code, Title: s.Title}
}

// HasAttribute reports whether field contains value exactly.
func (s Session) HasAttribute(field, value string) bool {
	return slices.Contains(s.Attributes[field], value)
}

// Detail returns every raw field except the excluded bookkeeping fields. A
// speakers list is replaced by its canonical views; any other speakers value
// is passed through, and an absent one stays absent.
func (s Session) Detail() map[string]any {
	detail := make(map[string]any, len(s.Raw))
	maps.Copy(detail, s.Raw)
	for _, field := range detailExcludedFields {
		delete(detail, field)
	}
	detail["code"] = s.Code
	if s.Speakers != nil {
		detail["speakers"] = NormalizeSpeakers(s.Speakers)
	}
	return detail
}
