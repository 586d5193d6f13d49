package query

import (
	"strings"

	"github.com/louisbranch/sessionsearch/internal/platform/pagination"
	"github.com/louisbranch/sessionsearch/internal/services/catalog/domain"
)

// SpeakerEntry is a speaker with every session they appear in. Speakers are
// identified by resolved name alone; the first session that names a speaker
// supplies the job title, company, and role.
type SpeakerEntry struct {
	Name     string              `json:"name" jsonschema:"speaker display name"`
	JobTitle string              `json:"jobTitle,omitempty" jsonschema:"speaker job title"`
	Company  string              `json:"company,omitempty" jsonschema:"speaker company"`
	Role     any                 `json:"role,omitempty" jsonschema:"speaker roles as provided by the dataset"`
	Sessions []domain.SessionRef `json:"sessions" jsonschema:"sessions the speaker appears in"`
}

// SpeakerPage is one page of speaker search results.
type SpeakerPage struct {
	Speakers   []SpeakerEntry `json:"speakers" jsonschema:"speakers on this page"`
	Total      int            `json:"total" jsonschema:"number of matching speakers"`
	HasMore    bool           `json:"hasMore" jsonschema:"true when another page follows"`
	NextCursor string         `json:"nextCursor,omitempty" jsonschema:"cursor for the next page; absent on the last page"`
}

// AllSpeakers returns the speaker index in order of first appearance. The
// returned entries are shared and must not be modified.
func (e *Engine) AllSpeakers() []SpeakerEntry {
	return e.speakerIndex()
}

// SearchSpeakers pages speakers whose name contains text case-insensitively.
// Blank text matches every speaker.
func (e *Engine) SearchSpeakers(text string, limit int, cursor string) SpeakerPage {
	speakers := e.speakerIndex()
	if strings.TrimSpace(text) != "" {
		folder := domain.NewFolder()
		needle := folder.Fold(text)
		matched := make([]SpeakerEntry, 0, len(speakers))
		for _, speaker := range speakers {
			if folder.Contains(speaker.Name, needle) {
				matched = append(matched, speaker)
			}
		}
		speakers = matched
	}
	page := pagination.Paginate(speakers, limit, cursor, DefaultSpeakerPageSize)
	return SpeakerPage{
		Speakers:   page.Items,
		Total:      page.Total,
		HasMore:    page.HasMore,
		NextCursor: page.NextCursor,
	}
}

func (e *Engine) buildSpeakerIndex() []SpeakerEntry {
	var entries []SpeakerEntry
	index := map[string]int{}
	for _, session := range e.sessions {
		ref := session.Ref()
		for _, speaker := range domain.NormalizeSpeakers(session.Speakers) {
			i, ok := index[speaker.Name]
			if !ok {
				i = len(entries)
				index[speaker.Name] = i
				entries = append(entries, SpeakerEntry{
					Name:     speaker.Name,
					JobTitle: speaker.JobTitle,
					Company:  speaker.Company,
					Role:     speaker.Role,
				})
			}
			if n := len(entries[i].Sessions); n > 0 && entries[i].Sessions[n-1].Code == ref.Code {
				continue
			}
			entries[i].Sessions = append(entries[i].Sessions, ref)
		}
	}
	if entries == nil {
		entries = []SpeakerEntry{}
	}
	return entries
}
