// Package query answers read-only searches over an immutable session
// collection: text search, attribute lookups, facet counts, and the derived
// speaker index.
package query

import (
	"strings"
	"sync"

	"github.com/louisbranch/sessionsearch/internal/platform/pagination"
	"github.com/louisbranch/sessionsearch/internal/services/catalog/domain"
)

const (
	// DefaultPageSize is the page size used when a caller passes no limit.
	DefaultPageSize = 20
	// DefaultSpeakerPageSize is the page size for speaker searches.
	DefaultSpeakerPageSize = 5
)

// Engine owns a loaded session collection. The collection must not be
// modified after NewEngine; every method is safe for concurrent use.
type Engine struct {
	sessions []domain.Session
	byCode   map[string]int

	speakerIndex func() []SpeakerEntry
	serviceIndex func() []ServiceEntry
}

// ServiceEntry is a distinct service name with the number of sessions
// listing it.
type ServiceEntry struct {
	Name         string `json:"name" jsonschema:"service name"`
	SessionCount int    `json:"sessionCount" jsonschema:"number of sessions covering this service"`
}

// NewEngine builds an engine over sessions in their given order. When codes
// repeat, lookups by code resolve to the first occurrence.
func NewEngine(sessions []domain.Session) *Engine {
	e := &Engine{
		sessions: sessions,
		byCode:   make(map[string]int, len(sessions)),
	}
	for i, session := range sessions {
		if _, ok := e.byCode[session.Code]; !ok {
			e.byCode[session.Code] = i
		}
	}
	e.speakerIndex = sync.OnceValue(e.buildSpeakerIndex)
	e.serviceIndex = sync.OnceValue(e.buildServiceIndex)
	return e
}

// Len returns the number of sessions in the collection.
func (e *Engine) Len() int {
	return len(e.sessions)
}

// Codes returns every session code in collection order.
func (e *Engine) Codes() []string {
	codes := make([]string, len(e.sessions))
	for i, session := range e.sessions {
		codes[i] = session.Code
	}
	return codes
}

// SearchSessions matches query case-insensitively against title, abstract,
// and speaker names. A blank query matches every session.
func (e *Engine) SearchSessions(query string, limit int, cursor string) pagination.Page[domain.Summary] {
	if strings.TrimSpace(query) == "" {
		return e.page(e.sessions, limit, cursor)
	}
	folder := domain.NewFolder()
	needle := folder.Fold(query)
	return e.page(e.where(func(s domain.Session) bool {
		return matchesText(folder, s, needle)
	}), limit, cursor)
}

func matchesText(folder *domain.Folder, s domain.Session, needle string) bool {
	if folder.Contains(s.Title, needle) || folder.Contains(s.Abstract, needle) {
		return true
	}
	for _, raw := range s.Speakers {
		speaker, ok := raw.Normalize()
		if ok && folder.Contains(speaker.Name, needle) {
			return true
		}
	}
	return false
}

// GetSessionDetails returns the detail view for code. It reports false when
// no session has that code.
func (e *Engine) GetSessionDetails(code string) (map[string]any, bool) {
	i, ok := e.byCode[code]
	if !ok {
		return nil, false
	}
	return e.sessions[i].Detail(), true
}

// SessionsByService returns sessions listing service.
func (e *Engine) SessionsByService(service string, limit int, cursor string) pagination.Page[domain.Summary] {
	return e.byAttribute(domain.AttrServices, service, limit, cursor)
}

// SessionsByLevel returns sessions at a level code such as "300". Unknown
// codes match nothing.
func (e *Engine) SessionsByLevel(code string, limit int, cursor string) pagination.Page[domain.Summary] {
	label, ok := domain.LevelLabel(code)
	if !ok {
		return e.page(nil, limit, cursor)
	}
	return e.byAttribute(domain.AttrLevel, label, limit, cursor)
}

// SessionsByRole returns sessions targeting role.
func (e *Engine) SessionsByRole(role string, limit int, cursor string) pagination.Page[domain.Summary] {
	return e.byAttribute(domain.AttrRoles, role, limit, cursor)
}

// SessionsByIndustry returns sessions tagged with industry.
func (e *Engine) SessionsByIndustry(industry string, limit int, cursor string) pagination.Page[domain.Summary] {
	return e.byAttribute(domain.AttrIndustries, industry, limit, cursor)
}

// SessionsBySegment returns sessions tagged with segment.
func (e *Engine) SessionsBySegment(segment string, limit int, cursor string) pagination.Page[domain.Summary] {
	return e.byAttribute(domain.AttrSegments, segment, limit, cursor)
}

// SessionsByFeature returns sessions tagged with feature.
func (e *Engine) SessionsByFeature(feature string, limit int, cursor string) pagination.Page[domain.Summary] {
	return e.byAttribute(domain.AttrFeatures, feature, limit, cursor)
}

// SessionsByTopic returns sessions tagged with topic.
func (e *Engine) SessionsByTopic(topic string, limit int, cursor string) pagination.Page[domain.Summary] {
	return e.byAttribute(domain.AttrTopics, topic, limit, cursor)
}

// SessionsByAreaOfInterest returns sessions tagged with area.
func (e *Engine) SessionsByAreaOfInterest(area string, limit int, cursor string) pagination.Page[domain.Summary] {
	return e.byAttribute(domain.AttrAreasOfInterest, area, limit, cursor)
}

func (e *Engine) byAttribute(field, value string, limit int, cursor string) pagination.Page[domain.Summary] {
	return e.page(e.where(func(s domain.Session) bool {
		return s.HasAttribute(field, value)
	}), limit, cursor)
}

// SearchServices lists distinct services whose name contains query
// case-insensitively. The query is not trimmed; only an empty query lists
// every service.
func (e *Engine) SearchServices(query string, limit int, cursor string) pagination.Page[ServiceEntry] {
	services := e.serviceIndex()
	if query != "" {
		folder := domain.NewFolder()
		needle := folder.Fold(query)
		matched := make([]ServiceEntry, 0, len(services))
		for _, service := range services {
			if folder.Contains(service.Name, needle) {
				matched = append(matched, service)
			}
		}
		services = matched
	}
	return pagination.Paginate(services, limit, cursor, DefaultPageSize)
}

func (e *Engine) buildServiceIndex() []ServiceEntry {
	counts := countValues(e.sessions, domain.AttrServices)
	services := make([]ServiceEntry, len(counts))
	for i, count := range counts {
		services[i] = ServiceEntry{Name: count.value, SessionCount: count.sessions}
	}
	return services
}

func (e *Engine) where(keep func(domain.Session) bool) []domain.Session {
	var matched []domain.Session
	for _, session := range e.sessions {
		if keep(session) {
			matched = append(matched, session)
		}
	}
	return matched
}

func (e *Engine) page(sessions []domain.Session, limit int, cursor string) pagination.Page[domain.Summary] {
	return pagination.Map(
		pagination.Paginate(sessions, limit, cursor, DefaultPageSize),
		domain.Session.Summary,
	)
}
