package domain

import "strings"

// SpeakerKind identifies which shape a raw speaker entry arrived in.
type SpeakerKind int

const (
	// SpeakerUnsupported is any entry that is neither a name nor a record.
	SpeakerUnsupported SpeakerKind = iota
	// SpeakerName is a bare display-name string.
	SpeakerName
	// SpeakerRecord is a structured record with alternate field names.
	SpeakerRecord
)

// RawSpeaker is one speaker entry exactly as the dataset provides it.
type RawSpeaker struct {
	Kind   SpeakerKind
	Name   string
	Record SpeakerFields
}

// SpeakerFields holds the record fields a structured speaker may carry. The
// dataset uses several alternates for the same value.
type SpeakerFields struct {
	FullName       string
	GlobalFullName string
	FirstName      string
	LastName       string
	JobTitle       string
	GlobalJobTitle string
	CompanyName    string
	GlobalCompany  string
	Roles          any
}

// Speaker is the canonical speaker view.
type Speaker struct {
	Name     string `json:"name" jsonschema:"speaker display name"`
	JobTitle string `json:"jobTitle,omitempty" jsonschema:"speaker job title"`
	Company  string `json:"company,omitempty" jsonschema:"speaker company"`
	Role     any    `json:"role,omitempty" jsonschema:"speaker roles as provided by the dataset"`
}

// RawSpeakerFromValue classifies a decoded value as a speaker entry.
func RawSpeakerFromValue(value any) RawSpeaker {
	switch v := value.(type) {
	case string:
		return RawSpeaker{Kind: SpeakerName, Name: v}
	case map[string]any:
		return RawSpeaker{Kind: SpeakerRecord, Record: SpeakerFields{
			FullName:       stringField(v, "fullName"),
			GlobalFullName: stringField(v, "globalFullName"),
			FirstName:      stringField(v, "firstName"),
			LastName:       stringField(v, "lastName"),
			JobTitle:       stringField(v, "jobTitle"),
			GlobalJobTitle: stringField(v, "globalJobtitle"),
			CompanyName:    stringField(v, "companyName"),
			GlobalCompany:  stringField(v, "globalCompany"),
			Roles:          v["roles"],
		}}
	default:
		return RawSpeaker{Kind: SpeakerUnsupported}
	}
}

// Normalize resolves a raw entry into its canonical view. It reports false
// when the entry has no resolvable name and must be dropped.
func (r RawSpeaker) Normalize() (Speaker, bool) {
	switch r.Kind {
	case SpeakerName:
		if r.Name == "" {
			return Speaker{}, false
		}
		return Speaker{Name: r.Name}, true
	case SpeakerRecord:
		rec := r.Record
		name := firstNonEmpty(rec.FullName, rec.GlobalFullName)
		if name == "" {
			name = strings.TrimSpace(rec.FirstName + " " + rec.LastName)
		}
		if name == "" {
			return Speaker{}, false
		}
		return Speaker{
			Name:     name,
			JobTitle: firstNonEmpty(rec.JobTitle, rec.GlobalJobTitle),
			Company:  firstNonEmpty(rec.CompanyName, rec.GlobalCompany),
			Role:     rec.Roles,
		}, true
	default:
		return Speaker{}, false
	}
}

// NormalizeSpeakers normalizes entries in order, dropping unresolvable ones.
func NormalizeSpeakers(raw []RawSpeaker) []Speaker {
	speakers := make([]Speaker, 0, len(raw))
	for _, entry := range raw {
		if speaker, ok := entry.Normalize(); ok {
			speakers = append(speakers, speaker)
		}
	}
	return speakers
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func stringField(m map[string]any, key string) string {
	value, _ := m[key].(string)
	return value
}
