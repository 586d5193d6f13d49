package domain

import (
	"reflect"
	"testing"
)

func TestRawSpeakerNormalize(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  Speaker
		ok    bool
	}{
		{
			name:  "bare name kept verbatim",
			value: "  Jane Roe ",
			want:  Speaker{Name: "  Jane Roe "},
			ok:    true,
		},
		{
			name:  "empty bare name dropped",
			value: "",
		},
		{
			name: "full name wins over alternates",
			value: map[string]any{
				"fullName":       "Ada Lovelace",
				"globalFullName": "A. Lovelace",
				"firstName":      "Ada",
				"lastName":       "King",
			},
			want: Speaker{Name: "Ada Lovelace"},
			ok:   true,
		},
		{
			name: "global full name used when full name empty",
			value: map[string]any{
				"fullName":       "",
				"globalFullName": "Grace Hopper",
			},
			want: Speaker{Name: "Grace Hopper"},
			ok:   true,
		},
		{
			name: "first and last name joined",
			value: map[string]any{
				"firstName": "John",
				"lastName":  "Doe",
				"jobTitle":  "Data Scientist",
			},
			want: Speaker{Name: "John Doe", JobTitle: "Data Scientist"},
			ok:   true,
		},
		{
			name:  "only last name is trimmed",
			value: map[string]any{"lastName": "Doe"},
			want:  Speaker{Name: "Doe"},
			ok:    true,
		},
		{
			name:  "record without any name dropped",
			value: map[string]any{"jobTitle": "Engineer"},
		},
		{
			name: "fallback job title and company",
			value: map[string]any{
				"fullName":       "Linus",
				"globalJobtitle": "Maintainer",
				"globalCompany":  "Kernel",
			},
			want: Speaker{Name: "Linus", JobTitle: "Maintainer", Company: "Kernel"},
			ok:   true,
		},
		{
			name: "primary job title and company preferred",
			value: map[string]any{
				"fullName":       "Linus",
				"jobTitle":       "Lead",
				"globalJobtitle": "Maintainer",
				"companyName":    "Foundation",
				"globalCompany":  "Kernel",
			},
			want: Speaker{Name: "Linus", JobTitle: "Lead", Company: "Foundation"},
			ok:   true,
		},
		{
			name: "roles passed through",
			value: map[string]any{
				"fullName": "Pat",
				"roles":    []any{"Host", "Speaker"},
			},
			want: Speaker{Name: "Pat", Role: []any{"Host", "Speaker"}},
			ok:   true,
		},
		{
			name:  "number dropped",
			value: 42,
		},
		{
			name:  "nil dropped",
			value: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := RawSpeakerFromValue(tc.value).Normalize()
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("speaker = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestNormalizeSpeakersDropsUnresolvable(t *testing.T) {
	raw := []RawSpeaker{
		RawSpeakerFromValue("Alice"),
		RawSpeakerFromValue(map[string]any{"jobTitle": "ghost"}),
		RawSpeakerFromValue(7),
		RawSpeakerFromValue(map[string]any{"firstName": "Bob"}),
	}
	got := NormalizeSpeakers(raw)
	if len(got) != 2 {
		t.Fatalf("expected 2 speakers, got %d", len(got))
	}
	if got[0].Name != "Alice" || got[1].Name != "Bob" {
		t.Fatalf("unexpected order: %#v", got)
	}
}
