package states

import "testing"

func TestMatch(t *testing.T) {
	t.Parallel()

	index := Default()

	tests := []struct {
		name     string
		query    string
		wantSlug string
	}{
		{
			name:     "name as part of a sentence",
			query:    "tell me about kerala",
			wantSlug: "kerala",
		},
		{
			name:     "case insensitive",
			query:    "WHAT IS SPECIAL ABOUT RAJASTHAN?",
			wantSlug: "rajasthan",
		},
		{
			name:     "multi word state name",
			query:    "best time to visit tamil nadu",
			wantSlug: "tamil-nadu",
		},
		{
			name:     "name embedded in a longer word still matches",
			query:    "keralafood recipes",
			wantSlug: "kerala",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := index.Match(tc.query)
			if got == nil {
				t.Fatalf("Match(%q) = nil, want slug %q", tc.query, tc.wantSlug)
			}
			if got.Slug != tc.wantSlug {
				t.Fatalf("Match(%q) = %q, want %q", tc.query, got.Slug, tc.wantSlug)
			}
		})
	}
}

func TestMatchFirstWins(t *testing.T) {
	t.Parallel()

	index := New([]State{
		{Slug: "goa", Name: "Goa", Intro: "first"},
		{Slug: "goa-two", Name: "Goa", Intro: "second"},
	})

	got := index.Match("a trip to goa")
	if got == nil || got.Intro != "first" {
		t.Fatalf("Match() = %v, want the first entry", got)
	}
}

func TestMatchNoHit(t *testing.T) {
	t.Parallel()

	index := Default()
	for _, query := range []string{"", "tell me about paris", "quantum computing"} {
		if got := index.Match(query); got != nil {
			t.Fatalf("Match(%q) = %q, want nil", query, got.Name)
		}
	}
}

func TestBySlug(t *testing.T) {
	t.Parallel()

	index := Default()

	got := index.BySlug("kerala")
	if got == nil || got.Name != "Kerala" {
		t.Fatalf("BySlug(kerala) = %v, want the Kerala entry", got)
	}

	if got := index.BySlug("atlantis"); got != nil {
		t.Fatalf("BySlug(atlantis) = %q, want nil", got.Name)
	}
}

func TestAllAndLen(t *testing.T) {
	t.Parallel()

	index := Default()
	if index.Len() != len(index.All()) {
		t.Fatalf("Len() = %d, All() has %d entries", index.Len(), len(index.All()))
	}
	if index.Len() == 0 {
		t.Fatal("default index is empty")
	}
}
