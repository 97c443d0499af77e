package utils

import "testing"

func TestGenerateIDLengthAndCharset(t *testing.T) {
	id := GenerateID(14)
	if len(id) != 14 {
		t.Fatalf("expected length 14, got %d", len(id))
	}
	for _, r := range id {
		ok := false
		for _, allowed := range letterRunes {
			if r == allowed {
				ok = true
				break
			}
		}
		if !ok {
			t.Fatalf("unexpected rune %q in id %q", r, id)
		}
	}
}

func TestParseLinks(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []LinkPair
	}{
		{"empty", "   ", nil},
		{
			"labelled pair",
			"Tickets - example.com/tix",
			[]LinkPair{{Label: "Tickets", URL: "https://example.com/tix"}},
		},
		{
			"bare url keeps itself as label",
			"https://bandcamp.com",
			[]LinkPair{{Label: "https://bandcamp.com", URL: "https://bandcamp.com"}},
		},
		{
			"multiple entries",
			"Tickets - example.com/tix, Info - https://venue.example",
			[]LinkPair{
				{Label: "Tickets", URL: "https://example.com/tix"},
				{Label: "Info", URL: "https://venue.example"},
			},
		},
		{
			"existing scheme untouched",
			"Stream - http://radio.example/live",
			[]LinkPair{{Label: "Stream", URL: "http://radio.example/live"}},
		},
		{
			"blank segments skipped",
			", ,https://ok.example,",
			[]LinkPair{{Label: "https://ok.example", URL: "https://ok.example"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseLinks(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d pairs, got %d (%v)", len(tc.want), len(got), got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("pair %d: expected %+v, got %+v", i, tc.want[i], got[i])
				}
			}
		})
	}
}
