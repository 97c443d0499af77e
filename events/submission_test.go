package events

import (
	"errors"
	"testing"

	"earlobe/models"
)

func formGetter(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestParseSubmissionRequiresTitleOrPerformers(t *testing.T) {
	_, err := ParseSubmission(formGetter(map[string]string{
		"date":    "2026-03-18",
		"venueid": "v1",
	}))
	if !errors.Is(err, ErrMissingTitle) {
		t.Fatalf("expected ErrMissingTitle, got %v", err)
	}

	// Performers alone is enough.
	ev, err := ParseSubmission(formGetter(map[string]string{
		"performers": "Duo Cichorium",
		"date":       "2026-03-18",
		"venueid":    "v1",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Title() != "Duo Cichorium" {
		t.Fatalf("expected performers as title, got %q", ev.Title())
	}
}

func TestParseSubmissionRequiresDate(t *testing.T) {
	_, err := ParseSubmission(formGetter(map[string]string{
		"event_name": "Noise Night",
		"venueid":    "v1",
	}))
	if !errors.Is(err, ErrMissingDate) {
		t.Fatalf("expected ErrMissingDate, got %v", err)
	}
}

func TestParseSubmissionRequiresSomeVenue(t *testing.T) {
	_, err := ParseSubmission(formGetter(map[string]string{
		"event_name": "Noise Night",
		"date":       "2026-03-18",
	}))
	if !errors.Is(err, ErrMissingVenue) {
		t.Fatalf("expected ErrMissingVenue, got %v", err)
	}
}

func TestParseSubmissionInlineVenue(t *testing.T) {
	ev, err := ParseSubmission(formGetter(map[string]string{
		"event_name":          "Noise Night",
		"date":                "2026-03-18",
		"venue_name":          "  Basement Space  ",
		"venue_accessibility": "Two steps at entrance",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := models.VenueRef{Name: "Basement Space", Accessibility: "Two steps at entrance"}
	if ev.Venue != want {
		t.Fatalf("expected trimmed inline venue %+v, got %+v", want, ev.Venue)
	}
	if ev.VenueID != "" {
		t.Fatalf("expected empty venueid, got %q", ev.VenueID)
	}
}

func TestParseSubmissionAlwaysUnconfirmed(t *testing.T) {
	ev, err := ParseSubmission(formGetter(map[string]string{
		"event_name": "Noise Night",
		"date":       "2026-03-18",
		"venueid":    "v1",
		"confirmed":  "true", // must be ignored
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Confirmed {
		t.Fatal("submissions must start unconfirmed")
	}
}

func TestParseSubmissionClearsStrayAttendanceOther(t *testing.T) {
	ev, err := ParseSubmission(formGetter(map[string]string{
		"event_name":       "Noise Night",
		"date":             "2026-03-18",
		"venueid":          "v1",
		"attendance":       models.AttendanceAllAges,
		"attendance_other": "members only",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.AttendanceOther != "" {
		t.Fatalf("attendance_other should be cleared, got %q", ev.AttendanceOther)
	}

	ev, err = ParseSubmission(formGetter(map[string]string{
		"event_name":       "Noise Night",
		"date":             "2026-03-18",
		"venueid":          "v1",
		"attendance":       models.AttendanceOther,
		"attendance_other": "members only",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.AttendanceOther != "members only" {
		t.Fatalf("attendance_other should survive, got %q", ev.AttendanceOther)
	}
}

func TestParseSubmissionNotaflofForms(t *testing.T) {
	for _, raw := range []string{"true", "on"} {
		ev, err := ParseSubmission(formGetter(map[string]string{
			"event_name": "Noise Night",
			"date":       "2026-03-18",
			"venueid":    "v1",
			"notaflof":   raw,
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ev.Notaflof {
			t.Fatalf("notaflof=%q should parse as true", raw)
		}
	}
}
