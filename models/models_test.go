package models

import "testing"

func TestEventTitle(t *testing.T) {
	e := Event{EventName: "Noise Night", Performers: "Duo Cichorium"}
	if e.Title() != "Noise Night" {
		t.Fatalf("expected event name, got %q", e.Title())
	}

	e.EventName = ""
	if e.Title() != "Duo Cichorium" {
		t.Fatalf("expected performers fallback, got %q", e.Title())
	}
}

func TestAccessibilitySymbol(t *testing.T) {
	if got := AccessibilitySymbol(AccessAccessible); got != "♿" {
		t.Fatalf("expected wheelchair symbol, got %q", got)
	}
	if got := AccessibilitySymbol("not-a-category"); got != "❓" {
		t.Fatalf("expected unknown symbol, got %q", got)
	}
	if got := AccessibilitySymbol(""); got != "❓" {
		t.Fatalf("expected unknown symbol for empty category, got %q", got)
	}
}

func TestVenueRefIsZero(t *testing.T) {
	if !(VenueRef{}).IsZero() {
		t.Fatal("empty VenueRef should be zero")
	}
	if (VenueRef{Accessibility: "stairs"}).IsZero() {
		t.Fatal("partially filled VenueRef should not be zero")
	}
}
