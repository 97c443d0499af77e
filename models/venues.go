package models

import "time"

type Venue struct {
	VenueID       string    `json:"venueid" bson:"venueid"`
	Name          string    `json:"name" bson:"name"`
	Address       string    `json:"address" bson:"address"`
	Accessibility string    `json:"accessibility" bson:"accessibility"`
	AccessEmoji   string    `json:"accessibilityEmoji,omitempty" bson:"accessibilityEmoji,omitempty"`
	AccessLink    string    `json:"accessLink,omitempty" bson:"accessLink,omitempty"`
	Link          string    `json:"link,omitempty" bson:"link,omitempty"`
	MapLink       string    `json:"mapLink,omitempty" bson:"mapLink,omitempty"`
	Notes         string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Approved      bool      `json:"approved" bson:"approved"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Accessibility categories a venue can be tagged with. The symbol each one
// renders as is fixed (see AccessibilitySymbols).
const (
	AccessAccessible = "accessible"
	AccessCaveats    = "caveats"
	AccessStairs     = "stairs"
	AccessUnknown    = "unknown"
)

var AccessibilitySymbols = map[string]string{
	AccessAccessible: "♿",
	AccessCaveats:    "⚠️",
	AccessStairs:     "🪜",
	AccessUnknown:    "❓",
}

// AccessibilitySymbol maps a category to its display symbol, defaulting to
// the unknown marker for absent or unrecognized values.
func AccessibilitySymbol(category string) string {
	if s, ok := AccessibilitySymbols[category]; ok {
		return s
	}
	return AccessibilitySymbols[AccessUnknown]
}

// VenueOption is the id+name pair offered in the submission form dropdown.
type VenueOption struct {
	VenueID string `json:"venueid" bson:"venueid"`
	Name    string `json:"name" bson:"name"`
}
