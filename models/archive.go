package models

import "time"

// ArchiveEntry is a pointer to a past event, e.g. a recording or photo set.
// Title is expected to look like "September 1st, 2025".
type ArchiveEntry struct {
	Title     string    `json:"title" bson:"title"`
	Links     string    `json:"links" bson:"links"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type ArchiveGroup struct {
	Month   string         `json:"month"` // "September 2025"
	Entries []ArchiveEntry `json:"entries"`
}
