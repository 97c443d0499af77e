package models

import "time"

// VenueRef is the inline venue snapshot carried by an event when the
// submitter proposed a brand-new, not-yet-approved venue. It is also the
// render fallback when the referenced venue has since been deleted.
type VenueRef struct {
	Name          string `json:"name" bson:"name"`
	Address       string `json:"address" bson:"address"`
	Accessibility string `json:"accessibility" bson:"accessibility"`
}

func (v VenueRef) IsZero() bool {
	return v.Name == "" && v.Address == "" && v.Accessibility == ""
}

type Event struct {
	EventID         string    `json:"eventid" bson:"eventid"`
	Email           string    `json:"email" bson:"email"`
	EventName       string    `json:"event_name" bson:"event_name"`
	Performers      string    `json:"performers" bson:"performers"`
	Date            string    `json:"date" bson:"date"` // YYYY-MM-DD
	StartTime       string    `json:"start_time" bson:"start_time"`
	EndTime         string    `json:"end_time,omitempty" bson:"end_time,omitempty"`
	DoorsTime       string    `json:"doors_time,omitempty" bson:"doors_time,omitempty"`
	VenueID         string    `json:"venueid,omitempty" bson:"venueid,omitempty"`
	Venue           VenueRef  `json:"venue,omitempty" bson:"venue,omitempty"`
	Attendance      string    `json:"attendance" bson:"attendance"`
	AttendanceOther string    `json:"attendance_other,omitempty" bson:"attendance_other,omitempty"`
	Cost            string    `json:"cost,omitempty" bson:"cost,omitempty"`
	Notaflof        bool      `json:"notaflof" bson:"notaflof"`
	Links           string    `json:"links,omitempty" bson:"links,omitempty"`
	Description     string    `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL        string    `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Confirmed       bool      `json:"confirmed" bson:"confirmed"`
	SubmittedBy     string    `json:"submittedBy,omitempty" bson:"submittedBy,omitempty"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Title is what listings show for an event: the event name when present,
// otherwise the performer line.
func (e Event) Title() string {
	if e.EventName != "" {
		return e.EventName
	}
	return e.Performers
}

// Attendance enum values
const (
	AttendanceAllAges = "all_ages"
	Attendance19Plus  = "19_plus"
	AttendanceOther   = "other"
)
