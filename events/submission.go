package events

import (
	"errors"
	"strings"
	"time"

	"earlobe/models"
)

// Validation failures shown to the submitter before anything is written.
var (
	ErrMissingTitle = errors.New("either an event name or performers must be provided")
	ErrMissingDate  = errors.New("a date is required")
	ErrMissingVenue = errors.New("a venue must be selected or entered")
)

// ParseSubmission normalizes a raw form payload into an Event ready for
// storage. The getter is r.FormValue in the handler; tests pass a map
// lookup. Venue resolution and id assignment happen later in the handler —
// here VenueID holds the raw selection and Venue the manual entry, if any.
func ParseSubmission(get func(string) string) (models.Event, error) {
	ev := models.Event{
		Email:           strings.TrimSpace(get("email")),
		EventName:       strings.TrimSpace(get("event_name")),
		Performers:      strings.TrimSpace(get("performers")),
		Date:            strings.TrimSpace(get("date")),
		StartTime:       strings.TrimSpace(get("start_time")),
		EndTime:         strings.TrimSpace(get("end_time")),
		DoorsTime:       strings.TrimSpace(get("doors_time")),
		VenueID:         strings.TrimSpace(get("venueid")),
		Attendance:      strings.TrimSpace(get("attendance")),
		AttendanceOther: strings.TrimSpace(get("attendance_other")),
		Cost:            strings.TrimSpace(get("cost")),
		Notaflof:        get("notaflof") == "true" || get("notaflof") == "on",
		Links:           strings.TrimSpace(get("links")),
		Description:     strings.TrimSpace(get("description")),
		Confirmed:       false,
		CreatedAt:       time.Now().UTC(),
	}

	if ev.EventName == "" && ev.Performers == "" {
		return models.Event{}, ErrMissingTitle
	}
	if ev.Date == "" {
		return models.Event{}, ErrMissingDate
	}

	if ev.Attendance != models.AttendanceOther {
		ev.AttendanceOther = ""
	}

	if ev.VenueID == "" {
		ev.Venue = models.VenueRef{
			Name:          strings.TrimSpace(get("venue_name")),
			Address:       strings.TrimSpace(get("venue_address")),
			Accessibility: strings.TrimSpace(get("venue_accessibility")),
		}
		if ev.Venue.IsZero() {
			return models.Event{}, ErrMissingVenue
		}
	}

	return ev, nil
}
