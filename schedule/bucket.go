package schedule

import (
	"os"
	"sort"
	"time"

	"earlobe/models"
	"earlobe/utils"
)

const dateLayout = "2006-01-02"

// DefaultTimezone anchors "today" for bucketing. Overridable for
// deployments outside Toronto.
const DefaultTimezone = "America/Toronto"

// Location returns the canonical bucketing timezone, honoring the
// EARLOBE_TZ override. Falls back to UTC if the zone cannot be loaded.
func Location() *time.Location {
	name := os.Getenv("EARLOBE_TZ")
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// EventView is one rendered listing row: venue resolved, attendance and
// accessibility mapped, links parsed.
type EventView struct {
	EventID       string           `json:"eventid"`
	Title         string           `json:"title"`
	Date          string           `json:"date"`
	StartTime     string           `json:"start_time,omitempty"`
	EndTime       string           `json:"end_time,omitempty"`
	DoorsTime     string           `json:"doors_time,omitempty"`
	VenueID       string           `json:"venueid,omitempty"`
	VenueName     string           `json:"venue_name"`
	VenueAddress  string           `json:"venue_address,omitempty"`
	Accessibility string           `json:"accessibility,omitempty"`
	AccessEmoji   string           `json:"accessibilityEmoji"`
	Attendance    string           `json:"attendance,omitempty"`
	Cost          string           `json:"cost,omitempty"`
	Notaflof      bool             `json:"notaflof,omitempty"`
	Links         []utils.LinkPair `json:"links,omitempty"`
	Description   string           `json:"description,omitempty"`
	ImageURL      string           `json:"imageUrl,omitempty"`
	Confirmed     bool             `json:"confirmed"`
}

// DayGroup is all events sharing one calendar date, time-ordered.
type DayGroup struct {
	Date   string      `json:"date"`
	Events []EventView `json:"events"`
}

// Schedule is the full bucketed listing. PastUnconfirmed is served on the
// admin view only.
type Schedule struct {
	ThisWeek        []DayGroup `json:"thisWeek"`
	Upcoming        []DayGroup `json:"upcoming"`
	PastUnconfirmed []DayGroup `json:"pastUnconfirmed,omitempty"`
}

// VenueLookup resolves a venueid to its directory record. The second
// return is false when the venue no longer exists.
type VenueLookup func(venueID string) (models.Venue, bool)

const unknownVenue = "Unknown venue"

// render builds the display row for one event, resolving the venue by id
// first, then through the event's inline snapshot, then as unknown.
func render(event models.Event, lookup VenueLookup) EventView {
	view := EventView{
		EventID:     event.EventID,
		Title:       event.Title(),
		Date:        event.Date,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		DoorsTime:   event.DoorsTime,
		VenueID:     event.VenueID,
		Cost:        event.Cost,
		Notaflof:    event.Notaflof,
		Links:       utils.ParseLinks(event.Links),
		Description: event.Description,
		ImageURL:    event.ImageURL,
		Confirmed:   event.Confirmed,
	}

	switch event.Attendance {
	case models.AttendanceAllAges:
		view.Attendance = "All Ages"
	case models.Attendance19Plus:
		view.Attendance = "19+"
	case models.AttendanceOther:
		view.Attendance = event.AttendanceOther
	}

	if event.VenueID != "" && lookup != nil {
		if venue, ok := lookup(event.VenueID); ok {
			view.VenueName = venue.Name
			view.VenueAddress = venue.Address
			view.Accessibility = venue.Accessibility
			view.AccessEmoji = venue.AccessEmoji
			if view.AccessEmoji == "" {
				view.AccessEmoji = models.AccessibilitySymbols[models.AccessUnknown]
			}
			return view
		}
	}

	if !event.Venue.IsZero() {
		view.VenueName = event.Venue.Name
		view.VenueAddress = event.Venue.Address
		view.Accessibility = event.Venue.Accessibility
		view.AccessEmoji = models.AccessibilitySymbols[models.AccessUnknown]
		return view
	}

	view.VenueName = unknownVenue
	view.AccessEmoji = models.AccessibilitySymbols[models.AccessUnknown]
	return view
}

// Build partitions events relative to now's calendar date in loc.
//
//	d < today, unconfirmed  -> PastUnconfirmed
//	today <= d <= today+7   -> ThisWeek
//	d > today+7             -> Upcoming
//
// A confirmed event whose date has passed is dropped from every bucket, as
// is any event whose date does not parse. Running Build twice over the
// same input yields identical output.
func Build(events []models.Event, lookup VenueLookup, now time.Time, loc *time.Location) Schedule {
	today := time.Date(now.In(loc).Year(), now.In(loc).Month(), now.In(loc).Day(), 0, 0, 0, 0, loc)
	weekEnd := today.AddDate(0, 0, 7)

	var thisWeek, upcoming, past []models.Event
	for _, event := range events {
		d, err := time.ParseInLocation(dateLayout, event.Date, loc)
		if err != nil {
			continue
		}
		switch {
		case d.Before(today):
			if !event.Confirmed {
				past = append(past, event)
			}
		case !d.After(weekEnd):
			thisWeek = append(thisWeek, event)
		default:
			upcoming = append(upcoming, event)
		}
	}

	return Schedule{
		ThisWeek:        groupByDate(thisWeek, lookup),
		Upcoming:        groupByDate(upcoming, lookup),
		PastUnconfirmed: groupByDate(past, lookup),
	}
}

// sortTime treats a missing start_time as midnight so it sorts first.
func sortTime(t string) string {
	if t == "" {
		return "00:00"
	}
	return t
}

func groupByDate(events []models.Event, lookup VenueLookup) []DayGroup {
	byDate := make(map[string][]models.Event)
	for _, event := range events {
		byDate[event.Date] = append(byDate[event.Date], event)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	groups := make([]DayGroup, 0, len(dates))
	for _, date := range dates {
		day := byDate[date]
		sort.SliceStable(day, func(i, j int) bool {
			return sortTime(day[i].StartTime) < sortTime(day[j].StartTime)
		})

		views := make([]EventView, 0, len(day))
		for _, event := range day {
			views = append(views, render(event, lookup))
		}
		groups = append(groups, DayGroup{Date: date, Events: views})
	}
	return groups
}
