package schedule

import (
	"testing"
	"time"

	"earlobe/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed clock for every bucketing test: Wednesday 2026-03-18, 15:00 UTC.
var testNow = time.Date(2026, 3, 18, 15, 0, 0, 0, time.UTC)

func confirmedOn(date string) models.Event {
	return models.Event{
		EventID:   "e" + date,
		EventName: "Show on " + date,
		Date:      date,
		Confirmed: true,
		Venue:     models.VenueRef{Name: "Somewhere"},
	}
}

func datesOf(groups []DayGroup) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Date)
	}
	return out
}

func TestBuildBoundaries(t *testing.T) {
	events := []models.Event{
		confirmedOn("2026-03-18"), // today
		confirmedOn("2026-03-25"), // today+7, still this week
		confirmedOn("2026-03-26"), // today+8, upcoming
	}

	sched := Build(events, nil, testNow, time.UTC)

	assert.Equal(t, []string{"2026-03-18", "2026-03-25"}, datesOf(sched.ThisWeek))
	assert.Equal(t, []string{"2026-03-26"}, datesOf(sched.Upcoming))
	assert.Empty(t, sched.PastUnconfirmed)
}

func TestBuildDropsConfirmedPast(t *testing.T) {
	events := []models.Event{
		confirmedOn("2026-03-17"),
		confirmedOn("2026-01-01"),
	}

	sched := Build(events, nil, testNow, time.UTC)

	assert.Empty(t, sched.ThisWeek)
	assert.Empty(t, sched.Upcoming)
	assert.Empty(t, sched.PastUnconfirmed)
}

func TestBuildPastUnconfirmed(t *testing.T) {
	pending := confirmedOn("2026-03-17")
	pending.Confirmed = false

	sched := Build([]models.Event{pending}, nil, testNow, time.UTC)

	require.Len(t, sched.PastUnconfirmed, 1)
	assert.Equal(t, "2026-03-17", sched.PastUnconfirmed[0].Date)
	assert.Empty(t, sched.ThisWeek)
}

func TestBuildSkipsUnparseableDates(t *testing.T) {
	broken := confirmedOn("soonish")

	sched := Build([]models.Event{broken}, nil, testNow, time.UTC)

	assert.Empty(t, sched.ThisWeek)
	assert.Empty(t, sched.Upcoming)
	assert.Empty(t, sched.PastUnconfirmed)
}

func TestBuildGroupsAscendingAndSortsByStartTime(t *testing.T) {
	late := confirmedOn("2026-03-20")
	late.EventID = "late"
	late.StartTime = "21:00"

	early := confirmedOn("2026-03-20")
	early.EventID = "early"
	early.StartTime = "09:00"

	untimed := confirmedOn("2026-03-20")
	untimed.EventID = "untimed"
	untimed.StartTime = ""

	nextDay := confirmedOn("2026-03-21")

	sched := Build([]models.Event{nextDay, late, early, untimed}, nil, testNow, time.UTC)

	require.Equal(t, []string{"2026-03-20", "2026-03-21"}, datesOf(sched.ThisWeek))

	got := sched.ThisWeek[0].Events
	require.Len(t, got, 3)
	// Missing start_time sorts as midnight, ahead of everything timed.
	assert.Equal(t, "untimed", got[0].EventID)
	assert.Equal(t, "early", got[1].EventID)
	assert.Equal(t, "late", got[2].EventID)
}

func TestBuildIdempotent(t *testing.T) {
	events := []models.Event{
		confirmedOn("2026-03-20"),
		confirmedOn("2026-03-19"),
		confirmedOn("2026-04-02"),
	}
	events[0].StartTime = "20:00"
	events[1].StartTime = ""

	first := Build(events, nil, testNow, time.UTC)
	second := Build(events, nil, testNow, time.UTC)

	assert.Equal(t, first, second)
}

func TestBuildTimezoneAnchor(t *testing.T) {
	// 2026-03-19 01:00 UTC is still 2026-03-18 in Toronto, so an event on
	// the 18th has not passed yet there.
	toronto, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)

	now := time.Date(2026, 3, 19, 1, 0, 0, 0, time.UTC)
	events := []models.Event{confirmedOn("2026-03-18")}

	utcSched := Build(events, nil, now, time.UTC)
	assert.Empty(t, utcSched.ThisWeek)

	torontoSched := Build(events, nil, now, toronto)
	assert.Equal(t, []string{"2026-03-18"}, datesOf(torontoSched.ThisWeek))
}

func TestRenderVenueResolutionChain(t *testing.T) {
	directory := map[string]models.Venue{
		"v1": {
			VenueID:       "v1",
			Name:          "Tranzac Club",
			Address:       "292 Brunswick Ave",
			Accessibility: "Step-free entrance",
			AccessEmoji:   models.AccessibilitySymbols[models.AccessAccessible],
		},
	}
	lookup := func(id string) (models.Venue, bool) {
		v, ok := directory[id]
		return v, ok
	}

	t.Run("directory hit", func(t *testing.T) {
		view := render(models.Event{VenueID: "v1"}, lookup)
		assert.Equal(t, "Tranzac Club", view.VenueName)
		assert.Equal(t, "♿", view.AccessEmoji)
	})

	t.Run("deleted venue falls back to snapshot", func(t *testing.T) {
		event := models.Event{
			VenueID: "vgone",
			Venue:   models.VenueRef{Name: "Old Spot", Address: "Somewhere"},
		}
		view := render(event, lookup)
		assert.Equal(t, "Old Spot", view.VenueName)
		assert.Equal(t, "❓", view.AccessEmoji)
	})

	t.Run("no venue at all renders unknown", func(t *testing.T) {
		view := render(models.Event{}, lookup)
		assert.Equal(t, unknownVenue, view.VenueName)
		assert.Equal(t, "❓", view.AccessEmoji)
	})
}

func TestRenderAttendanceLabels(t *testing.T) {
	cases := []struct {
		attendance string
		other      string
		want       string
	}{
		{models.AttendanceAllAges, "", "All Ages"},
		{models.Attendance19Plus, "", "19+"},
		{models.AttendanceOther, "Invitation / RSVP", "Invitation / RSVP"},
		{"", "", ""},
	}
	for _, tc := range cases {
		view := render(models.Event{Attendance: tc.attendance, AttendanceOther: tc.other}, nil)
		assert.Equal(t, tc.want, view.Attendance)
	}
}

func TestRenderParsesLinks(t *testing.T) {
	event := models.Event{Links: "Tickets - example.com/tix, https://bandcamp.com"}
	view := render(event, nil)

	require.Len(t, view.Links, 2)
	assert.Equal(t, "Tickets", view.Links[0].Label)
	assert.Equal(t, "https://example.com/tix", view.Links[0].URL)
	assert.Equal(t, "https://bandcamp.com", view.Links[1].URL)
}
