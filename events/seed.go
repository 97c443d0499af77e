package events

import (
	"context"
	"log"
	"net/http"
	"time"

	"earlobe/db"
	"earlobe/models"
	"earlobe/utils"

	"github.com/julienschmidt/httprouter"
)

var sampleEvents = []models.Event{
	{
		Email:      "curator@earlobe.ca",
		EventName:  "Resonant Bodies",
		Performers: "Duo Cichorium, Jaz Tsui",
		Date:       "2026-01-12",
		StartTime:  "19:30",
		EndTime:    "21:00",
		DoorsTime:  "19:00",
		Venue: models.VenueRef{
			Name:          "Arraymusic Studio",
			Address:       "Toronto, ON",
			Accessibility: "Ground floor, accessible entrance, gender-neutral washrooms",
		},
		Attendance:  models.AttendanceAllAges,
		Cost:        "$15 / $10 student",
		Links:       "https://arraymusic.com",
		Description: "An evening of experimental performance exploring feedback systems, embodied electronics, and slow-moving harmonic structures.",
	},
	{
		Email:      "events@earlobe.ca",
		EventName:  "Signals in the Dark",
		Performers: "Louis Pino, Toronto Laptop Orchestra (small ensemble)",
		Date:       "2026-02-04",
		StartTime:  "20:00",
		DoorsTime:  "19:30",
		Venue: models.VenueRef{
			Name:          "Tranzac Club",
			Address:       "292 Brunswick Ave, Toronto, ON",
			Accessibility: "Main hall, step-free entrance, accessible washrooms",
		},
		Attendance:  models.Attendance19Plus,
		Cost:        "PWYC",
		Links:       "https://tranzac.org",
		Description: "Improvised electronic and electroacoustic works focusing on signal flow, spatialization, and live processing.",
	},
	{
		Email:      "submit@earlobe.ca",
		EventName:  "Objects That Listen",
		Performers: "Various Artists",
		Date:       "2026-03-18",
		StartTime:  "18:00",
		EndTime:    "22:00",
		DoorsTime:  "17:30",
		Venue: models.VenueRef{
			Name:          "Private Studio (West End)",
			Address:       "Private residence – RSVP required for address",
			Accessibility: "Entrance involves two steps",
		},
		Attendance:      models.AttendanceOther,
		AttendanceOther: "Invitation / RSVP",
		Cost:            "Free",
		Description:     "A listening-focused gathering featuring sound installations, quiet performances, and shared discussion.",
	},
}

// SeedEvents inserts the sample data set, unconfirmed, for demos and local
// development. Admin only.
func SeedEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	inserted := 0
	for _, event := range sampleEvents {
		event.EventID = utils.GenerateID(14)
		event.Confirmed = false
		event.CreatedAt = time.Now().UTC()

		if _, err := db.EventsCollection.InsertOne(context.TODO(), event); err != nil {
			log.Printf("Seed error for %q: %v", event.EventName, err)
			continue
		}
		inserted++
	}

	invalidateListingCaches()
	utils.SendResponse(w, http.StatusOK, map[string]int{"inserted": inserted}, "Seeding complete", nil)
}
