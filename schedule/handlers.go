package schedule

import (
	"context"
	"log"
	"net/http"
	"sort"
	"time"

	"earlobe/db"
	"earlobe/models"
	"earlobe/rdx"
	"earlobe/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// venueLookup loads the venue directory once per request; row rendering
// then resolves ids against the in-memory map instead of querying per row.
// A directory fetch failure degrades to snapshot/unknown rendering rather
// than failing the whole listing.
func venueLookup() VenueLookup {
	venues, err := utils.FindAndDecode[models.Venue](context.TODO(), db.VenuesCollection, bson.M{})
	if err != nil {
		log.Printf("Venue directory fetch failed, rendering from snapshots: %v", err)
		return nil
	}
	byID := make(map[string]models.Venue, len(venues))
	for _, v := range venues {
		byID[v.VenueID] = v
	}
	return func(id string) (models.Venue, bool) {
		v, ok := byID[id]
		return v, ok
	}
}

func fetchEvents(filter bson.M) ([]models.Event, error) {
	return utils.FindAndDecode[models.Event](context.TODO(), db.EventsCollection, filter, &options.FindOptions{
		Sort: bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}},
	})
}

// GetSchedule serves the public listing: confirmed events bucketed into
// this-week and upcoming day groups.
func GetSchedule(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, _ := rdx.RdxGet("schedule:public"); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	events, err := fetchEvents(bson.M{"confirmed": true})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load events")
		return
	}

	sched := Build(events, venueLookup(), time.Now(), Location())
	sched.PastUnconfirmed = nil

	data := utils.ToJSON(sched)
	if err := rdx.SetWithExpiry("schedule:public", string(data), 5*time.Minute); err != nil {
		log.Printf("Failed to cache schedule: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// GetScheduleAdmin serves the moderation view: every event, including the
// past-unconfirmed bucket. Never cached.
func GetScheduleAdmin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	events, err := fetchEvents(bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load events")
		return
	}

	sched := Build(events, venueLookup(), time.Now(), Location())
	utils.RespondWithJSON(w, http.StatusOK, sched)
}

// GetCalendarDates returns the sorted distinct dates that have a confirmed
// event, for marking calendar cells.
func GetCalendarDates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, _ := rdx.RdxGet("calendar:dates"); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	events, err := fetchEvents(bson.M{"confirmed": true})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load events")
		return
	}

	seen := make(map[string]bool)
	dates := []string{}
	for _, event := range events {
		if event.Date != "" && !seen[event.Date] {
			seen[event.Date] = true
			dates = append(dates, event.Date)
		}
	}
	sort.Strings(dates)

	data := utils.ToJSON(map[string][]string{"dates": dates})
	if err := rdx.SetWithExpiry("calendar:dates", string(data), 5*time.Minute); err != nil {
		log.Printf("Failed to cache calendar dates: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
