package events

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"earlobe/db"
	"earlobe/models"
	"earlobe/rdx"
	"earlobe/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func invalidateListingCaches() {
	for _, key := range []string{"events:public", "schedule:public", "calendar:dates"} {
		if _, err := rdx.RdxDel(key); err != nil {
			log.Printf("Cache deletion failed for %s: %v", key, err)
		}
	}
}

// GetEvents returns every event, newest first, for the admin review list.
func GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	pageStr := r.URL.Query().Get("page")
	limitStr := r.URL.Query().Get("limit")

	page := 1
	limit := 50

	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage > 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	int64Limit := int64(limit)
	int64Skip := int64((page - 1) * limit)

	events, err := utils.FindAndDecode[models.Event](context.TODO(), db.EventsCollection, bson.M{}, &options.FindOptions{
		Skip:  &int64Skip,
		Limit: &int64Limit,
		Sort:  bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	utils.RespondWithJSON(w, http.StatusOK, events)
}

// GetPublicEvents returns confirmed events only, in date order.
func GetPublicEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, _ := rdx.RdxGet("events:public"); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	events, err := utils.FindAndDecode[models.Event](context.TODO(), db.EventsCollection, bson.M{"confirmed": true}, &options.FindOptions{
		Sort: bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	data := utils.ToJSON(events)
	if err := rdx.RdxSet("events:public", string(data)); err != nil {
		log.Printf("Failed to cache public events: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// GetEvent returns a single event for the public detail page. Unconfirmed
// events are invisible here.
func GetEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("eventid")

	var event models.Event
	err := db.EventsCollection.FindOne(context.TODO(), bson.M{"eventid": id, "confirmed": true}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Event not found", http.StatusNotFound)
		} else {
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(event); err != nil {
		http.Error(w, "Failed to encode event data", http.StatusInternalServerError)
	}
}

// GetEventAdmin returns any event by id, confirmed or not, for the edit form.
func GetEventAdmin(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("eventid")

	var event models.Event
	err := db.EventsCollection.FindOne(context.TODO(), bson.M{"eventid": id}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Event not found", http.StatusNotFound)
		} else {
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, event)
}
