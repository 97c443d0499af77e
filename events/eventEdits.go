package events

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"earlobe/db"
	"earlobe/live"
	"earlobe/models"
	"earlobe/mq"
	"earlobe/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// updateFieldsFor builds the full editable field set from an admin payload.
// Absent fields come through as zero values, which matches the edit form's
// fallback-to-empty behavior.
func updateFieldsFor(event models.Event) bson.M {
	return bson.M{
		"email":            event.Email,
		"event_name":       event.EventName,
		"performers":       event.Performers,
		"date":             event.Date,
		"start_time":       event.StartTime,
		"end_time":         event.EndTime,
		"doors_time":       event.DoorsTime,
		"venueid":          event.VenueID,
		"venue":            event.Venue,
		"attendance":       event.Attendance,
		"attendance_other": event.AttendanceOther,
		"cost":             event.Cost,
		"notaflof":         event.Notaflof,
		"links":            event.Links,
		"description":      event.Description,
		"updatedAt":        time.Now().UTC(),
	}
}

func applyEventUpdate(w http.ResponseWriter, eventID string, updateFields bson.M) bool {
	result, err := db.EventsCollection.UpdateOne(
		context.TODO(),
		bson.M{"eventid": eventID},
		bson.M{"$set": updateFields},
	)
	if err != nil {
		log.Printf("Error updating event %s: %v", eventID, err)
		http.Error(w, "Error updating event", http.StatusInternalServerError)
		return false
	}
	if result.MatchedCount == 0 {
		http.Error(w, "Event not found", http.StatusNotFound)
		return false
	}

	invalidateListingCaches()
	return true
}

// EditEvent lets an admin correct event fields any number of times without
// touching the confirmed flag.
func EditEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")

	var event models.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if event.EventName == "" && event.Performers == "" {
		http.Error(w, ErrMissingTitle.Error(), http.StatusBadRequest)
		return
	}

	if !applyEventUpdate(w, eventID, updateFieldsFor(event)) {
		return
	}

	go mq.Emit(r.Context(), "event-edited", models.Index{
		EntityType: "event", EntityId: eventID, Method: "PUT",
	})

	utils.SendResponse(w, http.StatusOK, utils.M{"eventid": eventID}, "Event updated", nil)
}

// ApproveEvent applies the admin's final field values and flips the event to
// confirmed, making it publicly visible. There is no un-approve; approving
// an already-confirmed event just re-applies the field set.
func ApproveEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")

	var event models.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if event.EventName == "" && event.Performers == "" {
		http.Error(w, ErrMissingTitle.Error(), http.StatusBadRequest)
		return
	}

	updateFields := updateFieldsFor(event)
	updateFields["confirmed"] = true

	if !applyEventUpdate(w, eventID, updateFields) {
		return
	}

	go mq.Emit(r.Context(), "event-approved", models.Index{
		EntityType: "event", EntityId: eventID, Method: "PUT",
	})
	live.Notify("approved", eventID, event.Title())

	utils.SendResponse(w, http.StatusOK, utils.M{"eventid": eventID}, "Event approved", nil)
}

func DeleteEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")

	result, err := db.EventsCollection.DeleteOne(context.TODO(), bson.M{"eventid": eventID})
	if err != nil {
		log.Printf("Error deleting event %s: %v", eventID, err)
		http.Error(w, "Error deleting event", http.StatusInternalServerError)
		return
	}
	if result.DeletedCount == 0 {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	invalidateListingCaches()

	go mq.Emit(r.Context(), "event-deleted", models.Index{
		EntityType: "event", EntityId: eventID, Method: "DELETE",
	})
	live.Notify("deleted", eventID, "")

	utils.SendResponse(w, http.StatusOK, nil, "Event deleted", nil)
}
