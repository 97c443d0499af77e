package events

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"earlobe/db"
	"earlobe/filemgr"
	"earlobe/live"
	"earlobe/models"
	"earlobe/mq"
	"earlobe/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SubmitEvent handles the public submission form. The event is stored
// unconfirmed; when the submitter entered a brand-new venue it is persisted
// first, unapproved, and referenced by id.
func SubmitEvent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Unable to parse form", http.StatusBadRequest)
		return
	}

	event, err := ParseSubmission(r.FormValue)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Image upload happens before any document write; a failed upload
	// aborts the whole submission.
	if r.MultipartForm != nil {
		fileName, err := filemgr.SaveFormFile(r.MultipartForm, "image", filemgr.EntityEvent, filemgr.PicPoster, false)
		if err != nil {
			http.Error(w, "Image upload failed", http.StatusBadRequest)
			return
		}
		if fileName != "" {
			event.ImageURL = "/static/uploads/event/poster/" + fileName
		}
	}

	if event.VenueID != "" {
		// Existing venue: must be approved to be selectable.
		var venue models.Venue
		err := db.VenuesCollection.FindOne(context.TODO(), bson.M{"venueid": event.VenueID, "approved": true}).Decode(&venue)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				http.Error(w, "Unknown venue", http.StatusBadRequest)
			} else {
				http.Error(w, "Database error", http.StatusInternalServerError)
			}
			return
		}
		// Keep a snapshot on the event so rendering survives venue deletion.
		event.Venue = models.VenueRef{
			Name:          venue.Name,
			Address:       venue.Address,
			Accessibility: venue.Accessibility,
		}
	} else {
		// Brand-new venue: persist it unapproved before the event write.
		// It stays invisible everywhere until an admin approves it.
		venue := models.Venue{
			VenueID:       "v" + utils.GenerateID(12),
			Name:          event.Venue.Name,
			Address:       event.Venue.Address,
			Accessibility: event.Venue.Accessibility,
			Approved:      false,
			CreatedAt:     time.Now().UTC(),
		}
		if _, err := db.VenuesCollection.InsertOne(context.TODO(), venue); err != nil {
			log.Printf("Error inserting venue: %v", err)
			http.Error(w, "Error saving venue", http.StatusInternalServerError)
			return
		}
		event.VenueID = venue.VenueID
	}

	event.EventID = utils.GenerateID(14)

	// Check for EventID collisions
	exists := db.EventsCollection.FindOne(context.TODO(), bson.M{"eventid": event.EventID}).Err()
	if exists == nil {
		http.Error(w, "Event ID collision, try again", http.StatusInternalServerError)
		return
	}

	result, err := db.EventsCollection.InsertOne(context.TODO(), event)
	if err != nil || result.InsertedID == nil {
		// The venue write above is not transactional with this one; an
		// orphaned unapproved venue may remain and is cleaned up by admins.
		log.Printf("Error inserting event into MongoDB: %v", err)
		http.Error(w, "Error saving event", http.StatusInternalServerError)
		return
	}

	invalidateListingCaches()

	go mq.Emit(r.Context(), "event-submitted", models.Index{
		EntityType: "event", EntityId: event.EventID, Method: "POST",
	})
	live.Notify("submitted", event.EventID, event.Title())

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(event); err != nil {
		log.Printf("Error encoding event response: %v", err)
	}
}
