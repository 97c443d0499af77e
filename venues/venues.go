package venues

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"earlobe/db"
	"earlobe/models"
	"earlobe/mq"
	"earlobe/rdx"
	"earlobe/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func invalidateVenueCaches() {
	for _, key := range []string{"venues:public", "venues:options", "schedule:public"} {
		if _, err := rdx.RdxDel(key); err != nil {
			log.Printf("Cache deletion failed for %s: %v", key, err)
		}
	}
}

// GetVenues returns approved venues only, sorted by name, for the public
// venues page.
func GetVenues(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, _ := rdx.RdxGet("venues:public"); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	venues, err := utils.FindAndDecode[models.Venue](context.TODO(), db.VenuesCollection, bson.M{"approved": true}, &options.FindOptions{
		Sort: bson.D{{Key: "name", Value: 1}},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch venues")
		return
	}
	if venues == nil {
		venues = []models.Venue{}
	}

	data := utils.ToJSON(venues)
	if err := rdx.RdxSet("venues:public", string(data)); err != nil {
		log.Printf("Failed to cache venues: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// GetVenueOptions returns id/name pairs of approved venues for the
// submission form's venue picker.
func GetVenueOptions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, _ := rdx.RdxGet("venues:options"); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	venues, err := utils.FindAndDecode[models.Venue](context.TODO(), db.VenuesCollection, bson.M{"approved": true}, &options.FindOptions{
		Sort: bson.D{{Key: "name", Value: 1}},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch venues")
		return
	}

	opts := make([]models.VenueOption, 0, len(venues))
	for _, v := range venues {
		opts = append(opts, models.VenueOption{VenueID: v.VenueID, Name: v.Name})
	}

	data := utils.ToJSON(opts)
	if err := rdx.RdxSet("venues:options", string(data)); err != nil {
		log.Printf("Failed to cache venue options: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// GetAllVenues returns every venue, pending ones first, for the admin list.
func GetAllVenues(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	venues, err := utils.FindAndDecode[models.Venue](context.TODO(), db.VenuesCollection, bson.M{}, &options.FindOptions{
		Sort: bson.D{{Key: "approved", Value: 1}, {Key: "name", Value: 1}},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch venues")
		return
	}
	if venues == nil {
		venues = []models.Venue{}
	}

	utils.RespondWithJSON(w, http.StatusOK, venues)
}

// GetVenue returns one venue by id. Unapproved venues resolve only for
// admins via the /all listing, so this public lookup filters on approved.
func GetVenue(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("venueid")

	var venue models.Venue
	err := db.VenuesCollection.FindOne(context.TODO(), bson.M{"venueid": id, "approved": true}).Decode(&venue)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Venue not found", http.StatusNotFound)
		} else {
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, venue)
}

func decodeVenuePayload(r *http.Request) (models.Venue, error) {
	var venue models.Venue
	if err := json.NewDecoder(r.Body).Decode(&venue); err != nil {
		return models.Venue{}, err
	}
	venue.Name = strings.TrimSpace(venue.Name)
	venue.Address = strings.TrimSpace(venue.Address)
	if venue.AccessEmoji == "" {
		venue.AccessEmoji = models.AccessibilitySymbol(venue.Accessibility)
	}
	return venue, nil
}

// CreateVenue lets an admin add a venue directly; it is approved on the
// spot, unlike venues arriving through event submissions.
func CreateVenue(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	venue, err := decodeVenuePayload(r)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if venue.Name == "" {
		http.Error(w, "Venue name is required", http.StatusBadRequest)
		return
	}

	venue.VenueID = "v" + utils.GenerateID(12)
	venue.Approved = true
	venue.CreatedAt = time.Now().UTC()

	if _, err := db.VenuesCollection.InsertOne(context.TODO(), venue); err != nil {
		log.Printf("Error inserting venue: %v", err)
		http.Error(w, "Error saving venue", http.StatusInternalServerError)
		return
	}

	invalidateVenueCaches()

	go mq.Emit(r.Context(), "venue-created", models.Index{
		EntityType: "venue", EntityId: venue.VenueID, Method: "POST",
	})

	utils.SendResponse(w, http.StatusCreated, venue, "Venue created", nil)
}

func applyVenueUpdate(w http.ResponseWriter, venueID string, updateFields bson.M) bool {
	result, err := db.VenuesCollection.UpdateOne(
		context.TODO(),
		bson.M{"venueid": venueID},
		bson.M{"$set": updateFields},
	)
	if err != nil {
		log.Printf("Error updating venue %s: %v", venueID, err)
		http.Error(w, "Error updating venue", http.StatusInternalServerError)
		return false
	}
	if result.MatchedCount == 0 {
		http.Error(w, "Venue not found", http.StatusNotFound)
		return false
	}

	invalidateVenueCaches()
	return true
}

func updateFieldsFor(venue models.Venue) bson.M {
	return bson.M{
		"name":               venue.Name,
		"address":            venue.Address,
		"accessibility":      venue.Accessibility,
		"accessibilityEmoji": venue.AccessEmoji,
		"accessLink":         venue.AccessLink,
		"link":               venue.Link,
		"mapLink":            venue.MapLink,
		"notes":              venue.Notes,
		"updatedAt":          time.Now().UTC(),
	}
}

// EditVenue updates venue fields without touching the approved flag.
func EditVenue(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	venueID := ps.ByName("venueid")

	venue, err := decodeVenuePayload(r)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if venue.Name == "" {
		http.Error(w, "Venue name is required", http.StatusBadRequest)
		return
	}

	if !applyVenueUpdate(w, venueID, updateFieldsFor(venue)) {
		return
	}

	go mq.Emit(r.Context(), "venue-edited", models.Index{
		EntityType: "venue", EntityId: venueID, Method: "PUT",
	})

	utils.SendResponse(w, http.StatusOK, utils.M{"venueid": venueID}, "Venue updated", nil)
}

// ApproveVenue applies the admin's field values and makes the venue visible
// and selectable. Approving twice is harmless.
func ApproveVenue(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	venueID := ps.ByName("venueid")

	venue, err := decodeVenuePayload(r)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if venue.Name == "" {
		http.Error(w, "Venue name is required", http.StatusBadRequest)
		return
	}

	updateFields := updateFieldsFor(venue)
	updateFields["approved"] = true

	if !applyVenueUpdate(w, venueID, updateFields) {
		return
	}

	go mq.Emit(r.Context(), "venue-approved", models.Index{
		EntityType: "venue", EntityId: venueID, Method: "PUT",
	})

	utils.SendResponse(w, http.StatusOK, utils.M{"venueid": venueID}, "Venue approved", nil)
}

// DeleteVenue removes a venue. Events keep rendering through their stored
// venue snapshot.
func DeleteVenue(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	venueID := ps.ByName("venueid")

	result, err := db.VenuesCollection.DeleteOne(context.TODO(), bson.M{"venueid": venueID})
	if err != nil {
		log.Printf("Error deleting venue %s: %v", venueID, err)
		http.Error(w, "Error deleting venue", http.StatusInternalServerError)
		return
	}
	if result.DeletedCount == 0 {
		http.Error(w, "Venue not found", http.StatusNotFound)
		return
	}

	invalidateVenueCaches()

	go mq.Emit(r.Context(), "venue-deleted", models.Index{
		EntityType: "venue", EntityId: venueID, Method: "DELETE",
	})

	utils.SendResponse(w, http.StatusOK, nil, "Venue deleted", nil)
}
