package archive

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"earlobe/db"
	"earlobe/models"
	"earlobe/rdx"
	"earlobe/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetArchive returns past-event pointers grouped by month, newest month
// first.
func GetArchive(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, _ := rdx.RdxGet("archive:grouped"); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	entries, err := utils.FindAndDecode[models.ArchiveEntry](context.TODO(), db.ArchiveCollection, bson.M{}, &options.FindOptions{
		Sort: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load archive")
		return
	}

	groups := GroupByMonth(entries)

	data := utils.ToJSON(groups)
	if err := rdx.RdxSet("archive:grouped", string(data)); err != nil {
		log.Printf("Failed to cache archive: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// AddArchiveEntry records a past-event pointer. Admin only.
func AddArchiveEntry(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var entry models.ArchiveEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	entry.Title = strings.TrimSpace(entry.Title)
	entry.Links = strings.TrimSpace(entry.Links)
	if entry.Title == "" {
		http.Error(w, "A title is required", http.StatusBadRequest)
		return
	}
	entry.CreatedAt = time.Now().UTC()

	if _, err := db.ArchiveCollection.InsertOne(context.TODO(), entry); err != nil {
		log.Printf("Error inserting archive entry: %v", err)
		http.Error(w, "Error saving archive entry", http.StatusInternalServerError)
		return
	}

	if _, err := rdx.RdxDel("archive:grouped"); err != nil {
		log.Printf("Cache deletion failed for archive:grouped: %v", err)
	}

	utils.SendResponse(w, http.StatusCreated, entry, "Archive entry added", nil)
}
