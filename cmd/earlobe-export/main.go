// Command earlobe-export writes the next two weeks of events (starting
// yesterday, so just-passed dates survive timezone skew) to events.csv in
// the current directory.
package main

import (
	"context"
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"earlobe/db"
	"earlobe/models"
	"earlobe/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dateLayout = "2006-01-02"

func main() {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -1).Format(dateLayout)
	to := now.AddDate(0, 0, 14).Format(dateLayout)

	// Dates are stored as YYYY-MM-DD strings, so a lexicographic range
	// query is a correct date-range query.
	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}

	events, err := utils.FindAndDecode[models.Event](context.Background(), db.EventsCollection, filter, &options.FindOptions{
		Sort: bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}},
	})
	if err != nil {
		log.Fatalf("Fetching events failed: %v", err)
	}
	if len(events) == 0 {
		log.Println("No events!")
		return
	}

	f, err := os.Create("events.csv")
	if err != nil {
		log.Fatalf("Creating events.csv failed: %v", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	header := []string{
		"id", "title", "date", "start_time", "end_time", "doors_time",
		"venueid", "venue_name", "venue_address", "attendance", "cost",
		"notaflof", "links", "description", "confirmed",
	}
	if err := writer.Write(header); err != nil {
		log.Fatalf("Writing CSV header failed: %v", err)
	}

	for _, event := range events {
		attendance := event.Attendance
		if event.Attendance == models.AttendanceOther {
			attendance = event.AttendanceOther
		}
		row := []string{
			event.EventID,
			event.Title(),
			event.Date,
			event.StartTime,
			event.EndTime,
			event.DoorsTime,
			event.VenueID,
			event.Venue.Name,
			event.Venue.Address,
			attendance,
			event.Cost,
			strconv.FormatBool(event.Notaflof),
			strings.TrimSpace(event.Links),
			event.Description,
			strconv.FormatBool(event.Confirmed),
		}
		if err := writer.Write(row); err != nil {
			log.Fatalf("Writing CSV row failed: %v", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Fatalf("Flushing CSV failed: %v", err)
	}
	log.Printf("Exported %d rows", len(events))
}
