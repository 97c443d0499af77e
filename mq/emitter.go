package mq

import (
	"context"
	"encoding/json"
	"log"

	"earlobe/models"
	"earlobe/rdx"
)

const channel = "listing-events"

// Emit publishes an entity change notice to Redis, fire-and-forget.
// Callers run it in a goroutine; a lost notice only delays cache warmers.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s to Redis: %v", eventName, err)
		return
	}
}

// StartListingWorker drains the notification channel and logs activity.
// It exists so dashboards and future indexers share one subscription point.
func StartListingWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[ListingWorker] Listening for listing events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[ListingWorker] Failed to parse event: %v", err)
			continue
		}
		log.Printf("[ListingWorker] %s %s %s", event.Method, event.EntityType, event.EntityId)
	}
}
