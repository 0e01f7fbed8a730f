package mq

import (
	"context"
	"encoding/json"
	"log"

	"parlour/models"
	"parlour/rdx"
)

const channel = "parlour-events"

// Emit publishes a domain event to Redis. Failures are logged, never
// surfaced; event delivery is best effort and must not fail the request.
func Emit(ctx context.Context, eventName string, content models.Event) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s event: %v", eventName, err)
	}
}

// StartEventWorker consumes published events and logs them. Downstream
// consumers (mailers, dashboards) subscribe to the same channel.
func StartEventWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[EventWorker] Listening for domain events...")

	for msg := range ch {
		var event models.Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[EventWorker] Failed to parse event: %v", err)
			continue
		}
		log.Printf("[EventWorker] %s %s %s", event.Action, event.EntityType, event.EntityID)
	}
}
