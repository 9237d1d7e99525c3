package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"milovat/models"
	"milovat/rdx"
)

const eventsChannel = "building-events"

// Notify is a placeholder for broadcasting events without further processing.
func Notify(eventName string, content models.Index) error {
	fmt.Println(eventName, "Notified", content)
	return nil
}

// Emit publishes entity-change events to Redis so interested workers can
// react without the handler knowing about them.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, eventsChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s event to Redis: %v", eventName, err)
	}
}

// StartEventWorker consumes the event channel and keeps per-entity activity
// counters up to date.
func StartEventWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, eventsChannel)
	ch := sub.Channel()

	log.Println("[EventWorker] Listening for building events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[EventWorker] Failed to parse event: %v", err)
			continue
		}

		key := fmt.Sprintf("stats:%s:%s", event.EntityType, event.EntityId)
		if err := rdx.Conn.HIncrBy(ctx, key, event.Method, 1).Err(); err != nil {
			log.Printf("[EventWorker] Failed to bump %s: %v", key, err)
		}
	}
}
