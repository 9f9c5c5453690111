// Package realtime fans availability changes out over Redis pub/sub so every API
// instance can push them to its websocket clients.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type Update struct {
	Resource     string    `json:"resource"`
	ID           uint      `json:"id"`
	Availability int       `json:"availability"`
	At           time.Time `json:"at"`
}

func Channel(resource string, id uint) string {
	return fmt.Sprintf("availability:%s:%d", resource, id)
}

type Hub struct {
	rdb *redis.Client
}

func NewHub(rdb *redis.Client) *Hub {
	return &Hub{rdb: rdb}
}

func (h *Hub) NotifyAvailability(ctx context.Context, resource string, id uint, availability int) {
	payload, err := json.Marshal(Update{
		Resource:     resource,
		ID:           id,
		Availability: availability,
		At:           time.Now().UTC(),
	})
	if err != nil {
		log.Printf("marshal availability update: %v", err)
		return
	}
	// the request context may end right after the response is written
	ctx = context.WithoutCancel(ctx)
	if err := h.rdb.Publish(ctx, Channel(resource, id), payload).Err(); err != nil {
		log.Printf("publish availability %s:%d failed: %v", resource, id, err)
	}
}

// Subscribe listens to one resource; the caller closes the returned PubSub.
func (h *Hub) Subscribe(ctx context.Context, resource string, id uint) *redis.PubSub {
	return h.rdb.Subscribe(ctx, Channel(resource, id))
}
