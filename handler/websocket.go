package handler

import (
	"context"
	"errors"
	"strconv"

	"carbon_zero/constants"
	"carbon_zero/realtime"
	"carbon_zero/service"
	"carbon_zero/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// AvailabilityUpgrade checks the route and lets websocket upgrades through.
func AvailabilityUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return utils.ErrorResponse(c, fiber.StatusUpgradeRequired, constants.WEBSOCKET_UPGRADE_REQUIRED, errors.New("not a websocket request"))
	}
	resource := c.Params("resource")
	if resource != service.ResourceRoom && resource != service.ResourceEvent {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_AVAILABILITY_RESOURCE, errors.New(resource))
	}
	if _, err := strconv.ParseUint(c.Params("id"), 10, 64); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	return c.Next()
}

// AvailabilityFeed sends the current counter, then every change published on Redis.
func AvailabilityFeed(c *websocket.Conn) {
	resource := c.Params("resource")
	id64, _ := strconv.ParseUint(c.Params("id"), 10, 64)
	id := uint(id64)

	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshot, err := currentAvailability(ctx, resource, id)
	if err != nil {
		c.WriteJSON(fiber.Map{"message": constants.INVALID_AVAILABILITY_RESOURCE, "error": err.Error()})
		return
	}
	if err := c.WriteJSON(snapshot); err != nil {
		return
	}

	readDone := readUntilClosed(c, cancel)
	// the Conn goes back to a pool once this returns
	defer func() {
		c.Close()
		<-readDone
	}()

	if hub == nil {
		<-ctx.Done()
		return
	}

	pubsub := hub.Subscribe(ctx, resource, id)
	defer pubsub.Close()

	channel := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-channel:
			if !ok {
				return
			}
			if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				return
			}
		}
	}
}

type messageReader interface {
	ReadMessage() (int, []byte, error)
}

// readUntilClosed drains client frames only to notice the client going away.
// The returned channel is closed once the loop has stopped touching r.
func readUntilClosed(r messageReader, cancel context.CancelFunc) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()
		for {
			if _, _, err := r.ReadMessage(); err != nil {
				return
			}
		}
	}()
	return done
}

func currentAvailability(ctx context.Context, resource string, id uint) (realtime.Update, error) {
	update := realtime.Update{Resource: resource, ID: id}
	switch resource {
	case service.ResourceRoom:
		room, err := services.Hotels.GetRoom(ctx, id)
		if err != nil {
			return update, err
		}
		update.Availability = room.Availability
		update.At = room.UpdatedAt
	case service.ResourceEvent:
		event, err := services.Events.Get(ctx, id)
		if err != nil {
			return update, err
		}
		update.Availability = event.Availability
		update.At = event.UpdatedAt
	}
	return update, nil
}
