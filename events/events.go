// Package events carries booking change notifications between the booking
// service and live availability subscribers (SSE streams, cache invalidation).
// Events ride Redis pub/sub so every server instance sees every change.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// BookingChange says that the bookable slots for a creative on a date may have
// changed. Subscribers recompute; the event carries no slot data itself.
type BookingChange struct {
	CreativeID string `json:"creativeId"`
	Date       string `json:"date"`
}

func channelFor(creativeID string) string {
	return "bookings:" + creativeID
}

// Publisher emits BookingChange events.
type Publisher struct {
	client *redis.Client
}

// NewPublisher returns a Publisher over the events Redis client.
func NewPublisher() *Publisher {
	return &Publisher{client: utils.GetEventsClient()}
}

// Publish fans a change out to everyone watching the creative's calendar.
// Delivery is best effort; a failed publish is logged, never fatal, because
// the booking write has already committed.
func (p *Publisher) Publish(ctx context.Context, change BookingChange) {
	payload, err := json.Marshal(change)
	if err != nil {
		utils.GetLogger().Error("events: marshal booking change failed", zap.Error(err))
		return
	}
	if err := p.client.Publish(ctx, channelFor(change.CreativeID), payload).Err(); err != nil {
		utils.GetLogger().Error("events: publish booking change failed",
			zap.String("creativeID", change.CreativeID), zap.Error(err))
	}
}

// Subscriber receives BookingChange events for one creative.
type Subscriber struct {
	pubsub *redis.PubSub
}

// Subscribe starts listening for changes to the creative's calendar. Close the
// returned Subscriber to stop.
func Subscribe(ctx context.Context, creativeID string) *Subscriber {
	pubsub := utils.GetEventsClient().Subscribe(ctx, channelFor(creativeID))
	return &Subscriber{pubsub: pubsub}
}

// Changes returns the stream of decoded events. Undecodable payloads are
// dropped with a log line so one bad message cannot wedge the stream.
func (s *Subscriber) Changes(ctx context.Context) <-chan BookingChange {
	out := make(chan BookingChange)
	go func() {
		defer close(out)
		for msg := range s.pubsub.Channel() {
			var change BookingChange
			if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
				utils.GetLogger().Warn("events: dropping malformed booking change",
					zap.String("payload", msg.Payload), zap.Error(err))
				continue
			}
			select {
			case out <- change:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Close tears down the underlying Redis subscription.
func (s *Subscriber) Close() error {
	if err := s.pubsub.Close(); err != nil {
		return fmt.Errorf("error closing booking change subscription: %w", err)
	}
	return nil
}
