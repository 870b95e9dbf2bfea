package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/bethanyfinesse/bridgemindapp/internal/database"
	"github.com/google/uuid"
)

// communityChannel is the Redis Pub/Sub channel for board events.
const communityChannel = "community:events"

// CommunityEvent is the payload broadcast over Redis and WebSocket when the
// board changes.
type CommunityEvent struct {
	Type      string    `json:"type"` // "post.created"
	PostID    string    `json:"post_id,omitempty"`
	Content   string    `json:"content,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// CommunityConn is the minimal interface our WebSocket implementation must satisfy.
type CommunityConn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// communityHub is a registry of live feed connections.
type communityHub struct {
	mu          sync.RWMutex
	connections map[uuid.UUID]CommunityConn
}

var (
	feedHub           = &communityHub{connections: make(map[uuid.UUID]CommunityConn)}
	subscriberStarted sync.Once
)

// RegisterFeedConnection adds a WebSocket connection to the live feed and
// returns its handle for later removal.
func RegisterFeedConnection(conn CommunityConn) uuid.UUID {
	id := uuid.New()
	feedHub.mu.Lock()
	feedHub.connections[id] = conn
	feedHub.mu.Unlock()
	return id
}

// UnregisterFeedConnection removes a connection from the live feed.
func UnregisterFeedConnection(id uuid.UUID) {
	feedHub.mu.Lock()
	delete(feedHub.connections, id)
	feedHub.mu.Unlock()
}

// FanOutCommunityEvent sends an event to every local feed connection.
// Best-effort: a failed write only logs.
func FanOutCommunityEvent(event CommunityEvent) {
	feedHub.mu.RLock()
	defer feedHub.mu.RUnlock()

	for _, conn := range feedHub.connections {
		go func(c CommunityConn) {
			if err := c.WriteJSON(event); err != nil {
				log.Printf("community: error writing feed event: %v", err)
			}
		}(conn)
	}
}

// PublishCommunityEvent announces a board change on Redis so every server
// instance fans it out to its own connections. A dead Redis never fails the
// originating write.
func PublishCommunityEvent(event CommunityEvent) {
	if database.RedisClient == nil {
		FanOutCommunityEvent(event)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := database.RedisClient.Publish(ctx, communityChannel, data).Err(); err != nil {
		log.Printf("community: publish failed, falling back to local fan-out: %v", err)
		FanOutCommunityEvent(event)
	}
}

// StartCommunitySubscriber begins consuming board events from Redis and
// fanning them out to local WebSocket connections. Safe to call more than
// once; only the first call starts the goroutine.
func StartCommunitySubscriber() {
	subscriberStarted.Do(func() {
		if database.RedisClient == nil {
			return
		}
		go func() {
			sub := database.RedisClient.Subscribe(context.Background(), communityChannel)
			defer sub.Close()

			for msg := range sub.Channel() {
				var event CommunityEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					continue
				}
				FanOutCommunityEvent(event)
			}
		}()
	})
}
