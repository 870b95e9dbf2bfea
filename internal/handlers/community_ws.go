package handlers

import (
	"net/http"
	"time"

	"github.com/bethanyfinesse/bridgemindapp/internal/services"
	"github.com/gorilla/websocket"
)

var feedUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS for WebSocket is handled at the HTTP layer already.
		return true
	},
}

// CommunityFeed streams board events (new posts) to the app over WebSocket.
// Read-only for clients; writes go through the HTTP endpoints.
func CommunityFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := feedUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	services.StartCommunitySubscriber()

	id := services.RegisterFeedConnection(conn)
	defer services.UnregisterFeedConnection(id)

	// Reader loop: clients send nothing meaningful; we only watch for
	// disconnects and pongs.
	conn.SetReadLimit(1024)
	_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	conn.SetPongHandler(func(appData string) error {
		_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	}
}
