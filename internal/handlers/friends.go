package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bethanyfinesse/bridgemindapp/internal/catalog"
	"github.com/bethanyfinesse/bridgemindapp/internal/models"
	"github.com/bethanyfinesse/bridgemindapp/internal/services"
)

// FriendView is a student entry with the caller's connect state attached
type FriendView struct {
	models.Student
	Connected bool `json:"connected"`
}

// GetFriendsResponse represents the find-friends directory
type GetFriendsResponse struct {
	Success  bool         `json:"success"`
	Students []FriendView `json:"students"`
}

// ConnectRequest represents a connect action
type ConnectRequest struct {
	DeviceID  string `json:"device_id"`
	StudentID string `json:"student_id"`
}

// ConnectResponse represents the response after a connect
type ConnectResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
	Connections int64  `json:"connections"`
}

// GetFriends lists the student directory with per-device connected flags.
func GetFriends(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("device_id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	connected := services.ConnectedStudents(ctx, deviceID)

	students := catalog.Students()
	views := make([]FriendView, 0, len(students))
	for _, s := range students {
		views = append(views, FriendView{Student: s, Connected: connected[s.ID]})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GetFriendsResponse{
		Success:  true,
		Students: views,
	})
}

// Connect records a connect action for the device. Repeat connects to the
// same student are idempotent.
func Connect(w http.ResponseWriter, r *http.Request) {
	var req ConnectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ConnectResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if req.DeviceID == "" || req.StudentID == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ConnectResponse{
			Success: false,
			Message: "device_id and student_id are required",
		})
		return
	}

	// Connects only apply to students in the directory
	known := false
	for _, s := range catalog.Students() {
		if s.ID == req.StudentID {
			known = true
			break
		}
	}
	if !known {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ConnectResponse{
			Success: false,
			Message: "Unknown student",
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := services.RecordConnection(ctx, req.DeviceID, req.StudentID)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ConnectResponse{
			Success: false,
			Message: "Failed to record connection",
		})
		return
	}

	services.TouchDevice(ctx, req.DeviceID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ConnectResponse{
		Success:     true,
		Message:     "Connect sent",
		Connections: count,
	})
}
