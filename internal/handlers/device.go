package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bethanyfinesse/bridgemindapp/internal/services"
)

// RegisterDeviceResponse represents the response after registering a device
type RegisterDeviceResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	DeviceID string `json:"device_id,omitempty"`
}

// RegisterDevice issues a fresh anonymous device ID. The app calls this once
// on first launch and keys all of its state off the returned ID.
func RegisterDevice(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	deviceID, err := services.RegisterDevice(ctx)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(RegisterDeviceResponse{
			Success: false,
			Message: "Failed to register device",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(RegisterDeviceResponse{
		Success:  true,
		DeviceID: deviceID,
	})
}
