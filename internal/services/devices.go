package services

import (
	"context"
	"time"

	"github.com/bethanyfinesse/bridgemindapp/internal/database"
	"github.com/google/uuid"
)

const (
	deviceKeyPrefix = "device:"
	// DeviceTTL expires devices not seen for 90 days, along with the
	// per-device state keyed off them.
	DeviceTTL = 90 * 24 * time.Hour
)

func deviceKey(deviceID string) string {
	return deviceKeyPrefix + deviceID
}

// RegisterDevice issues a fresh anonymous device ID. No identity is attached;
// the ID only keys per-device state (preferences, liked flags, connects).
func RegisterDevice(ctx context.Context) (string, error) {
	deviceID := uuid.NewString()
	if database.RedisClient != nil {
		if err := database.RedisClient.Set(ctx, deviceKey(deviceID), time.Now().Unix(), DeviceTTL).Err(); err != nil {
			return "", err
		}
	}
	return deviceID, nil
}

// TouchDevice refreshes the device's last-seen marker. Best-effort.
func TouchDevice(ctx context.Context, deviceID string) {
	if database.RedisClient == nil || deviceID == "" {
		return
	}
	database.RedisClient.Set(ctx, deviceKey(deviceID), time.Now().Unix(), DeviceTTL)
}
