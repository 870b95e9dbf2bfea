package services

import (
	"context"
	"log"

	"github.com/bethanyfinesse/bridgemindapp/internal/database"
)

// connectionsKeyPrefix namespaces the per-device connect sets. Connection
// state is per-session data owned here — there is no process-wide counter.
const connectionsKeyPrefix = "connections:"

func connectionsKey(deviceID string) string {
	return connectionsKeyPrefix + deviceID
}

// RecordConnection marks a student as connected for this device and returns
// the device's total connection count. Repeating a connect is idempotent.
func RecordConnection(ctx context.Context, deviceID, studentID string) (int64, error) {
	if database.RedisClient == nil {
		return 0, nil
	}
	key := connectionsKey(deviceID)
	if err := database.RedisClient.SAdd(ctx, key, studentID).Err(); err != nil {
		return 0, err
	}
	count, err := database.RedisClient.SCard(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ConnectedStudents returns the set of student IDs this device has connected
// with. Redis failures degrade to an empty set.
func ConnectedStudents(ctx context.Context, deviceID string) map[string]bool {
	connected := make(map[string]bool)
	if database.RedisClient == nil || deviceID == "" {
		return connected
	}
	ids, err := database.RedisClient.SMembers(ctx, connectionsKey(deviceID)).Result()
	if err != nil {
		log.Printf("connections: lookup failed for %s: %v", deviceID, err)
		return connected
	}
	for _, id := range ids {
		connected[id] = true
	}
	return connected
}
