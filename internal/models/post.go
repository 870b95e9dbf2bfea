package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxPostLength caps community post bodies.
const MaxPostLength = 500

// Post is an anonymous community board entry. There is no author identity —
// per-viewer state (the liked flag) is tracked by device ID in LikedBy.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"-"`

	Content  string `bson:"content" json:"content"`
	Likes    int    `bson:"likes" json:"likes"`
	Comments int    `bson:"comments" json:"comments"`

	// Device IDs that liked this post. Never returned to clients.
	LikedBy []string `bson:"liked_by,omitempty" json:"-"`
}

// LikedByDevice reports whether the given device has liked the post.
func (p *Post) LikedByDevice(deviceID string) bool {
	if deviceID == "" {
		return false
	}
	for _, id := range p.LikedBy {
		if id == deviceID {
			return true
		}
	}
	return false
}
