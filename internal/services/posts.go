package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bethanyfinesse/bridgemindapp/internal/database"
	"github.com/bethanyfinesse/bridgemindapp/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const postsCollection = "posts"

var (
	// ErrEmptyPost is returned when the trimmed post body is empty.
	ErrEmptyPost = errors.New("post content is empty")
	// ErrPostTooLong is returned when the body exceeds the length cap.
	ErrPostTooLong = fmt.Errorf("post content exceeds %d characters", models.MaxPostLength)
)

// ValidatePostContent trims the body and refuses empty or oversized posts.
func ValidatePostContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", ErrEmptyPost
	}
	if len(trimmed) > models.MaxPostLength {
		return "", ErrPostTooLong
	}
	return trimmed, nil
}

// NewPost constructs an unliked post with a fresh timestamp-derived identifier.
func NewPost(content string, now time.Time) models.Post {
	return models.Post{
		ID:        primitive.NewObjectIDFromTimestamp(now),
		CreatedAt: now,
		UpdatedAt: now,
		Content:   content,
	}
}

// EnsurePostIndexes creates the MongoDB indexes the community board queries rely on.
func EnsurePostIndexes(ctx context.Context) error {
	_, err := database.DB.Collection(postsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}

// SeedCommunityPosts inserts the starter posts on an empty board so the feed
// is never blank on first launch.
func SeedCommunityPosts(ctx context.Context) error {
	coll := database.DB.Collection(postsCollection)
	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	starters := []struct {
		content  string
		age      time.Duration
		likes    int
		comments int
	}{
		{"Starting therapy has been one of the best decisions I made. Remember, seeking help is a sign of strength.", 2 * time.Hour, 24, 5},
		{"Does anyone have tips for managing academic stress during finals week? Feeling overwhelmed.", 5 * time.Hour, 12, 8},
		{"Grateful for this supportive community. You all remind me I'm not alone in this journey.", 24 * time.Hour, 31, 3},
	}

	docs := make([]interface{}, 0, len(starters))
	for _, s := range starters {
		post := NewPost(s.content, now.Add(-s.age))
		post.Likes = s.likes
		post.Comments = s.comments
		docs = append(docs, post)
	}

	_, err = coll.InsertMany(ctx, docs)
	return err
}

func postsCacheKey() string {
	return CacheKey("community", "posts")
}

// cachedPost is the Redis cache representation of a post. models.Post hides
// liked_by and updated_at from its API JSON, and the cache serializes with
// encoding/json too — caching models.Post directly would strip the per-device
// liked state on every hit.
type cachedPost struct {
	ID        primitive.ObjectID `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	Content   string             `json:"content"`
	Likes     int                `json:"likes"`
	Comments  int                `json:"comments"`
	LikedBy   []string           `json:"liked_by"`
}

func toCachedPosts(posts []models.Post) []cachedPost {
	out := make([]cachedPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, cachedPost{
			ID:        p.ID,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
			Content:   p.Content,
			Likes:     p.Likes,
			Comments:  p.Comments,
			LikedBy:   p.LikedBy,
		})
	}
	return out
}

func fromCachedPosts(cached []cachedPost) []models.Post {
	out := make([]models.Post, 0, len(cached))
	for _, c := range cached {
		out = append(out, models.Post{
			ID:        c.ID,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
			Content:   c.Content,
			Likes:     c.Likes,
			Comments:  c.Comments,
			LikedBy:   c.LikedBy,
		})
	}
	return out
}

// ListPosts returns the board newest-first. Recent results are cached in
// Redis; every mutation invalidates the cache.
func ListPosts(ctx context.Context) ([]models.Post, error) {
	var cached []cachedPost
	if ok, err := Cache.Get(postsCacheKey(), &cached); ok && err == nil {
		return fromCachedPosts(cached), nil
	}

	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := database.DB.Collection(postsCollection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	if err := Cache.SetWithTTL(postsCacheKey(), toCachedPosts(posts), MinCacheTTL); err != nil {
		log.Printf("posts: cache warm failed: %v", err)
	}
	return posts, nil
}

// CreatePost validates and stores a new anonymous post, then announces it on
// the live feed. The like counter starts at zero and nobody has liked it.
func CreatePost(ctx context.Context, content string) (models.Post, error) {
	trimmed, err := ValidatePostContent(content)
	if err != nil {
		return models.Post{}, err
	}

	post := NewPost(trimmed, time.Now())
	if _, err := database.DB.Collection(postsCollection).InsertOne(ctx, post); err != nil {
		return models.Post{}, err
	}

	invalidatePostsCache()
	PublishCommunityEvent(CommunityEvent{
		Type:      "post.created",
		PostID:    post.ID.Hex(),
		Content:   post.Content,
		Timestamp: post.CreatedAt,
	})
	return post, nil
}

// ToggleLike flips the device's liked flag on the matching post. Each flip is
// one conditional update gated on current liked_by membership, so concurrent
// toggles from different devices never lose counts, and an unlike can only
// follow a like. An unknown post ID is a no-op, not an error; the returned
// post is nil in that case.
func ToggleLike(ctx context.Context, postID, deviceID string) (*models.Post, error) {
	objectID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, nil
	}

	coll := database.DB.Collection(postsCollection)
	now := time.Now()
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	// Like: matches only while the device is absent from liked_by.
	var post models.Post
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID, "liked_by": bson.M{"$ne": deviceID}},
		bson.M{
			"$addToSet": bson.M{"liked_by": deviceID},
			"$inc":      bson.M{"likes": 1},
			"$set":      bson.M{"updated_at": now},
		}, after).Decode(&post)
	if err == nil {
		invalidatePostsCache()
		return &post, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	// Unlike: the device already liked the post, or the post does not exist.
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID, "liked_by": deviceID},
		bson.M{
			"$pull": bson.M{"liked_by": deviceID},
			"$inc":  bson.M{"likes": -1},
			"$set":  bson.M{"updated_at": now},
		}, after).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	invalidatePostsCache()
	return &post, nil
}

func invalidatePostsCache() {
	if err := Cache.Delete(postsCacheKey()); err != nil {
		log.Printf("posts: cache invalidate failed: %v", err)
	}
}
