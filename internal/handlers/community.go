package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bethanyfinesse/bridgemindapp/internal/models"
	"github.com/bethanyfinesse/bridgemindapp/internal/services"
	"github.com/bethanyfinesse/bridgemindapp/pkg/timeago"
)

// PostView is a post as rendered for one device: the liked flag and relative
// age are computed per request, the device list behind them never leaves the
// server.
type PostView struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	TimeAgo   string    `json:"time_ago"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	Liked     bool      `json:"liked"`
}

// CreatePostRequest represents the request to share a post
type CreatePostRequest struct {
	DeviceID string `json:"device_id,omitempty"`
	Content  string `json:"content"`
}

// CreatePostResponse represents the response after sharing a post
type CreatePostResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Post    *PostView `json:"post,omitempty"`
	Support string    `json:"support,omitempty"`
}

// GetPostsResponse represents the community board
type GetPostsResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Posts   []PostView `json:"posts"`
}

// ToggleLikeRequest represents a like toggle
type ToggleLikeRequest struct {
	DeviceID string `json:"device_id"`
	PostID   string `json:"post_id"`
}

// ToggleLikeResponse represents the post state after a toggle
type ToggleLikeResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Post    *PostView `json:"post,omitempty"`
}

// supportNotice is attached to flagged posts. Detection only; posting is
// never blocked.
const supportNotice = "If you're struggling, you're not alone. Reach out to a counselor or call your local crisis line — in the US, dial 988."

func postView(p models.Post, deviceID string, now time.Time) PostView {
	return PostView{
		ID:        p.ID.Hex(),
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		TimeAgo:   timeago.Format(p.CreatedAt, now),
		Likes:     p.Likes,
		Comments:  p.Comments,
		Liked:     p.LikedByDevice(deviceID),
	}
}

// GetPosts returns the board newest-first with the caller's liked flags.
func GetPosts(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("device_id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	posts, err := services.ListPosts(ctx)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(GetPostsResponse{
			Success: false,
			Message: "Failed to load posts",
			Posts:   []PostView{},
		})
		return
	}

	now := time.Now()
	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, postView(p, deviceID, now))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GetPostsResponse{
		Success: true,
		Posts:   views,
	})
}

// CreatePost shares a new anonymous post. Empty or whitespace-only content is
// refused and nothing is stored.
func CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(CreatePostResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	post, err := services.CreatePost(ctx, req.Content)
	if err == services.ErrEmptyPost || err == services.ErrPostTooLong {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(CreatePostResponse{
			Success: false,
			Message: "Please write something to share",
		})
		return
	}
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(CreatePostResponse{
			Success: false,
			Message: "Failed to share post",
		})
		return
	}

	services.TouchDevice(ctx, req.DeviceID)

	resp := CreatePostResponse{
		Success: true,
		Message: "Your anonymous post has been shared.",
	}
	view := postView(post, req.DeviceID, time.Now())
	resp.Post = &view
	if services.ContainsSelfHarmLanguage(post.Content) {
		resp.Support = supportNotice
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// ToggleLike flips the caller's like on a post. An unknown post ID is a
// no-op, not an error.
func ToggleLike(w http.ResponseWriter, r *http.Request) {
	var req ToggleLikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ToggleLikeResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if req.DeviceID == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ToggleLikeResponse{
			Success: false,
			Message: "device_id is required",
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	post, err := services.ToggleLike(ctx, req.PostID, req.DeviceID)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ToggleLikeResponse{
			Success: false,
			Message: "Failed to update post",
		})
		return
	}

	resp := ToggleLikeResponse{Success: true}
	if post == nil {
		resp.Message = "Post not found"
	} else {
		view := postView(*post, req.DeviceID, time.Now())
		resp.Post = &view
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
