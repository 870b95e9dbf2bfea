package services

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/bethanyfinesse/bridgemindapp/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePostContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr error
	}{
		{name: "plain", content: "Feeling homesick today", want: "Feeling homesick today"},
		{name: "trims whitespace", content: "  hello there  \n", want: "hello there"},
		{name: "empty", content: "", wantErr: ErrEmptyPost},
		{name: "whitespace only", content: "   \t\n  ", wantErr: ErrEmptyPost},
		{name: "at the cap", content: strings.Repeat("a", models.MaxPostLength), want: strings.Repeat("a", models.MaxPostLength)},
		{name: "over the cap", content: strings.Repeat("a", models.MaxPostLength+1), wantErr: ErrPostTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePostContent(tt.content)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPostStartsUnliked(t *testing.T) {
	now := time.Now()
	post := NewPost("first day on campus", now)

	assert.False(t, post.ID.IsZero())
	assert.Equal(t, "first day on campus", post.Content)
	assert.Equal(t, now, post.CreatedAt)
	assert.Equal(t, now, post.UpdatedAt)
	assert.Zero(t, post.Likes)
	assert.Zero(t, post.Comments)
	assert.Empty(t, post.LikedBy)
	assert.False(t, post.LikedByDevice("some-device"))
}

func TestNewPostDistinctIDs(t *testing.T) {
	now := time.Now()
	a := NewPost("one", now)
	b := NewPost("two", now)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestPostsCacheRoundTripKeepsLikedState(t *testing.T) {
	// The cache serializes with encoding/json, which drops the json:"-"
	// fields of models.Post. The cache representation must keep them.
	post := NewPost("cache me", time.Now().UTC())
	post.LikedBy = []string{"device-a"}
	post.Likes = 1
	post.Comments = 2

	data, err := json.Marshal(toCachedPosts([]models.Post{post}))
	require.NoError(t, err)

	var cached []cachedPost
	require.NoError(t, json.Unmarshal(data, &cached))

	posts := fromCachedPosts(cached)
	require.Len(t, posts, 1)
	assert.Equal(t, post.ID, posts[0].ID)
	assert.Equal(t, 1, posts[0].Likes)
	assert.Equal(t, 2, posts[0].Comments)
	assert.True(t, posts[0].LikedByDevice("device-a"))
	assert.False(t, posts[0].LikedByDevice("device-b"))
	assert.True(t, post.UpdatedAt.Equal(posts[0].UpdatedAt))
}
