package routes

import (
	"github.com/bethanyfinesse/bridgemindapp/internal/handlers"
	"github.com/bethanyfinesse/bridgemindapp/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(r *chi.Mux) {
	// Device registration (anonymous, no identity)
	r.Post("/api/device/register", handlers.RegisterDevice)

	// Preferences routes
	r.Get("/api/preferences", handlers.GetPreferences)
	r.Post("/api/preferences", handlers.SavePreferences)
	r.Get("/api/preferences/options", handlers.GetPreferenceOptions)

	// Match routes
	r.Get("/api/matches", handlers.GetMatches)
	r.Get("/api/matches/sample", handlers.GetSampleMatches)

	// Counselor directory routes
	r.Get("/api/counselors", handlers.GetCounselors)
	r.Post("/api/counselors/match", handlers.MatchCounselor)

	// Find-friends routes
	r.Get("/api/friends", handlers.GetFriends)
	r.Post("/api/friends/connect", handlers.Connect)

	// Community board routes (posting gets its own stricter limiter)
	r.Get("/api/community/posts", handlers.GetPosts)
	r.With(middleware.PostRateLimit).Post("/api/community/posts", handlers.CreatePost)
	r.Post("/api/community/posts/like", handlers.ToggleLike)

	// WebSocket endpoint for the live community feed
	r.Get("/ws/community", handlers.CommunityFeed)
}
