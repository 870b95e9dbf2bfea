package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/bethanyfinesse/bridgemindapp/internal/config"
	"github.com/bethanyfinesse/bridgemindapp/internal/database"
	"github.com/bethanyfinesse/bridgemindapp/internal/middleware"
	"github.com/bethanyfinesse/bridgemindapp/internal/routes"
	"github.com/bethanyfinesse/bridgemindapp/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func main() {
	// Load env
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	// Connect to PostgreSQL
	log.Printf("Connecting to PostgreSQL...")
	if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}
	defer database.DisconnectPostgres()

	// Connect to Redis
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer database.DisconnectRedis()

	// Connect to MongoDB
	log.Printf("Connecting to MongoDB...")
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	// Ensure MongoDB indexes for the community board
	if err := services.EnsurePostIndexes(context.Background()); err != nil {
		log.Printf("⚠️  WARNING: failed to ensure MongoDB post indexes: %v", err)
	} else {
		log.Println("✅ MongoDB post indexes ensured")
	}

	// Seed the starter posts so the board is never empty on first launch
	if err := services.SeedCommunityPosts(context.Background()); err != nil {
		log.Printf("⚠️  WARNING: failed to seed community posts: %v", err)
	}

	// Start the Redis subscriber feeding the live community feed
	services.StartCommunitySubscriber()
	log.Println("✅ Community feed subscriber started")

	// Setup router
	r := chi.NewRouter()

	// CORS: respond to OPTIONS with 200 so preflight never gets 403
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Production: SecurityHeaders → GlobalRateLimit
	// Non-production: Redis-based rate limit only
	if cfg.IsProduction() {
		for _, mw := range middleware.ProductionSecurity() {
			r.Use(mw)
		}
		log.Println("✅ Production security enabled (security headers, per-IP rate limiting)")
	} else {
		r.Use(middleware.RateLimitMiddleware)
	}

	// Health check (no rate limit)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	routes.SetupRoutes(r)

	// Log registered routes for debugging
	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Println("  POST /api/device/register")
	log.Println("  GET  /api/preferences")
	log.Println("  POST /api/preferences")
	log.Println("  GET  /api/preferences/options")
	log.Println("  GET  /api/matches")
	log.Println("  GET  /api/matches/sample")
	log.Println("  GET  /api/counselors")
	log.Println("  POST /api/counselors/match")
	log.Println("  GET  /api/friends")
	log.Println("  POST /api/friends/connect")
	log.Println("  GET  /api/community/posts")
	log.Println("  POST /api/community/posts")
	log.Println("  POST /api/community/posts/like")
	log.Println("  GET  /ws/community")

	log.Printf("🚀 BridgeMind backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
