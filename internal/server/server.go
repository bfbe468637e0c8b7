package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mwhitfield/walkstreak/internal/engine"
	"github.com/mwhitfield/walkstreak/internal/handler"
	"github.com/mwhitfield/walkstreak/internal/middleware"
	"github.com/mwhitfield/walkstreak/internal/store"
	ws "github.com/mwhitfield/walkstreak/internal/websocket"
)

type Server struct {
	db          *sql.DB
	hub         *ws.Hub
	progressH   *handler.ProgressHandler
	badgeH      *handler.BadgeHandler
	socialH     *handler.SocialHandler
	movementH   *handler.MovementHandler
	workoutH    *handler.WorkoutHandler
	rateLimiter *middleware.RateLimiter
	// Requests per minute per IP allowed on the completion endpoint.
	completeLimit int
	logger        *slog.Logger
}

func New(db *sql.DB, completeLimit int, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	svc := engine.New(store.NewProgressStore(db), logger.With("component", "engine"))

	return &Server{
		db:            db,
		hub:           hub,
		progressH:     handler.NewProgressHandler(svc, hub, logger.With("component", "progress")),
		badgeH:        handler.NewBadgeHandler(svc, hub, logger.With("component", "badge")),
		socialH:       handler.NewSocialHandler(svc, hub, logger.With("component", "social")),
		movementH:     handler.NewMovementHandler(svc, hub, logger.With("component", "movement")),
		workoutH:      handler.NewWorkoutHandler(),
		rateLimiter:   middleware.NewRateLimiter(),
		completeLimit: completeLimit,
		logger:        logger,
	}
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Workouts
	mux.HandleFunc("POST /api/workouts/complete", s.rateLimitedHandler(s.progressH.Complete))
	mux.HandleFunc("GET /api/workouts", s.workoutH.List)

	// Progress views
	mux.HandleFunc("GET /api/progress/days", s.progressH.Days)
	mux.HandleFunc("GET /api/progress/rewards", s.progressH.Rewards)
	mux.HandleFunc("GET /api/progress/stats", s.progressH.Stats)
	mux.HandleFunc("PUT /api/settings/reward-range", s.progressH.UpdateRewardRange)

	// Badges
	mux.HandleFunc("GET /api/badges", s.badgeH.List)
	mux.HandleFunc("POST /api/badges/check", s.badgeH.Check)

	// Friends
	mux.HandleFunc("GET /api/friends", s.socialH.ListFriends)
	mux.HandleFunc("POST /api/friends", s.socialH.AddFriend)
	mux.HandleFunc("POST /api/friends/{id}/cheer", s.socialH.Cheer)
	mux.HandleFunc("GET /api/invite-code", s.socialH.InviteCode)

	// Movements
	mux.HandleFunc("GET /api/movements", s.movementH.List)
	mux.HandleFunc("POST /api/movements", s.movementH.Create)
	mux.HandleFunc("POST /api/movements/{id}/join", s.movementH.Join)
	mux.HandleFunc("POST /api/movements/{id}/leave", s.movementH.Leave)

	// WebSocket
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))

	logged := middleware.RequestLogger(s.logger.With("component", "http"))(mux)
	return middleware.Metrics(logged)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, s.completeLimit, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}
