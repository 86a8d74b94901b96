package http

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"weddinginvitation/internal/delivery/http/controllers"
	"weddinginvitation/internal/delivery/http/middleware"
	"weddinginvitation/internal/domain"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Auth       *controllers.AuthController
	Wedding    *controllers.WeddingController
	Invitation *controllers.InvitationController
	Guest      *controllers.GuestController
	RSVP       *controllers.RSVPController
	Wish       *controllers.WishController
	Gallery    *controllers.GalleryController
	LoveStory  *controllers.LoveStoryController
	Gift       *controllers.GiftController
	Health     *controllers.HealthController
}

// RouterConfig holds the cross-cutting pieces shared by every route.
type RouterConfig struct {
	Logger         *slog.Logger
	Verifier       domain.TokenVerifier
	Limiter        *middleware.RateLimiter
	Metrics        *middleware.Metrics
	Gatherer       prometheus.Gatherer
	AllowedOrigins []string
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(cfg RouterConfig, c Controllers) http.Handler {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(cfg.Verifier, cfg.Logger)
	limit := cfg.Limiter.Limit

	// Auth
	mux.HandleFunc("POST /api/auth/register", limit(c.Auth.Register))
	mux.HandleFunc("POST /api/auth/login", limit(c.Auth.Login))

	// Owner resources
	mux.HandleFunc("GET /api/wedding", auth(c.Wedding.List))
	mux.HandleFunc("POST /api/wedding", auth(c.Wedding.Create))
	mux.HandleFunc("GET /api/invitation", auth(c.Invitation.List))
	mux.HandleFunc("POST /api/invitation", auth(c.Invitation.Create))
	mux.HandleFunc("GET /api/guest", auth(c.Guest.List))
	mux.HandleFunc("POST /api/guest", auth(c.Guest.Create))
	mux.HandleFunc("GET /api/gallery", auth(c.Gallery.List))
	mux.HandleFunc("POST /api/gallery", auth(c.Gallery.Create))
	mux.HandleFunc("GET /api/love-story", auth(c.LoveStory.List))
	mux.HandleFunc("POST /api/love-story", auth(c.LoveStory.Create))
	mux.HandleFunc("GET /api/gift", auth(c.Gift.List))
	mux.HandleFunc("POST /api/gift", auth(c.Gift.Create))
	mux.HandleFunc("GET /api/rsvp", auth(c.RSVP.List))
	mux.HandleFunc("GET /api/wishes", auth(c.Wish.List))

	// Guest-facing
	mux.HandleFunc("GET /api/invitation/{slug}", c.Invitation.GetBySlug)
	mux.HandleFunc("POST /api/rsvp", limit(c.RSVP.Submit))
	mux.HandleFunc("POST /api/wishes", limit(c.Wish.Submit))

	// Operations
	mux.HandleFunc("GET /healthz", c.Health.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	handler = cfg.Metrics.Middleware(handler)
	handler = middleware.LoggingMiddleware(cfg.Logger, handler)
	return middleware.Recovery(cfg.Logger, handler)
}
