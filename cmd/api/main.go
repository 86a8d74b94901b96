// @title Wedding Invitation API
// @version 1.0
// @description Accounts, weddings, invitations, guests and guest replies.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/crypto/bcrypt"

	"weddinginvitation/config"
	_ "weddinginvitation/docs"
	"weddinginvitation/internal/adapters/auth"
	"weddinginvitation/internal/adapters/cache"
	"weddinginvitation/internal/adapters/email"
	deliveryhttp "weddinginvitation/internal/delivery/http"
	"weddinginvitation/internal/delivery/http/controllers"
	"weddinginvitation/internal/delivery/http/middleware"
	"weddinginvitation/internal/domain"
	"weddinginvitation/internal/repository/memory"
	"weddinginvitation/internal/repository/postgres"
	"weddinginvitation/internal/services"
)

const (
	startupTimeout  = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

// repositories is the storage surface the services are built on.
type repositories struct {
	users       domain.UserRepository
	weddings    domain.WeddingRepository
	invitations domain.InvitationRepository
	guests      domain.GuestRepository
	rsvps       domain.RSVPRepository
	wishes      domain.WishRepository
	gallery     domain.GalleryRepository
	stories     domain.LoveStoryRepository
	gifts       domain.GiftRepository
	ownership   domain.OwnershipRepository
	pinger      controllers.Pinger
	close       func() error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.close(); err != nil {
			logger.Warn("failed to close store", "error", err)
		}
	}()

	invitationCache := openInvitationCache(ctx, cfg, logger)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return err
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	tokens := auth.NewJWT(cfg.JWTSecret)
	timeout := cfg.QueryTimeout

	authService := services.NewAuthService(repos.users, auth.NewBcryptHasher(bcrypt.DefaultCost), tokens, emailService, logger, auth.TokenExpiry, timeout)
	weddingService := services.NewWeddingService(repos.weddings, timeout)
	invitationService := services.NewInvitationService(repos.invitations, repos.ownership, invitationCache, logger, timeout)
	guestService := services.NewGuestService(repos.guests, repos.ownership, timeout)
	rsvpService := services.NewRSVPService(repos.rsvps, repos.ownership, emailService, logger, timeout)
	wishService := services.NewWishService(repos.wishes, timeout)
	galleryService := services.NewGalleryService(repos.gallery, repos.ownership, timeout)
	loveStoryService := services.NewLoveStoryService(repos.stories, repos.ownership, timeout)
	giftService := services.NewGiftService(repos.gifts, repos.ownership, timeout)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	handler := deliveryhttp.NewRouter(deliveryhttp.RouterConfig{
		Logger:         logger,
		Verifier:       tokens,
		Limiter:        middleware.NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst),
		Metrics:        middleware.NewMetrics(reg),
		Gatherer:       reg,
		AllowedOrigins: cfg.AllowedOrigins,
	}, deliveryhttp.Controllers{
		Auth:       controllers.NewAuthController(logger, authService),
		Wedding:    controllers.NewWeddingController(logger, weddingService),
		Invitation: controllers.NewInvitationController(logger, invitationService),
		Guest:      controllers.NewGuestController(logger, guestService),
		RSVP:       controllers.NewRSVPController(logger, rsvpService),
		Wish:       controllers.NewWishController(logger, wishService),
		Gallery:    controllers.NewGalleryController(logger, galleryService),
		LoveStory:  controllers.NewLoveStoryController(logger, loveStoryService),
		Gift:       controllers.NewGiftController(logger, giftService),
		Health:     controllers.NewHealthController(logger, repos.pinger),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "store", cfg.Store, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*repositories, error) {
	if cfg.Store == config.StoreMemory {
		logger.Warn("using in-memory store, data is lost on restart")
		store := memory.NewStore()
		return &repositories{
			users:       store.Users(),
			weddings:    store.Weddings(),
			invitations: store.Invitations(),
			guests:      store.Guests(),
			rsvps:       store.RSVPs(),
			wishes:      store.Wishes(),
			gallery:     store.Gallery(),
			stories:     store.LoveStories(),
			gifts:       store.Gifts(),
			ownership:   store.Ownership(),
			pinger:      store,
			close:       func() error { return nil },
		}, nil
	}

	openCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()
	db, err := postgres.Open(openCtx, cfg.DBUrl)
	if err != nil {
		return nil, err
	}
	if cfg.RunMigrations {
		if err := postgres.Migrate(db); err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.Info("database migrations applied")
	}
	return postgresRepositories(db), nil
}

func postgresRepositories(db *sql.DB) *repositories {
	return &repositories{
		users:       postgres.NewUserRepository(db),
		weddings:    postgres.NewWeddingRepository(db),
		invitations: postgres.NewInvitationRepository(db),
		guests:      postgres.NewGuestRepository(db),
		rsvps:       postgres.NewRSVPRepository(db),
		wishes:      postgres.NewWishRepository(db),
		gallery:     postgres.NewGalleryRepository(db),
		stories:     postgres.NewLoveStoryRepository(db),
		gifts:       postgres.NewGiftRepository(db),
		ownership:   postgres.NewOwnershipRepository(db),
		pinger:      db,
		close:       db.Close,
	}
}

// openInvitationCache connects to Redis when configured. The service runs without a cache otherwise.
func openInvitationCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) domain.InvitationCache {
	if cfg.RedisURL == "" {
		return nil
	}
	client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.Warn("failed to connect to redis, continuing without cache", "error", err)
		return nil
	}
	logger.Info("connected to redis cache")
	return cache.NewInvitationCache(client, cfg.InvitationCacheTTL)
}
