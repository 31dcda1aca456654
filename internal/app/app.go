package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tringgo-backend/internal/adapter/postgres"
	arearepo "github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/area"
	"github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/authmethod"
	chatrepo "github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/chat"
	"github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/localservice"
	merchantrepo "github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/merchant"
	placerepo "github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/place"
	reviewrepo "github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/review"
	savedrepo "github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/savedplace"
	"github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/transcript"
	userrepo "github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/user"
	verificationrepo "github.com/heartmarshall/tringgo-backend/internal/adapter/postgres/verification"
	"github.com/heartmarshall/tringgo-backend/internal/adapter/provider/google"
	"github.com/heartmarshall/tringgo-backend/internal/adapter/storage"
	authpkg "github.com/heartmarshall/tringgo-backend/internal/auth"
	"github.com/heartmarshall/tringgo-backend/internal/config"
	"github.com/heartmarshall/tringgo-backend/internal/service/account"
	authsvc "github.com/heartmarshall/tringgo-backend/internal/service/auth"
	"github.com/heartmarshall/tringgo-backend/internal/service/chat"
	"github.com/heartmarshall/tringgo-backend/internal/service/chatbot"
	"github.com/heartmarshall/tringgo-backend/internal/service/dashboard"
	"github.com/heartmarshall/tringgo-backend/internal/service/directory"
	"github.com/heartmarshall/tringgo-backend/internal/service/merchant"
	"github.com/heartmarshall/tringgo-backend/internal/service/review"
	"github.com/heartmarshall/tringgo-backend/internal/service/savedplace"
	"github.com/heartmarshall/tringgo-backend/internal/service/verification"
	"github.com/heartmarshall/tringgo-backend/internal/transport/dataloader"
	"github.com/heartmarshall/tringgo-backend/internal/transport/middleware"
	"github.com/heartmarshall/tringgo-backend/internal/transport/rest"
)

// imageStore is the optional object storage behind place image uploads.
type imageStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Ping(ctx context.Context) error
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and object storage, wires repositories, services and HTTP
// handlers, and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	// 1. Infrastructure.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	var images imageStore
	if cfg.Storage.Enabled() {
		client, err := storage.NewClient(ctx, cfg.Storage)
		if err != nil {
			return err
		}
		images = storage.NewImageStore(client, cfg.Storage, logger)
		logger.Info("image storage enabled", slog.String("bucket", cfg.Storage.Bucket))
	} else {
		logger.Warn("image storage disabled, place image uploads will be rejected")
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := NewHandler(cfg, logger, pool, images, limiter)

	// 2. HTTP server.
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// 3. Graceful shutdown.
	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// NewHandler wires repositories, services and REST handlers over pool.
// images may be nil.
func NewHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	images imageStore,
	limiter *middleware.RateLimiter,
) http.Handler {
	txm := postgres.NewTxManager(pool)

	// Repositories.
	areaRepo := arearepo.New(pool)
	authMethodRepo := authmethod.New(pool)
	chatRepo := chatrepo.New(pool)
	serviceRepo := localservice.New(pool)
	merchantRepo := merchantrepo.New(pool)
	placeRepo := placerepo.New(pool)
	reviewRepo := reviewrepo.New(pool)
	savedRepo := savedrepo.New(pool)
	tokenRepo := token.New(pool)
	transcriptRepo := transcript.New(pool)
	userRepo := userrepo.New(pool)
	verificationRepo := verificationrepo.New(pool)

	// Services.
	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	var googleSignIn interface {
		VerifyIDToken(ctx context.Context, idToken string) (*authpkg.OAuthIdentity, error)
	}
	if cfg.Auth.GoogleEnabled() {
		googleSignIn = google.NewVerifier(cfg.Auth.GoogleClientID, logger)
	}
	authService := authsvc.NewService(
		logger, userRepo, areaRepo, merchantRepo, placeRepo, tokenRepo, authMethodRepo, txm, jwtMgr, googleSignIn, cfg.Auth,
	)
	accountService := account.NewService(logger, userRepo, merchantRepo, areaRepo)
	directoryService := directory.NewService(
		logger, areaRepo, placeRepo, serviceRepo, merchantRepo, images, cfg.Cache, cfg.Server.MaxUploadBytes,
	)
	merchantService := merchant.NewService(logger, merchantRepo, placeRepo, areaRepo, txm)
	verificationService := verification.NewService(logger, merchantRepo, verificationRepo, userRepo, txm)
	dashboardService := dashboard.NewService(logger, userRepo, merchantRepo, verificationRepo, areaRepo)
	reviewService := review.NewService(logger, reviewRepo, placeRepo, txm)
	savedService := savedplace.NewService(logger, savedRepo, placeRepo)
	chatService := chat.NewService(logger, chatRepo, userRepo)
	chatbotService := chatbot.NewService(
		logger,
		chatbot.NewRouter(placeRepo, serviceRepo, transcriptRepo, cfg.Chatbot.HistoryLimit),
		transcriptRepo,
	)

	// Handlers.
	var storagePinger interface{ Ping(context.Context) error }
	if images != nil {
		storagePinger = images
	}

	return rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(pool, storagePinger, Version),
		Auth:      rest.NewAuthHandler(authService, accountService, logger),
		Directory: rest.NewDirectoryHandler(directoryService, merchantService, cfg.Server.MaxUploadBytes, logger),
		Merchant:  rest.NewMerchantHandler(merchantService, verificationService, logger),
		Dashboard: rest.NewDashboardHandler(dashboardService, logger),
		Traveler:  rest.NewTravelerHandler(reviewService, savedService, logger),
		Chat:      rest.NewChatHandler(chatbotService, chatService, logger),
	}, rest.RouterDeps{
		Logger:    logger,
		Auth:      middleware.Auth(authService),
		Loaders:   dataloader.Middleware(areaRepo),
		Limiter:   limiter,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
		Server:    cfg.Server,
	})
}
