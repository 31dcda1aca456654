package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/tringgo-backend/internal/config"
	"github.com/heartmarshall/tringgo-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Directory *DirectoryHandler
	Merchant  *MerchantHandler
	Dashboard *DashboardHandler
	Traveler  *TravelerHandler
	Chat      *ChatHandler
}

// RouterDeps are the cross-cutting pieces of the middleware chain.
// Auth and Loaders are built by the caller from the auth service and the
// area repository.
type RouterDeps struct {
	Logger    *slog.Logger
	Auth      middleware.Middleware
	Loaders   func(http.Handler) http.Handler
	Limiter   *middleware.RateLimiter
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	Server    config.ServerConfig
}

// NewRouter mounts all routes under /api behind the middleware chain.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
		middleware.ClientInfo(deps.Server.TrustProxy),
		deps.Auth,
		deps.Loaders,
	)

	authLimit := deps.Limiter.Limit("auth", deps.RateLimit.AuthPerMinute)
	botLimit := deps.Limiter.Limit("chatbot", deps.RateLimit.ChatbotPerMinute)

	r.Route("/api", func(r chi.Router) {
		r.Get("/live", h.Health.Live)
		r.Get("/ready", h.Health.Ready)
		r.Get("/health", h.Health.Health)

		r.Group(func(r chi.Router) {
			r.Use(authLimit)
			r.Post("/auth/register", h.Auth.Register)
			r.Post("/auth/login", h.Auth.Login)
			r.Post("/auth/google-login", h.Auth.GoogleLogin)
			r.Post("/auth/refresh", h.Auth.Refresh)
		})
		r.Post("/auth/logout", h.Auth.Logout)
		r.Get("/me", h.Auth.Me)
		r.Patch("/me/traveler-profile", h.Auth.UpdateTravelerProfile)

		r.Get("/areas", h.Directory.ListAreas)
		r.Get("/areas/{id}", h.Directory.GetArea)
		r.Get("/places", h.Directory.ListPlaces)
		r.Get("/places/{id}", h.Directory.GetPlace)
		r.Post("/places/{id}/image", h.Directory.UploadPlaceImage)
		r.Get("/places/{id}/reviews", h.Traveler.PlaceReviews)
		r.Get("/services", h.Directory.ListServices)
		r.Post("/services", h.Directory.CreateService)
		r.Patch("/services/{id}", h.Directory.UpdateService)
		r.Get("/merchants", h.Directory.ListMerchants)

		r.Route("/merchant", func(r chi.Router) {
			r.Get("/profile", h.Merchant.GetProfile)
			r.Patch("/profile", h.Merchant.UpdateProfile)
			r.Post("/verification", h.Merchant.SubmitVerification)
			r.Get("/verification", h.Merchant.VerificationStatus)
		})

		r.Route("/admin/verification-requests", func(r chi.Router) {
			r.Get("/", h.Merchant.ListVerificationRequests)
			r.Post("/{id}/decision", h.Merchant.Decide)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/traveler", h.Dashboard.Traveler)
			r.Get("/merchant", h.Dashboard.Merchant)
			r.Get("/admin", h.Dashboard.Admin)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/mine", h.Traveler.MyReviews)
			r.Post("/", h.Traveler.CreateReview)
			r.Patch("/{id}", h.Traveler.UpdateReview)
			r.Delete("/{id}", h.Traveler.DeleteReview)
		})

		r.Route("/saved-places", func(r chi.Router) {
			r.Get("/", h.Traveler.ListSaved)
			r.Post("/", h.Traveler.SavePlace)
			r.Delete("/{placeID}", h.Traveler.UnsavePlace)
		})

		r.With(botLimit).Post("/chatbot/message", h.Chat.Chatbot)

		r.Route("/chat", func(r chi.Router) {
			r.Post("/requests", h.Chat.RequestChat)
			r.Get("/threads", h.Chat.ListThreads)
			r.Post("/threads/{id}/respond", h.Chat.Respond)
			r.Get("/threads/{id}/messages", h.Chat.Messages)
			r.Post("/threads/{id}/messages", h.Chat.Send)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	return r
}
