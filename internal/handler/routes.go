package handler

import (
	"net/http"

	"authntik/config"
	"authntik/internal/guard"
	"authntik/internal/middleware"
	"authntik/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// maxRequestBodyBytes ограничивает тело любого запроса к API.
const maxRequestBodyBytes = 1 << 20

type Services struct {
	Authentication *service.AuthenticationService
	Users          *service.UserService
}

// NewRouter собирает HTTP API. Маршруты монтируются под server.base_path.
func NewRouter(cfg *config.Config, services Services, log zerolog.Logger) http.Handler {
	authenticationHandler := NewAuthenticationHandler(services.Authentication)
	userHandler := NewUserHandler(services.Users)
	healthHandler := NewHealthHandler(cfg)

	requireAccess := guard.Authenticate(guard.BearerVerify(services.Authentication), log)
	requireCredentials := guard.Authenticate(guard.LocalCredentialCheck(services.Authentication), log)
	requireRefresh := guard.Authenticate(guard.RefreshVerify(services.Authentication), log)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(middleware.RequestLogger(log))
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.RequestSize(maxRequestBodyBytes))
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	router.Route(cfg.Server.BasePath, func(r chi.Router) {
		r.Get("/", healthHandler.Hello)
		r.Get("/health", healthHandler.Health)

		r.Route("/auth", func(r chi.Router) {
			r.With(requireCredentials).Post("/login", authenticationHandler.Login)
			r.With(requireRefresh).Post("/refresh", authenticationHandler.Refresh)
			r.Group(func(r chi.Router) {
				r.Use(requireAccess)
				r.Post("/logout", authenticationHandler.Logout)
				r.Get("/profile", authenticationHandler.Profile)
				r.Get("/verify", authenticationHandler.Verify)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/register", userHandler.Register)
			r.Get("/profile/{id}", userHandler.ProfileByID)
			r.With(requireAccess).Get("/me", userHandler.Me)
		})
	})

	return router
}
