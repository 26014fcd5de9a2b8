package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/Den-0786/ypg-website-sub003/internal/auth"
	"github.com/Den-0786/ypg-website-sub003/internal/handlers"
	"github.com/Den-0786/ypg-website-sub003/internal/middleware"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(
	router chi.Router,
	authHandler *handlers.AuthHandler,
	credentialHandler *handlers.CredentialHandler,
	sessionManager *auth.SessionManager,
) {
	rateLimitConfig := middleware.DefaultLoginRateLimit()

	// Public routes. The lockout ledger inside the login service does
	// the real throttling; the middleware only stops floods.
	router.With(middleware.RateLimitByIP(rateLimitConfig)).Post("/auth/login", authHandler.Login)
	router.Post("/auth/logout", authHandler.Logout)

	// Protected routes - a valid admin session required
	router.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin(sessionManager))

		r.Get("/auth/credentials", credentialHandler.Get)
		r.Put("/auth/credentials", credentialHandler.Update)
	})
}
