package routers

import (
	"github.com/go-chi/chi/v5"

	"interviewai/server/internal/handlers"
	"interviewai/server/internal/middleware"
	"interviewai/server/internal/models"
)

func AuthRoutes(router *chi.Mux, authHandler *handlers.AuthHandler) {
	router.Route("/api/auth", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.RegisterRequest]()).Post("/register", authHandler.RegisterHandler)
		r.With(middleware.ValidateRequest[*models.LoginRequest]()).Post("/login", authHandler.LoginHandler)
	})
}
