package routers

import (
	"github.com/go-chi/chi/v5"

	"interviewai/server/internal/handlers"
	"interviewai/server/internal/middleware"
	"interviewai/server/internal/models"
)

func UserRoutes(router *chi.Mux, jwtSecret string, profileHandler *handlers.ProfileHandler, challengeHandler *handlers.ChallengeHandler) {
	router.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))

		r.Get("/profile", profileHandler.GetProfileHandler)
		r.Get("/daily-challenge", challengeHandler.GetTodayHandler)
		r.With(middleware.ValidateRequest[*models.ChallengeSubmitRequest]()).Post("/daily-challenge", challengeHandler.SubmitHandler)
	})
}
