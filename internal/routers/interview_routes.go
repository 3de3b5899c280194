package routers

import (
	"github.com/go-chi/chi/v5"

	"interviewai/server/internal/handlers"
	"interviewai/server/internal/middleware"
	"interviewai/server/internal/models"
)

func InterviewRoutes(router *chi.Mux, jwtSecret string, interviewHandler *handlers.InterviewHandler, scheduleHandler *handlers.ScheduleHandler) {
	router.Route("/api/interviews", func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))

		r.With(middleware.ValidateRequest[*models.GenerateRequest]()).Post("/generate", interviewHandler.GenerateHandler)
		r.With(middleware.ValidateRequest[*models.AnswerRequest]()).Post("/answer", interviewHandler.AnswerHandler)
		r.With(middleware.ValidateRequest[*models.CompleteRequest]()).Post("/complete", interviewHandler.CompleteHandler)
		r.Get("/history", interviewHandler.HistoryHandler)

		r.With(middleware.ValidateRequest[*models.ScheduleRequest]()).Post("/schedule", scheduleHandler.ScheduleHandler)
		r.Get("/scheduled", scheduleHandler.ListHandler)
		r.Get("/room/{roomID}", scheduleHandler.GetByRoomHandler)
		r.Delete("/scheduled/{roomID}", scheduleHandler.CancelHandler)
		r.Post("/scheduled/{roomID}/joined", scheduleHandler.MarkJoinedHandler)
	})
}
