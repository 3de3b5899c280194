package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"interviewai/server/internal/meeting"
	"interviewai/server/internal/middleware"
	"interviewai/server/internal/models"
	"interviewai/server/internal/repositories"
	"interviewai/server/internal/services"
	"interviewai/server/internal/utils"
)

// ScheduleHandler manages peer interview appointments. Meeting-link and email
// side effects are best effort and never fail the scheduling transaction.
type ScheduleHandler struct {
	schedules ScheduleRepository
	users     UserRepository
	meetings  MeetingClient
	events    EventPublisher
	logger    *zap.Logger
}

func NewScheduleHandler(schedules ScheduleRepository, users UserRepository, meetings MeetingClient, events EventPublisher, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		schedules: schedules,
		users:     users,
		meetings:  meetings,
		events:    events,
		logger:    logger,
	}
}

func (h *ScheduleHandler) ScheduleHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.ScheduleRequest](r)
	hostID := middleware.UserID(r)

	guest, err := h.users.GetUserByEmail(req.GuestEmail)
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "guest_not_found", "Guest user not found. Please check the email address.")
		return
	}
	host, err := h.users.GetUserByID(hostID)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "server_error", "Failed to schedule interview")
		return
	}

	roomID := uuid.New().String()

	link, err := h.meetings.CreateMeeting(r.Context(), meeting.Event{
		Summary:     req.Title,
		Description: req.Description,
		StartTime:   req.ScheduledTime,
		EndTime:     req.ScheduledTime.Add(time.Duration(req.DurationMin) * time.Minute),
		Attendees:   []string{host.Email, guest.Email},
	})
	if err != nil {
		h.logger.Warn("Meeting link unavailable, using fallback", zap.Error(err), zap.String("room_id", roomID))
		link = meeting.FallbackLink
	}

	interview := &models.ScheduledInterview{
		HostID:        hostID,
		GuestID:       guest.ID,
		Title:         req.Title,
		Description:   req.Description,
		ScheduledTime: req.ScheduledTime,
		DurationMin:   req.DurationMin,
		Status:        models.StatusScheduled,
		RoomID:        roomID,
		MeetingLink:   link,
	}
	if err := h.schedules.Create(interview); err != nil {
		h.logger.Error("Failed to create appointment", zap.Error(err), zap.Uint("host_id", hostID))
		utils.JSONError(w, http.StatusInternalServerError, "server_error", "Failed to schedule interview")
		return
	}

	if h.events != nil {
		event := services.InterviewScheduledEvent{
			RoomID:        roomID,
			Title:         req.Title,
			Description:   req.Description,
			ScheduledTime: req.ScheduledTime,
			DurationMin:   req.DurationMin,
			MeetingLink:   link,
			HostEmail:     host.Email,
			GuestEmail:    guest.Email,
		}
		if err := h.events.PublishScheduled(r.Context(), event); err != nil {
			h.logger.Warn("Failed to publish schedule event", zap.Error(err), zap.String("room_id", roomID))
		}
	}

	utils.JSON(w, http.StatusOK, models.ScheduleResponse{
		Message:     "Interview scheduled successfully",
		MeetLink:    link,
		RoomID:      roomID,
		InterviewID: interview.ID,
	})
}

func (h *ScheduleHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	interviews, err := h.schedules.ListForUser(userID)
	if err != nil {
		h.logger.Error("Failed to list appointments", zap.Error(err), zap.Uint("user_id", userID))
		utils.JSONError(w, http.StatusInternalServerError, "server_error", "Failed to fetch scheduled interviews")
		return
	}
	utils.JSON(w, http.StatusOK, interviews)
}

func (h *ScheduleHandler) GetByRoomHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	interview, err := h.schedules.GetByRoomID(roomID)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			utils.JSONError(w, http.StatusNotFound, "not_found", "Interview not found")
			return
		}
		utils.JSONError(w, http.StatusInternalServerError, "server_error", "Failed to fetch interview")
		return
	}
	utils.JSON(w, http.StatusOK, interview)
}

func (h *ScheduleHandler) MarkJoinedHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")
	userID := middleware.UserID(r)

	interview, err := h.schedules.GetByRoomID(roomID)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			utils.JSONError(w, http.StatusNotFound, "not_found", "Interview not found")
			return
		}
		utils.JSONError(w, http.StatusInternalServerError, "server_error", "Failed to update joined status")
		return
	}

	var asHost bool
	switch userID {
	case interview.HostID:
		asHost = true
	case interview.GuestID:
		asHost = false
	default:
		utils.JSONError(w, http.StatusForbidden, "forbidden", "Not authorized")
		return
	}

	if err := h.schedules.SetJoined(roomID, asHost); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "server_error", "Failed to update joined status")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Interview marked as joined"})
}

func (h *ScheduleHandler) CancelHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")
	userID := middleware.UserID(r)

	interview, err := h.schedules.GetByRoomID(roomID)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			utils.JSONError(w, http.StatusNotFound, "not_found", "Interview not found")
			return
		}
		utils.JSONError(w, http.StatusInternalServerError, "server_error", "Failed to cancel interview")
		return
	}

	// A third party gets the same response as a missing room: cancellation
	// must not reveal whether the appointment exists.
	if userID != interview.HostID && userID != interview.GuestID {
		utils.JSONError(w, http.StatusNotFound, "not_found", "Interview not found")
		return
	}

	if err := h.schedules.DeleteByRoomID(roomID); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "server_error", "Failed to cancel interview")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Interview cancelled successfully"})
}
