package repositories

import (
	"errors"

	"interviewai/server/internal/models"

	"gorm.io/gorm"
)

var ErrInterviewNotFound = errors.New("interview not found")

type ScheduleRepository struct {
	DB *gorm.DB
}

func (r *ScheduleRepository) Create(interview *models.ScheduledInterview) error {
	return r.DB.Create(interview).Error
}

// ListForUser returns every appointment where the user is host or guest,
// most recent scheduled time first, with both participants expanded.
func (r *ScheduleRepository) ListForUser(userID uint) ([]models.ScheduledInterviewView, error) {
	views := []models.ScheduledInterviewView{}
	err := r.DB.Table("scheduled_interviews").
		Select("scheduled_interviews.id, scheduled_interviews.title, scheduled_interviews.description, "+
			"scheduled_interviews.scheduled_time, scheduled_interviews.duration_min, scheduled_interviews.status, "+
			"scheduled_interviews.room_id, scheduled_interviews.meeting_link, "+
			"scheduled_interviews.joined_host, scheduled_interviews.joined_guest, "+
			"scheduled_interviews.host_id, hosts.username AS host_username, hosts.email AS host_email, "+
			"scheduled_interviews.guest_id, guests.username AS guest_username, guests.email AS guest_email").
		Joins("JOIN users hosts ON hosts.id = scheduled_interviews.host_id").
		Joins("JOIN users guests ON guests.id = scheduled_interviews.guest_id").
		Where("scheduled_interviews.deleted_at IS NULL").
		Where("scheduled_interviews.host_id = ? OR scheduled_interviews.guest_id = ?", userID, userID).
		Order("scheduled_interviews.scheduled_time DESC").
		Scan(&views).Error
	return views, err
}

func (r *ScheduleRepository) GetByRoomID(roomID string) (*models.ScheduledInterview, error) {
	var interview models.ScheduledInterview
	err := r.DB.Where("room_id = ?", roomID).First(&interview).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInterviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

// SetJoined flips exactly one participation flag, chosen by the caller's role.
func (r *ScheduleRepository) SetJoined(roomID string, host bool) error {
	column := "joined_guest"
	if host {
		column = "joined_host"
	}
	res := r.DB.Model(&models.ScheduledInterview{}).
		Where("room_id = ?", roomID).
		Update(column, true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

func (r *ScheduleRepository) DeleteByRoomID(roomID string) error {
	res := r.DB.Where("room_id = ?", roomID).Delete(&models.ScheduledInterview{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}
