package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ScheduleChannel carries interview_scheduled events from the scheduling
// handler to the notifier.
const ScheduleChannel = "interview_scheduled"

// InterviewScheduledEvent is published after an appointment is persisted.
type InterviewScheduledEvent struct {
	RoomID        string    `json:"roomId"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ScheduledTime time.Time `json:"scheduledTime"`
	DurationMin   int       `json:"duration"`
	MeetingLink   string    `json:"meetingLink"`
	HostEmail     string    `json:"hostEmail"`
	GuestEmail    string    `json:"guestEmail"`
}

// RedisPublisher pushes schedule events onto the schedule channel. Callers
// treat publish failure as non-fatal; the appointment is already committed.
type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func (p *RedisPublisher) PublishScheduled(ctx context.Context, event InterviewScheduledEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, ScheduleChannel, payload).Err()
}

// ScheduleNotifier consumes interview_scheduled events and emails both
// participants. Mail failures are logged and dropped, never retried into the
// scheduling path.
type ScheduleNotifier struct {
	rdb    *redis.Client
	mailer Mailer
	logger *zap.Logger
}

func NewScheduleNotifier(rdb *redis.Client, mailer Mailer, logger *zap.Logger) *ScheduleNotifier {
	return &ScheduleNotifier{rdb: rdb, mailer: mailer, logger: logger}
}

// Run subscribes to the schedule channel and processes events until the
// context is cancelled.
func (n *ScheduleNotifier) Run(ctx context.Context) {
	subscriber := n.rdb.Subscribe(ctx, ScheduleChannel)
	defer subscriber.Close()
	ch := subscriber.Channel()

	n.logger.Info("Schedule notifier subscribed", zap.String("channel", ScheduleChannel))

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			n.handle(msg.Payload)
		}
	}
}

func (n *ScheduleNotifier) handle(payload string) {
	var event InterviewScheduledEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		n.logger.Error("Failed to parse scheduled event", zap.Error(err))
		return
	}

	subject := "Interview Scheduled: " + event.Title
	body := composeScheduleEmail(event)
	recipients := []string{event.HostEmail, event.GuestEmail}

	if err := n.mailer.Send(recipients, subject, body); err != nil {
		n.logger.Warn("Failed to send schedule notification",
			zap.Error(err),
			zap.String("room_id", event.RoomID))
		return
	}
	n.logger.Info("Schedule notification sent", zap.String("room_id", event.RoomID))
}

func composeScheduleEmail(event InterviewScheduledEvent) string {
	description := event.Description
	if description == "" {
		description = "No description provided"
	}
	return fmt.Sprintf(`Hello!

An interview has been scheduled with the following details:

  Title:        %s
  Description:  %s
  Date & Time:  %s
  Duration:     %d minutes
  Room ID:      %s

Meeting link: %s

Best of luck!
- InterviewAI Team
`,
		event.Title,
		description,
		event.ScheduledTime.Format("Mon, 02 Jan 2006 15:04 MST"),
		event.DurationMin,
		event.RoomID,
		event.MeetingLink,
	)
}
