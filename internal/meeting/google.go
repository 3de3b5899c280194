package meeting

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"interviewai/server/internal/config"
)

// FallbackLink is used whenever a real meeting cannot be created. Scheduling
// never fails because of the meeting collaborator.
const FallbackLink = "https://meet.google.com/new"

const eventsURL = "https://www.googleapis.com/calendar/v3/calendars/primary/events?conferenceDataVersion=1"

var errNotConfigured = errors.New("google calendar credentials not configured")

// Event describes the appointment a meeting link is requested for.
type Event struct {
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Attendees   []string
}

// GoogleClient creates Google Meet links by inserting calendar events with an
// attached conference request.
type GoogleClient struct {
	http *http.Client
}

// NewGoogleClient builds a client from an offline OAuth refresh token. With
// incomplete credentials the client is still usable; every call reports
// errNotConfigured and callers fall back to FallbackLink.
func NewGoogleClient(cfg config.MeetingConfig) *GoogleClient {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" {
		return &GoogleClient{}
	}

	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Scopes:       []string{"https://www.googleapis.com/auth/calendar.events"},
		Endpoint:     google.Endpoint,
	}
	token := &oauth2.Token{RefreshToken: cfg.RefreshToken}
	return &GoogleClient{http: oauthConfig.Client(context.Background(), token)}
}

type conferenceEvent struct {
	Summary        string         `json:"summary"`
	Description    string         `json:"description,omitempty"`
	Start          eventTime      `json:"start"`
	End            eventTime      `json:"end"`
	Attendees      []attendee     `json:"attendees,omitempty"`
	ConferenceData map[string]any `json:"conferenceData"`
}

type eventTime struct {
	DateTime string `json:"dateTime"`
}

type attendee struct {
	Email string `json:"email"`
}

// CreateMeeting inserts a calendar event with a Meet conference attached and
// returns the resulting hangout link.
func (c *GoogleClient) CreateMeeting(ctx context.Context, ev Event) (string, error) {
	if c.http == nil {
		return "", errNotConfigured
	}

	payload := conferenceEvent{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start:       eventTime{DateTime: ev.StartTime.Format(time.RFC3339)},
		End:         eventTime{DateTime: ev.EndTime.Format(time.RFC3339)},
		ConferenceData: map[string]any{
			"createRequest": map[string]any{
				"requestId":             uuid.New().String(),
				"conferenceSolutionKey": map[string]string{"type": "hangoutsMeet"},
			},
		},
	}
	for _, email := range ev.Attendees {
		payload.Attendees = append(payload.Attendees, attendee{Email: email})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, eventsURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("calendar event insert failed with status %d", resp.StatusCode)
	}

	var created struct {
		HangoutLink string `json:"hangoutLink"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", err
	}
	if created.HangoutLink == "" {
		return "", errors.New("calendar event has no hangout link")
	}
	return created.HangoutLink, nil
}
