package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"interviewai/server/internal/meeting"
	"interviewai/server/internal/middleware"
	"interviewai/server/internal/models"
	"interviewai/server/internal/services"
)

type mockSessionRepo struct {
	createFn       func(*models.InterviewSession) error
	getForUserFn   func(uint, uint) (*models.InterviewSession, error)
	saveAnswersFn  func(*models.InterviewSession) error
	completeOnceFn func(uint, uint, int) (bool, error)
	listForUserFn  func(uint) ([]models.InterviewSession, error)
}

func (m *mockSessionRepo) Create(s *models.InterviewSession) error {
	if m.createFn == nil {
		s.ID = 1
		return nil
	}
	return m.createFn(s)
}

func (m *mockSessionRepo) GetForUser(sessionID, userID uint) (*models.InterviewSession, error) {
	if m.getForUserFn == nil {
		panic("unexpected call to GetForUser")
	}
	return m.getForUserFn(sessionID, userID)
}

func (m *mockSessionRepo) SaveAnswers(s *models.InterviewSession) error {
	if m.saveAnswersFn == nil {
		return nil
	}
	return m.saveAnswersFn(s)
}

func (m *mockSessionRepo) CompleteOnce(sessionID, userID uint, score int) (bool, error) {
	if m.completeOnceFn == nil {
		panic("unexpected call to CompleteOnce")
	}
	return m.completeOnceFn(sessionID, userID, score)
}

func (m *mockSessionRepo) ListForUser(userID uint) ([]models.InterviewSession, error) {
	if m.listForUserFn == nil {
		panic("unexpected call to ListForUser")
	}
	return m.listForUserFn(userID)
}

type mockUserRepo struct {
	createUserFn        func(*models.User) error
	getUserByIDFn       func(uint) (*models.User, error)
	getUserByUsernameFn func(string) (*models.User, error)
	getUserByEmailFn    func(string) (*models.User, error)
}

func (m *mockUserRepo) CreateUser(user *models.User) error {
	if m.createUserFn == nil {
		user.ID = 1
		return nil
	}
	return m.createUserFn(user)
}

func (m *mockUserRepo) GetUserByID(userID uint) (*models.User, error) {
	if m.getUserByIDFn == nil {
		panic("unexpected call to GetUserByID")
	}
	return m.getUserByIDFn(userID)
}

func (m *mockUserRepo) GetUserByUsername(username string) (*models.User, error) {
	if m.getUserByUsernameFn == nil {
		panic("unexpected call to GetUserByUsername")
	}
	return m.getUserByUsernameFn(username)
}

func (m *mockUserRepo) GetUserByEmail(email string) (*models.User, error) {
	if m.getUserByEmailFn == nil {
		panic("unexpected call to GetUserByEmail")
	}
	return m.getUserByEmailFn(email)
}

type mockProgressRepo struct {
	getFn          func(uint) (*models.UserProgress, error)
	ensureExistsFn func(uint) error
}

func (m *mockProgressRepo) Get(userID uint) (*models.UserProgress, error) {
	if m.getFn == nil {
		return &models.UserProgress{UserID: userID}, nil
	}
	return m.getFn(userID)
}

func (m *mockProgressRepo) EnsureExists(userID uint) error {
	if m.ensureExistsFn == nil {
		return nil
	}
	return m.ensureExistsFn(userID)
}

type mockScheduleRepo struct {
	createFn      func(*models.ScheduledInterview) error
	listForUserFn func(uint) ([]models.ScheduledInterviewView, error)
	getByRoomFn   func(string) (*models.ScheduledInterview, error)
	setJoinedFn   func(string, bool) error
	deleteFn      func(string) error
}

func (m *mockScheduleRepo) Create(interview *models.ScheduledInterview) error {
	if m.createFn == nil {
		interview.ID = 1
		return nil
	}
	return m.createFn(interview)
}

func (m *mockScheduleRepo) ListForUser(userID uint) ([]models.ScheduledInterviewView, error) {
	if m.listForUserFn == nil {
		panic("unexpected call to ListForUser")
	}
	return m.listForUserFn(userID)
}

func (m *mockScheduleRepo) GetByRoomID(roomID string) (*models.ScheduledInterview, error) {
	if m.getByRoomFn == nil {
		panic("unexpected call to GetByRoomID")
	}
	return m.getByRoomFn(roomID)
}

func (m *mockScheduleRepo) SetJoined(roomID string, host bool) error {
	if m.setJoinedFn == nil {
		panic("unexpected call to SetJoined")
	}
	return m.setJoinedFn(roomID, host)
}

func (m *mockScheduleRepo) DeleteByRoomID(roomID string) error {
	if m.deleteFn == nil {
		panic("unexpected call to DeleteByRoomID")
	}
	return m.deleteFn(roomID)
}

type mockChallengeRepo struct {
	getOrCreateFn func(uint, string, string) (*models.DailyChallenge, error)
	submitFn      func(uint, uint, string, int) (bool, error)
}

func (m *mockChallengeRepo) GetOrCreate(userID uint, date, question string) (*models.DailyChallenge, error) {
	if m.getOrCreateFn == nil {
		panic("unexpected call to GetOrCreate")
	}
	return m.getOrCreateFn(userID, date, question)
}

func (m *mockChallengeRepo) Submit(challengeID, userID uint, answer string, score int) (bool, error) {
	if m.submitFn == nil {
		panic("unexpected call to Submit")
	}
	return m.submitFn(challengeID, userID, answer, score)
}

type mockProvider struct {
	generateQuestionsFn func(context.Context, string, string, int) ([]string, error)
	evaluateAnswerFn    func(context.Context, string, string) (*models.Feedback, error)
}

func (m *mockProvider) GenerateQuestions(ctx context.Context, role, difficulty string, count int) ([]string, error) {
	if m.generateQuestionsFn == nil {
		panic("unexpected call to GenerateQuestions")
	}
	return m.generateQuestionsFn(ctx, role, difficulty, count)
}

func (m *mockProvider) EvaluateAnswer(ctx context.Context, question, answer string) (*models.Feedback, error) {
	if m.evaluateAnswerFn == nil {
		panic("unexpected call to EvaluateAnswer")
	}
	return m.evaluateAnswerFn(ctx, question, answer)
}

func (m *mockProvider) GetProviderName() string { return "mock" }

type mockMeetingClient struct {
	createMeetingFn func(context.Context, meeting.Event) (string, error)
}

func (m *mockMeetingClient) CreateMeeting(ctx context.Context, ev meeting.Event) (string, error) {
	if m.createMeetingFn == nil {
		return "https://meet.example.com/abc", nil
	}
	return m.createMeetingFn(ctx, ev)
}

type mockPublisher struct {
	published []services.InterviewScheduledEvent
	err       error
}

func (m *mockPublisher) PublishScheduled(ctx context.Context, event services.InterviewScheduledEvent) error {
	m.published = append(m.published, event)
	return m.err
}

// postJSON runs the handler behind the validation middleware with an
// authenticated caller, the way the router wires it.
func postJSON[T middleware.Validator](t *testing.T, handler http.HandlerFunc, userID uint, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))

	rec := httptest.NewRecorder()
	middleware.ValidateRequest[T]()(handler).ServeHTTP(rec, req)
	return rec
}

func getWithUser(t *testing.T, handler http.HandlerFunc, userID uint) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func testLogger() *zap.Logger { return zap.NewNop() }
