package api_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yavin/platform/internal/api"
	"github.com/yavin/platform/internal/catalog"
	errorvalues "github.com/yavin/platform/internal/error_values"
	"github.com/yavin/platform/internal/service"
	"github.com/yavin/platform/internal/service/mocks"
	"github.com/yavin/platform/pkg/entity"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var userID = uuid.New()

// SessionServiceMock resolves every request to a fixed uid when loggedIn
// is set, otherwise everything is anonymous
type SessionServiceMock struct {
	loggedIn   bool
	startError error
}

func (sm *SessionServiceMock) Start(ctx context.Context, w http.ResponseWriter, uid uuid.UUID) error {
	return sm.startError
}

func (sm *SessionServiceMock) Resolve(ctx context.Context, r *http.Request) (uuid.UUID, bool) {
	if sm.loggedIn {
		return userID, true
	}
	return uuid.Nil, false
}

func (sm *SessionServiceMock) End(ctx context.Context, w http.ResponseWriter, r *http.Request) {}

type ChatServiceMock struct {
	answer string
}

func (cm *ChatServiceMock) Ask(ctx context.Context, message string) string {
	return cm.answer
}

// asUser routes the request through the session middleware so the handler
// sees the uid the way it would in production
func asUser(serv *api.Server, handler http.HandlerFunc, rr *httptest.ResponseRecorder, r *http.Request) {
	serv.SessionMiddleware(handler).ServeHTTP(rr, r)
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	result := make(map[string]any)
	err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result)
	require.NoError(t, err)
	return result
}

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	userService := mocks.NewMockUserServiceI(ctrl)
	sessions := &SessionServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: userService,
		Sessions:    sessions,
	})
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Email:    "test@example.com",
		Password: "test_password",
		Name:     "test_user",
	})
	require.NoError(t, err)
	t.Run("registered", func(t *testing.T) {
		userService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&entity.User{
			ID:    userID,
			Email: "test@example.com",
			Name:  "test_user",
		}, nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
		serv.Register(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := decodeBody(t, rr)
		assert.Equal(t, true, result["success"])
	})
	t.Run("invalid email", func(t *testing.T) {
		userService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrInvalidEmail)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
		serv.Register(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("weak password", func(t *testing.T) {
		userService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrWeakPassword)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
		serv.Register(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("email taken", func(t *testing.T) {
		userService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrEmailTaken)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
		serv.Register(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader([]byte("corrupted")))
		serv.Register(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("session start error", func(t *testing.T) {
		userService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&entity.User{ID: userID}, nil)
		sessions.startError = errors.New("redis down")
		defer func() { sessions.startError = nil }()
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
		serv.Register(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	userService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: userService,
		Sessions:    &SessionServiceMock{},
	})
	body, err := sonic.ConfigDefault.Marshal(api.LoginRequest{
		Email:    "test@example.com",
		Password: "test_password",
	})
	require.NoError(t, err)
	t.Run("logged in", func(t *testing.T) {
		userService.EXPECT().Login(gomock.Any(), "test@example.com", "test_password").Return(&entity.User{
			ID:         userID,
			Email:      "test@example.com",
			StreakDays: 2,
			TotalXP:    300,
		}, nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
		serv.Login(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("wrong credentials", func(t *testing.T) {
		userService.EXPECT().Login(gomock.Any(), "test@example.com", "test_password").Return(nil, errorvalues.ErrWrongCredentials)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
		serv.Login(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte("corrupted")))
		serv.Login(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	userService := mocks.NewMockUserServiceI(ctrl)
	sessions := &SessionServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: userService,
		Sessions:    sessions,
	})
	t.Run("anonymous", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		serv.Me(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := decodeBody(t, rr)
		assert.Equal(t, false, result["logged_in"])
	})
	t.Run("logged in", func(t *testing.T) {
		sessions.loggedIn = true
		defer func() { sessions.loggedIn = false }()
		userService.EXPECT().Profile(gomock.Any(), userID).Return(&entity.User{
			ID:      userID,
			Email:   "test@example.com",
			TotalXP: 300,
		}, []entity.Progress{{SectionID: "foundations", Completed: true}}, nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		asUser(serv, serv.Me, rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := decodeBody(t, rr)
		assert.Equal(t, true, result["logged_in"])
	})
	t.Run("stale session", func(t *testing.T) {
		sessions.loggedIn = true
		defer func() { sessions.loggedIn = false }()
		userService.EXPECT().Profile(gomock.Any(), userID).Return(nil, nil, errorvalues.ErrUserNotFound)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		asUser(serv, serv.Me, rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := decodeBody(t, rr)
		assert.Equal(t, false, result["logged_in"])
	})
}

func TestUpdateProgressHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	progressService := mocks.NewMockProgressServiceI(ctrl)
	sessions := &SessionServiceMock{loggedIn: true}
	serv := api.New(&api.ServicesList{
		ProgressService: progressService,
		Sessions:        sessions,
	})
	body, err := sonic.ConfigDefault.Marshal(api.UpdateProgressRequest{
		SectionID: "foundations",
		Completed: true,
		TimeSpent: 600,
	})
	require.NoError(t, err)
	t.Run("updated", func(t *testing.T) {
		progressService.EXPECT().UpsertProgress(gomock.Any(), userID, &service.ProgressUpdate{
			SectionID: "foundations",
			Completed: true,
			TimeSpent: 600,
		}).Return(&entity.ProgressResult{XPEarned: 100, TotalXP: 400, StreakDays: 3}, nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/progress", bytes.NewReader(body))
		asUser(serv, serv.UpdateProgress, rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := decodeBody(t, rr)
		assert.Equal(t, float64(100), result["xp_earned"])
	})
	t.Run("invalid section", func(t *testing.T) {
		progressService.EXPECT().UpsertProgress(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrInvalidSection)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/progress", bytes.NewReader(body))
		asUser(serv, serv.UpdateProgress, rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("gone user", func(t *testing.T) {
		progressService.EXPECT().UpsertProgress(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrUserNotFound)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/progress", bytes.NewReader(body))
		asUser(serv, serv.UpdateProgress, rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("anonymous rejected by middleware", func(t *testing.T) {
		sessions.loggedIn = false
		defer func() { sessions.loggedIn = true }()
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/progress", bytes.NewReader(body))
		serv.SessionMiddleware(serv.RequireUserMiddleware(http.HandlerFunc(serv.UpdateProgress))).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestSubmitQuizHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	progressService := mocks.NewMockProgressServiceI(ctrl)
	sessions := &SessionServiceMock{}
	serv := api.New(&api.ServicesList{
		ProgressService: progressService,
		Sessions:        sessions,
	})
	body, err := sonic.ConfigDefault.Marshal(api.QuizSubmissionRequest{
		Section: "modern",
		Score:   4,
		Total:   5,
	})
	require.NoError(t, err)
	sub := &service.QuizSubmission{Section: "modern", Score: 4, Total: 5}
	t.Run("anonymous submission is scored only", func(t *testing.T) {
		progressService.EXPECT().ScoreOnly(sub).Return(&entity.QuizResult{
			Score: 4, Total: 5, Percentage: 80,
		}, nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/quiz", bytes.NewReader(body))
		serv.SubmitQuiz(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := decodeBody(t, rr)
		assert.Equal(t, false, result["logged_in"])
	})
	t.Run("logged-in submission is recorded", func(t *testing.T) {
		sessions.loggedIn = true
		defer func() { sessions.loggedIn = false }()
		progressService.EXPECT().RecordQuiz(gomock.Any(), userID, sub).Return(&entity.QuizResult{
			Score: 4, Total: 5, Percentage: 80, LoggedIn: true,
		}, nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/quiz", bytes.NewReader(body))
		asUser(serv, serv.SubmitQuiz, rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := decodeBody(t, rr)
		assert.Equal(t, true, result["logged_in"])
	})
	t.Run("non-positive total", func(t *testing.T) {
		progressService.EXPECT().ScoreOnly(gomock.Any()).Return(nil, errorvalues.ErrInvalidQuizTotal)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/quiz", bytes.NewReader(body))
		serv.SubmitQuiz(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestListBadgesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	badgeService := mocks.NewMockBadgeServiceI(ctrl)
	sessions := &SessionServiceMock{}
	serv := api.New(&api.ServicesList{
		BadgeService: badgeService,
		Sessions:     sessions,
	})
	t.Run("anonymous gets the full catalog", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/badges", nil)
		serv.ListBadges(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := decodeBody(t, rr)
		assert.Len(t, result["available"], len(catalog.Badges))
		assert.Empty(t, result["earned"])
	})
	t.Run("logged in gets the split", func(t *testing.T) {
		sessions.loggedIn = true
		defer func() { sessions.loggedIn = false }()
		badgeService.EXPECT().EarnedAndAvailable(gomock.Any(), userID).
			Return(catalog.Badges[:2], catalog.Badges[2:], nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/badges", nil)
		asUser(serv, serv.ListBadges, rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := decodeBody(t, rr)
		assert.Len(t, result["earned"], 2)
	})
}

func TestCheckBadgesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	badgeService := mocks.NewMockBadgeServiceI(ctrl)
	sessions := &SessionServiceMock{loggedIn: true}
	serv := api.New(&api.ServicesList{
		BadgeService: badgeService,
		Sessions:     sessions,
	})
	body, err := sonic.ConfigDefault.Marshal(api.CheckBadgesRequest{Trigger: catalog.TriggerChatUsed})
	require.NoError(t, err)
	t.Run("new badges returned", func(t *testing.T) {
		badgeService.EXPECT().CheckBadges(gomock.Any(), userID, catalog.TriggerChatUsed).
			Return(catalog.Badges[:1], nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/badges/check", bytes.NewReader(body))
		asUser(serv, serv.CheckBadges, rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := decodeBody(t, rr)
		assert.Len(t, result["new_badges"], 1)
	})
	t.Run("gone user", func(t *testing.T) {
		badgeService.EXPECT().CheckBadges(gomock.Any(), userID, catalog.TriggerChatUsed).
			Return(nil, errorvalues.ErrUserNotFound)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/badges/check", bytes.NewReader(body))
		asUser(serv, serv.CheckBadges, rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestCertificateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	certificateService := mocks.NewMockCertificateServiceI(ctrl)
	sessions := &SessionServiceMock{loggedIn: true}
	serv := api.New(&api.ServicesList{
		CertificateService: certificateService,
		Sessions:           sessions,
	})
	t.Run("eligible", func(t *testing.T) {
		certificateService.EXPECT().Generate(gomock.Any(), userID).Return(&entity.Certificate{
			CertificateID: "YAVIN-ABCD1234-20260830",
			Name:          "Ada",
		}, nil, nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/certificate", nil)
		asUser(serv, serv.Certificate, rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := decodeBody(t, rr)
		assert.Equal(t, true, result["eligible"])
	})
	t.Run("not eligible", func(t *testing.T) {
		certificateService.EXPECT().Generate(gomock.Any(), userID).Return(nil, &entity.CertificateEligibility{
			Eligible:  false,
			Remaining: []string{"ethics"},
		}, nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/certificate", nil)
		asUser(serv, serv.Certificate, rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := decodeBody(t, rr)
		assert.Equal(t, false, result["eligible"])
	})
	t.Run("service error", func(t *testing.T) {
		certificateService.EXPECT().Generate(gomock.Any(), userID).Return(nil, nil, errors.New("db error"))
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/certificate", nil)
		asUser(serv, serv.Certificate, rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestNewsletterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	newsletterService := mocks.NewMockNewsletterServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		NewsletterService: newsletterService,
		Sessions:          &SessionServiceMock{},
	})
	body, err := sonic.ConfigDefault.Marshal(api.NewsletterRequest{Email: "test@example.com"})
	require.NoError(t, err)
	t.Run("subscribed", func(t *testing.T) {
		newsletterService.EXPECT().Subscribe(gomock.Any(), "test@example.com", "").
			Return("Thanks for subscribing! You'll receive AI insights and updates.", nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/newsletter", bytes.NewReader(body))
		serv.SubscribeNewsletter(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("invalid email", func(t *testing.T) {
		newsletterService.EXPECT().Subscribe(gomock.Any(), "test@example.com", "").
			Return("", errorvalues.ErrInvalidEmail)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/newsletter", bytes.NewReader(body))
		serv.SubscribeNewsletter(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestFeedbackHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	feedbackService := mocks.NewMockFeedbackServiceI(ctrl)
	sessions := &SessionServiceMock{}
	serv := api.New(&api.ServicesList{
		FeedbackService: feedbackService,
		Sessions:        sessions,
	})
	t.Run("saved with user id", func(t *testing.T) {
		sessions.loggedIn = true
		defer func() { sessions.loggedIn = false }()
		feedbackService.EXPECT().Submit(gomock.Any(), &entity.Feedback{
			UserID:  &userID,
			Rating:  5,
			Message: "great course",
		}).Return(nil)
		body, err := sonic.ConfigDefault.Marshal(api.FeedbackRequest{Rating: 5, Message: "great course"})
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/feedback", bytes.NewReader(body))
		asUser(serv, serv.SubmitFeedback, rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("missing message", func(t *testing.T) {
		body, err := sonic.ConfigDefault.Marshal(api.FeedbackRequest{Rating: 5})
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/feedback", bytes.NewReader(body))
		serv.SubmitFeedback(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestChatHandler(t *testing.T) {
	serv := api.New(&api.ServicesList{
		Sessions: &SessionServiceMock{},
		Chat:     &ChatServiceMock{answer: "Neural networks are..."},
	})
	t.Run("answered", func(t *testing.T) {
		body, err := sonic.ConfigDefault.Marshal(api.ChatRequest{Message: "What is a neural network?"})
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
		serv.Chat(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := decodeBody(t, rr)
		assert.Equal(t, "Neural networks are...", result["response"])
	})
	t.Run("blank message", func(t *testing.T) {
		body, err := sonic.ConfigDefault.Marshal(api.ChatRequest{Message: "   "})
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
		serv.Chat(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestSearchHandler(t *testing.T) {
	serv := api.New(&api.ServicesList{
		Sessions: &SessionServiceMock{},
	})
	t.Run("results", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/search?q=perceptron", nil)
		serv.Search(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := decodeBody(t, rr)
		assert.Len(t, result["results"], 1)
	})
	t.Run("short query", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/search?q=a", nil)
		serv.Search(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := decodeBody(t, rr)
		assert.Empty(t, result["results"])
	})
}
