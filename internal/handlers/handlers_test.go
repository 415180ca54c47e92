package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lexhub_backend/internal/auth"
	"lexhub_backend/internal/middleware"
	"lexhub_backend/internal/models"
	"lexhub_backend/internal/services/dto"
	"lexhub_backend/internal/validator"
	"lexhub_backend/pkg/apperrors"
	"lexhub_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "handler-secret"

// --- фейки сервисов ---

type fakeLawyerService struct {
	submitUserID string
	submitReq    *dto.OnboardLawyerRequest
	submitErr    error
	decideID     string
	decideReq    *dto.ModerationRequest
	decideErr    error
	pending      []dto.PendingLawyer
	detail       *dto.LawyerDetailResponse
	detailErr    error
}

func (f *fakeLawyerService) Submit(_ *gorm.DB, userID string, req *dto.OnboardLawyerRequest) (*dto.OnboardLawyerResponse, error) {
	f.submitUserID, f.submitReq = userID, req
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &dto.OnboardLawyerResponse{Success: true, LawyerID: "lawyer-1", Message: "ok"}, nil
}

func (f *fakeLawyerService) Decide(_ *gorm.DB, lawyerID string, req *dto.ModerationRequest) (*dto.ModerationResponse, error) {
	f.decideID, f.decideReq = lawyerID, req
	if f.decideErr != nil {
		return nil, f.decideErr
	}
	return &dto.ModerationResponse{
		Success: true,
		Lawyer:  &models.LawyerProfile{BaseModel: models.BaseModel{ID: lawyerID}, Status: models.LawyerStatusApproved},
		Message: "Lawyer approved successfully",
	}, nil
}

func (f *fakeLawyerService) ListPending(_ *gorm.DB) ([]dto.PendingLawyer, error) {
	return f.pending, nil
}

func (f *fakeLawyerService) GetPublicProfile(_ *gorm.DB, _ string) (*dto.LawyerDetailResponse, error) {
	return f.detail, f.detailErr
}

type fakeDirectoryService struct {
	lastReq *dto.SearchLawyersRequest
}

func (f *fakeDirectoryService) Search(_ *gorm.DB, req *dto.SearchLawyersRequest) (*dto.SearchLawyersResponse, error) {
	f.lastReq = req
	return &dto.SearchLawyersResponse{
		Lawyers:    []dto.LawyerListItem{},
		Pagination: dto.Pagination{Page: 1, Limit: 12},
	}, nil
}

type fakeCategoryService struct{}

func (fakeCategoryService) List(_ *gorm.DB) ([]dto.CategoryResponse, error) {
	return []dto.CategoryResponse{{
		Category: models.Category{Key: models.CategoryFamilyLaw, NameEn: "Family Law"},
		Count:    dto.CategoryCounts{Lawyers: 3},
	}}, nil
}

type fakeChatService struct {
	err error
}

func (f *fakeChatService) Reply(_ context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.ChatResponse{Response: "echo: " + req.Message, Timestamp: "2025-03-10T12:00:00Z"}, nil
}

type fakeResolver struct {
	users map[string]*models.User
}

func (r *fakeResolver) ResolveSession(_ *gorm.DB, claims *auth.SessionClaims) (*models.User, error) {
	u, ok := r.users[claims.Subject]
	if !ok {
		return nil, apperrors.ErrUnauthenticated
	}
	return u, nil
}

// --- сборка роутера ---

type testEnv struct {
	router    *gin.Engine
	lawyers   *fakeLawyerService
	directory *fakeDirectoryService
	chat      *fakeChatService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		lawyers:   &fakeLawyerService{},
		directory: &fakeDirectoryService{},
		chat:      &fakeChatService{},
	}

	mk := func(id string, role models.UserRole) *models.User {
		return &models.User{BaseModel: models.BaseModel{ID: id}, Email: id + "@example.com", Role: role, Status: models.UserStatusActive}
	}
	gate := middleware.NewIdentityGate(&fakeResolver{users: map[string]*models.User{
		"client": mk("client", models.UserRoleClient),
		"admin":  mk("admin", models.UserRolePlatformAdmin),
	}}, testSecret, "session-token")

	base := NewBaseHandler(validator.New())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(string(contextkeys.DBContextKey), &gorm.DB{})
		c.Next()
	})
	api := r.Group("/api/v1")
	NewCategoryHandler(base, fakeCategoryService{}).RegisterRoutes(api)
	NewLawyerHandler(base, env.directory, env.lawyers).RegisterRoutes(api)
	NewOnboardingHandler(base, env.lawyers, gate).RegisterRoutes(api)
	NewAdminHandler(base, env.lawyers, gate).RegisterRoutes(api)
	NewChatHandler(base, env.chat, nil).RegisterRoutes(api)

	env.router = r
	return env
}

func (e *testEnv) do(t *testing.T, method, path, subject string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if subject != "" {
		token, err := auth.IssueSessionToken(testSecret, auth.SessionClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
		}, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error.Message
}

// --- тесты ---

func TestListCategories(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/categories", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "FAMILY_LAW", got[0]["key"])
	assert.EqualValues(t, 3, got[0]["_count"].(map[string]any)["lawyers"])
}

func TestSearchLawyers_BindsQuery(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/lawyers?category=FAMILY_LAW&location=austin&minRate=100&page=2&limit=5", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	req := env.directory.lastReq
	require.NotNil(t, req)
	assert.Equal(t, "FAMILY_LAW", req.Category)
	assert.Equal(t, "austin", req.Location)
	require.NotNil(t, req.MinRate)
	assert.Equal(t, 100.0, *req.MinRate)
	assert.Nil(t, req.MaxRate)
	assert.Equal(t, 2, req.Page)
	assert.Equal(t, 5, req.Limit)
}

func TestSearchLawyers_BadQuery(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/lawyers?minRate=cheap", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, env.directory.lastReq)
}

func TestGetLawyer_NotAvailable(t *testing.T) {
	env := newTestEnv(t)
	env.lawyers.detailErr = apperrors.ErrLawyerNotAvailable

	w := env.do(t, http.MethodGet, "/api/v1/lawyers/abc", "", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Lawyer profile not available", errorMessage(t, w))
}

func TestOnboard(t *testing.T) {
	t.Run("requires session", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(t, http.MethodPost, "/api/v1/lawyer/onboard", "", dto.OnboardLawyerRequest{FirstName: "Ann"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, env.lawyers.submitReq)
	})

	t.Run("submits for the caller", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(t, http.MethodPost, "/api/v1/lawyer/onboard", "client", dto.OnboardLawyerRequest{
			FirstName: "Ann", LastName: "Lee", BarNumber: "TX-1", BarState: "tx",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "client", env.lawyers.submitUserID)
		assert.Equal(t, "TX-1", env.lawyers.submitReq.BarNumber)

		var got dto.OnboardLawyerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.True(t, got.Success)
		assert.Equal(t, "lawyer-1", got.LawyerID)
	})

	t.Run("conflict maps to 400", func(t *testing.T) {
		env := newTestEnv(t)
		env.lawyers.submitErr = apperrors.ErrBarNumberTaken
		w := env.do(t, http.MethodPost, "/api/v1/lawyer/onboard", "client", dto.OnboardLawyerRequest{
			FirstName: "Ann", LastName: "Lee", BarNumber: "TX-1", BarState: "TX",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "This bar number is already registered", errorMessage(t, w))
	})

	t.Run("website without scheme accepted", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(t, http.MethodPost, "/api/v1/lawyer/onboard", "client", dto.OnboardLawyerRequest{
			FirstName: "Ann", LastName: "Lee", BarNumber: "TX-1", BarState: "TX",
			Website: "annlee-law.com",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "annlee-law.com", env.lawyers.submitReq.Website)
	})

	t.Run("unsupported language rejected by validator", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(t, http.MethodPost, "/api/v1/lawyer/onboard", "client", dto.OnboardLawyerRequest{
			FirstName: "Ann", LastName: "Lee", BarNumber: "TX-1", BarState: "TX",
			Languages: []dto.LawyerLanguageInput{{Language: "KLINGON"}},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, env.lawyers.submitReq)
	})
}

func TestAdminRoutes_RequireAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.lawyers.pending = []dto.PendingLawyer{{LawyerProfile: &models.LawyerProfile{BaseModel: models.BaseModel{ID: "p1"}}}}

	w := env.do(t, http.MethodGet, "/api/v1/admin/lawyers/pending", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "p1")

	w = env.do(t, http.MethodGet, "/api/v1/admin/lawyers/pending", "client", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "p1")

	w = env.do(t, http.MethodPost, "/api/v1/admin/lawyers/p1/approve", "client", dto.ModerationRequest{Action: "approve"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Nil(t, env.lawyers.decideReq)
}

func TestAdminListPending(t *testing.T) {
	env := newTestEnv(t)
	env.lawyers.pending = []dto.PendingLawyer{{LawyerProfile: &models.LawyerProfile{BaseModel: models.BaseModel{ID: "p1"}}}}

	w := env.do(t, http.MethodGet, "/api/v1/admin/lawyers/pending", "admin", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0]["id"])
}

func TestAdminDecide(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(t, http.MethodPost, "/api/v1/admin/lawyers/p1/approve", "admin", dto.ModerationRequest{Action: "approve", Notes: "ok"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "p1", env.lawyers.decideID)
		assert.Equal(t, "approve", env.lawyers.decideReq.Action)

		var got dto.ModerationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Lawyer approved successfully", got.Message)
	})

	t.Run("not pending", func(t *testing.T) {
		env := newTestEnv(t)
		env.lawyers.decideErr = apperrors.ErrLawyerNotPending
		w := env.do(t, http.MethodPost, "/api/v1/admin/lawyers/p1/approve", "admin", dto.ModerationRequest{Action: "reject"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Lawyer is not pending verification", errorMessage(t, w))
	})
}

func TestChat(t *testing.T) {
	t.Run("replies", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(t, http.MethodPost, "/api/v1/chat", "", dto.ChatRequest{Message: "hi"})
		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "echo: hi", got["response"])
		assert.Contains(t, got, "timestamp")
	})

	t.Run("message required", func(t *testing.T) {
		env := newTestEnv(t)
		env.chat.err = apperrors.ErrMessageRequired
		w := env.do(t, http.MethodPost, "/api/v1/chat", "", dto.ChatRequest{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Message is required", errorMessage(t, w))
	})

	t.Run("bad history role", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(t, http.MethodPost, "/api/v1/chat", "", dto.ChatRequest{
			Message:             "hi",
			ConversationHistory: []dto.ChatTurn{{Role: "system", Content: "x"}},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("upstream failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.chat.err = apperrors.ErrChatUpstream(assert.AnError)
		w := env.do(t, http.MethodPost, "/api/v1/chat", "", dto.ChatRequest{Message: "hi"})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
