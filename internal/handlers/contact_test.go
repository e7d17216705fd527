package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"opatija/backend/internal/config"
	"opatija/backend/internal/i18n"
	"opatija/backend/internal/middleware"
	"opatija/backend/internal/models"
	"opatija/backend/internal/repository"
	"opatija/backend/internal/service"
	"opatija/backend/internal/service/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContactTestHandler() (HandlerSet, *mocks.MockContactStore, *mocks.MockEnqueuer) {
	store := new(mocks.MockContactStore)
	tasks := new(mocks.MockEnqueuer)
	h := HandlerSet{
		log:      zerolog.Nop(),
		contacts: service.NewContactService(store, tasks, zerolog.Nop()),
		bundle:   i18n.NewBundle(),
	}
	return h, store, tasks
}

func newContactRouter(h HandlerSet) *gin.Engine {
	engine := gin.New()

	functions := engine.Group("/functions/v1")
	functions.Use(middleware.PublicCORS())
	functions.POST("/submit-contact", h.SubmitContact)
	functions.OPTIONS("/submit-contact", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	admin := engine.Group("/api/v1/admin")
	admin.GET("/contacts", h.AdminListContacts)
	admin.GET("/contacts/:id", h.AdminGetContact)
	admin.PATCH("/contacts/:id/status", h.AdminUpdateContactStatus)
	admin.DELETE("/contacts/:id", h.AdminDeleteContact)

	return engine
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitContact_Success(t *testing.T) {
	h, store, tasks := newContactTestHandler()
	router := newContactRouter(h)

	store.On("Create", mock.Anything, mock.Anything).Return(nil)
	tasks.On("Enqueue", mock.Anything, mock.Anything).Return(nil).Twice()

	rec := postJSON(router, "/functions/v1/submit-contact", gin.H{
		"fullName": "Dana Levi",
		"email":    "dana@example.com",
		"phone":    "+972-50-000-0000",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
	assert.NotEmpty(t, resp.ID)

	store.AssertExpectations(t)
	tasks.AssertExpectations(t)
}

func TestSubmitContact_MissingEmail(t *testing.T) {
	h, store, tasks := newContactTestHandler()
	router := newContactRouter(h)

	rec := postJSON(router, "/functions/v1/submit-contact", gin.H{
		"fullName": "Dana Levi",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	tasks.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
}

func TestSubmitContact_PersistenceFailure(t *testing.T) {
	h, store, tasks := newContactTestHandler()
	router := newContactRouter(h)

	store.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	rec := postJSON(router, "/functions/v1/submit-contact", gin.H{
		"fullName": "Dana Levi",
		"email":    "dana@example.com",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	tasks.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
}

func TestSubmitContact_Preflight(t *testing.T) {
	h, _, _ := newContactTestHandler()
	router := newContactRouter(h)

	req := httptest.NewRequest(http.MethodOptions, "/functions/v1/submit-contact", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "authorization, x-client-info, apikey, content-type", rec.Header().Get("Access-Control-Allow-Headers"))
}

// newServerEngine wires the handler set behind the middleware chain the
// HTTP server installs, so routes see the same CORS and locale handling
// they get in production.
func newServerEngine(h HandlerSet, origins []string) *gin.Engine {
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logger(zerolog.Nop()),
		middleware.Recovery(zerolog.Nop()),
		middleware.CORS(origins),
		middleware.Locale(i18n.DefaultLocale),
	)
	h.Register(engine)
	return engine
}

func TestSubmitContact_PreflightBehindServerChain(t *testing.T) {
	h, _, _ := newContactTestHandler()
	h.cfg = &config.AppConfig{}
	engine := newServerEngine(h, []string{"https://admin.example.com"})

	req := httptest.NewRequest(http.MethodOptions, "/functions/v1/submit-contact", nil)
	req.Header.Set("Origin", "https://landing.example.net")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "authorization, x-client-info, apikey, content-type", rec.Header().Get("Access-Control-Allow-Headers"))

	// The origin allowlist still governs the rest of the API.
	req = httptest.NewRequest(http.MethodOptions, "/api/v1/flights", nil)
	req.Header.Set("Origin", "https://landing.example.net")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAdminListContacts(t *testing.T) {
	h, store, _ := newContactTestHandler()
	router := newContactRouter(h)

	store.On("List", mock.Anything).Return([]models.ContactSubmission{
		{ID: "sub-1", FullName: "Dana Levi", Status: models.SubmissionStatusNew},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/contacts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Submissions []models.ContactSubmission `json:"submissions"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Submissions, 1)
	assert.Equal(t, "sub-1", resp.Submissions[0].ID)
}

func TestAdminUpdateContactStatus(t *testing.T) {
	h, store, _ := newContactTestHandler()
	router := newContactRouter(h)

	rec := postJSONMethod(router, http.MethodPatch, "/api/v1/admin/contacts/sub-1/status", gin.H{
		"status": "bogus",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)

	store.On("UpdateStatus", mock.Anything, "sub-1", models.SubmissionStatusContacted).Return(nil)
	rec = postJSONMethod(router, http.MethodPatch, "/api/v1/admin/contacts/sub-1/status", gin.H{
		"status": "contacted",
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	store.AssertExpectations(t)
}

func TestAdminGetContact_IncludesLabels(t *testing.T) {
	h, store, _ := newContactTestHandler()
	router := newContactRouter(h)

	budget := "under10k"
	store.On("GetByID", mock.Anything, "sub-1").Return(models.ContactSubmission{
		ID:            "sub-1",
		FullName:      "Dana Levi",
		Email:         "dana@example.com",
		Budget:        &budget,
		TravelerTypes: []string{"couple"},
		Status:        models.SubmissionStatusNew,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/contacts/sub-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Submission models.ContactSubmission `json:"submission"`
		Labels     struct {
			Status        string   `json:"status"`
			Budget        string   `json:"budget"`
			TravelerTypes []string `json:"travelerTypes"`
		} `json:"labels"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, "under10k", *resp.Submission.Budget, "stored value untouched")
	assert.NotEmpty(t, resp.Labels.Budget)
	assert.NotEqual(t, "under10k", resp.Labels.Budget, "label comes from the display lookup")
	assert.NotEmpty(t, resp.Labels.Status)
	require.Len(t, resp.Labels.TravelerTypes, 1)
}

func TestAdminDeleteContact_NotFound(t *testing.T) {
	h, store, _ := newContactTestHandler()
	router := newContactRouter(h)

	store.On("Delete", mock.Anything, "missing").Return(repository.ErrSubmissionNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/contacts/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func postJSONMethod(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
