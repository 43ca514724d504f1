package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fotokarte/internal/middleware"
	"fotokarte/internal/modules/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *auth.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := auth.NewStore(time.Hour)
	t.Cleanup(store.Close)

	svc := auth.NewService(store, "geheim", "")
	handler := auth.NewHandler(svc, time.Hour)

	router := gin.New()
	api := router.Group("/api")
	handler.RegisterRoutes(router, api)

	protected := api.Group("")
	protected.Use(middleware.RequireSession(store))
	protected.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router, store
}

func postJSON(router *gin.Engine, url string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rec := postJSON(router, "/verify-access", gin.H{"accessCode": "geheim"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Error     bool   `json:"error"`
		Message   string `json:"message"`
		SessionID string `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Error)
	assert.Equal(t, "Zugangscode akzeptiert", resp.Message)
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func TestVerifyAccessSetsCookie(t *testing.T) {
	router, _ := setupAuthRouter(t)

	rec := postJSON(router, "/verify-access", gin.H{"accessCode": "geheim"})
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sessionId", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestVerifyAccessRejectsWrongCode(t *testing.T) {
	router, _ := setupAuthRouter(t)

	rec := postJSON(router, "/verify-access", gin.H{"accessCode": "falsch"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Error)
	assert.Equal(t, "Ungültiger Zugangscode", resp.Message)
}

func TestVerifyAccessRequiresCode(t *testing.T) {
	router, _ := setupAuthRouter(t)

	rec := postJSON(router, "/verify-access", gin.H{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bitte gib einen Zugangscode ein")
}

func TestProtectedRouteNeedsSession(t *testing.T) {
	router, _ := setupAuthRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/probe", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized. Please log in first.")
}

func TestProtectedRouteAcceptsHeaderToken(t *testing.T) {
	router, _ := setupAuthRouter(t)
	token := login(t, router)

	req := httptest.NewRequest(http.MethodGet, "/api/probe", nil)
	req.Header.Set("X-Session-Id", token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRouteAcceptsQueryToken(t *testing.T) {
	router, _ := setupAuthRouter(t)
	token := login(t, router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/probe?sessionId="+token, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionStatus(t *testing.T) {
	router, _ := setupAuthRouter(t)
	token := login(t, router)

	req := httptest.NewRequest(http.MethodGet, "/api/session-status", nil)
	req.Header.Set("X-Session-Id", token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Session gültig")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/session-status", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bitte erneut anmelden")
}

func TestLogoutInvalidatesSession(t *testing.T) {
	router, store := setupAuthRouter(t)
	token := login(t, router)
	require.True(t, store.Validate(token))

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("X-Session-Id", token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logged out successfully")

	assert.False(t, store.Validate(token))

	// A second logout with the same token has nothing to remove.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
