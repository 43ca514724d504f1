package auth

import (
	"errors"
	"log"
	"net/http"
	"time"

	"fotokarte/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const cookieName = "sessionId"

type Handler struct {
	svc        *Service
	sessionTTL time.Duration
}

func NewHandler(svc *Service, sessionTTL time.Duration) *Handler {
	return &Handler{svc: svc, sessionTTL: sessionTTL}
}

// RegisterRoutes mounts the login flow at the root and the status probe
// under /api. session-status authenticates itself, so it stays outside the
// protected group.
func (h *Handler) RegisterRoutes(root *gin.Engine, api *gin.RouterGroup) {
	root.POST("/verify-access", h.VerifyAccess)
	root.POST("/logout", h.Logout)
	api.GET("/session-status", h.SessionStatus)
}

// VerifyAccess checks the access code and creates a session. The token is
// both set as a cookie and returned in the body; clients historically used
// either transport.
func (h *Handler) VerifyAccess(c *gin.Context) {
	var req struct {
		AccessCode string `json:"accessCode"`
	}
	_ = c.ShouldBindJSON(&req)

	token, err := h.svc.Login(req.AccessCode)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingCode):
			response.Fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrInvalidCode):
			log.Printf("[AUTH] invalid access code from %s", c.ClientIP())
			response.Fail(c, http.StatusUnauthorized, err.Error())
		default:
			response.Fail(c, http.StatusInternalServerError, "Server error during login")
		}
		return
	}

	c.SetCookie(cookieName, token, int(h.sessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"error":     false,
		"message":   "Zugangscode akzeptiert",
		"sessionId": token,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	token := TokenFrom(c)

	if token == "" || !h.svc.Logout(token) {
		response.Fail(c, http.StatusBadRequest, "No valid session")
		return
	}

	c.SetCookie(cookieName, "", -1, "/", "", false, true)
	response.OK(c, http.StatusOK, "Logged out successfully", nil)
}

func (h *Handler) SessionStatus(c *gin.Context) {
	if h.svc.Authenticated(TokenFrom(c)) {
		c.JSON(http.StatusOK, gin.H{
			"authenticated": true,
			"message":       "Session gültig",
		})
		return
	}

	c.JSON(http.StatusUnauthorized, gin.H{
		"authenticated": false,
		"message":       "Bitte erneut anmelden",
	})
}

// TokenFrom extracts the session token from the cookie, the X-Session-Id
// header or the sessionId query parameter, in that order.
func TokenFrom(c *gin.Context) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}
	if token := c.GetHeader("X-Session-Id"); token != "" {
		return token
	}
	return c.Query("sessionId")
}
