package stats

import (
	"log"
	"net/http"

	"fotokarte/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.Overview)
}

func (h *Handler) Overview(c *gin.Context) {
	overview, err := h.svc.Overview(c.Request.Context())
	if err != nil {
		log.Printf("[STATS] overview failed: %v", err)
		response.Fail(c, http.StatusInternalServerError, "Failed to retrieve statistics")
		return
	}
	response.Data(c, http.StatusOK, overview)
}
