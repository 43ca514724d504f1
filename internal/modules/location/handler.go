package location

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"fotokarte/internal/modules/events"
	"fotokarte/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
	hub *events.Hub
}

func NewHandler(svc *Service, hub *events.Hub) *Handler {
	return &Handler{svc: svc, hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/locations", h.List)
	rg.GET("/locations/:id", h.Get)
	rg.POST("/locations", h.Create)
	rg.PUT("/locations/:id", h.Update)
	rg.DELETE("/locations/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	locations, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("[LOCATIONS] list failed: %v", err)
		response.Fail(c, http.StatusInternalServerError, "Failed to retrieve locations")
		return
	}

	items := make([]LocationResponse, 0, len(locations))
	for i := range locations {
		items = append(items, toResponse(&locations[i]))
	}
	response.Data(c, http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	loc, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Fail(c, http.StatusNotFound, fmt.Sprintf("Location with ID %d not found", id))
			return
		}
		log.Printf("[LOCATIONS] get %d failed: %v", id, err)
		response.Fail(c, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve location with ID %d", id))
		return
	}
	response.Data(c, http.StatusOK, toResponse(loc))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, ErrMissingFields.Error())
		return
	}

	loc, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields), errors.Is(err, ErrValueTooLong):
			response.Fail(c, http.StatusBadRequest, err.Error())
		default:
			log.Printf("[LOCATIONS] create failed: %v", err)
			response.Fail(c, http.StatusInternalServerError, "Failed to create location")
		}
		return
	}

	h.hub.Broadcast(events.LocationCreated, loc.ID)
	response.OK(c, http.StatusCreated, "Location created successfully", toResponse(loc))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	loc, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Fail(c, http.StatusNotFound, fmt.Sprintf("Location with ID %d not found", id))
		case errors.Is(err, ErrValueTooLong):
			response.Fail(c, http.StatusBadRequest, err.Error())
		default:
			log.Printf("[LOCATIONS] update %d failed: %v", id, err)
			response.Fail(c, http.StatusInternalServerError, fmt.Sprintf("Failed to update location with ID %d", id))
		}
		return
	}

	h.hub.Broadcast(events.LocationUpdated, id)
	response.OK(c, http.StatusOK, "Location updated successfully", toResponse(loc))
}

// Delete removes the row; the image columns disappear with it.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Fail(c, http.StatusNotFound, fmt.Sprintf("Location with ID %d not found", id))
			return
		}
		log.Printf("[LOCATIONS] delete %d failed: %v", id, err)
		response.Fail(c, http.StatusInternalServerError, fmt.Sprintf("Failed to delete location with ID %d", id))
		return
	}

	h.hub.Broadcast(events.LocationDeleted, id)
	c.JSON(http.StatusOK, gin.H{
		"error":   false,
		"message": fmt.Sprintf("Location with ID %d deleted successfully", id),
		"success": true,
	})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid location ID")
		return 0, false
	}
	return id, true
}
