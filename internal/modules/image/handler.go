package image

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"fotokarte/internal/modules/events"
	"fotokarte/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc      *Service
	hub      *events.Hub
	maxBytes int64
}

func NewHandler(svc *Service, hub *events.Hub, maxBytes int64) *Handler {
	return &Handler{svc: svc, hub: hub, maxBytes: maxBytes}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/locations/:id/upload", h.Upload)
	rg.GET("/locations/:id/image", h.Image)
}

// Upload ingests a photo for a location, either as a multipart file part
// named "image" or as JSON {imageData, fileName} carrying a data URI.
func (h *Handler) Upload(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid location ID")
		return
	}

	// Bound the transfer before anything is buffered. The JSON path carries
	// base64, so allow for the 4/3 inflation plus envelope overhead; the
	// exact byte ceiling is enforced again on the decoded payload.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes*3/2+64*1024)

	payload, err := h.normalize(c)
	if err != nil {
		h.uploadError(c, id, err)
		return
	}

	result, err := h.svc.Upload(c.Request.Context(), id, payload)
	if err != nil {
		h.uploadError(c, id, err)
		return
	}

	h.hub.Broadcast(events.ImageUploaded, id)
	response.OK(c, http.StatusOK, "Image uploaded and processed successfully", result)
}

// normalize resolves the two wire shapes into the canonical payload.
func (h *Handler) normalize(c *gin.Context) (*Payload, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("image")
		if err == nil {
			return FromMultipart(fh)
		}
		if !errors.Is(err, http.ErrMissingFile) {
			return nil, err
		}
		// A multipart form may still carry the data URI as a text field.
		if dataURI := c.PostForm("imageData"); dataURI != "" {
			return FromDataURI(dataURI, fileNameOrDefault(c.PostForm("fileName")))
		}
		return nil, ErrNoImageData
	}

	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &SizeError{Limit: h.maxBytes}
		}
		return nil, ErrNoImageData
	}
	if req.ImageData == "" {
		return nil, ErrNoImageData
	}
	return FromDataURI(req.ImageData, fileNameOrDefault(req.FileName))
}

func fileNameOrDefault(name string) string {
	if name == "" {
		return "image.jpg"
	}
	return name
}

func (h *Handler) uploadError(c *gin.Context, id int64, err error) {
	var sizeErr *SizeError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.Is(err, ErrLocationNotFound):
		response.Fail(c, http.StatusBadRequest, fmt.Sprintf("Location with ID %d does not exist", id))
	case errors.As(err, &sizeErr):
		response.Fail(c, http.StatusBadRequest, sizeErr.Error())
	case errors.As(err, &tooLarge):
		response.Fail(c, http.StatusBadRequest, (&SizeError{Limit: h.maxBytes}).Error())
	case errors.Is(err, ErrInvalidFormat),
		errors.Is(err, ErrExtensionMismatch),
		errors.Is(err, ErrMissingName),
		errors.Is(err, ErrNoImageData),
		errors.Is(err, ErrMalformedData):
		log.Printf("[VALIDATION_ERROR] upload rejected for location %d: %v", id, err)
		response.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrProcessing):
		log.Printf("[UPLOAD_ERROR] processing failed for location %d: %v", id, err)
		response.Fail(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[UPLOAD_ERROR] location %d: %v", id, err)
		response.Fail(c, http.StatusInternalServerError, "Server error processing the upload")
	}
}

// Image serves the stored derivative back as raw binary with the stored
// content type. ?thumb=true selects the thumbnail.
func (h *Handler) Image(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid location ID")
		return
	}

	thumb := c.Query("thumb") == "true"

	data, mimeType, err := h.svc.Image(c.Request.Context(), id, thumb)
	if err != nil {
		switch {
		case errors.Is(err, ErrLocationNotFound):
			response.Fail(c, http.StatusNotFound, fmt.Sprintf("Location with ID %d not found", id))
		case errors.Is(err, ErrImageNotFound), errors.Is(err, ErrThumbnailNotFound):
			response.Fail(c, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrCorruptStored):
			log.Printf("[INTEGRITY_ERROR] stored blob for location %d is malformed", id)
			response.Fail(c, http.StatusInternalServerError, err.Error())
		default:
			log.Printf("[IMAGE_ERROR] location %d: %v", id, err)
			response.Fail(c, http.StatusInternalServerError, "Server error retrieving the image")
		}
		return
	}

	c.Data(http.StatusOK, mimeType, data)
}
