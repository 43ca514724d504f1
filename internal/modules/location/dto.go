package location

import (
	"time"

	"fotokarte/internal/domain"
)

type CreateLocationRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Date        string   `json:"date"`
}

// UpdateLocationRequest carries partial updates; absent fields keep their
// stored values. The image columns are owned by the upload pipeline and are
// not touched here.
type UpdateLocationRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Date        string   `json:"date"`
}

// LocationResponse is the wire shape for reads. The stored blobs are never
// serialized; clients fetch them via the image endpoints and only see the
// presence flags here.
type LocationResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Date         string    `json:"date"`
	ImageType    string    `json:"image_type,omitempty"`
	ImageName    string    `json:"image_name,omitempty"`
	HasImage     bool      `json:"has_image"`
	HasThumbnail bool      `json:"has_thumbnail"`
	CreatedAt    time.Time `json:"created_at"`
}

// An image and its thumbnail are always written together, so the stored MIME
// type doubles as the presence flag without loading the blob columns.
func toResponse(loc *domain.Location) LocationResponse {
	hasImage := loc.ImageType != ""
	return LocationResponse{
		ID:           loc.ID,
		Title:        loc.Title,
		Description:  loc.Description,
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
		Date:         loc.Date,
		ImageType:    loc.ImageType,
		ImageName:    loc.ImageName,
		HasImage:     hasImage,
		HasThumbnail: hasImage,
		CreatedAt:    loc.CreatedAt,
	}
}
