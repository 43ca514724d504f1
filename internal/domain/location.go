package domain

import "time"

// Location is a geo-tagged note shown on the map. At most one photo is
// attached at a time; the image columns are owned by the image pipeline and
// always written together.
type Location struct {
	ID          int64   `gorm:"column:id;primaryKey" json:"id"`
	Title       string  `gorm:"column:title;size:255;not null" json:"title"`
	Description string  `gorm:"column:description" json:"description"`
	Latitude    float64 `gorm:"column:latitude;type:decimal(9,6);not null" json:"latitude"`
	Longitude   float64 `gorm:"column:longitude;type:decimal(9,6);not null" json:"longitude"`
	Date        string  `gorm:"column:date" json:"date"`

	// image_data and thumbnail_data hold self-describing data URIs
	// (data:<mime>;base64,<payload>). They are never serialized to JSON;
	// list/detail responses expose has_image / has_thumbnail instead.
	ImageType     string `gorm:"column:image_type;size:50" json:"image_type,omitempty"`
	ImageName     string `gorm:"column:image_name;size:255" json:"image_name,omitempty"`
	ImageData     string `gorm:"column:image_data;type:text" json:"-"`
	ThumbnailData string `gorm:"column:thumbnail_data;type:text" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Location) TableName() string { return "locations" }
