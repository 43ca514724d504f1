package image

// UploadRequest is the JSON ingestion shape: a data URI plus the original
// filename. The multipart shape carries the same information in the part.
type UploadRequest struct {
	ImageData string `json:"imageData"`
	FileName  string `json:"fileName"`
}

type UploadResult struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	ImageType    string `json:"image_type"`
	ImageName    string `json:"image_name"`
	HasImage     bool   `json:"has_image"`
	HasThumbnail bool   `json:"has_thumbnail"`
}
