package image

import (
	"context"
	"errors"

	"fotokarte/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	locations *repository.LocationRepository
	processor *Processor
	maxBytes  int64
}

func NewService(locations *repository.LocationRepository, processor *Processor, maxBytes int64) *Service {
	return &Service{locations: locations, processor: processor, maxBytes: maxBytes}
}

// Upload runs the ingestion pipeline: referential check, size guard,
// derivative generation, single-row persist. Every step fails fast; nothing
// is written unless both derivatives were produced.
func (s *Service) Upload(ctx context.Context, locationID int64, payload *Payload) (*UploadResult, error) {
	exists, err := s.locations.Exists(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrLocationNotFound
	}

	if int64(len(payload.Data)) > s.maxBytes {
		return nil, &SizeError{Limit: s.maxBytes}
	}

	derivatives, err := s.processor.Generate(payload.Data, payload.MimeType)
	if err != nil {
		return nil, err
	}

	loc, err := s.locations.UpdateImage(ctx, locationID,
		payload.MimeType,
		payload.FileName,
		EncodeDataURI(derivatives.Image, payload.MimeType),
		EncodeDataURI(derivatives.Thumbnail, payload.MimeType),
	)
	if err != nil {
		return nil, err
	}

	return &UploadResult{
		ID:           loc.ID,
		Title:        loc.Title,
		ImageType:    loc.ImageType,
		ImageName:    loc.ImageName,
		HasImage:     loc.ImageData != "",
		HasThumbnail: loc.ThumbnailData != "",
	}, nil
}

// Image loads the requested variant and decodes the stored text back into
// raw bytes. The stored MIME type column drives the response content type;
// the blob is never re-processed on read.
func (s *Service) Image(ctx context.Context, locationID int64, thumb bool) ([]byte, string, error) {
	row, err := s.locations.ImageData(ctx, locationID, thumb)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrLocationNotFound
		}
		return nil, "", err
	}

	if row.ImageData == "" {
		if thumb {
			return nil, "", ErrThumbnailNotFound
		}
		return nil, "", ErrImageNotFound
	}

	_, data, err := DecodeDataURI(row.ImageData)
	if err != nil {
		return nil, "", ErrCorruptStored
	}

	return data, row.ImageType, nil
}
