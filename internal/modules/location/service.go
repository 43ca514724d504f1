package location

import (
	"context"
	"errors"

	"fotokarte/internal/domain"
	"fotokarte/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	locations *repository.LocationRepository
}

func NewService(locations *repository.LocationRepository) *Service {
	return &Service{locations: locations}
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Location, error) {
	return s.locations.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	loc, err := s.locations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return loc, nil
}

func (s *Service) Create(ctx context.Context, req CreateLocationRequest) (*domain.Location, error) {
	if req.Title == "" || req.Latitude == nil || req.Longitude == nil {
		return nil, ErrMissingFields
	}

	loc := &domain.Location{
		Title:       req.Title,
		Description: req.Description,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		Date:        req.Date,
	}

	if err := s.locations.Create(ctx, loc); err != nil {
		if isValueTooLong(err) {
			return nil, ErrValueTooLong
		}
		return nil, err
	}
	return loc, nil
}

// Update applies a partial update; fields absent from the request keep the
// stored values.
func (s *Service) Update(ctx context.Context, id int64, req UpdateLocationRequest) (*domain.Location, error) {
	loc, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		loc.Title = req.Title
	}
	if req.Description != "" {
		loc.Description = req.Description
	}
	if req.Latitude != nil {
		loc.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		loc.Longitude = *req.Longitude
	}
	if req.Date != "" {
		loc.Date = req.Date
	}

	if err := s.locations.Update(ctx, loc); err != nil {
		if isValueTooLong(err) {
			return nil, ErrValueTooLong
		}
		return nil, err
	}
	return loc, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.locations.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// 22001 is string_data_right_truncation, e.g. a title past varchar(255).
// Only Postgres reports it; the SQLite dev setup stores long values as-is.
func isValueTooLong(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22001"
}
