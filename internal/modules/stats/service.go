package stats

import (
	"context"
	"fmt"
	"time"

	"fotokarte/internal/repository"
)

type RecentLocation struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

type Overview struct {
	TotalLocations  int64            `json:"totalLocations"`
	TotalImages     int64            `json:"totalImages"`
	DatabaseSizeMB  string           `json:"databaseSizeMB"`
	RecentLocations []RecentLocation `json:"recentLocations"`
}

type Service struct {
	locations *repository.LocationRepository
}

func NewService(locations *repository.LocationRepository) *Service {
	return &Service{locations: locations}
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	total, err := s.locations.Count(ctx)
	if err != nil {
		return nil, err
	}

	withImage, err := s.locations.CountWithImage(ctx)
	if err != nil {
		return nil, err
	}

	sizeMB, err := s.locations.DatabaseSizeMB(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.locations.Recent(ctx, 5)
	if err != nil {
		return nil, err
	}

	recentOut := make([]RecentLocation, 0, len(recent))
	for _, loc := range recent {
		recentOut = append(recentOut, RecentLocation{
			ID:        loc.ID,
			Title:     loc.Title,
			CreatedAt: loc.CreatedAt,
		})
	}

	return &Overview{
		TotalLocations:  total,
		TotalImages:     withImage,
		DatabaseSizeMB:  fmt.Sprintf("%.2f", sizeMB),
		RecentLocations: recentOut,
	}, nil
}
