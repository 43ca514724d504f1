package repository

import (
	"context"

	"fotokarte/internal/domain"

	"gorm.io/gorm"
)

// ImageRow is the slim projection used by the image serving path. Only one
// blob column is ever loaded per request.
type ImageRow struct {
	ImageData string
	ImageType string
}

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) GetAll(ctx context.Context) ([]domain.Location, error) {
	var locations []domain.Location
	err := r.db.WithContext(ctx).
		Omit("image_data", "thumbnail_data").
		Order("id").
		Find(&locations).Error
	return locations, err
}

func (r *LocationRepository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	var loc domain.Location
	err := r.db.WithContext(ctx).
		Omit("image_data", "thumbnail_data").
		First(&loc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *LocationRepository) Create(ctx context.Context, loc *domain.Location) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

func (r *LocationRepository) Update(ctx context.Context, loc *domain.Location) error {
	return r.db.WithContext(ctx).
		Model(&domain.Location{ID: loc.ID}).
		Select("title", "description", "latitude", "longitude", "date").
		Updates(map[string]interface{}{
			"title":       loc.Title,
			"description": loc.Description,
			"latitude":    loc.Latitude,
			"longitude":   loc.Longitude,
			"date":        loc.Date,
		}).Error
}

// Delete removes the location row; the image columns go with it.
func (r *LocationRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Location{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LocationRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Location{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// UpdateImage replaces all four image columns in one single-row UPDATE and
// returns the refreshed row, blobs included.
func (r *LocationRepository) UpdateImage(ctx context.Context, id int64, imageType, imageName, imageData, thumbnailData string) (*domain.Location, error) {
	err := r.db.WithContext(ctx).
		Model(&domain.Location{ID: id}).
		Updates(map[string]interface{}{
			"image_type":     imageType,
			"image_name":     imageName,
			"image_data":     imageData,
			"thumbnail_data": thumbnailData,
		}).Error
	if err != nil {
		return nil, err
	}

	var loc domain.Location
	if err := r.db.WithContext(ctx).First(&loc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

// ImageData loads the requested blob variant together with the stored MIME
// type. gorm.ErrRecordNotFound means the location itself does not exist;
// an empty ImageData means the variant was never uploaded.
func (r *LocationRepository) ImageData(ctx context.Context, id int64, thumb bool) (*ImageRow, error) {
	column := "image_data"
	if thumb {
		column = "thumbnail_data"
	}

	var row ImageRow
	err := r.db.WithContext(ctx).
		Model(&domain.Location{}).
		Select(column+" AS image_data", "image_type").
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *LocationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Location{}).Count(&count).Error
	return count, err
}

func (r *LocationRepository) CountWithImage(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Location{}).
		Where("image_data IS NOT NULL AND image_data <> ''").
		Count(&count).Error
	return count, err
}

func (r *LocationRepository) Recent(ctx context.Context, limit int) ([]domain.Location, error) {
	var locations []domain.Location
	err := r.db.WithContext(ctx).
		Select("id", "title", "created_at").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&locations).Error
	return locations, err
}

// DatabaseSizeMB reports the storage footprint. Postgres answers directly;
// for the SQLite dev setup the page count is close enough.
func (r *LocationRepository) DatabaseSizeMB(ctx context.Context) (float64, error) {
	if r.db.Dialector.Name() == "postgres" {
		var bytes int64
		err := r.db.WithContext(ctx).
			Raw("SELECT pg_database_size(current_database())").
			Scan(&bytes).Error
		if err != nil {
			return 0, err
		}
		return float64(bytes) / (1024 * 1024), nil
	}

	var pageCount, pageSize int64
	if err := r.db.WithContext(ctx).Raw("PRAGMA page_count").Scan(&pageCount).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Raw("PRAGMA page_size").Scan(&pageSize).Error; err != nil {
		return 0, err
	}
	return float64(pageCount*pageSize) / (1024 * 1024), nil
}
