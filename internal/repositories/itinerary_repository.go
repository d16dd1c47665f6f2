package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"smarttrip/internal/models/db_models"
)

type IItineraryRepository interface {
	Create(ctx context.Context, itinerary *db_models.Itinerary) error
	GetByID(ctx context.Context, id string) (*db_models.Itinerary, error)
	SoftDelete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type ItineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) IItineraryRepository {
	return &ItineraryRepository{db: db}
}

func (r ItineraryRepository) Create(ctx context.Context, itinerary *db_models.Itinerary) error {
	return r.db.WithContext(ctx).Create(itinerary).Error
}

// GetByID returns nil without error when the row is missing or soft-deleted.
// Expired rows come back as-is until the purge removes them; the service
// tells an expired share apart from a missing one.
func (r ItineraryRepository) GetByID(ctx context.Context, id string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		First(&itinerary, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &itinerary, nil
}

func (r ItineraryRepository) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Itinerary{}, "id = ?", id).Error
}

// DeleteExpired hard-deletes rows past expiry, including soft-deleted ones.
func (r ItineraryRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Unscoped().
		Where("expires_at <= ?", time.Now()).
		Delete(&db_models.Itinerary{})
	return res.RowsAffected, res.Error
}
