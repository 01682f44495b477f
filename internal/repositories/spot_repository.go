package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shinkai/internal/models/db_models"
	"shinkai/pkg/itinerary"
)

type SpotRepository interface {
	ListSpotsByRegion(ctx context.Context, regionID uuid.UUID, includeThemePark bool) ([]db_models.Spot, error)
}

type spotRepository struct {
	db *gorm.DB
}

func NewSpotRepository(db *gorm.DB) SpotRepository {
	return &spotRepository{db: db}
}

func (r *spotRepository) ListSpotsByRegion(ctx context.Context, regionID uuid.UUID, includeThemePark bool) ([]db_models.Spot, error) {
	var spots []db_models.Spot
	if err := spotsByRegionQuery(r.db.WithContext(ctx), regionID, includeThemePark).Find(&spots).Error; err != nil {
		return nil, err
	}
	return spots, nil
}

// spotsByRegionQuery treats a NULL tags column as an empty array, so untagged
// spots survive the theme park filter.
func spotsByRegionQuery(db *gorm.DB, regionID uuid.UUID, includeThemePark bool) *gorm.DB {
	q := db.Model(&db_models.Spot{}).Where("region_id = ?", regionID)
	if !includeThemePark {
		q = q.Where("NOT (? = ANY(COALESCE(tags, '{}'::text[])))", itinerary.ThemeParkTag)
	}
	return q.Order("position ASC")
}
