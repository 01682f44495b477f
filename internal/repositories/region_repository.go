package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"shinkai/internal/models/db_models"
)

type RegionRepository interface {
	ListRegions(ctx context.Context) ([]RegionWithCount, error)
	GetRegionByKey(ctx context.Context, key string) (*db_models.Region, error)
	UpsertRegion(ctx context.Context, region *db_models.Region) error
}

type RegionWithCount struct {
	db_models.Region
	SpotCount int
}

type regionRepository struct {
	db *gorm.DB
}

func NewRegionRepository(db *gorm.DB) RegionRepository {
	return &regionRepository{db: db}
}

func (r *regionRepository) ListRegions(ctx context.Context) ([]RegionWithCount, error) {
	var rows []RegionWithCount
	err := r.db.WithContext(ctx).
		Model(&db_models.Region{}).
		Select("regions.*, (SELECT COUNT(*) FROM spots WHERE spots.region_id = regions.id AND spots.deleted_at IS NULL) AS spot_count").
		Order("regions.key ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetRegionByKey returns nil, nil when the key is unknown. Spots come back in catalog order.
func (r *regionRepository) GetRegionByKey(ctx context.Context, key string) (*db_models.Region, error) {
	var region db_models.Region
	err := r.db.WithContext(ctx).
		Preload("Spots", func(db *gorm.DB) *gorm.DB {
			return db.Order("spots.position ASC")
		}).
		First(&region, "key = ?", strings.ToLower(key)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &region, nil
}

// UpsertRegion creates or updates the region by key and replaces its spots.
func (r *regionRepository) UpsertRegion(ctx context.Context, region *db_models.Region) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.Region
		err := tx.First(&existing, "key = ?", region.Key).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			spots := region.Spots
			region.Spots = nil
			if err := tx.Create(region).Error; err != nil {
				return fmt.Errorf("create region %s: %w", region.Key, err)
			}
			region.Spots = spots
		case err != nil:
			return err
		default:
			region.ID = existing.ID
			if err := tx.Model(&existing).Updates(map[string]interface{}{
				"label":        region.Label,
				"default_days": region.DefaultDays,
			}).Error; err != nil {
				return fmt.Errorf("update region %s: %w", region.Key, err)
			}
			if err := tx.Unscoped().Where("region_id = ?", existing.ID).Delete(&db_models.Spot{}).Error; err != nil {
				return fmt.Errorf("clear spots of %s: %w", region.Key, err)
			}
		}

		if len(region.Spots) == 0 {
			return nil
		}
		for i := range region.Spots {
			region.Spots[i].RegionID = region.ID
			region.Spots[i].Position = i
		}
		return tx.Create(&region.Spots).Error
	})
}
