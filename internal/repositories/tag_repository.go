package repositories

import (
	"context"

	"gorm.io/gorm"
)

type TagRepositoryInterface interface {
	CountSpotsByTag(ctx context.Context) ([]TagUsage, error)
}

// TagUsage is one distinct catalog tag and how many spots carry it.
type TagUsage struct {
	Tag       string
	SpotCount int
}

func NewTagRepository(db *gorm.DB) TagRepositoryInterface {
	return &TagRepository{db: db}
}

type TagRepository struct {
	db *gorm.DB
}

func (t TagRepository) CountSpotsByTag(ctx context.Context) ([]TagUsage, error) {
	var rows []TagUsage
	err := t.db.WithContext(ctx).
		Raw(`SELECT tag, COUNT(*) AS spot_count
			FROM spots, unnest(spots.tags) AS tag
			WHERE spots.deleted_at IS NULL
			GROUP BY tag
			ORDER BY tag ASC`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
