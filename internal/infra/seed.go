package infra

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"shinkai/internal/models/db_models"
)

//go:embed catalog/*.json
var catalogFS embed.FS

type catalogRegion struct {
	Key         string        `json:"key"`
	Label       string        `json:"label"`
	DefaultDays int           `json:"defaultDays"`
	Spots       []catalogSpot `json:"spots"`
}

type catalogSpot struct {
	Name       string   `json:"name"`
	City       string   `json:"city"`
	Tags       []string `json:"tags"`
	RegionZone string   `json:"regionZone"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	Image      string   `json:"image"`
}

// RegionUpserter is the part of the region repository the seed needs.
type RegionUpserter interface {
	UpsertRegion(ctx context.Context, region *db_models.Region) error
}

// LoadCatalog parses the embedded region files, sorted by key.
func LoadCatalog() ([]db_models.Region, error) {
	return loadCatalog(catalogFS)
}

func loadCatalog(fsys fs.FS) ([]db_models.Region, error) {
	files, err := fs.Glob(fsys, "catalog/*.json")
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	regions := make([]db_models.Region, 0, len(files))
	for _, name := range files {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		var cr catalogRegion
		if err := json.Unmarshal(raw, &cr); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		if cr.Key == "" {
			return nil, fmt.Errorf("%s: missing region key", name)
		}
		regions = append(regions, cr.toModel())
	}
	return regions, nil
}

func (cr catalogRegion) toModel() db_models.Region {
	defaultDays := cr.DefaultDays
	if defaultDays <= 0 {
		defaultDays = 3
	}
	region := db_models.Region{
		Key:         strings.ToLower(cr.Key),
		Label:       cr.Label,
		DefaultDays: defaultDays,
		Spots:       make([]db_models.Spot, 0, len(cr.Spots)),
	}
	for i, s := range cr.Spots {
		// stored as '{}' rather than NULL so array predicates stay boolean
		tags := pq.StringArray{}
		tags = append(tags, s.Tags...)
		region.Spots = append(region.Spots, db_models.Spot{
			Name:       s.Name,
			Position:   i,
			City:       s.City,
			RegionZone: s.RegionZone,
			Tags:       tags,
			Lat:        s.Lat,
			Lng:        s.Lng,
			Image:      s.Image,
		})
	}
	return region
}

// SeedCatalog upserts every embedded region.
func SeedCatalog(ctx context.Context, repo RegionUpserter, logger *zap.Logger) error {
	regions, err := LoadCatalog()
	if err != nil {
		return err
	}
	for i := range regions {
		if err := repo.UpsertRegion(ctx, &regions[i]); err != nil {
			return fmt.Errorf("seed region %s: %w", regions[i].Key, err)
		}
		logger.Info("Seeded region",
			zap.String("region", regions[i].Key),
			zap.Int("spots", len(regions[i].Spots)))
	}
	return nil
}
