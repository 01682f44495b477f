package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"shinkai/internal/models/response_models"
	"shinkai/internal/repositories"
	"shinkai/pkg/utils"
)

type RegionServiceInterface interface {
	ListRegions(ctx context.Context) ([]response_models.RegionResponse, error)
	GetRegion(ctx context.Context, key string) (response_models.RegionDetailResponse, error)
	RecommendForSeason(ctx context.Context, season string) (response_models.SeasonRecommendationResponse, error)
}

type seasonPick struct {
	regions []string
	blurb   string
}

var seasonPicks = map[string]seasonPick{
	"spring": {
		regions: []string{"kansai", "kanto", "chubu"},
		blurb:   "Blossoms + mild temps: Kyoto/Nara, Tokyo+Nikkō, and Japan Alps; Tōhoku peaks late Apr–May.",
	},
	"summer": {
		regions: []string{"hokkaido", "okinawa", "tohoku"},
		blurb:   "Cooler north + beach south: Hokkaidō festivals, Okinawa beaches/snorkel, and Tōhoku matsuri.",
	},
	"autumn": {
		regions: []string{"kansai", "tohoku", "chugoku"},
		blurb:   "Maple season: Kyoto temples, Tōhoku color, and Chūgoku gorges/temples (e.g., Kankakei, Miyajima).",
	},
	"winter": {
		regions: []string{"hokkaido", "tohoku", "kyushu"},
		blurb:   "Powder + onsen: Hokkaidō & Tōhoku for snow, Kyūshū for warm baths; Okinawa is a mild escape.",
	},
}

type RegionService struct {
	regionRepo repositories.RegionRepository
	logger     *zap.Logger
}

func NewRegionService(regionRepo repositories.RegionRepository, logger *zap.Logger) RegionServiceInterface {
	return &RegionService{
		regionRepo: regionRepo,
		logger:     logger,
	}
}

func (r *RegionService) ListRegions(ctx context.Context) ([]response_models.RegionResponse, error) {
	regions, err := r.regionRepo.ListRegions(ctx)
	if err != nil {
		r.logger.Error("list regions", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.RegionResponse, 0, len(regions))
	for _, region := range regions {
		out = append(out, toRegionResponse(region.Region, region.SpotCount))
	}
	return out, nil
}

func (r *RegionService) GetRegion(ctx context.Context, key string) (response_models.RegionDetailResponse, error) {
	region, err := r.regionRepo.GetRegionByKey(ctx, strings.TrimSpace(key))
	if err != nil {
		r.logger.Error("get region", zap.String("region", key), zap.Error(err))
		return response_models.RegionDetailResponse{}, utils.ErrDatabaseError
	}
	if region == nil {
		return response_models.RegionDetailResponse{}, utils.ErrRegionNotFound
	}

	spots := make([]response_models.SpotResponse, 0, len(region.Spots))
	for _, s := range region.Spots {
		spots = append(spots, toSpotResponse(s))
	}

	return response_models.RegionDetailResponse{
		RegionResponse: toRegionResponse(*region, len(region.Spots)),
		Spots:          spots,
	}, nil
}

// RecommendForSeason lists the season's regions in recommendation order.
// Regions missing from the catalog are left out.
func (r *RegionService) RecommendForSeason(ctx context.Context, season string) (response_models.SeasonRecommendationResponse, error) {
	season = strings.ToLower(strings.TrimSpace(season))
	pick, ok := seasonPicks[season]
	if !ok {
		return response_models.SeasonRecommendationResponse{}, utils.ErrInvalidSeason
	}

	regions, err := r.regionRepo.ListRegions(ctx)
	if err != nil {
		r.logger.Error("list regions", zap.Error(err))
		return response_models.SeasonRecommendationResponse{}, utils.ErrDatabaseError
	}
	byKey := make(map[string]repositories.RegionWithCount, len(regions))
	for _, region := range regions {
		byKey[region.Key] = region
	}

	out := response_models.SeasonRecommendationResponse{
		Season:  season,
		Blurb:   pick.blurb,
		Regions: make([]response_models.RegionResponse, 0, len(pick.regions)),
	}
	for _, key := range pick.regions {
		if region, ok := byKey[key]; ok {
			out.Regions = append(out.Regions, toRegionResponse(region.Region, region.SpotCount))
		}
	}
	return out, nil
}
