package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"shinkai/internal/models/response_models"
	"shinkai/internal/repositories"
	"shinkai/pkg/utils"
)

type SpotServiceInterface interface {
	ListSpots(ctx context.Context, regionKey string, includeThemePark bool) ([]response_models.SpotResponse, error)
}

type SpotService struct {
	regionRepo repositories.RegionRepository
	spotRepo   repositories.SpotRepository
	logger     *zap.Logger
}

func NewSpotService(regionRepo repositories.RegionRepository, spotRepo repositories.SpotRepository, logger *zap.Logger) SpotServiceInterface {
	return &SpotService{
		regionRepo: regionRepo,
		spotRepo:   spotRepo,
		logger:     logger,
	}
}

// ListSpots returns the region's spots in catalog order. Theme parks are only
// listed when includeThemePark is set.
func (s *SpotService) ListSpots(ctx context.Context, regionKey string, includeThemePark bool) ([]response_models.SpotResponse, error) {
	region, err := s.regionRepo.GetRegionByKey(ctx, strings.TrimSpace(regionKey))
	if err != nil {
		s.logger.Error("get region", zap.String("region", regionKey), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if region == nil {
		return nil, utils.ErrRegionNotFound
	}

	spots, err := s.spotRepo.ListSpotsByRegion(ctx, region.ID, includeThemePark)
	if err != nil {
		s.logger.Error("list spots", zap.String("region", region.Key), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SpotResponse, 0, len(spots))
	for _, spot := range spots {
		out = append(out, toSpotResponse(spot))
	}
	return out, nil
}
