package services

import (
	"context"

	"go.uber.org/zap"

	"shinkai/internal/models/response_models"
	"shinkai/internal/repositories"
	"shinkai/pkg/itinerary"
	"shinkai/pkg/utils"
)

type TagServiceInterface interface {
	ListTagPriorities(ctx context.Context) ([]response_models.TagPriorityResponse, error)
}

type TagService struct {
	tagRepo repositories.TagRepositoryInterface
	builder *itinerary.Builder
	logger  *zap.Logger
}

func NewTagService(tagRepo repositories.TagRepositoryInterface, builder *itinerary.Builder, logger *zap.Logger) TagServiceInterface {
	return &TagService{
		tagRepo: tagRepo,
		builder: builder,
		logger:  logger,
	}
}

// ListTagPriorities returns the ranked tags first, then catalog tags the
// builder does not rank, which score MissingTagScore.
func (t *TagService) ListTagPriorities(ctx context.Context) ([]response_models.TagPriorityResponse, error) {
	usage, err := t.tagRepo.CountSpotsByTag(ctx)
	if err != nil {
		t.logger.Error("count spots by tag", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	counts := make(map[string]int, len(usage))
	for _, u := range usage {
		counts[u.Tag] = u.SpotCount
	}

	cfg := t.builder.Config()
	priorities := cfg.Priorities()
	out := make([]response_models.TagPriorityResponse, 0, len(priorities)+len(usage))
	for _, p := range priorities {
		out = append(out, response_models.TagPriorityResponse{
			Tag:       p.Tag,
			Rank:      p.Rank,
			Score:     p.Rank + 1,
			SpotCount: counts[p.Tag],
		})
	}

	// usage is sorted by tag already
	for _, u := range usage {
		if _, ranked := cfg.TagPriority.Get(u.Tag); ranked {
			continue
		}
		out = append(out, response_models.TagPriorityResponse{
			Tag:       u.Tag,
			Rank:      -1,
			Score:     cfg.MissingTagScore,
			SpotCount: u.SpotCount,
		})
	}
	return out, nil
}
