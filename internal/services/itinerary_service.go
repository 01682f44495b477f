package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"shinkai/internal/config"
	"shinkai/internal/metrics"
	"shinkai/internal/models/db_models"
	"shinkai/internal/models/request_models"
	"shinkai/internal/models/response_models"
	"shinkai/internal/repositories"
	"shinkai/pkg/cache"
	"shinkai/pkg/itinerary"
	"shinkai/pkg/utils"
)

const (
	MinTripDays = 1
	MaxTripDays = 10
)

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, req request_models.GenerateItineraryRequest) (response_models.ItineraryResponse, error)
	Summary(ctx context.Context, regionKey string, query request_models.SummaryQuery) (response_models.ItineraryResponse, error)
	// GenerateResult is Generate without the presentation layer.
	GenerateResult(ctx context.Context, req request_models.GenerateItineraryRequest) (*GeneratedItinerary, error)
}

// GeneratedItinerary is the resolved request plus the builder output.
type GeneratedItinerary struct {
	Region           db_models.Region
	Days             int
	IncludeThemePark bool
	Selected         []itinerary.Spot
	Result           itinerary.Result
}

type ItineraryService struct {
	regionRepo repositories.RegionRepository
	builder    *itinerary.Builder
	cache      cache.ItineraryCache
	cacheTTL   time.Duration
	logger     *zap.Logger
}

func NewItineraryService(
	regionRepo repositories.RegionRepository,
	builder *itinerary.Builder,
	itineraryCache cache.ItineraryCache,
	cfg *config.Config,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		regionRepo: regionRepo,
		builder:    builder,
		cache:      itineraryCache,
		cacheTTL:   cfg.Itinerary.CacheTTL,
		logger:     logger,
	}
}

func (s *ItineraryService) Generate(ctx context.Context, req request_models.GenerateItineraryRequest) (response_models.ItineraryResponse, error) {
	gen, err := s.GenerateResult(ctx, req)
	if err != nil {
		return response_models.ItineraryResponse{}, err
	}
	return toItineraryResponse(gen), nil
}

// Summary accepts the planner's URL parameters: days is a number (anything
// else means the region default), theme=1 reserves the theme park day and
// spots is a comma separated list of spot names.
func (s *ItineraryService) Summary(ctx context.Context, regionKey string, query request_models.SummaryQuery) (response_models.ItineraryResponse, error) {
	req := request_models.GenerateItineraryRequest{
		Region:           regionKey,
		IncludeThemePark: strings.TrimSpace(query.Theme) == "1",
		Spots:            SplitSpotNames(query.Spots),
	}
	if days, err := strconv.Atoi(strings.TrimSpace(query.Days)); err == nil {
		// explicit numbers are clamped, so 0 becomes one day rather than the default
		req.Days = ClampDays(days)
	}
	return s.Generate(ctx, req)
}

func (s *ItineraryService) GenerateResult(ctx context.Context, req request_models.GenerateItineraryRequest) (*GeneratedItinerary, error) {
	region, err := s.regionRepo.GetRegionByKey(ctx, strings.TrimSpace(req.Region))
	if err != nil {
		s.logger.Error("get region", zap.String("region", req.Region), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if region == nil {
		return nil, utils.ErrRegionNotFound
	}

	days := req.Days
	if days <= 0 {
		days = region.DefaultDays
	}
	days = ClampDays(days)

	selected := SelectSpots(region.Spots, req.Spots)
	result := s.build(ctx, selected, days, req.IncludeThemePark)

	if len(result.Overflow) > 0 {
		s.logger.Debug("itinerary overflow",
			zap.String("region", region.Key),
			zap.Int("days", days),
			zap.Int("overflow", len(result.Overflow)))
	}

	return &GeneratedItinerary{
		Region:           *region,
		Days:             days,
		IncludeThemePark: req.IncludeThemePark,
		Selected:         selected,
		Result:           result,
	}, nil
}

func (s *ItineraryService) build(ctx context.Context, spots []itinerary.Spot, days int, includeThemePark bool) itinerary.Result {
	key := cache.Key(spots, days, includeThemePark)
	if cached, ok := s.cache.Get(ctx, key); ok {
		metrics.ItineraryBuildsTotal.WithLabelValues(metrics.CacheHit).Inc()
		return cached
	}

	start := time.Now()
	result := s.builder.Build(spots, days, includeThemePark)
	metrics.ItineraryBuildDuration.Observe(time.Since(start).Seconds())
	metrics.ItineraryBuildsTotal.WithLabelValues(metrics.CacheMiss).Inc()
	metrics.ItineraryOverflowSpots.Observe(float64(len(result.Overflow)))

	s.cache.Set(ctx, key, result, s.cacheTTL)
	return result
}

// ClampDays bounds a trip length to [MinTripDays, MaxTripDays].
func ClampDays(days int) int {
	return min(MaxTripDays, max(MinTripDays, days))
}

// SplitSpotNames parses "a, b,,c" into [a b c].
func SplitSpotNames(raw string) []string {
	names := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

// SelectSpots keeps the catalog spots named in names, in catalog order.
// Names are compared after NormalizeName; unknown names are ignored.
func SelectSpots(catalog []db_models.Spot, names []string) []itinerary.Spot {
	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		if key := utils.NormalizeName(n); key != "" {
			wanted[key] = struct{}{}
		}
	}

	selected := make([]itinerary.Spot, 0, len(wanted))
	for _, spot := range catalog {
		if _, ok := wanted[utils.NormalizeName(spot.Name)]; ok {
			selected = append(selected, spot.ToItinerarySpot())
		}
	}
	return selected
}

// OverflowNotice is the banner text shown when spots were left out, empty otherwise.
func OverflowNotice(overflow, days int) string {
	if overflow == 0 {
		return ""
	}
	return fmt.Sprintf("%d %s didn't fit into %d %s.", overflow, plural(overflow, "spot"), days, plural(days, "day"))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func toItineraryResponse(gen *GeneratedItinerary) response_models.ItineraryResponse {
	days := make([]response_models.ItineraryDayResponse, 0, len(gen.Result.Days))
	for _, d := range gen.Result.Days {
		places := make([]utils.MapPlace, 0, len(d.Spots))
		for _, s := range d.Spots {
			places = append(places, mapPlace(s))
		}
		days = append(days, response_models.ItineraryDayResponse{
			Day:      d.Day,
			RouteURL: utils.DayRouteLink(places),
			Spots:    toScheduledSpotResponses(d.Spots),
		})
	}

	return response_models.ItineraryResponse{
		Region:           gen.Region.Key,
		Label:            gen.Region.Label,
		Days:             gen.Days,
		IncludeThemePark: gen.IncludeThemePark,
		SelectedCount:    len(gen.Selected),
		Itinerary:        days,
		Overflow:         toScheduledSpotResponses(gen.Result.Overflow),
		OverflowNotice:   OverflowNotice(len(gen.Result.Overflow), gen.Days),
	}
}
