package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"shinkai/internal/models/db_models"
	"shinkai/internal/models/request_models"
	"shinkai/internal/models/response_models"
	"shinkai/internal/repositories"
	"shinkai/pkg/itinerary"
	"shinkai/pkg/utils"
)

const MaxPageSize = 100

type JourneyServiceInterface interface {
	SaveJourney(ctx context.Context, accountID uuid.UUID, req request_models.SaveJourneyRequest) (response_models.JourneyDetailResponse, error)
	ListJourneys(ctx context.Context, accountID uuid.UUID, page, pageSize int) (response_models.JourneyListResponse, error)
	GetJourney(ctx context.Context, accountID, journeyID uuid.UUID) (response_models.JourneyDetailResponse, error)
	DeleteJourney(ctx context.Context, accountID, journeyID uuid.UUID) error
}

type JourneyService struct {
	journeyRepo      repositories.JourneyRepository
	itineraryService ItineraryServiceInterface
	logger           *zap.Logger
}

func NewJourneyService(
	journeyRepo repositories.JourneyRepository,
	itineraryService ItineraryServiceInterface,
	logger *zap.Logger,
) JourneyServiceInterface {
	return &JourneyService{
		journeyRepo:      journeyRepo,
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// SaveJourney regenerates the itinerary from the request parameters and stores
// the result. Client supplied day lists are never persisted.
func (j *JourneyService) SaveJourney(ctx context.Context, accountID uuid.UUID, req request_models.SaveJourneyRequest) (response_models.JourneyDetailResponse, error) {
	gen, err := j.itineraryService.GenerateResult(ctx, req.Itinerary)
	if err != nil {
		return response_models.JourneyDetailResponse{}, err
	}

	snapshot, err := json.Marshal(gen.Result)
	if err != nil {
		j.logger.Error("marshal itinerary snapshot", zap.Error(err))
		return response_models.JourneyDetailResponse{}, utils.ErrInvalidInput
	}

	journey := &db_models.Journey{
		AccountID:        accountID,
		Title:            req.Title,
		RegionKey:        gen.Region.Key,
		TotalDays:        gen.Days,
		IncludeThemePark: gen.IncludeThemePark,
		OverflowCount:    len(gen.Result.Overflow),
		Snapshot:         datatypes.JSON(snapshot),
		Days:             materializeDays(gen.Result.Days),
	}

	if err := j.journeyRepo.CreateJourney(ctx, journey); err != nil {
		j.logger.Error("create journey", zap.String("account_id", accountID.String()), zap.Error(err))
		return response_models.JourneyDetailResponse{}, utils.ErrDatabaseError
	}

	j.logger.Info("journey saved",
		zap.String("journey_id", journey.ID.String()),
		zap.String("region", journey.RegionKey),
		zap.Int("days", journey.TotalDays))

	return toJourneyDetail(journey, gen.Result.Overflow), nil
}

func (j *JourneyService) ListJourneys(ctx context.Context, accountID uuid.UUID, page, pageSize int) (response_models.JourneyListResponse, error) {
	if page < 1 {
		return response_models.JourneyListResponse{}, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return response_models.JourneyListResponse{}, utils.ErrInvalidPageSize
	}

	journeys, total, err := j.journeyRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		j.logger.Error("list journeys", zap.String("account_id", accountID.String()), zap.Error(err))
		return response_models.JourneyListResponse{}, utils.ErrDatabaseError
	}

	items := make([]response_models.JourneyResponse, 0, len(journeys))
	for i := range journeys {
		items = append(items, toJourneyResponse(&journeys[i]))
	}
	return response_models.JourneyListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetJourney hides journeys of other accounts behind ErrJourneyNotFound.
func (j *JourneyService) GetJourney(ctx context.Context, accountID, journeyID uuid.UUID) (response_models.JourneyDetailResponse, error) {
	journey, err := j.journeyRepo.GetByID(ctx, journeyID)
	if err != nil {
		j.logger.Error("get journey", zap.String("journey_id", journeyID.String()), zap.Error(err))
		return response_models.JourneyDetailResponse{}, utils.ErrDatabaseError
	}
	if journey == nil || journey.AccountID != accountID {
		return response_models.JourneyDetailResponse{}, utils.ErrJourneyNotFound
	}

	var snapshot itinerary.Result
	if len(journey.Snapshot) > 0 {
		if err := json.Unmarshal(journey.Snapshot, &snapshot); err != nil {
			// the materialized days are still usable
			j.logger.Warn("decode journey snapshot", zap.String("journey_id", journeyID.String()), zap.Error(err))
		}
	}
	return toJourneyDetail(journey, snapshot.Overflow), nil
}

func (j *JourneyService) DeleteJourney(ctx context.Context, accountID, journeyID uuid.UUID) error {
	deleted, err := j.journeyRepo.Delete(ctx, accountID, journeyID)
	if err != nil {
		j.logger.Error("delete journey", zap.String("journey_id", journeyID.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrJourneyNotFound
	}
	return nil
}

func materializeDays(days []itinerary.ScheduledDay) []db_models.JourneyDay {
	out := make([]db_models.JourneyDay, 0, len(days))
	for _, d := range days {
		stops := make([]db_models.JourneyStop, 0, len(d.Spots))
		for i, s := range d.Spots {
			stops = append(stops, db_models.JourneyStop{
				Position: i,
				SpotName: s.Name,
				City:     s.City,
				Duration: s.Duration,
				Lat:      s.Lat,
				Lng:      s.Lng,
			})
		}
		out = append(out, db_models.JourneyDay{DayNumber: d.Day, Stops: stops})
	}
	return out
}

func toJourneyResponse(journey *db_models.Journey) response_models.JourneyResponse {
	return response_models.JourneyResponse{
		ID:               journey.ID,
		Title:            journey.Title,
		Region:           journey.RegionKey,
		TotalDays:        journey.TotalDays,
		IncludeThemePark: journey.IncludeThemePark,
		OverflowCount:    journey.OverflowCount,
		CreatedAt:        utils.FormatRFC3339JST(utils.FromUnixSecondsJST(journey.CreatedAt)),
	}
}

func toJourneyDetail(journey *db_models.Journey, overflow []itinerary.ScheduledSpot) response_models.JourneyDetailResponse {
	days := make([]response_models.JourneyDayResponse, 0, len(journey.Days))
	for _, d := range journey.Days {
		stops := make([]response_models.JourneyStopResponse, 0, len(d.Stops))
		places := make([]utils.MapPlace, 0, len(d.Stops))
		for _, s := range d.Stops {
			place := utils.MapPlace{Name: s.SpotName, City: s.City, Lat: s.Lat, Lng: s.Lng}
			places = append(places, place)
			stops = append(stops, response_models.JourneyStopResponse{
				Position: s.Position,
				Name:     s.SpotName,
				City:     s.City,
				Duration: s.Duration,
				Lat:      s.Lat,
				Lng:      s.Lng,
				MapURL:   utils.MapSearchLink(place),
			})
		}
		days = append(days, response_models.JourneyDayResponse{
			DayNumber: d.DayNumber,
			RouteURL:  utils.DayRouteLink(places),
			Stops:     stops,
		})
	}

	return response_models.JourneyDetailResponse{
		JourneyResponse: toJourneyResponse(journey),
		Days:            days,
		Overflow:        toScheduledSpotResponses(overflow),
	}
}
