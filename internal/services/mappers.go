package services

import (
	"shinkai/internal/models/db_models"
	"shinkai/internal/models/response_models"
	"shinkai/pkg/itinerary"
	"shinkai/pkg/utils"
)

func toSpotResponse(s db_models.Spot) response_models.SpotResponse {
	return response_models.SpotResponse{
		Name:       s.Name,
		City:       s.City,
		RegionZone: s.RegionZone,
		Tags:       nonNilTags(s.Tags),
		Lat:        s.Lat,
		Lng:        s.Lng,
		Image:      s.Image,
		ThemePark:  s.IsThemePark(),
		MapURL:     utils.MapSearchLink(utils.MapPlace{Name: s.Name, City: s.City, Lat: s.Lat, Lng: s.Lng}),
	}
}

func toScheduledSpotResponse(s itinerary.ScheduledSpot) response_models.SpotResponse {
	return response_models.SpotResponse{
		Name:       s.Name,
		City:       s.City,
		RegionZone: s.RegionZone,
		Tags:       nonNilTags(s.Tags),
		Lat:        s.Lat,
		Lng:        s.Lng,
		ThemePark:  s.HasTag(itinerary.ThemeParkTag),
		Duration:   s.Duration,
		MapURL:     utils.MapSearchLink(mapPlace(s)),
	}
}

func toScheduledSpotResponses(spots []itinerary.ScheduledSpot) []response_models.SpotResponse {
	out := make([]response_models.SpotResponse, 0, len(spots))
	for _, s := range spots {
		out = append(out, toScheduledSpotResponse(s))
	}
	return out
}

func mapPlace(s itinerary.ScheduledSpot) utils.MapPlace {
	return utils.MapPlace{Name: s.Name, City: s.City, Lat: s.Lat, Lng: s.Lng}
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return append([]string(nil), tags...)
}

func toRegionResponse(r db_models.Region, spotCount int) response_models.RegionResponse {
	return response_models.RegionResponse{
		Key:         r.Key,
		Label:       r.Label,
		DefaultDays: r.DefaultDays,
		SpotCount:   spotCount,
	}
}
