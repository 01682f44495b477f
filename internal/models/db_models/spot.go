package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"shinkai/pkg/itinerary"
)

type Spot struct {
	BaseModel
	RegionID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_region_spot_name;not null"`
	Name       string    `gorm:"uniqueIndex:idx_region_spot_name;not null"`
	Position   int       // catalog order inside the region
	City       string
	RegionZone string
	Tags       pq.StringArray `gorm:"type:text[]"`
	Lat        *float64
	Lng        *float64
	Image      string
}

// ToItinerarySpot converts the catalog row into builder input.
func (s Spot) ToItinerarySpot() itinerary.Spot {
	return itinerary.Spot{
		Name:       s.Name,
		City:       s.City,
		RegionZone: s.RegionZone,
		Tags:       append([]string(nil), s.Tags...),
		Lat:        s.Lat,
		Lng:        s.Lng,
	}
}

func (s Spot) IsThemePark() bool {
	for _, t := range s.Tags {
		if t == itinerary.ThemeParkTag {
			return true
		}
	}
	return false
}
