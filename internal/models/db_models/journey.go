package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Journey is a saved itinerary. Snapshot keeps the full builder result,
// overflow included; Days/Stops are the queryable materialisation.
type Journey struct {
	BaseModel
	AccountID        uuid.UUID `gorm:"type:uuid;index"`
	Title            string
	RegionKey        string
	TotalDays        int
	IncludeThemePark bool
	OverflowCount    int
	Snapshot         datatypes.JSON `gorm:"type:jsonb"`

	Days []JourneyDay `gorm:"foreignKey:JourneyID;constraint:OnDelete:CASCADE"`
}

type JourneyDay struct {
	BaseModel
	JourneyID uuid.UUID `gorm:"type:uuid;index"`
	DayNumber int

	Stops []JourneyStop `gorm:"foreignKey:JourneyDayID;constraint:OnDelete:CASCADE"`
}

type JourneyStop struct {
	BaseModel
	JourneyDayID uuid.UUID `gorm:"type:uuid;index"`
	Position     int
	SpotName     string
	City         string
	Duration     string
	Lat          *float64
	Lng          *float64
}
