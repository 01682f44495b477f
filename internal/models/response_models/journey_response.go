package response_models

import "github.com/google/uuid"

type JourneyResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Region           string    `json:"region"`
	TotalDays        int       `json:"total_days"`
	IncludeThemePark bool      `json:"include_theme_park"`
	OverflowCount    int       `json:"overflow_count"`
	CreatedAt        string    `json:"created_at"` // RFC3339, JST
}

type JourneyDetailResponse struct {
	JourneyResponse
	Days     []JourneyDayResponse `json:"days"`
	Overflow []SpotResponse       `json:"overflow"`
}

type JourneyDayResponse struct {
	DayNumber int                   `json:"day_number"`
	RouteURL  string                `json:"route_url"`
	Stops     []JourneyStopResponse `json:"stops"`
}

type JourneyStopResponse struct {
	Position int      `json:"position"`
	Name     string   `json:"name"`
	City     string   `json:"city"`
	Duration string   `json:"duration"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
	MapURL   string   `json:"map_url"`
}

type JourneyListResponse struct {
	Items    []JourneyResponse `json:"items"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}
