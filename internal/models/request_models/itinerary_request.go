package request_models

type GenerateItineraryRequest struct {
	Region           string   `json:"region" binding:"required"`
	Days             int      `json:"days" binding:"gte=0,lte=30"`
	IncludeThemePark bool     `json:"include_theme_park"`
	Spots            []string `json:"spots"`
}

// SummaryQuery mirrors the planner URL: ?days=3&theme=1&spots=a,b
type SummaryQuery struct {
	Days  string `form:"days"`
	Theme string `form:"theme"`
	Spots string `form:"spots"`
}
