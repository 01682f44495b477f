package response_models

type RegionResponse struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	DefaultDays int    `json:"default_days"`
	SpotCount   int    `json:"spot_count"`
}

type RegionDetailResponse struct {
	RegionResponse
	Spots []SpotResponse `json:"spots"`
}

type SeasonRecommendationResponse struct {
	Season  string           `json:"season"`
	Blurb   string           `json:"blurb"`
	Regions []RegionResponse `json:"regions"`
}

// TagPriorityResponse: Rank is -1 for tags the builder does not rank. Score is
// what one such tag adds to a spot's priority score.
type TagPriorityResponse struct {
	Tag       string `json:"tag"`
	Rank      int    `json:"rank"`
	Score     int    `json:"score"`
	SpotCount int    `json:"spot_count"`
}
