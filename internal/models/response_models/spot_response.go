package response_models

type SpotResponse struct {
	Name       string   `json:"name"`
	City       string   `json:"city"`
	RegionZone string   `json:"region_zone,omitempty"`
	Tags       []string `json:"tags"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`
	Image      string   `json:"image,omitempty"`
	ThemePark  bool     `json:"theme_park"`
	Duration   string   `json:"duration,omitempty"`
	MapURL     string   `json:"map_url"`
}
