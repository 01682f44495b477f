package response_models

type ItineraryDayResponse struct {
	Day      int            `json:"day"`
	RouteURL string         `json:"route_url"`
	Spots    []SpotResponse `json:"spots"`
}

type ItineraryResponse struct {
	Region           string                 `json:"region"`
	Label            string                 `json:"label"`
	Days             int                    `json:"days"`
	IncludeThemePark bool                   `json:"include_theme_park"`
	SelectedCount    int                    `json:"selected_count"`
	Itinerary        []ItineraryDayResponse `json:"itinerary"`
	Overflow         []SpotResponse         `json:"overflow"`
	OverflowNotice   string                 `json:"overflow_notice,omitempty"`
}
