package request_models

type SaveJourneyRequest struct {
	Title     string                   `json:"title" binding:"required,min=1,max=120"`
	Itinerary GenerateItineraryRequest `json:"itinerary"`
}
