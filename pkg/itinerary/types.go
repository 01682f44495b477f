package itinerary

// Spot is a point of interest selected by the traveller.
type Spot struct {
	Name       string   `json:"name"`
	City       string   `json:"city"`
	Tags       []string `json:"tags"`
	RegionZone string   `json:"regionZone,omitempty"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`
}

// HasCoordinates reports whether both lat and lng are present.
func (s Spot) HasCoordinates() bool {
	return s.Lat != nil && s.Lng != nil
}

// HasTag reports whether the spot carries tag.
func (s Spot) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ScheduledSpot is a spot with the visit duration label assigned by the builder.
type ScheduledSpot struct {
	Spot
	Duration string `json:"duration"`
}

type ScheduledDay struct {
	Day   int             `json:"day"`
	Spots []ScheduledSpot `json:"spots"`
}

// Result is the output of one Build call. Overflow lists the spots that did not
// fit into the requested number of days; it is informational, not an error.
type Result struct {
	Days     []ScheduledDay  `json:"days"`
	Overflow []ScheduledSpot `json:"overflow"`
}

// SpotCount returns the number of spots placed on scheduled days.
func (r Result) SpotCount() int {
	n := 0
	for _, d := range r.Days {
		n += len(d.Spots)
	}
	return n
}

// Point is a WGS84 coordinate in degrees.
type Point struct {
	Lat float64
	Lng float64
}

// bundle accumulates the spots destined for one prospective day.
type bundle struct {
	city     string
	spots    []ScheduledSpot
	hours    float64
	centroid *Point
}
