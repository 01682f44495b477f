package itinerary

import "math"

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between a and b in kilometres.
func HaversineKm(a, b Point) float64 {
	toRad := func(x float64) float64 { return x * math.Pi / 180 }

	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLng/2), 2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// centroid is the arithmetic mean of the members that carry coordinates,
// nil when none do.
func centroid(spots []ScheduledSpot) *Point {
	var lat, lng float64
	n := 0
	for _, s := range spots {
		if !s.HasCoordinates() {
			continue
		}
		lat += *s.Lat
		lng += *s.Lng
		n++
	}
	if n == 0 {
		return nil
	}
	return &Point{Lat: lat / float64(n), Lng: lng / float64(n)}
}

// travelHours estimates the transit cost between two bundle centroids.
func (b *Builder) travelHours(from, to *Point) float64 {
	if from == nil || to == nil {
		return b.cfg.FallbackTravelHours
	}
	return HaversineKm(*from, *to)/b.cfg.AverageSpeedKmh + b.cfg.TravelBufferHours
}
