package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const googleMapsBase = "https://www.google.com/maps"

// MapPlace is anything that can be located on Google Maps, by coordinates when
// known and by "name, city" otherwise.
type MapPlace struct {
	Name string
	City string
	Lat  *float64
	Lng  *float64
}

func (p MapPlace) query() string {
	if p.Lat != nil && p.Lng != nil {
		return formatCoord(*p.Lat) + "," + formatCoord(*p.Lng)
	}
	parts := make([]string, 0, 2)
	for _, s := range []string{p.Name, p.City} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// MapSearchLink points at a single place.
func MapSearchLink(p MapPlace) string {
	if p.Lat != nil && p.Lng != nil {
		return fmt.Sprintf("%s/search/?api=1&query=%s", googleMapsBase, p.query())
	}
	return fmt.Sprintf("%s/search/?api=1&query=%s", googleMapsBase, url.QueryEscape(p.query()))
}

// DayRouteLink builds a driving route from the first to the last place with the
// rest as waypoints. An empty day yields "#".
func DayRouteLink(places []MapPlace) string {
	if len(places) == 0 {
		return "#"
	}

	parts := []string{
		"origin=" + url.QueryEscape(places[0].query()),
		"destination=" + url.QueryEscape(places[len(places)-1].query()),
	}
	if len(places) > 2 {
		waypoints := make([]string, 0, len(places)-2)
		for _, p := range places[1 : len(places)-1] {
			waypoints = append(waypoints, p.query())
		}
		parts = append(parts, "waypoints="+url.QueryEscape(strings.Join(waypoints, "|")))
	}
	parts = append(parts, "travelmode=driving")

	return googleMapsBase + "/dir/?api=1&" + strings.Join(parts, "&")
}
