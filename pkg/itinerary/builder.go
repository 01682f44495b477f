// Package itinerary turns a flat list of selected spots into day-sized bundles.
//
// The Builder groups spots by zone and city, packs each city into days under a
// per-day hour cap, greedily merges neighbouring light days when the estimated
// travel between them still fits, and then fills the requested number of days.
// Spots that do not fit are returned as overflow. Build is pure and
// deterministic; a Builder can be shared between goroutines.
package itinerary

import (
	"cmp"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

func (b *Builder) Config() Config {
	return b.cfg
}

var defaultBuilder = NewBuilder()

// Generate runs the default Builder.
func Generate(spots []Spot, totalDays int, includeThemePark bool) Result {
	return defaultBuilder.Build(spots, totalDays, includeThemePark)
}

// Build schedules spots into at most totalDays days.
//
// Spots tagged as theme parks never enter the regular flow. When
// includeThemePark is set and at least one day is available, the first theme
// park in input order gets day 1 on its own. Any further theme parks are
// dropped without being reported as overflow; this mirrors the planner's
// historical behaviour and is probably a defect.
func (b *Builder) Build(spots []Spot, totalDays int, includeThemePark bool) Result {
	result := Result{Days: []ScheduledDay{}, Overflow: []ScheduledSpot{}}

	var themeParks, regular []Spot
	for _, s := range spots {
		if s.HasTag(b.cfg.ThemeParkTag) {
			themeParks = append(themeParks, s)
			continue
		}
		regular = append(regular, s)
	}

	dayOffset := 0
	if includeThemePark && len(themeParks) > 0 && totalDays > 0 {
		result.Days = append(result.Days, ScheduledDay{
			Day:   1,
			Spots: []ScheduledSpot{b.schedule(themeParks[0], b.cfg.ThemeParkDuration)},
		})
		dayOffset = 1
	}

	bundles := b.mergeAdjacent(b.packCities(b.groupByZone(regular)))

	capacity := max(0, totalDays-dayOffset)
	for i, bd := range bundles {
		if i < capacity {
			result.Days = append(result.Days, ScheduledDay{Day: i + 1 + dayOffset, Spots: bd.spots})
			continue
		}
		result.Overflow = append(result.Overflow, bd.spots...)
	}

	return result
}

type cityGroups = orderedmap.OrderedMap[string, []Spot]

// groupByZone buckets spots by zone, then city, keeping first-seen order at both levels.
func (b *Builder) groupByZone(spots []Spot) *orderedmap.OrderedMap[string, *cityGroups] {
	zones := orderedmap.New[string, *cityGroups]()
	for _, s := range spots {
		zone := firstNonEmpty(s.RegionZone, s.City, UnknownPlace)
		city := firstNonEmpty(s.City, UnknownPlace)

		cities, ok := zones.Get(zone)
		if !ok {
			cities = orderedmap.New[string, []Spot]()
			zones.Set(zone, cities)
		}
		members, _ := cities.Get(city)
		cities.Set(city, append(members, s))
	}
	return zones
}

// packCities fills day bundles city by city, highest priority spots first.
func (b *Builder) packCities(zones *orderedmap.OrderedMap[string, *cityGroups]) []bundle {
	var bundles []bundle
	for zone := zones.Oldest(); zone != nil; zone = zone.Next() {
		for city := zone.Value.Oldest(); city != nil; city = city.Next() {
			bundles = append(bundles, b.packCity(city.Value)...)
		}
	}
	return bundles
}

func (b *Builder) packCity(spots []Spot) []bundle {
	type scored struct {
		spot  Spot
		score int
	}
	sorted := make([]scored, 0, len(spots))
	for _, s := range spots {
		sorted = append(sorted, scored{spot: s, score: b.Score(s)})
	}
	slices.SortStableFunc(sorted, func(x, y scored) int { return cmp.Compare(x.score, y.score) })

	var (
		out   []bundle
		cur   []ScheduledSpot
		hours float64
	)
	flush := func() {
		if len(cur) == 0 {
			return
		}
		out = append(out, bundle{
			city:     firstNonEmpty(cur[0].City, UnknownPlace),
			spots:    cur,
			hours:    hours,
			centroid: centroid(cur),
		})
		cur, hours = nil, 0
	}

	for _, s := range sorted {
		h, label := b.Duration(s.spot)
		if hours+h > b.cfg.MaxHoursPerDay {
			flush()
		}
		cur = append(cur, b.schedule(s.spot, label))
		hours += h
	}
	flush()

	return out
}

// mergeAdjacent makes one left-to-right pass. A merged bundle stays open and is
// compared with the next bundle; an emitted bundle is never revisited.
func (b *Builder) mergeAdjacent(bundles []bundle) []bundle {
	if len(bundles) == 0 {
		return nil
	}

	merged := make([]bundle, 0, len(bundles))
	acc := bundles[0]
	for _, next := range bundles[1:] {
		travel := b.travelHours(acc.centroid, next.centroid)
		if acc.hours+travel+next.hours <= b.cfg.MaxHoursPerDay {
			acc = joinBundles(acc, next, travel)
			continue
		}
		merged = append(merged, acc)
		acc = next
	}
	return append(merged, acc)
}

func joinBundles(a, b bundle, travel float64) bundle {
	spots := make([]ScheduledSpot, 0, len(a.spots)+len(b.spots))
	spots = append(spots, a.spots...)
	spots = append(spots, b.spots...)

	c := centroid(spots)
	if c == nil {
		c = a.centroid
	}
	if c == nil {
		c = b.centroid
	}

	return bundle{
		city:     a.city + " + " + b.city,
		spots:    spots,
		hours:    a.hours + b.hours + travel,
		centroid: c,
	}
}

// Score is the sum of (rank+1) over the spot's tags; unknown tags add MissingTagScore.
// Lower scores are scheduled first.
func (b *Builder) Score(s Spot) int {
	score := 0
	for _, tag := range s.Tags {
		if rank, ok := b.cfg.TagPriority.Get(tag); ok {
			score += rank + 1
			continue
		}
		score += b.cfg.MissingTagScore
	}
	return score
}

// Duration returns the planned hours and display label for a regular spot.
func (b *Builder) Duration(s Spot) (float64, string) {
	for _, tag := range b.cfg.LongVisitTags {
		if s.HasTag(tag) {
			return b.cfg.LongHours, b.cfg.LongDuration
		}
	}
	return b.cfg.ShortHours, b.cfg.ShortDuration
}

func (b *Builder) schedule(s Spot, duration string) ScheduledSpot {
	s.Tags = slices.Clone(s.Tags)
	return ScheduledSpot{Spot: s, Duration: duration}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
