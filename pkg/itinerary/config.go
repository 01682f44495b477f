package itinerary

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultTagPriority lists tags from most to least important. Spots whose tags
// rank higher are packed into a city's first day before the others.
var DefaultTagPriority = []string{
	"Iconic", "Cultural", "Nature", "Viewpoint", "UNESCO", "Scenic", "Family", "Food", "Shopping",
}

const (
	ThemeParkTag      = "Theme Park"
	ThemeParkDuration = "4–6 hrs"
	LongDuration      = "2–3 hrs"
	ShortDuration     = "1–2 hrs"
	UnknownPlace      = "unknown"
)

// Config is the readonly tuning table of a Builder.
type Config struct {
	// TagPriority maps a tag to its zero-based rank, in priority order.
	TagPriority *orderedmap.OrderedMap[string, int]
	// MissingTagScore is added to a spot's score for each tag not in TagPriority.
	MissingTagScore int

	MaxHoursPerDay      float64
	FallbackTravelHours float64
	AverageSpeedKmh     float64
	TravelBufferHours   float64

	ThemeParkTag      string
	ThemeParkDuration string

	// LongVisitTags get LongHours / LongDuration, every other spot ShortHours / ShortDuration.
	LongVisitTags []string
	LongHours     float64
	LongDuration  string
	ShortHours    float64
	ShortDuration string
}

// TagRank is one row of the priority table.
type TagRank struct {
	Tag  string `json:"tag"`
	Rank int    `json:"rank"`
}

// NewTagPriority builds an ordered tag → rank table. Duplicate tags keep their first rank.
func NewTagPriority(tags []string) *orderedmap.OrderedMap[string, int] {
	table := orderedmap.New[string, int](len(tags))
	for i, tag := range tags {
		if _, ok := table.Get(tag); ok {
			continue
		}
		table.Set(tag, i)
	}
	return table
}

func DefaultConfig() Config {
	return Config{
		TagPriority:         NewTagPriority(DefaultTagPriority),
		MissingTagScore:     99,
		MaxHoursPerDay:      10,
		FallbackTravelHours: 1,
		AverageSpeedKmh:     60,
		TravelBufferHours:   0.5,
		ThemeParkTag:        ThemeParkTag,
		ThemeParkDuration:   ThemeParkDuration,
		LongVisitTags:       []string{"Iconic", "Cultural"},
		LongHours:           3,
		LongDuration:        LongDuration,
		ShortHours:          2,
		ShortDuration:       ShortDuration,
	}
}

// Priorities returns the tag table in priority order.
func (c Config) Priorities() []TagRank {
	out := make([]TagRank, 0, c.TagPriority.Len())
	for pair := c.TagPriority.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, TagRank{Tag: pair.Key, Rank: pair.Value})
	}
	return out
}
