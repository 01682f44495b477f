package itinerary

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func spot(name, city string, tags ...string) Spot {
	return Spot{Name: name, City: city, Tags: tags}
}

func spotAt(name, city string, lat, lng float64, tags ...string) Spot {
	s := spot(name, city, tags...)
	s.Lat, s.Lng = ptr(lat), ptr(lng)
	return s
}

func names(spots []ScheduledSpot) []string {
	out := make([]string, 0, len(spots))
	for _, s := range spots {
		out = append(out, s.Name)
	}
	return out
}

func dayHours(t *testing.T, b *Builder, day ScheduledDay) float64 {
	t.Helper()
	total := 0.0
	for _, s := range day.Spots {
		h, _ := b.Duration(s.Spot)
		total += h
	}
	return total
}

func TestBuild_EmptyInput(t *testing.T) {
	res := Generate(nil, 3, false)

	assert.Empty(t, res.Days)
	assert.Empty(t, res.Overflow)
	assert.NotNil(t, res.Days)
	assert.NotNil(t, res.Overflow)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"days":[],"overflow":[]}`, string(raw))
}

func TestBuild_SingleThemePark(t *testing.T) {
	disney := spot("Tokyo DisneySea", "Urayasu", ThemeParkTag)

	res := Generate([]Spot{disney}, 2, true)

	require.Len(t, res.Days, 1)
	assert.Equal(t, 1, res.Days[0].Day)
	require.Len(t, res.Days[0].Spots, 1)
	assert.Equal(t, "Tokyo DisneySea", res.Days[0].Spots[0].Name)
	assert.Equal(t, ThemeParkDuration, res.Days[0].Spots[0].Duration)
	assert.Empty(t, res.Overflow)
}

func TestBuild_ThemeParkShiftsRegularDays(t *testing.T) {
	spots := []Spot{
		spot("Kinkaku-ji", "Kyoto", "Iconic"),
		spot("Universal Studios Japan", "Osaka", ThemeParkTag, "Family"),
	}

	res := Generate(spots, 3, true)

	require.Len(t, res.Days, 2)
	assert.Equal(t, []string{"Universal Studios Japan"}, names(res.Days[0].Spots))
	assert.Equal(t, 2, res.Days[1].Day)
	assert.Equal(t, []string{"Kinkaku-ji"}, names(res.Days[1].Spots))
}

func TestBuild_ExtraThemeParksAreDropped(t *testing.T) {
	spots := []Spot{
		spot("Universal Studios Japan", "Osaka", ThemeParkTag),
		spot("Tokyo DisneySea", "Urayasu", ThemeParkTag),
		spot("Dotonbori", "Osaka", "Food"),
	}

	res := Generate(spots, 1, true)

	require.Len(t, res.Days, 1)
	assert.Equal(t, []string{"Universal Studios Japan"}, names(res.Days[0].Spots))
	assert.Equal(t, []string{"Dotonbori"}, names(res.Overflow))
}

func TestBuild_ThemeParksIgnoredWhenNotIncluded(t *testing.T) {
	spots := []Spot{
		spot("Universal Studios Japan", "Osaka", ThemeParkTag),
		spot("Dotonbori", "Osaka", "Food"),
	}

	res := Generate(spots, 2, false)

	require.Len(t, res.Days, 1)
	assert.Equal(t, 1, res.Days[0].Day)
	assert.Equal(t, []string{"Dotonbori"}, names(res.Days[0].Spots))
	assert.Empty(t, res.Overflow)
}

func TestBuild_ZeroDaysOverflowsEverything(t *testing.T) {
	spots := []Spot{
		spot("Universal Studios Japan", "Osaka", ThemeParkTag),
		spot("Dotonbori", "Osaka", "Food"),
		spot("Fushimi Inari", "Kyoto", "Iconic"),
	}

	res := Generate(spots, 0, true)

	assert.Empty(t, res.Days)
	assert.ElementsMatch(t, []string{"Dotonbori", "Fushimi Inari"}, names(res.Overflow))
}

func TestBuild_NegativeDaysClampToZeroCapacity(t *testing.T) {
	res := Generate([]Spot{spot("Dotonbori", "Osaka", "Food")}, -2, false)

	assert.Empty(t, res.Days)
	assert.Equal(t, []string{"Dotonbori"}, names(res.Overflow))
}

func TestBuild_SingleCityRespectsHourCap(t *testing.T) {
	var spots []Spot
	for i := 1; i <= 5; i++ {
		spots = append(spots, spot(fmt.Sprintf("Temple %d", i), "Kyoto", "Iconic"))
	}
	b := NewBuilder()

	res := b.Build(spots, 5, false)

	require.Len(t, res.Days, 2)
	assert.Equal(t, []string{"Temple 1", "Temple 2", "Temple 3"}, names(res.Days[0].Spots))
	assert.Equal(t, []string{"Temple 4", "Temple 5"}, names(res.Days[1].Spots))
	for _, d := range res.Days {
		assert.LessOrEqual(t, dayHours(t, b, d), 10.0)
		for _, s := range d.Spots {
			assert.Equal(t, LongDuration, s.Duration)
		}
	}
	assert.Empty(t, res.Overflow)
}

func TestBuild_DistantCitiesStaySeparate(t *testing.T) {
	// ~500 km apart along one meridian.
	a := spotAt("Sendai Castle", "Sendai", 35.0, 139.0, "Food")
	c := spotAt("Aomori Market", "Aomori", 39.4966, 139.0, "Food")
	require.InDelta(t, 500, HaversineKm(Point{35.0, 139.0}, Point{39.4966, 139.0}), 1)

	res := Generate([]Spot{a, c}, 1, false)

	require.Len(t, res.Days, 1)
	assert.Equal(t, []string{"Sendai Castle"}, names(res.Days[0].Spots))
	assert.Equal(t, []string{"Aomori Market"}, names(res.Overflow))
	assert.Equal(t, ShortDuration, res.Overflow[0].Duration)
}

func TestBuild_MissingCoordinatesUseFlatTravel(t *testing.T) {
	withCoords := spotAt("Nara Park", "Nara", 34.685, 135.843, "Nature")
	without := spot("Mystery Shrine", "Uji", "Scenic")

	res := Generate([]Spot{withCoords, without}, 2, false)

	require.Len(t, res.Days, 1, "2h + 1h + 2h fits in a day")
	assert.Equal(t, []string{"Nara Park", "Mystery Shrine"}, names(res.Days[0].Spots))
	assert.Empty(t, res.Overflow)
}

func TestBuild_MergedBundleKeepsAbsorbingNeighbours(t *testing.T) {
	spots := []Spot{
		spot("A", "Otaru", "Food"),
		spot("B", "Sapporo", "Food"),
		spot("C", "Yoichi", "Food"),
		spot("D", "Niseko", "Food"),
	}

	res := Generate(spots, 4, false)

	// 2+1+2 = 5, +1+2 = 8, +1+2 = 11 > 10.
	require.Len(t, res.Days, 2)
	assert.Equal(t, []string{"A", "B", "C"}, names(res.Days[0].Spots))
	assert.Equal(t, []string{"D"}, names(res.Days[1].Spots))
}

func TestBuild_MergedBundleUsesUnionCentroid(t *testing.T) {
	b := NewBuilder()
	// Three towns on one meridian; A and B are ~60 km apart.
	a := spotAt("A", "Kofu", 35.0, 138.0, "Food")
	bb := spotAt("B", "Nirasaki", 35.54, 138.0, "Food")
	c := spotAt("C", "Matsumoto", 36.25, 138.0, "Food")

	abTravel := b.travelHours(&Point{35.0, 138.0}, &Point{35.54, 138.0})
	afterAB := 2 + abTravel + 2
	require.LessOrEqual(t, afterAB, 10.0)

	fromMidpoint := b.travelHours(&Point{35.27, 138.0}, &Point{36.25, 138.0})
	fromA := b.travelHours(&Point{35.0, 138.0}, &Point{36.25, 138.0})
	require.LessOrEqual(t, afterAB+fromMidpoint+2, 10.0, "C fits measured from the A+B midpoint")
	require.Greater(t, afterAB+fromA+2, 10.0, "C would not fit measured from A alone")

	res := b.Build([]Spot{a, bb, c}, 3, false)

	require.Len(t, res.Days, 1)
	assert.Equal(t, []string{"A", "B", "C"}, names(res.Days[0].Spots))
	assert.Empty(t, res.Overflow)
}

func TestBuild_NearbyCitiesMergeByDistance(t *testing.T) {
	b := NewBuilder()
	asakusa := spotAt("Senso-ji", "Asakusa", 35.7148, 139.7967, "Cultural", "Iconic", "Shopping")
	ueno := spotAt("Ueno Park", "Ueno", 35.7156, 139.7730, "Cultural", "Nature")

	travel := b.travelHours(&Point{35.7148, 139.7967}, &Point{35.7156, 139.7730})
	require.Less(t, travel, 0.6)

	res := b.Build([]Spot{asakusa, ueno}, 1, false)

	require.Len(t, res.Days, 1)
	assert.Equal(t, []string{"Senso-ji", "Ueno Park"}, names(res.Days[0].Spots))
}

func TestBuild_PriorityOrderWithinCity(t *testing.T) {
	spots := []Spot{
		spot("Mall", "Tokyo", "Shopping"),
		spot("Arcade", "Tokyo", "Pop Culture"),
		spot("Skytree", "Tokyo", "Iconic"),
		spot("Garden", "Tokyo", "Nature"),
	}

	res := Generate(spots, 1, false)

	require.Len(t, res.Days, 1)
	assert.Equal(t, []string{"Skytree", "Garden", "Mall", "Arcade"}, names(res.Days[0].Spots))
}

func TestBuild_EqualScoresKeepInputOrder(t *testing.T) {
	spots := []Spot{
		spot("Ramen Alley", "Sapporo", "Food"),
		spot("Nijo Market", "Sapporo", "Food"),
		spot("Soup Curry", "Sapporo", "Food"),
	}

	res := Generate(spots, 1, false)

	require.Len(t, res.Days, 1)
	assert.Equal(t, []string{"Ramen Alley", "Nijo Market", "Soup Curry"}, names(res.Days[0].Spots))
}

func TestBuild_GroupsByZoneThenCity(t *testing.T) {
	a := spotAt("A", "Naha", 26.0, 127.7, "Food")
	a.RegionZone = "South"
	b := spotAt("B", "Nago", 46.0, 127.7, "Food")
	c := spotAt("C", "Itoman", 36.0, 127.7, "Food")
	c.RegionZone = "South"

	res := Generate([]Spot{a, b, c}, 3, false)

	require.Len(t, res.Days, 3)
	assert.Equal(t, []string{"A"}, names(res.Days[0].Spots))
	assert.Equal(t, []string{"C"}, names(res.Days[1].Spots))
	assert.Equal(t, []string{"B"}, names(res.Days[2].Spots))
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	spots := []Spot{
		spot("Mall", "Tokyo", "Shopping", "Iconic"),
		spot("Skytree", "Tokyo", "Iconic"),
	}

	res := Generate(spots, 1, false)
	res.Days[0].Spots[0].Tags[0] = "changed"

	assert.Equal(t, "Mall", spots[0].Name)
	assert.Equal(t, []string{"Shopping", "Iconic"}, spots[0].Tags)
	assert.Equal(t, []string{"Iconic"}, spots[1].Tags)
}

func TestBuild_StructuralProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tags := append(append([]string{}, DefaultTagPriority...), "Onsen", ThemeParkTag)
	cities := []string{"Sapporo", "Otaru", "Hakodate", "Furano", ""}

	for round := 0; round < 50; round++ {
		n := rng.Intn(25)
		spots := make([]Spot, 0, n)
		eligible := 0
		for i := 0; i < n; i++ {
			s := spot(fmt.Sprintf("spot-%d-%d", round, i), cities[rng.Intn(len(cities))])
			for k := rng.Intn(3) + 1; k > 0; k-- {
				s.Tags = append(s.Tags, tags[rng.Intn(len(tags))])
			}
			if rng.Intn(3) > 0 {
				s.Lat, s.Lng = ptr(41+rng.Float64()*3), ptr(140+rng.Float64()*3)
			}
			if !s.HasTag(ThemeParkTag) {
				eligible++
			}
			spots = append(spots, s)
		}
		days := rng.Intn(6)
		theme := rng.Intn(2) == 0

		res := Generate(spots, days, theme)

		themeDay := 0
		if len(res.Days) > 0 && len(res.Days[0].Spots) == 1 && res.Days[0].Spots[0].HasTag(ThemeParkTag) {
			themeDay = 1
		}
		assert.Equal(t, eligible, res.SpotCount()-themeDay+len(res.Overflow), "conservation, round %d", round)
		assert.LessOrEqual(t, len(res.Days), max(days, 0))

		seen := map[string]bool{}
		for i, d := range res.Days {
			assert.Equal(t, i+1, d.Day, "contiguous days, round %d", round)
			for _, s := range d.Spots {
				assert.False(t, seen[s.Name], "duplicate %s", s.Name)
				seen[s.Name] = true
			}
		}
		for _, s := range res.Overflow {
			assert.False(t, seen[s.Name], "duplicate %s", s.Name)
			seen[s.Name] = true
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	spots := []Spot{
		spotAt("Tokyo Skytree", "Sumida", 35.7101, 139.8107, "Iconic", "Viewpoint"),
		spotAt("Senso-ji", "Asakusa", 35.7148, 139.7967, "Cultural", "Iconic", "Shopping"),
		spotAt("Nakamise", "Asakusa", 35.7129, 139.7966, "Shopping", "Food"),
		spotAt("Kamakura Daibutsu", "Kamakura", 35.3167, 139.5353, "Cultural", "Iconic"),
		spot("Unknown Cafe", "", "Food"),
		spotAt("Tokyo DisneySea", "Urayasu", 35.6263, 139.8836, ThemeParkTag, "Family"),
	}

	first, err := json.Marshal(Generate(spots, 3, true))
	require.NoError(t, err)
	second, err := json.Marshal(Generate(spots, 3, true))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestScoreAndDuration(t *testing.T) {
	b := NewBuilder()

	assert.Equal(t, 1, b.Score(spot("x", "c", "Iconic")))
	assert.Equal(t, 1+2+9, b.Score(spot("x", "c", "Iconic", "Cultural", "Shopping")))
	assert.Equal(t, 99+3, b.Score(spot("x", "c", "Pop Culture", "Nature")))
	assert.Equal(t, 0, b.Score(spot("x", "c")))

	h, label := b.Duration(spot("x", "c", "Food", "Cultural"))
	assert.Equal(t, 3.0, h)
	assert.Equal(t, LongDuration, label)

	h, label = b.Duration(spot("x", "c", "Food"))
	assert.Equal(t, 2.0, h)
	assert.Equal(t, ShortDuration, label)
}

func TestConfigPriorities(t *testing.T) {
	got := DefaultConfig().Priorities()

	require.Len(t, got, len(DefaultTagPriority))
	assert.Equal(t, TagRank{Tag: "Iconic", Rank: 0}, got[0])
	assert.Equal(t, TagRank{Tag: "Shopping", Rank: 8}, got[8])
}
