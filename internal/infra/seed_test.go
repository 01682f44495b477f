package infra

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shinkai/internal/models/db_models"
)

type recordingUpserter struct {
	regions []db_models.Region
	failOn  string
}

func (r *recordingUpserter) UpsertRegion(_ context.Context, region *db_models.Region) error {
	if region.Key == r.failOn {
		return errors.New("boom")
	}
	r.regions = append(r.regions, *region)
	return nil
}

func TestLoadCatalog_EmbeddedRegions(t *testing.T) {
	regions, err := LoadCatalog()
	require.NoError(t, err)

	keys := make([]string, 0, len(regions))
	for _, r := range regions {
		keys = append(keys, r.Key)
		assert.NotEmpty(t, r.Label)
		assert.Positive(t, r.DefaultDays)
	}
	assert.Equal(t, []string{"chubu", "chugoku", "hokkaido", "kansai", "kanto", "kyushu", "okinawa", "shikoku", "tohoku"}, keys)
}

func TestLoadCatalog_KantoSpotsKeepOrder(t *testing.T) {
	regions, err := LoadCatalog()
	require.NoError(t, err)

	var kanto *db_models.Region
	for i := range regions {
		if regions[i].Key == "kanto" {
			kanto = &regions[i]
		}
	}
	require.NotNil(t, kanto)
	require.NotEmpty(t, kanto.Spots)

	first := kanto.Spots[0]
	assert.Equal(t, "Tokyo Skytree", first.Name)
	assert.Equal(t, "Sumida", first.City)
	require.NotNil(t, first.Lat)
	assert.InDelta(t, 35.7101, *first.Lat, 1e-9)
	for i, s := range kanto.Spots {
		assert.Equal(t, i, s.Position)
	}

	var disney bool
	for _, s := range kanto.Spots {
		if s.Name == "Tokyo DisneySea" {
			disney = s.IsThemePark()
		}
	}
	assert.True(t, disney)
}

func TestLoadCatalog_RejectsMissingKey(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog/bad.json": {Data: []byte(`{"label":"Nowhere","spots":[]}`)},
	}
	_, err := loadCatalog(fsys)
	assert.Error(t, err)
}

func TestLoadCatalog_DefaultDaysFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog/x.json": {Data: []byte(`{"key":"X","label":"X","spots":[{"name":"a","city":"b","tags":["Food"]}]}`)},
	}
	regions, err := loadCatalog(fsys)
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, "x", regions[0].Key)
	assert.Equal(t, 3, regions[0].DefaultDays)
	assert.Nil(t, regions[0].Spots[0].Lat)
}

func TestLoadCatalog_UntaggedSpotGetsEmptyArray(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog/x.json": {Data: []byte(`{"key":"x","label":"X","spots":[{"name":"a","city":"b"}]}`)},
	}
	regions, err := loadCatalog(fsys)
	require.NoError(t, err)

	tags := regions[0].Spots[0].Tags
	require.NotNil(t, tags)
	value, err := tags.Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", value)
}

func TestSeedCatalog(t *testing.T) {
	repo := &recordingUpserter{}
	require.NoError(t, SeedCatalog(context.Background(), repo, zap.NewNop()))
	assert.Len(t, repo.regions, 9)

	failing := &recordingUpserter{failOn: "kanto"}
	err := SeedCatalog(context.Background(), failing, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kanto")
}
