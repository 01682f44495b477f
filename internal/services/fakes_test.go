package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"shinkai/internal/models/db_models"
	"shinkai/internal/repositories"
	"shinkai/pkg/itinerary"
)

var errFakeDB = errors.New("connection refused")

func f(v float64) *float64 { return &v }

func catalogSpot(name, city string, lat, lng float64, tags ...string) db_models.Spot {
	return db_models.Spot{Name: name, City: city, Tags: tags, Lat: f(lat), Lng: f(lng)}
}

func kantoFixture() *db_models.Region {
	r := &db_models.Region{
		Key:         "kanto",
		Label:       "Kantō",
		DefaultDays: 5,
		Spots: []db_models.Spot{
			catalogSpot("Tokyo Skytree", "Sumida", 35.7101, 139.8107, "Iconic", "Viewpoint"),
			catalogSpot("Sensō-ji (Sensoji)", "Asakusa", 35.7148, 139.7967, "Cultural", "Iconic", "Shopping"),
			catalogSpot("Nakamise Shopping Street", "Asakusa", 35.7129, 139.7966, "Shopping", "Food"),
			catalogSpot("Tokyo DisneySea", "Urayasu", 35.6263, 139.8836, "Theme Park", "Family", "Iconic"),
			catalogSpot("Nikkō Tōshōgū Shrine", "Nikkō", 36.7575, 139.5986, "UNESCO", "Cultural", "Iconic"),
		},
	}
	r.ID = uuid.New()
	for i := range r.Spots {
		r.Spots[i].ID = uuid.New()
		r.Spots[i].RegionID = r.ID
		r.Spots[i].Position = i
	}
	return r
}

type fakeRegionRepo struct {
	regions map[string]*db_models.Region
	err     error
	lookups int
}

func newFakeRegionRepo(regions ...*db_models.Region) *fakeRegionRepo {
	repo := &fakeRegionRepo{regions: map[string]*db_models.Region{}}
	for _, r := range regions {
		repo.regions[r.Key] = r
	}
	return repo
}

func (f *fakeRegionRepo) ListRegions(_ context.Context) ([]repositories.RegionWithCount, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]repositories.RegionWithCount, 0, len(f.regions))
	for _, r := range f.regions {
		out = append(out, repositories.RegionWithCount{Region: *r, SpotCount: len(r.Spots)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (f *fakeRegionRepo) GetRegionByKey(_ context.Context, key string) (*db_models.Region, error) {
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.regions[strings.ToLower(key)]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRegionRepo) UpsertRegion(_ context.Context, region *db_models.Region) error {
	f.regions[region.Key] = region
	return nil
}

type fakeSpotRepo struct {
	regions *fakeRegionRepo
	err     error
}

func (f *fakeSpotRepo) ListSpotsByRegion(_ context.Context, regionID uuid.UUID, includeThemePark bool) ([]db_models.Spot, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.regions.regions {
		if r.ID != regionID {
			continue
		}
		var out []db_models.Spot
		for _, s := range r.Spots {
			if !includeThemePark && s.IsThemePark() {
				continue
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, nil
}

type fakeTagRepo struct {
	usage []repositories.TagUsage
	err   error
}

func (f *fakeTagRepo) CountSpotsByTag(context.Context) ([]repositories.TagUsage, error) {
	return f.usage, f.err
}

type fakeJourneyRepo struct {
	mu        sync.Mutex
	journeys  map[uuid.UUID]*db_models.Journey
	createErr error
}

func newFakeJourneyRepo() *fakeJourneyRepo {
	return &fakeJourneyRepo{journeys: map[uuid.UUID]*db_models.Journey{}}
}

func (f *fakeJourneyRepo) CreateJourney(_ context.Context, journey *db_models.Journey) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	journey.ID = uuid.New()
	journey.CreatedAt = 1735657200 // 2025-01-01T00:00:00+09:00
	f.journeys[journey.ID] = journey
	return nil
}

func (f *fakeJourneyRepo) ListByAccount(_ context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.Journey, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []db_models.Journey
	for _, j := range f.journeys {
		if j.AccountID == accountID {
			all = append(all, *j)
		}
	}
	sort.Slice(all, func(i, k int) bool { return all[i].Title < all[k].Title })
	total := int64(len(all))
	start := min(len(all), (page-1)*pageSize)
	end := min(len(all), start+pageSize)
	return all[start:end], total, nil
}

func (f *fakeJourneyRepo) GetByID(_ context.Context, id uuid.UUID) (*db_models.Journey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.journeys[id]
	if !ok {
		return nil, nil
	}
	return j, nil
}

func (f *fakeJourneyRepo) Delete(_ context.Context, accountID, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.journeys[id]
	if !ok || j.AccountID != accountID {
		return false, nil
	}
	delete(f.journeys, id)
	return true, nil
}

type fakeAccountRepo struct {
	byEmail   map[string]*db_models.Account
	findErr   error
	insertErr error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: map[string]*db_models.Account{}}
}

func (f *fakeAccountRepo) InsertTx(_ context.Context, account *db_models.Account) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	account.ID = uuid.New()
	f.byEmail[strings.ToLower(account.Email)] = account
	return nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byEmail[strings.ToLower(email)], nil
}

// countingCache records hits and misses around an in-memory map.
type countingCache struct {
	data       map[string]itinerary.Result
	gets, sets int
}

func newCountingCache() *countingCache {
	return &countingCache{data: map[string]itinerary.Result{}}
}

func (c *countingCache) Get(_ context.Context, key string) (itinerary.Result, bool) {
	c.gets++
	r, ok := c.data[key]
	return r, ok
}

func (c *countingCache) Set(_ context.Context, key string, result itinerary.Result, _ time.Duration) {
	c.sets++
	c.data[key] = result
}
