package service

import (
	"context"
	"testing"

	"github.com/beka-birhanu/mazegen-api/domain"
	"github.com/beka-birhanu/mazegen-api/mazegen"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeMazeRepo struct {
	records map[uuid.UUID]*domain.MazeRecord
	saves   int
}

func newFakeMazeRepo() *fakeMazeRepo {
	return &fakeMazeRepo{records: make(map[uuid.UUID]*domain.MazeRecord)}
}

func (f *fakeMazeRepo) Save(record *domain.MazeRecord) error {
	f.saves++
	f.records[record.ID] = record
	return nil
}

func (f *fakeMazeRepo) ByID(id uuid.UUID) (*domain.MazeRecord, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, assert.AnError
	}
	return record, nil
}

func (f *fakeMazeRepo) ByOwner(ownerID uuid.UUID, limit int64) ([]*domain.MazeRecord, error) {
	var out []*domain.MazeRecord
	for _, r := range f.records {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeMazeCache struct {
	values map[string]*domain.MazeRecord
	order  []uuid.UUID
	locks  int
}

func newFakeMazeCache() *fakeMazeCache {
	return &fakeMazeCache{values: make(map[string]*domain.MazeRecord)}
}

func (f *fakeMazeCache) Put(_ context.Context, key string, record *domain.MazeRecord) error {
	f.values[key] = record
	f.order = append([]uuid.UUID{record.ID}, f.order...)
	return nil
}

func (f *fakeMazeCache) Get(_ context.Context, key string) (*domain.MazeRecord, error) {
	return f.values[key], nil
}

func (f *fakeMazeCache) Recent(_ context.Context, limit int64) ([]uuid.UUID, error) {
	if int64(len(f.order)) < limit {
		limit = int64(len(f.order))
	}
	return f.order[:limit], nil
}

func (f *fakeMazeCache) Lock(string) (func(), error) {
	f.locks++
	return func() {}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string)  {}
func (nopLogger) Error(string) {}

func newTestService(t *testing.T) (*MazeService, *fakeMazeRepo, *fakeMazeCache) {
	t.Helper()
	repo := newFakeMazeRepo()
	cache := newFakeMazeCache()
	svc, err := NewMazeService(MazeServiceConfig{
		Repo:      repo,
		Cache:     cache,
		Logger:    nopLogger{},
		MaxWidth:  64,
		MaxHeight: 64,
	})
	assert.NoError(t, err)
	return svc, repo, cache
}

func TestMazeServiceGenerate(t *testing.T) {
	svc, repo, _ := newTestService(t)
	owner := uuid.New()

	record, err := svc.Generate(context.Background(), owner, mazegen.Config{Width: 10, Height: 8, Seed: 42})
	assert.NoError(t, err)
	assert.Equal(t, owner, record.OwnerID)
	assert.Equal(t, 10, record.Width)
	assert.Equal(t, 8, record.Height)
	assert.Len(t, record.Walls, 80)
	assert.Equal(t, 1, repo.saves)

	fetched, err := svc.ByID(context.Background(), record.ID)
	assert.NoError(t, err)
	assert.Equal(t, record.Walls, fetched.Walls)
}

func TestMazeServiceSharesSeededResults(t *testing.T) {
	svc, repo, cache := newTestService(t)
	cfg := mazegen.Config{Width: 12, Height: 12, Seed: 7}

	first, err := svc.Generate(context.Background(), uuid.New(), cfg)
	assert.NoError(t, err)
	second, err := svc.Generate(context.Background(), uuid.New(), cfg)
	assert.NoError(t, err)

	// Identical seeded parameters resolve to the first record.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, repo.saves)
	assert.Equal(t, 2, cache.locks)
}

func TestMazeServiceRejectsOversizedRequests(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Generate(context.Background(), uuid.New(), mazegen.Config{Width: 65, Height: 10, Seed: 1})
	assert.ErrorIs(t, err, ErrMazeTooLarge)
}

func TestMazeServiceSurfacesExitConstraint(t *testing.T) {
	svc, repo, _ := newTestService(t)

	_, err := svc.Generate(context.Background(), uuid.New(),
		mazegen.Config{Width: 2, Height: 2, MinLength: 10, Seed: 1})
	assert.ErrorIs(t, err, mazegen.ErrNoQualifyingExit)
	assert.Zero(t, repo.saves)
}

func TestMazeServiceRecent(t *testing.T) {
	svc, _, _ := newTestService(t)
	owner := uuid.New()

	a, err := svc.Generate(context.Background(), owner, mazegen.Config{Width: 9, Height: 9, Seed: 1})
	assert.NoError(t, err)
	b, err := svc.Generate(context.Background(), owner, mazegen.Config{Width: 9, Height: 9, Seed: 2})
	assert.NoError(t, err)

	ids, err := svc.Recent(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b.ID, a.ID}, ids)
}
