package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/mazegen-api/domain"
	"github.com/beka-birhanu/mazegen-api/mazegen"
	"github.com/beka-birhanu/mazegen-api/service/i"
	"github.com/google/uuid"
)

// ErrMazeTooLarge reports a request beyond the configured dimension limits.
var ErrMazeTooLarge = errors.New("requested maze dimensions exceed the configured limits")

// MazeService runs maze generation and fronts it with persistence and a
// shared cache. Seeded requests are deterministic, so identical parameter
// sets resolve to one shared record.
type MazeService struct {
	repo      i.MazeRepo
	cache     i.MazeCache
	logger    i.Logger
	maxWidth  int
	maxHeight int
}

// MazeServiceConfig holds the dependencies and limits for NewMazeService.
type MazeServiceConfig struct {
	Repo      i.MazeRepo
	Cache     i.MazeCache
	Logger    i.Logger
	MaxWidth  int
	MaxHeight int
}

// NewMazeService creates a MazeService.
func NewMazeService(cfg MazeServiceConfig) (*MazeService, error) {
	if cfg.Repo == nil || cfg.Cache == nil || cfg.Logger == nil {
		return nil, errors.New("maze service requires a repo, a cache and a logger")
	}
	return &MazeService{
		repo:      cfg.Repo,
		cache:     cfg.Cache,
		logger:    cfg.Logger,
		maxWidth:  cfg.MaxWidth,
		maxHeight: cfg.MaxHeight,
	}, nil
}

// Generate runs maze generation for the owner. Requests with an explicit
// seed single-flight through the cache: concurrent identical requests
// generate once and share the stored record.
func (s *MazeService) Generate(ctx context.Context, ownerID uuid.UUID, cfg mazegen.Config) (*domain.MazeRecord, error) {
	if cfg.Width > s.maxWidth || cfg.Height > s.maxHeight {
		return nil, fmt.Errorf("%w: %dx%d, limit %dx%d",
			ErrMazeTooLarge, cfg.Width, cfg.Height, s.maxWidth, s.maxHeight)
	}

	if cfg.Seed == 0 {
		// Unseeded requests are nondeterministic and never shared.
		return s.generate(ownerID, cfg)
	}

	key := paramKey(cfg)
	unlock, err := s.cache.Lock(key)
	if err != nil {
		s.logger.Error(fmt.Sprintf("acquiring generation lock for %s: %v", key, err))
	} else {
		defer unlock()
	}

	if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
		return cached, nil
	}

	record, err := s.generate(ownerID, cfg)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Put(ctx, key, record); err != nil {
		s.logger.Error(fmt.Sprintf("caching maze %s: %v", record.ID, err))
	}
	return record, nil
}

// ByID returns a previously generated maze.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*domain.MazeRecord, error) {
	return s.repo.ByID(id)
}

// Recent lists the IDs of the most recently generated mazes.
func (s *MazeService) Recent(ctx context.Context, limit int64) ([]uuid.UUID, error) {
	return s.cache.Recent(ctx, limit)
}

func (s *MazeService) generate(ownerID uuid.UUID, cfg mazegen.Config) (*domain.MazeRecord, error) {
	started := time.Now()
	m, err := mazegen.Generate(cfg)
	if err != nil {
		return nil, err
	}
	s.logger.Info(fmt.Sprintf("generated %dx%d maze with seed %d in %s",
		m.Width, m.Height, m.Seed, time.Since(started)))

	record := domain.NewMazeRecord(uuid.New(), ownerID, cfg, m)
	if err := s.repo.Save(record); err != nil {
		return nil, err
	}
	return record, nil
}

// paramKey derives the deterministic cache key for a seeded request.
func paramKey(cfg mazegen.Config) string {
	weights := cfg.BranchWeights
	if weights == ([4]float64{}) {
		weights = mazegen.DefaultBranchWeights
	}
	return fmt.Sprintf("%dx%d:b%g,%g,%g,%g:l%d:s%d",
		cfg.Width, cfg.Height, weights[0], weights[1], weights[2], weights[3], cfg.MinLength, cfg.Seed)
}
