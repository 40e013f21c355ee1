package i

import (
	"context"

	"github.com/beka-birhanu/mazegen-api/domain"
	"github.com/beka-birhanu/mazegen-api/mazegen"
	"github.com/google/uuid"
)

// MazeGenerator is the service surface the maze controller talks to.
type MazeGenerator interface {
	// Generate runs maze generation for the owner with the given parameters
	// and returns the stored record.
	Generate(ctx context.Context, ownerID uuid.UUID, cfg mazegen.Config) (*domain.MazeRecord, error)

	// ByID returns a previously generated maze.
	ByID(ctx context.Context, id uuid.UUID) (*domain.MazeRecord, error)

	// Recent lists the IDs of the most recently generated mazes.
	Recent(ctx context.Context, limit int64) ([]uuid.UUID, error)
}

// MazeCache is a shared cache of generated mazes with a recency index.
type MazeCache interface {
	// Put stores an encoded maze record under its deterministic parameter
	// key and indexes it by creation time.
	Put(ctx context.Context, key string, record *domain.MazeRecord) error

	// Get returns the cached record for a parameter key, or nil on a miss.
	Get(ctx context.Context, key string) (*domain.MazeRecord, error)

	// Recent returns up to limit record IDs, newest first.
	Recent(ctx context.Context, limit int64) ([]uuid.UUID, error)

	// Lock acquires a shared mutex for a parameter key so only one process
	// generates a given maze at a time. The returned function releases it.
	Lock(key string) (func(), error)
}
