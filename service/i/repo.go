package i

import (
	"github.com/beka-birhanu/mazegen-api/domain"
	"github.com/google/uuid"
)

// UserRepo defines the persistence operations for accounts.
type UserRepo interface {
	// Save inserts or updates a user. Existing records are overwritten.
	Save(user *domain.User) error

	// ByID retrieves a user by their unique ID.
	ByID(id uuid.UUID) (*domain.User, error)

	// ByUsername retrieves a user by their username.
	ByUsername(username string) (*domain.User, error)
}

// MazeRepo defines the persistence operations for generated mazes.
type MazeRepo interface {
	// Save stores a generated maze record.
	Save(record *domain.MazeRecord) error

	// ByID retrieves a maze record by its ID.
	ByID(id uuid.UUID) (*domain.MazeRecord, error)

	// ByOwner lists the maze records generated by one account, newest
	// first, capped at limit.
	ByOwner(ownerID uuid.UUID, limit int64) ([]*domain.MazeRecord, error)
}
