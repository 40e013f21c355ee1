package domain

import (
	"time"

	"github.com/beka-birhanu/mazegen-api/mazegen"
	"github.com/google/uuid"
)

// MazeRecord is a generated maze as persisted, together with the parameters
// that reproduce it.
type MazeRecord struct {
	ID            uuid.UUID  `bson:"_id"`
	OwnerID       uuid.UUID  `bson:"ownerId"`
	Width         int        `bson:"width"`
	Height        int        `bson:"height"`
	Walls         []uint8    `bson:"walls"`
	StartX        int        `bson:"startX"`
	StartY        int        `bson:"startY"`
	ExitX         int        `bson:"exitX"`
	ExitY         int        `bson:"exitY"`
	BranchWeights [4]float64 `bson:"branchWeights"`
	MinLength     int        `bson:"minLength"`
	Seed          int64      `bson:"seed"`
	CreatedAt     time.Time  `bson:"createdAt"`
}

// NewMazeRecord captures a generation result under a fresh ID.
func NewMazeRecord(id, ownerID uuid.UUID, cfg mazegen.Config, m *mazegen.Maze) *MazeRecord {
	return &MazeRecord{
		ID:            id,
		OwnerID:       ownerID,
		Width:         m.Width,
		Height:        m.Height,
		Walls:         m.Walls,
		StartX:        m.Start.X,
		StartY:        m.Start.Y,
		ExitX:         m.Exit.X,
		ExitY:         m.Exit.Y,
		BranchWeights: cfg.BranchWeights,
		MinLength:     cfg.MinLength,
		Seed:          m.Seed,
		CreatedAt:     time.Now().UTC(),
	}
}

// Maze rebuilds the read-only generation result from the stored record. The
// distance field is not persisted; regenerate from Seed when it is needed.
func (r *MazeRecord) Maze() *mazegen.Maze {
	return &mazegen.Maze{
		Width:  r.Width,
		Height: r.Height,
		Walls:  r.Walls,
		Start:  mazegen.Position{X: r.StartX, Y: r.StartY},
		Exit:   mazegen.Position{X: r.ExitX, Y: r.ExitY},
		Seed:   r.Seed,
	}
}
