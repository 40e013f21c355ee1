// Package mazeapi provides structures and handlers for maze generation
// requests and responses.
package mazeapi

import (
	"time"

	"github.com/beka-birhanu/mazegen-api/domain"
	"github.com/google/uuid"
)

// GenerateRequest represents a request to generate a new maze.
type GenerateRequest struct {
	Width  int `json:"width" binding:"required"`
	Height int `json:"height" binding:"required"`
	// BranchWeights is the relative frequency of branching 0, 1, 2 or 3
	// ways. Omitted means the server default.
	BranchWeights *[4]float64 `json:"branch_weights"`
	// MinLength is the minimum start-to-exit distance; zero or below means
	// min(width, height).
	MinLength int `json:"min_length"`
	// Seed pins the generator; omitted or zero means a random maze.
	Seed int64 `json:"seed"`
}

// PositionDTO is a cell coordinate pair.
type PositionDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MazeResponse carries a generated maze. Walls is the row-major array of
// 4-bit wall-opening codes (bit0=left, bit1=top, bit2=right, bit3=bottom)
// that renderers consume.
type MazeResponse struct {
	ID        uuid.UUID   `json:"id"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Walls     []uint8     `json:"walls"`
	Start     PositionDTO `json:"start"`
	Exit      PositionDTO `json:"exit"`
	Seed      int64       `json:"seed"`
	CreatedAt time.Time   `json:"created_at"`
}

// RecentResponse lists the most recently generated maze IDs.
type RecentResponse struct {
	IDs []uuid.UUID `json:"ids"`
}

func toMazeResponse(record *domain.MazeRecord) *MazeResponse {
	return &MazeResponse{
		ID:        record.ID,
		Width:     record.Width,
		Height:    record.Height,
		Walls:     record.Walls,
		Start:     PositionDTO{X: record.StartX, Y: record.StartY},
		Exit:      PositionDTO{X: record.ExitX, Y: record.ExitY},
		Seed:      record.Seed,
		CreatedAt: record.CreatedAt,
	}
}
