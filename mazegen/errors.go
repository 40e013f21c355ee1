package mazegen

import "errors"

var (
	// ErrInvalidDimensions reports a non-positive width or height.
	ErrInvalidDimensions = errors.New("maze dimensions must be positive")

	// ErrInvalidWeights reports a negative or all-zero branch weight set.
	ErrInvalidWeights = errors.New("invalid branch weights")

	// ErrNoQualifyingExit reports that no border cell lies farther from the
	// start than the minimum exit distance. No maze is returned alongside
	// it; callers may retry with another seed or a relaxed minimum.
	ErrNoQualifyingExit = errors.New("no border cell satisfies the minimum exit distance")
)
