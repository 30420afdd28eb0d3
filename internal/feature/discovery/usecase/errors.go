package usecase

import "errors"

var (
	// ErrUnknownTechArea is returned when a requested area is not in the technology area list.
	ErrUnknownTechArea = errors.New("unknown technology area")
)
