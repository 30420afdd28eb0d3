package usecase

import "errors"

var (
	// ErrUnknownTechArea is returned when a filter is not in the technology area list.
	ErrUnknownTechArea = errors.New("unknown technology area")
)
