package inventory

import "errors"

var (
	// ErrContainerEmpty is returned when removing from an empty LIFO or FIFO container.
	ErrContainerEmpty = errors.New("container empty")

	// ErrInvalidCategory is returned for a category outside the fixed set.
	ErrInvalidCategory = errors.New("invalid category")
)
