package paper

import "errors"

var (
	// ErrPaperNotFound is returned when a paper does not exist
	ErrPaperNotFound = errors.New("paper not found")

	// ErrPaperInactive is returned when an operation requires an active paper
	ErrPaperInactive = errors.New("paper is not active")
)
