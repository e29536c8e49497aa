package patrol

import "errors"

var (
	// ErrEmptyGrid indicates the map has no rows or a row with no columns.
	ErrEmptyGrid = errors.New("patrol: map must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("patrol: all rows must have the same length")
	// ErrInvalidCharacter indicates a map character outside '#', '.', '^'.
	ErrInvalidCharacter = errors.New("patrol: invalid character in map")
	// ErrMissingOrigin indicates no '^' was found in the map.
	ErrMissingOrigin = errors.New("patrol: no guard origin found in map")
	// ErrMultipleOrigins indicates more than one '^' was found in the map.
	ErrMultipleOrigins = errors.New("patrol: more than one guard origin in map")
	// ErrBaselineLoop indicates the unobstructed route never leaves the map.
	ErrBaselineLoop = errors.New("patrol: guard loops without any added obstruction")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("patrol: invalid option supplied")
)
