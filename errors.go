package benchsample

import "errors"

var (
	// ErrInvalidRatio is returned when the sample ratio is outside (0, 1].
	// It is fatal and raised before any file is touched.
	ErrInvalidRatio = errors.New("sample ratio must be in (0, 1]")

	// ErrInsufficientData is returned when a sample is requested from an
	// empty population. At the batch level it is contained per file.
	ErrInsufficientData = errors.New("insufficient data: population is empty")

	// ErrMissingSource is returned by Runner.Run when the source store does
	// not exist; nothing is processed.
	ErrMissingSource = errors.New("source does not exist")
)
