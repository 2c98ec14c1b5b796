package ml

import "errors"

var (
	// ErrExtractionFailed means the (student, course) pair is missing a
	// student, course or enrollment row. Callers skip the pair instead of
	// aborting a batch.
	ErrExtractionFailed = errors.New("feature extraction failed")

	// ErrModelNotTrained means no artifact pair has been persisted yet.
	ErrModelNotTrained = errors.New("model not trained")

	// ErrInsufficientData means the labeled dataset is below the training
	// floor; no artifacts were written.
	ErrInsufficientData = errors.New("insufficient training data")
)
