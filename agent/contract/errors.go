package contract

import "errors"

var (
	// ErrClassificationUnavailable marks a delegated classification call that
	// failed (network, timeout, empty response). The invocation aborts; the
	// pipeline never guesses an intent.
	ErrClassificationUnavailable = errors.New("classification_unavailable")

	// ErrCompositionUnavailable marks a delegated composition call that
	// failed. The invocation aborts rather than emitting a partial reply.
	ErrCompositionUnavailable = errors.New("composition_unavailable")

	ErrValidation = errors.New("validation failed")
	ErrConfig     = errors.New("invalid configuration")
	ErrDataSource = errors.New("data source unavailable")
)
