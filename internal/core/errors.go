package core

import "errors"

var (
	// ErrInvalidParameter is returned for a time quantum below 1, a burst time below 1
	// or a workload whose schedule would not fit in an int.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrMalformedProcess is returned by NewWorkload for duplicate ids or negative arrival times.
	ErrMalformedProcess = errors.New("malformed process")
	// ErrUnknownAlgorithm is returned when an algorithm name matches none of Algorithms.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
