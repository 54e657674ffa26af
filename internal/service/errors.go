package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrIncompleteTransaction is returned by the calculator when it is handed
	// a transaction without cost or time. Validation rejects such input
	// earlier, so reaching it means the validation step was skipped.
	ErrIncompleteTransaction = errors.New("transaction without cost or time reached the calculator")

	ErrCostTooLarge   = errors.New("transaction cost exceeds the largest rewardable cost")
	ErrPointsOverflow = errors.New("reward points overflow")
)
