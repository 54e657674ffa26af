// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "time"

// Clock supplies the reference "now" for time-dependent business rules.
// Rules receive a Clock instead of calling time.Now directly so that they can
// be evaluated against a pinned instant in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// NewSystemClock returns a Clock backed by time.Now.
func NewSystemClock() Clock {
	return SystemClock{}
}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

// NewFixedClock returns a Clock pinned to at.
func NewFixedClock(at time.Time) Clock {
	return FixedClock{At: at}
}

// Now returns the pinned instant.
func (c FixedClock) Now() time.Time {
	return c.At
}
