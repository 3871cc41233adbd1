// SPDX-License-Identifier: MIT
// Package naca: sentinel error set.
// Every exported function returns one of these, possibly wrapped with
// fmt.Errorf("naca.<Op>(...): %w", ErrX). Match with errors.Is.

package naca

import "errors"

var (
	// ErrInvalidFormat indicates a designator containing non-digit characters
	// (or no characters at all).
	ErrInvalidFormat = errors.New("naca: designator must contain only digits")

	// ErrUnsupportedDigitCount indicates a designator that is neither 4 nor 5
	// digits long, or a Params value of neither family.
	ErrUnsupportedDigitCount = errors.New("naca: only 4 or 5 digit profiles are supported")

	// ErrDomain indicates parameters outside the domain of the published
	// formulas, or a computation that would yield non-finite coordinates.
	ErrDomain = errors.New("naca: parameter outside formula domain")

	// ErrInvalidSampleCount indicates a half-chord sample count below 1.
	ErrInvalidSampleCount = errors.New("naca: sample count must be >= 1")

	// ErrLengthMismatch indicates per-station input sequences of different lengths.
	ErrLengthMismatch = errors.New("naca: input sequences differ in length")
)
