// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrInvalidPoints indicates a half-chord sample count below 1.
	ErrInvalidPoints = errors.New("config: points must be >= 1")

	// ErrInvalidWorkers indicates a worker count below 1.
	ErrInvalidWorkers = errors.New("config: workers must be >= 1")

	// ErrNoProfiles indicates an empty profiles list.
	ErrNoProfiles = errors.New("config: no profiles configured")

	// ErrInvalidProfile indicates a profile entry that is neither a
	// designator nor the canonical keyword.
	ErrInvalidProfile = errors.New("config: invalid profile")
)
