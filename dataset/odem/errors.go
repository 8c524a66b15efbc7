// SPDX-License-Identifier: MIT
// Package odem: sentinel errors.

package odem

import "errors"

var (
	// ErrContainerCount indicates a document whose context does not hold
	// exactly one container.
	ErrContainerCount = errors.New("odem: document must contain exactly one container")

	// ErrInvalidDocument indicates a structurally valid XML file carrying
	// values outside the ODEM vocabulary.
	ErrInvalidDocument = errors.New("odem: invalid document")

	// ErrUnknownGranularity indicates an unrecognised granularity name.
	ErrUnknownGranularity = errors.New("odem: unknown granularity")
)
