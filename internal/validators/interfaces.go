// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the payloads that reach the background daemon
// before they are dispatched to services.
//
// A Validator accepts any supported value and an optional list of field
// names. When fields are given only those are checked, otherwise the
// type's default set is used.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
