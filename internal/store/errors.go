// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the store layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrReadingStorage wraps any failure to read a key from the backend.
	// Callers keep their previous in-memory state when they see it.
	ErrReadingStorage = errors.New("failed to read from storage")

	// ErrWritingStorage wraps any failure to persist a key.
	ErrWritingStorage = errors.New("failed to write to storage")

	// ErrTabIndexOutOfRange is returned by RemoveTab for an index outside the
	// folder's tab list.
	ErrTabIndexOutOfRange = errors.New("tab index out of range")

	// ErrCustomFormatsUnsupported is returned when a custom format is added
	// for plain text output. Only markdown supports user formats.
	ErrCustomFormatsUnsupported = errors.New("custom formats are only supported for markdown")

	// ErrEmptyFormatPattern is returned when a custom format has no pattern.
	ErrEmptyFormatPattern = errors.New("format pattern must not be empty")

	// ErrUnknownStorageDriver is returned for an unsupported storage driver.
	ErrUnknownStorageDriver = errors.New("unknown storage driver")
)

// Low-level SQL errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
