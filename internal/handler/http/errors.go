// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrMessageTooLarge is returned when a message body exceeds
	// maxMessageSize.
	ErrMessageTooLarge = errors.New("message too large")
)
