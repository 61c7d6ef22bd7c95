// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains reply messages shared by the daemon handlers and
// middleware.
package app

const (
	// MsgInternalError replaces the error text of any reply that ends with
	// a 5xx status, so storage paths and driver errors stay in the log.
	MsgInternalError = "internal error"
)
