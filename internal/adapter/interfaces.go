// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the HTTP collaborators of tabkeeper: the
// link-shortening service and the local background daemon.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go so callers can use [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-tab-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Shortener turns a long share URL into a short one. Implementations fail
// fast: no retries, a bounded timeout.
type Shortener interface {
	// Shorten posts longURL to the service and returns the short URL built
	// from the returned share id.
	Shorten(ctx context.Context, longURL string) (string, error)
}

// BackgroundClient sends messages to a running background daemon.
type BackgroundClient interface {
	// Send delivers msg and returns the daemon reply. A reply with OK=false
	// is returned together with a non-nil error.
	Send(ctx context.Context, msg models.Message) (models.MessageReply, error)

	// Selection returns the tabs last reported as selected.
	Selection(ctx context.Context) ([]models.Tab, error)

	// Version returns the daemon build metadata; also used as a liveness
	// probe.
	Version(ctx context.Context) (models.VersionResponse, error)
}
