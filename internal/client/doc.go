// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the composition root of tabkeeper.
//
// [NewApp] turns the merged configuration into a logger, storage, the share
// pipeline, the host adapters and the service layer. The CLI, the TUI and
// the daemon all start from an [App].
package client
