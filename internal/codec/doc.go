// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec converts share payloads between text and bytes.
//
// It provides the URL-safe base64 variant used on the wire (no padding on
// encode, padding tolerated on decode), strict UTF-8 conversion, and the
// [Compressor] implementations applied to the plaintext before encryption.
package codec
