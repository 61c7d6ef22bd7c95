// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecryptionFailed means the AES-GCM tag did not verify: the password
	// is wrong or the data was corrupted. Retrying with another password is
	// the right remedy.
	ErrDecryptionFailed = errors.New("wrong password or corrupted data")

	// ErrUnsupportedVersion is returned before any decryption attempt when the
	// envelope version is not [models.EnvelopeVersion].
	ErrUnsupportedVersion = errors.New("unsupported envelope version")

	// ErrMalformedEnvelope is returned when the envelope is not valid JSON or
	// one of its fields can not be decoded.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrEmptyPassword is returned when encryption or decryption is asked
	// for without a password.
	ErrEmptyPassword = errors.New("password must not be empty")
)
