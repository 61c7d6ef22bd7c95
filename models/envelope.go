// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EnvelopeVersion is the only envelope layout this build can decrypt.
const EnvelopeVersion = 1

// Envelope wraps an encrypted share payload.
//
// S, I and D are unpadded base64url strings: a 16 byte PBKDF2 salt, a 12 byte
// AES-GCM IV and the ciphertext with the authentication tag appended.
type Envelope struct {
	V int    `json:"v"`
	S string `json:"s"`
	I string `json:"i"`
	D string `json:"d"`
}
