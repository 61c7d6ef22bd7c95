// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"
)

// BytesToBase64URL encodes b with the URL-safe alphabet and strips padding.
func BytesToBase64URL(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// Base64URLToBytes decodes unpadded URL-safe base64. Trailing '=' padding is
// tolerated so links produced by other encoders still decode.
func Base64URLToBytes(s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBase64, err)
	}
	return b, nil
}

// StringToBytes returns the UTF-8 bytes of s.
func StringToBytes(s string) []byte {
	return []byte(s)
}

// BytesToString converts UTF-8 bytes back to a string and rejects invalid
// sequences instead of silently replacing them.
func BytesToString(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}
