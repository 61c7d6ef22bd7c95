// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
)

// Compression names accepted by [NewCompressor].
const (
	CompressionXZ   = "xz"
	CompressionNone = "none"
)

// xzMagic opens every xz stream. 0xFD can not start a valid UTF-8 sequence,
// so it never collides with the uncompressed fallback form.
var xzMagic = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}

// Compressor turns text into a shorter URL-safe text and back.
type Compressor interface {
	Compress(text string) (string, error)
	Decompress(compressed string) (string, error)
	Name() string
}

// NewCompressor returns the compressor registered under name. An empty name
// selects xz.
func NewCompressor(name string) (Compressor, error) {
	switch name {
	case "", CompressionXZ:
		return xzCompressor{}, nil
	case CompressionNone:
		return plainCompressor{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
	}
}

type xzCompressor struct{}

func (xzCompressor) Name() string { return CompressionXZ }

// Compress writes text through an xz stream and base64url-encodes the result.
func (xzCompressor) Compress(text string) (string, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return "", fmt.Errorf("create xz writer: %w", err)
	}
	if _, err = io.WriteString(w, text); err != nil {
		return "", fmt.Errorf("write xz stream: %w", err)
	}
	if err = w.Close(); err != nil {
		return "", fmt.Errorf("close xz stream: %w", err)
	}
	return BytesToBase64URL(buf.Bytes()), nil
}

func (xzCompressor) Decompress(compressed string) (string, error) {
	return decompress(compressed)
}

// plainCompressor is the degraded mode: base64url of the raw UTF-8 bytes.
// It does not shrink anything but round-trips losslessly.
type plainCompressor struct{}

func (plainCompressor) Name() string { return CompressionNone }

func (plainCompressor) Compress(text string) (string, error) {
	return BytesToBase64URL(StringToBytes(text)), nil
}

func (plainCompressor) Decompress(compressed string) (string, error) {
	return decompress(compressed)
}

// decompress accepts both the xz and the plain form, so a payload written in
// degraded mode opens on any build.
func decompress(compressed string) (string, error) {
	raw, err := Base64URLToBytes(compressed)
	if err != nil {
		return "", err
	}

	if !bytes.HasPrefix(raw, xzMagic) {
		return BytesToString(raw)
	}

	r, err := xz.NewReader(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorruptedStream, err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorruptedStream, err)
	}
	return BytesToString(out)
}
