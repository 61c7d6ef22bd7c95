// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-tab-keeper/internal/codec"
	"github.com/MKhiriev/go-tab-keeper/models"
)

const (
	// Iterations is the fixed PBKDF2 work factor. Changing it breaks every
	// link already shared, so it is bound to the envelope version.
	Iterations = 100_000
	SaltSize   = 16
	IVSize     = 12
	KeySize    = 32
)

// shareCipher is the private implementation of [ShareCipher].
type shareCipher struct {
	compressor codec.Compressor
	random     io.Reader

	// deriveKey is a field so tests can observe whether key derivation ran.
	deriveKey func(password string, salt []byte) []byte
}

// NewShareCipher constructs a [ShareCipher] compressing payloads with
// compressor. A nil compressor selects xz.
func NewShareCipher(compressor codec.Compressor) ShareCipher {
	if compressor == nil {
		compressor, _ = codec.NewCompressor(codec.CompressionXZ)
	}
	return &shareCipher{
		compressor: compressor,
		random:     rand.Reader,
		deriveKey:  pbkdf2SHA256,
	}
}

func pbkdf2SHA256(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, Iterations, KeySize, sha256.New)
}

// DeriveKey implements [ShareCipher].
func (c *shareCipher) DeriveKey(password string, salt []byte) []byte {
	return c.deriveKey(password, salt)
}

// Encrypt implements [ShareCipher].
func (c *shareCipher) Encrypt(ctx context.Context, plaintext, password string) (models.Envelope, error) {
	if password == "" {
		return models.Envelope{}, ErrEmptyPassword
	}

	// 1. Fresh salt and IV
	salt, err := c.randomBytes(SaltSize)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("generate salt: %w", err)
	}
	iv, err := c.randomBytes(IVSize)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("generate iv: %w", err)
	}

	if err = ctx.Err(); err != nil {
		return models.Envelope{}, err
	}

	// 2. Derive key
	key := c.deriveKey(password, salt)

	// 3. Compress
	compressed, err := c.compressor.Compress(plaintext)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("compress payload: %w", err)
	}

	// 4. Seal: ciphertext || tag
	gcm, err := newGCM(key)
	if err != nil {
		return models.Envelope{}, err
	}
	ciphertext := gcm.Seal(nil, iv, codec.StringToBytes(compressed), nil)

	return models.Envelope{
		V: models.EnvelopeVersion,
		S: codec.BytesToBase64URL(salt),
		I: codec.BytesToBase64URL(iv),
		D: codec.BytesToBase64URL(ciphertext),
	}, nil
}

// envelopeWire is models.Envelope with the version kept raw, so a
// non-integer version is reported by the version gate.
type envelopeWire struct {
	V json.RawMessage `json:"v"`
	S string          `json:"s"`
	I string          `json:"i"`
	D string          `json:"d"`
}

// Decrypt implements [ShareCipher].
func (c *shareCipher) Decrypt(ctx context.Context, envelopeJSON, password string) (string, error) {
	var env envelopeWire
	if err := json.Unmarshal([]byte(envelopeJSON), &env); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}

	// Fail closed on anything but the one layout we know, whatever JSON type
	// the version was written as.
	if v := bytes.TrimSpace(env.V); string(v) != strconv.Itoa(models.EnvelopeVersion) {
		if len(v) == 0 {
			v = []byte("missing")
		}
		return "", fmt.Errorf("%w: %s", ErrUnsupportedVersion, v)
	}

	if password == "" {
		return "", ErrEmptyPassword
	}

	salt, err := codec.Base64URLToBytes(env.S)
	if err != nil || len(salt) != SaltSize {
		return "", fmt.Errorf("%w: salt", ErrMalformedEnvelope)
	}
	iv, err := codec.Base64URLToBytes(env.I)
	if err != nil || len(iv) != IVSize {
		return "", fmt.Errorf("%w: iv", ErrMalformedEnvelope)
	}
	ciphertext, err := codec.Base64URLToBytes(env.D)
	if err != nil {
		return "", fmt.Errorf("%w: data", ErrMalformedEnvelope)
	}

	if err = ctx.Err(); err != nil {
		return "", err
	}

	key := c.deriveKey(password, salt)

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	// An error here almost always means a wrong password.
	compressed, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	compressedText, err := codec.BytesToString(compressed)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}

	plaintext, err := c.compressor.Decompress(compressedText)
	if err != nil {
		return "", fmt.Errorf("decompress payload: %w", err)
	}
	return plaintext, nil
}

func (c *shareCipher) randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(c.random, b); err != nil {
		return nil, err
	}
	return b, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
