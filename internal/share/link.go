// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package share

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tab-keeper/internal/codec"
	"github.com/MKhiriev/go-tab-keeper/internal/crypto"
	"github.com/MKhiriev/go-tab-keeper/models"
)

const (
	// ViewerPage is the page of the viewer site that decrypts links.
	ViewerPage = "share.html"

	fragmentKey = "data"
)

// Links builds and opens share links for one viewer site.
type Links struct {
	cipher    crypto.ShareCipher
	viewerURL string
}

// NewLinks returns [Links] encrypting with cipher and pointing at the
// viewer hosted under viewerURL.
func NewLinks(cipher crypto.ShareCipher, viewerURL string) *Links {
	return &Links{
		cipher:    cipher,
		viewerURL: strings.TrimRight(viewerURL, "/"),
	}
}

// BuildShareURL encrypts folder with password and returns the long share
// URL.
func (l *Links) BuildShareURL(ctx context.Context, folder models.Folder, password string) (string, error) {
	if folder.Tabs == nil {
		folder.Tabs = []models.CompactTab{}
	}

	plaintext, err := json.Marshal(folder)
	if err != nil {
		return "", fmt.Errorf("encode folder: %w", err)
	}

	envelope, err := l.cipher.Encrypt(ctx, string(plaintext), password)
	if err != nil {
		return "", err
	}

	envelopeJSON, err := json.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("encode envelope: %w", err)
	}

	return l.viewerURL + "/" + ViewerPage + "#" + fragmentKey + "=" + codec.BytesToBase64URL(envelopeJSON), nil
}

// OpenShareURL parses raw, decrypts it with password and returns the shared
// folder.
func (l *Links) OpenShareURL(ctx context.Context, raw, password string) (models.Folder, error) {
	envelopeJSON, err := ParseShareURL(raw)
	if err != nil {
		return models.Folder{}, err
	}

	plaintext, err := l.cipher.Decrypt(ctx, envelopeJSON, password)
	if err != nil {
		return models.Folder{}, err
	}

	var folder models.Folder
	if err = json.Unmarshal([]byte(plaintext), &folder); err != nil {
		return models.Folder{}, fmt.Errorf("%w: %w", ErrInvalidFolder, err)
	}
	if folder.Tabs == nil {
		folder.Tabs = []models.CompactTab{}
	}
	return folder, nil
}

// ParseShareURL extracts the envelope JSON from a share link. raw may be a
// full URL, a "#data=..." fragment or a bare "data=..." value. Padded and
// unpadded base64url are both accepted.
func ParseShareURL(raw string) (string, error) {
	fragment := strings.TrimSpace(raw)
	if idx := strings.Index(fragment, "#"); idx >= 0 {
		fragment = fragment[idx+1:]
	}

	var payload string
	found := false
	for _, part := range strings.Split(fragment, "&") {
		if value, ok := strings.CutPrefix(part, fragmentKey+"="); ok {
			payload, found = value, true
			break
		}
	}
	if !found || payload == "" {
		return "", ErrMissingPayload
	}

	data, err := codec.Base64URLToBytes(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	envelopeJSON, err := codec.BytesToString(data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return envelopeJSON, nil
}
