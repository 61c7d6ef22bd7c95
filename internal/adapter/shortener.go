// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-tab-keeper/internal/config"
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/internal/utils"
	"github.com/MKhiriev/go-tab-keeper/models"
)

type httpShortener struct {
	client  *utils.HTTPClient
	baseURL string
}

// NewHTTPShortener returns a [Shortener] for the service at cfg.URL:
// POST {base}/link with {"data": url}, reply {"share_id": id}, short URL
// {base}/link/{id}. The client never retries.
func NewHTTPShortener(cfg config.Shortener) (Shortener, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid shortener url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.Timeout)
	return &httpShortener{client: client, baseURL: baseURL}, nil
}

func (s *httpShortener) Shorten(ctx context.Context, longURL string) (string, error) {
	var result models.ShortenResponse

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ShortenRequest{Data: longURL}).
		SetResult(&result).
		Post("/link")
	if err != nil {
		return "", fmt.Errorf("shorten request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	shareID := strings.TrimSpace(result.ShareID)
	if shareID == "" {
		return "", ErrEmptyShareID
	}

	logger.FromContext(ctx).Debug().
		Str("func", "httpShortener.Shorten").
		Str("share_id", shareID).
		Msg("link shortened")

	return s.baseURL + "/link/" + url.PathEscape(shareID), nil
}
