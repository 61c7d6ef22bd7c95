package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-tab-keeper/internal/config"
	"github.com/MKhiriev/go-tab-keeper/internal/utils"
	"github.com/MKhiriev/go-tab-keeper/models"
)

type httpBackgroundClient struct {
	client *utils.HTTPClient
}

// NewHTTPBackgroundClient returns a [BackgroundClient] for the daemon
// listening on cfg.Address.
func NewHTTPBackgroundClient(cfg config.Daemon) (BackgroundClient, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid daemon address: %w", err)
	}

	return &httpBackgroundClient{client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout)}, nil
}

func (b *httpBackgroundClient) Send(ctx context.Context, msg models.Message) (models.MessageReply, error) {
	body, err := models.EncodeMessage(msg)
	if err != nil {
		return models.MessageReply{}, err
	}

	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/api/messages")
	if err != nil {
		return models.MessageReply{}, fmt.Errorf("send %s: %w", msg.Action(), err)
	}

	var reply models.MessageReply
	decodeErr := json.Unmarshal(resp.Body(), &reply)

	if err = mapHTTPError(resp); err != nil {
		if decodeErr == nil && reply.Error != "" {
			return reply, fmt.Errorf("%w: %s (%w)", ErrActionFailed, reply.Error, err)
		}
		return reply, err
	}
	if decodeErr != nil {
		return models.MessageReply{}, fmt.Errorf("decode %s reply: %w", msg.Action(), decodeErr)
	}
	if !reply.OK {
		return reply, fmt.Errorf("%w: %s", ErrActionFailed, reply.Error)
	}
	return reply, nil
}

func (b *httpBackgroundClient) Selection(ctx context.Context) ([]models.Tab, error) {
	var result models.SelectionResponse

	resp, err := b.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/selection")
	if err != nil {
		return nil, fmt.Errorf("selection request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if result.Tabs == nil {
		return []models.Tab{}, nil
	}
	return result.Tabs, nil
}

func (b *httpBackgroundClient) Version(ctx context.Context) (models.VersionResponse, error) {
	var result models.VersionResponse

	resp, err := b.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}
	return result, nil
}
