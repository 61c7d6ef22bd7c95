// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clipboard writes text to the user's clipboard through an ordered
// list of strategies. The first strategy that succeeds wins; its name is
// reported in [Result] so callers can tell the user where the text went.
package clipboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tab-keeper/internal/logger"
)

//go:generate mockgen -source=clipboard.go -destination=../mock/clipboard_mock.go -package=mock

// ErrAllStrategiesFailed is returned when no strategy could take the text.
// The individual failures are joined to it.
var ErrAllStrategiesFailed = errors.New("clipboard: all strategies failed")

// Strategy is one way of delivering text to the clipboard.
type Strategy interface {
	Name() string
	Write(ctx context.Context, text string) error
}

// Copier places text on the clipboard.
type Copier interface {
	Copy(ctx context.Context, text string) (Result, error)
}

// Result describes a successful copy.
type Result struct {
	// Strategy is the name of the strategy that took the text.
	Strategy string
	// Skipped lists the strategies that failed before it, in order.
	Skipped []string
}

// Chain tries its strategies in order.
type Chain struct {
	strategies []Strategy
}

// NewChain returns a [Copier] trying strategies in the given order.
func NewChain(strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies}
}

func (c *Chain) Copy(ctx context.Context, text string) (Result, error) {
	log := logger.FromContext(ctx)

	var (
		errs    []error
		skipped []string
	)
	for _, s := range c.strategies {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		err := s.Write(ctx, text)
		if err == nil {
			log.Debug().
				Str("func", "Chain.Copy").
				Str("strategy", s.Name()).
				Strs("skipped", skipped).
				Msg("text copied")
			return Result{Strategy: s.Name(), Skipped: skipped}, nil
		}

		log.Debug().Err(err).
			Str("func", "Chain.Copy").
			Str("strategy", s.Name()).
			Msg("clipboard strategy failed")
		skipped = append(skipped, s.Name())
		errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
	}

	return Result{}, errors.Join(append([]error{ErrAllStrategiesFailed}, errs...)...)
}
