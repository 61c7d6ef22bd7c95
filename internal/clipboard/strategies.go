// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/MKhiriev/go-tab-keeper/internal/config"
)

// Strategy names.
const (
	StrategySystem = "system"
	StrategyOSC52  = "osc52"
	StrategyFile   = "file"
)

// ErrUnsupported is returned by a strategy that can not work in the current
// environment.
var ErrUnsupported = errors.New("not supported in this environment")

// New builds the default chain from cfg: the system clipboard, then the
// OSC 52 terminal sequence (unless disabled), then the fallback file.
func New(cfg config.Clipboard) *Chain {
	strategies := []Strategy{NewSystemStrategy()}
	if !cfg.DisableOSC52 {
		strategies = append(strategies, NewOSC52Strategy(os.Stderr, os.Getenv))
	}
	if cfg.FallbackFile != "" {
		strategies = append(strategies, NewFileStrategy(cfg.FallbackFile))
	}
	return NewChain(strategies...)
}

type systemStrategy struct {
	unsupported func() bool
	write       func(string) error
}

// NewSystemStrategy uses the OS clipboard (pbcopy, xclip/xsel/wl-copy,
// Windows API).
func NewSystemStrategy() Strategy {
	return &systemStrategy{
		unsupported: func() bool { return clipboard.Unsupported },
		write:       clipboard.WriteAll,
	}
}

func (s *systemStrategy) Name() string { return StrategySystem }

func (s *systemStrategy) Write(_ context.Context, text string) error {
	if s.unsupported() {
		return ErrUnsupported
	}
	return s.write(text)
}

type osc52Strategy struct {
	out    io.Writer
	getenv func(string) string
}

// NewOSC52Strategy writes an OSC 52 escape sequence to out, which most
// terminal emulators (also over SSH) turn into a clipboard write.
func NewOSC52Strategy(out io.Writer, getenv func(string) string) Strategy {
	return &osc52Strategy{out: out, getenv: getenv}
}

func (s *osc52Strategy) Name() string { return StrategyOSC52 }

func (s *osc52Strategy) Write(_ context.Context, text string) error {
	term := s.getenv("TERM")
	if term == "" || term == "dumb" {
		return ErrUnsupported
	}

	seq := osc52.New(text)
	switch {
	case s.getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(term, "screen"):
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(s.out); err != nil {
		return fmt.Errorf("write escape sequence: %w", err)
	}
	return nil
}

type fileStrategy struct {
	path string
}

// NewFileStrategy writes the text to path, replacing its content. It is the
// last resort: the user can still pick the text up from the file.
func NewFileStrategy(path string) Strategy {
	return &fileStrategy{path: path}
}

func (s *fileStrategy) Name() string { return StrategyFile }

func (s *fileStrategy) Write(_ context.Context, text string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(text), 0o600)
}
