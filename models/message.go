// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Action discriminates the messages exchanged with the background daemon.
type Action string

const (
	ActionTabsSelected    Action = "tabsSelected"
	ActionCopyToClipboard Action = "copyToClipboard"
	ActionOpenFolder      Action = "openFolder"
	ActionCopyAllTabs     Action = "copyAllTabs"
)

var (
	// ErrUnknownAction is returned when a message carries an action this
	// build does not know about.
	ErrUnknownAction = errors.New("unknown message action")
	// ErrInvalidMessage is returned when a known action misses its payload.
	ErrInvalidMessage = errors.New("invalid message payload")
)

// Message is the closed set of messages understood by the background
// daemon. Only types declared in this package implement it, so a type
// switch over TabsSelected, CopyToClipboard, OpenFolder and CopyAllTabs is
// exhaustive.
type Message interface {
	Action() Action
	isMessage()
}

// TabsSelected reports the tabs currently highlighted by the user.
type TabsSelected struct {
	Tabs []Tab
}

// CopyToClipboard asks the daemon to place Text on the clipboard.
type CopyToClipboard struct {
	Text string
}

// OpenFolder asks the daemon to open every tab of a folder.
type OpenFolder struct {
	FolderID string
}

// CopyAllTabs is the keyboard shortcut: copy every open tab with the saved
// settings, without any UI.
type CopyAllTabs struct{}

func (TabsSelected) Action() Action    { return ActionTabsSelected }
func (CopyToClipboard) Action() Action { return ActionCopyToClipboard }
func (OpenFolder) Action() Action      { return ActionOpenFolder }
func (CopyAllTabs) Action() Action     { return ActionCopyAllTabs }

func (TabsSelected) isMessage()    {}
func (CopyToClipboard) isMessage() {}
func (OpenFolder) isMessage()      {}
func (CopyAllTabs) isMessage()     {}

type messageWire struct {
	Action   Action `json:"action"`
	Tabs     []Tab  `json:"tabs,omitempty"`
	Text     string `json:"text,omitempty"`
	FolderID string `json:"folderId,omitempty"`
}

// EncodeMessage serializes m as {"action": "...", ...payload}.
func EncodeMessage(m Message) ([]byte, error) {
	wire := messageWire{}
	switch msg := m.(type) {
	case TabsSelected:
		wire.Action = ActionTabsSelected
		wire.Tabs = msg.Tabs
	case CopyToClipboard:
		wire.Action = ActionCopyToClipboard
		wire.Text = msg.Text
	case OpenFolder:
		wire.Action = ActionOpenFolder
		wire.FolderID = msg.FolderID
	case CopyAllTabs:
		wire.Action = ActionCopyAllTabs
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownAction, m)
	}
	return json.Marshal(wire)
}

// DecodeMessage parses a message produced by [EncodeMessage].
func DecodeMessage(data []byte) (Message, error) {
	var wire messageWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode message: %w", err)
	}

	switch wire.Action {
	case ActionTabsSelected:
		tabs := wire.Tabs
		if tabs == nil {
			tabs = []Tab{}
		}
		return TabsSelected{Tabs: tabs}, nil
	case ActionCopyToClipboard:
		return CopyToClipboard{Text: wire.Text}, nil
	case ActionOpenFolder:
		if wire.FolderID == "" {
			return nil, fmt.Errorf("%w: openFolder without folderId", ErrInvalidMessage)
		}
		return OpenFolder{FolderID: wire.FolderID}, nil
	case ActionCopyAllTabs:
		return CopyAllTabs{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, wire.Action)
	}
}
