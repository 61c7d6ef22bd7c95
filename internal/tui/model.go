// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/internal/service"
	"github.com/MKhiriev/go-tab-keeper/internal/session"
	"github.com/MKhiriev/go-tab-keeper/models"
)

const statusTTL = 3 * time.Second

type screen int

const (
	screenFolders screen = iota
	screenFolder
	screenTabs
	screenInput
	screenShare
	screenShareResult
)

type inputMode int

const (
	inputSave inputMode = iota
	inputRename
)

type model struct {
	ctx      context.Context
	services *service.ClientServices
	session  *session.Session
	logger   *logger.Logger

	screen screen
	// back is the screen a modal returns to.
	back screen

	folders  list.Model
	folder   models.Folder
	tabs     []models.Tab
	cursor   int
	settings models.Settings

	input     textinput.Model
	inputMode inputMode
	password  textinput.Model
	shareURL  string

	confirm     confirmModel
	showConfirm bool

	busy        bool
	status      string
	statusIsErr bool
	statusSeq   int
	width       int
	height      int
}

func newModel(ctx context.Context, services *service.ClientServices, sess *session.Session, log *logger.Logger) model {
	input := textinput.New()
	input.Placeholder = "Folder name"
	input.CharLimit = 120

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return model{
		ctx:      ctx,
		services: services,
		session:  sess,
		logger:   log,
		screen:   screenFolders,
		folders:  newFolderList(),
		settings: sess.Settings(),
		input:    input,
		password: password,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadSettings(), m.cmdLoadFolders(), m.cmdLoadTabs())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.folders.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusIsErr = false
		}
		return m, nil

	case foldersLoadedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		return m, m.folders.SetItems(folderItems(msg.folders))

	case tabsLoadedMsg:
		if msg.err != nil && !errors.Is(msg.err, service.ErrNoTabs) {
			return m.fail(msg.err)
		}
		m.tabs = msg.tabs
		m.cursor = clampCursor(m.cursor, len(m.tabs))
		return m, nil

	case settingsMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.settings = msg.settings
		if msg.status == "" {
			return m, nil
		}
		return m.notify(msg.status)

	case copiedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		if msg.count == 0 {
			return m.notify("Link copied (" + msg.strategy + ")")
		}
		return m.notifyf("Copied %d %s (%s)", msg.count, plural(msg.count, "tab", "tabs"), msg.strategy)

	case folderSavedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		if m.screen == screenInput {
			m.screen = m.back
		}
		if m.screen == screenFolder {
			m.folder = msg.folder
			m.cursor = clampCursor(m.cursor, len(m.folder.Tabs))
		}
		next, cmd := m.notify(msg.status)
		return next, tea.Batch(cmd, m.cmdLoadFolders())

	case folderDeletedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.screen = screenFolders
		next, cmd := m.notify("Deleted \"" + msg.name + "\"")
		return next, tea.Batch(cmd, m.cmdLoadFolders())

	case openedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		return m.notifyf("Opened %d %s", msg.count, plural(msg.count, "tab", "tabs"))

	case sharedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.shareURL = msg.result.URL
		m.screen = screenShareResult
		if msg.result.Shortened {
			return m.notify("Short link ready")
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		switch m.screen {
		case screenFolders:
			return m.updateFolders(msg)
		case screenFolder:
			return m.updateFolder(msg)
		case screenTabs:
			return m.updateTabs(msg)
		case screenInput:
			return m.updateInput(msg)
		case screenShare:
			return m.updateShare(msg)
		case screenShareResult:
			return m.updateShareResult(msg)
		}
	}

	return m.forward(msg)
}

// forward hands messages the model does not consume to the focused widget.
func (m model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenFolders:
		m.folders, cmd = m.folders.Update(msg)
	case screenInput:
		m.input, cmd = m.input.Update(msg)
	case screenShare:
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// fail reports err on the status line and falls back from any modal to
// the screen it was opened from.
func (m model) fail(err error) (model, tea.Cmd) {
	m.busy = false
	m.logger.Err(err).Str("func", "tui.fail").Msg("action failed")

	switch m.screen {
	case screenInput, screenShare, screenShareResult:
		m.screen = m.back
	}
	m.password.Reset()
	m.password.Blur()
	m.input.Blur()

	m.statusSeq++
	m.status = humanizeError(err)
	m.statusIsErr = true
	return m, cmdClearStatus(m.statusSeq)
}

func (m model) notify(text string) (model, tea.Cmd) {
	m.statusSeq++
	m.status = text
	m.statusIsErr = false
	return m, cmdClearStatus(m.statusSeq)
}

func (m model) notifyf(format string, args ...any) (model, tea.Cmd) {
	return m.notify(fmt.Sprintf(format, args...))
}

func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}
