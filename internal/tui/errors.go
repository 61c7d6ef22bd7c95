// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-tab-keeper/internal/clipboard"
	"github.com/MKhiriev/go-tab-keeper/internal/service"
	"github.com/MKhiriev/go-tab-keeper/internal/store"
)

var errorMessages = []struct {
	err  error
	text string
}{
	{service.ErrNoTabs, "No open tabs"},
	{service.ErrNoTabsSelected, "No tabs selected"},
	{service.ErrFolderNotFound, "Folder no longer exists"},
	{service.ErrEmptyFolderName, "Folder name is required"},
	{service.ErrEmptyPassword, "Password is required"},
	{service.ErrNothingToOpen, "Folder is empty"},
	{service.ErrOpeningTabs, "Some tabs could not be opened"},
	{store.ErrTabIndexOutOfRange, "Tab is already gone"},
	{clipboard.ErrAllStrategiesFailed, "Clipboard is unavailable"},
}

func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.text
		}
	}
	return err.Error()
}
