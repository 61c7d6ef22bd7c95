package service

import "errors"

var (
	ErrFolderNotFound  = errors.New("folder not found")
	ErrFormatNotFound  = errors.New("format not found")
	ErrEmptyFolderName = errors.New("folder name must not be empty")
	ErrEmptyPassword   = errors.New("password must not be empty")
	ErrNoTabs          = errors.New("no tabs to work with")
	ErrNoTabsSelected  = errors.New("no tabs selected")
	ErrNothingToOpen   = errors.New("folder has no tabs to open")
	ErrOpeningTabs     = errors.New("failed to open some tabs")
)
