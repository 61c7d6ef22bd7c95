package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyText     = errors.New("nothing to copy")
	ErrEmptyFolderID = errors.New("folder id is required")
	ErrEmptyTabURL   = errors.New("tab url is required")
	ErrInvalidTabID  = errors.New("invalid tab id")
	ErrDuplicateTab  = errors.New("duplicate tab id")
	ErrTooManyTabs   = errors.New("too many tabs")
)
