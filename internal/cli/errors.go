package cli

import "errors"

var (
	ErrAmbiguousFolder   = errors.New("more than one folder has that name")
	ErrUnknownSetting    = errors.New("unknown setting")
	ErrUnknownKind       = errors.New("unknown output kind")
	ErrInvalidTabNumber  = errors.New("tab number must be a positive integer")
	ErrNoTabSource       = errors.New("no tab source configured, pass --tabs")
	ErrUnsupportedOutput = errors.New("unsupported --output value, use 'json'")
)
