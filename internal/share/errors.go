package share

import "errors"

var (
	// ErrMissingPayload is returned when a link carries no data= value.
	ErrMissingPayload = errors.New("share link has no data payload")

	// ErrInvalidPayload is returned when the data= value is not base64url
	// encoded UTF-8.
	ErrInvalidPayload = errors.New("share link payload is malformed")

	// ErrInvalidFolder is returned when the decrypted payload is not a
	// folder.
	ErrInvalidFolder = errors.New("shared payload is not a folder")
)
