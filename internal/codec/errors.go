package codec

import "errors"

var (
	// ErrInvalidBase64 is returned when a value is not valid base64url.
	ErrInvalidBase64 = errors.New("invalid base64url data")
	// ErrInvalidUTF8 is returned when decoded bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 data")
	// ErrCorruptedStream is returned when a compressed payload can not be
	// inflated.
	ErrCorruptedStream = errors.New("corrupted compressed payload")
	// ErrUnknownCompression is returned by [NewCompressor] for an unknown
	// compression name.
	ErrUnknownCompression = errors.New("unknown compression")
)
