package crypto

import (
	"context"

	"github.com/MKhiriev/go-tab-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/share_cipher_mock.go -package=mock

// ShareCipher encrypts share payloads with a user password.
//
// Scheme:
//
//	salt, iv  = 16 and 12 random bytes, fresh for every call
//	key       = PBKDF2-HMAC-SHA256(password, salt, 100 000 iterations, 32 bytes)
//	d         = AES-256-GCM(key, iv, compress(plaintext))   (tag appended)
//	envelope  = {v: 1, s: b64url(salt), i: b64url(iv), d: b64url(d)}
//
// The password never leaves the caller; only salt and IV travel with the
// ciphertext.
type ShareCipher interface {
	// DeriveKey derives the 256-bit AES key for password and salt. The result
	// is deterministic for the same inputs.
	DeriveKey(password string, salt []byte) []byte

	// Encrypt compresses and encrypts plaintext. Every call uses a new salt
	// and IV, so two envelopes for the same input never share S or I.
	Encrypt(ctx context.Context, plaintext, password string) (models.Envelope, error)

	// Decrypt parses envelopeJSON, checks its version before touching any key
	// material and returns the original plaintext. A wrong password or a
	// tampered envelope yields [ErrDecryptionFailed].
	Decrypt(ctx context.Context, envelopeJSON, password string) (string, error)
}
