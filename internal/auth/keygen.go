package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
)

// Admin key format: adm_{secret}
// Example: adm_4f8d2e1b9c7a5f3d2e1b9c7a5f3d2e1b9c7a5f3d
const (
	// KeySecretLen is the secret length (hex encoded 20 bytes).
	KeySecretLen = 40
)

var (
	// ErrInvalidKeyFormat indicates the key format is invalid.
	ErrInvalidKeyFormat = errors.New("invalid admin key format")
	// keyFormatRegex validates the key format.
	keyFormatRegex = regexp.MustCompile(`^adm_[a-f0-9]{40}$`)
)

// GeneratedKey contains the parts of a newly generated admin key.
type GeneratedKey struct {
	Plaintext string // Full key (show once only)
	Hash      string // Argon2id hash for ADMIN_KEY_HASH
}

// GenerateAdminKey creates a new admin key.
// Returns the plaintext key (to show once) and the hash (to configure).
func GenerateAdminKey() (*GeneratedKey, error) {
	secretBytes := make([]byte, KeySecretLen/2)
	if _, err := rand.Read(secretBytes); err != nil {
		return nil, fmt.Errorf("generate secret: %w", err)
	}

	plaintext := fmt.Sprintf("adm_%s", hex.EncodeToString(secretBytes))

	hash, err := HashKey(plaintext)
	if err != nil {
		return nil, fmt.Errorf("hash key: %w", err)
	}

	return &GeneratedKey{
		Plaintext: plaintext,
		Hash:      hash,
	}, nil
}

// ValidateKeyFormat checks if the key matches the expected format.
// Format is checked before the expensive argon2 verification so junk
// input is rejected cheaply.
func ValidateKeyFormat(key string) bool {
	return keyFormatRegex.MatchString(key)
}
