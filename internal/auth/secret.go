package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateSessionSecret creates a random 32-byte secret, hex encoded.
func GenerateSessionSecret() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRFKey turns the configured secret into key bytes. Hex strings are
// decoded, anything else is used as is. An empty secret yields a random key
// and generated=true; tokens then stop validating on restart.
func CSRFKey(secret string) (key []byte, generated bool, err error) {
	if secret == "" {
		secret, err = GenerateSessionSecret()
		if err != nil {
			return nil, false, err
		}
		generated = true
	}
	key, err = hex.DecodeString(secret)
	if err != nil {
		// Not hex, use as raw bytes
		return []byte(secret), generated, nil
	}
	return key, generated, nil
}
