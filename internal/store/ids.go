package store

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

const idPrefix = "rm-"

// NormalizeID ensures a reminder ID has the rm- prefix.
// Accepts bare hex IDs like "a1b2c3" and returns "rm-a1b2c3".
func NormalizeID(id string) string {
	if id == "" {
		return id
	}
	if !strings.HasPrefix(id, idPrefix) {
		return idPrefix + id
	}
	return id
}

// generateID generates a unique reminder ID
func generateID() (string, error) {
	bytes := make([]byte, 3) // 6 hex characters - balances brevity with collision resistance
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return idPrefix + hex.EncodeToString(bytes), nil
}
