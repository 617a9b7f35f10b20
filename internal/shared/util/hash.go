package util

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// HashUserKey returns a filesystem-safe identifier for a user ID.
func HashUserKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// HashPayload returns a stable hex digest of a JSON payload, used to
// fingerprint resume submissions.
func HashPayload(payload map[string]any) string {
	data, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
