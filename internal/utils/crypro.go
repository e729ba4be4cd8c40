package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the hex-encoded sha256 digest of data. It serves both as the
// review content fingerprint and as a deterministic firestore doc id.
func Hash(data string) string {
	hash := sha256.New()
	hash.Write([]byte(data))
	return hex.EncodeToString(hash.Sum(nil))
}
