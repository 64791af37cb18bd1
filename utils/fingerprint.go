package utils

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// StreamFingerprint returns a stable identifier for a stream URL. Two
// entries with the same URL always produce the same fingerprint, which is
// what deduplication and the verdict cache key on.
func StreamFingerprint(url string) string {
	hash := sha3.Sum224([]byte(url))
	return hex.EncodeToString(hash[:])
}
