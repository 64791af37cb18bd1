package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// CalculateChecksum hashes raw playlist text. Watch mode compares checksums
// between runs to skip sources that have not changed.
func CalculateChecksum(data string) string {
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
