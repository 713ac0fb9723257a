package scene

import (
	"crypto/sha256"
	"encoding/hex"
)

// contentHash returns the full SHA-256 hex digest of data.
func contentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
