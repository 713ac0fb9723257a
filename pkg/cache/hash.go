package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	// Full SHA-256 (64 hex chars) to prevent collisions.
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SummaryKey generates the cache key for a container membership summary.
// The scene hash covers all geometry and membership, so any edit to the
// scene produces a fresh key.
func SummaryKey(sceneHash, containerID string) string {
	return hashKey("summary", sceneHash, containerID)
}

// RenderKey generates the cache key for a rendered scene preview.
func RenderKey(sceneHash, format string) string {
	return hashKey("render", sceneHash, format)
}
