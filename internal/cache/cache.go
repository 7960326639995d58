// Package cache stores serialized extraction results. Extraction is a pure
// function of the document text, so results are keyed by a hash of the
// normalized text and can be replayed for identical inputs.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the result-cache interface
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// TextKey derives the cache key for a normalized document text
func TextKey(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "stavex:v1:" + hex.EncodeToString(hash[:])
}
