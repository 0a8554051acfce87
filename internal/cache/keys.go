package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// KeyPrefix constants for different cache types
const (
	PrefixReport = "report"
)

// ContentHash returns the hex SHA256 of the raw manifest bytes. Keying by
// content means any edit to the manifest misses the cache; invalidation
// beyond TTL is the caller's responsibility.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ReportKey generates the cache key for an audit report of the given
// manifest content
func ReportKey(data []byte) string {
	return PrefixReport + ":" + ContentHash(data)
}
