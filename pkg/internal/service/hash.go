// Package service implements the organization engine and the snapshot,
// archive, stats and rule-configuration services behind the HTTP handlers.
package service

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashBytes returns the lowercase hex SHA-256 digest of the content. The
// digest is the duplicate-detection key: same bytes, same digest.
func HashBytes(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
