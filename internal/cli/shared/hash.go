package shared

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// SHA256Hex returns the lowercase hex sha256 of content, as stored in manifest entries.
func SHA256Hex(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// BLAKE3Hex returns the lowercase hex blake3 of content. Backup copies are
// compared by this digest before any target is cleared.
func BLAKE3Hex(content []byte) string {
	sum := blake3.Sum256(content)
	return hex.EncodeToString(sum[:])
}
