package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex returns the hex-encoded SHA256 hash of the input string.
func SHA256Hex(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}

// ShortHash returns the first prefixLen characters of SHA256Hex(input).
// Used to anonymize client IPs in logs while keeping them correlatable.
func ShortHash(input string, prefixLen int) string {
	full := SHA256Hex(input)
	if prefixLen > len(full) {
		return full
	}
	return full[:prefixLen]
}
