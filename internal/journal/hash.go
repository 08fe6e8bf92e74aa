package journal

import (
	"crypto/sha256"
	"encoding/hex"
)

// DomainExport prefixes export digests. The version suffix allows a future
// algorithm change without ambiguity.
const DomainExport = "clampvec/export/v1"

// Digest returns the hex SHA-256 of content with domain separation.
// Format: SHA256(domain + 0x00 + content)
func Digest(content []byte) string {
	h := sha256.New()
	h.Write([]byte(DomainExport))
	h.Write([]byte{0x00})
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}
