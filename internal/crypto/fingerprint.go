package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"bifid/internal/domain"
)

// fingerprintBytes is the truncated digest length (20 hex chars).
const fingerprintBytes = 10

// FingerprintSquare returns a short hex fingerprint of a square layout given
// as its letters read row-major.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes.
func FingerprintSquare(letters string) domain.Fingerprint {
	sum := blake2b.Sum256([]byte(letters))
	return domain.Fingerprint(hex.EncodeToString(sum[:fingerprintBytes]))
}
