package utils

import (
	"crypto/rand"
	"math/big"
)

// Alphabet for confirmation code suffixes. 0/O and 1/I are left out because
// the codes are read back over the phone.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeSuffixLength = 6

// ConfirmationCode builds a short display reference like "FL4X9Q2C" from a
// two-letter kind prefix and a random alphanumeric suffix. Codes are labels
// for humans, not keys: uniqueness is not enforced.
func ConfirmationCode(prefix string) (string, error) {
	suffix := make([]byte, codeSuffixLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		suffix[i] = codeAlphabet[n.Int64()]
	}
	return prefix + string(suffix), nil
}
