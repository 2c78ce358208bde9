package cryptox

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Crockford base32 alphabet without the ambiguous I, L, O, U. Codes are
// typed or pasted by humans, so every character must survive handwriting.
const codeAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// DefaultCodeLength is the number of alphabet characters in a generated
// invite code (excluding the separator). 16 characters of a 32-symbol
// alphabet gives 80 bits of entropy.
const DefaultCodeLength = 16

// GenerateCode returns a random human-shareable code of n alphabet
// characters, grouped in fours: "XXXX-XXXX-XXXX-XXXX".
func GenerateCode(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("code length must be positive, got %d", n)
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random code: %w", err)
	}

	var b strings.Builder
	b.Grow(n + n/4)
	for i, c := range buf {
		if i > 0 && i%4 == 0 {
			b.WriteByte('-')
		}
		b.WriteByte(codeAlphabet[int(c)%len(codeAlphabet)])
	}

	return b.String(), nil
}

// NormalizeCode upper-cases a user-supplied code and maps the characters the
// alphabet deliberately excludes onto their look-alikes, so "inv1-..." and
// "INVL-..." resolve to the same stored code.
func NormalizeCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	replacer := strings.NewReplacer("I", "1", "L", "1", "O", "0", "U", "V")
	return replacer.Replace(code)
}
