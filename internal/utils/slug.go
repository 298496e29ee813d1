package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
	"unicode"
)

const slugSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Slugify turns a display name into a URL slug: lowercased, non-alphanumeric
// runs collapsed to single dashes, plus a short random suffix so two people
// named the same do not collide on the first try.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	base := strings.Trim(b.String(), "-")
	if base == "" {
		base = "profile"
	}
	return base + "-" + randomSuffix(4)
}

func randomSuffix(n int) string {
	var b strings.Builder
	max := big.NewInt(int64(len(slugSuffixAlphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			b.WriteByte('x')
			continue
		}
		b.WriteByte(slugSuffixAlphabet[idx.Int64()])
	}
	return b.String()
}
