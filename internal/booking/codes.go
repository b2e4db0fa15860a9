package booking

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strings"
)

// codeCharset is the alphabet booking codes are drawn from.
const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodePrefix is the fixed booking-code prefix spoken to callers.
const CodePrefix = "NL-"

// PlaceholderCode is used for the secure link before any booking code exists.
const PlaceholderCode = "NL-XXXX"

var codeRE = regexp.MustCompile(`\bNL-[A-Z0-9]{4}\b`)

// GenerateCode returns a fresh booking code, NL- plus four characters drawn
// uniformly from uppercase letters and digits. Codes are demo-grade: there is
// no uniqueness check against previously issued codes.
func GenerateCode() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; keep the contract total.
		panic(fmt.Sprintf("booking: read random bytes: %v", err))
	}
	var b strings.Builder
	b.WriteString(CodePrefix)
	for _, c := range buf {
		b.WriteByte(codeCharset[int(c)%len(codeCharset)])
	}
	return b.String()
}

// ExtractCode finds the first booking-code literal in text, case-insensitively.
// Returns the uppercased code and whether one was found.
func ExtractCode(text string) (string, bool) {
	m := codeRE.FindString(strings.ToUpper(text))
	if m == "" {
		return "", false
	}
	return m, true
}

// SecureLink builds the out-of-band URL for collecting contact details.
func SecureLink(base, code string) string {
	return fmt.Sprintf("%s?code=%s", base, code)
}
