package pipeline

import (
	"regexp"
	"strings"
)

// Vietnamese mobile numbers: an optional international prefix, a recognized
// carrier prefix digit (3, 5, 7, 8, 9) and eight more digits.
var (
	phonePattern     = regexp.MustCompile(`(?:\+84|84|0)[35789][0-9]{8}`)
	nineDigitPattern = regexp.MustCompile(`[0-9]{9}`)
)

// ExtractPhone pulls a normalized Vietnamese phone number out of free text.
// The result is always exactly ten digits with a single leading zero. When no
// recognizable prefixed number exists, any nine consecutive digits are taken
// as a local number missing its leading zero. Returns "" when nothing
// phone-like is present; absence of a phone is a common, valid outcome.
func ExtractPhone(text string) string {
	if m := phonePattern.FindString(text); m != "" {
		m = strings.TrimPrefix(m, "+")
		if strings.HasPrefix(m, "84") {
			return "0" + m[2:]
		}
		return m
	}

	if m := nineDigitPattern.FindString(text); m != "" {
		return "0" + m
	}

	return ""
}
