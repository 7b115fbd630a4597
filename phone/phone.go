// Package phone validates and formats Russian mobile phone numbers.
package phone

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	stripRe    = regexp.MustCompile(`[\s\-()]`)
	intlRe     = regexp.MustCompile(`^\+7\d{10}$`)
	domesticRe = regexp.MustCompile(`^8\d{10}$`)
)

// Validate reports whether raw is a valid phone number after stripping
// spaces, hyphens and parentheses: +7 or 8 followed by exactly 10 digits.
func Validate(raw string) bool {
	clean := stripRe.ReplaceAllString(raw, "")
	return intlRe.MatchString(clean) || domesticRe.MatchString(clean)
}

// Format normalizes a validated phone number into its canonical display
// form: "+7 XXX XXX XX XX" or "8 XXX XXX XX XX". Input that does not match
// either form is returned unchanged; callers are expected to Validate first.
func Format(raw string) string {
	clean := stripRe.ReplaceAllString(raw, "")
	if strings.HasPrefix(clean, "+7") && len(clean) == 12 {
		return fmt.Sprintf("+7 %s %s %s %s", clean[2:5], clean[5:8], clean[8:10], clean[10:12])
	}
	if strings.HasPrefix(clean, "8") && len(clean) == 11 {
		return fmt.Sprintf("8 %s %s %s %s", clean[1:4], clean[4:7], clean[7:9], clean[9:11])
	}
	return raw
}
