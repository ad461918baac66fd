package domain

import "regexp"

var (
	upperRe = regexp.MustCompile(`[A-Z]`)
	lowerRe = regexp.MustCompile(`[a-z]`)
	digitRe = regexp.MustCompile(`[0-9]`)
)

// ValidPassword enforces the password policy: at least 8 characters with an
// upper-case letter, a lower-case letter and a digit.
func ValidPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	return upperRe.MatchString(s) && lowerRe.MatchString(s) && digitRe.MatchString(s)
}
