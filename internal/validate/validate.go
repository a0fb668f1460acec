package validate

import (
	"fmt"
	"regexp"
)

// MaxLength is the longest accepted label or note, measured before
// sanitization.
const MaxLength = 100

var disallowed = regexp.MustCompile(`[^\w\s-]`)

// Error is returned for input rejected before any query or write runs.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return e.Msg
}

// Label sanitizes a required label: characters outside alphanumerics,
// underscores, spaces and hyphens are stripped, and the result must be
// non-empty and within MaxLength.
func Label(input string) (string, error) {
	if len(input) > MaxLength {
		return "", &Error{Msg: fmt.Sprintf("input exceeds maximum length of %d characters", MaxLength)}
	}
	sanitized := disallowed.ReplaceAllString(input, "")
	if sanitized == "" {
		return "", &Error{Msg: "input must contain valid characters"}
	}
	return sanitized, nil
}

// Optional sanitizes an optional value the same way Label does, except
// that an empty input passes through untouched.
func Optional(input string) (string, error) {
	if input == "" {
		return "", nil
	}
	return Label(input)
}
