package parser

import (
	"fmt"
	"regexp"
	"strings"

	appErrors "github.com/balkashynov/themegen/internal/errors"
)

// hexInputRegex is the keystroke check for the free-text color field.
// It is looser than the codec: 3-digit short forms pass here.
var hexInputRegex = regexp.MustCompile(`^#?([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// IsValidHexInput reports whether the text field holds a complete color.
// Partial input while typing is simply not valid yet.
func IsValidHexInput(input string) bool {
	return hexInputRegex.MatchString(input)
}

// NormalizeHexInput prefixes '#' to a valid hex input.
// Accepts formats like:
// - "ed174c", "#ED174C" -> "#ed174c", "#ED174C"
// - "abc" -> "#abc" (short form is kept as typed, not expanded)
// Returns an error if the input is not a complete hex color.
func NormalizeHexInput(input string) (string, error) {
	if !IsValidHexInput(input) {
		return "", appErrors.New(appErrors.CodeInvalidColor,
			fmt.Sprintf("invalid color %q. Use: #rrggbb or #rgb", input), nil)
	}
	if strings.HasPrefix(input, "#") {
		return input, nil
	}
	return "#" + input, nil
}
