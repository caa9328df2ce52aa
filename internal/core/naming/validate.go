package naming

import "regexp"

// Separator is the PHP namespace separator.
const Separator = `\`

// segmentPattern accepts one ASCII letter followed by ASCII letters,
// digits or namespace separators.
var segmentPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9\\]*$`)

// IsValidNamespaceSegment reports whether input is an acceptable namespace
// segment. It never fails; empty input is simply invalid.
func IsValidNamespaceSegment(input string) bool {
	return segmentPattern.MatchString(input)
}

// ValidateNamespaceSegment returns an *InvalidSegmentError naming input
// when IsValidNamespaceSegment rejects it.
func ValidateNamespaceSegment(input string) error {
	if !IsValidNamespaceSegment(input) {
		return &InvalidSegmentError{Input: input}
	}
	return nil
}
