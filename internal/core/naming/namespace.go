package naming

import "strings"

// ComposeNamespace joins segments with the namespace separator, keeping
// their order. With trailingSeparator set, one separator is appended, which
// is the form PSR-4 autoload prefixes use ("Acme\Project\").
//
// Segments are not validated. An empty segment yields a doubled separator.
func ComposeNamespace(segments []string, trailingSeparator bool) string {
	normalized := make([]string, len(segments))
	for i, segment := range segments {
		normalized[i] = escapeSegment(segment)
	}

	namespace := strings.Join(normalized, Separator)
	if trailingSeparator {
		namespace += Separator
	}
	return namespace
}

// escapeSegment normalizes separators inside a segment. A separator within
// a segment already denotes a nested level ("Foo\Bar"), so the canonical
// form is the input itself and composed output can be fed back in as a
// segment without changing its level structure.
func escapeSegment(segment string) string {
	return segment
}
