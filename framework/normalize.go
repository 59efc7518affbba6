package framework

import (
	"regexp"
	"strings"
)

// DefaultAssertionMarkers identify messages produced by the assertion layer.
var DefaultAssertionMarkers = []string{"ASSERT_"}

// locationTag matches a leading "<path-like>.<ext>:<digits>: " tag of the
// kind the assertion layer prepends when it raises a failure.
var locationTag = regexp.MustCompile(`^\S+\.\w+:\d+: `)

// pathSegment matches a directory-separator-delimited filename with an
// extension anywhere in a message.
var pathSegment = regexp.MustCompile(`[/\\][\w.\-]+\.\w+`)

// MessageNormalizer strips framework-internal location prefixes from raised
// failure messages, leaving only the semantic failure description. This is
// best-effort textual cleanup, not a parser: anything ambiguous is passed
// through unchanged.
type MessageNormalizer struct {
	markers []string
}

// NewMessageNormalizer creates a normalizer that recognizes the given
// assertion-prefix markers. With no markers it uses
// DefaultAssertionMarkers.
func NewMessageNormalizer(markers ...string) *MessageNormalizer {
	if len(markers) == 0 {
		markers = DefaultAssertionMarkers
	}
	return &MessageNormalizer{markers: markers}
}

var defaultNormalizer = NewMessageNormalizer()

// DefaultMessageNormalizer returns the shared normalizer configured with
// DefaultAssertionMarkers.
func DefaultMessageNormalizer() *MessageNormalizer {
	return defaultNormalizer
}

// Normalize cleans a raw failure message.
//
// A message that starts with a location tag and carries an assertion marker
// came from the assertion layer, which already reports its own location
// separately; the duplicated tag is stripped. Otherwise, if the message
// contains a bare path-like segment anywhere, everything up to and
// including that segment is stripped. Anything else is returned unchanged.
func (n *MessageNormalizer) Normalize(raw string) string {
	if tag := locationTag.FindString(raw); tag != "" && n.hasMarker(raw) {
		return raw[len(tag):]
	}
	if loc := pathSegment.FindStringIndex(raw); loc != nil {
		return raw[loc[1]:]
	}
	return raw
}

func (n *MessageNormalizer) hasMarker(s string) bool {
	for _, m := range n.markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
