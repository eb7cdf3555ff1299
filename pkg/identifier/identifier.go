package identifier

import (
	"regexp"

	"github.com/google/uuid"
)

// Kind is the classification of a caller-supplied garden identifier. Gardens
// are routable by either their canonical UUID or their human-readable slug;
// classification decides whether a lookup is needed at all.
type Kind int

const (
	KindUnknown Kind = iota
	KindCanonical
	KindSlug
)

var slugRX = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Classify returns KindCanonical for a plain 36-character UUID, KindSlug for
// a lowercase hyphenated token, and KindUnknown otherwise. Braced and URN
// UUID forms are deliberately not canonical here; stored ids never use them.
func Classify(s string) Kind {
	if len(s) == 36 {
		if _, err := uuid.Parse(s); err == nil {
			return KindCanonical
		}
	}
	if slugRX.MatchString(s) {
		return KindSlug
	}
	return KindUnknown
}
