// Package ids generates the opaque identifiers used across the domain
// collections. Identifiers are random 128-bit UUIDs behind a short entity
// prefix, so rapid successive creation cannot collide.
package ids

import "github.com/google/uuid"

// Entity prefixes, matching the seed roster's id scheme.
const (
	OpportunityPrefix = "o"
	EventPrefix       = "e"
	ApplicationPrefix = "a"
	ProfilePrefix     = "p"
)

// New returns a new unique identifier with the given entity prefix.
func New(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
