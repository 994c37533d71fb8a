package ports

import "time"

// IdentityCodeParser abstracts the national identity code scheme so the
// decision rules do not depend on a specific country's format.
type IdentityCodeParser interface {
	// IsValid reports whether code is well-formed and its checksum matches.
	IsValid(code string) bool

	// Age returns the holder's age in whole years at the given instant.
	Age(code string, at time.Time) (int, error)
}
