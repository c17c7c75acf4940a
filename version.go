package ticker

import "github.com/mathershifter/ticker/internal/version"

// Version returns the library version.
func Version() string {
	return version.Short()
}
