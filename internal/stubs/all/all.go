// Package all imports all stub packages to ensure they register via init().
// Import this package in shim and CLI setup to enable all stubs.
//
// Example:
//
//	import _ "github.com/gnomeshim/gnomeshim/internal/stubs/all"
package all

import (
	// Import all stub packages for side effects (init registration)
	_ "github.com/gnomeshim/gnomeshim/internal/stubs/gnome"
	_ "github.com/gnomeshim/gnomeshim/internal/stubs/gnomevfs"
)
