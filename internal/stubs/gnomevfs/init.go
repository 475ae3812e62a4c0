// Package gnomevfs provides the GnomeVFS 2 stub symbols.
// Import this package to register them with the default registry.
package gnomevfs

import (
	"context"

	"github.com/gnomeshim/gnomeshim/internal/stubs"
)

func init() {
	stubs.Register(stubs.StubDef{
		Symbol:  "gnome_vfs_init",
		Library: "libgnomevfs",
		Doc:     "report successful VFS initialization",
		Func:    stubVFSInit,
	})
}

// stubVFSInit unconditionally succeeds. The caller only checks that the
// symbol resolves and returns true before probing the rest of the family;
// no filesystem state is touched.
func stubVFSInit(_ context.Context, _ ...string) bool {
	return true
}
