// Package gnome provides the libgnome 2 stub symbols.
// Import this package to register them with the default registry.
//
// OpenJDK's AWT Desktop support resolves gnome_url_show() right after
// gnome_vfs_init() succeeds, and it is the only libgnome symbol it ever
// calls, so it is the only one registered here.
package gnome

import (
	"context"

	"github.com/gnomeshim/gnomeshim/internal/launcher"
	glog "github.com/gnomeshim/gnomeshim/internal/log"
	"github.com/gnomeshim/gnomeshim/internal/stubs"
)

func init() {
	stubs.Register(stubs.StubDef{
		Symbol:  "gnome_url_show",
		Library: "libgnome",
		Doc:     "open a URL with the desktop URL handler",
		Func:    stubURLShow,
	})
}

func stubURLShow(ctx context.Context, args ...string) bool {
	if len(args) == 0 || args[0] == "" {
		return false
	}
	l := launcher.FromEnvironment(launcher.WithLogger(glog.L))
	return l.Open(ctx, args[0]).Success()
}
