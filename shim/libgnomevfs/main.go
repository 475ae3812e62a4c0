//go:build linux

// Stub shared object for GnomeVFS 2. Build with:
//
//	go build -buildmode=c-shared -o libgnomevfs-2.so.0 ./shim/libgnomevfs
//
// OpenJDK resolves gnome_vfs_init() as a fallback when GTK initialization
// fails, checks the return value, and then probes gnome_url_show(). It
// never calls anything else from GnomeVFS, so this single always-true
// export is the whole library.
package main

import "C"

import (
	"context"

	glog "github.com/gnomeshim/gnomeshim/internal/log"
	"github.com/gnomeshim/gnomeshim/internal/stubs"
	_ "github.com/gnomeshim/gnomeshim/internal/stubs/all"
)

func init() {
	glog.Init(false)
}

// gnome_vfs_init mirrors the GnomeVFS prototype gboolean gnome_vfs_init(void).
//
//export gnome_vfs_init
func gnome_vfs_init() C.int {
	ok, err := stubs.Call(context.Background(), "gnome_vfs_init")
	if err != nil || !ok {
		return 0
	}
	return 1
}

func main() {}
