//go:build linux

// Stub shared object for libgnome 2. Build with:
//
//	go build -buildmode=c-shared -o libgnome-2.so.0 ./shim/libgnome
//
// OpenJDK's AWT Desktop support dlopens libgnome-2.so.0 and resolves
// gnome_url_show(); it calls nothing else from the library, so this is the
// only symbol exported here.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"context"
	"unsafe"

	glog "github.com/gnomeshim/gnomeshim/internal/log"
	"github.com/gnomeshim/gnomeshim/internal/stubs"
	_ "github.com/gnomeshim/gnomeshim/internal/stubs/all"
)

func init() {
	glog.Init(false)
}

// gnome_url_show mirrors the libgnome prototype
// gboolean gnome_url_show(const char *url, GError **error).
// The GError slot is accepted for ABI compatibility and never written;
// callers that pass one see it untouched.
//
//export gnome_url_show
func gnome_url_show(url *C.char, gerror unsafe.Pointer) C.int {
	_ = gerror

	if url == nil {
		return 0
	}
	ok, err := stubs.Call(context.Background(), "gnome_url_show", C.GoString(url))
	if err != nil || !ok {
		return 0
	}
	return 1
}

func main() {}
