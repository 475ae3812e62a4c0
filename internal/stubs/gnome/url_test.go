package gnome_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gnomeshim/gnomeshim/internal/launcher"
	"github.com/gnomeshim/gnomeshim/internal/stubs"
	_ "github.com/gnomeshim/gnomeshim/internal/stubs/gnome"
)

func fakeHandler(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "handler")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func setHandler(t *testing.T, path string) {
	t.Helper()
	t.Setenv(launcher.EnvHandler, path)
	t.Setenv(launcher.EnvConfig, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestURLShowRegistered(t *testing.T) {
	def, ok := stubs.Lookup("gnome_url_show")
	require.True(t, ok)
	require.Equal(t, "libgnome", def.Library)
}

func TestURLShowHandlerSucceeds(t *testing.T) {
	setHandler(t, fakeHandler(t, "exit 0"))

	ok, err := stubs.Call(context.Background(), "gnome_url_show", "https://example.com")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestURLShowHandlerDeclines(t *testing.T) {
	setHandler(t, fakeHandler(t, "exit 1"))

	ok, err := stubs.Call(context.Background(), "gnome_url_show", "bogus://nothing")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestURLShowNoURL(t *testing.T) {
	setHandler(t, fakeHandler(t, "exit 0"))

	ok, err := stubs.Call(context.Background(), "gnome_url_show")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = stubs.Call(context.Background(), "gnome_url_show", "")
	require.NoError(t, err)
	require.False(t, ok)
}
