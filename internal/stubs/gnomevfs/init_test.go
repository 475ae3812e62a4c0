package gnomevfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gnomeshim/gnomeshim/internal/stubs"
	_ "github.com/gnomeshim/gnomeshim/internal/stubs/gnomevfs"
)

func TestVFSInitRegistered(t *testing.T) {
	def, ok := stubs.Lookup("gnome_vfs_init")
	require.True(t, ok)
	require.Equal(t, "libgnomevfs", def.Library)
}

func TestVFSInitAlwaysSucceeds(t *testing.T) {
	for i := 0; i < 3; i++ {
		ok, err := stubs.Call(context.Background(), "gnome_vfs_init")
		require.NoError(t, err)
		require.True(t, ok)
	}
}
