package launcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	glog "github.com/gnomeshim/gnomeshim/internal/log"
)

// writeScript drops a fake handler into a temp dir and returns its path.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "handler")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755)
	require.NoError(t, err)
	return path
}

// observed builds a Launcher whose diagnostics land in an observer sink.
func observed(t *testing.T, opts ...Option) (*Launcher, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	opts = append(opts, WithLogger(glog.Wrap(zap.New(core))))
	return New(opts...), logs
}

func TestOpenHandlerExitsZero(t *testing.T) {
	l, logs := observed(t, WithHandler(writeScript(t, "exit 0")))

	out := l.Open(context.Background(), "https://example.com")
	require.Equal(t, KindOK, out.Kind)
	require.True(t, out.Success())
	require.Zero(t, logs.Len(), "success path must not log")
}

func TestOpenHandlerDeclines(t *testing.T) {
	l, logs := observed(t, WithHandler(writeScript(t, "exit 1")))

	out := l.Open(context.Background(), "bogus://nothing")
	require.Equal(t, KindExit, out.Kind)
	require.Equal(t, 1, out.ExitStatus)
	require.False(t, out.Success())
	require.Zero(t, logs.Len(), "nonzero handler exit is the silent path")
}

func TestOpenHandlerExitStatusPreserved(t *testing.T) {
	l, _ := observed(t, WithHandler(writeScript(t, "exit 3")))

	out := l.Open(context.Background(), "https://example.com")
	require.Equal(t, KindExit, out.Kind)
	require.Equal(t, 3, out.ExitStatus)
}

func TestOpenHandlerMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-handler")
	l, logs := observed(t, WithHandler(missing))

	out := l.Open(context.Background(), "https://example.com")
	require.Equal(t, KindExecFormat, out.Kind)
	require.False(t, out.Success())
	require.Error(t, out.Err)

	entries := logs.FilterMessage("spawn failed").All()
	require.Len(t, entries, 1)
}

func TestOpenHandlerNotExecutable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handler")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o644))
	l, logs := observed(t, WithHandler(path))

	out := l.Open(context.Background(), "https://example.com")
	require.Equal(t, KindExecFormat, out.Kind)
	require.False(t, out.Success())
	require.Equal(t, 1, logs.Len())
}

func TestOpenHandlerKilledBySignal(t *testing.T) {
	l, logs := observed(t, WithHandler(writeScript(t, "kill -KILL $$")))

	out := l.Open(context.Background(), "https://example.com")
	require.Equal(t, KindSignal, out.Kind)
	require.Equal(t, syscall.SIGKILL, out.Signal)
	require.False(t, out.Success())

	entries := logs.FilterMessage("handler failed").All()
	require.Len(t, entries, 1)
}

func TestOpenPassesURLAsFinalArgument(t *testing.T) {
	// The handler writes its second argument (the URL) to the path given
	// as its first argument, wired in through WithArgs.
	outFile := filepath.Join(t.TempDir(), "got-url")
	script := writeScript(t, `printf %s "$2" > "$1"`)
	l, _ := observed(t, WithHandler(script), WithArgs(outFile))

	out := l.Open(context.Background(), "https://example.com")
	require.True(t, out.Success())

	got, err := os.ReadFile(outFile)
	require.NoError(t, err)
	require.Equal(t, "https://example.com", string(got))
}

func TestOpenConcurrent(t *testing.T) {
	l, logs := observed(t, WithHandler(writeScript(t, "exit 0")))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := l.Open(context.Background(), "https://example.com")
			if !out.Success() {
				t.Errorf("concurrent open failed: %s", out.Kind)
			}
		}()
	}
	wg.Wait()
	require.Zero(t, logs.Len())
}

func TestNewDefaults(t *testing.T) {
	l := New()
	require.Equal(t, DefaultHandler, l.Handler())
}

func TestKindString(t *testing.T) {
	require.Equal(t, "ok", KindOK.String())
	require.Equal(t, "exit", KindExit.String())
	require.Equal(t, "signal", KindSignal.String())
	require.Equal(t, "unknown", Kind(99).String())
}
