// Package launcher spawns the desktop URL handler and classifies how it
// terminated. Each invocation is independent: one child process, spawned,
// waited on, and reaped before Open returns.
package launcher

import (
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"syscall"

	"github.com/google/uuid"

	glog "github.com/gnomeshim/gnomeshim/internal/log"
)

// DefaultHandler is the drop-in handler path the original stubs hardcode.
const DefaultHandler = "/usr/bin/xdg-open"

// Launcher runs the desktop URL handler. The zero value is not usable;
// construct with New. A Launcher holds no mutable state and is safe for
// concurrent use.
type Launcher struct {
	handler string
	args    []string // extra leading arguments, before the URL
	log     *glog.Logger
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithHandler overrides the handler executable path.
func WithHandler(path string) Option {
	return func(l *Launcher) {
		if path != "" {
			l.handler = path
		}
	}
}

// WithArgs sets extra arguments passed to the handler before the URL.
func WithArgs(args ...string) Option {
	return func(l *Launcher) {
		l.args = args
	}
}

// WithLogger overrides the diagnostic logger.
func WithLogger(lg *glog.Logger) Option {
	return func(l *Launcher) {
		if lg != nil {
			l.log = lg
		}
	}
}

// WithConfig applies a loaded configuration. Later options still win.
func WithConfig(cfg *Config) Option {
	return func(l *Launcher) {
		if cfg == nil {
			return
		}
		if cfg.Handler != "" {
			l.handler = cfg.Handler
		}
		if len(cfg.Args) > 0 {
			l.args = cfg.Args
		}
	}
}

// New creates a Launcher with the built-in default handler. Options are
// applied in order, so explicit options override the default.
func New(opts ...Option) *Launcher {
	l := &Launcher{
		handler: DefaultHandler,
		log:     glog.L,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = glog.NewNop()
	}
	return l
}

// FromEnvironment creates a Launcher resolved the way the shared-object
// shims resolve one: GNOMESHIM_HANDLER wins, then the config file named by
// GNOMESHIM_CONFIG or found at the default path, then the built-in default.
// A broken config file is a diagnostic, never a load failure.
func FromEnvironment(opts ...Option) *Launcher {
	resolved := []Option{WithConfig(loadEnvConfig())}
	resolved = append(resolved, envHandlerOption())
	resolved = append(resolved, opts...)
	return New(resolved...)
}

// Handler returns the resolved handler path.
func (l *Launcher) Handler() string {
	return l.handler
}

// Open runs the handler with url as its final argument and waits for it.
// Every failure collapses to an unsuccessful Outcome; nothing is retried
// and nothing is fatal to the calling process. A nonzero handler exit is
// the one silent failure path.
func (l *Launcher) Open(ctx context.Context, url string) Outcome {
	id := uuid.NewString()
	args := append(append([]string{}, l.args...), url)
	cmd := exec.CommandContext(ctx, l.handler, args...)

	if err := cmd.Start(); err != nil {
		kind := KindSpawn
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			kind = KindExecFormat
		}
		l.log.Fail("spawn", err, glog.Handler(l.handler), glog.CallID(id))
		return Outcome{Kind: kind, Err: err}
	}

	err := cmd.Wait()
	if err == nil {
		return Outcome{Kind: KindOK}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			l.log.Fail("handler", errors.New("terminated abnormally"),
				glog.Handler(l.handler), glog.CallID(id))
			return Outcome{Kind: KindSignal, Signal: ws.Signal(), Err: err}
		}
		// Handler declined the URL. Expected, so no diagnostic.
		return Outcome{Kind: KindExit, ExitStatus: exitErr.ExitCode(), Err: err}
	}

	l.log.Fail("wait", err, glog.Handler(l.handler), glog.CallID(id))
	return Outcome{Kind: KindWait, Err: err}
}
