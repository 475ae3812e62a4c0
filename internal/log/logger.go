// Package log provides structured logging for gnomeshim using zap.
package log

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with gnomeshim-specific helpers.
type Logger struct {
	*zap.Logger
	onCall func(library, symbol, detail string) // callback for stub call events
}

var (
	// L is the global logger instance.
	L    *Logger
	once sync.Once
)

// Init initializes the global logger with the given configuration.
// Safe to call multiple times; only the first call takes effect.
func Init(debug bool) {
	once.Do(func() {
		L = New(debug)
	})
}

// New creates a new Logger instance.
//
// The non-debug configuration logs at Warn and above to stderr in console
// encoding. The shared-object shims load inside a host process that did not
// ask for logs, so the quiet default matters more here than in the CLI.
func New(debug bool) *Logger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	// Shorter timestamps in development
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// Fallback to no-op if config fails
		logger = zap.NewNop()
	}

	return &Logger{Logger: logger}
}

// NewNop creates a no-op logger for testing.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Wrap adapts an existing zap.Logger. Used by tests that observe log output.
func Wrap(z *zap.Logger) *Logger {
	return &Logger{Logger: z}
}

// SetOnCall sets the callback invoked for every stub call event.
func (l *Logger) SetOnCall(fn func(library, symbol, detail string)) {
	l.onCall = fn
}

// Call logs a stub call event and invokes the callback if set.
// This is the primary method for stubs to report their activity.
func (l *Logger) Call(library, symbol, detail string) {
	if l.onCall != nil {
		l.onCall(library, symbol, detail)
	}

	l.Debug("stub call",
		zap.String("lib", library),
		zap.String("sym", symbol),
		zap.String("detail", detail),
	)
}

// StubRegister logs when a stub symbol is registered.
func (l *Logger) StubRegister(library, symbol string, aliases []string) {
	l.Debug("registered",
		zap.String("lib", library),
		zap.String("sym", symbol),
		zap.Strings("aliases", aliases),
	)
}

// Fail logs a failed operation with its underlying error. The message is the
// name of the failing operation so diagnostics stay greppable by operation.
func (l *Logger) Fail(op string, err error, fields ...zap.Field) {
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	l.Error(op+" failed", fields...)
}

// WithLibrary returns a logger with the library field preset.
func (l *Logger) WithLibrary(library string) *Logger {
	return &Logger{
		Logger: l.Logger.With(zap.String("lib", library)),
		onCall: l.onCall,
	}
}

// Field helpers for common patterns.

// Handler creates a handler path field.
func Handler(path string) zap.Field {
	return zap.String("handler", path)
}

// CallID creates a per-invocation id field.
func CallID(id string) zap.Field {
	return zap.String("call", id)
}
