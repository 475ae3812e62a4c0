// Package stubs provides a registry for self-registering shim symbol
// implementations. Each stub package uses init() to register its symbols,
// enabling clean separation of concerns: the shared-object entry points and
// the CLI both resolve symbols through the registry without importing the
// implementing packages directly.
package stubs

import (
	"context"
	"fmt"
	"sort"
	"sync"

	glog "github.com/gnomeshim/gnomeshim/internal/log"
)

// StubFunc is the signature for stub implementations. Arguments are the
// string arguments of the original C symbol, in order; the boolean is the
// success flag the symbol reports to its caller.
type StubFunc func(ctx context.Context, args ...string) bool

// StubDef defines a stub with its symbol name and implementation.
type StubDef struct {
	Symbol  string   // Exported symbol name (e.g., "gnome_url_show")
	Aliases []string // Alternative symbol names
	Library string   // Library the symbol belongs to: "libgnome", "libgnomevfs"
	Doc     string   // One-line description for listings
	Func    StubFunc
}

// Registry holds all registered stub definitions.
type Registry struct {
	mu    sync.RWMutex
	stubs map[string]*StubDef // symbol name -> stub definition

	// OnCall is invoked for every stub call routed through the registry.
	OnCall func(library, symbol, detail string)
}

// DefaultRegistry is the global registry used by init() functions.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new stub registry.
func NewRegistry() *Registry {
	return &Registry{
		stubs: make(map[string]*StubDef),
	}
}

// Register adds a stub definition to the registry.
// Called from init() functions in stub packages.
func (r *Registry) Register(def StubDef) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stubs[def.Symbol] = &def
	for _, alias := range def.Aliases {
		r.stubs[alias] = &def
	}

	if Debug && glog.L != nil {
		glog.L.StubRegister(def.Library, def.Symbol, def.Aliases)
	}
}

// RegisterFunc is a convenience method to register a simple stub.
func (r *Registry) RegisterFunc(library, symbol string, fn StubFunc, aliases ...string) {
	r.Register(StubDef{
		Symbol:  symbol,
		Aliases: aliases,
		Library: library,
		Func:    fn,
	})
}

// Lookup returns the stub registered under the given symbol name or alias.
func (r *Registry) Lookup(symbol string) (*StubDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.stubs[symbol]
	return def, ok
}

// Call invokes the stub registered under symbol. The error is non-nil only
// for an unknown symbol; stub-level failure is the boolean, matching the
// C ABI where a resolvable symbol never errors, it just reports false.
func (r *Registry) Call(ctx context.Context, symbol string, args ...string) (bool, error) {
	def, ok := r.Lookup(symbol)
	if !ok {
		return false, fmt.Errorf("stubs: unknown symbol %q", symbol)
	}

	r.Log(def.Library, def.Symbol, detailFor(args))
	return def.Func(ctx, args...), nil
}

func detailFor(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// Log calls the OnCall callback and logs via zap.
// This is the primary method for stubs to report their activity.
func (r *Registry) Log(library, symbol, detail string) {
	r.mu.RLock()
	cb := r.OnCall
	r.mu.RUnlock()

	if cb != nil {
		cb(library, symbol, detail)
	}

	if glog.L != nil {
		glog.L.Call(library, symbol, detail)
	}
}

// Count returns the number of registered stubs, aliases excluded.
func (r *Registry) Count() int {
	return len(r.List())
}

// List returns all registered stub symbol names, sorted, aliases excluded.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.stubs))
	seen := make(map[string]bool)
	for _, def := range r.stubs {
		if seen[def.Symbol] {
			continue
		}
		seen[def.Symbol] = true
		names = append(names, def.Symbol)
	}
	sort.Strings(names)
	return names
}

// Debug enables verbose logging during registration.
var Debug = false

// Convenience functions for the default registry

// Register adds a stub to the default registry.
func Register(def StubDef) {
	DefaultRegistry.Register(def)
}

// RegisterFunc adds a simple stub to the default registry.
func RegisterFunc(library, symbol string, fn StubFunc, aliases ...string) {
	DefaultRegistry.RegisterFunc(library, symbol, fn, aliases...)
}

// Lookup finds a stub in the default registry.
func Lookup(symbol string) (*StubDef, bool) {
	return DefaultRegistry.Lookup(symbol)
}

// Call invokes a stub from the default registry.
func Call(ctx context.Context, symbol string, args ...string) (bool, error) {
	return DefaultRegistry.Call(ctx, symbol, args...)
}

// List returns the default registry's symbols.
func List() []string {
	return DefaultRegistry.List()
}
