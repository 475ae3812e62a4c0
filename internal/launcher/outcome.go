package launcher

import "syscall"

// Kind classifies how an attempt to run the URL handler ended.
type Kind int

const (
	// KindOK means the handler ran and exited zero.
	KindOK Kind = iota
	// KindSpawn means the child process could not be created.
	KindSpawn
	// KindExecFormat means the handler executable is missing or not runnable.
	KindExecFormat
	// KindWait means waiting on the child failed after it was created.
	KindWait
	// KindSignal means the handler was killed by a signal.
	KindSignal
	// KindExit means the handler ran and exited nonzero. This is the normal
	// "no handler registered for the scheme" path and is never logged.
	KindExit
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindSpawn:
		return "spawn"
	case KindExecFormat:
		return "exec-format"
	case KindWait:
		return "wait"
	case KindSignal:
		return "signal"
	case KindExit:
		return "exit"
	}
	return "unknown"
}

// Outcome is the result of one handler invocation. The child is always
// reaped before an Outcome is produced, so returning one implies no zombie
// was left behind.
type Outcome struct {
	Kind       Kind
	ExitStatus int            // valid when Kind is KindOK or KindExit
	Signal     syscall.Signal // valid when Kind is KindSignal
	Err        error          // underlying error for spawn/exec/wait kinds
}

// Success collapses the outcome to the boolean the shim ABI reports.
func (o Outcome) Success() bool {
	return o.Kind == KindOK
}
