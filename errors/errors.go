package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the binding the error occurred
type Phase string

const (
	PhaseLoad      Phase = "load"      // shared library loading
	PhaseNegotiate Phase = "negotiate" // API version negotiation
	PhaseDispatch  Phase = "dispatch"  // calls through the function table
)

// Kind categorizes the error
type Kind string

const (
	KindLibraryUnavailable  Kind = "library_unavailable"
	KindSymbolMissing       Kind = "symbol_missing"
	KindIncompatibleVersion Kind = "incompatible_version"
	KindUnknownVersion      Kind = "unknown_version"
	KindTierMismatch        Kind = "tier_mismatch"
	KindReplayUIFailed      Kind = "replay_ui_failed"
	KindMisuse              Kind = "misuse"
)

// Error is the structured error type used throughout the binding
type Error struct {
	Cause     error
	Phase     Phase
	Kind      Kind
	Library   string // shared library file name
	Symbol    string // exported symbol name
	Requested string // API revision that was requested, e.g. "1.1.0"
	Detail    string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	var ctx []string
	if e.Library != "" {
		ctx = append(ctx, "library "+e.Library)
	}
	if e.Symbol != "" {
		ctx = append(ctx, "symbol "+e.Symbol)
	}
	if e.Requested != "" {
		ctx = append(ctx, "revision "+e.Requested)
	}
	if len(ctx) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(ctx, ", "))
	}

	if e.Detail != "" {
		if len(ctx) > 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Library sets the shared library file name
func (b *Builder) Library(name string) *Builder {
	b.err.Library = name
	return b
}

// Symbol sets the exported symbol name
func (b *Builder) Symbol(name string) *Builder {
	b.err.Symbol = name
	return b
}

// Requested sets the requested API revision
func (b *Builder) Requested(rev string) *Builder {
	b.err.Requested = rev
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// LibraryUnavailable creates a load failure error. The result is what a
// failed library load caches: every later construction attempt sees the
// same error without a new load being tried.
func LibraryUnavailable(library string, cause error) *Error {
	return &Error{
		Phase:   PhaseLoad,
		Kind:    KindLibraryUnavailable,
		Library: library,
		Detail:  "load failed",
		Cause:   cause,
	}
}

// SymbolUnresolved creates a load-level symbol resolution error
func SymbolUnresolved(library, symbol string, cause error) *Error {
	return &Error{
		Phase:   PhaseLoad,
		Kind:    KindSymbolMissing,
		Library: library,
		Symbol:  symbol,
		Cause:   cause,
	}
}

// NegotiationEntryMissing reports that the negotiation entry point is absent,
// which distinguishes "library too old" from "library rejected this version"
func NegotiationEntryMissing(symbol string, cause error) *Error {
	return &Error{
		Phase:  PhaseNegotiate,
		Kind:   KindSymbolMissing,
		Symbol: symbol,
		Detail: "negotiation entry point missing",
		Cause:  cause,
	}
}

// IncompatibleVersion reports a negotiation call that returned a non-success status
func IncompatibleVersion(requested string, status int32) *Error {
	return &Error{
		Phase:     PhaseNegotiate,
		Kind:      KindIncompatibleVersion,
		Requested: requested,
		Detail:    fmt.Sprintf("compatible API version not available (status %d)", status),
	}
}

// UnknownVersion reports a revision value outside the known registry
func UnknownVersion(value uint32) *Error {
	return &Error{
		Phase:  PhaseNegotiate,
		Kind:   KindUnknownVersion,
		Detail: fmt.Sprintf("unknown API revision value %d", value),
	}
}

// TierMismatch reports a construction request whose revision does not carry
// the requested capability surface
func TierMismatch(requested, surface string) *Error {
	return &Error{
		Phase:     PhaseNegotiate,
		Kind:      KindTierMismatch,
		Requested: requested,
		Detail:    fmt.Sprintf("revision does not provide the %s surface", surface),
	}
}

// ReplayUIFailed reports a replay UI launch that returned the zero sentinel
func ReplayUIFailed() *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindReplayUIFailed,
		Detail: "replay UI did not launch",
	}
}

// Misuse creates the fatal programmer-error value. It is thrown with panic,
// never returned: the wrapped library leaves argument misuse undefined, so
// continuing would mask the bug.
func Misuse(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindMisuse,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
