package dynlib

import (
	"sync"
	"sync/atomic"

	"github.com/wippyai/renderdoc-go/errors"
)

// Handle is the process-wide reference to the loaded shared library. There
// is no unload: the library stays resident for the life of the process.
type Handle struct {
	ref  uintptr
	name string
}

var (
	loadMu   sync.Mutex
	loadDone atomic.Bool
	handle   *Handle
	loadErr  error
)

// Platform seams, swapped in tests.
var (
	openLibrary   = platformOpenLibrary
	resolveSymbol = platformResolveSymbol
)

// Load resolves the platform's well-known library name exactly once per
// process. The outcome is memoized: later calls return the cached handle or
// the cached failure without another load attempt. Safe for concurrent
// callers; only one performs the load.
func Load() (*Handle, error) {
	if loadDone.Load() {
		return handle, loadErr
	}

	loadMu.Lock()
	defer loadMu.Unlock()

	if loadDone.Load() {
		return handle, loadErr
	}

	name := libraryName()
	ref, err := openLibrary(name)
	if err != nil {
		loadErr = errors.LibraryUnavailable(name, err)
	} else {
		handle = &Handle{ref: ref, name: name}
	}
	loadDone.Store(true)
	return handle, loadErr
}

// Name returns the file name the library was loaded by.
func (h *Handle) Name() string {
	return h.name
}

// Symbol resolves an exported symbol to its address.
func (h *Handle) Symbol(symbol string) (uintptr, error) {
	addr, err := resolveSymbol(h.ref, symbol)
	if err != nil {
		return 0, errors.SymbolUnresolved(h.name, symbol, err)
	}
	return addr, nil
}
