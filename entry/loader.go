package entry

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/renderdoc-go/dynlib"
	"github.com/wippyai/renderdoc-go/errors"
)

// Loader negotiates typed function tables at or above a minimum revision.
// Implementations other than the library-backed default exist for tests.
type Loader interface {
	TableV100(min Version) (*TableV100, error)
	TableV110(min Version) (*TableV110, error)
}

// DefaultLoader returns the process-wide loader backed by the shared
// library. Every call negotiates once; the library load itself happens only
// on the first negotiation in the process and its outcome is cached.
func DefaultLoader() Loader {
	return defaultLoader
}

var defaultLoader Loader = &libraryLoader{}

// negotiateMu serializes negotiation and the copy-out of the resulting
// table. The library requires that negotiation is never entered from two
// threads at once.
var negotiateMu sync.Mutex

type libraryLoader struct{}

// entryPoint validates the requested revision and resolves the negotiation
// symbol. A missing symbol is reported distinctly from a rejected revision,
// so callers can tell "library too old" apart from "revision refused".
func (l *libraryLoader) entryPoint(min Version) (uintptr, error) {
	if !min.Valid() {
		return 0, errors.UnknownVersion(uint32(min))
	}
	lib, err := dynlib.Load()
	if err != nil {
		Logger().Warn("shared library unavailable",
			zap.Error(err))
		return 0, err
	}
	addr, err := lib.Symbol(negotiateSymbol)
	if err != nil {
		Logger().Warn("negotiation entry point missing",
			zap.String("symbol", negotiateSymbol),
			zap.Error(err))
		return 0, errors.NegotiationEntryMissing(negotiateSymbol, err)
	}
	return addr, nil
}

func (l *libraryLoader) TableV100(min Version) (*TableV100, error) {
	addr, err := l.entryPoint(min)
	if err != nil {
		return nil, err
	}

	negotiateMu.Lock()
	defer negotiateMu.Unlock()

	out, err := negotiateRaw(addr, min)
	if err != nil {
		Logger().Warn("negotiation rejected",
			zap.String("requested", min.String()),
			zap.Error(err))
		return nil, err
	}
	raw := *(*rawTableV100)(out)

	Logger().Debug("negotiated function table",
		zap.String("requested", min.String()))
	return bindV100(raw), nil
}

func (l *libraryLoader) TableV110(min Version) (*TableV110, error) {
	if min.Valid() && min.Tier() < TierV110 {
		return nil, errors.TierMismatch(min.String(), "multi-frame capture")
	}
	addr, err := l.entryPoint(min)
	if err != nil {
		return nil, err
	}

	negotiateMu.Lock()
	defer negotiateMu.Unlock()

	out, err := negotiateRaw(addr, min)
	if err != nil {
		Logger().Warn("negotiation rejected",
			zap.String("requested", min.String()),
			zap.Error(err))
		return nil, err
	}
	raw := *(*rawTableV110)(out)

	Logger().Debug("negotiated function table",
		zap.String("requested", min.String()))
	return bindV110(raw), nil
}
