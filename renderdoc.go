package renderdoc

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/renderdoc-go/entry"
	"github.com/wippyai/renderdoc-go/errors"
)

// Version identifies a known API revision. The registry lives in the entry
// package; the revision values are re-exported here so that hosts normally
// import only this package.
type Version = entry.Version

const (
	V100 = entry.V100 // 1.0.0
	V101 = entry.V101 // 1.0.1
	V102 = entry.V102 // 1.0.2
	V110 = entry.V110 // 1.1.0
	V111 = entry.V111 // 1.1.1
)

// loader is the negotiation seam. Tests substitute fakes that build typed
// tables from plain Go functions and count negotiations.
var loader entry.Loader = entry.DefaultLoader()

// RenderDoc's Shutdown removes the injected hooks and is only defined when
// it runs before any other API work in the process. The guard tracks that
// window: fresh until the first capability call, active afterwards, shut
// down once Shutdown ran. Process-wide because the hooks are.
var guard atomic.Int32

const (
	guardFresh int32 = iota
	guardActive
	guardShutDown
)

// use marks the process as having exercised the API. Panics after Shutdown:
// the hooks are gone and the library's behavior is undefined.
func use() {
	for {
		switch state := guard.Load(); state {
		case guardActive:
			return
		case guardShutDown:
			panic(errors.Misuse("capability call after Shutdown"))
		default:
			if guard.CompareAndSwap(state, guardActive) {
				return
			}
		}
	}
}

// Instance is a handle to the negotiated baseline (1.0.x) capability
// surface. Construct with New; copy cheaply with Clone. The zero value is
// not usable.
type Instance struct {
	table *entry.TableV100
}

// New negotiates a function table at or above the minimum revision min and
// returns the baseline capture-control surface. The shared library is
// loaded on the first construction in the process and the outcome is
// cached; negotiation itself happens once per construction.
func New(min Version) (*Instance, error) {
	table, err := loader.TableV100(min)
	if err != nil {
		return nil, err
	}
	i := &Instance{table: table}
	logNegotiated(min, i)
	return i, nil
}

// Clone returns a new handle sharing the same function table. No library
// load or negotiation happens.
func (i *Instance) Clone() *Instance {
	return &Instance{table: i.table}
}

// InstanceV110 is a handle to the 1.1.x capability surface: everything
// Instance offers plus multi-frame capture.
type InstanceV110 struct {
	Instance

	v110 *entry.TableV110
}

// NewV110 negotiates a 1.1.x function table. The minimum revision must
// itself be a 1.1.x revision; requesting the surface with a baseline
// revision fails before any library work.
func NewV110(min Version) (*InstanceV110, error) {
	table, err := loader.TableV110(min)
	if err != nil {
		return nil, err
	}
	i := &InstanceV110{
		Instance: Instance{table: &table.TableV100},
		v110:     table,
	}
	logNegotiated(min, &i.Instance)
	return i, nil
}

// Clone returns a new handle sharing the same function table.
func (i *InstanceV110) Clone() *InstanceV110 {
	return &InstanceV110{
		Instance: Instance{table: i.table},
		v110:     i.v110,
	}
}

// logNegotiated reports the revision the library actually chose, which may
// be higher than the request. Introspection does not count as API use for
// the shutdown guard.
func logNegotiated(min Version, i *Instance) {
	if ce := Logger().Check(zap.DebugLevel, "negotiated API"); ce != nil {
		var major, minor, patch int32
		i.table.GetAPIVersion(&major, &minor, &patch)
		ce.Write(
			zap.String("requested", min.String()),
			zap.Int32("major", major),
			zap.Int32("minor", minor),
			zap.Int32("patch", patch),
		)
	}
}
