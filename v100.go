package renderdoc

import (
	"math"
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/renderdoc-go/entry"
	"github.com/wippyai/renderdoc-go/errors"
)

// Baseline (1.0.x) capability surface. Every method is a direct forward
// onto one member of the negotiated function table; the work here is the
// marshaling discipline at the C boundary.

// GetAPIVersion returns the major, minor and patch numbers of the revision
// the library actually negotiated, which may be higher than the requested
// minimum.
func (i *Instance) GetAPIVersion() (major, minor, patch int) {
	use()
	var mj, mn, pt int32
	i.table.GetAPIVersion(&mj, &mn, &pt)
	return int(mj), int(mn), int(pt)
}

// SetCaptureOptionU32 sets opt to val. Panics if the option or the value is
// invalid; the library validates at the C boundary and treats misuse as a
// caller bug.
func (i *Instance) SetCaptureOptionU32(opt CaptureOption, val uint32) {
	use()
	if i.table.SetCaptureOptionU32(uint32(opt), val) != 1 {
		panic(errors.Misuse("SetCaptureOptionU32(%s, %d) rejected", opt, val))
	}
}

// SetCaptureOptionF32 sets opt to val. Panics if the option or the value is
// invalid.
func (i *Instance) SetCaptureOptionF32(opt CaptureOption, val float32) {
	use()
	if i.table.SetCaptureOptionF32(uint32(opt), val) != 1 {
		panic(errors.Misuse("SetCaptureOptionF32(%s, %g) rejected", opt, val))
	}
}

// GetCaptureOptionU32 returns the current value of opt. Panics if opt is
// not a valid option, signaled by the library's maximum-value sentinel.
func (i *Instance) GetCaptureOptionU32(opt CaptureOption) uint32 {
	use()
	val := i.table.GetCaptureOptionU32(uint32(opt))
	if val == math.MaxUint32 {
		panic(errors.Misuse("GetCaptureOptionU32(%s) rejected", opt))
	}
	return val
}

// GetCaptureOptionF32 returns the current value of opt. Panics if opt is
// not a valid option, signaled by the library's negative-maximum sentinel.
func (i *Instance) GetCaptureOptionF32(opt CaptureOption) float32 {
	use()
	val := i.table.GetCaptureOptionF32(uint32(opt))
	if val == -math.MaxFloat32 {
		panic(errors.Misuse("GetCaptureOptionF32(%s) rejected", opt))
	}
	return val
}

// SetFocusToggleKeys changes which keys toggle capture focus between
// registered windows. An empty slice disables the keys.
func (i *Instance) SetFocusToggleKeys(keys []InputButton) {
	use()
	ptr, n := lowerKeys(keys)
	i.table.SetFocusToggleKeys(ptr, n)
}

// SetCaptureKeys changes which keys trigger a capture of the next frame.
// An empty slice disables the keys.
func (i *Instance) SetCaptureKeys(keys []InputButton) {
	use()
	ptr, n := lowerKeys(keys)
	i.table.SetCaptureKeys(ptr, n)
}

// lowerKeys flattens keys to the raw array-and-length pair the call wants.
// The library copies what it needs during the call; nothing is retained.
func lowerKeys(keys []InputButton) (*uint32, int32) {
	if len(keys) == 0 {
		return nil, 0
	}
	raw := make([]uint32, len(keys))
	for idx, k := range keys {
		raw[idx] = uint32(k)
	}
	return &raw[0], int32(len(raw))
}

// GetOverlayBits returns the overlay's current configuration mask.
func (i *Instance) GetOverlayBits() OverlayBits {
	use()
	return OverlayBits(i.table.GetOverlayBits())
}

// MaskOverlayBits applies (bits & and) | or to the overlay configuration.
func (i *Instance) MaskOverlayBits(and, or OverlayBits) {
	use()
	i.table.MaskOverlayBits(uint32(and), uint32(or))
}

// Shutdown removes RenderDoc's injected hooks and shuts it down. Only
// defined immediately after construction, before any other capability call
// in the process; the library leaves later shutdown undefined, so this
// panics once the API has been exercised or shut down already.
func (i *Instance) Shutdown() {
	if !guard.CompareAndSwap(guardFresh, guardShutDown) {
		panic(errors.Misuse("Shutdown after the API was used"))
	}
	i.table.Shutdown()
}

// UnloadCrashHandler unloads RenderDoc's crash handler, for applications
// that install their own.
func (i *Instance) UnloadCrashHandler() {
	use()
	i.table.UnloadCrashHandler()
}

// SetLogFilePathTemplate sets the path template capture files are written
// under, without extension; the library appends frame numbers and the
// extension itself. Panics if the template contains a NUL byte.
func (i *Instance) SetLogFilePathTemplate(pathTemplate string) {
	use()
	ptr, err := entry.BytePtrFromString(pathTemplate)
	if err != nil {
		panic(err)
	}
	i.table.SetLogFilePathTemplate(ptr)
}

// GetLogFilePathTemplate returns the current capture path template. The
// library's buffer is copied into an owned string before returning.
func (i *Instance) GetLogFilePathTemplate() string {
	use()
	return entry.BytePtrToString(i.table.GetLogFilePathTemplate())
}

// GetNumCaptures returns how many captures have completed so far.
func (i *Instance) GetNumCaptures() uint32 {
	use()
	return i.table.GetNumCaptures()
}

// GetCapture looks up a completed capture by index. The second return is
// false when the index is out of range. The path length is queried first
// with a nil buffer, then the path is fetched into an exactly sized one.
func (i *Instance) GetCapture(index uint32) (Capture, bool) {
	use()

	var length uint32
	var timestamp uint64
	if i.table.GetCapture(index, nil, &length, &timestamp) != 1 {
		return Capture{}, false
	}
	if length == 0 {
		return Capture{Timestamp: timestamp}, true
	}

	// length counts the terminating NUL.
	buf := make([]byte, length)
	if i.table.GetCapture(index, &buf[0], &length, &timestamp) != 1 {
		return Capture{}, false
	}
	return Capture{
		Path:      entry.BytePtrToString(&buf[0]),
		Timestamp: timestamp,
	}, true
}

// TriggerCapture captures the next frame presented by the active window
// and device. The capture is written under the log file path template.
func (i *Instance) TriggerCapture() {
	use()
	i.table.TriggerCapture()
}

// IsTargetControlConnected reports whether a RenderDoc UI is connected to
// this application over target control.
func (i *Instance) IsTargetControlConnected() bool {
	use()
	return i.table.IsTargetControlConnected() == 1
}

// LaunchReplayUI spawns the replay UI and returns its process id. A
// non-empty cmdLine is passed to the UI and makes it connect back to this
// application over target control. Returns an error when the UI did not
// launch. Panics if cmdLine contains a NUL byte.
func (i *Instance) LaunchReplayUI(cmdLine string) (uint32, error) {
	use()

	var connect uint32
	var ptr *byte
	if cmdLine != "" {
		p, err := entry.BytePtrFromString(cmdLine)
		if err != nil {
			panic(err)
		}
		connect, ptr = 1, p
	}

	pid := i.table.LaunchReplayUI(connect, ptr)
	if pid == 0 {
		return 0, errors.ReplayUIFailed()
	}
	Logger().Debug("launched replay UI", zap.Uint32("pid", pid))
	return pid, nil
}

// SetActiveWindow tells the library which device and window pair the
// capture keys and TriggerCapture apply to.
func (i *Instance) SetActiveWindow(dev DevicePointer, win WindowHandle) {
	use()
	i.table.SetActiveWindow(unsafe.Pointer(dev), unsafe.Pointer(win))
}

// StartFrameCapture begins capturing immediately on the device and window
// pair, without waiting for a frame boundary.
func (i *Instance) StartFrameCapture(dev DevicePointer, win WindowHandle) {
	use()
	i.table.StartFrameCapture(unsafe.Pointer(dev), unsafe.Pointer(win))
}

// IsFrameCapturing reports whether a frame capture is ongoing anywhere in
// the process, not only on this instance's active window.
func (i *Instance) IsFrameCapturing() bool {
	use()
	return i.table.IsFrameCapturing() == 1
}

// EndFrameCapture ends a capture started with StartFrameCapture. The
// baseline revision defines no failure contract for this call, so the
// status is discarded.
func (i *Instance) EndFrameCapture(dev DevicePointer, win WindowHandle) {
	use()
	i.table.EndFrameCapture(unsafe.Pointer(dev), unsafe.Pointer(win))
}
