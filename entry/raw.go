package entry

import (
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/wippyai/renderdoc-go/errors"
)

// negotiateSymbol is the single entry point the library exports for API
// negotiation: (requested revision, out-pointer to table) -> int32 status.
const negotiateSymbol = "RENDERDOC_GetAPI"

// statusOK is the only negotiation status that makes the out-pointer valid.
const statusOK = 1

// rawTableV100 mirrors the binary layout the library populates for 1.0.x
// revisions: a fixed-order aggregate of C function pointers. The order is
// ABI; revisions append members at the end and never remove or reorder.
type rawTableV100 struct {
	getAPIVersion uintptr

	setCaptureOptionU32 uintptr
	setCaptureOptionF32 uintptr
	getCaptureOptionU32 uintptr
	getCaptureOptionF32 uintptr

	setFocusToggleKeys uintptr
	setCaptureKeys     uintptr

	getOverlayBits  uintptr
	maskOverlayBits uintptr

	shutdown           uintptr
	unloadCrashHandler uintptr

	setLogFilePathTemplate uintptr
	getLogFilePathTemplate uintptr

	getNumCaptures uintptr
	getCapture     uintptr
	triggerCapture uintptr

	isTargetControlConnected uintptr
	launchReplayUI           uintptr

	setActiveWindow   uintptr
	startFrameCapture uintptr
	isFrameCapturing  uintptr
	endFrameCapture   uintptr
}

// rawTableV110 is the 1.1.x layout: the baseline members followed by the
// appended ones.
type rawTableV110 struct {
	rawTableV100

	triggerMultiFrameCapture uintptr
}

// negotiateRaw invokes the negotiation entry point at addr. On success the
// returned pointer references the library's own table; the caller must copy
// the table out by value and must not alias the pointer past that copy. On
// any non-success status no field behind the pointer is valid.
func negotiateRaw(addr uintptr, min Version) (unsafe.Pointer, error) {
	var getAPI func(version uint32, outAPIPointers *unsafe.Pointer) int32
	purego.RegisterFunc(&getAPI, addr)

	var out unsafe.Pointer
	if status := getAPI(uint32(min), &out); status != statusOK {
		return nil, errors.IncompatibleVersion(min.String(), status)
	}
	return out, nil
}

// bindV100 registers each copied member as a typed Go function.
func bindV100(raw rawTableV100) *TableV100 {
	t := &TableV100{}
	purego.RegisterFunc(&t.GetAPIVersion, raw.getAPIVersion)
	purego.RegisterFunc(&t.SetCaptureOptionU32, raw.setCaptureOptionU32)
	purego.RegisterFunc(&t.SetCaptureOptionF32, raw.setCaptureOptionF32)
	purego.RegisterFunc(&t.GetCaptureOptionU32, raw.getCaptureOptionU32)
	purego.RegisterFunc(&t.GetCaptureOptionF32, raw.getCaptureOptionF32)
	purego.RegisterFunc(&t.SetFocusToggleKeys, raw.setFocusToggleKeys)
	purego.RegisterFunc(&t.SetCaptureKeys, raw.setCaptureKeys)
	purego.RegisterFunc(&t.GetOverlayBits, raw.getOverlayBits)
	purego.RegisterFunc(&t.MaskOverlayBits, raw.maskOverlayBits)
	purego.RegisterFunc(&t.Shutdown, raw.shutdown)
	purego.RegisterFunc(&t.UnloadCrashHandler, raw.unloadCrashHandler)
	purego.RegisterFunc(&t.SetLogFilePathTemplate, raw.setLogFilePathTemplate)
	purego.RegisterFunc(&t.GetLogFilePathTemplate, raw.getLogFilePathTemplate)
	purego.RegisterFunc(&t.GetNumCaptures, raw.getNumCaptures)
	purego.RegisterFunc(&t.GetCapture, raw.getCapture)
	purego.RegisterFunc(&t.TriggerCapture, raw.triggerCapture)
	purego.RegisterFunc(&t.IsTargetControlConnected, raw.isTargetControlConnected)
	purego.RegisterFunc(&t.LaunchReplayUI, raw.launchReplayUI)
	purego.RegisterFunc(&t.SetActiveWindow, raw.setActiveWindow)
	purego.RegisterFunc(&t.StartFrameCapture, raw.startFrameCapture)
	purego.RegisterFunc(&t.IsFrameCapturing, raw.isFrameCapturing)
	purego.RegisterFunc(&t.EndFrameCapture, raw.endFrameCapture)
	return t
}

func bindV110(raw rawTableV110) *TableV110 {
	t := &TableV110{TableV100: *bindV100(raw.rawTableV100)}
	purego.RegisterFunc(&t.TriggerMultiFrameCapture, raw.triggerMultiFrameCapture)
	return t
}
