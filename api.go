package renderdoc

// CaptureControl is the baseline capability surface, guaranteed by every
// revision from 1.0.0 up. Each operation forwards onto one member of the
// negotiated function table; see the Instance methods for the individual
// contracts.
type CaptureControl interface {
	GetAPIVersion() (major, minor, patch int)

	SetCaptureOptionU32(opt CaptureOption, val uint32)
	SetCaptureOptionF32(opt CaptureOption, val float32)
	GetCaptureOptionU32(opt CaptureOption) uint32
	GetCaptureOptionF32(opt CaptureOption) float32

	SetFocusToggleKeys(keys []InputButton)
	SetCaptureKeys(keys []InputButton)

	GetOverlayBits() OverlayBits
	MaskOverlayBits(and, or OverlayBits)

	Shutdown()
	UnloadCrashHandler()

	SetLogFilePathTemplate(pathTemplate string)
	GetLogFilePathTemplate() string

	GetNumCaptures() uint32
	GetCapture(index uint32) (Capture, bool)
	TriggerCapture()

	IsTargetControlConnected() bool
	LaunchReplayUI(cmdLine string) (uint32, error)

	SetActiveWindow(dev DevicePointer, win WindowHandle)
	StartFrameCapture(dev DevicePointer, win WindowHandle)
	IsFrameCapturing() bool
	EndFrameCapture(dev DevicePointer, win WindowHandle)
}

// CaptureControlV110 is the capability surface of 1.1.x revisions: the
// baseline surface plus multi-frame capture.
type CaptureControlV110 interface {
	CaptureControl

	TriggerMultiFrameCapture(numFrames uint32)
}

var (
	_ CaptureControl     = (*Instance)(nil)
	_ CaptureControlV110 = (*InstanceV110)(nil)
)
