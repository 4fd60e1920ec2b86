package entry

import "unsafe"

// TableV100 is the typed view of the baseline function table returned by
// negotiation. Member order mirrors the raw layout; every field is bound
// exactly once, immediately after a successful negotiation, and the table
// is never mutated afterwards, so sharing it across goroutines is safe.
//
// Protocol conventions carried by the members: status returns use 0 for
// failure and 1 for success; option getters signal an invalid option with
// a maximum-value sentinel instead of a status; strings are NUL-terminated
// byte sequences owned by the library.
type TableV100 struct {
	GetAPIVersion func(major, minor, patch *int32)

	SetCaptureOptionU32 func(opt uint32, val uint32) int32
	SetCaptureOptionF32 func(opt uint32, val float32) int32
	GetCaptureOptionU32 func(opt uint32) uint32
	GetCaptureOptionF32 func(opt uint32) float32

	SetFocusToggleKeys func(keys *uint32, num int32)
	SetCaptureKeys     func(keys *uint32, num int32)

	GetOverlayBits  func() uint32
	MaskOverlayBits func(and, or uint32)

	Shutdown           func()
	UnloadCrashHandler func()

	SetLogFilePathTemplate func(pathTemplate *byte)
	GetLogFilePathTemplate func() *byte

	GetNumCaptures func() uint32
	GetCapture     func(idx uint32, logFile *byte, pathLength *uint32, timestamp *uint64) uint32
	TriggerCapture func()

	IsTargetControlConnected func() uint32
	LaunchReplayUI           func(connectTargetControl uint32, cmdLine *byte) uint32

	SetActiveWindow   func(device, window unsafe.Pointer)
	StartFrameCapture func(device, window unsafe.Pointer)
	IsFrameCapturing  func() uint32
	EndFrameCapture   func(device, window unsafe.Pointer) uint32
}

// TableV110 is the typed view negotiated by 1.1.x revisions. Revisions only
// ever append members, so the baseline table embeds unchanged at the front.
type TableV110 struct {
	TableV100

	TriggerMultiFrameCapture func(numFrames uint32)
}
