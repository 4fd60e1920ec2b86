package renderdoc

import "unsafe"

// DevicePointer is a raw handle to the graphics API's root object: an
// ID3D11Device, ID3D12Device, HGLRC/GLXContext, VkInstance, and so on.
// It is passed through to the library unchanged.
type DevicePointer unsafe.Pointer

// WindowHandle is a raw OS window handle (HWND, Xlib Window, xcb_window_t,
// ANativeWindow). It is passed through to the library unchanged.
type WindowHandle unsafe.Pointer

// Capture describes one completed capture on disk. Records are produced by
// indexed lookup and never stored on this side.
type Capture struct {
	// Path is the log file the capture was written to.
	Path string
	// Timestamp is the time of capture in seconds since the Unix epoch.
	Timestamp uint64
}
