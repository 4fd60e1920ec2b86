// Package renderdoc provides an in-application control binding for the
// RenderDoc graphics debugger.
//
// The binding loads RenderDoc's shared library at runtime, negotiates a
// compatible API revision through the single exported RENDERDOC_GetAPI
// symbol, and exposes capture control through a typed capability surface.
// No graphics work happens here: every operation is a synchronous forward
// onto one member of the negotiated function table.
//
// # Architecture Overview
//
// The library is organized into a small set of packages with distinct
// responsibilities:
//
//	renderdoc/           Root package with Instance wrappers and the capability surface
//	├── entry/           Version registry, negotiation, typed function tables
//	├── dynlib/          Process-wide shared-library handle (load once, cache outcome)
//	└── errors/          Structured error types for load/negotiate/dispatch failures
//
// # Quick Start
//
// Construct an instance at the minimum revision the application needs:
//
//	rd, err := renderdoc.New(renderdoc.V100)
//	if err != nil {
//	    // RenderDoc is not injected into this process; run without it.
//	    return
//	}
//
//	rd.SetCaptureOptionU32(renderdoc.APIValidation, 1)
//	rd.SetCaptureKeys([]renderdoc.InputButton{renderdoc.KeyF12})
//	rd.TriggerCapture()
//
// Revisions 1.1.0 and later add multi-frame capture:
//
//	rd, err := renderdoc.NewV110(renderdoc.V110)
//	if err != nil {
//	    return
//	}
//	rd.TriggerMultiFrameCapture(5)
//
// # Versioning
//
// Construction is parameterized by a minimum revision from the closed
// registry in entry (1.0.0 through 1.1.1). The library may negotiate a
// higher revision than requested; it is always backwards compatible with
// the request. An instance typed at the baseline tier statically lacks the
// operations of the next tier, so a capability can only be invoked when the
// negotiated table is guaranteed to carry it.
//
// # Error Model
//
// Construction failures (library absent, entry point missing, revision
// rejected) are returned as structured errors from the errors package.
// Misusing a capability after construction, such as setting an invalid
// capture option value, panics: RenderDoc leaves argument misuse undefined,
// so continuing would mask the bug.
//
// # Thread Safety
//
// The shared library is loaded once per process and the outcome is cached.
// Negotiation is serialized internally. A negotiated function table is
// immutable, so instances and their clones may issue independent calls from
// multiple goroutines; ordering between mutating calls is the caller's
// concern, exactly as it is for the underlying C API.
package renderdoc
