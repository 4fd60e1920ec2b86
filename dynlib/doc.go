// Package dynlib owns the process-wide handle to the RenderDoc shared
// library.
//
// The library is resolved by its fixed, platform-specific file name through
// the OS loader's normal search path: renderdoc.dll on Windows,
// libVkLayer_GLES_RenderDoc.so on Android, librenderdoc.dylib on macOS and
// librenderdoc.so elsewhere.
//
// Loading is attempted lazily, exactly once per process, and the outcome is
// cached: a failed load keeps failing fast with the same OS loader reason,
// because retrying cannot succeed without an external change (fixing the
// installation). There is no unload; the only teardown the library offers is
// its own Shutdown table call, which is not a dynlib concern.
package dynlib
