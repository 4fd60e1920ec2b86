// Package entry resolves and negotiates the RenderDoc in-application API.
//
// The library exports exactly one symbol, RENDERDOC_GetAPI. Everything else
// is reached through the function table that symbol hands back: callers pass
// a requested minimum revision and an out-pointer, and on a status of 1 the
// out-pointer refers to a table of C function pointers shaped for the
// revision the library chose (possibly newer than requested, always
// backwards compatible with it).
//
// # Negotiation Flow
//
//  1. dynlib.Load() resolves the shared library once per process
//  2. RENDERDOC_GetAPI is looked up; absence means the installed build
//     predates the negotiation mechanism and is reported distinctly
//  3. The negotiation call runs under a package mutex (the library forbids
//     concurrent negotiation) and the returned table is copied out by value
//  4. Each copied member is bound to a typed Go function via purego
//
// # Table Layouts
//
// Raw layouts mirror the C structs member for member. Revisions only append:
//
//	Revision   Raw layout      Typed view   Adds
//	──────────────────────────────────────────────────────────────
//	1.0.x      rawTableV100    TableV100    baseline capture control
//	1.1.x      rawTableV110    TableV110    TriggerMultiFrameCapture
//
// This is the only package that touches raw function pointers; everything
// above it works with the typed tables, which are immutable once bound and
// safe to share across goroutines.
//
// # Loader Seam
//
// The Loader interface is what the instance wrappers consume. DefaultLoader
// negotiates against the real library; tests substitute loaders that build
// typed tables from plain Go functions.
package entry
