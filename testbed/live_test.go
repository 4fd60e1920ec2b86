// Package testbed exercises the binding against a real RenderDoc install.
// Every test skips cleanly when the library is not loadable, so the suite
// is safe to run anywhere; under an injected RenderDoc it runs the full
// construct-configure-capture sequence.
package testbed

import (
	stderrors "errors"
	"testing"

	renderdoc "github.com/wippyai/renderdoc-go"
	"github.com/wippyai/renderdoc-go/errors"
)

// live constructs an instance against the real library, skipping the test
// when RenderDoc is not present in this process.
func live(t *testing.T) *renderdoc.InstanceV110 {
	t.Helper()

	rd, err := renderdoc.NewV110(renderdoc.V110)
	if err != nil {
		if stderrors.Is(err, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindLibraryUnavailable}) {
			t.Skipf("RenderDoc not loadable: %v", err)
		}
		t.Fatalf("construct against live library: %v", err)
	}
	return rd
}

func TestLive_NegotiationIsDeterministic(t *testing.T) {
	a := live(t)
	b := live(t)

	amj, amn, apt := a.GetAPIVersion()
	bmj, bmn, bpt := b.GetAPIVersion()
	if amj != bmj || amn != bmn || apt != bpt {
		t.Errorf("two constructions negotiated %d.%d.%d and %d.%d.%d",
			amj, amn, apt, bmj, bmn, bpt)
	}
	if amj < 1 || (amj == 1 && amn < 1) {
		t.Errorf("negotiated %d.%d.%d, below the requested 1.1.0", amj, amn, apt)
	}
}

func TestLive_OptionRoundTrip(t *testing.T) {
	rd := live(t)

	// The library truncates the debugger delay to whole seconds.
	rd.SetCaptureOptionF32(renderdoc.DelayForDebugger, 2.5)
	if got := rd.GetCaptureOptionF32(renderdoc.DelayForDebugger); got != 2.0 {
		t.Errorf("DelayForDebugger = %g after setting 2.5, want 2.0", got)
	}
	rd.SetCaptureOptionF32(renderdoc.DelayForDebugger, 0)

	for _, opt := range renderdoc.CaptureOptions() {
		if opt == renderdoc.DelayForDebugger {
			continue
		}
		was := rd.GetCaptureOptionU32(opt)
		rd.SetCaptureOptionU32(opt, was)
		if got := rd.GetCaptureOptionU32(opt); got != was {
			t.Errorf("%s changed from %d to %d on an idempotent set", opt, was, got)
		}
	}
}

func TestLive_CaptureIndexExhaustion(t *testing.T) {
	rd := live(t)

	n := rd.GetNumCaptures()
	if c, ok := rd.GetCapture(n); ok {
		t.Errorf("GetCapture(%d) = %+v, want absent at the count boundary", n, c)
	}

	// Every index below the count must resolve to a real record.
	for i := uint32(0); i < n; i++ {
		c, ok := rd.GetCapture(i)
		if !ok {
			t.Errorf("GetCapture(%d) absent with count %d", i, n)
			continue
		}
		if c.Path == "" {
			t.Errorf("GetCapture(%d) returned an empty path", i)
		}
	}
}

func TestLive_OverlayMaskObservable(t *testing.T) {
	rd := live(t)

	was := rd.GetOverlayBits()
	rd.MaskOverlayBits(renderdoc.OverlayAll.Without(renderdoc.OverlayFrameRate), renderdoc.OverlayNone)
	if rd.GetOverlayBits().Contains(renderdoc.OverlayFrameRate) {
		t.Error("frame rate bit survived masking")
	}
	rd.MaskOverlayBits(renderdoc.OverlayAll, was)
}

func TestLive_RejectsFutureRevision(t *testing.T) {
	// Force a load first so a missing library skips instead of failing.
	live(t)

	// No registry revision above 1.1.1 exists; asking for an unknown value
	// must be rejected before any negotiation happens.
	_, err := renderdoc.New(renderdoc.Version(99999))
	if err == nil {
		t.Fatal("constructed an instance at an unknown revision")
	}
	if stderrors.Is(err, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindLibraryUnavailable}) {
		t.Errorf("err = %v, must not surface as a load failure", err)
	}
}
