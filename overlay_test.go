package renderdoc

import "testing"

func TestOverlayBitValues(t *testing.T) {
	tests := []struct {
		bits OverlayBits
		want uint32
	}{
		{OverlayEnabled, 0x1},
		{OverlayFrameRate, 0x2},
		{OverlayFrameNumber, 0x4},
		{OverlayCaptureList, 0x8},
		{OverlayDefault, 0xF},
		{OverlayAll, 0xFFFFFFFF},
		{OverlayNone, 0},
	}

	for _, tt := range tests {
		if uint32(tt.bits) != tt.want {
			t.Errorf("OverlayBits = %#x, want %#x", uint32(tt.bits), tt.want)
		}
	}
}

func TestOverlayBitsOperations(t *testing.T) {
	b := OverlayNone.With(OverlayEnabled).With(OverlayFrameNumber)

	if !b.Contains(OverlayEnabled) || !b.Contains(OverlayFrameNumber) {
		t.Errorf("bits %v missing what was set", b)
	}
	if b.Contains(OverlayFrameRate) {
		t.Errorf("bits %v contain what was never set", b)
	}
	if !b.Contains(OverlayEnabled | OverlayFrameNumber) {
		t.Error("Contains should require all bits of the argument")
	}
	if b.Contains(OverlayEnabled | OverlayFrameRate) {
		t.Error("Contains should fail when any argument bit is missing")
	}

	b = b.Without(OverlayEnabled)
	if b.Contains(OverlayEnabled) {
		t.Errorf("bits %v contain what was cleared", b)
	}
	if !b.Contains(OverlayFrameNumber) {
		t.Errorf("Without cleared an unrelated bit: %v", b)
	}
}

func TestOverlayBitsString(t *testing.T) {
	tests := []struct {
		bits OverlayBits
		want string
	}{
		{OverlayNone, "None"},
		{OverlayAll, "All"},
		{OverlayEnabled, "Enabled"},
		{OverlayDefault, "Enabled|FrameRate|FrameNumber|CaptureList"},
		{OverlayEnabled | OverlayBits(0x100), "Enabled|0x100"},
	}

	for _, tt := range tests {
		if got := tt.bits.String(); got != tt.want {
			t.Errorf("OverlayBits(%#x).String() = %q, want %q", uint32(tt.bits), got, tt.want)
		}
	}
}
