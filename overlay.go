package renderdoc

import "strings"

// OverlayBits is the bitmask controlling RenderDoc's in-application overlay.
// The bit values are ABI.
type OverlayBits uint32

const (
	// OverlayEnabled controls whether the overlay is shown at all.
	OverlayEnabled OverlayBits = 0x1
	// OverlayFrameRate shows the average, minimum and maximum sampled
	// frame rate.
	OverlayFrameRate OverlayBits = 0x2
	// OverlayFrameNumber shows the current frame number.
	OverlayFrameNumber OverlayBits = 0x4
	// OverlayCaptureList shows recent captures out of the total captures
	// made.
	OverlayCaptureList OverlayBits = 0x8

	// OverlayDefault is the overlay's default configuration.
	OverlayDefault = OverlayEnabled | OverlayFrameRate | OverlayFrameNumber | OverlayCaptureList
	// OverlayAll enables every configuration bit.
	OverlayAll = ^OverlayBits(0)
	// OverlayNone disables every configuration bit.
	OverlayNone OverlayBits = 0
)

// Contains reports whether every bit set in other is also set in b.
func (b OverlayBits) Contains(other OverlayBits) bool {
	return b&other == other
}

// With returns b with the bits of other set.
func (b OverlayBits) With(other OverlayBits) OverlayBits {
	return b | other
}

// Without returns b with the bits of other cleared.
func (b OverlayBits) Without(other OverlayBits) OverlayBits {
	return b &^ other
}

// String returns the named bits of b joined with "|".
func (b OverlayBits) String() string {
	if b == OverlayNone {
		return "None"
	}
	if b == OverlayAll {
		return "All"
	}

	names := []struct {
		bit  OverlayBits
		name string
	}{
		{OverlayEnabled, "Enabled"},
		{OverlayFrameRate, "FrameRate"},
		{OverlayFrameNumber, "FrameNumber"},
		{OverlayCaptureList, "CaptureList"},
	}

	var parts []string
	rest := b
	for _, n := range names {
		if rest.Contains(n.bit) {
			parts = append(parts, n.name)
			rest = rest.Without(n.bit)
		}
	}
	if rest != 0 {
		parts = append(parts, "0x"+hexu32(uint32(rest)))
	}
	return strings.Join(parts, "|")
}

func hexu32(n uint32) string {
	const digits = "0123456789abcdef"
	if n == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = digits[n&0xF]
		n >>= 4
	}
	return string(buf[i:])
}
