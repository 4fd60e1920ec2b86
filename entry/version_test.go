package entry

import "testing"

func TestVersionValues(t *testing.T) {
	// Negotiation values are ABI and must never drift.
	tests := []struct {
		v    Version
		want uint32
	}{
		{V100, 10000},
		{V101, 10001},
		{V102, 10002},
		{V110, 10100},
		{V111, 10101},
	}

	for _, tt := range tests {
		if uint32(tt.v) != tt.want {
			t.Errorf("%s = %d, want %d", tt.v, uint32(tt.v), tt.want)
		}
	}
}

func TestVersionValid(t *testing.T) {
	for _, v := range Versions() {
		if !v.Valid() {
			t.Errorf("%s should be valid", v)
		}
	}

	for _, v := range []Version{0, 9999, 10003, 10099, 10102, 10200, 20000} {
		if v.Valid() {
			t.Errorf("Version(%d) should not be valid", uint32(v))
		}
	}
}

func TestVersionTier(t *testing.T) {
	tests := []struct {
		v    Version
		want Tier
	}{
		{V100, TierV100},
		{V101, TierV100},
		{V102, TierV100},
		{V110, TierV110},
		{V111, TierV110},
		{Version(99999), 0},
	}

	for _, tt := range tests {
		if got := tt.v.Tier(); got != tt.want {
			t.Errorf("Version(%d).Tier() = %v, want %v", uint32(tt.v), got, tt.want)
		}
	}
}

func TestVersionTriple(t *testing.T) {
	tests := []struct {
		v                   Version
		major, minor, patch uint32
	}{
		{V100, 1, 0, 0},
		{V102, 1, 0, 2},
		{V110, 1, 1, 0},
		{V111, 1, 1, 1},
	}

	for _, tt := range tests {
		major, minor, patch := tt.v.Triple()
		if major != tt.major || minor != tt.minor || patch != tt.patch {
			t.Errorf("%d.Triple() = (%d,%d,%d), want (%d,%d,%d)",
				uint32(tt.v), major, minor, patch, tt.major, tt.minor, tt.patch)
		}
	}
}

func TestVersionString(t *testing.T) {
	tests := []struct {
		v    Version
		want string
	}{
		{V100, "1.0.0"},
		{V101, "1.0.1"},
		{V102, "1.0.2"},
		{V110, "1.1.0"},
		{V111, "1.1.1"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input string
		want  Version
		ok    bool
	}{
		{"1.0.0", V100, true},
		{"1.0.1", V101, true},
		{"1.0.2", V102, true},
		{"1.1.0", V110, true},
		{"1.1.1", V111, true},
		{"1.1", V110, true},
		{"1", V100, true},
		{"", 0, false},
		{"1.2.0", 0, false}, // well formed but outside the registry
		{"2.0.0", 0, false},
		{"0.9.9", 0, false},
		{"1.0.3", 0, false},
		{"1..0", 0, false},
		{"1.0.0.0", 0, false},
		{"1.100.0", 0, false},
		{"1.1.x", 0, false},
		{"v1.1.0", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseVersion(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseVersion(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseVersion_RoundTrip(t *testing.T) {
	for _, v := range Versions() {
		got, ok := ParseVersion(v.String())
		if !ok || got != v {
			t.Errorf("ParseVersion(%q) = (%v, %v), want (%v, true)", v.String(), got, ok, v)
		}
	}
}

func TestVersionsAscending(t *testing.T) {
	vs := Versions()
	if len(vs) != 5 {
		t.Fatalf("len(Versions()) = %d, want 5", len(vs))
	}
	for i := 1; i < len(vs); i++ {
		if vs[i-1] >= vs[i] {
			t.Errorf("Versions()[%d] = %v >= Versions()[%d] = %v", i-1, vs[i-1], i, vs[i])
		}
	}
}

func TestVersionAtLeast(t *testing.T) {
	tests := []struct {
		v, want Version
		ok      bool
	}{
		{V110, V100, true},
		{V110, V110, true},
		{V111, V110, true},
		{V100, V110, false},
		{V102, V110, false},
	}

	for _, tt := range tests {
		if got := tt.v.AtLeast(tt.want); got != tt.ok {
			t.Errorf("%s.AtLeast(%s) = %v, want %v", tt.v, tt.want, got, tt.ok)
		}
	}
}
