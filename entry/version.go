package entry

import "strings"

// Version identifies a known API revision by the value the negotiation
// entry point accepts: major*10000 + minor*100 + patch.
type Version uint32

const (
	V100 Version = 10000 // 1.0.0
	V101 Version = 10001 // 1.0.1
	V102 Version = 10002 // 1.0.2
	V110 Version = 10100 // 1.1.0
	V111 Version = 10101 // 1.1.1
)

// Tier classifies revisions by the function-table shape they negotiate.
// Within a tier the table layout is identical; a later tier appends
// members to the previous tier's layout.
type Tier int

const (
	TierV100 Tier = iota + 1 // baseline capture-control table
	TierV110                 // adds multi-frame capture
)

// Versions returns the known revisions in ascending order.
func Versions() []Version {
	return []Version{V100, V101, V102, V110, V111}
}

// Valid reports whether v is a revision in the registry.
func (v Version) Valid() bool {
	switch v {
	case V100, V101, V102, V110, V111:
		return true
	}
	return false
}

// Tier returns the table shape class of v, or 0 for values outside the registry.
func (v Version) Tier() Tier {
	switch v {
	case V100, V101, V102:
		return TierV100
	case V110, V111:
		return TierV110
	}
	return 0
}

// Triple splits v into its major, minor and patch components.
func (v Version) Triple() (major, minor, patch uint32) {
	n := uint32(v)
	return n / 10000, (n / 100) % 100, n % 100
}

// AtLeast reports whether v is the same revision as want or a later one.
func (v Version) AtLeast(want Version) bool {
	return v >= want
}

// String returns the revision as "major.minor.patch"
func (v Version) String() string {
	major, minor, patch := v.Triple()
	return strings.Join([]string{
		uintToStr(major),
		uintToStr(minor),
		uintToStr(patch),
	}, ".")
}

// ParseVersion parses a revision string like "1.1.0" or "1.1" and maps it
// onto the registry. Strings naming a revision outside the registry are
// rejected the same way malformed input is.
func ParseVersion(s string) (Version, bool) {
	if s == "" {
		return 0, false
	}

	parts := strings.Split(s, ".")
	if len(parts) < 1 || len(parts) > 3 {
		return 0, false
	}

	var comps [3]uint32
	for i, p := range parts {
		if p == "" {
			return 0, false
		}
		var n uint32
		for _, c := range p {
			if c < '0' || c > '9' {
				return 0, false
			}
			n = n*10 + uint32(c-'0')
			// Components above two digits cannot encode into a revision value.
			if n > 99 {
				return 0, false
			}
		}
		comps[i] = n
	}

	v := Version(comps[0]*10000 + comps[1]*100 + comps[2])
	if !v.Valid() {
		return 0, false
	}
	return v, true
}

func uintToStr(n uint32) string {
	if n == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
