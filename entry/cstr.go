package entry

import (
	"strings"
	"unsafe"

	"github.com/wippyai/renderdoc-go/errors"
)

// BytePtrFromString returns a pointer to a NUL-terminated copy of s for a
// call into the library. The library reads the bytes during the call only;
// nothing retains the copy afterwards.
func BytePtrFromString(s string) (*byte, error) {
	if strings.IndexByte(s, 0) != -1 {
		return nil, errors.New(errors.PhaseDispatch, errors.KindMisuse).
			Detail("string contains interior NUL byte").
			Build()
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return &buf[0], nil
}

// BytePtrToString copies the NUL-terminated sequence at p into an owned
// string. The library keeps ownership of the memory behind p, so the copy
// must happen before the next call into it.
func BytePtrToString(p *byte) string {
	if p == nil || *p == 0 {
		return ""
	}
	n := 0
	for ptr := unsafe.Pointer(p); *(*byte)(ptr) != 0; n++ {
		ptr = unsafe.Add(ptr, 1)
	}
	return string(unsafe.Slice(p, n))
}
