//go:build darwin || freebsd || linux

package dynlib

import (
	"runtime"

	"github.com/ebitengine/purego"
)

// libraryName returns the file name the platform loader resolves. The
// Android build of the tool ships as a Vulkan layer, under the layer name.
func libraryName() string {
	switch runtime.GOOS {
	case "android":
		return "libVkLayer_GLES_RenderDoc.so"
	case "darwin":
		return "librenderdoc.dylib"
	default:
		return "librenderdoc.so"
	}
}

func platformOpenLibrary(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func platformResolveSymbol(ref uintptr, symbol string) (uintptr, error) {
	return purego.Dlsym(ref, symbol)
}
