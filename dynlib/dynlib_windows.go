package dynlib

import "golang.org/x/sys/windows"

func libraryName() string {
	return "renderdoc.dll"
}

func platformOpenLibrary(name string) (uintptr, error) {
	h, err := windows.LoadLibrary(name)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func platformResolveSymbol(ref uintptr, symbol string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(ref), symbol)
}
