package renderdoc

import "golang.org/x/sys/windows"

// ShaderMagicDebugValueGUID is the shader debug-path magic value as a GUID,
// for consumption by D3D SetPrivateData.
var ShaderMagicDebugValueGUID = windows.GUID{
	Data1: 0xeab25520,
	Data2: 0x6670,
	Data3: 0x4865,
	Data4: [8]byte{0x84, 0x29, 0x6c, 0x08, 0x51, 0x54, 0x00, 0xff},
}
