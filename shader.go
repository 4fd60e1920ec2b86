package renderdoc

// ShaderMagicDebugValue is the magic value applications embed when passing
// a path to external shader debug information, so that RenderDoc can match
// the path up with a stripped shader. Raw byte representation, assuming
// x86 endianness.
var ShaderMagicDebugValue = [16]byte{
	0x20, 0x55, 0xb2, 0xea,
	0x70, 0x66, 0x65, 0x48,
	0x84, 0x29, 0x6c, 0x08,
	0x51, 0x54, 0x00, 0xff,
}

// ShaderMagicDebugValueTruncated is the truncated form of the magic value
// for contexts where only 64 bits are available, such as Vulkan object
// tags. Little-endian interpretation of the first eight bytes.
const ShaderMagicDebugValueTruncated uint64 = 0x48656670eab25520
