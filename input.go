package renderdoc

// InputButton is a key code understood by the capture-key and focus-toggle
// configuration calls. Alphanumeric keys use their ASCII values; everything
// non-printable sits above 0x100 in an order fixed by the library's ABI.
type InputButton uint32

const (
	// Key0 through Key9 are the digit keys above the letters.
	Key0 InputButton = 0x30
	Key1 InputButton = 0x31
	Key2 InputButton = 0x32
	Key3 InputButton = 0x33
	Key4 InputButton = 0x34
	Key5 InputButton = 0x35
	Key6 InputButton = 0x36
	Key7 InputButton = 0x37
	Key8 InputButton = 0x38
	Key9 InputButton = 0x39

	KeyA InputButton = 0x41
	KeyB InputButton = 0x42
	KeyC InputButton = 0x43
	KeyD InputButton = 0x44
	KeyE InputButton = 0x45
	KeyF InputButton = 0x46
	KeyG InputButton = 0x47
	KeyH InputButton = 0x48
	KeyI InputButton = 0x49
	KeyJ InputButton = 0x4A
	KeyK InputButton = 0x4B
	KeyL InputButton = 0x4C
	KeyM InputButton = 0x4D
	KeyN InputButton = 0x4E
	KeyO InputButton = 0x4F
	KeyP InputButton = 0x50
	KeyQ InputButton = 0x51
	KeyR InputButton = 0x52
	KeyS InputButton = 0x53
	KeyT InputButton = 0x54
	KeyU InputButton = 0x55
	KeyV InputButton = 0x56
	KeyW InputButton = 0x57
	KeyX InputButton = 0x58
	KeyY InputButton = 0x59
	KeyZ InputButton = 0x5A

	// KeyNonPrintable marks the start of the non-printable block. The rest
	// of the ASCII range below it is left free for the library to assign.
	KeyNonPrintable InputButton = 0x100

	KeyDivide   InputButton = 0x101 // numpad divide
	KeyMultiply InputButton = 0x102 // numpad multiply
	KeySubtract InputButton = 0x103 // numpad subtract
	KeyPlus     InputButton = 0x104 // numpad add

	KeyF1  InputButton = 0x105
	KeyF2  InputButton = 0x106
	KeyF3  InputButton = 0x107
	KeyF4  InputButton = 0x108
	KeyF5  InputButton = 0x109
	KeyF6  InputButton = 0x10A
	KeyF7  InputButton = 0x10B
	KeyF8  InputButton = 0x10C
	KeyF9  InputButton = 0x10D
	KeyF10 InputButton = 0x10E
	KeyF11 InputButton = 0x10F
	KeyF12 InputButton = 0x110

	KeyHome   InputButton = 0x111
	KeyEnd    InputButton = 0x112
	KeyInsert InputButton = 0x113
	KeyDelete InputButton = 0x114
	KeyPageUp InputButton = 0x115
	KeyPageDn InputButton = 0x116

	KeyBackspace InputButton = 0x117
	KeyTab       InputButton = 0x118
	KeyPrtScrn   InputButton = 0x119
	KeyPause     InputButton = 0x11A

	KeyMax InputButton = 0x11B
)
