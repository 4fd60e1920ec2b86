package renderdoc

// CaptureOption selects one of RenderDoc's capture settings. The values are
// ABI: they must match the library's own enumeration exactly.
type CaptureOption uint32

const (
	// AllowVSync lets the application enable vertical synchronization.
	// Default 1.
	AllowVSync CaptureOption = 0
	// AllowFullscreen lets the application enter fullscreen mode. Default 1.
	AllowFullscreen CaptureOption = 1
	// APIValidation records API debugging events and messages. Previously
	// known as DebugDeviceMode. Default 0.
	APIValidation CaptureOption = 2
	// CaptureCallstacks captures CPU callstacks for API events. Default 0.
	CaptureCallstacks CaptureOption = 3
	// CaptureCallstacksOnlyDraws restricts callstack capture to drawcalls.
	// Does nothing unless CaptureCallstacks is enabled. Default 0.
	CaptureCallstacksOnlyDraws CaptureOption = 4
	// DelayForDebugger is a delay in seconds to wait for a debugger to
	// attach after injection. The library truncates the value to whole
	// seconds. Default 0.
	DelayForDebugger CaptureOption = 5
	// VerifyMapWrites verifies writes to mapped buffers by checking memory
	// beyond the bounds of the returned pointer. Default 0.
	VerifyMapWrites CaptureOption = 6
	// HookIntoChildren hooks system calls that create child processes and
	// injects RenderDoc into them recursively with the same options.
	// Default 0.
	HookIntoChildren CaptureOption = 7
	// RefAllResources references all resources available at capture time,
	// not only those needed for the captured frame. Default 0.
	RefAllResources CaptureOption = 8
	// SaveAllInitials saves the initial state for all resources regardless
	// of apparent usage. Default 0.
	SaveAllInitials CaptureOption = 9
	// CaptureAllCmdLists captures command lists recorded from application
	// start. Newer APIs (Vulkan, D3D12) always capture all command lists
	// and ignore this option. Default 0.
	CaptureAllCmdLists CaptureOption = 10
	// DebugOutputMute mutes API debug output while APIValidation is
	// enabled. Default 1.
	DebugOutputMute CaptureOption = 11
)

// CaptureOptions returns every option in the enumeration, in ABI order.
func CaptureOptions() []CaptureOption {
	return []CaptureOption{
		AllowVSync,
		AllowFullscreen,
		APIValidation,
		CaptureCallstacks,
		CaptureCallstacksOnlyDraws,
		DelayForDebugger,
		VerifyMapWrites,
		HookIntoChildren,
		RefAllResources,
		SaveAllInitials,
		CaptureAllCmdLists,
		DebugOutputMute,
	}
}

// String returns the option's name.
func (o CaptureOption) String() string {
	switch o {
	case AllowVSync:
		return "AllowVSync"
	case AllowFullscreen:
		return "AllowFullscreen"
	case APIValidation:
		return "APIValidation"
	case CaptureCallstacks:
		return "CaptureCallstacks"
	case CaptureCallstacksOnlyDraws:
		return "CaptureCallstacksOnlyDraws"
	case DelayForDebugger:
		return "DelayForDebugger"
	case VerifyMapWrites:
		return "VerifyMapWrites"
	case HookIntoChildren:
		return "HookIntoChildren"
	case RefAllResources:
		return "RefAllResources"
	case SaveAllInitials:
		return "SaveAllInitials"
	case CaptureAllCmdLists:
		return "CaptureAllCmdLists"
	case DebugOutputMute:
		return "DebugOutputMute"
	}
	return "CaptureOption(" + uitoa(uint32(o)) + ")"
}

func uitoa(n uint32) string {
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
