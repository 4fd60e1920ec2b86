package renderdoc

// 1.1.x additions. The table only ever grows, so everything in v100.go is
// inherited through the embedded Instance.

// TriggerMultiFrameCapture captures the next numFrames frames presented by
// the active window and device, writing one capture file per frame under
// the log file path template.
func (i *InstanceV110) TriggerMultiFrameCapture(numFrames uint32) {
	use()
	i.v110.TriggerMultiFrameCapture(numFrames)
}
