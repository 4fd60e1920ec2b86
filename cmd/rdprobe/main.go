package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	renderdoc "github.com/wippyai/renderdoc-go"
	"github.com/wippyai/renderdoc-go/entry"
)

func main() {
	var (
		minVer      = flag.String("min", "1.1.1", "Minimum API revision to request (e.g. 1.0.0)")
		template    = flag.String("template", "", "Set the capture path template before anything else")
		captures    = flag.Bool("captures", false, "List completed captures and exit")
		trigger     = flag.Bool("trigger", false, "Trigger a single-frame capture")
		launchUI    = flag.String("launch-replay", "", "Launch the replay UI with the given command line (\"-\" for none)")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			renderdoc.SetLogger(logger)
			entry.SetLogger(logger)
		}
	}

	min, ok := entry.ParseVersion(*minVer)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown API revision %q. Known revisions:", *minVer)
		for _, v := range entry.Versions() {
			fmt.Fprintf(os.Stderr, " %s", v)
		}
		fmt.Fprintln(os.Stderr)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(min); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(min, *template, *captures, *trigger, *launchUI); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// probed is the capability surface the probe works against. Multi-frame
// capture is present only when a 1.1.x revision was requested.
type probed struct {
	rd   renderdoc.CaptureControl
	v110 renderdoc.CaptureControlV110
}

func connect(min entry.Version) (probed, error) {
	if min.Tier() >= entry.TierV110 {
		rd, err := renderdoc.NewV110(min)
		if err != nil {
			return probed{}, err
		}
		return probed{rd: rd, v110: rd}, nil
	}
	rd, err := renderdoc.New(min)
	if err != nil {
		return probed{}, err
	}
	return probed{rd: rd}, nil
}

func run(min entry.Version, template string, captures, trigger bool, launchUI string) error {
	p, err := connect(min)
	if err != nil {
		return fmt.Errorf("connect to RenderDoc: %w", err)
	}

	major, minor, patch := p.rd.GetAPIVersion()
	fmt.Printf("Requested:  %s\n", min)
	fmt.Printf("Negotiated: %d.%d.%d\n", major, minor, patch)

	if template != "" {
		p.rd.SetLogFilePathTemplate(template)
	}
	fmt.Printf("Template:   %s\n", p.rd.GetLogFilePathTemplate())
	fmt.Printf("Overlay:    %s\n", p.rd.GetOverlayBits())
	fmt.Printf("UI attached: %v\n", p.rd.IsTargetControlConnected())

	fmt.Printf("\nCapture options:\n")
	for _, opt := range renderdoc.CaptureOptions() {
		fmt.Printf("  %-28s %d\n", opt, p.rd.GetCaptureOptionU32(opt))
	}

	if trigger {
		p.rd.TriggerCapture()
		fmt.Printf("\nTriggered a capture of the next frame.\n")
	}

	n := p.rd.GetNumCaptures()
	fmt.Printf("\nCaptures: %d\n", n)
	if captures {
		for i := uint32(0); i < n; i++ {
			c, ok := p.rd.GetCapture(i)
			if !ok {
				break
			}
			fmt.Printf("  [%d] %s (timestamp %d)\n", i, c.Path, c.Timestamp)
		}
	}

	if launchUI != "" {
		cmdLine := launchUI
		if cmdLine == "-" {
			cmdLine = ""
		}
		pid, err := p.rd.LaunchReplayUI(cmdLine)
		if err != nil {
			return fmt.Errorf("launch replay UI: %w", err)
		}
		fmt.Printf("\nReplay UI launched, pid %d\n", pid)
	}

	return nil
}
