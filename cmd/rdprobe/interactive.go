package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	renderdoc "github.com/wippyai/renderdoc-go"
	"github.com/wippyai/renderdoc-go/entry"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#00875F")).
			Padding(0, 1)

	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#00875F"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateMenu modelState = iota
	stateInputFrames
	stateShowResult
)

type menuAction int

const (
	actionTrigger menuAction = iota
	actionMultiFrame
	actionListCaptures
	actionToggleOverlay
	actionLaunchReplay
)

type menuEntry struct {
	action menuAction
	label  string
}

type interactiveModel struct {
	err      error
	min      entry.Version
	rd       renderdoc.CaptureControl
	rd110    renderdoc.CaptureControlV110
	entries  []menuEntry
	frames   textinput.Model
	result   string
	selected int
	state    modelState
}

type connectedMsg struct {
	err   error
	rd    renderdoc.CaptureControl
	rd110 renderdoc.CaptureControlV110
}

func newInteractiveModel(min entry.Version) *interactiveModel {
	frames := textinput.New()
	frames.Placeholder = "number of frames"
	frames.CharLimit = 4
	frames.Width = 20

	entries := []menuEntry{
		{actionTrigger, "Trigger single-frame capture"},
	}
	if min.Tier() >= entry.TierV110 {
		entries = append(entries, menuEntry{actionMultiFrame, "Trigger multi-frame capture"})
	}
	entries = append(entries,
		menuEntry{actionListCaptures, "List captures"},
		menuEntry{actionToggleOverlay, "Toggle overlay"},
		menuEntry{actionLaunchReplay, "Launch replay UI"},
	)

	return &interactiveModel{
		min:     min,
		entries: entries,
		frames:  frames,
		state:   stateMenu,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.connect
}

func (m *interactiveModel) connect() tea.Msg {
	p, err := connect(m.min)
	if err != nil {
		return connectedMsg{err: err}
	}
	return connectedMsg{rd: p.rd, rd110: p.v110}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case connectedMsg:
		m.err = msg.err
		m.rd = msg.rd
		m.rd110 = msg.rd110
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case stateInputFrames:
			return m.updateInputFrames(msg)
		case stateShowResult:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "enter", "esc":
				m.state = stateMenu
				return m, nil
			}
		}
	}

	return m, nil
}

func (m *interactiveModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.entries)-1 {
			m.selected++
		}
	case "enter":
		if m.rd == nil {
			return m, nil
		}
		return m.runAction(m.entries[m.selected].action)
	}
	return m, nil
}

func (m *interactiveModel) updateInputFrames(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateMenu
		return m, nil
	case "enter":
		n, err := strconv.ParseUint(m.frames.Value(), 10, 32)
		if err != nil || n == 0 {
			m.showResult("", fmt.Errorf("frame count must be a positive number"))
			return m, nil
		}
		m.rd110.TriggerMultiFrameCapture(uint32(n))
		m.showResult(fmt.Sprintf("Capturing the next %d frames.", n), nil)
		return m, nil
	}

	var cmd tea.Cmd
	m.frames, cmd = m.frames.Update(msg)
	return m, cmd
}

func (m *interactiveModel) runAction(action menuAction) (tea.Model, tea.Cmd) {
	switch action {
	case actionTrigger:
		m.rd.TriggerCapture()
		m.showResult("Capturing the next frame.", nil)

	case actionMultiFrame:
		m.frames.SetValue("")
		m.frames.Focus()
		m.state = stateInputFrames
		return m, textinput.Blink

	case actionListCaptures:
		n := m.rd.GetNumCaptures()
		var b strings.Builder
		fmt.Fprintf(&b, "%d capture(s)\n", n)
		for i := uint32(0); i < n; i++ {
			c, ok := m.rd.GetCapture(i)
			if !ok {
				break
			}
			fmt.Fprintf(&b, "  [%d] %s (timestamp %d)\n", i, c.Path, c.Timestamp)
		}
		m.showResult(b.String(), nil)

	case actionToggleOverlay:
		bits := m.rd.GetOverlayBits()
		if bits.Contains(renderdoc.OverlayEnabled) {
			m.rd.MaskOverlayBits(renderdoc.OverlayAll.Without(renderdoc.OverlayEnabled), renderdoc.OverlayNone)
		} else {
			m.rd.MaskOverlayBits(renderdoc.OverlayAll, renderdoc.OverlayEnabled)
		}
		m.showResult("Overlay now: "+m.rd.GetOverlayBits().String(), nil)

	case actionLaunchReplay:
		pid, err := m.rd.LaunchReplayUI("")
		if err != nil {
			m.showResult("", err)
		} else {
			m.showResult(fmt.Sprintf("Replay UI launched, pid %d.", pid), nil)
		}
	}

	return m, nil
}

func (m *interactiveModel) showResult(result string, err error) {
	m.result = result
	m.err = err
	m.state = stateShowResult
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("RenderDoc Probe"))
	if m.rd != nil {
		major, minor, patch := m.rd.GetAPIVersion()
		b.WriteString(" ")
		b.WriteString(valueStyle.Render(fmt.Sprintf("API %d.%d.%d", major, minor, patch)))
	}
	b.WriteString("\n\n")

	if m.rd == nil {
		b.WriteString("Connecting to RenderDoc...\n")
		return b.String()
	}

	switch m.state {
	case stateMenu:
		b.WriteString(fmt.Sprintf("Captures so far: %s\n\n",
			valueStyle.Render(strconv.FormatUint(uint64(m.rd.GetNumCaptures()), 10))))
		for i, e := range m.entries {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + e.label))
			} else {
				b.WriteString(cursor + actionStyle.Render(e.label))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter run • q quit"))

	case stateInputFrames:
		b.WriteString("How many frames to capture?\n\n")
		b.WriteString(m.frames.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter capture • esc back"))

	case stateShowResult:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive(min entry.Version) error {
	p := tea.NewProgram(newInteractiveModel(min), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
