package debugger

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TUI represents the text user interface for the debugger, built on tview
// over the same Registers/Frames/Instructions state exposed by vm.VM.
type TUI struct {
	Debugger *Debugger
	App      *tview.Application
	Pages    *tview.Pages

	MainLayout *tview.Flex
	LeftPanel  *tview.Flex
	RightPanel *tview.Flex

	DisassemblyView *tview.TextView
	RegisterView    *tview.TextView
	FramesView      *tview.TextView
	BreakpointsView *tview.TextView
	OutputView      *tview.TextView
	CommandInput    *tview.InputField
}

// NewTUI creates a new text user interface.
func NewTUI(debugger *Debugger) *TUI {
	return newTUI(debugger, nil)
}

// NewTUIWithScreen creates a TUI bound to an explicit tcell.Screen, for
// tests that drive the UI against a tcell.SimulationScreen instead of a
// real terminal.
func NewTUIWithScreen(debugger *Debugger, screen tcell.Screen) *TUI {
	return newTUI(debugger, screen)
}

func newTUI(debugger *Debugger, screen tcell.Screen) *TUI {
	tui := &TUI{
		Debugger: debugger,
		App:      tview.NewApplication(),
	}

	if screen != nil {
		tui.App.SetScreen(screen)
	}

	tui.initializeViews()
	tui.buildLayout()
	tui.setupKeyBindings()

	return tui
}

// initializeViews creates all the view panels.
func (t *TUI) initializeViews() {
	t.DisassemblyView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.DisassemblyView.SetBorder(true).SetTitle(" Disassembly ")

	t.RegisterView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	t.RegisterView.SetBorder(true).SetTitle(" Registers ")

	t.FramesView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.FramesView.SetBorder(true).SetTitle(" Frames ")

	t.BreakpointsView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.BreakpointsView.SetBorder(true).SetTitle(" Breakpoints/Watchpoints ")

	t.OutputView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	t.OutputView.SetBorder(true).SetTitle(" Output ")

	t.CommandInput = tview.NewInputField().
		SetLabel("> ").
		SetFieldWidth(0)
	t.CommandInput.SetBorder(true).SetTitle(" Command ")
	t.CommandInput.SetDoneFunc(t.handleCommand)
}

// buildLayout constructs the TUI layout.
func (t *TUI) buildLayout() {
	t.LeftPanel = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.DisassemblyView, 0, 3, false).
		AddItem(t.FramesView, 0, 1, false)

	t.RightPanel = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.RegisterView, RegisterViewRows, 0, false).
		AddItem(t.BreakpointsView, 0, 1, false)

	mainContent := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(t.LeftPanel, 0, 2, false).
		AddItem(t.RightPanel, 0, 1, false)

	t.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(mainContent, 0, 4, false).
		AddItem(t.OutputView, 8, 0, false).
		AddItem(t.CommandInput, 3, 0, true)

	t.Pages = tview.NewPages().
		AddPage("main", t.MainLayout, true, true)
}

// setupKeyBindings sets up keyboard shortcuts.
func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF1:
			t.executeCommand("help")
			return nil
		case tcell.KeyF5:
			t.executeCommand("continue")
			return nil
		case tcell.KeyF9:
			t.executeCommand("break")
			return nil
		case tcell.KeyF10:
			t.executeCommand("next")
			return nil
		case tcell.KeyF11:
			t.executeCommand("step")
			return nil
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			t.RefreshAll()
			return nil
		}
		return event
	})
}

// handleCommand processes command input.
func (t *TUI) handleCommand(key tcell.Key) {
	if key == tcell.KeyEnter {
		cmd := t.CommandInput.GetText()
		if cmd != "" {
			t.executeCommand(cmd)
			t.CommandInput.SetText("")
		}
	}
}

// executeCommand executes a debugger command.
func (t *TUI) executeCommand(cmd string) {
	t.Debugger.Output.Reset()

	err := t.Debugger.ExecuteCommand(cmd)
	output := t.Debugger.GetOutput()

	if err != nil {
		t.WriteOutput(fmt.Sprintf("[red]Error:[white] %v\n", err))
	}
	if output != "" {
		t.WriteOutput(output)
	}

	t.RefreshAll()
}

// WriteOutput writes to the output view.
func (t *TUI) WriteOutput(text string) {
	_, _ = t.OutputView.Write([]byte(text))
	t.OutputView.ScrollToEnd()
}

// RefreshAll refreshes all view panels.
func (t *TUI) RefreshAll() {
	t.UpdateRegisterView()
	t.UpdateDisassemblyView()
	t.UpdateFramesView()
	t.UpdateBreakpointsView()
	t.App.Draw()
}

// UpdateRegisterView updates the register view.
func (t *TUI) UpdateRegisterView() {
	t.RegisterView.Clear()

	var lines []string
	count := t.Debugger.VM.RegisterCount()
	for i := 0; i < count; i += RegisterGroupSize {
		var cols []string
		for j := i; j < i+RegisterGroupSize && j < count; j++ {
			value, ok := t.Debugger.VM.GetRegister(j)
			if !ok {
				break
			}
			cols = append(cols, fmt.Sprintf("reg%-2d: 0x%016X", j, value))
		}
		lines = append(lines, strings.Join(cols, "  "))
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("ip: %d  status: %s", t.Debugger.VM.IP(), t.Debugger.VM.Status))

	t.RegisterView.SetText(strings.Join(lines, "\n"))
}

// UpdateDisassemblyView updates the disassembly view around the current
// instruction pointer.
func (t *TUI) UpdateDisassemblyView() {
	t.DisassemblyView.Clear()

	ip := t.Debugger.VM.IP()
	start := ip - CodeContextLinesBeforeCompact
	if start < 0 {
		start = 0
	}
	end := ip + CodeContextLinesAfterCompact
	if end > len(t.Debugger.VM.Instructions) {
		end = len(t.Debugger.VM.Instructions)
	}

	var lines []string
	for i := start; i < end; i++ {
		marker := "  "
		color := "white"
		if i == ip {
			marker = "->"
			color = "yellow"
		}
		if t.Debugger.Breakpoints.GetBreakpoint(i) != nil {
			marker = "* "
		}

		lines = append(lines, fmt.Sprintf("[%s]%s %4d: %s[white]", color, marker, i, disassemble(t.Debugger.VM.Instructions[i])))
	}

	t.DisassemblyView.SetText(strings.Join(lines, "\n"))
}

// UpdateFramesView updates the call-frame stack view.
func (t *TUI) UpdateFramesView() {
	t.FramesView.Clear()

	frames := t.Debugger.VM.Frames
	var lines []string
	if len(frames) == 0 {
		lines = append(lines, "[yellow]No active frames[white]")
	} else {
		depth := len(frames)
		for i := depth - 1; i >= 0 && depth-i <= FrameStackDisplayDepth; i-- {
			f := frames[i]
			lines = append(lines, fmt.Sprintf("#%d  return=%d registerBase=%d", depth-1-i, f.ReturnAddress, f.RegisterBase))
		}
	}

	t.FramesView.SetText(strings.Join(lines, "\n"))
}

// UpdateBreakpointsView updates the breakpoints and watchpoints view.
func (t *TUI) UpdateBreakpointsView() {
	t.BreakpointsView.Clear()

	var lines []string

	bps := t.Debugger.Breakpoints.GetAllBreakpoints()
	if len(bps) > 0 {
		lines = append(lines, "[yellow]Breakpoints:[white]")
		for _, bp := range bps {
			status := "enabled"
			color := "green"
			if !bp.Enabled {
				status = "disabled"
				color = "red"
			}

			line := fmt.Sprintf("  %d: [%s]%s[white] instruction %d", bp.ID, color, status, bp.Address)
			if bp.Condition != "" {
				line += fmt.Sprintf(" if %s", bp.Condition)
			}
			line += fmt.Sprintf(" (hits: %d)", bp.HitCount)

			lines = append(lines, line)
		}
	} else {
		lines = append(lines, "[yellow]No breakpoints set[white]")
	}

	lines = append(lines, "")

	wps := t.Debugger.Watchpoints.GetAllWatchpoints()
	if len(wps) > 0 {
		lines = append(lines, "[yellow]Watchpoints:[white]")
		for _, wp := range wps {
			lines = append(lines, fmt.Sprintf("  %d: watch %s = 0x%016X", wp.ID, wp.Expression, wp.LastValue))
		}
	}

	t.BreakpointsView.SetText(strings.Join(lines, "\n"))
}

// Run starts the TUI application.
func (t *TUI) Run() error {
	t.RefreshAll()

	t.WriteOutput("[green]Kirin Debugger TUI[white]\n")
	t.WriteOutput("Press F1 for help, F5 to continue, F10 to step over, F11 to step\n")
	t.WriteOutput("Type 'help' for command list\n\n")

	return t.App.SetRoot(t.Pages, true).SetFocus(t.CommandInput).Run()
}

// Stop stops the TUI application.
func (t *TUI) Stop() {
	t.App.Stop()
}
