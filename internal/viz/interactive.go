package viz

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/paraflect/internal/export"
	"github.com/san-kum/paraflect/internal/scene"
)

const (
	canvasWidth  = 72
	canvasHeight = 22
	focusStep    = 0.1
)

// App is the interactive presenter. It owns the scene state and
// retraces synchronously on every parameter change; there is no
// background work and no tick loop, a frame only changes on input.
type App struct {
	scene    scene.Scene
	trace    scene.Trace
	view     *Viewport
	theme    Theme
	status   string
	showHelp bool
	err      error
}

// NewApp builds the presenter around an initial scene.
func NewApp(s scene.Scene) App {
	a := App{
		scene: s,
		view:  NewViewport(canvasWidth, canvasHeight),
		theme: ThemeOptics,
	}
	a.retrace()
	return a
}

// retrace recomputes the trace from the current scene. A failed
// retrace keeps the previous frame and surfaces the error in the
// status line instead of aborting the program.
func (a *App) retrace() {
	tr, err := scene.Retrace(a.scene)
	if err != nil {
		a.err = err
		return
	}
	a.err = nil
	a.trace = tr
	a.view.DrawTrace(tr)
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	a.status = ""
	switch key.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "l", "right":
		a.scene.AdjustFocus(focusStep)
		a.retrace()
	case "h", "left":
		a.scene.AdjustFocus(-focusStep)
		a.retrace()
	case "k", "up":
		a.scene.SetRays(a.scene.Rays + 1)
		a.retrace()
	case "j", "down":
		a.scene.SetRays(a.scene.Rays - 1)
		a.retrace()
	case "m", "tab":
		a.scene.ToggleMode()
		a.retrace()
	case "r":
		a.scene.Reset()
		a.retrace()
	case "t":
		a.theme = NextTheme(a.theme.Name)
	case "e":
		a.status = a.exportSVG()
	case "?":
		a.showHelp = !a.showHelp
	}
	return a, nil
}

func (a *App) exportSVG() string {
	name := fmt.Sprintf("paraflect_%d.svg", time.Now().Unix())
	if err := os.WriteFile(name, []byte(export.TraceToSVG(a.trace, 800, 500)), 0644); err != nil {
		return "export failed: " + err.Error()
	}
	return "saved " + name
}

func (a App) View() string {
	header := lipgloss.NewStyle().Foreground(a.theme.Primary).Bold(true)
	label := lipgloss.NewStyle().Foreground(a.theme.Muted).Width(11)
	value := lipgloss.NewStyle().Foreground(a.theme.Text)
	accent := lipgloss.NewStyle().Foreground(a.theme.Accent).Bold(true)
	muted := lipgloss.NewStyle().Foreground(a.theme.Muted)

	var panel strings.Builder
	panel.WriteString(header.Render("PARAFLECT") + "\n")
	panel.WriteString(muted.Render("parabolic reflector") + "\n\n")
	panel.WriteString(label.Render("focus") + value.Render(fmt.Sprintf("%.2f", a.scene.Focus)) + "\n")
	panel.WriteString(label.Render("directrix") + value.Render(fmt.Sprintf("%.2f", a.trace.Directrix)) + "\n")
	panel.WriteString(label.Render("rays") + value.Render(fmt.Sprintf("%d", a.scene.Rays)) + "\n")
	panel.WriteString(label.Render("mode") + accent.Render(a.scene.Mode.String()) + "\n\n")
	panel.WriteString(label.Render("hits") + value.Render(fmt.Sprintf("%d", a.trace.Stats.Hits)) + "\n")
	panel.WriteString(label.Render("misses") + value.Render(fmt.Sprintf("%d", a.trace.Stats.Misses)) + "\n")
	if a.scene.Mode == scene.ModeParallel {
		panel.WriteString(label.Render("spread") + value.Render(fmt.Sprintf("%.2e", a.trace.Stats.FocusSpread)) + "\n")
	} else {
		panel.WriteString(label.Render("deviation") + value.Render(fmt.Sprintf("%.2e", a.trace.Stats.AxisDeviation)) + "\n")
	}
	if a.err != nil {
		panel.WriteString("\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(a.err.Error()))
	}
	if a.status != "" {
		panel.WriteString("\n" + accent.Render(a.status))
	}

	canvasBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.theme.Muted).
		Padding(0, 1).
		Render(strings.TrimRight(a.view.Canvas.String(), "\n"))

	panelBox := lipgloss.NewStyle().
		Padding(1, 2).
		Render(panel.String())

	body := lipgloss.JoinHorizontal(lipgloss.Top, canvasBox, panelBox)

	help := "h/l focus  j/k rays  m mode  r reset  t theme  e svg  ? help  q quit"
	if a.showHelp {
		help = strings.Join([]string{
			"h/left, l/right   focal length -/+ (0.5..5.0)",
			"j/down, k/up      ray count -/+ (1..15)",
			"m, tab            toggle parallel/focal bundle",
			"r                 reset (focus 1.0, 5 rays, parallel)",
			"t                 cycle color theme",
			"e                 export current frame as SVG",
			"q                 quit",
		}, "\n")
	}
	return body + "\n" + muted.Render(help) + "\n"
}

// RunInteractive starts the TUI with the default scene.
func RunInteractive() error {
	return RunInteractiveScene(scene.NewScene())
}

// RunInteractiveScene starts the TUI from a specific scene, e.g. one
// loaded from a config file or preset.
func RunInteractiveScene(s scene.Scene) error {
	_, err := tea.NewProgram(NewApp(s), tea.WithAltScreen()).Run()
	return err
}
