package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/blochview/internal/anim"
	"github.com/san-kum/blochview/internal/config"
	"github.com/san-kum/blochview/internal/gates"
	"github.com/san-kum/blochview/internal/qmath"
	"github.com/san-kum/blochview/internal/trajectory"
)

const (
	canvasWidth   = 56
	canvasHeight  = 26
	graphCapacity = 240
)

type TickMsg time.Time

// events survives bubbletea's model copying: driver callbacks write through
// this shared pointer.
type events struct {
	starts, ends int
	zHistory     []float64
}

var easingCycle = []qmath.EasingKind{qmath.EaseInOut, qmath.EaseLinear, qmath.EaseIn, qmath.EaseOut}

var presetKeys = map[string]string{
	"0": "zero",
	"1": "one",
	"p": "plus",
	"m": "minus",
	"i": "plus-i",
	"u": "minus-i",
}

var gateKeys = map[string]string{
	"x": "X", "y": "Y", "z": "Z", "h": "H", "s": "S", "t": "T",
}

// Model is the live Bloch-sphere view. It owns the animation driver and
// ticks it once per frame.
type Model struct {
	cfg      *config.Config
	animCfg  anim.Config
	driver   *anim.Driver
	history  *trajectory.History
	registry *gates.Registry
	ev       *events

	theme     Theme
	canvas    *Canvas
	camera    *Camera
	frameRate int
	paused    bool
	showHelp  bool
	easingIdx int
	lastLabel string
}

// NewModel builds the view from resolved configuration.
func NewModel(cfg *config.Config) (Model, error) {
	animCfg, err := cfg.AnimConfig()
	if err != nil {
		return Model{}, err
	}

	history := trajectory.New(cfg.Trajectory.MaxPoints)
	ev := &events{}
	driver := anim.New(animCfg, driverCallbacks(ev, history))

	initial, ok := config.GetPreset(cfg.Initial)
	if !ok {
		return Model{}, fmt.Errorf("unknown initial state: %s", cfg.Initial)
	}
	driver.SetTarget(initial, time.Now())

	easingIdx := 0
	for i, k := range easingCycle {
		if k == animCfg.Easing {
			easingIdx = i
		}
	}

	frameRate := cfg.View.FrameRate
	if frameRate <= 0 {
		frameRate = config.DefaultFrameRate
	}

	return Model{
		cfg:       cfg,
		animCfg:   animCfg,
		driver:    driver,
		history:   history,
		registry:  gates.NewRegistry(),
		ev:        ev,
		theme:     GetTheme(cfg.View.Theme),
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		camera:    NewCamera(),
		frameRate: frameRate,
		easingIdx: easingIdx,
		lastLabel: config.PresetLabels[cfg.Initial],
	}, nil
}

func driverCallbacks(ev *events, h *trajectory.History) anim.Callbacks {
	return anim.Callbacks{
		OnStart: func() { ev.starts++ },
		OnEnd:   func() { ev.ends++ },
		OnChange: func(s qmath.Spherical, c qmath.Cartesian) {
			h.Append(s)
			ev.zHistory = append(ev.zHistory, c.Z)
			if len(ev.zHistory) > graphCapacity {
				ev.zHistory = ev.zHistory[1:]
			}
		},
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		if !m.paused {
			m.driver.Step(time.Time(msg))
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "r":
		m.history.Clear()
		m.ev.zHistory = nil
		m.driver.SetTarget(qmath.Spherical{}, time.Now())
		m.lastLabel = config.PresetLabels["zero"]
	case "tab":
		m.theme = NextTheme(m.theme.Name)
	case "e":
		m.easingIdx = (m.easingIdx + 1) % len(easingCycle)
		m.swapEasing(easingCycle[m.easingIdx])
	case "?":
		m.showHelp = !m.showHelp
	case "left":
		m.camera.RotateY(-0.1)
	case "right":
		m.camera.RotateY(0.1)
	case "up":
		m.camera.RotateX(-0.1)
	case "down":
		m.camera.RotateX(0.1)
	case "+", "=":
		m.camera.ZoomIn()
	case "-", "_":
		m.camera.ZoomOut()
	default:
		if name, ok := presetKeys[key]; ok {
			target, _ := config.GetPreset(name)
			m.driver.SetTarget(target, time.Now())
			m.lastLabel = config.PresetLabels[name]
		} else if name, ok := gateKeys[key]; ok {
			g, err := m.registry.Get(name)
			if err == nil {
				m.driver.SetTarget(gates.ApplyToSpherical(g, m.driver.Target()), time.Now())
				m.lastLabel = name + " " + m.lastLabel
			}
		}
	}
	return m, nil
}

// swapEasing rebuilds the driver with a new curve while keeping the
// current point, destination, and event plumbing.
func (m *Model) swapEasing(kind qmath.EasingKind) {
	cur, tgt := m.driver.Current(), m.driver.Target()
	m.animCfg.Easing = kind
	m.driver = anim.New(m.animCfg, driverCallbacks(m.ev, m.history))
	now := time.Now()
	m.driver.SetTarget(cur, now)
	if tgt != cur {
		m.driver.SetTarget(tgt, now)
	}
}

func (m *Model) draw() {
	m.canvas.Clear()
	wf := BlochWireframe()
	if m.cfg.Trajectory.Show {
		Trail(wf, m.history.Points())
	}
	StateArrow(wf, qmath.SphericalToCartesian(m.driver.Current()))
	Render3D(m.canvas, wf, m.camera)
}

func (m Model) View() string {
	m.draw()

	headerStyle := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).MarginBottom(1)
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Muted).Width(10)
	valueStyle := lipgloss.NewStyle().Foreground(m.theme.Text)
	accentStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	graphStyle := lipgloss.NewStyle().Foreground(m.theme.Primary).Padding(1, 0)
	helpStyle := lipgloss.NewStyle().Foreground(m.theme.Muted).MarginTop(1)
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(m.theme.Muted).
		Padding(1, 2).Width(42)
	canvasStyle := lipgloss.NewStyle().Padding(1, 2)

	cur := m.driver.Current()
	cart := qmath.SphericalToCartesian(cur)
	amps := qmath.SphericalToAmplitudes(cur)

	status := "IDLE"
	if m.paused {
		status = "PAUSED"
	} else if m.driver.Animating() {
		status = "ANIMATING"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("BLOCH SPHERE") + "\n")
	s.WriteString(accentStyle.Render(m.lastLabel) + "  " + valueStyle.Render(status) + "\n")

	if len(m.ev.zHistory) > 1 {
		chart := asciigraph.Plot(m.ev.zHistory,
			asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("⟨Z⟩"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("theta") + valueStyle.Render(fmt.Sprintf("%.4f  (%.1f°)", cur.Theta, cur.Theta*180/math.Pi)) + "\n")
	s.WriteString(labelStyle.Render("phi") + valueStyle.Render(fmt.Sprintf("%.4f  (%.1f°)", cur.Phi, cur.Phi*180/math.Pi)) + "\n")
	s.WriteString(labelStyle.Render("x y z") + valueStyle.Render(fmt.Sprintf("%+.3f %+.3f %+.3f", cart.X, cart.Y, cart.Z)) + "\n")
	s.WriteString(labelStyle.Render("alpha") + valueStyle.Render(formatComplex(amps.Alpha)) + "\n")
	s.WriteString(labelStyle.Render("beta") + valueStyle.Render(formatComplex(amps.Beta)) + "\n\n")

	s.WriteString(labelStyle.Render("easing") + valueStyle.Render(m.animCfg.Easing.String()) + "\n")
	s.WriteString(labelStyle.Render("duration") + valueStyle.Render(m.animCfg.Duration.String()) + "\n")
	s.WriteString(labelStyle.Render("trail") + valueStyle.Render(fmt.Sprintf("%d pts", m.history.Len())) + "\n")
	s.WriteString(labelStyle.Render("events") + valueStyle.Render(fmt.Sprintf("%d start / %d end", m.ev.starts, m.ev.ends)) + "\n")

	s.WriteString(helpStyle.Render("─────────────────────\nXYZHST:Gates 01PMIU:States\nE:Easing TAB:Theme SP:Pause\nR:Reset ?:Help Q:Quit"))

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		panelStyle.Render(s.String()))

	if m.showHelp {
		return helpOverlay + "\n" + main
	}
	return main
}

const helpOverlay = `
╔════════════════════════════════════════╗
║            KEYBOARD SHORTCUTS          ║
╠════════════════════════════════════════╣
║  x y z h s t - apply gate              ║
║  0 1         - jump to |0⟩ / |1⟩       ║
║  p m i u     - |+⟩ |−⟩ |+i⟩ |−i⟩       ║
║  e           - cycle easing curve      ║
║  tab         - cycle color theme       ║
║  arrows +/-  - rotate / zoom camera    ║
║  space       - pause ticking           ║
║  r           - reset to |0⟩            ║
║  q           - quit                    ║
╚════════════════════════════════════════╝`

func formatComplex(c qmath.Complex) string {
	return fmt.Sprintf("%+.4f %+.4fi", c.Re, c.Im)
}

// Run starts the interactive view.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
