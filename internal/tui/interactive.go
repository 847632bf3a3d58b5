package tui

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/thermosim/internal/analysis"
	"github.com/san-kum/thermosim/internal/config"
	"github.com/san-kum/thermosim/internal/ensemble"
	"github.com/san-kum/thermosim/internal/particle"
	"github.com/san-kum/thermosim/internal/thermo"
	"github.com/san-kum/thermosim/internal/viz"
)

type screen int

const (
	screenMenu screen = iota
	screenConfig
	screenSim
)

// BoxStep is the percentage change per resize key press.
const BoxStep = 5

const histBins = 24

type field struct {
	key  string
	step float64
}

var common = []field{
	{"particles", 50},
	{"box_width", BoxStep},
	{"box_height", BoxStep},
	{"radius", 0.005},
}

var inputSteps = map[ensemble.Input]float64{
	ensemble.Energy:            0.1,
	ensemble.Temperature:       10,
	ensemble.ChemicalPotential: 0.1,
}

type Model struct {
	screen  screen
	cursor  int
	kinds   []ensemble.Kind
	cfg     config.Config
	fields  []field
	fcursor int
	editing bool
	editBuf string

	sim *thermo.Simulator
	err error

	width  int
	height int
}

// New returns the UI model in the ensemble menu, starting from cfg.
func New(cfg config.Config, logger *slog.Logger) *Model {
	m := &Model{
		screen: screenMenu,
		kinds:  ensemble.All(),
		cfg:    cfg,
		sim:    thermo.New(cfg.SimulatorOptions(logger)...),
		width:  80,
		height: 24,
	}
	for i, k := range m.kinds {
		if k == cfg.Kind() {
			m.cursor = i
		}
	}
	return m
}

func (m *Model) Simulator() *thermo.Simulator { return m.sim }

func (m *Model) Config() config.Config { return m.cfg }

func (m *Model) Err() error { return m.err }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	switch m.screen {
	case screenMenu:
		return m.menuKey(msg)
	case screenConfig:
		return m.configKey(msg)
	case screenSim:
		return m.simKey(msg)
	}
	return nil
}

func (m *Model) menuKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.kinds)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.cfg.Ensemble = m.kinds[m.cursor].Short()
		m.fields = fieldsFor(m.kinds[m.cursor])
		m.fcursor = 0
		m.screen = screenConfig
	}
	return nil
}

func fieldsFor(k ensemble.Kind) []field {
	fs := append([]field(nil), common...)
	for _, in := range k.Inputs() {
		fs = append(fs, field{string(in), inputSteps[in]})
	}
	return fs
}

func (m *Model) configKey(msg tea.KeyMsg) tea.Cmd {
	if m.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
				m.set(m.fields[m.fcursor].key, v)
			}
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if s := msg.String(); len(s) == 1 {
				c := s[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += s
				}
			}
		}
		return nil
	}

	switch msg.String() {
	case "q", "esc":
		m.screen = screenMenu
	case "up", "k":
		if m.fcursor > 0 {
			m.fcursor--
		}
	case "down", "j":
		if m.fcursor < len(m.fields)-1 {
			m.fcursor++
		}
	case "left", "h":
		f := m.fields[m.fcursor]
		m.set(f.key, m.get(f.key)-f.step)
	case "right", "l":
		f := m.fields[m.fcursor]
		m.set(f.key, m.get(f.key)+f.step)
	case "enter", " ":
		m.editing = true
		m.editBuf = strconv.FormatFloat(m.get(m.fields[m.fcursor].key), 'f', -1, 64)
	case "s":
		m.setup()
		m.screen = screenSim
		return tea.ClearScreen
	}
	return nil
}

func (m *Model) simKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "esc":
		m.screen = screenConfig
		return tea.ClearScreen
	case "s":
		m.setup()
	case "c":
		m.sim.Clear()
		m.err = nil
	case "r":
		m.cfg.Seed = rand.Uint64()
		m.sim.Reseed(m.cfg.Seed)
	case "[":
		m.resize(-BoxStep, 0)
	case "]":
		m.resize(BoxStep, 0)
	case "{":
		m.resize(0, -BoxStep)
	case "}":
		m.resize(0, BoxStep)
	}
	return nil
}

func (m *Model) setup() {
	m.sim.Clear()
	p, err := m.cfg.ToParams()
	if err == nil {
		err = m.sim.Setup(p)
	}
	m.err = err
}

func (m *Model) resize(dw, dh int) {
	m.cfg.BoxWidth += dw
	m.cfg.BoxHeight += dh
	m.cfg.Clamp()
	m.err = m.sim.Resize(m.cfg.BoxWidth, m.cfg.BoxHeight)
}

func (m *Model) get(key string) float64 {
	switch key {
	case "particles":
		return float64(m.cfg.Particles)
	case "box_width":
		return float64(m.cfg.BoxWidth)
	case "box_height":
		return float64(m.cfg.BoxHeight)
	case "radius":
		return m.cfg.Radius
	case string(ensemble.Energy):
		return m.cfg.Energy
	case string(ensemble.Temperature):
		return m.cfg.Temperature
	case string(ensemble.ChemicalPotential):
		return m.cfg.ChemPotential
	}
	return 0
}

// set stores v and applies the UI limits.
func (m *Model) set(key string, v float64) {
	switch key {
	case "particles":
		m.cfg.Particles = int(v)
	case "box_width":
		m.cfg.BoxWidth = int(v)
	case "box_height":
		m.cfg.BoxHeight = int(v)
	case "radius":
		m.cfg.Radius = v
	case string(ensemble.Energy):
		m.cfg.Energy = v
	case string(ensemble.Temperature):
		m.cfg.Temperature = v
	case string(ensemble.ChemicalPotential):
		m.cfg.ChemPotential = v
	}
	m.cfg.Clamp()
}

func (m *Model) View() string {
	switch m.screen {
	case screenMenu:
		return m.viewMenu()
	case screenConfig:
		return m.viewConfig()
	case screenSim:
		return m.viewSim()
	}
	return ""
}

func (m *Model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n    " + viz.Title.Render("t h e r m o s i m") + "\n")
	b.WriteString("    " + viz.Separator(30) + "\n\n")

	for i, k := range m.kinds {
		if i == m.cursor {
			b.WriteString("    " + viz.Selected.Render("▸ "+fmt.Sprintf("%-26s", k.String())) + " " + viz.Subtle.Render(k.Description()) + "\n")
		} else {
			b.WriteString("      " + viz.MetricLabel.Render(fmt.Sprintf("%-26s", k.String())) + " " + viz.Subtle.Render(k.Description()) + "\n")
		}
	}

	b.WriteString("\n" + viz.KeyHint.Render("    ↑↓ select   enter configure   q quit") + "\n")
	return b.String()
}

func (m *Model) viewConfig() string {
	var b strings.Builder

	b.WriteString("\n    " + viz.Title.Render(m.cfg.Kind().String()) + "\n")
	b.WriteString("    " + viz.Separator(30) + "\n\n")

	for i, f := range m.fields {
		val := fmt.Sprintf("%10s", strconv.FormatFloat(m.get(f.key), 'g', 6, 64))
		if m.editing && i == m.fcursor {
			val = fmt.Sprintf("%10s", m.editBuf+"▋")
		}
		if i == m.fcursor {
			b.WriteString("    " + viz.Selected.Render("▸ "+fmt.Sprintf("%-16s", f.key)) + viz.MetricValue.Render(val) + "\n")
		} else {
			b.WriteString("      " + viz.MetricLabel.Render(fmt.Sprintf("%-16s", f.key)) + viz.Subtle.Render(val) + "\n")
		}
	}

	b.WriteString("\n" + viz.KeyHint.Render("    ↑↓ select  ←→ adjust  enter edit  s setup  esc back") + "\n")
	return b.String()
}

func (m *Model) canvasSize() (int, int) {
	return max(m.width-32, 20), max(m.height-6, 8)
}

func (m *Model) viewSim() string {
	cw, ch := m.canvasSize()
	c := viz.NewCanvas(cw, ch)
	view := viz.ViewportFor(m.sim.Extents())
	bounds := m.sim.Bounds()
	viz.DrawBox(c, bounds, view)
	viz.PlotInstances(c, m.sim.InstanceData(), view)

	plot := viz.Panel.Render(viz.ParticleStyle(particle.Red).Render(c.String()))
	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top, plot, m.summary(bounds)) + "\n" +
		viz.KeyHint.Render("  s setup  c clear  r reseed  [ ] width  { } height  esc config  q quit") + "\n"
}

func (m *Model) summary(b thermo.Bounds) string {
	var s strings.Builder
	row := func(label, value string) {
		s.WriteString(viz.MetricLabel.Render(fmt.Sprintf("%-11s", label)) + viz.MetricValue.Render(value) + "\n")
	}

	state := m.sim.State()
	status := viz.StatusEmpty.Render("● " + state.String())
	if state == thermo.Populated {
		status = viz.StatusPopulated.Render("● " + state.String())
	}
	s.WriteString(viz.HeaderStyle.Render(m.cfg.Kind().Short()) + "\n")
	s.WriteString(status + "\n\n")

	p := m.sim.Params()
	row("particles", strconv.Itoa(m.sim.Len()))
	row("box", fmt.Sprintf("%d%% x %d%%", p.BoxWidthPerc, p.BoxHeightPerc))
	row("bounds", fmt.Sprintf("±%.3f ±%.3f", b.W, b.H))
	row("radius", strconv.FormatFloat(p.Radius, 'g', 4, 64))
	for _, in := range m.cfg.Kind().Inputs() {
		row(string(in), strconv.FormatFloat(m.get(string(in)), 'g', 6, 64))
	}
	row("seed", strconv.FormatUint(m.sim.Seed(), 10))

	if ps := m.sim.Particles(); len(ps) > 0 {
		s.WriteString("\n" + viz.MetricLabel.Render("x ") + viz.Sparkline(analysis.Histogram(analysis.XValues(ps), -b.W, b.W, histBins)) + "\n")
		s.WriteString(viz.MetricLabel.Render("y ") + viz.Sparkline(analysis.Histogram(analysis.YValues(ps), -b.H, b.H, histBins)) + "\n")
	}
	if m.err != nil {
		s.WriteString("\n" + viz.ErrorText.Render(m.err.Error()) + "\n")
	}
	return viz.Panel.Render(s.String())
}

// Run starts the terminal UI and blocks until it exits.
func Run(cfg config.Config, logger *slog.Logger) error {
	p := tea.NewProgram(New(cfg, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
