package gui

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/thermosim/internal/config"
	"github.com/san-kum/thermosim/internal/ensemble"
	"github.com/san-kum/thermosim/internal/thermo"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColPanel   = rl.NewColor(22, 22, 26, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

const (
	panelWidth = 300
	sliderW    = panelWidth - 110
)

type App struct {
	Sim    *thermo.Simulator
	Config config.Config
	Err    error

	width, height int32
	quit          bool
}

func initWindow(w config.WindowConfig) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(w.Width), int32(w.Height), "thermosim")
	rl.SetTargetFPS(int32(w.FPS))
	rl.SetExitKey(0)
}

// NewApp builds the window state around a simulator configured from cfg.
// The population is set up immediately.
func NewApp(cfg config.Config, logger *slog.Logger) *App {
	a := &App{
		Sim:    thermo.New(cfg.SimulatorOptions(logger)...),
		Config: cfg,
		width:  int32(cfg.Window.Width),
		height: int32(cfg.Window.Height),
	}
	a.setup()
	return a
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Config, logger *slog.Logger) {
	initWindow(cfg.Window)
	defer rl.CloseWindow()
	app := NewApp(cfg, logger)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !a.quit && !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) setup() {
	a.Sim.Clear()
	p, err := a.Config.ToParams()
	if err == nil {
		err = a.Sim.Setup(p)
	}
	a.Err = err
}

func (a *App) Update() {
	if rl.IsWindowResized() {
		a.width = int32(rl.GetScreenWidth())
		a.height = int32(rl.GetScreenHeight())
	}
	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		a.quit = true
	case rl.IsKeyPressed(rl.KeyS):
		a.setup()
	case rl.IsKeyPressed(rl.KeyC):
		a.Sim.Clear()
	case rl.IsKeyPressed(rl.KeyR):
		a.reseed()
	}
}

func (a *App) reseed() {
	a.Config.Seed = rand.Uint64()
	a.Sim.Reseed(a.Config.Seed)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawSim()
	a.drawPanel()

	rl.EndDrawing()
}

// slider draws a labelled raygui slider and returns the new value.
func slider(y *float32, label, format string, value, lo, hi float32) float32 {
	rl.DrawText(label, 16, int32(*y), 14, ColText)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: 16, Y: *y, Width: sliderW, Height: 20},
		"", "",
		value, lo, hi,
	)
	rl.DrawText(fmt.Sprintf(format, v), int32(16+sliderW+10), int32(*y+2), 16, ColAccent)
	*y += 32
	return v
}

func (a *App) drawPanel() {
	rl.DrawRectangle(0, 0, panelWidth, a.height, ColPanel)
	rl.DrawText("thermosim", 16, 16, 24, ColSelect)

	y := float32(56)
	for i, k := range ensemble.All() {
		bounds := rl.Rectangle{X: 16 + float32(i)*90, Y: y, Width: 84, Height: 26}
		label := k.Short()
		if k == a.Config.Kind() {
			label = "> " + label
		}
		if gui.Button(bounds, label) {
			a.Config.Ensemble = k.Short()
		}
	}
	y += 34
	rl.DrawText(a.Config.Kind().String(), 16, int32(y), 14, ColAccent)
	y += 28

	cfg := &a.Config
	top := max(config.MaxPanelParticles, cfg.Particles)
	cfg.Particles = int(slider(&y, "Particles", "%.0f", float32(cfg.Particles), config.MinParticles, float32(top)))

	w := int(slider(&y, "Box width %", "%.0f", float32(cfg.BoxWidth), config.MinBoxPerc, config.MaxBoxPerc))
	h := int(slider(&y, "Box height %", "%.0f", float32(cfg.BoxHeight), config.MinBoxPerc, config.MaxBoxPerc))
	if w != cfg.BoxWidth || h != cfg.BoxHeight {
		cfg.BoxWidth, cfg.BoxHeight = w, h
		cfg.Clamp()
		a.Err = a.Sim.Resize(cfg.BoxWidth, cfg.BoxHeight)
	}

	cfg.Radius = float64(slider(&y, "Radius", "%.3f", float32(cfg.Radius), config.MinRadius, config.MaxRadius))

	for _, in := range cfg.Kind().Inputs() {
		switch in {
		case ensemble.Energy:
			cfg.Energy = float64(slider(&y, "Energy", "%.2f", float32(cfg.Energy), config.MinEnergy, 10))
		case ensemble.Temperature:
			cfg.Temperature = float64(slider(&y, "Temperature", "%.1f", float32(cfg.Temperature), config.MinTemp, 1000))
		case ensemble.ChemicalPotential:
			cfg.ChemPotential = float64(slider(&y, "Chemical potential", "%.2f", float32(cfg.ChemPotential), config.MinChemPot, 10))
		}
	}
	cfg.Clamp()

	y += 8
	if gui.Button(rl.Rectangle{X: 16, Y: y, Width: panelWidth - 32, Height: 30}, "Setup Simulation") {
		a.setup()
	}
	y += 38
	if gui.Button(rl.Rectangle{X: 16, Y: y, Width: 130, Height: 30}, "Clear") {
		a.Sim.Clear()
	}
	if gui.Button(rl.Rectangle{X: 154, Y: y, Width: 130, Height: 30}, "Re-seed") {
		a.reseed()
	}
	y += 46

	rl.DrawText(fmt.Sprintf("%s  %d particles", a.Sim.State(), a.Sim.Len()), 16, int32(y), 14, ColText)
	y += 20
	rl.DrawText(fmt.Sprintf("seed %d", a.Sim.Seed()), 16, int32(y), 12, ColTextDim)
	if a.Err != nil {
		rl.DrawText(a.Err.Error(), 16, int32(y)+20, 12, rl.Red)
	}

	rl.DrawText("[S] SETUP  [C] CLEAR  [R] RESEED  [Q] QUIT", 16, a.height-24, 12, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), panelWidth+12, a.height-24, 12, ColTextDim)
}
