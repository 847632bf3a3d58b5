package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/thermosim/internal/analysis"
	"github.com/san-kum/thermosim/internal/config"
	"github.com/san-kum/thermosim/internal/ensemble"
	"github.com/san-kum/thermosim/internal/export"
	"github.com/san-kum/thermosim/internal/gui"
	"github.com/san-kum/thermosim/internal/particle"
	"github.com/san-kum/thermosim/internal/thermo"
	"github.com/san-kum/thermosim/internal/tui"
	"github.com/san-kum/thermosim/internal/viz"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&app{})
}

func newRootCmdWith(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "thermosim",
		Short: "thermodynamic ensemble particle simulator",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			gui.Run(*a.cfg, a.log)
			return nil
		},
		SilenceUsage: true,
	}

	a.registerFlags(rootCmd)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "set up a population and print its statistics",
		Args:  cobra.NoArgs,
		RunE:  a.generate,
	}
	generateCmd.Flags().IntVar(&a.bins, "bins", 20, "histogram bins")
	generateCmd.Flags().BoolVar(&a.noPlot, "no-plot", false, "skip histogram plots")

	svgCmd := &cobra.Command{
		Use:   "svg [file]",
		Short: "render the population as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.svg,
	}
	svgCmd.Flags().IntVar(&a.width, "width", 0, "image width (default window width)")
	svgCmd.Flags().IntVar(&a.height, "height", 0, "image height (default window height)")
	svgCmd.Flags().BoolVar(&a.braille, "braille", false, "render the terminal braille canvas instead")

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "write the population as CSV",
		Args:  cobra.NoArgs,
		RunE:  a.dump,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal user interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(*a.cfg, a.log)
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "raylib window with control panel",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			gui.Run(*a.cfg, a.log)
		},
	}

	ensemblesCmd := &cobra.Command{
		Use:   "ensembles",
		Short: "list ensemble kinds",
		Args:  cobra.NoArgs,
		RunE:  listEnsembles,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [ensemble]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	rootCmd.AddCommand(generateCmd, svgCmd, dumpCmd, tuiCmd, guiCmd, ensemblesCmd, presetsCmd)
	return rootCmd
}

func (a *app) generate(cmd *cobra.Command, args []string) error {
	sim, err := a.simulator()
	if err != nil {
		return err
	}

	ps := sim.Particles()
	b := sim.Bounds()
	sum := analysis.Summarize(ps)
	xh := analysis.Histogram(analysis.XValues(ps), -b.W, b.W, a.bins)
	yh := analysis.Histogram(analysis.YValues(ps), -b.H, b.H, a.bins)

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	p := sim.Params()
	fmt.Fprintf(w, "ensemble\t%s\n", p.Ensemble)
	fmt.Fprintf(w, "particles\t%d\n", sum.Count)
	fmt.Fprintf(w, "box\t%d%% x %d%%\n", p.BoxWidthPerc, p.BoxHeightPerc)
	fmt.Fprintf(w, "bounds\t±%.4f x ±%.4f\n", b.W, b.H)
	fmt.Fprintf(w, "seed\t%d\n", sim.Seed())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "AXIS\tMEAN\tSTDDEV\tMIN\tMAX\tCHI2")
	fmt.Fprintf(w, "x\t%.4f\t%.4f\t%.4f\t%.4f\t%.2f\n", sum.X.Mean, sum.X.StdDev, sum.X.Min, sum.X.Max, analysis.UniformityChi2(xh))
	fmt.Fprintf(w, "y\t%.4f\t%.4f\t%.4f\t%.4f\t%.2f\n", sum.Y.Mean, sum.Y.StdDev, sum.Y.Min, sum.Y.Max, analysis.UniformityChi2(yh))
	w.Flush()

	if !a.noPlot && len(ps) > 0 {
		for _, h := range []struct {
			caption string
			counts  []float64
		}{{"x distribution", xh}, {"y distribution", yh}} {
			graph := asciigraph.Plot(h.counts,
				asciigraph.Height(8),
				asciigraph.Width(60),
				asciigraph.Caption(h.caption),
			)
			fmt.Fprintf(out, "\n%s\n", graph)
		}
	}

	within := analysis.WithinBounds(ps, b)
	fmt.Fprintf(out, "\nwithin bounds: %v\n", within)
	if !within {
		return fmt.Errorf("population escaped bounds ±%v x ±%v", b.W, b.H)
	}
	return nil
}

func (a *app) svg(cmd *cobra.Command, args []string) error {
	sim, err := a.simulator()
	if err != nil {
		return err
	}

	width, height := a.width, a.height
	if width <= 0 {
		width = a.cfg.Window.Width
	}
	if height <= 0 {
		height = a.cfg.Window.Height
	}

	var doc string
	if a.braille {
		c := viz.NewCanvas(width/8, height/16)
		view := viz.ViewportFor(sim.Extents())
		viz.DrawBox(c, sim.Bounds(), view)
		viz.PlotInstances(c, sim.InstanceData(), view)
		doc = export.CanvasToSVG(c, 4, particle.Red.Hex())
	} else {
		b := sim.Bounds()
		doc = export.InstancesToSVG(sim.InstanceDataForViewport(width, height), sim.Params().Radius, width, height, &b, sim.Extents())
	}

	if len(args) == 0 || args[0] == "-" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), doc)
		return err
	}
	if err := os.WriteFile(args[0], []byte(doc), 0644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	a.log.Info("svg written", "path", args[0], "particles", sim.Len())
	return nil
}

func (a *app) dump(cmd *cobra.Command, args []string) error {
	sim, err := a.simulator()
	if err != nil {
		return err
	}
	return export.WriteCSV(cmd.OutOrStdout(), sim.Particles())
}

func (a *app) simulator() (*thermo.Simulator, error) {
	p, err := a.cfg.ToParams()
	if err != nil {
		return nil, err
	}
	return thermo.NewPopulated(p, a.cfg.SimulatorOptions(a.log)...)
}

func listEnsembles(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SHORT\tNAME\tINPUTS\tDESCRIPTION")
	for _, k := range ensemble.All() {
		inputs := make([]string, 0, len(k.Inputs()))
		for _, in := range k.Inputs() {
			inputs = append(inputs, string(in))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", k.Short(), k, strings.Join(inputs, ","), k.Description())
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	kinds := ensemble.All()
	if len(args) > 0 {
		k, err := ensemble.Parse(args[0])
		if err != nil {
			return err
		}
		kinds = []ensemble.Kind{k}
	}

	for _, k := range kinds {
		fmt.Fprintf(out, "presets for %s:\n", k.Short())
		for _, name := range config.ListPresets(k.Short()) {
			fmt.Fprintf(out, "  %s\n", name)
		}
	}
	return nil
}
