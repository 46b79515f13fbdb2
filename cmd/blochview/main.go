package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/blochview/internal/config"
	"github.com/san-kum/blochview/internal/export"
	"github.com/san-kum/blochview/internal/gates"
	"github.com/san-kum/blochview/internal/qmath"
	"github.com/san-kum/blochview/internal/viz"
)

var (
	configFile string
	theme      string

	// state input flags
	preset  string
	theta   float64
	phi     float64
	alphaRe float64
	alphaIm float64
	betaRe  float64
	betaIm  float64

	// path flags
	fromPreset string
	toPreset   string
	steps      int
	easing     string
	outFile    string
	format     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "blochview",
		Short: "single-qubit state visualizer on the Bloch sphere",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if theme != "" {
				cfg.View.Theme = theme
			}
			return viz.Run(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&theme, "theme", "", "color theme")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "print a state in all three representations",
		RunE:  showState,
	}
	addStateFlags(showCmd)

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "sample the great-circle arc between two states",
		RunE:  samplePath,
	}
	pathCmd.Flags().StringVar(&fromPreset, "from", "zero", "start state preset")
	pathCmd.Flags().StringVar(&toPreset, "to", "one", "end state preset")
	pathCmd.Flags().IntVar(&steps, "steps", 20, "number of samples")
	pathCmd.Flags().StringVar(&easing, "easing", "linear", "easing curve")
	pathCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")
	pathCmd.Flags().StringVar(&format, "format", "table", "output format: table, csv, json")

	gatesCmd := &cobra.Command{
		Use:   "gates",
		Short: "list available gates",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := gates.NewRegistry()
			for _, name := range reg.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named states",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "name\tket\ttheta\tphi")
			for _, name := range config.ListPresets() {
				s := config.Presets[name]
				fmt.Fprintf(w, "%s\t%s\t%.4f\t%.4f\n", name, config.PresetLabels[name], s.Theta, s.Phi)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(showCmd, pathCmd, gatesCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addStateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "named state (zero, one, plus, ...)")
	cmd.Flags().Float64Var(&theta, "theta", 0, "polar angle")
	cmd.Flags().Float64Var(&phi, "phi", 0, "azimuthal angle")
	cmd.Flags().Float64Var(&alphaRe, "alpha-re", 0, "Re(alpha)")
	cmd.Flags().Float64Var(&alphaIm, "alpha-im", 0, "Im(alpha)")
	cmd.Flags().Float64Var(&betaRe, "beta-re", 0, "Re(beta)")
	cmd.Flags().Float64Var(&betaIm, "beta-im", 0, "Im(beta)")
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(configFile)
}

// resolveState picks the input representation: preset name wins, then
// amplitudes if any amplitude flag was set, then angles.
func resolveState(cmd *cobra.Command) (qmath.Spherical, error) {
	if preset != "" {
		s, ok := config.GetPreset(preset)
		if !ok {
			return qmath.Spherical{}, fmt.Errorf("unknown preset: %s", preset)
		}
		return s, nil
	}
	for _, name := range []string{"alpha-re", "alpha-im", "beta-re", "beta-im"} {
		if cmd.Flags().Changed(name) {
			return qmath.AmplitudesToSpherical(qmath.Amplitudes{
				Alpha: qmath.Complex{Re: alphaRe, Im: alphaIm},
				Beta:  qmath.Complex{Re: betaRe, Im: betaIm},
			}), nil
		}
	}
	return qmath.Spherical{Theta: theta, Phi: phi}, nil
}

func showState(cmd *cobra.Command, args []string) error {
	s, err := resolveState(cmd)
	if err != nil {
		return err
	}
	c := qmath.SphericalToCartesian(s)
	a := qmath.SphericalToAmplitudes(s)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "spherical\ttheta=%.6f\tphi=%.6f\n", s.Theta, s.Phi)
	fmt.Fprintf(w, "\t(%.1f°)\t(%.1f°)\n", s.Theta*180/math.Pi, s.Phi*180/math.Pi)
	fmt.Fprintf(w, "cartesian\tx=%+.6f\ty=%+.6f\tz=%+.6f\n", c.X, c.Y, c.Z)
	fmt.Fprintf(w, "amplitudes\talpha=%+.6f%+.6fi\tbeta=%+.6f%+.6fi\n",
		a.Alpha.Re, a.Alpha.Im, a.Beta.Re, a.Beta.Im)
	return w.Flush()
}

func samplePath(cmd *cobra.Command, args []string) error {
	start, ok := config.GetPreset(fromPreset)
	if !ok {
		return fmt.Errorf("unknown preset: %s", fromPreset)
	}
	end, ok := config.GetPreset(toPreset)
	if !ok {
		return fmt.Errorf("unknown preset: %s", toPreset)
	}
	kind, err := qmath.ParseEasing(easing)
	if err != nil {
		return err
	}
	if steps < 1 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}

	fn := kind.Fn()
	points := make([]qmath.Spherical, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := fn(float64(i) / float64(steps))
		points = append(points, qmath.Slerp(start, end, t))
	}

	out := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "csv":
		return export.WriteCSV(out, points)
	case "json":
		meta := export.Meta{
			Label:     fmt.Sprintf("%s to %s", fromPreset, toPreset),
			Easing:    easing,
			Timestamp: time.Now(),
		}
		return export.WriteJSON(out, meta, points)
	case "table":
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "i\ttheta\tphi\tx\ty\tz")
		for i, p := range points {
			c := qmath.SphericalToCartesian(p)
			fmt.Fprintf(w, "%d\t%.6f\t%.6f\t%+.6f\t%+.6f\t%+.6f\n", i, p.Theta, p.Phi, c.X, c.Y, c.Z)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
