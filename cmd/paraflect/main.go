package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/paraflect/internal/config"
	"github.com/san-kum/paraflect/internal/export"
	"github.com/san-kum/paraflect/internal/geom"
	"github.com/san-kum/paraflect/internal/scene"
	"github.com/san-kum/paraflect/internal/storage"
	"github.com/san-kum/paraflect/internal/viz"
)

var (
	dataDir    string
	focus      float64
	rayCount   int
	mode       string
	spanLo     float64
	spanHi     float64
	configFile string
	preset     string
	svgOut     string
	svgWidth   int
	svgHeight  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "paraflect",
		Short: "parabolic reflector optics lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := buildScene(cmd)
			if err != nil {
				return err
			}
			return viz.RunInteractiveScene(sc)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".paraflect", "data directory")
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "trace one ray bundle and save the run",
		RunE:  runTrace,
	}
	traceCmd.Flags().Float64Var(&focus, "focus", scene.DefaultFocus, "focal length")
	traceCmd.Flags().IntVar(&rayCount, "rays", scene.DefaultRays, "number of rays")
	traceCmd.Flags().StringVar(&mode, "mode", "parallel", "bundle mode (parallel|focal)")
	traceCmd.Flags().Float64Var(&spanLo, "span-lo", scene.DefaultSpanLo, "parallel bundle left edge")
	traceCmd.Flags().Float64Var(&spanHi, "span-hi", scene.DefaultSpanHi, "parallel bundle right edge")
	traceCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	traceCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run segments to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 500, "image height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("  %-10s f=%.1f rays=%d %s\n", name, p.Focus, p.Rays, p.Mode)
			}
		},
	}

	rootCmd.AddCommand(traceCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildScene resolves preset, then config file, then CLI flags, the
// later overriding the earlier.
func buildScene(cmd *cobra.Command) (scene.Scene, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return scene.Scene{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return scene.Scene{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("focus") {
		cfg.Focus = focus
	}
	if cmd.Flags().Changed("rays") {
		cfg.Rays = rayCount
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = mode
	}
	if cmd.Flags().Changed("span-lo") {
		cfg.Span.Lo = spanLo
	}
	if cmd.Flags().Changed("span-hi") {
		cfg.Span.Hi = spanHi
	}

	return cfg.Scene()
}

func runTrace(cmd *cobra.Command, args []string) error {
	sc, err := buildScene(cmd)
	if err != nil {
		return err
	}

	tr, err := scene.Retrace(sc)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(sc, tr)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n\n", runID)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "mode\t%s\n", sc.Mode)
	fmt.Fprintf(w, "focus\t%.3f\n", sc.Focus)
	fmt.Fprintf(w, "directrix\t%.3f\n", tr.Directrix)
	fmt.Fprintf(w, "rays\t%d\n", sc.Rays)
	fmt.Fprintf(w, "hits\t%d\n", tr.Stats.Hits)
	fmt.Fprintf(w, "misses\t%d\n", tr.Stats.Misses)
	fmt.Fprintf(w, "focus spread\t%.2e\n", tr.Stats.FocusSpread)
	fmt.Fprintf(w, "axis deviation\t%.2e\n", tr.Stats.AxisDeviation)
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODE\tTIME\tFOCUS\tRAYS\tHITS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d\t%d\n",
			run.ID,
			run.Mode,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Focus,
			run.Rays,
			run.Hits,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	segs, err := st.LoadSegments(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("mode: %s  focus: %.2f\n\n", meta.Mode, meta.Focus)

	// Curve profile, recomputed from the stored focal length.
	p, err := geom.NewParabola(meta.Focus)
	if err != nil {
		return err
	}
	profile := make([]float64, 81)
	for i := range profile {
		x := scene.CurveLo + (scene.CurveHi-scene.CurveLo)*float64(i)/80
		profile[i] = p.PointOnCurve(x)
	}
	fmt.Println(asciigraph.Plot(profile,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("curve profile y = x²/(4·%.2f)", meta.Focus)),
	))
	fmt.Println()

	// Strike height per ray, from the incident legs.
	heights := make([]float64, 0, meta.Hits)
	for _, seg := range segs {
		if seg.Kind == scene.KindIncident {
			heights = append(heights, seg.B.Y)
		}
	}
	if len(heights) > 1 {
		fmt.Println(asciigraph.Plot(heights,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("strike height per ray"),
		))
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	segs, err := st.LoadSegments(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"ray", "kind", "ax", "ay", "bx", "by"}); err != nil {
		return err
	}
	for _, seg := range segs {
		row := []string{
			strconv.Itoa(seg.Ray),
			seg.Kind,
			strconv.FormatFloat(seg.A.X, 'f', 6, 64),
			strconv.FormatFloat(seg.A.Y, 'f', 6, 64),
			strconv.FormatFloat(seg.B.X, 'f', 6, 64),
			strconv.FormatFloat(seg.B.Y, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	segs, err := st.LoadSegments(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, segs)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	// Rebuild the trace from the stored scene; traces are pure
	// functions of their parameters, so this reproduces the run
	// exactly.
	sc := scene.NewScene()
	sc.SpanLo, sc.SpanHi = meta.SpanLo, meta.SpanHi
	if err := sc.SetFocus(meta.Focus); err != nil {
		return err
	}
	sc.SetRays(meta.Rays)
	m, err := scene.ParseMode(meta.Mode)
	if err != nil {
		return err
	}
	sc.Mode = m

	tr, err := scene.Retrace(sc)
	if err != nil {
		return err
	}

	svg := export.TraceToSVG(tr, svgWidth, svgHeight)
	if svgOut == "" {
		fmt.Print(svg)
		return nil
	}
	return os.WriteFile(svgOut, []byte(svg), 0644)
}
