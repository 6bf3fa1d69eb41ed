package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/motorwave/internal/analysis"
	"github.com/san-kum/motorwave/internal/anim"
	"github.com/san-kum/motorwave/internal/automation"
	"github.com/san-kum/motorwave/internal/config"
	"github.com/san-kum/motorwave/internal/export"
	"github.com/san-kum/motorwave/internal/gui"
	"github.com/san-kum/motorwave/internal/metrics"
	"github.com/san-kum/motorwave/internal/storage"
	"github.com/san-kum/motorwave/internal/trace"
	"github.com/san-kum/motorwave/internal/viz"
	"github.com/san-kum/motorwave/internal/wave"
	"github.com/san-kum/motorwave/internal/waveform"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	// Demo selection
	variant    string
	preset     string
	configFile string
	// Overrides
	step       float64
	intervalMs int
	mode       string
	waveFactor float64
	stroke     int
	amplitude  float64
	// Recording
	frames       int
	scenarioFile string
	// Output
	outFile string
	channel int
	theme   string
)

// main registers the commands and opens the demo picker when no subcommand
// is given. It exits with status 1 when a command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "motorwave",
		Short: "waveform animation demos",
		RunE: func(cmd *cobra.Command, args []string) error {
			viz.SetTheme(theme)
			return viz.RunMenu(waveform.NewRegistry())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".motorwave", "data directory")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "scope", "tui theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	bankCmd := liveCommand(waveform.DemoBank, "live motor bank")
	ecgCmd := liveCommand(waveform.DemoECG, "live scrolling ecg trace")
	sineCmd := liveCommand(waveform.DemoSine, "live sine viewer")

	guiCmd := &cobra.Command{
		Use:   "gui [demo]",
		Short: "run a demo in a raylib window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	addDemoFlags(guiCmd)

	recordCmd := &cobra.Command{
		Use:   "record [demo]",
		Short: "record frames headlessly and save the run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  recordRun,
	}
	addDemoFlags(recordCmd)
	recordCmd.Flags().IntVar(&frames, "frames", 200, "number of frames")
	recordCmd.Flags().StringVar(&scenarioFile, "scenario", "", "scenario file (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run channels",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render the last frame of a run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output file (default <run_id>.svg)")
	exportSVGCmd.Flags().IntVar(&channel, "channel", 0, "channel traced for ecg runs")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of one channel",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&channel, "channel", 0, "channel to analyze")

	presetsCmd := &cobra.Command{
		Use:   "presets [demo]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config [demo]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeConfig,
	}
	addDemoFlags(configCmd)
	configCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	rootCmd.AddCommand(bankCmd, ecgCmd, sineCmd, guiCmd, recordCmd, listCmd, plotCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, analyzeCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func liveCommand(demo, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   demo,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, demo)
			if err != nil {
				return err
			}
			sampler, err := waveform.NewRegistry().Get(cfg.Demo, cfg.Channels)
			if err != nil {
				return err
			}
			viz.SetTheme(theme)
			return viz.Run(cfg, sampler)
		},
	}
	addDemoFlags(cmd)
	return cmd
}

func addDemoFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&variant, "variant", "", "demo variant")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration (same names as --variant)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().Float64Var(&step, "step", wave.DefaultStep, "time advanced per frame in seconds")
	cmd.Flags().IntVar(&intervalMs, "interval", config.DefaultIntervalMs, "wall clock ms between frames")
	cmd.Flags().StringVar(&mode, "mode", "", "bar mode (position, stroke, amplitude)")
	cmd.Flags().Float64Var(&waveFactor, "wave-factor", 0, "starting wave factor [0, 1]")
	cmd.Flags().IntVar(&stroke, "stroke", wave.DefaultStrokeLength, "starting stroke length [1, 10]")
	cmd.Flags().Float64Var(&amplitude, "amplitude", wave.DefaultAmplitude, "starting amplitude")
}

func demoArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return waveform.DemoBank
}

// resolveConfig starts from the preset, replaces it with the config file
// when one is given, and applies the flags the user set explicitly.
func resolveConfig(cmd *cobra.Command, demo string) (*config.Config, error) {
	name := variant
	if preset != "" {
		name = preset
	}
	if name == "" {
		name = config.DefaultVariants[demo]
	}

	cfg := config.GetPreset(demo, name)
	if cfg == nil {
		if _, err := waveform.NewRegistry().Get(demo, 0); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets(demo))
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if loaded.Demo != demo {
			return nil, fmt.Errorf("config %s is for %s, not %s", configFile, loaded.Demo, demo)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("step") {
		cfg.Step = step
	}
	if flags.Changed("interval") {
		cfg.IntervalMs = intervalMs
	}
	if flags.Changed("mode") {
		cfg.Mode = waveform.Mode(mode)
	}
	if flags.Changed("wave-factor") {
		cfg.Params.WaveFactor = waveFactor
	}
	if flags.Changed("stroke") {
		cfg.Params.StrokeLength = stroke
	}
	if flags.Changed("amplitude") {
		cfg.Params.Amplitude = amplitude
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, demoArg(args))
	if err != nil {
		return err
	}
	sampler, err := waveform.NewRegistry().Get(cfg.Demo, cfg.Channels)
	if err != nil {
		return err
	}
	return gui.Run(cfg, sampler)
}

func recordRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx := context.Background()
	registry := waveform.NewRegistry()
	start := time.Now()

	var (
		cfg      *config.Config
		params   *wave.Params
		recorded []wave.Frame
		scenario string
		summary  map[string]float64
	)

	if scenarioFile != "" {
		sc, err := automation.LoadScenario(scenarioFile)
		if err != nil {
			return err
		}
		res, err := automation.RunScenario(ctx, sc, registry)
		if err != nil {
			return err
		}
		for _, e := range res.Errors {
			fmt.Printf("rejected: %v\n", e)
		}
		cfg, params, recorded, scenario, summary = res.Config, res.Params, res.Frames, sc.Name, res.Metrics
	} else {
		var err error
		cfg, err = resolveConfig(cmd, demoArg(args))
		if err != nil {
			return err
		}
		sampler, err := registry.Get(cfg.Demo, cfg.Channels)
		if err != nil {
			return err
		}
		params = cfg.NewParams()
		set := metrics.ForDemo(cfg.Demo, params)
		loop := anim.New(sampler, params, wave.NewClock(cfg.Step))
		loop.AddObserver(set)

		fmt.Printf("recording %s/%s: %d frames...\n", cfg.Demo, cfg.Variant, frames)
		recorded, err = loop.Record(ctx, frames)
		if err != nil {
			return err
		}
		summary = set.Values()
	}

	runID, err := st.Save(storage.RunMetadata{
		Demo:     cfg.Demo,
		Variant:  cfg.Variant,
		Mode:     string(cfg.Mode),
		Scenario: scenario,
		Step:     cfg.Step,
		Params:   *params,
		Axis:     cfg.Axis,
		Metrics:  summary,
	}, recorded)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", len(recorded))
	fmt.Println("\nmetrics:")
	for _, name := range metrics.Names(summary) {
		fmt.Printf("  %s: %.6f\n", name, summary[name])
	}
	return nil
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
	fmt.Fprintln(w, "ID\tDEMO\tVARIANT\tTIME\tFRAMES\tSTEP\tDURATION\tSCENARIO")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.3fs\t%.2fs\t%s\n",
			run.ID,
			run.Demo,
			run.Variant,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Step,
			run.Duration(),
			run.Scenario,
		)
	}

	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, []wave.Frame, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	recorded, err := st.LoadFrames(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(recorded) == 0 {
		return nil, nil, fmt.Errorf("run %s has no frames", runID)
	}
	return meta, recorded, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, recorded, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("demo: %s/%s\n", meta.Demo, meta.Variant)
	fmt.Printf("frames: %d\n\n", len(recorded))

	numChannels := len(recorded[0].Values)
	maxPlots := 4
	if numChannels > maxPlots {
		numChannels = maxPlots
	}

	for ch := 0; ch < numChannels; ch++ {
		data, err := storage.Channel(recorded, ch)
		if err != nil {
			return err
		}
		caption := fmt.Sprintf("channel %d vs time", ch)
		if meta.Demo == waveform.DemoECG {
			caption = "ecg level vs time"
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, recorded, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return storage.WriteFramesCSV(os.Stdout, recorded)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, recorded, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if outFile == "" {
		return export.WriteJSON(os.Stdout, meta, recorded)
	}
	if err := export.ExportJSON(outFile, meta, recorded); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	meta, recorded, err := loadRun(args[0])
	if err != nil {
		return err
	}

	m, err := waveform.ParseMode(meta.Mode)
	if err != nil {
		return err
	}
	params := meta.Params
	lo, hi := waveform.Extent(meta.Demo, m, &params)
	if meta.Axis > 0 {
		lo, hi = -meta.Axis, meta.Axis
	}
	last := recorded[len(recorded)-1]

	var svg string
	switch meta.Demo {
	case waveform.DemoECG:
		buf := trace.New(trace.DefaultWindow).ForChannel(channel)
		for _, f := range recorded {
			buf.OnFrame(f)
		}
		t0, t1 := buf.Horizon()
		svg = export.TraceToSVG(buf.Points(), t0, t1, lo, hi, 800, 300, "#00e6aa")
	case waveform.DemoSine:
		xs := waveform.NewSine().X()
		points := make([]trace.Point, 0, len(last.Values))
		for i, v := range last.Values {
			if i < len(xs) {
				points = append(points, trace.Point{T: xs[i], V: v})
			}
		}
		svg = export.TraceToSVG(points, xs[0], xs[len(xs)-1], lo, hi, 800, 300, "#4682dc")
	default:
		bars, err := m.Bars(last.Values, &params)
		if err != nil {
			return err
		}
		svg = export.BarsToSVG(bars, lo, hi, 800, 400)
	}
	if svg == "" {
		return fmt.Errorf("run %s has too little data to draw", meta.ID)
	}

	path := outFile
	if path == "" {
		path = meta.ID + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, recorded, err := loadRun(args[0])
	if err != nil {
		return err
	}

	data, err := storage.Channel(recorded, channel)
	if err != nil {
		return err
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("demo: %s, channel %d\n\n", meta.Demo, channel)

	ps := analysis.PowerSpectrum(data)
	if len(ps) > 1 {
		plotData := ps
		if len(plotData) > 4 {
			plotData = plotData[:len(plotData)/2]
		}
		graph := asciigraph.Plot(plotData,
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("power spectrum (ch%d)", channel)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	freq, resolution, err := analysis.DominantFrequency(data, meta.Step)
	if err != nil {
		return err
	}
	fmt.Printf("dominant frequency: %.3f hz (±%.3f)\n", freq, resolution/2)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	demos := waveform.NewRegistry().List()
	if len(args) > 0 {
		demos = args
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DEMO\tPRESET\tMODE\tCONTROLS\tSTEP\tFALLBACK")
	for _, demo := range demos {
		names := config.ListPresets(demo)
		if len(names) == 0 {
			fmt.Fprintf(w, "%s\t(none)\t\t\t\t\n", demo)
			continue
		}
		for _, name := range names {
			p := config.GetPreset(demo, name)
			marker := ""
			if config.DefaultVariants[demo] == name {
				marker = " *"
			}
			fmt.Fprintf(w, "%s\t%s%s\t%s\t%s\t%.2f\t%d\n", demo, name, marker, p.Mode, p.Controls, p.Step, p.StrokeFallback)
		}
	}
	return w.Flush()
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, demoArg(args))
	if err != nil {
		return err
	}
	if outFile == "" {
		return config.Encode(os.Stdout, cfg)
	}
	if err := config.Save(outFile, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}
