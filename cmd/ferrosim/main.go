package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ferrosim/internal/analysis"
	"github.com/san-kum/ferrosim/internal/config"
	"github.com/san-kum/ferrosim/internal/ferro"
	"github.com/san-kum/ferrosim/internal/metrics"
	"github.com/san-kum/ferrosim/internal/storage"
	"github.com/san-kum/ferrosim/internal/sweep"
	"github.com/san-kum/ferrosim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir      string
	dt           float64
	duration     float64
	startX       float64
	scanSpeed    float64
	coupling     float64
	spatialFreq  float64
	temporalFreq float64
	configFile   string
	frameRate    int
	// Coupling grid for the sweep command
	sweepFrom   float64
	sweepTo     float64
	sweepPoints int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ferrosim",
		Short: "multiferroic material simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ferrosim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "drive a material and record the energy-density series",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runMaterial,
	}
	addDriveFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list application presets",
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored energy-density series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a stored series",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored series to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "drive a material with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addDriveFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	sweepCmd := &cobra.Command{
		Use:   "sweep [preset]",
		Short: "sweep coupling strength across parallel runs",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	addDriveFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 1e-9, "lowest coupling strength")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 1e-7, "highest coupling strength")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 10, "number of grid points")

	rootCmd.AddCommand(runCmd, presetsCmd, listCmd, plotCmd, analyzeCmd, exportCSVCmd, exportJSONCmd, liveCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addDriveFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Float64Var(&startX, "start-x", 0.0, "initial probe position")
	cmd.Flags().Float64Var(&scanSpeed, "scan-speed", config.DefaultScanSpeed, "probe scan speed")
	cmd.Flags().Float64Var(&coupling, "coupling", 0, "override coupling strength")
	cmd.Flags().Float64Var(&spatialFreq, "spatial-freq", 0, "override spatial frequency")
	cmd.Flags().Float64Var(&temporalFreq, "temporal-freq", 0, "override temporal frequency")
}

func presetTag(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "general"
}

// flagCustomizer converts the override flags into a preset customization
// callback; unchanged flags leave the preset untouched.
func flagCustomizer(cmd *cobra.Command) func(*ferro.Config) {
	return func(c *ferro.Config) {
		if cmd.Flags().Changed("coupling") {
			c.Coupling = coupling
		}
		if cmd.Flags().Changed("spatial-freq") {
			c.SpatialFreq = spatialFreq
		}
		if cmd.Flags().Changed("temporal-freq") {
			c.TemporalFreq = temporalFreq
		}
	}
}

func runMaterial(cmd *cobra.Command, args []string) error {
	tag := presetTag(args)

	var mat *ferro.Material
	var err error

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if fileCfg.Preset != "" {
			tag = fileCfg.Preset
		}
		if !cmd.Flags().Changed("dt") {
			dt = fileCfg.Run.Dt
		}
		if !cmd.Flags().Changed("time") {
			duration = fileCfg.Run.Duration
		}
		if !cmd.Flags().Changed("start-x") {
			startX = fileCfg.Run.StartX
		}
		if !cmd.Flags().Changed("scan-speed") {
			scanSpeed = fileCfg.Run.ScanSpeed
		}
		fc := fileCfg.FerroConfig()
		flagCustomizer(cmd)(fc)
		mat, err = ferro.New(fc)
		if err != nil {
			return err
		}
	} else {
		mat, err = config.FromPreset(tag, flagCustomizer(cmd))
		if err != nil {
			return err
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner := sweep.New(mat)
	runner.AddMetric(metrics.NewMeanEnergy())
	runner.AddMetric(metrics.NewPeakEnergy())
	runner.AddMetric(metrics.NewSaturation(mat.Config()))

	runCfg := sweep.Config{Dt: dt, Duration: duration, StartX: startX, ScanSpeed: scanSpeed}

	fmt.Printf("driving %s material...\n", tag)
	start := time.Now()

	result, err := runner.Run(context.Background(), runCfg)
	if err != nil {
		return err
	}

	runID, err := st.Save(tag, runCfg, mat.Coupling(), result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.Steps)
	fmt.Printf("final state: P=%.6g M=%.6g S=%.6g\n",
		mat.Polarization(), mat.Magnetization(), mat.Strain())
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}

	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TAG\tCOUPLING\tE-AMP\tB-AMP\tSTRESS-AMP\tTEMPORAL-FREQ")

	for _, tag := range config.ListPresets() {
		c := config.Preset(tag)
		fmt.Fprintf(w, "%s\t%.3g\t%.3g\t%.3g\t%.3g\t%.3g\n",
			tag, c.Coupling, c.ElectricAmp, c.MagneticAmp, c.StressAmp, c.TemporalFreq)
	}

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
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tDURATION\tDT\tCOUPLING")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%.3g\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Coupling,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	samples, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		fmt.Println("no samples in run")
		return nil
	}

	energies := make([]float64, len(samples))
	for i, s := range samples {
		energies[i] = s.Energy
	}

	fmt.Println(asciigraph.Plot(energies,
		asciigraph.Height(20),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("energy density — %s", args[0])),
	))

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	energies := make([]float64, len(samples))
	for i, s := range samples {
		energies[i] = s.Energy
	}

	fmt.Printf("run: %s (%s preset, %d samples)\n", meta.ID, meta.Preset, len(samples))
	fmt.Printf("dominant frequency: %.4f Hz\n", analysis.DominantFrequency(energies, meta.Dt))

	ps := analysis.PowerSpectrum(energies)
	if len(ps) > 1 {
		fmt.Println("\npower spectrum (first bins):")
		n := len(ps)
		if n > 8 {
			n = 8
		}
		for i := 1; i < n; i++ {
			freq := float64(i) / (float64(2*len(ps)) * meta.Dt)
			fmt.Printf("  %.3f Hz: %.6g\n", freq, ps[i])
		}
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	samples, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "position", "polarization", "magnetization", "strain", "energy"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.Time, 'g', -1, 64),
			strconv.FormatFloat(s.Position, 'g', -1, 64),
			strconv.FormatFloat(s.Polarization, 'g', -1, 64),
			strconv.FormatFloat(s.Magnetization, 'g', -1, 64),
			strconv.FormatFloat(s.Strain, 'g', -1, 64),
			strconv.FormatFloat(s.Energy, 'g', -1, 64),
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
	samples, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, samples)
}

func runLive(cmd *cobra.Command, args []string) error {
	tag := presetTag(args)
	cfg := config.Preset(tag)
	flagCustomizer(cmd)(cfg)
	return viz.Run(tag, cfg, dt, scanSpeed, frameRate)
}

func runSweep(cmd *cobra.Command, args []string) error {
	if sweepPoints < 2 {
		return fmt.Errorf("sweep needs at least 2 points, got %d", sweepPoints)
	}

	tag := presetTag(args)
	customize := flagCustomizer(cmd)

	couplings := make([]float64, sweepPoints)
	step := (sweepTo - sweepFrom) / float64(sweepPoints-1)
	for i := range couplings {
		couplings[i] = sweepFrom + float64(i)*step
	}

	ensemble := sweep.NewEnsemble(func(k float64) (*ferro.Material, error) {
		return config.FromPreset(tag, func(c *ferro.Config) {
			customize(c)
			c.Coupling = k
		})
	}, couplings)
	ensemble.AddMetric(func() ferro.Metric { return metrics.NewMeanEnergy() })
	ensemble.AddMetric(func() ferro.Metric { return metrics.NewPeakEnergy() })

	runCfg := sweep.Config{Dt: dt, Duration: duration, StartX: startX, ScanSpeed: scanSpeed}

	fmt.Printf("sweeping %s coupling over %d points...\n", tag, sweepPoints)
	results, err := ensemble.Run(context.Background(), runCfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COUPLING\tMEAN ENERGY\tPEAK ENERGY")
	for i, res := range results {
		fmt.Fprintf(w, "%.4g\t%.6g\t%.6g\n", couplings[i], res.Metrics["mean_energy"], res.Metrics["peak_energy"])
	}

	return w.Flush()
}
