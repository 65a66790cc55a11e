package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"smithwagnercv/adapters/export"
	"smithwagnercv/adapters/rng"
	"smithwagnercv/app"
	"smithwagnercv/domain/learning"
	"smithwagnercv/internal"
	"smithwagnercv/internal/config"
	"smithwagnercv/internal/simulation"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "swcv",
		Short: "Monte Carlo critical values for value-added learning scores",
		Long: `Simulates classes of students guessing on a multiple-choice pretest and
posttest and reports critical values for the gamma, alpha, flow and gain
learning statistics, together with a confidence interval on mu.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newSimulateCmd(cfg),
		newGridCmd(cfg),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// simulationFlags are shared by every command that runs trials
type simulationFlags struct {
	numOptions     int
	repetitions    int
	criticalValues []float64
	confInterval   []float64
	workers        int
	seed           uint64
}

func (f *simulationFlags) register(cmd *cobra.Command, cfg *config.Config) {
	sim := cfg.Simulation
	cmd.Flags().IntVar(&f.numOptions, "num-options", sim.NumOptions, "Number of answer options per question")
	cmd.Flags().IntVarP(&f.repetitions, "repetitions", "r", sim.Repetitions, "Trials per (class size, mu) cell")
	cmd.Flags().Float64SliceVar(&f.criticalValues, "critical-values", sim.CriticalValues, "Quantiles to report for each statistic")
	cmd.Flags().Float64SliceVar(&f.confInterval, "conf-interval", sim.ConfInterval, "Quantiles of the mu distribution to report")
	cmd.Flags().IntVar(&f.workers, "workers", sim.Workers, "Concurrent trials")
	cmd.Flags().Uint64Var(&f.seed, "seed", sim.Seed, "Random seed (0 = non-deterministic)")
}

func (f *simulationFlags) options() simulation.Options {
	return simulation.Options{
		NumOptions:     f.numOptions,
		CriticalValues: f.criticalValues,
		ConfInterval:   f.confInterval,
		Repetitions:    f.repetitions,
	}
}

func (f *simulationFlags) service(logger *internal.Logger) (*app.SimulationService, *simulation.Engine) {
	engine := simulation.NewEngine(rng.NewPCGAdapter(f.seed), logger)
	engine.SetWorkers(f.workers)
	return app.NewSimulationService(engine, logger), engine
}

func newSimulateCmd(cfg *config.Config) *cobra.Command {
	var flags simulationFlags
	var classSize int
	var mu float64

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a single class size and mu",
		Long: `Run the trials of one (class size, mu) cell and print its critical values.

Example: swcv simulate --class-size 30 --mu 0.4 --repetitions 10000 --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := internal.NewLogger(internal.ParseLogLevel(cfg.LogLevel))
			service, _ := flags.service(logger)

			reports, err := service.RunCell(cmd.Context(), classSize, mu, flags.options())
			if err != nil {
				return err
			}
			return printReports(cmd.OutOrStdout(), reports)
		},
	}

	flags.register(cmd, cfg)
	cmd.Flags().IntVar(&classSize, "class-size", 30, "Number of students in each simulated class")
	cmd.Flags().Float64Var(&mu, "mu", 0.5, "True proportion of the class that knows the material")
	return cmd
}

func newGridCmd(cfg *config.Config) *cobra.Command {
	var flags simulationFlags
	var classSizes []int
	var mus []float64
	var outputDir string
	var workbook bool

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Sweep class sizes x mus and write the result tables",
		Long: `Simulate every combination of class size and mu and write
gammaResults.csv, alphaResults.csv, flowResults.csv and gainResults.csv.

Example: swcv grid --class-sizes 10,20,50 --mus 0.1,0.3,0.5 --output-dir results --workbook`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := internal.NewLogger(internal.ParseLogLevel(cfg.LogLevel))
			if err := app.EnsureOutputDir(outputDir); err != nil {
				return err
			}

			service, engine := flags.service(logger)
			engine.SetProgressReporter(app.NewLoggingProgress(logger, progressEvery(len(classSizes)*len(mus))))

			result, err := service.RunGrid(cmd.Context(), app.GridRequest{
				ClassSizes: classSizes,
				Mus:        mus,
				Options:    flags.options(),
				OutputDir:  outputDir,
				Workbook:   workbook,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %s: %d cells in %dms\n", result.RunID, result.Grid.Cells(), result.RuntimeMs)
			for _, f := range result.Files {
				fmt.Fprintf(out, "  %s\n", f)
			}
			return nil
		},
	}

	flags.register(cmd, cfg)
	cmd.Flags().IntSliceVar(&classSizes, "class-sizes", []int{10, 20, 30, 50, 100}, "Class sizes to simulate")
	cmd.Flags().Float64SliceVar(&mus, "mus", []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}, "Values of mu to simulate")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", cfg.Output.Dir, "Directory for the result files")
	cmd.Flags().BoolVar(&workbook, "workbook", cfg.Output.Workbook, "Also write "+app.WorkbookFileName)
	return cmd
}

func progressEvery(cells int) int {
	if cells <= 20 {
		return 1
	}
	return cells / 20
}

func printReports(w io.Writer, reports learning.CellReports) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	first := reports[learning.Gamma]
	fmt.Fprintf(tw, "classSize=%d\tmu=%v\n\n", first.ClassSize, first.Mu)

	header := []string{"statistic"}
	for _, cv := range first.CriticalValues {
		header = append(header, "cv@"+export.FormatFloat(cv.Quantile))
	}
	header = append(header, "mean", "sd")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, name := range learning.ReportedStatistics {
		r := reports[name]
		row := []string{string(name)}
		for _, cv := range r.CriticalValues {
			row = append(row, export.FormatFloat(cv.Value))
		}
		row = append(row, export.FormatFloat(r.Summary.Mean), export.FormatFloat(r.Summary.StdDev))
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
	for _, ci := range first.MuCI {
		fmt.Fprintf(tw, "mu@%s\t%s\n", export.FormatFloat(ci.Quantile), export.FormatFloat(ci.Value))
	}
	return tw.Flush()
}
