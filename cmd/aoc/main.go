package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/aoc2024/config"
	"github.com/katalvlaran/aoc2024/puzzle"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Solve flags
	workers  int
	progress bool
	showTime bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code 2024 solvers, days 1 to 6",
	Long: `aoc runs one puzzle half against an input file and prints the answer.

Each solver reads the file line by line and reports a single integer.
Day 6 part 2 evaluates candidate obstructions over a worker pool.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("workers") {
			cfg.Workers = workers
		}
		if cmd.Flags().Changed("progress") {
			cfg.Progress = progress
		}
		if cmd.Flags().Changed("time") {
			cfg.ShowElapsed = showTime
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = newLogger(cfg.LogLevel, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// solveCmd runs a single puzzle half
var solveCmd = &cobra.Command{
	Use:   "solve [day] [part] [input]",
	Short: "Solve one puzzle half against an input file",
	Long: `Reads the input file line by line into the selected solver and prints
the answer.

Examples:
  aoc solve 6 1 input.txt
  aoc solve 6 2 input.txt --workers 8 --progress --time`,
	Args: cobra.ExactArgs(3),
	RunE: runSolve,
}

// listCmd prints the registered puzzles
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available puzzles",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "aoc.yaml", "Path to the YAML configuration file")

	solveCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Candidate search workers (0 = one per CPU)")
	solveCmd.Flags().BoolVar(&progress, "progress", false, "Show a progress bar during long searches")
	solveCmd.Flags().BoolVarP(&showTime, "time", "t", false, "Print the elapsed wall-clock time")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds a production zap logger at the configured level;
// verbose forces debug.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// parseKey reads the day and part arguments.
func parseKey(day, part string) (puzzle.Key, error) {
	d, err := strconv.Atoi(day)
	if err != nil {
		return puzzle.Key{}, fmt.Errorf("%w: day %q", puzzle.ErrInvalidKey, day)
	}
	p, err := strconv.Atoi(part)
	if err != nil {
		return puzzle.Key{}, fmt.Errorf("%w: part %q", puzzle.ErrInvalidKey, part)
	}
	k := puzzle.Key{Day: d, Part: p}
	return k, k.Validate()
}

// runSolve looks up the solver, feeds it the input file and prints the answer.
func runSolve(cmd *cobra.Command, args []string) error {
	key, err := parseKey(args[0], args[1])
	if err != nil {
		return err
	}

	var bar *progressBar
	if cfg.Progress {
		bar = newProgressBar(cmd.ErrOrStderr())
		defer bar.close()
	}
	entry, err := newCalendar(searchOptions(bar)...).Lookup(key)
	if err != nil {
		return err
	}

	logger.Debug("Solving puzzle",
		zap.String("puzzle", key.String()),
		zap.String("title", entry.Title),
		zap.String("input", args[2]),
		zap.Int("workers", cfg.Workers))

	s := entry.Factory()
	result, elapsed, err := puzzle.Timed(func() (string, error) {
		return puzzle.ProcessFile(args[2], s)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	logger.Info("Puzzle solved",
		zap.String("puzzle", key.String()),
		zap.Duration("elapsed", elapsed))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "The solution is `%s`\n", result)
	if cfg.ShowElapsed {
		fmt.Fprintf(out, "Elapsed: %s\n", elapsed)
	}
	return nil
}

// runList prints every registered puzzle, one per line.
func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, e := range newCalendar().Entries() {
		fmt.Fprintf(out, "day %2d part %d  %s\n", e.Key.Day, e.Key.Part, e.Title)
	}
	return nil
}
