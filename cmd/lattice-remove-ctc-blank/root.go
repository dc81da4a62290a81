package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlfst/ctc"
	"github.com/katalvlaran/lvlfst/fst"
	"github.com/katalvlaran/lvlfst/internal/logging"
)

var (
	flagLogLevel string
	flagJobs     int
	flagConfig   string
)

var rootCmd = &cobra.Command{
	Use:   "lattice-remove-ctc-blank <blank-symbol> <in-specifier> <out-specifier>",
	Short: "Remove CTC blank symbols from the output labels of lattice tables",
	Long: `Remove CTC blank symbols from the output labels of lattices.

Every lattice of the input table is rewritten by the CTC collapse rule:
blank labels are deleted and maximal runs of identical consecutive labels
merge into one occurrence. Weights are preserved. Input lattices must be
acyclic acceptors; violating entries abort the run with a descriptive error.

Both specifiers must name tables: ark:<path> or sqlite:<path>.

Example:
  lattice-remove-ctc-blank 32 ark:input.ark ark:output.ark`,
	Args:          cobra.ExactArgs(3),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.Flags().IntVar(&flagJobs, "jobs", runtime.NumCPU(), "number of lattices processed concurrently")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "optional YAML config file with flag defaults")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lattice-remove-ctc-blank:", err)
		os.Exit(1)
	}
}

// fileConfig mirrors the tunable flags for --config files.
type fileConfig struct {
	LogLevel string `yaml:"log_level"`
	Jobs     int    `yaml:"jobs"`
}

// applyConfig loads path and fills in defaults for flags the user did
// not set explicitly on the command line.
func applyConfig(cmd *cobra.Command, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var cfg fileConfig
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.LogLevel != "" && !cmd.Flags().Changed("log-level") {
		flagLogLevel = cfg.LogLevel
	}
	if cfg.Jobs > 0 && !cmd.Flags().Changed("jobs") {
		flagJobs = cfg.Jobs
	}

	return nil
}

// parseBlank converts the blank-symbol argument, rejecting non-integers
// and the reserved epsilon label before any table is touched.
func parseBlank(arg string) (fst.Label, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("blank symbol %q cannot be converted to a non-negative integer", arg)
	}
	if fst.Label(n) == fst.Epsilon {
		return 0, fmt.Errorf("%w (symbol 0 is reserved for epsilon)", ctc.ErrEpsilonBlank)
	}

	return fst.Label(n), nil
}

func run(cmd *cobra.Command, args []string) error {
	if flagConfig != "" {
		if err := applyConfig(cmd, flagConfig); err != nil {
			return err
		}
	}
	log := logging.New(flagLogLevel)

	blank, err := parseBlank(args[0])
	if err != nil {
		return err
	}
	if flagJobs < 1 {
		flagJobs = 1
	}

	return process(cmd.Context(), log, blank, args[1], args[2], flagJobs)
}
