package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsemx/codec"
	"github.com/katalvlaran/sparsemx/config"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultOutputDir is where results are written unless configured otherwise.
const DefaultOutputDir = "result_outputs"

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// RootOptions holds global flags for all commands, merged with the config file
// before any subcommand runs.
type RootOptions struct {
	Verbose    bool
	Format     string
	ConfigPath string
	OutputDir  string

	decodeOpts []codec.Option
	logger     *slog.Logger
}

// NewRootCommand creates the root command for the sparsemx CLI.
func NewRootCommand() *cobra.Command {
	cmd, _ := newRootCommand()
	return cmd
}

func newRootCommand() (*cobra.Command, *RootOptions) {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sparsemx",
		Short: "Sparse integer matrix arithmetic on text files",
		Long: `Load two sparse matrices from text files, add, subtract or multiply them,
and write the result in the same format.

Input format:
  rows=<n>
  cols=<n>
  (<row>, <col>, <value>)
  ...`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config file (default: ./sparsemx.yml if present)")
	cmd.PersistentFlags().StringVarP(&opts.OutputDir, "output-dir", "o", DefaultOutputDir, "directory for result files")

	cmd.AddCommand(NewOpCommand(opts, "add"))
	cmd.AddCommand(NewOpCommand(opts, "sub"))
	cmd.AddCommand(NewOpCommand(opts, "mul"))
	cmd.AddCommand(NewRunCommand(opts))

	return cmd, opts
}

// resolve merges the config file under explicitly set flags, validates the
// result and configures logging.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if o.ConfigPath != "" {
		cfg, err = config.LoadFile(o.ConfigPath)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return &ExitError{Code: ExitInputError, Kind: CodeConfig, Message: "failed to load config", Err: err}
	}

	flags := cmd.Flags()
	if !flags.Changed("output-dir") && cfg.OutputDir != "" {
		o.OutputDir = cfg.OutputDir
	}
	if !flags.Changed("format") && cfg.Format != "" {
		o.Format = cfg.Format
	}
	if !flags.Changed("verbose") && cfg.Verbose {
		o.Verbose = true
	}

	if !slices.Contains(ValidFormats, o.Format) {
		return &ExitError{
			Code:    ExitInputError,
			Kind:    CodeUsage,
			Message: fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats),
		}
	}

	o.decodeOpts = cfg.DecodeOptions()
	o.logger = newLogger(cmd.ErrOrStderr(), o.Verbose)

	return nil
}

// newLogger builds the text slog handler: Info by default, Debug when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// formatter returns the output formatter bound to cmd's writers.
func (o *RootOptions) formatter(stdout, stderr io.Writer) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: stdout, ErrWriter: stderr}
}

// Execute runs the CLI with args and returns the process exit code. Failures
// are reported as one diagnostic line; nothing panics on bad input.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd, opts := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	if !slices.Contains(ValidFormats, opts.Format) {
		opts.Format = FormatText
	}
	_ = opts.formatter(stdout, stderr).Error(errorKind(err), err.Error())

	return GetExitCode(err)
}
