package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sparsemx/codec"
	"github.com/katalvlaran/sparsemx/matrix"
)

// dirPerm is the permission used when creating the output directory.
const dirPerm = 0o755

// outputPrefix names result files per operation, e.g. sum_of_a_and_b.txt.
var outputPrefix = map[matrix.Operation]string{
	matrix.OpAdd: "sum",
	matrix.OpSub: "sub",
	matrix.OpMul: "product",
}

var opShort = map[matrix.Operation]string{
	matrix.OpAdd: "Add two sparse matrices",
	matrix.OpSub: "Subtract the second sparse matrix from the first",
	matrix.OpMul: "Multiply two sparse matrices",
}

// NewOpCommand creates a fixed-operation command ("add", "sub" or "mul").
// It panics on an unknown name; names are wired by NewRootCommand only.
func NewOpCommand(rootOpts *RootOptions, name string) *cobra.Command {
	op, err := matrix.ParseOperation(name)
	if err != nil {
		panic(err)
	}

	return &cobra.Command{
		Use:   name + " <matrix-a> <matrix-b>",
		Short: opShort[op],
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(rootOpts, op, args[0], args[1], cmd)
		},
	}
}

// NewRunCommand creates the run command, which selects the operation with
// --op using the menu numbering (1, 2, 3) or a name.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	var selector string

	cmd := &cobra.Command{
		Use:   "run --op <1|2|3|add|sub|mul> <matrix-a> <matrix-b>",
		Short: "Run the selected operation on two sparse matrices",
		Long: `Run one operation selected by --op:

  (1) addition        add | sum
  (2) subtraction     sub | subtract | diff
  (3) multiplication  mul | multiply | product`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := matrix.ParseOperation(selector)
			if err != nil {
				return WrapExitError("invalid operation", err)
			}
			return runOperation(rootOpts, op, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&selector, "op", "", "operation: 1|2|3 or add|sub|mul (required)")
	_ = cmd.MarkFlagRequired("op")

	return cmd
}

// OutputFileName builds "<prefix>_of_<A>_and_<B>.txt" from the input
// basenames without their extensions.
func OutputFileName(op matrix.Operation, pathA, pathB string) string {
	return fmt.Sprintf("%s_of_%s_and_%s.txt", outputPrefix[op], stem(pathA), stem(pathB))
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func runOperation(opts *RootOptions, op matrix.Operation, pathA, pathB string, cmd *cobra.Command) error {
	log := opts.logger.With("op", op.String())

	log.Debug("loading operands", "a", pathA, "b", pathB)
	a, b, err := loadOperands(pathA, pathB, opts.decodeOpts)
	if err != nil {
		return WrapExitError("failed to load matrix", err)
	}
	log.Debug("operands loaded",
		"a_shape", fmt.Sprintf("%dx%d", a.Rows(), a.Cols()), "a_nnz", a.NNZ(),
		"b_shape", fmt.Sprintf("%dx%d", b.Rows(), b.Cols()), "b_nnz", b.NNZ())

	res, err := matrix.Apply(op, a, b)
	if err != nil {
		return WrapExitError("operation failed", err)
	}

	if err = os.MkdirAll(opts.OutputDir, dirPerm); err != nil {
		return WrapExitError("failed to create output directory", fmt.Errorf("%w: %w", codec.ErrIO, err))
	}
	out := filepath.Join(opts.OutputDir, OutputFileName(op, pathA, pathB))
	if err = codec.Save(res, out); err != nil {
		return WrapExitError("failed to write result", err)
	}
	log.Info("result written", "path", out, "nnz", res.NNZ())

	return opts.formatter(cmd.OutOrStdout(), cmd.ErrOrStderr()).Success(&Result{
		Operation: op.String(),
		Inputs:    []string{pathA, pathB},
		Output:    out,
		Rows:      res.Rows(),
		Cols:      res.Cols(),
		NonZero:   res.NNZ(),
	})
}

// loadOperands loads both files concurrently. The operands share no state;
// when both fail, the first operand's error is reported.
func loadOperands(pathA, pathB string, decodeOpts []codec.Option) (*matrix.Sparse, *matrix.Sparse, error) {
	var (
		g    errgroup.Group
		ms   [2]*matrix.Sparse
		errs [2]error
	)
	for i, p := range [2]string{pathA, pathB} {
		i, p := i, p
		g.Go(func() error {
			ms[i], errs[i] = codec.Load(p, decodeOpts...)
			return errs[i]
		})
	}
	if g.Wait() != nil {
		for _, err := range errs {
			if err != nil {
				return nil, nil, err
			}
		}
	}

	return ms[0], ms[1], nil
}
