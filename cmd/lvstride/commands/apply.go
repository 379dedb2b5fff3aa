// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvstride/strided"
)

// ops maps --op names to element functions.
var ops = map[string]func(float64) float64{
	"abs":    math.Abs,
	"neg":    func(v float64) float64 { return -v },
	"square": func(v float64) float64 { return v * v },
}

type applyCommand struct {
	*app
	x      []float64
	mask   []int
	stride int
}

func newApplyCommand(a *app) *cobra.Command {
	ac := &applyCommand{app: a}
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Run a (masked) unary kernel over a strided vector",
		Long: `Apply --op to every stride-th element of --x and print the result.

With --mask, elements whose mask value is non-zero are skipped and keep 0
in the output. A negative --stride walks --x backwards.`,
		Args: cobra.NoArgs,
		RunE: ac.run,
	}
	cmd.Flags().String("op", "abs", "Element function: abs, neg, square")
	cmd.Flags().Float64SliceVar(&ac.x, "x", nil, "Input values (comma separated)")
	cmd.Flags().IntSliceVar(&ac.mask, "mask", nil, "Mask values, non-zero skips (comma separated)")
	cmd.Flags().IntVar(&ac.stride, "stride", 1, "Input stride (negative walks backwards)")
	return cmd
}

func (ac *applyCommand) run(_ *cobra.Command, _ []string) error {
	op := ac.cfg.Apply.Op
	fn, ok := ops[op]
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownOp, op)
	}
	if ac.stride == 0 {
		return errZeroStride
	}

	step := ac.stride
	if step < 0 {
		step = -step
	}
	n := (len(ac.x) + step - 1) / step

	view, err := strided.NewView[float64](ac.x, n, ac.stride, strided.StrideToOffset(n, ac.stride))
	if err != nil {
		return err
	}
	y := make([]float64, n)

	var mask []uint8
	if ac.mask != nil {
		if len(ac.mask) != n {
			return fmt.Errorf("%w: got %d, want %d", errMaskLength, len(ac.mask), n)
		}
		mask = make([]uint8, n)
		for i, v := range ac.mask {
			if v < 0 || v > math.MaxUint8 {
				return fmt.Errorf("%w: mask[%d]=%d", errMaskValue, i, v)
			}
			mask[i] = uint8(v)
		}
	}

	kernel := "unary"
	if mask == nil {
		err = strided.Unary([]any{ac.x, y}, []int{n}, []int{ac.stride, 1}, fn)
	} else {
		kernel = "masked_unary"
		err = strided.MaskedUnary([]any{ac.x, mask, y}, []int{n}, []int{ac.stride, 1, 1}, fn)
	}
	if err != nil {
		return err
	}
	ac.metrics.KernelRun(kernel, n)
	ac.log.Debug("kernel done", "kernel", kernel, "op", op, "n", n, "stride", ac.stride)

	ac.render.Apply(op, view.ToSlice(), mask, y)
	return nil
}
