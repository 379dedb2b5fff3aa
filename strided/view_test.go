// SPDX-License-Identifier: MIT

package strided_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstride/accessor"
	"github.com/katalvlaran/lvstride/strided"
)

func TestNewView_Bounds(t *testing.T) {
	buf := []float64{0, 1, 2, 3, 4, 5}

	v, err := strided.NewView[float64](buf, 3, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 5}, v.ToSlice())
	lo, hi := v.Bounds()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 5, hi)
	assert.Equal(t, accessor.Float64, v.Kind())

	r := v.Reverse()
	assert.Equal(t, []float64{5, 3, 1}, r.ToSlice())
	assert.Equal(t, -2, r.Stride())
	assert.Equal(t, 5, r.Offset())

	_, err = strided.NewView[float64](buf, 4, 2, 0)
	assert.ErrorIs(t, err, strided.ErrOutOfBounds)
	assert.ErrorIs(t, err, accessor.ErrRange)

	_, err = strided.NewView[float64](buf, 2, -1, 0)
	assert.ErrorIs(t, err, strided.ErrOutOfBounds)

	_, err = strided.NewView[float64](buf, -1, 1, 0)
	assert.ErrorIs(t, err, strided.ErrNegativeLength)

	_, err = strided.NewView[float64]("buf", 1, 1, 0)
	assert.ErrorIs(t, err, accessor.ErrNotArrayLike)

	empty, err := strided.NewView[float64](buf, 0, 5, 100)
	require.NoError(t, err)
	lo, hi = empty.Bounds()
	assert.Equal(t, -1, lo)
	assert.Equal(t, -1, hi)
	assert.Equal(t, 0, empty.Reverse().Len())
}

func TestView_AtSet(t *testing.T) {
	buf := []int16{1, 2, 3, 4}
	v, err := strided.NewView[int16](buf, 2, -2, 3)
	require.NoError(t, err)

	got, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, int16(2), got)

	require.NoError(t, v.Set(0, 40))
	assert.Equal(t, []int16{1, 2, 3, 40}, buf)

	_, err = v.At(2)
	assert.ErrorIs(t, err, strided.ErrOutOfBounds)
	assert.ErrorIs(t, v.Set(-1, 0), strided.ErrOutOfBounds)
}

func TestViewOf_Complex(t *testing.T) {
	z := accessor.Complex64ArrayOf(1, 2, 3)
	v, err := strided.ViewOf[complex64](z)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []complex64{3, 2, 1}, v.Reverse().ToSlice())
	assert.Equal(t, z, v.Data())

	_, err = strided.ViewOf[complex64](12)
	assert.ErrorIs(t, err, accessor.ErrNotArrayLike)
}

func TestMaskedUnaryViews(t *testing.T) {
	x := []float64{-1, -2, -3, -4, -5}
	m := []uint8{0, 0, 1, 0, 0}
	y := make([]float64, 5)

	xv, _ := strided.ViewOf[float64](x)
	mv, _ := strided.ViewOf[uint8](m)
	yv, _ := strided.NewView[float64](y, 5, -1, 4)

	require.NoError(t, strided.MaskedUnaryViews(xv, mv, yv, math.Abs))
	assert.Equal(t, []float64{5, 4, 0, 2, 1}, y)

	short, _ := strided.NewView[uint8](m, 2, 1, 0)
	err := strided.MaskedUnaryViews(xv, short, yv, math.Abs)
	assert.ErrorIs(t, err, strided.ErrLengthMismatch)
}

func TestUnaryAndBinaryViews(t *testing.T) {
	x := []float64{1, 2, 3}
	y := make([]float64, 3)
	xv, _ := strided.ViewOf[float64](x)
	yv, _ := strided.ViewOf[float64](y)

	require.NoError(t, strided.UnaryViews(xv, yv, func(v float64) float64 { return -v }))
	assert.Equal(t, []float64{-1, -2, -3}, y)

	require.NoError(t, strided.BinaryViews(xv, yv, yv, func(a, b float64) float64 { return a + b }))
	assert.Equal(t, []float64{0, 0, 0}, y)

	one, _ := strided.NewView[float64](x, 1, 1, 0)
	assert.ErrorIs(t, strided.UnaryViews(xv, one, math.Abs), strided.ErrLengthMismatch)
	assert.ErrorIs(t, strided.BinaryViews(xv, one, yv, math.Max), strided.ErrLengthMismatch)
}

func TestOverlaps(t *testing.T) {
	buf := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	even, _ := strided.NewView[float64](buf, 4, 2, 0)
	odd, _ := strided.NewView[float64](buf, 4, 2, 1)
	tail, _ := strided.NewView[float64](buf, 2, -2, 6)

	assert.False(t, strided.Overlaps(even, odd))
	assert.True(t, strided.Overlaps(even, tail))
	assert.True(t, strided.Overlaps(even, even.Reverse()))

	other := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	otherEven, _ := strided.NewView[float64](other, 4, 2, 0)
	assert.False(t, strided.Overlaps(even, otherEven))

	z := accessor.Complex128ArrayOf(1, 2, 3)
	za, _ := strided.NewView[complex128](z, 2, 1, 0)
	zb, _ := strided.NewView[complex128](z, 2, 1, 1)
	assert.True(t, strided.Overlaps(za, zb))

	zc, _ := strided.NewView[complex128](accessor.Complex128ArrayOf(1, 2, 3), 2, 1, 0)
	assert.False(t, strided.Overlaps(za, zc))
}
