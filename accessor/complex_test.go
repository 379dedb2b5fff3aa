// SPDX-License-Identifier: MIT

package accessor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstride/accessor"
)

func TestComplexArrays_ShareBuffer(t *testing.T) {
	buf := []float32{-1, -2, -3, -4, -5, -6}
	z, err := accessor.NewComplex64Array(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, z.Len())
	assert.Equal(t, complex64(-3-4i), z.Get(1))

	z.Set(2, 9+10i)
	assert.Equal(t, []float32{-1, -2, -3, -4, 9, 10}, buf)

	_, err = accessor.NewComplex64Array([]float32{1})
	assert.ErrorIs(t, err, accessor.ErrOddLength)
	assert.ErrorIs(t, err, accessor.ErrRange)

	_, err = accessor.NewComplex128Array([]float64{1, 2, 3})
	assert.ErrorIs(t, err, accessor.ErrOddLength)
}

func TestClampUint8(t *testing.T) {
	cases := map[float64]uint8{
		-5:          0,
		0:           0,
		0.5:         0,
		1.5:         2,
		2.5:         2,
		254.6:       255,
		300:         255,
		math.NaN():  0,
		math.Inf(1): 255,
	}
	for in, want := range cases {
		assert.Equal(t, want, accessor.ClampUint8(in), "ClampUint8(%v)", in)
	}
}
