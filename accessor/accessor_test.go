// SPDX-License-Identifier: MIT

package accessor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstride/accessor"
)

// sparse is an accessor-protocol array backed by a map, used to check
// that Resolve binds user-defined Get/Set methods.
type sparse struct {
	n    int
	vals map[int]string
}

func (s *sparse) Get(idx int) string    { return s.vals[idx] }
func (s *sparse) Set(idx int, v string) { s.vals[idx] = v }
func (s *sparse) Len() int              { return s.n }

// TestResolve_DirectSlices checks the kind and protocol flag for plain slices.
func TestResolve_DirectSlices(t *testing.T) {
	f64, err := accessor.Resolve[float64]([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.False(t, f64.AccessorProtocol)
	assert.Equal(t, accessor.Float64, f64.Kind)
	assert.Equal(t, 3, f64.Len())

	f64.Set(1, 20)
	assert.Equal(t, 20.0, f64.Get(1))
	s, ok := f64.Slice()
	require.True(t, ok)
	assert.Equal(t, []float64{1, 20, 3}, s)

	i16, err := accessor.Resolve[int16]([]int16{7})
	require.NoError(t, err)
	assert.Equal(t, "int16", i16.Kind.String())

	gen, err := accessor.Resolve[string]([]string{"a"})
	require.NoError(t, err)
	assert.Equal(t, accessor.Generic, gen.Kind)
}

// TestResolve_Uint8c verifies that clamped byte buffers keep their own kind.
func TestResolve_Uint8c(t *testing.T) {
	d, err := accessor.Resolve[uint8](accessor.Uint8c{1, 2})
	require.NoError(t, err)
	assert.Equal(t, accessor.Uint8Clamped, d.Kind)
	assert.False(t, d.AccessorProtocol)

	_, err = accessor.Resolve[float64](accessor.Uint8c{1})
	assert.ErrorIs(t, err, accessor.ErrElementType)
}

// TestResolve_AccessorProtocol verifies that Get/Set are bound to the
// native methods of accessor arrays.
func TestResolve_AccessorProtocol(t *testing.T) {
	z := accessor.Complex128ArrayOf(1+2i, 3-4i)
	d, err := accessor.Resolve[complex128](z)
	require.NoError(t, err)
	assert.True(t, d.AccessorProtocol)
	assert.Equal(t, accessor.Complex128, d.Kind)
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, 3-4i, d.Get(1))

	d.Set(0, 5+6i)
	assert.Equal(t, []float64{5, 6, 3, -4}, z.Buffer())

	_, ok := d.Slice()
	assert.False(t, ok)

	custom := &sparse{n: 4, vals: map[int]string{}}
	cd, err := accessor.Resolve[string](custom)
	require.NoError(t, err)
	assert.True(t, cd.AccessorProtocol)
	assert.Equal(t, accessor.Generic, cd.Kind)
	cd.Set(3, "x")
	assert.Equal(t, "x", custom.vals[3])
}

// TestResolve_Errors covers the two type-error flavors.
func TestResolve_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want error
	}{
		{"nil", nil, accessor.ErrNotArrayLike},
		{"scalar", 3.14, accessor.ErrNotArrayLike},
		{"map", map[int]float64{}, accessor.ErrNotArrayLike},
		{"wrong slice", []int32{1}, accessor.ErrElementType},
		{"wrong accessor", accessor.Complex64ArrayOf(1), accessor.ErrElementType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := accessor.Resolve[float64](tc.in)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, accessor.ErrType)
		})
	}
}

// TestMustResolve_Panics ensures MustResolve surfaces resolution failures.
func TestMustResolve_Panics(t *testing.T) {
	assert.Panics(t, func() { accessor.MustResolve[float64]("nope") })
	assert.NotPanics(t, func() { accessor.MustResolve[float64]([]float64{}) })
}

// TestLen covers slices, accessor arrays and rejection.
func TestLen(t *testing.T) {
	n, err := accessor.Len([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = accessor.Len(accessor.Complex64ArrayOf(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = accessor.Len(42)
	assert.ErrorIs(t, err, accessor.ErrNotArrayLike)
}
