package shape_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/varnames/shape"
)

func TestNew_ZeroFilled(t *testing.T) {
	a, err := shape.New[int](2, 3)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, a.Dims())
	require.Equal(t, 2, a.Rank())
	require.Equal(t, 6, a.Len())
	require.False(t, a.IsScalar())
	require.Equal(t, make([]int, 6), a.Data())

	s, err := shape.New[string]()
	require.NoError(t, err)
	require.True(t, s.IsScalar())
	require.Equal(t, 1, s.Len())
}

func TestNew_BadDims(t *testing.T) {
	for _, dims := range [][]int{{0}, {2, 0}, {-1, 3}} {
		_, err := shape.New[int](dims...)
		require.ErrorIs(t, err, shape.ErrBadShape, "dims %v", dims)
	}
}

func TestNew_VolumeOverflow(t *testing.T) {
	dims := []int{1 << 16, 1 << 16, 1 << 16, 1 << 16}
	_, err := shape.New[int](dims...)
	require.ErrorIs(t, err, shape.ErrBadShape)

	_, err = shape.FromSlice([]int{}, dims...)
	require.ErrorIs(t, err, shape.ErrBadShape)
}

func TestFromSlice_RowMajor(t *testing.T) {
	a, err := shape.FromSlice([]string{"a", "b", "c", "d", "e", "f"}, 2, 3)
	require.NoError(t, err)

	tests := []struct {
		i, j int
		want string
	}{
		{0, 0, "a"}, {0, 2, "c"}, {1, 0, "d"}, {1, 2, "f"},
	}
	for _, tc := range tests {
		got, err := a.At(tc.i, tc.j)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}

	rows, err := a.Rows()
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a", "b", "c"}, {"d", "e", "f"}}, rows)
}

func TestFromSlice_CopiesInput(t *testing.T) {
	data := []int{1, 2}
	a, err := shape.FromSlice(data, 2)
	require.NoError(t, err)
	data[0] = 99

	v, err := a.At(0)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	out := a.Data()
	out[1] = 42
	v, _ = a.At(1)
	require.Equal(t, 2, v)
}

func TestFromSlice_LengthMismatch(t *testing.T) {
	_, err := shape.FromSlice([]int{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, shape.ErrBadShape)
}

func TestAtSet_Errors(t *testing.T) {
	a, err := shape.New[int](2, 2)
	require.NoError(t, err)

	_, err = a.At(0)
	require.ErrorIs(t, err, shape.ErrRank)
	_, err = a.At(0, 2)
	require.ErrorIs(t, err, shape.ErrOutOfRange)
	_, err = a.At(-1, 0)
	require.ErrorIs(t, err, shape.ErrOutOfRange)
	require.ErrorIs(t, a.Set(1, 0, 0, 0), shape.ErrRank)
	require.ErrorIs(t, a.Set(1, 2, 0), shape.ErrOutOfRange)

	require.NoError(t, a.Set(7, 1, 0))
	v, err := a.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestScalar(t *testing.T) {
	s := shape.NewScalar("z")
	v, err := s.Scalar()
	require.NoError(t, err)
	require.Equal(t, "z", v)
	require.Empty(t, s.Dims())
	require.Equal(t, 0, s.Rank())

	v, err = s.At()
	require.NoError(t, err)
	require.Equal(t, "z", v)

	vec, err := shape.FromSlice([]string{"a"}, 1)
	require.NoError(t, err)
	_, err = vec.Scalar()
	require.ErrorIs(t, err, shape.ErrNotScalar)

	_, err = vec.Rows()
	require.ErrorIs(t, err, shape.ErrRank)
}

func TestEach_RowMajorIndices(t *testing.T) {
	a, err := shape.FromSlice([]int{0, 1, 2, 3, 4, 5}, 3, 2)
	require.NoError(t, err)

	var seen [][]int
	var vals []int
	a.Each(func(idx []int, v int) {
		seen = append(seen, append([]int{}, idx...))
		vals = append(vals, v)
	})
	require.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}, seen)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, vals)
}

func TestClone_Independent(t *testing.T) {
	a, err := shape.FromSlice([]int{1, 2, 3}, 3)
	require.NoError(t, err)
	b := a.Clone()
	require.NoError(t, b.Set(9, 0))

	v, _ := a.At(0)
	require.Equal(t, 1, v)
	require.Equal(t, a.Dims(), b.Dims())
}

func TestString(t *testing.T) {
	vec, _ := shape.FromSlice([]string{"a", "b"}, 2)
	mat, _ := shape.FromSlice([]string{"a", "b", "c", "d"}, 2, 2)
	cube, _ := shape.FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8}, 2, 2, 2)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"scalar", shape.NewScalar("z").String(), "z"},
		{"vector", vec.String(), "[a, b]"},
		{"matrix", mat.String(), "[[a, b], [c, d]]"},
		{"rank3", cube.String(), "[[[1, 2], [3, 4]], [[5, 6], [7, 8]]]"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, tc.got, tc.name)
	}
}
