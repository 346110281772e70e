package generate_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/varnames/generate"
	"github.com/katalvlaran/varnames/naming"
	"github.com/katalvlaran/varnames/polyring"
	"github.com/katalvlaran/varnames/reshape"
)

func TestGenerate_PolynomialRing(t *testing.T) {
	specs := []naming.Spec{
		naming.Vector("a", "b"),
		naming.Pattern("x#", naming.Range(1, 1), naming.Range(1, 2)),
		naming.Pattern("y#", naming.Range(1, 2)),
		naming.Name("z"),
	}

	res, err := generate.Generate(polyring.Base("QQ"), specs)
	require.NoError(t, err)
	require.Equal(t, "QQ[a, b, x11, x12, y1, y2, z]", res.Object.String())
	require.Equal(t, []string{"a", "b", "x11", "x12", "y1", "y2", "z"}, res.Names)
	require.Len(t, res.Gens, 4)

	require.Equal(t, []int{1, 2}, res.Gens[1].Dims())
	x12, err := res.Gens[1].At(0, 1)
	require.NoError(t, err)
	require.Equal(t, "x12", x12.String())

	z, err := res.Gens[3].Scalar()
	require.NoError(t, err)
	want, ok := res.Object.Var("z")
	require.True(t, ok)
	require.True(t, z.Equal(want))
}

func TestGenerate_WrongGeneratorCount(t *testing.T) {
	short := func(names []string) (string, []int, error) {
		return "obj", make([]int, len(names)-1), nil
	}
	core, logs := observer.New(zapcore.WarnLevel)

	_, err := generate.Generate(short, []naming.Spec{naming.Vector("a", "b")},
		generate.WithLogger(zap.New(core)))
	require.ErrorIs(t, err, reshape.ErrShapeMismatch)
	require.Equal(t, 1, logs.Len())
	require.Equal(t, int64(2), logs.All()[0].ContextMap()["names"])
}

func TestGenerate_BaseErrorIsWrapped(t *testing.T) {
	errBoom := errors.New("boom")
	failing := func([]string) (string, []int, error) { return "", nil, errBoom }

	_, err := generate.Generate(failing, []naming.Spec{naming.Name("z")})
	require.ErrorIs(t, err, errBoom)
	require.True(t, strings.HasPrefix(err.Error(), "generate: base:"))
}

func TestGenerate_DuplicateNamesRejectedByRing(t *testing.T) {
	specs := []naming.Spec{naming.Name("x1"), naming.Pattern("x#", naming.Range(1, 2))}

	_, err := generate.Generate(polyring.Base("ZZ"), specs)
	require.ErrorIs(t, err, polyring.ErrDuplicateVar)

	// the same collision is caught before the base runs with WithUniqueNames
	_, err = generate.Generate(polyring.Base("ZZ"), specs,
		generate.WithExpandOptions(naming.WithUniqueNames()))
	require.ErrorIs(t, err, naming.ErrDuplicateName)
}

func TestGenerate_SpecErrorSkipsBase(t *testing.T) {
	called := false
	base := func(names []string) (int, []int, error) {
		called = true
		return 0, make([]int, len(names)), nil
	}

	_, err := generate.Generate(base, []naming.Spec{naming.Pattern("x#@", naming.Range(1, 2))})
	require.ErrorIs(t, err, naming.ErrMixedPlaceholders)
	require.False(t, called)
}

func TestGenerate_NilBase(t *testing.T) {
	_, err := generate.Generate[int, int](nil, []naming.Spec{naming.Name("z")})
	require.ErrorIs(t, err, generate.ErrNilBase)
}

func TestGenerate_DebugLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := generate.Generate(polyring.Base("QQ"), []naming.Spec{naming.Count("t", 3)},
		generate.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.Equal(t, 2, logs.FilterMessage("expanded naming specs").Len()+logs.FilterMessage("reconstructed generator shapes").Len())
}

func TestWithLogger_PanicsOnNil(t *testing.T) {
	require.Panics(t, func() { generate.WithLogger(nil) })
}
