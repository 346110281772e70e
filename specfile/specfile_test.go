package specfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/varnames/naming"
	"github.com/katalvlaran/varnames/specfile"
)

const fullDoc = `
ring: ZZ
max_names: 1000
unique: true
specs:
  - z
  - "x# => 1:2, 1:3"
  - single: t
  - names: [[a, b], [c, d]]
  - names: [p, q, r, s, u, v]
    dims: [2, 3]
  - prefix: w
    count: 3
  - pattern: "y@"
    axes:
      - range: [0, 2, 4]
  - pattern: "c#_#"
    axes:
      - chars: ab
      - labels: {n: 2, scheme: excel}
  - pattern: k
    axes:
      - tokens: [left, right]
  - pattern: "e#"
    axes:
      - "'a':'b'"
  - pattern: "n#"
    axes:
      - ints: [-1, 3]
  - pattern: "g@"
    axes:
      - labels: {n: 2, prefix: s}
`

func TestParse_FullDocument(t *testing.T) {
	doc, err := specfile.Parse([]byte(fullDoc))
	require.NoError(t, err)
	require.Equal(t, "ZZ", doc.Ring)
	require.Equal(t, 1000, doc.MaxNames)
	require.True(t, doc.Unique)
	require.Empty(t, doc.Path)

	specs := doc.NamingSpecs()
	require.Len(t, specs, 12)
	require.Equal(t, naming.KindSingle, specs[0].Kind())
	require.Equal(t, []int{2, 2}, specs[3].Dims())
	require.Equal(t, []int{2, 3}, specs[4].Dims())

	names, err := naming.Expand(specs, doc.ExpandOptions()...)
	require.NoError(t, err)
	require.Equal(t, []string{
		"z",
		"x11", "x12", "x13", "x21", "x22", "x23",
		"t",
		"a", "b", "c", "d",
		"p", "q", "r", "s", "u", "v",
		"w1", "w2", "w3",
		"y0", "y2", "y4",
		"ca_A", "ca_B", "cb_A", "cb_B",
		"k[left]", "k[right]",
		"ea", "eb",
		"nm1", "n3",
		"gs0", "gs1",
	}, names)
	require.Len(t, doc.ExpandOptions(), 2)
}

func TestParse_LabelSchemes(t *testing.T) {
	tests := []struct {
		labels string
		want   []string
	}{
		{"{n: 3, scheme: one_based}", []string{"v1", "v2", "v3"}},
		{"{n: 2, scheme: greek}", []string{"vα", "vβ"}},
		{"{n: 2, scheme: subscript}", []string{"v₀", "v₁"}},
		{"{n: 28, scheme: letter}", nil},
		{"{n: 2, scheme: upper, prefix: c}", []string{"vcA", "vcB"}},
		{"{n: 2, scheme: prefixed, prefix: k}", []string{"vk0", "vk1"}},
	}
	for _, tc := range tests {
		doc, err := specfile.Parse([]byte("specs:\n  - pattern: \"v#\"\n    axes:\n      - labels: " + tc.labels + "\n"))
		require.NoError(t, err, tc.labels)
		names, err := naming.Expand(doc.NamingSpecs())
		require.NoError(t, err, tc.labels)
		if tc.want == nil {
			require.Len(t, names, 28)
			require.Equal(t, []string{"vz", "vaa", "vab"}, names[25:])
			continue
		}
		require.Equal(t, tc.want, names, tc.labels)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		also error
	}{
		{"empty", "", nil},
		{"no_specs", "specs: []\n", nil},
		{"negative_max_names", "max_names: -1\nspecs: [z]\n", nil},
		{"unknown_top_key", "bogus: 1\nspecs: [z]\n", nil},
		{"two_forms", "specs:\n  - single: a\n    pattern: b\n", nil},
		{"no_form", "specs:\n  - dims: [1]\n", nil},
		{"unknown_spec_key", "specs:\n  - singel: a\n", nil},
		{"bad_range", "specs:\n  - pattern: \"x#\"\n    axes:\n      - range: [1, 2, 3, 4]\n", nil},
		{"two_axis_forms", "specs:\n  - pattern: \"x#\"\n    axes:\n      - {range: [1, 2], ints: [1]}\n", nil},
		{"unknown_axis_key", "specs:\n  - pattern: \"x#\"\n    axes:\n      - steps: [1, 2]\n", nil},
		{"unknown_scheme", "specs:\n  - pattern: \"x#\"\n    axes:\n      - labels: {n: 2, scheme: roman}\n", nil},
		{"prefix_without_count", "specs:\n  - prefix: u\n", nil},
		{"empty_names", "specs:\n  - names: []\n", nil},
		{"rows_with_dims", "specs:\n  - names: [[a], [b]]\n    dims: [2]\n", nil},
		{"sequence_entry", "specs:\n  - [a, b]\n", nil},
		{"text_syntax", "specs:\n  - \"[a, b\"\n", naming.ErrSyntax},
		{"text_axis_syntax", "specs:\n  - pattern: \"x#\"\n    axes:\n      - \"1:\"\n", naming.ErrSyntax},
		{"invalid_spec", "specs:\n  - \"x#@ => 1:2\"\n", naming.ErrMixedPlaceholders},
		{"explicit_shape", "specs:\n  - names: [a, b, c]\n    dims: [2, 2]\n", naming.ErrBadShape},
		{"empty_labels", "specs:\n  - pattern: \"x#\"\n    axes:\n      - labels: {n: 0}\n", naming.ErrEmptyAxis},
		{"no_axes", "specs:\n  - pattern: \"x#\"\n", naming.ErrNoAxes},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			doc, err := specfile.Parse([]byte(tc.doc))
			require.Nil(t, doc)
			require.ErrorIs(t, err, specfile.ErrDocument)
			if tc.also != nil {
				require.ErrorIs(t, err, tc.also)
			}
		})
	}
}

func writeDoc(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	p := writeDoc(t, dir, "one.yaml", "specs: [\"y# => 2\"]\n")

	doc, err := specfile.Load(p)
	require.NoError(t, err)
	require.Equal(t, p, doc.Path)

	_, err = specfile.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, specfile.ErrDocument)
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := writeDoc(t, dir, "bad.yaml", "specs: []\n")
	_, err = specfile.Load(bad)
	require.ErrorIs(t, err, specfile.ErrDocument)
	require.Contains(t, err.Error(), bad)
}

func TestLoadAll_KeepsPathOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i, body := range []string{
		"specs: [a]\n",
		"specs: [\"b# => 2\"]\n",
		"specs: [\"[c, d]\"]\n",
		"ring: GF7\nspecs: [e]\n",
	} {
		paths = append(paths, writeDoc(t, dir, string(rune('0'+i))+".yaml", body))
	}

	docs, err := specfile.LoadAll(context.Background(), paths...)
	require.NoError(t, err)
	require.Len(t, docs, len(paths))

	var specs []naming.Spec
	for i, d := range docs {
		require.Equal(t, paths[i], d.Path)
		specs = append(specs, d.NamingSpecs()...)
	}
	names, err := naming.Expand(specs)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b1", "b2", "c", "d", "e"}, names)
	require.Equal(t, "GF7", docs[3].Ring)
}

func TestLoadAll_FirstErrorWins(t *testing.T) {
	dir := t.TempDir()
	good := writeDoc(t, dir, "good.yaml", "specs: [a]\n")

	docs, err := specfile.LoadAll(context.Background(), good, filepath.Join(dir, "nope.yaml"))
	require.Nil(t, docs)
	require.ErrorIs(t, err, specfile.ErrDocument)
}

func TestLoadAll_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	good := writeDoc(t, dir, "good.yaml", "specs: [a]\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := specfile.LoadAll(ctx, good)
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoadAll_NoPaths(t *testing.T) {
	docs, err := specfile.LoadAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, docs)
}
