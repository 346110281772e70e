// SPDX-License-Identifier: MIT
// Package: varnames/specfile
//
// specfile.go — YAML documents holding naming specs.
//
// Contract:
//   • Unknown keys are errors at every level, so typos surface early.
//   • Each entry of `specs` is either a textual spec (naming.Parse) or a
//     mapping with exactly one form: single | names [+dims] | pattern+axes |
//     prefix+count.
//   • Every returned error wraps ErrDocument; naming errors stay reachable
//     through errors.Is as well.

package specfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/varnames/naming"
)

// ErrDocument is the root sentinel for unreadable or malformed spec documents.
var ErrDocument = errors.New("specfile: invalid document")

// Document is one YAML spec file.
type Document struct {
	// Path is set by Load/LoadAll; empty for Parse.
	Path string `yaml:"-"`
	// Ring names the coefficient domain for `varnames ring` (optional).
	Ring string `yaml:"ring,omitempty"`
	// MaxNames maps to naming.WithMaxNames when > 0.
	MaxNames int `yaml:"max_names,omitempty"`
	// Unique maps to naming.WithUniqueNames.
	Unique bool `yaml:"unique,omitempty"`
	// Specs are the naming specs in document order.
	Specs []Entry `yaml:"specs"`
}

// Entry wraps one decoded naming.Spec.
type Entry struct {
	Spec naming.Spec
}

// Parse decodes and validates a document.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrDocument)
		}
		return nil, wrapDoc(err)
	}
	if doc.MaxNames < 0 {
		return nil, fmt.Errorf("%w: max_names must be ≥ 0, got %d", ErrDocument, doc.MaxNames)
	}
	if len(doc.Specs) == 0 {
		return nil, fmt.Errorf("%w: no specs", ErrDocument)
	}
	if err := naming.ValidateAll(doc.NamingSpecs()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocument, err)
	}

	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocument, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path

	return doc, nil
}

// NamingSpecs returns the specs in document order.
func (d *Document) NamingSpecs() []naming.Spec {
	out := make([]naming.Spec, len(d.Specs))
	for i, e := range d.Specs {
		out[i] = e.Spec
	}
	return out
}

// ExpandOptions translates the document settings into naming options.
func (d *Document) ExpandOptions() []naming.Option {
	var opts []naming.Option
	if d.MaxNames > 0 {
		opts = append(opts, naming.WithMaxNames(d.MaxNames))
	}
	if d.Unique {
		opts = append(opts, naming.WithUniqueNames())
	}
	return opts
}

// rawSpec is the mapping form of an entry.
type rawSpec struct {
	Single  string      `yaml:"single"`
	Names   yaml.Node   `yaml:"names"`
	Dims    []int       `yaml:"dims"`
	Pattern string      `yaml:"pattern"`
	Axes    []yaml.Node `yaml:"axes"`
	Prefix  string      `yaml:"prefix"`
	Count   int         `yaml:"count"`
}

var specKeys = []string{"single", "names", "dims", "pattern", "axes", "prefix", "count"}

// UnmarshalYAML decodes a textual or mapping entry.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		s, err := naming.Parse(node.Value)
		if err != nil {
			return nodeErr(node, err)
		}
		e.Spec = s
		return nil
	case yaml.MappingNode:
		if err := checkKeys(node, specKeys); err != nil {
			return err
		}
		var raw rawSpec
		if err := node.Decode(&raw); err != nil {
			return err
		}
		s, err := raw.spec(node)
		if err != nil {
			return err
		}
		e.Spec = s
		return nil
	default:
		return nodeErr(node, fmt.Errorf("spec must be a string or a mapping"))
	}
}

// spec picks the single form present in raw.
func (r rawSpec) spec(node *yaml.Node) (naming.Spec, error) {
	forms := 0
	for _, present := range []bool{r.Single != "", r.Names.Kind != 0, r.Pattern != "", r.Prefix != ""} {
		if present {
			forms++
		}
	}
	if forms != 1 {
		return nil, nodeErr(node, fmt.Errorf("exactly one of single, names, pattern, prefix is required"))
	}

	switch {
	case r.Single != "":
		return naming.Name(r.Single), nil
	case r.Names.Kind != 0:
		return explicitSpec(&r.Names, r.Dims)
	case r.Pattern != "":
		axes := make([]naming.Axis, len(r.Axes))
		for i := range r.Axes {
			a, err := decodeAxis(&r.Axes[i])
			if err != nil {
				return nil, err
			}
			axes[i] = a
		}
		return naming.Pattern(r.Pattern, axes...), nil
	default:
		if r.Count < 1 {
			return nil, nodeErr(node, fmt.Errorf("prefix needs count ≥ 1, got %d", r.Count))
		}
		return naming.Count(r.Prefix, r.Count), nil
	}
}

// explicitSpec decodes a flat list (optionally reshaped by dims) or a list of rows.
func explicitSpec(node *yaml.Node, dims []int) (naming.Spec, error) {
	if node.Kind != yaml.SequenceNode || len(node.Content) == 0 {
		return nil, nodeErr(node, fmt.Errorf("names must be a non-empty list"))
	}
	if node.Content[0].Kind == yaml.SequenceNode {
		if len(dims) > 0 {
			return nil, nodeErr(node, fmt.Errorf("dims only apply to a flat names list"))
		}
		var rows [][]string
		if err := node.Decode(&rows); err != nil {
			return nil, err
		}
		return naming.Matrix(rows), nil
	}
	var names []string
	if err := node.Decode(&names); err != nil {
		return nil, err
	}
	return naming.NewExplicit(names, dims...), nil
}

// rawAxis is the mapping form of an axis.
type rawAxis struct {
	Range  []int    `yaml:"range"`
	Ints   []int    `yaml:"ints"`
	Chars  string   `yaml:"chars"`
	Tokens []string `yaml:"tokens"`
	Labels *struct {
		N      int    `yaml:"n"`
		Scheme string `yaml:"scheme"`
		Prefix string `yaml:"prefix"`
	} `yaml:"labels"`
}

var axisKeys = []string{"range", "ints", "chars", "tokens", "labels"}

// decodeAxis reads a textual axis ("1:3") or an axis mapping.
func decodeAxis(node *yaml.Node) (naming.Axis, error) {
	if node.Kind == yaml.ScalarNode {
		a, err := naming.ParseAxis(node.Value)
		if err != nil {
			return nil, nodeErr(node, err)
		}
		return a, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, nodeErr(node, fmt.Errorf("axis must be a string or a mapping"))
	}
	if len(node.Content) != 2 {
		return nil, nodeErr(node, fmt.Errorf("axis mapping needs exactly one of %s", strings.Join(axisKeys, ", ")))
	}
	if err := checkKeys(node, axisKeys); err != nil {
		return nil, err
	}
	var raw rawAxis
	if err := node.Decode(&raw); err != nil {
		return nil, err
	}

	switch {
	case raw.Range != nil:
		switch len(raw.Range) {
		case 2:
			return naming.Range(raw.Range[0], raw.Range[1]), nil
		case 3:
			return naming.StepRange(raw.Range[0], raw.Range[1], raw.Range[2]), nil
		default:
			return nil, nodeErr(node, fmt.Errorf("range needs [start, stop] or [start, step, stop]"))
		}
	case raw.Ints != nil:
		return naming.Ints(raw.Ints...), nil
	case raw.Chars != "":
		return naming.Chars([]rune(raw.Chars)...), nil
	case raw.Tokens != nil:
		return naming.Tokens(raw.Tokens...), nil
	case raw.Labels != nil:
		fn, err := labelScheme(raw.Labels.Scheme, raw.Labels.Prefix)
		if err != nil {
			return nil, nodeErr(node, err)
		}
		return naming.Labeled(raw.Labels.N, fn), nil
	default:
		return nil, nodeErr(node, fmt.Errorf("empty axis"))
	}
}

// labelSchemes maps scheme names to label functions.
// "excel" and "alphanumeric" are kept as aliases of "upper" and "base36".
var labelSchemes = map[string]naming.LabelFn{
	"decimal":      naming.DecimalLabel,
	"one_based":    naming.OneBasedLabel,
	"hex":          naming.HexLabel,
	"base36":       naming.Base36Label,
	"alphanumeric": naming.Base36Label,
	"letter":       naming.LetterLabel,
	"upper":        naming.UpperLetterLabel,
	"excel":        naming.UpperLetterLabel,
	"greek":        naming.GreekLabel,
	"subscript":    naming.SubscriptLabel,
}

func labelScheme(name, prefix string) (naming.LabelFn, error) {
	if name == "" || name == "prefixed" {
		return naming.PrefixedLabel(prefix, naming.DecimalLabel), nil
	}
	fn, ok := labelSchemes[name]
	if !ok {
		known := make([]string, 0, len(labelSchemes)+1)
		for k := range labelSchemes {
			known = append(known, k)
		}
		known = append(known, "prefixed")
		sort.Strings(known)
		return nil, fmt.Errorf("unknown label scheme %q (known: %s)", name, strings.Join(known, ", "))
	}
	if prefix != "" {
		fn = naming.PrefixedLabel(prefix, fn)
	}
	return fn, nil
}

// checkKeys rejects mapping keys outside allowed.
func checkKeys(node *yaml.Node, allowed []string) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		k := node.Content[i]
		ok := false
		for _, a := range allowed {
			if k.Value == a {
				ok = true
				break
			}
		}
		if !ok {
			return nodeErr(k, fmt.Errorf("unknown key %q", k.Value))
		}
	}
	return nil
}

// nodeErr attaches the YAML position to err.
func nodeErr(node *yaml.Node, err error) error {
	return fmt.Errorf("line %d, column %d: %w", node.Line, node.Column, err)
}

// wrapDoc marks decoder errors as document errors, keeping naming sentinels reachable.
func wrapDoc(err error) error {
	if errors.Is(err, ErrDocument) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrDocument, err)
}
