// Package polyring is a minimal named multivariate polynomial ring used as a
// concrete base constructor for package generate. It models only what a
// naming round trip needs: a ring that owns an ordered list of variable
// names and hands out one degree-one generator per name.
package polyring

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/varnames/generate"
)

var (
	// ErrNoCoefficients indicates an empty coefficient domain name.
	ErrNoCoefficients = errors.New("polyring: coefficient domain is empty")
	// ErrNoVariables indicates a ring without variables.
	ErrNoVariables = errors.New("polyring: ring needs at least one variable")
	// ErrDuplicateVar indicates two variables with the same name.
	ErrDuplicateVar = errors.New("polyring: duplicate variable")
	// ErrRingMismatch indicates an operation on monomials of different rings.
	ErrRingMismatch = errors.New("polyring: monomials belong to different rings")
	// ErrNegativeExponent indicates Pow with k < 0.
	ErrNegativeExponent = errors.New("polyring: negative exponent")
)

// Ring is a polynomial ring over a named coefficient domain.
type Ring struct {
	coeff string
	vars  []string
	index map[string]int
}

// power is one variable raised to a positive exponent.
type power struct {
	v, e int
}

// Monomial is a power product of ring variables with coefficient one.
// Only variables with a positive exponent are stored, sorted by variable
// index, so a generator costs O(1) however many variables the ring has.
type Monomial struct {
	ring   *Ring
	powers []power
}

// New builds coeff[names...] and returns its generators in name order.
// Complexity: O(n) for n variables.
func New(coeff string, names []string) (*Ring, []Monomial, error) {
	if coeff == "" {
		return nil, nil, ErrNoCoefficients
	}
	if len(names) == 0 {
		return nil, nil, ErrNoVariables
	}

	r := &Ring{
		coeff: coeff,
		vars:  append([]string(nil), names...),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if j, dup := r.index[name]; dup {
			return nil, nil, fmt.Errorf("%q at %d and %d: %w", name, j, i, ErrDuplicateVar)
		}
		r.index[name] = i
	}

	gens := make([]Monomial, len(names))
	for i := range gens {
		gens[i] = r.gen(i)
	}

	return r, gens, nil
}

// Base adapts New to the generate.Base contract for a fixed coefficient domain.
func Base(coeff string) generate.Base[*Ring, Monomial] {
	return func(names []string) (*Ring, []Monomial, error) {
		return New(coeff, names)
	}
}

func (r *Ring) gen(i int) Monomial {
	return Monomial{ring: r, powers: []power{{v: i, e: 1}}}
}

// Coefficients returns the coefficient domain name.
func (r *Ring) Coefficients() string { return r.coeff }

// NumVars returns the number of variables.
func (r *Ring) NumVars() int { return len(r.vars) }

// Vars returns a copy of the variable names in order.
func (r *Ring) Vars() []string { return append([]string(nil), r.vars...) }

// Var returns the generator named name.
func (r *Ring) Var(name string) (Monomial, bool) {
	i, ok := r.index[name]
	if !ok {
		return Monomial{}, false
	}
	return r.gen(i), true
}

// One returns the constant monomial 1.
func (r *Ring) One() Monomial {
	return Monomial{ring: r}
}

// String renders the ring as "QQ[x, y]".
func (r *Ring) String() string {
	return r.coeff + "[" + strings.Join(r.vars, ", ") + "]"
}

// Ring returns the ring m belongs to.
func (m Monomial) Ring() *Ring { return m.ring }

// Exponent returns the exponent of the variable named name (0 when absent).
func (m Monomial) Exponent(name string) int {
	if m.ring == nil {
		return 0
	}
	i, ok := m.ring.index[name]
	if !ok {
		return 0
	}
	k := sort.Search(len(m.powers), func(j int) bool { return m.powers[j].v >= i })
	if k < len(m.powers) && m.powers[k].v == i {
		return m.powers[k].e
	}
	return 0
}

// Degree returns the total degree.
func (m Monomial) Degree() int {
	d := 0
	for _, p := range m.powers {
		d += p.e
	}
	return d
}

// Mul multiplies two monomials of the same ring.
// Complexity: O(a+b) for a and b stored variables.
func (m Monomial) Mul(o Monomial) (Monomial, error) {
	if m.ring == nil || m.ring != o.ring {
		return Monomial{}, ErrRingMismatch
	}
	out := make([]power, 0, len(m.powers)+len(o.powers))
	i, j := 0, 0
	for i < len(m.powers) && j < len(o.powers) {
		a, b := m.powers[i], o.powers[j]
		switch {
		case a.v < b.v:
			out = append(out, a)
			i++
		case a.v > b.v:
			out = append(out, b)
			j++
		default:
			out = append(out, power{v: a.v, e: a.e + b.e})
			i, j = i+1, j+1
		}
	}
	out = append(out, m.powers[i:]...)
	out = append(out, o.powers[j:]...)
	return Monomial{ring: m.ring, powers: out}, nil
}

// Pow raises m to the k-th power.
func (m Monomial) Pow(k int) (Monomial, error) {
	if k < 0 {
		return Monomial{}, fmt.Errorf("Pow(%d): %w", k, ErrNegativeExponent)
	}
	if k == 0 {
		return Monomial{ring: m.ring}, nil
	}
	out := make([]power, len(m.powers))
	for i, p := range m.powers {
		out[i] = power{v: p.v, e: p.e * k}
	}
	return Monomial{ring: m.ring, powers: out}, nil
}

// Equal reports whether m and o are the same power product of the same ring.
func (m Monomial) Equal(o Monomial) bool {
	if m.ring != o.ring || len(m.powers) != len(o.powers) {
		return false
	}
	for i := range m.powers {
		if m.powers[i] != o.powers[i] {
			return false
		}
	}
	return true
}

// String renders "x*y^2", or "1" for the constant monomial.
func (m Monomial) String() string {
	if m.ring == nil {
		return "<nil>"
	}
	if len(m.powers) == 0 {
		return "1"
	}
	parts := make([]string, len(m.powers))
	for i, p := range m.powers {
		parts[i] = m.ring.vars[p.v]
		if p.e > 1 {
			parts[i] += "^" + strconv.Itoa(p.e)
		}
	}
	return strings.Join(parts, "*")
}
