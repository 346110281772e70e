package naming_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/varnames/naming"
)

// assertPanics fails the test if fn does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

// TestLabelFns verifies each LabelFn on valid positions and checks that
// negative positions fail with ErrBadAxis.
func TestLabelFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fn      naming.LabelFn
		input   int
		want    string
		wantErr bool
	}{
		{"DecimalLabel_zero", naming.DecimalLabel, 0, "0", false},
		{"DecimalLabel_multi", naming.DecimalLabel, 123, "123", false},
		{"DecimalLabel_neg", naming.DecimalLabel, -1, "", true},

		{"OneBasedLabel_zero", naming.OneBasedLabel, 0, "1", false},
		{"OneBasedLabel_nine", naming.OneBasedLabel, 9, "10", false},

		{"LetterLabel_min", naming.LetterLabel, 0, "a", false},
		{"LetterLabel_z", naming.LetterLabel, 25, "z", false},
		{"LetterLabel_aa", naming.LetterLabel, 26, "aa", false},
		{"LetterLabel_zz", naming.LetterLabel, 701, "zz", false},
		{"LetterLabel_aaa", naming.LetterLabel, 702, "aaa", false},
		{"LetterLabel_neg", naming.LetterLabel, -1, "", true},

		{"UpperLetterLabel_zero", naming.UpperLetterLabel, 0, "A", false},
		{"UpperLetterLabel_AA", naming.UpperLetterLabel, 26, "AA", false},
		{"UpperLetterLabel_ZZ", naming.UpperLetterLabel, 701, "ZZ", false},

		{"GreekLabel_alpha", naming.GreekLabel, 0, "α", false},
		{"GreekLabel_omega", naming.GreekLabel, 23, "ω", false},
		{"GreekLabel_wrap", naming.GreekLabel, 24, "αα", false},

		{"Base36Label_low", naming.Base36Label, 10, "a", false},
		{"Base36Label_high", naming.Base36Label, 35, "z", false},
		{"Base36Label_wrap", naming.Base36Label, 36, "10", false},
		{"Base36Label_neg", naming.Base36Label, -5, "", true},

		{"HexLabel_zero", naming.HexLabel, 0, "0", false},
		{"HexLabel_ff", naming.HexLabel, 255, "ff", false},
		{"HexLabel_neg", naming.HexLabel, -2, "", true},

		{"SubscriptLabel_zero", naming.SubscriptLabel, 0, "₀", false},
		{"SubscriptLabel_multi", naming.SubscriptLabel, 12, "₁₂", false},
		{"SubscriptLabel_neg", naming.SubscriptLabel, -1, "", true},

		{"PrefixedLabel_zero", naming.PrefixedLabel("t", naming.DecimalLabel), 0, "t0", false},
		{"PrefixedLabel_letters", naming.PrefixedLabel("node", naming.LetterLabel), 27, "nodeab", false},
		{"PrefixedLabel_neg", naming.PrefixedLabel("t", naming.DecimalLabel), -1, "", true},

		{"DigitsLabel_binary", naming.DigitsLabel(2), 5, "101", false},
		{"AlphabetLabel_custom", naming.AlphabetLabel("xyz"), 4, "xy", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.fn(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, naming.ErrBadAxis)
				require.ErrorIs(t, err, naming.ErrSpec)
				require.Empty(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestAlphabetLabel_Distinct checks that bijective numeration never repeats
// a label, including across the change of width.
func TestAlphabetLabel_Distinct(t *testing.T) {
	fn := naming.AlphabetLabel("ab")
	seen := make(map[string]int)
	for i := 0; i < 200; i++ {
		l, err := fn(i)
		require.NoError(t, err)
		if j, dup := seen[l]; dup {
			t.Fatalf("positions %d and %d share label %q", j, i, l)
		}
		seen[l] = i
	}
}

func TestLabelConstructorsPanic(t *testing.T) {
	assertPanics(t, func() { naming.DigitsLabel(1) }, "DigitsLabel(1)")
	assertPanics(t, func() { naming.DigitsLabel(37) }, "DigitsLabel(37)")
	assertPanics(t, func() { naming.AlphabetLabel("") }, `AlphabetLabel("")`)
	assertPanics(t, func() { naming.AlphabetLabel("aa") }, `AlphabetLabel("aa")`)
	assertPanics(t, func() { naming.AlphabetLabel("a-") }, `AlphabetLabel("a-")`)
}

func TestOptionConstructorsPanic(t *testing.T) {
	assertPanics(t, func() { naming.WithMaxNames(0) }, "WithMaxNames(0)")
	assertPanics(t, func() { naming.WithMaxNames(-3) }, "WithMaxNames(-3)")
	assertPanics(t, func() { naming.WithSanitizer(nil) }, "WithSanitizer(nil)")
}
