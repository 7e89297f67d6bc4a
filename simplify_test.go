package symexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kettleby/symexpr"
)

func simplified(t *testing.T, src string) *symexpr.Expr {
	t.Helper()
	a, err := symexpr.ParseString(src)
	require.NoError(t, err)
	a.Simplify()
	return a
}

func TestSimplifyConstantFolding(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"add", "23+", "5"},
		{"chain", "25*7*", "70"},
		{"pow", "23^", "8"},
		{"negative", "05-", "-5"},
		{"fractional", "12/", "0.5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, simplified(t, c.src).Infix())
		})
	}
}

func TestSimplifyGuardsInvalidFolds(t *testing.T) {
	// Folds that would divide by zero, leave ln's domain, or leave the
	// float64 domain stay symbolic.
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"div-zero", "10/", "(1 / 0)"},
		{"pow-nan", "01-12/^", "(-1 ^ 0.5)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, simplified(t, c.src).Infix())
		})
	}

	t.Run("ln-domain", func(t *testing.T) {
		neg, err := symexpr.ParseString("01-")
		require.NoError(t, err)
		a, err := symexpr.Apply("ln", neg)
		require.NoError(t, err)
		a.Simplify()
		assert.Equal(t, "ln((0 - 1))", a.Infix())
	})
}

func TestSimplifyLikeTerms(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"triple", "aa+a+", "(a * 3)"},
		{"coefficients", "a4*a5*+", "(a * 9)"},
		{"mixed-constant", "a2+a+", "((a * 2) + 2)"},
		{"cancel-to-zero", "a2*a02-*+", "0"},
		{"compound-base", "ab*ab*+", "((a * b) * 2)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, simplified(t, c.src).Infix())
		})
	}
}

func TestSimplifyLikeFactors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"cube", "aa*a*", "(a ^ 3)"},
		{"pair", "abab***", "((a ^ 2) * (b ^ 2))"},
		{"scalars", "2a*3*", "(6 * a)"},
		{"zero-collapses", "a0*b*", "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, simplified(t, c.src).Infix())
		})
	}
}

func TestSimplifyIdentities(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"add-zero", "a0+", "a"},
		{"zero-add", "0a+", "a"},
		{"sub-zero", "a0-", "a"},
		{"mul-one", "a1*", "a"},
		{"one-mul", "1a*", "a"},
		{"mul-zero", "0a*", "0"},
		{"div-one", "a1/", "a"},
		{"pow-zero", "a0^", "1"},
		{"pow-one", "a1^", "a"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, simplified(t, c.src).Infix())
		})
	}
}

func TestSimplifyRegeneratesCaches(t *testing.T) {
	a := simplified(t, "aa+")
	assert.Equal(t, "a2*", a.Postfix())
	assert.Equal(t, "(a * 2)", a.Infix())
}

func TestSimplifyIdempotent(t *testing.T) {
	srcs := []string{
		"aa+a+", "a4*a5*+", "aa*a*", "ab+c*", "a2^", "23+5*",
		"abab***", "a2*a02-*+", "ab*ab*+", "xy/z-",
	}
	for _, src := range srcs {
		a, err := symexpr.ParseString(src)
		require.NoError(t, err)
		a.Simplify()
		once := a.Postfix()
		a.Simplify()
		assert.Equal(t, once, a.Postfix(), "simplify must be idempotent on %q", src)
	}
}

func TestSimplifyPreservesValue(t *testing.T) {
	// eval(simplify(clone(T))) == eval(T) wherever both succeed.
	srcs := []string{
		"aa+a+", "a4*a5*+", "aa*a*", "ab+c*", "a2^", "ab*2^",
		"abab***", "ab*ab*+", "ab/c-", "a0+b1*+",
	}
	ctx := symexpr.NewContext(symexpr.SetVars(map[byte]float64{
		'a': 1.7, 'b': 2.3, 'c': 0.9,
	}))
	for _, src := range srcs {
		a, err := symexpr.ParseString(src)
		require.NoError(t, err)
		want, err := a.Eval(ctx)
		require.NoError(t, err)

		s := a.Clone()
		s.Simplify()
		got, err := s.Eval(ctx)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-9, "simplify changed the value of %q", src)
	}

	// The derivative pipeline preserves value through simplification too.
	a, err := symexpr.ParseString("aa^")
	require.NoError(t, err)
	d, err := a.Derivative('a')
	require.NoError(t, err)
	want, err := d.Eval(ctx)
	require.NoError(t, err)
	d2 := d.Clone()
	d2.Simplify()
	got, err := d2.Eval(ctx)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-9)
}
