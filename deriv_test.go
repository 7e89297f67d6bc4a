package symexpr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kettleby/symexpr"
)

func TestDerivativeLeaves(t *testing.T) {
	cases := []struct {
		name string
		src  string
		by   byte
		want string
	}{
		{"constant", "5", 'x', "0"},
		{"same-var", "x", 'x', "1"},
		{"other-var", "x", 'y', "0"},
		{"sum", "ab+", 'a', "(1 + 0)"},
		{"difference", "ab-", 'b', "(0 - 1)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := symexpr.ParseString(c.src)
			require.NoError(t, err)
			d, err := a.Derivative(c.by)
			require.NoError(t, err)
			assert.Equal(t, c.want, d.Infix())
		})
	}
}

func TestDerivativePowerRule(t *testing.T) {
	// d/da a^2 simplifies to 2*a; the n==0 and n==1 shortcuts collapse
	// without ever building a power node.
	a, err := symexpr.ParseString("a2^")
	require.NoError(t, err)
	d, err := a.Derivative('a')
	require.NoError(t, err)
	d.Simplify()
	assert.Equal(t, "(2 * a)", d.Infix())

	zero, err := symexpr.ParseString("a0^")
	require.NoError(t, err)
	d, err = zero.Derivative('a')
	require.NoError(t, err)
	assert.Equal(t, "0", d.Infix())

	one, err := symexpr.ParseString("a1^")
	require.NoError(t, err)
	d, err = one.Derivative('a')
	require.NoError(t, err)
	assert.Equal(t, "1", d.Infix())
}

// dEval differentiates src by the given variable and evaluates the result.
func dEval(t *testing.T, a *symexpr.Expr, by byte, vars map[byte]float64) float64 {
	t.Helper()
	d, err := a.Derivative(by)
	require.NoError(t, err)
	v, err := d.Eval(symexpr.NewContext(symexpr.SetVars(vars)))
	require.NoError(t, err)
	return v
}

func TestDerivativeRulesNumeric(t *testing.T) {
	parse := func(src string) *symexpr.Expr {
		a, err := symexpr.ParseString(src)
		require.NoError(t, err)
		return a
	}
	apply := func(fn string, x *symexpr.Expr) *symexpr.Expr {
		a, err := symexpr.Apply(fn, x)
		require.NoError(t, err)
		return a
	}
	vars := map[byte]float64{'a': 2, 'b': 3}

	cases := []struct {
		name string
		expr *symexpr.Expr
		by   byte
		want float64
	}{
		{"product", parse("ab*"), 'a', 3},
		{"product-other", parse("ab*"), 'b', 2},
		{"quotient", parse("ab/"), 'b', -2.0 / 9},
		{"sin-chain", apply("sin", parse("a2^")), 'a', 2 * 2 * math.Cos(4)},
		{"cos-chain", apply("cos", parse("a2^")), 'a', -2 * 2 * math.Sin(4)},
		{"tan", apply("tan", parse("a")), 'a', 1 / (math.Cos(2) * math.Cos(2))},
		{"ln", apply("ln", parse("ab*")), 'a', 1.0 / 2},
		{"general-pow", parse("aa^"), 'a', math.Pow(2, 2) * (math.Log(2) + 1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := dEval(t, c.expr, c.by, vars)
			assert.InDelta(t, c.want, got, 1e-9)
		})
	}
}

func TestDerivativeSharesNothing(t *testing.T) {
	a, err := symexpr.ParseString("aa*b+")
	require.NoError(t, err)
	before := a.Postfix()
	d, err := a.Derivative('a')
	require.NoError(t, err)
	d.Simplify()
	assert.Equal(t, before, a.Postfix(), "differentiation must not alias the input tree")
}

func TestDerivativeEmpty(t *testing.T) {
	var a symexpr.Expr
	_, err := a.Derivative('x')
	var eerr *symexpr.EmptyError
	assert.ErrorAs(t, err, &eerr)
}
