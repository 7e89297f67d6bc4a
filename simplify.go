package symexpr

import "math"

// Simplify rewrites a into an algebraically reduced form: constants fold,
// identities like x*1 and x^0 collapse, like terms combine (a+a+a becomes
// a*3, including explicit coefficients) and like factors combine (a*a*a
// becomes a^3). Folding that would leave the float64 domain, divide by zero
// or take ln of a non-positive value is left alone rather than guessed at.
// Both text caches are regenerated.
func (a *Expr) Simplify() {
	a.n = simplifyNode(a.n)
	a.recache()
}

// simplifyNode reduces bottom-up and returns the replacement root for n.
// Newly built subtrees are re-simplified until no reduction fires.
func simplifyNode(n *node) *node {
	if n == nil {
		return nil
	}
	n.left = simplifyNode(n.left)
	n.right = simplifyNode(n.right)

	if n.kind == nodeFunc {
		if v, ok := numLeaf(n.left); ok {
			if r, err := applyFunc(n.fn, v); err == nil && foldable(r) {
				return mknum(r)
			}
		}
		return n
	}
	if n.kind != nodeOp {
		return n
	}

	lv, lconst := numLeaf(n.left)
	rv, rconst := numLeaf(n.right)

	if lconst && rconst {
		if r, err := applyOp(n.ch, lv, rv); err == nil && foldable(r) {
			return mknum(r)
		}
	}

	switch n.ch {
	case '+':
		if r, ok := combineTerms(n); ok {
			return simplifyNode(r)
		}
	case '*':
		if r, ok := combineFactors(n); ok {
			return simplifyNode(r)
		}
	}

	// Algebraic identities, reached only when the combination passes above
	// left the node alone.
	switch n.ch {
	case '+':
		if rconst && math.Abs(rv) < eps {
			return n.left
		}
		if lconst && math.Abs(lv) < eps {
			return n.right
		}
	case '-':
		if rconst && math.Abs(rv) < eps {
			return n.left
		}
	case '*':
		if (rconst && math.Abs(rv) < eps) || (lconst && math.Abs(lv) < eps) {
			return mknum(0)
		}
		if rconst && math.Abs(rv-1) < eps {
			return n.left
		}
		if lconst && math.Abs(lv-1) < eps {
			return n.right
		}
	case '/':
		if rconst && math.Abs(rv-1) < eps {
			return n.left
		}
	case '^':
		if rconst && math.Abs(rv) < eps {
			return mknum(1)
		}
		if rconst && math.Abs(rv-1) < eps {
			return n.left
		}
	}
	return n
}

// foldable reports whether a folded constant is worth substituting for the
// expression that produced it. NaN and infinities stay symbolic.
func foldable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// addTerms flattens a chain of + nodes into its terms.
func addTerms(n *node, terms []*node) []*node {
	if n == nil {
		return terms
	}
	if n.kind == nodeOp && n.ch == '+' {
		terms = addTerms(n.left, terms)
		return addTerms(n.right, terms)
	}
	return append(terms, n)
}

// mulFactors flattens a chain of * nodes into its factors.
func mulFactors(n *node, factors []*node) []*node {
	if n == nil {
		return factors
	}
	if n.kind == nodeOp && n.ch == '*' {
		factors = mulFactors(n.left, factors)
		return mulFactors(n.right, factors)
	}
	return append(factors, n)
}

// coefficient decomposes a term into a non-constant base and a scalar
// multiplier. base*c and c*base yield (base, c); a bare constant yields
// (nil, c); anything else is itself with coefficient 1.
func coefficient(n *node) (base *node, coef float64) {
	if n.kind == nodeOp && n.ch == '*' {
		lv, lconst := numLeaf(n.left)
		rv, rconst := numLeaf(n.right)
		if rconst && !lconst {
			return n.left, rv
		}
		if lconst && !rconst {
			return n.right, lv
		}
	}
	if v, ok := numLeaf(n); ok {
		return nil, v
	}
	return n, 1
}

// combineTerms groups the terms of an additive chain by structurally equal
// bases and sums their coefficients. It reports whether grouping actually
// reduced the term count; if not, the tree is untouched.
func combineTerms(n *node) (*node, bool) {
	terms := addTerms(n, nil)
	if len(terms) < 2 {
		return nil, false
	}
	type group struct {
		base *node // nil for the pure-constant group
		coef float64
	}
	var groups []group
	used := make([]bool, len(terms))
	for i := range terms {
		if used[i] {
			continue
		}
		base, coef := coefficient(terms[i])
		for j := i + 1; j < len(terms); j++ {
			if used[j] {
				continue
			}
			b, c := coefficient(terms[j])
			same := (base == nil && b == nil) || (base != nil && b != nil && base.equal(b))
			if same {
				coef += c
				used[j] = true
			}
		}
		groups = append(groups, group{base, coef})
		used[i] = true
	}
	if len(groups) == len(terms) {
		return nil, false
	}
	var result *node
	for _, g := range groups {
		var term *node
		switch {
		case g.base == nil:
			term = mknum(g.coef)
		case math.Abs(g.coef-1) < eps:
			term = g.base.clone()
		case math.Abs(g.coef) < eps:
			continue
		default:
			term = mkop('*', g.base.clone(), mknum(g.coef))
		}
		if result == nil {
			result = term
		} else {
			result = mkop('+', result, term)
		}
	}
	if result == nil {
		result = mknum(0)
	}
	return result, true
}

// combineFactors multiplies the numeric factors of a multiplicative chain
// into one scalar and groups structurally equal non-numeric factors into
// powers. It reports whether anything actually merged.
func combineFactors(n *node) (*node, bool) {
	factors := mulFactors(n, nil)
	if len(factors) < 2 {
		return nil, false
	}
	scalar := 1.0
	var rest []*node
	for _, f := range factors {
		if v, ok := numLeaf(f); ok {
			scalar *= v
		} else {
			rest = append(rest, f)
		}
	}
	type group struct {
		base  *node
		count int
	}
	var groups []group
	used := make([]bool, len(rest))
	for i := range rest {
		if used[i] {
			continue
		}
		count := 1
		for j := i + 1; j < len(rest); j++ {
			if !used[j] && rest[i].equal(rest[j]) {
				count++
				used[j] = true
			}
		}
		groups = append(groups, group{rest[i], count})
		used[i] = true
	}

	expected := len(rest)
	if math.Abs(scalar-1) >= eps {
		expected++
	}
	merged := len(factors) > expected || len(groups) < len(rest)
	if !merged {
		return nil, false
	}
	if math.Abs(scalar) < eps {
		return mknum(0), true
	}
	var result *node
	if math.Abs(scalar-1) >= eps {
		result = mknum(scalar)
	}
	for _, g := range groups {
		var factor *node
		if g.count == 1 {
			factor = g.base.clone()
		} else {
			factor = mkop('^', g.base.clone(), mknum(float64(g.count)))
		}
		if result == nil {
			result = factor
		} else {
			result = mkop('*', result, factor)
		}
	}
	if result == nil {
		result = mknum(scalar)
	}
	return result, true
}
