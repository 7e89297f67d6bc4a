package symexpr

// Compose builds a new expression (E1) op (E2) from deep copies of the two
// inputs. op must be one of + - * / ^ or the call fails with
// *OperatorError; an empty input fails with *EmptyError. The postfix cache
// of the result is the concatenation of the inputs' postfix caches followed
// by the operator, which is textually valid postfix by construction, so no
// re-validation happens here. The concatenation inherits any bracketed
// numeric escapes the inputs carried.
func Compose(e1, e2 *Expr, op byte) (*Expr, error) {
	if !isOperator(op) {
		return nil, &OperatorError{Op: op}
	}
	if e1.Empty() {
		return nil, &EmptyError{Op: "compose left operand"}
	}
	if e2.Empty() {
		return nil, &EmptyError{Op: "compose right operand"}
	}
	a := &Expr{n: mkop(op, e1.n.clone(), e2.n.clone())}
	a.postfix = e1.Postfix() + e2.Postfix() + string(op)
	a.infix = infixString(a.n)
	return a, nil
}

// Substitute returns a new expression in which every variable bound in vals
// is replaced by a number leaf holding its value. Unbound variables and all
// other nodes are deep copied unchanged; a is not modified.
func (a *Expr) Substitute(vals map[byte]float64) *Expr {
	return hold(substitute(a.n, vals))
}

func substitute(n *node, vals map[byte]float64) *node {
	if n == nil {
		return nil
	}
	switch n.kind {
	case nodeVar:
		if v, ok := vals[n.ch]; ok {
			return mknum(v)
		}
		return n.clone()
	case nodeNum:
		return n.clone()
	case nodeFunc:
		return mkfunc(n.fn, substitute(n.left, vals))
	case nodeOp:
		return mkop(n.ch, substitute(n.left, vals), substitute(n.right, vals))
	}
	return n.clone()
}

// Apply wraps a deep copy of x in the named unary function, one of sin,
// cos, tan or ln, also accepted by its single-character code (s, c, t, l).
// This is how function nodes enter a tree from outside the engine, since
// the postfix grammar has no function tokens.
func Apply(name string, x *Expr) (*Expr, error) {
	fn, ok := funcByName[name]
	if !ok && len(name) == 1 {
		fn, ok = funcByCode(name[0])
	}
	if !ok {
		return nil, &FuncError{Name: name}
	}
	if x.Empty() {
		return nil, &EmptyError{Op: "apply " + name}
	}
	return hold(mkfunc(fn, x.n.clone())), nil
}
