package symexpr

import "math"

// Derivative returns a new expression for the partial derivative of a with
// respect to the variable v. The result shares no nodes with a; every
// subtree reused structurally (for example v in the quotient rule) is deep
// copied. Differentiating a shape with no rule fails with *DerivativeError.
func (a *Expr) Derivative(v byte) (*Expr, error) {
	if a.n == nil {
		return nil, &EmptyError{Op: "derivative"}
	}
	d, err := deriv(a.n, v)
	if err != nil {
		return nil, err
	}
	return hold(d), nil
}

func deriv(n *node, v byte) (*node, error) {
	switch n.kind {
	case nodeNum:
		return mknum(0), nil
	case nodeVar:
		if n.ch == v {
			return mknum(1), nil
		}
		return mknum(0), nil
	case nodeFunc:
		return derivFunc(n, v)
	case nodeOp:
		return derivOp(n, v)
	}
	return nil, &DerivativeError{Shape: n.kind.String()}
}

// derivFunc applies the chain rule for the four unary functions.
func derivFunc(n *node, v byte) (*node, error) {
	u := n.left
	du, err := deriv(u, v)
	if err != nil {
		return nil, err
	}
	switch n.fn {
	case funcSin:
		// sin(u)' = cos(u) * u'
		return mkop('*', mkfunc(funcCos, u.clone()), du), nil
	case funcCos:
		// cos(u)' = (-1 * sin(u)) * u'
		neg := mkop('*', mknum(-1), mkfunc(funcSin, u.clone()))
		return mkop('*', neg, du), nil
	case funcTan:
		// tan(u)' = (1 / cos(u)^2) * u'
		c2 := mkop('^', mkfunc(funcCos, u.clone()), mknum(2))
		return mkop('*', mkop('/', mknum(1), c2), du), nil
	case funcLn:
		// ln(u)' = u' / u
		return mkop('/', du, u.clone()), nil
	}
	return nil, &DerivativeError{Shape: n.fn.name()}
}

func derivOp(n *node, v byte) (*node, error) {
	u, w := n.left, n.right
	switch n.ch {
	case '+', '-':
		du, err := deriv(u, v)
		if err != nil {
			return nil, err
		}
		dw, err := deriv(w, v)
		if err != nil {
			return nil, err
		}
		return mkop(n.ch, du, dw), nil
	case '*':
		// (u*w)' = u'*w + u*w'
		du, err := deriv(u, v)
		if err != nil {
			return nil, err
		}
		dw, err := deriv(w, v)
		if err != nil {
			return nil, err
		}
		return mkop('+', mkop('*', du, w.clone()), mkop('*', u.clone(), dw)), nil
	case '/':
		// (u/w)' = (u'*w - u*w') / w^2
		du, err := deriv(u, v)
		if err != nil {
			return nil, err
		}
		dw, err := deriv(w, v)
		if err != nil {
			return nil, err
		}
		num := mkop('-', mkop('*', du, w.clone()), mkop('*', u.clone(), dw))
		den := mkop('^', w.clone(), mknum(2))
		return mkop('/', num, den), nil
	case '^':
		return derivPow(u, w, v)
	}
	return nil, &DerivativeError{Shape: string(n.ch)}
}

// derivPow differentiates u^w. A constant exponent n takes the power rule
// shortcut n * u^(n-1) * u', with n == 0 and n == 1 collapsing early so no
// redundant power node is built. Otherwise the general exponential rule
// u^w * (w'*ln(u) + w*(u'/u)) applies.
func derivPow(u, w *node, v byte) (*node, error) {
	du, err := deriv(u, v)
	if err != nil {
		return nil, err
	}
	if c, ok := numLeaf(w); ok {
		if math.Abs(c) < eps {
			return mknum(0), nil
		}
		if math.Abs(c-1) < eps {
			return du, nil
		}
		pow := mkop('^', u.clone(), mknum(c-1))
		return mkop('*', mkop('*', mknum(c), pow), du), nil
	}
	dw, err := deriv(w, v)
	if err != nil {
		return nil, err
	}
	t1 := mkop('*', dw, mkfunc(funcLn, u.clone()))
	t2 := mkop('*', w.clone(), mkop('/', du, u.clone()))
	return mkop('*', mkop('^', u.clone(), w.clone()), mkop('+', t1, t2)), nil
}
