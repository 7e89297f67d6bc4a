package symexpr

import (
	"math"
	"strconv"
)

// Context holds variable bindings for evaluating expressions. The engine
// keeps no state of its own between calls; every binding lives in a Context
// the caller owns. It is not safe to use a Context concurrently with Set.
type Context struct {
	names map[byte]float64
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption(*Context)
}

type (
	varopt struct {
		name byte
		val  float64
	}
	varsopt map[byte]float64
)

func (o varopt) ctxOption(ctx *Context)  { ctx.names[o.name] = o.val }
func (o varsopt) ctxOption(ctx *Context) {
	for k, v := range o {
		ctx.names[k] = v
	}
}

// SetVar sets the value of a variable in the context.
func SetVar(name byte, val float64) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[byte]float64) ContextOption {
	return varsopt(vars)
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	ctx := &Context{names: make(map[byte]float64)}
	for _, opt := range opts {
		if opt != nil {
			opt.ctxOption(ctx)
		}
	}
	return ctx
}

// Set sets the value of a variable. Returns ctx for chaining.
func (ctx *Context) Set(name byte, val float64) *Context {
	ctx.names[name] = val
	return ctx
}

// Lookup returns the value of a variable and whether it is bound.
func (ctx *Context) Lookup(name byte) (float64, bool) {
	v, ok := ctx.names[name]
	return v, ok
}

// Bindings returns a copy of the context's variable bindings.
func (ctx *Context) Bindings() map[byte]float64 {
	m := make(map[byte]float64, len(ctx.names))
	for k, v := range ctx.names {
		m[k] = v
	}
	return m
}

// Eval computes the numeric value of a under the bindings in ctx. A nil ctx
// is treated as empty. Failures propagate immediately with no partial
// result: *NameError for an unbound variable, *DivisionError for a divisor
// within eps of zero, *LogDomainError for ln of a non-positive value.
func (a *Expr) Eval(ctx *Context) (float64, error) {
	if a.n == nil {
		return 0, &EmptyError{Op: "eval"}
	}
	if ctx == nil {
		ctx = NewContext()
	}
	return a.n.eval(ctx)
}

func (n *node) eval(ctx *Context) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeVar:
		v, ok := ctx.names[n.ch]
		if !ok {
			return 0, &NameError{Name: n.ch}
		}
		return v, nil
	case nodeFunc:
		x, err := n.left.eval(ctx)
		if err != nil {
			return 0, err
		}
		return applyFunc(n.fn, x)
	case nodeOp:
		x, err := n.left.eval(ctx)
		if err != nil {
			return 0, err
		}
		y, err := n.right.eval(ctx)
		if err != nil {
			return 0, err
		}
		return applyOp(n.ch, x, y)
	}
	panic("symexpr: invalid tree node " + n.kind.String())
}

func applyFunc(fn funcKind, x float64) (float64, error) {
	switch fn {
	case funcSin:
		return math.Sin(x), nil
	case funcCos:
		return math.Cos(x), nil
	case funcTan:
		return math.Tan(x), nil
	case funcLn:
		if x <= 0 {
			return 0, &LogDomainError{X: x}
		}
		return math.Log(x), nil
	}
	panic("symexpr: invalid function " + strconv.Itoa(int(fn)))
}

func applyOp(op byte, x, y float64) (float64, error) {
	switch op {
	case '+':
		return x + y, nil
	case '-':
		return x - y, nil
	case '*':
		return x * y, nil
	case '/':
		if math.Abs(y) < eps {
			return 0, &DivisionError{Num: x}
		}
		return x / y, nil
	case '^':
		return math.Pow(x, y), nil
	}
	panic("symexpr: invalid operator " + strconv.QuoteRune(rune(op)))
}

// EvalString is a shortcut to parse and evaluate a postfix expression.
func EvalString(src string, opts ...ContextOption) (float64, error) {
	a, err := ParseString(src)
	if err != nil {
		return 0, err
	}
	return a.Eval(NewContext(opts...))
}
