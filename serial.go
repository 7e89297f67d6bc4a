package symexpr

import (
	"strconv"
	"strings"
)

// Postfix returns the canonical postfix rendering of a. Number leaves whose
// value is an integer in [0, 9] emit a single digit; any other number emits
// a bracketed decimal escape like [3.5]. The escape is a one-way artifact:
// Parse only reads single digits, so postfix containing an escape does not
// round-trip. The result is cached until the tree next mutates.
func (a *Expr) Postfix() string {
	if a.n != nil && a.postfix == "" {
		a.postfix = postfixString(a.n)
	}
	return a.postfix
}

// Infix returns the fully parenthesized infix rendering of a. Every binary
// node is wrapped as (L op R) regardless of precedence, and a unary function
// renders as name(arg). Display only; not intended to be re-parsed.
func (a *Expr) Infix() string {
	if a.n != nil && a.infix == "" {
		a.infix = infixString(a.n)
	}
	return a.infix
}

func postfixString(n *node) string {
	var b strings.Builder
	n.postfix(&b)
	return b.String()
}

func (n *node) postfix(b *strings.Builder) {
	if n == nil {
		return
	}
	switch n.kind {
	case nodeNum:
		if d := int(n.num); float64(d) == n.num && 0 <= d && d <= 9 {
			b.WriteByte(byte('0' + d))
			return
		}
		b.WriteByte('[')
		b.WriteString(fmtnum(n.num))
		b.WriteByte(']')
	case nodeVar:
		b.WriteByte(n.ch)
	case nodeFunc:
		n.left.postfix(b)
		b.WriteString(n.fn.name())
	case nodeOp:
		n.left.postfix(b)
		n.right.postfix(b)
		b.WriteByte(n.ch)
	default:
		// Invalid nodes use an invalid character.
		b.WriteByte('$')
	}
}

func infixString(n *node) string {
	var b strings.Builder
	n.infix(&b)
	return b.String()
}

func (n *node) infix(b *strings.Builder) {
	if n == nil {
		return
	}
	switch n.kind {
	case nodeNum:
		b.WriteString(fmtnum(n.num))
	case nodeVar:
		b.WriteByte(n.ch)
	case nodeFunc:
		b.WriteString(n.fn.name())
		b.WriteByte('(')
		n.left.infix(b)
		b.WriteByte(')')
	case nodeOp:
		b.WriteByte('(')
		n.left.infix(b)
		b.WriteByte(' ')
		b.WriteByte(n.ch)
		b.WriteByte(' ')
		n.right.infix(b)
		b.WriteByte(')')
	default:
		b.WriteByte('$')
	}
}

func fmtnum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// label is the display text for a single node, used by the layout engine.
func (n *node) label() string {
	switch n.kind {
	case nodeNum:
		return fmtnum(n.num)
	case nodeVar:
		return string(n.ch)
	case nodeFunc:
		return n.fn.name()
	case nodeOp:
		return string(n.ch)
	}
	return "$"
}
