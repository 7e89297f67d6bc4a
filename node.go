package symexpr

import "math"

// eps is the tolerance below which a float64 is treated as zero, both for
// division guards and for numeric leaf comparison.
const eps = 1e-12

// node is a node in a binary expression tree.
//
// The shape invariant per kind: nodeNum and nodeVar are leaves, nodeFunc has
// exactly one child in left, nodeOp has both children. The constructors below
// are the only way nodes are built, so other code may rely on the shape.
type node struct {
	kind nodeKind

	num float64  // nodeNum value
	ch  byte     // nodeVar letter or nodeOp operator
	fn  funcKind // nodeFunc function

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum  // number leaf
	nodeVar  // variable leaf
	nodeOp   // binary operator, ch one of + - * / ^
	nodeFunc // unary function, operand in left
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeVar:
		return "Var"
	case nodeOp:
		return "Op"
	case nodeFunc:
		return "Func"
	}
	return "nodeKind(?)"
}

func mknum(v float64) *node {
	return &node{kind: nodeNum, num: v}
}

func mkvar(c byte) *node {
	return &node{kind: nodeVar, ch: c}
}

func mkop(op byte, l, r *node) *node {
	return &node{kind: nodeOp, ch: op, left: l, right: r}
}

func mkfunc(fn funcKind, operand *node) *node {
	return &node{kind: nodeFunc, fn: fn, left: operand}
}

// isOperator reports whether c is one of the five binary operators.
func isOperator(c byte) bool {
	return c == '+' || c == '-' || c == '*' || c == '/' || c == '^'
}

// numLeaf reports whether n is a number leaf and returns its value.
func numLeaf(n *node) (float64, bool) {
	if n == nil || n.kind != nodeNum {
		return 0, false
	}
	return n.num, true
}

// clone returns a deep copy sharing no nodes with n.
func (n *node) clone() *node {
	if n == nil {
		return nil
	}
	q := *n
	q.left = n.left.clone()
	q.right = n.right.clone()
	return &q
}

// equal reports structural equality: same kind, same operator or function or
// variable, numeric leaves within eps of each other.
func (n *node) equal(m *node) bool {
	if n == nil || m == nil {
		return n == m
	}
	if n.kind != m.kind {
		return false
	}
	switch n.kind {
	case nodeNum:
		return math.Abs(n.num-m.num) < eps
	case nodeVar:
		return n.ch == m.ch
	case nodeFunc:
		return n.fn == m.fn && n.left.equal(m.left)
	default:
		return n.ch == m.ch && n.left.equal(m.left) && n.right.equal(m.right)
	}
}

// depth is the number of levels in the tree rooted at n.
func (n *node) depth() int {
	if n == nil {
		return 0
	}
	l, r := n.left.depth(), n.right.depth()
	if r > l {
		l = r
	}
	return 1 + l
}

// vars adds every variable letter under n to set.
func (n *node) vars(set map[byte]bool) {
	if n == nil {
		return
	}
	if n.kind == nodeVar {
		set[n.ch] = true
	}
	n.left.vars(set)
	n.right.vars(set)
}
