package symexpr

import "sort"

// Expr is an expression tree together with its two derived text caches. The
// zero value is an empty expression. An Expr owns its tree exclusively:
// every operation that hands out a tree hands out a deep copy, so no two
// Exprs ever share nodes. It is not safe to mutate an Expr concurrently.
type Expr struct {
	// n is the root node, nil when the expression is empty.
	n *node
	// postfix and infix are derived caches, regenerated on every mutation.
	// They are not authoritative; the tree is.
	postfix string
	infix   string
}

// Empty reports whether a holds no expression.
func (a *Expr) Empty() bool {
	return a.n == nil
}

// Clear releases the tree and both text caches, leaving a empty.
func (a *Expr) Clear() {
	a.n = nil
	a.postfix = ""
	a.infix = ""
}

// Clone returns a fully independent deep copy of a, caches included.
func (a *Expr) Clone() *Expr {
	return &Expr{n: a.n.clone(), postfix: a.postfix, infix: a.infix}
}

// Vars returns the sorted distinct variable letters appearing in a, one
// letter per string.
func (a *Expr) Vars() []string {
	set := make(map[byte]bool)
	a.n.vars(set)
	if len(set) == 0 {
		return nil
	}
	r := make([]string, 0, len(set))
	for c := range set {
		r = append(r, string(c))
	}
	sort.Strings(r)
	return r
}

// Depth returns the number of levels in a's tree, 0 when a is empty. A host
// can size a viewport from it before calling Layout.
func (a *Expr) Depth() int {
	return a.n.depth()
}

// String returns the fully parenthesized infix rendering of a.
func (a *Expr) String() string {
	return a.Infix()
}

// recache regenerates both text caches from the tree. Every mutating
// operation ends here.
func (a *Expr) recache() {
	if a.n == nil {
		a.postfix = ""
		a.infix = ""
		return
	}
	a.postfix = postfixString(a.n)
	a.infix = infixString(a.n)
}

// hold wraps a root node in an Expr and computes its caches.
func hold(n *node) *Expr {
	a := &Expr{n: n}
	a.recache()
	return a
}
