// Package symexpr implements a symbolic expression engine over postfix
// input: parsing into binary expression trees, numeric evaluation under
// variable bindings, symbolic partial differentiation, algebraic
// simplification, composition of trees under a binary operator, and a
// heuristic 2-D layout of tree nodes for display by a host renderer.
//
// The token grammar is deliberately tiny: single decimal digits are number
// leaves, single lowercase letters are variable leaves, and + - * / ^ are
// binary operators in postfix position. Unary functions (sin, cos, tan, ln)
// never appear in input; they enter trees through Apply or through
// differentiation. Serialized postfix uses a bracketed escape for constants
// outside 0..9, which the parser does not read back; see Expr.Postfix.
package symexpr
