package symexpr

import "strconv"

// CharError is an error indicating a character outside the postfix token
// grammar. It implements ParseError.
type CharError struct {
	// Col is the 1-based position of the character in the input.
	Col int
	// Char is the offending character.
	Char rune
}

func (err *CharError) Error() string {
	return errpos(err.Col, "illegal character "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Pos() int {
	return err.Col
}

// OperandError is an error indicating a binary operator encountered with
// fewer than two operands on the parse stack. It implements ParseError.
type OperandError struct {
	// Col is the 1-based position of the operator.
	Col int
	// Op is the operator.
	Op byte
	// Have is the number of operands that were on the stack.
	Have int
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "operator "+string(err.Op)+" needs two operands, have "+strconv.Itoa(err.Have))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// MalformedError is an error indicating that the parse stack did not hold
// exactly one tree after all input was consumed. It implements ParseError.
type MalformedError struct {
	// Col is the 1-based position just past the end of the input.
	Col int
	// Count is the number of trees left on the stack.
	Count int
}

func (err *MalformedError) Error() string {
	if err.Count == 0 {
		return errpos(err.Col, "empty expression")
	}
	return errpos(err.Col, "malformed expression: "+strconv.Itoa(err.Count)+" values left on the stack")
}

func (err *MalformedError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// ParseError is an error with position information. Every error resulting
// from invalid postfix input implements ParseError.
type ParseError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the character that caused the error.
	Pos() int
}

var (
	_ ParseError = (*CharError)(nil)
	_ ParseError = (*OperandError)(nil)
	_ ParseError = (*MalformedError)(nil)
)

// NameError is an error from evaluating a variable that is missing from the
// evaluation context.
type NameError struct {
	// Name is the variable letter that was unbound.
	Name byte
}

func (err *NameError) Error() string {
	return "unbound variable: " + strconv.Quote(string(err.Name))
}

// DivisionError is an error from dividing by a value whose magnitude is
// below the engine's epsilon.
type DivisionError struct {
	// Num is the numerator of the offending division.
	Num float64
}

func (err *DivisionError) Error() string {
	return "division by zero"
}

// LogDomainError is an error from applying ln to a non-positive value.
type LogDomainError struct {
	// X is the out-of-domain argument.
	X float64
}

func (err *LogDomainError) Error() string {
	return "ln of non-positive value " + strconv.FormatFloat(err.X, 'g', -1, 64)
}

// DerivativeError is an error from differentiating a node shape with no
// differentiation rule.
type DerivativeError struct {
	// Shape describes the unsupported operator or function.
	Shape string
}

func (err *DerivativeError) Error() string {
	return "no derivative rule for " + err.Shape
}

// OperatorError is an error from composing two trees under a character that
// is not a binary operator.
type OperatorError struct {
	// Op is the rejected operator character.
	Op byte
}

func (err *OperatorError) Error() string {
	return "invalid operator " + strconv.QuoteRune(rune(err.Op))
}

// EmptyError is an error from an operation applied to an empty tree.
type EmptyError struct {
	// Op names the operation that required a non-empty tree.
	Op string
}

func (err *EmptyError) Error() string {
	return err.Op + " on empty expression"
}

// FuncError is an error from applying an unknown function name.
type FuncError struct {
	// Name is the unrecognized function identifier.
	Name string
}

func (err *FuncError) Error() string {
	return "unknown function " + strconv.Quote(err.Name)
}
