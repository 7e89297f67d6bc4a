package symexpr

import (
	"errors"
	"io"
	"strings"
	"unicode"
)

// Expr = Num | Var | Expr Expr BinOp
// Num = '0' .. '9'
// Var = 'a' .. 'z'
// BinOp = '+' | '-' | '*' | '/' | '^'
//
// Tokens are single characters read left to right; whitespace is skipped. A
// binary operator pops its right operand first, so the second-to-top of the
// stack becomes the left child.

// Parse reads a postfix expression from src and builds its tree. The error
// is a ParseError describing the first offense: a character outside the
// grammar, an operator with fewer than two operands, or input that does not
// reduce to exactly one tree. On failure no partial tree is retained.
func Parse(src io.RuneScanner) (*Expr, error) {
	var stack []*node
	pos := 0
	for {
		r, _, err := src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		pos++
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9':
			stack = append(stack, mknum(float64(r-'0')))
		case 'a' <= r && r <= 'z':
			stack = append(stack, mkvar(byte(r)))
		case r < 128 && isOperator(byte(r)):
			if len(stack) < 2 {
				return nil, &OperandError{Col: pos, Op: byte(r), Have: len(stack)}
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, mkop(byte(r), left, right))
		default:
			return nil, &CharError{Col: pos, Char: r}
		}
	}
	if len(stack) != 1 {
		return nil, &MalformedError{Col: pos + 1, Count: len(stack)}
	}
	return hold(stack[0]), nil
}

// ParseString is a shortcut to parse a postfix expression from a string.
func ParseString(s string) (*Expr, error) {
	return Parse(strings.NewReader(s))
}
