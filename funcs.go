package symexpr

// funcKind identifies a unary function. The zero value is not a valid
// function; its name renders as a placeholder so that a malformed tree is
// visible rather than silent.
type funcKind int8

const (
	funcNone funcKind = iota
	funcSin
	funcCos
	funcTan
	funcLn
)

// Internal single-character function codes, used in serialized forms and by
// hosts that address functions by code.
const (
	codeSin = 's'
	codeCos = 'c'
	codeTan = 't'
	codeLn  = 'l'
)

// funcByName maps the public function identifiers to kinds.
var funcByName = map[string]funcKind{
	"sin": funcSin,
	"cos": funcCos,
	"tan": funcTan,
	"ln":  funcLn,
}

func (f funcKind) name() string {
	switch f {
	case funcSin:
		return "sin"
	case funcCos:
		return "cos"
	case funcTan:
		return "tan"
	case funcLn:
		return "ln"
	}
	return "func?"
}

func (f funcKind) code() byte {
	switch f {
	case funcSin:
		return codeSin
	case funcCos:
		return codeCos
	case funcTan:
		return codeTan
	case funcLn:
		return codeLn
	}
	return '?'
}

// funcByCode returns the function with the given internal code character.
func funcByCode(c byte) (funcKind, bool) {
	for _, f := range []funcKind{funcSin, funcCos, funcTan, funcLn} {
		if f.code() == c {
			return f, true
		}
	}
	return funcNone, false
}

// Funcs returns the names of the unary functions the engine understands, in
// registry order.
func Funcs() []string {
	return []string{"sin", "cos", "tan", "ln"}
}
