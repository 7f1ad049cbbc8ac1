package syntax

import "fmt"

// ErrorKind classifies a lexical or syntax error.
type ErrorKind uint8

const (
	UnterminatedString    ErrorKind = iota + 1 // string literal runs past end of input
	UnknownCharacter                           // character not in the token table
	UnexpectedToken                            // token does not fit the current production
	MissingClosingBracket                      // attribute selector without ]
	MissingClosingParen                        // function call without )
)

var errorKindNames = [...]string{
	UnterminatedString:    "unterminated string",
	UnknownCharacter:      "unknown character",
	UnexpectedToken:       "unexpected token",
	MissingClosingBracket: "missing closing bracket",
	MissingClosingParen:   "missing closing parenthesis",
}

func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// Error is the single error returned by a failed scan or parse.
// Expected and Actual are set for UnexpectedToken; Char is set for
// UnknownCharacter.
type Error struct {
	Kind     ErrorKind
	Pos      Pos
	Expected Kind
	Actual   Kind
	Char     string
}

// Offset returns the byte offset at which the error was detected.
func (e *Error) Offset() int {
	return e.Pos.Offset()
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case UnexpectedToken:
		msg = fmt.Sprintf("unexpected %s, expected %s", e.Actual, e.Expected)
	case UnknownCharacter:
		msg = fmt.Sprintf("unknown character %q", e.Char)
	default:
		msg = e.Kind.String()
	}
	return fmt.Sprintf("%s: %s (offset %d)", e.Pos, msg, e.Pos.Offset())
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, &Error{Kind: MissingClosingParen}) matches any position.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
