package lexer

import "fmt"

type Position struct {
	Line   int
	Column int
	Offset int // byte offset into the input
}

// String returns the position as line:column
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

