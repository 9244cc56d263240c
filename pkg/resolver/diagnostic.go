package resolver

import (
	"chuckscope/pkg/color"
	"chuckscope/pkg/lexer"
	"fmt"
)

type DiagnosticKind int

const (
	SyntaxError DiagnosticKind = iota
	UndefinedIdentifier
	Redeclaration
	VoidDeclaration
	IllegalCharacter
)

func (k DiagnosticKind) String() string {
	switch k {
	case SyntaxError:
		return "Syntax error"
	case UndefinedIdentifier:
		return "Undefined identifier"
	case Redeclaration:
		return "Redeclaration of variable"
	case VoidDeclaration:
		return "Cannot declare variable of type void"
	case IllegalCharacter:
		return "Illegal character"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic is a problem found in the source, with its location
type Diagnostic struct {
	Kind DiagnosticKind
	Name string // offending name or lexeme, may be empty
	Msg  string // extra detail, may be empty
	Pos  lexer.Position
}

// String renders the diagnostic the way the CLI prints it
func (d Diagnostic) String() string {
	msg := color.RedText(d.Kind.String())
	if d.Name != "" {
		msg += " `" + color.BlueText(d.Name) + "`"
	}
	if d.Msg != "" {
		msg += ": " + d.Msg
	}
	msg += " at " + color.YellowText(fmt.Sprintf("Line: %d, Column %d", d.Pos.Line, d.Pos.Column))
	return msg
}

func (p *pass) addDiagnostic(kind DiagnosticKind, tok lexer.Token, msg string) {
	name := tok.Lexeme
	if kind == SyntaxError {
		name = ""
	}
	p.diags = append(p.diags, Diagnostic{Kind: kind, Name: name, Msg: msg, Pos: tok.Pos})
}

func (p *pass) addSyntaxError(expected string) {
	found := p.cur().Lexeme
	if p.cur().Type == lexer.EOF {
		found = "end of input"
	}
	p.addDiagnostic(SyntaxError, p.cur(), fmt.Sprintf("expected %s, found '%s'", expected, found))
}
