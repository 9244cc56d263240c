package lexer

import (
	"fmt"
)

type TokenType int
type TokenCategory int

type Token struct {
	Type    TokenType // Type of the token
	Lexeme  string    // Actual string from source code
	Literal string    // Literal value (if applicable), empty string if not
	Pos     Position  // Position in source code
}

// NewToken creates a new Token instance
func NewToken(tokenType TokenType, lexeme string, literal string, Pos Position) Token {
	return Token{
		Type:    tokenType,
		Lexeme:  lexeme,
		Literal: literal,
		Pos:     Pos,
	}
}

const (
	NONE TokenCategory = iota
	KEYWORD
	TYPE
	IDENTIFIER
	LITERAL
	OPERATOR
	DELIMITER
)

const (
	EOF TokenType = iota // End of file

	FUN      // fun
	GLOBAL   // global
	RETURN   // return
	IF       // if
	ELSE     // else
	WHILE    // while
	FOR      // for
	BREAK    // break
	CONTINUE // continue
	NEW      // new
	TRUE     // true
	FALSE    // false

	INT    // int
	FLOAT  // float
	DUR    // dur
	TIME   // time
	STRING // string
	VOID   // void

	ID     // id (identifier)
	NUM    // num (number)
	STRLIT // string literal

	CHUCK    // =>
	ATCHUCK  // @=>
	UNCHUCK  // =<
	AT       // @
	DOT      // .
	CAST     // $
	DCOLON   // ::
	ASSIGN   // =
	PLUS     // +
	MINUS    // -
	MULT     // *
	DIV      // /
	MOD      // %
	LT       // <
	GT       // >
	LE       // <=
	GE       // >=
	EQ       // ==
	NE       // !=
	AND      // &&
	OR       // ||
	NOT      // !
	INCR     // ++
	DECR     // --

	SEMICOLON // ;
	COMMA     // ,
	COLON     // :
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LSBRACE   // [
	RSBRACE   // ]

	ILLEGAL // illegal token
)

var Keywords = map[string]TokenType{
	"fun":      FUN,
	"function": FUN,
	"global":   GLOBAL,
	"return":   RETURN,
	"if":       IF,
	"else":     ELSE,
	"while":    WHILE,
	"for":      FOR,
	"break":    BREAK,
	"continue": CONTINUE,
	"new":      NEW,
	"true":     TRUE,
	"false":    FALSE,
	"int":      INT,
	"float":    FLOAT,
	"dur":      DUR,
	"time":     TIME,
	"string":   STRING,
	"void":     VOID,
}

var tokenNames = map[TokenType]string{
	FUN:       "fun",
	GLOBAL:    "global",
	RETURN:    "return",
	IF:        "if",
	ELSE:      "else",
	WHILE:     "while",
	FOR:       "for",
	BREAK:     "break",
	CONTINUE:  "continue",
	NEW:       "new",
	TRUE:      "true",
	FALSE:     "false",
	INT:       "int",
	FLOAT:     "float",
	DUR:       "dur",
	TIME:      "time",
	STRING:    "string",
	VOID:      "void",
	ID:        "id",
	NUM:       "num",
	STRLIT:    "strlit",
	CHUCK:     "=>",
	ATCHUCK:   "@=>",
	UNCHUCK:   "=<",
	AT:        "@",
	DOT:       ".",
	CAST:      "$",
	DCOLON:    "::",
	ASSIGN:    "=",
	PLUS:      "+",
	MINUS:     "-",
	MULT:      "*",
	DIV:       "/",
	MOD:       "%",
	LT:        "<",
	GT:        ">",
	LE:        "<=",
	GE:        ">=",
	EQ:        "==",
	NE:        "!=",
	AND:       "&&",
	OR:        "||",
	NOT:       "!",
	INCR:      "++",
	DECR:      "--",
	SEMICOLON: ";",
	COMMA:     ",",
	COLON:     ":",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	LSBRACE:   "[",
	RSBRACE:   "]",
	ILLEGAL:   "illegal",
	EOF:       "$",
}

// String returns a string representation of the Token
func (t Token) String() string {
	if t.Literal == "" {
		return fmt.Sprintf("T_{%s, %v, nil, %s}",
			t.Type, t.Lexeme, t.Pos.String())
	}

	return fmt.Sprintf("T_{%s, %v, %q, %s}",
		t.Type, t.Lexeme, t.Literal, t.Pos.String())
}

// String returns a string representation of the TokenType
func (t TokenType) String() string {
	if str, ok := tokenNames[t]; ok {
		return str
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// GetCategory returns the category of the token
func (t TokenType) GetCategory() TokenCategory {
	switch t {
	case FUN, GLOBAL, RETURN, IF, ELSE, WHILE, FOR, BREAK, CONTINUE, NEW, TRUE, FALSE:
		return KEYWORD
	case INT, FLOAT, DUR, TIME, STRING, VOID:
		return TYPE
	case ID:
		return IDENTIFIER
	case NUM, STRLIT:
		return LITERAL
	case CHUCK, ATCHUCK, UNCHUCK, AT, DOT, CAST, DCOLON, ASSIGN, PLUS, MINUS, MULT, DIV, MOD,
		LT, GT, LE, GE, EQ, NE, AND, OR, NOT, INCR, DECR:
		return OPERATOR
	case SEMICOLON, COMMA, COLON, LPAREN, RPAREN, LBRACE, RBRACE, LSBRACE, RSBRACE:
		return DELIMITER
	default:
		return NONE
	}
}

// IsPrimitive reports whether the token names a primitive (non-object) type
func (t TokenType) IsPrimitive() bool {
	return t.GetCategory() == TYPE && t != STRING
}

// IsKeyword checks if the given identifier is a keyword and returns its TokenType if it is
func IsKeyword(identifier string) (TokenType, bool) {
	tokenType, ok := Keywords[identifier]
	return tokenType, ok
}
