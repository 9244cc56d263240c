package lexer

import (
	"regexp"
)

type tokenRegex struct {
	Pattern *regexp.Regexp
	Raw     string
}

func newTokenRegex(raw string) tokenRegex {
	return tokenRegex{regexp.MustCompile(raw), raw}
}

// Token regex patterns
var tokenRegexes = map[TokenType]tokenRegex{
	ATCHUCK: newTokenRegex(`^@=>`),
	CHUCK:   newTokenRegex(`^=>`),
	UNCHUCK: newTokenRegex(`^=<`),
	DCOLON:  newTokenRegex(`^::`),
	LE:      newTokenRegex(`^<=`),
	GE:      newTokenRegex(`^>=`),
	EQ:      newTokenRegex(`^==`),
	NE:      newTokenRegex(`^!=`),
	AND:     newTokenRegex(`^&&`),
	OR:      newTokenRegex(`^\|\|`),
	INCR:    newTokenRegex(`^\+\+`),
	DECR:    newTokenRegex(`^--`),

	AT:     newTokenRegex(`^@`),
	DOT:    newTokenRegex(`^\.`),
	CAST:   newTokenRegex(`^\$`),
	ASSIGN: newTokenRegex(`^=`),
	PLUS:   newTokenRegex(`^\+`),
	MINUS:  newTokenRegex(`^-`),
	MULT:   newTokenRegex(`^\*`),
	DIV:    newTokenRegex(`^/`),
	MOD:    newTokenRegex(`^%`),
	LT:     newTokenRegex(`^<`),
	GT:     newTokenRegex(`^>`),
	NOT:    newTokenRegex(`^!`),

	SEMICOLON: newTokenRegex(`^;`),
	COMMA:     newTokenRegex(`^,`),
	COLON:     newTokenRegex(`^:`),
	LPAREN:    newTokenRegex(`^\(`),
	RPAREN:    newTokenRegex(`^\)`),
	LBRACE:    newTokenRegex(`^\{`),
	RBRACE:    newTokenRegex(`^\}`),
	LSBRACE:   newTokenRegex(`^\[`),
	RSBRACE:   newTokenRegex(`^\]`),

	NUM:    newTokenRegex(`^\d+(\.\d+)?([eE][+-]?\d+)?`),
	STRLIT: newTokenRegex(`^"([^"\\]|\\.)*"`),
	ID:     newTokenRegex(`^[a-zA-Z_][a-zA-Z0-9_]*`),
}

var (
	whitespaceRegex   = regexp.MustCompile(`^\s+`)
	commentRegex      = regexp.MustCompile(`^//.*`)
	blockCommentRegex = regexp.MustCompile(`^/\*(?s:.*?)\*/`)
)

// Token precedence order for matching (longer patterns first)
var tokenPrecedenceOrder = []TokenType{
	ATCHUCK, CHUCK, UNCHUCK, DCOLON, LE, GE, EQ, NE, AND, OR, INCR, DECR,
	AT, DOT, CAST, ASSIGN, PLUS, MINUS, MULT, DIV, MOD, LT, GT, NOT,
	SEMICOLON, COMMA, COLON, LPAREN, RPAREN, LBRACE, RBRACE, LSBRACE, RSBRACE,
	NUM, STRLIT, ID,
}

// Get the regex pattern for a token type
func (t TokenType) Regex() *regexp.Regexp {
	if regex, ok := tokenRegexes[t]; ok {
		return regex.Pattern
	}

	return nil
}

// Get the raw regex string for a token type
func (t TokenType) RawRegex() string {
	if regex, ok := tokenRegexes[t]; ok {
		return regex.Raw
	}

	return ""
}

// Match the token at the start of the string. Whitespace and comments are
// reported as EOF with a non-empty lexeme so the caller can skip them.
func MatchToken(s string) (TokenType, string, bool) {
	if s == "" {
		return EOF, "", false
	} else if match := whitespaceRegex.FindString(s); match != "" {
		return EOF, match, true
	} else if match := commentRegex.FindString(s); match != "" {
		return EOF, match, true
	} else if match := blockCommentRegex.FindString(s); match != "" {
		return EOF, match, true
	}

	for _, tokenType := range tokenPrecedenceOrder {
		if regex, ok := tokenRegexes[tokenType]; ok {
			if match := regex.Pattern.FindString(s); match != "" {
				if tokenType == ID {
					if kw, ok := IsKeyword(match); ok {
						return kw, match, true
					}
				}
				return tokenType, match, true
			}
		}
	}

	return ILLEGAL, string(s[0]), false
}

// Check if a byte is a digit
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
