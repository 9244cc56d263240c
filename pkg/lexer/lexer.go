package lexer

import "strings"

type Lexer struct {
	input        string // input string to be tokenized
	length       int    // length of the input string
	position     int    // current position in the input string
	line         int    // current line number for error reporting
	column       int    // current column number for error reporting
	currentToken Token  // current token for context (e.g., unary minus handling)
}

// Create a new lexer instance
func NewLexer(s string) *Lexer {
	return &Lexer{
		input:        s,
		length:       len(s),
		position:     0,
		line:         1,
		column:       1,
		currentToken: Token{},
	}
}

// Get the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	// End of input
	if l.position >= l.length {
		tok := NewToken(EOF, "", "", l.currentPosition())
		l.currentToken = tok
		return tok
	}

	// Handle signed numbers in contexts that allow unary minus.
	// We only treat '-' + number as a single NUM when:
	// - previous token allows unary (start of input or after operators/delimiters)
	// - '-' is immediately followed by a digit and the remainder matches NUM
	if l.input[l.position] == '-' && l.prevAllowsUnary() {
		if l.position+1 < l.length && isDigit(l.input[l.position+1]) {
			remaining := l.input[l.position+1:]
			t, lex, matched := MatchToken(remaining)
			if matched && t == NUM && lex != "" {
				lexeme := "-" + lex

				tok := NewToken(NUM, lexeme, lexeme, l.currentPosition())

				l.advance(len(lexeme))
				l.currentToken = tok

				return tok
			}
		}
	}

	// Regex match the first token it sees from the remaining input from current position to the end
	remaining := l.input[l.position:]
	token_type, lexeme, matched := MatchToken(remaining)

	if !matched || token_type == EOF {
		if token_type == EOF && lexeme != "" {
			l.advance(len(lexeme))
			return l.NextToken()
		}

		char := string(l.input[l.position])
		l.advance(1)

		tok := NewToken(ILLEGAL, char, "", l.currentPosition())
		l.currentToken = tok
		return tok
	}

	var literal string
	switch token_type {
	case NUM:
		literal = lexeme
	case TRUE:
		literal = "true"
	case FALSE:
		literal = "false"
	case STRLIT:
		// Remove the surrounding quotes from the lexeme
		literal = lexeme[1 : len(lexeme)-1]
	default:
		literal = lexeme
	}

	tok := NewToken(token_type, lexeme, literal, l.currentPosition())
	l.advance(len(lexeme))
	l.currentToken = tok

	return tok
}

// View next token without advancing the position
func (l *Lexer) Peek() Token {
	// save state
	cpos := l.position
	cline := l.line
	ccol := l.column
	ctok := l.currentToken

	token := l.NextToken()

	// restore state
	l.position = cpos
	l.line = cline
	l.column = ccol
	l.currentToken = ctok

	return token
}

// Check if there are more characters to read
func (l *Lexer) HasMore() bool {
	return l.position < l.length
}

// Skip whitespace and comments
func (l *Lexer) skipWhitespace() {
	for l.position < l.length {
		ch := l.input[l.position]

		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			l.advance(1)
		case l.startsWith("//"):
			// line comment runs up to and including the newline
			for l.position < l.length && l.input[l.position] != '\n' {
				l.advance(1)
			}
			l.advance(1)
		case l.startsWith("/*"):
			// an unterminated block comment swallows the rest of the input
			l.advance(2)
			for l.position < l.length && !l.startsWith("*/") {
				l.advance(1)
			}
			l.advance(2)
		default:
			return
		}
	}
}

// Check if the remaining input starts with prefix
func (l *Lexer) startsWith(prefix string) bool {
	return strings.HasPrefix(l.input[l.position:], prefix)
}

// Tokenize reads every token up to and including EOF
func (l *Lexer) Tokenize() []Token {
	tokens := make([]Token, 0, l.length/4)
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

// Advance the lexer position by n characters
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.position >= l.length {
			break
		}

		if l.input[l.position] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}

		l.position++
	}
}

// Get the current position of the lexer
func (l *Lexer) currentPosition() Position {
	return Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}
}

// Check if the previous token allows a unary operator (like - or +)
func (l *Lexer) prevAllowsUnary() bool {
	switch l.currentToken.Type {
	case EOF,
		ASSIGN,    // =
		LPAREN,    // (
		LSBRACE,   // [
		COMMA,     // ,
		SEMICOLON, // ;
		LBRACE,    // {
		// chuck operators
		CHUCK, ATCHUCK, UNCHUCK,
		// arithmetic operators
		PLUS, MINUS, MULT, DIV, MOD,
		// relational operators
		LT, GT, LE, GE, EQ, NE,
		// logical operators / keywords that can precede expr
		AND, OR, NOT, RETURN:
		return true
	default:
		return false
	}
}
