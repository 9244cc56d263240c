package resolver

import (
	"chuckscope/pkg/lexer"
)

// statement resolves one statement. Every call consumes at least one token
// unless the current token is EOF.
func (p *pass) statement() error {
	switch p.cur().Type {
	case lexer.LBRACE:
		return p.block()
	case lexer.FUN:
		return p.funDecl()
	case lexer.IF:
		return p.ifStmt()
	case lexer.WHILE:
		return p.whileStmt()
	case lexer.FOR:
		return p.forStmt()
	case lexer.SEMICOLON:
		p.advance()
		return nil
	case lexer.RBRACE:
		p.addSyntaxError("statement")
		p.advance()
		return nil
	case lexer.RETURN, lexer.BREAK, lexer.CONTINUE:
		p.advance()
	}

	p.expression()
	if !p.expect(lexer.SEMICOLON) {
		p.recover()
	}
	return nil
}

// recover skips to the end of the broken statement
func (p *pass) recover() {
	for {
		switch p.cur().Type {
		case lexer.SEMICOLON:
			p.advance()
			return
		case lexer.RBRACE, lexer.EOF:
			return
		}
		p.advance()
	}
}

// block resolves `{ stmt* }` in a nested scope
func (p *pass) block() error {
	p.expect(lexer.LBRACE)

	err := p.scoped(func() error {
		for p.cur().Type != lexer.RBRACE && p.cur().Type != lexer.EOF {
			if err := p.statement(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	p.expect(lexer.RBRACE)
	return nil
}

// body resolves the body of a control statement in its own scope
func (p *pass) body() error {
	if p.cur().Type == lexer.LBRACE {
		return p.block()
	}
	return p.scoped(p.statement)
}

// condition resolves `( expr )`
func (p *pass) condition() {
	p.expect(lexer.LPAREN)
	p.expression()
	p.expect(lexer.RPAREN)
}

func (p *pass) ifStmt() error {
	p.advance()
	p.condition()

	if err := p.body(); err != nil {
		return err
	}

	if p.cur().Type == lexer.ELSE {
		p.advance()
		return p.body()
	}
	return nil
}

func (p *pass) whileStmt() error {
	p.advance()
	p.condition()
	return p.body()
}

// forStmt resolves `for (init; cond; post) body`; names declared in init
// live until the end of the loop
func (p *pass) forStmt() error {
	p.advance()

	return p.scoped(func() error {
		p.expect(lexer.LPAREN)
		p.expression()
		p.expect(lexer.SEMICOLON)
		p.expression()
		p.expect(lexer.SEMICOLON)
		p.expression()
		p.expect(lexer.RPAREN)
		return p.body()
	})
}

// funDecl resolves `fun Type [@] name ( params ) { body }` into a new frame
func (p *pass) funDecl() error {
	p.advance()

	if p.cur().Type == lexer.ID && p.cur().Lexeme == "static" {
		p.advance()
	}

	retType := p.advance().Lexeme
	if p.cur().Type == lexer.AT {
		p.advance()
	}
	p.skipArrayBrackets()

	name := p.cur()
	if !p.expect(lexer.ID) {
		p.recover()
		return nil
	}
	if !p.predeclared[p.pos-1] {
		p.declareFunction(name, retType)
	}

	p.beginActivation(name.Lexeme)
	p.table.BeginScope()

	p.expect(lexer.LPAREN)
	for p.cur().Type != lexer.RPAREN && p.cur().Type != lexer.EOF {
		if !p.isTypeStart() {
			p.addSyntaxError("parameter")
			p.skipTo(lexer.RPAREN, lexer.LBRACE)
			break
		}
		p.declaration()
		if p.cur().Type != lexer.COMMA {
			break
		}
		p.advance()
	}
	p.expect(lexer.RPAREN)

	if p.cur().Type == lexer.LBRACE {
		p.advance()
		for p.cur().Type != lexer.RBRACE && p.cur().Type != lexer.EOF {
			if err := p.statement(); err != nil {
				return err
			}
		}
		p.expect(lexer.RBRACE)
	} else {
		p.addSyntaxError("function body")
	}

	if err := p.table.EndScope(); err != nil {
		return err
	}
	return p.endActivation()
}

// predeclareFunctions binds every top-level function before resolving, so
// code may call functions defined further down
func (p *pass) predeclareFunctions() {
	depth := 0
	for i := 0; i < len(p.tokens); i++ {
		switch p.tokens[i].Type {
		case lexer.LBRACE:
			depth++
		case lexer.RBRACE:
			depth--
		case lexer.FUN:
			if depth != 0 {
				continue
			}
			j := i + 1
			if p.tokens[j].Type == lexer.ID && p.tokens[j].Lexeme == "static" {
				j++
			}
			retType := p.tokens[j].Lexeme
			for j++; j < len(p.tokens) && (p.tokens[j].Type == lexer.AT || p.tokens[j].Type == lexer.LSBRACE || p.tokens[j].Type == lexer.RSBRACE); j++ {
			}
			if j+1 < len(p.tokens) && p.tokens[j].Type == lexer.ID && p.tokens[j+1].Type == lexer.LPAREN {
				p.declareFunction(p.tokens[j], retType)
				p.predeclared[j] = true
			}
		}
	}
}

// expression resolves the identifiers of an expression, including any
// declarations chucked into, up to the end of the statement or an
// unmatched closing bracket.
func (p *pass) expression() {
	depth := 0
	segmentStart := true

	for {
		tok := p.cur()

		switch tok.Type {
		case lexer.EOF, lexer.SEMICOLON, lexer.LBRACE, lexer.RBRACE:
			return
		case lexer.RPAREN, lexer.RSBRACE:
			if depth == 0 {
				return
			}
			depth--
		case lexer.LPAREN, lexer.LSBRACE:
			depth++
		}

		if segmentStart && p.isTypeStart() {
			p.declaration()
			segmentStart = false
			continue
		}
		segmentStart = false

		switch tok.Type {
		case lexer.CHUCK, lexer.ATCHUCK, lexer.UNCHUCK:
			segmentStart = true
		case lexer.ID:
			// members, and type names after `new` or `$`, are not variables
			switch p.prev().Type {
			case lexer.DOT, lexer.NEW, lexer.CAST:
			default:
				p.use(tok)
			}
		case lexer.ILLEGAL:
			p.addDiagnostic(IllegalCharacter, tok, "")
		}

		p.advance()
	}
}

// isTypeStart reports whether the current token begins a declaration:
// `[global] type [@] name`
func (p *pass) isTypeStart() bool {
	if p.cur().Type == lexer.GLOBAL {
		return true
	}

	t := p.cur().Type
	if t != lexer.ID && t.GetCategory() != lexer.TYPE {
		return false
	}

	i := 1
	if p.peek(i).Type == lexer.AT {
		i++
	}
	for p.peek(i).Type == lexer.LSBRACE && p.peek(i+1).Type == lexer.RSBRACE {
		i += 2
	}
	return p.peek(i).Type == lexer.ID
}

// declaration resolves `[global] Type [@] name [array] {, [@] name [array]}`
func (p *pass) declaration() {
	isGlobal := false
	if p.cur().Type == lexer.GLOBAL {
		isGlobal = true
		p.advance()
	}

	typeTok := p.advance()
	isArrayType := p.skipArrayBrackets()

	for {
		isRef := false
		if p.cur().Type == lexer.AT {
			isRef = true
			p.advance()
		}

		name := p.cur()
		if !p.expect(lexer.ID) {
			return
		}

		isArray := isArrayType
		for p.cur().Type == lexer.LSBRACE {
			isArray = true
			p.advance()
			p.expression()
			p.expect(lexer.RSBRACE)
		}

		if typeTok.Type == lexer.VOID {
			p.addDiagnostic(VoidDeclaration, name, "")
		} else {
			isObj := !typeTok.Type.IsPrimitive() || isArray
			p.declare(name, typeTok.Lexeme, p.sizeOf(typeTok.Type, isRef, isObj), isRef, isObj, isGlobal)
		}

		if p.cur().Type != lexer.COMMA || !p.commaContinuesDeclaration() {
			return
		}
		p.advance()
	}
}

// commaContinuesDeclaration tells `int a, b` apart from a parameter list
// `(int a, float b)`
func (p *pass) commaContinuesDeclaration() bool {
	next := p.peek(1)
	if next.Type == lexer.AT {
		return true
	}
	return next.Type == lexer.ID && p.peek(2).Type != lexer.ID && p.peek(2).Type != lexer.AT
}

// skipArrayBrackets consumes any `[]` pairs and reports whether there were some
func (p *pass) skipArrayBrackets() bool {
	found := false
	for p.cur().Type == lexer.LSBRACE && p.peek(1).Type == lexer.RSBRACE {
		p.advance()
		p.advance()
		found = true
	}
	return found
}

// skipTo advances until one of types (not consumed) or EOF
func (p *pass) skipTo(types ...lexer.TokenType) {
	for p.cur().Type != lexer.EOF {
		for _, t := range types {
			if p.cur().Type == t {
				return
			}
		}
		p.advance()
	}
}
