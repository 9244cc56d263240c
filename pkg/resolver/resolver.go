package resolver

import (
	"chuckscope/pkg/frame"
	"chuckscope/pkg/lexer"
	"chuckscope/pkg/stack"
	"chuckscope/pkg/symbol"
	"fmt"

	"github.com/charmbracelet/log"
)

// CodeFrame is the name of the frame holding top-level statements
const CodeFrame = "@code"

// DefaultBuiltins are the names every program can use without declaring them
var DefaultBuiltins = []string{
	"now", "dac", "adc", "blackhole", "me", "chout", "cherr",
	"samp", "ms", "second", "minute", "hour", "day", "week",
	"pi", "null", "NULL", "maybe", "Math", "Std", "Machine",
}

type BindingKind int

const (
	Variable BindingKind = iota
	Function
	Builtin
)

// Binding is what a name resolves to
type Binding struct {
	Name  string
	Kind  BindingKind
	Type  string         // declared type, or return type of a function
	Local *frame.Local   // slot of a variable, nil otherwise
	Depth int            // table scope depth of the declaration
	Uses  int            // number of times the name was referenced
	Pos   lexer.Position // where it was declared

	owner int // id of the activation that declared it, -1 for builtins
}

// LocalInfo describes one local of a laid out frame
type LocalInfo struct {
	*frame.Local
	Type  string
	Depth int // nesting depth inside the frame, 0 is the frame's root scope
	Uses  int
	Pos   lexer.Position

	binding *Binding
}

// Layout is the storage layout of one activation
type Layout struct {
	Name   string
	Size   uint        // bytes needed, the frame's high-water mark
	Locals []LocalInfo // every local ever allocated, in allocation order
}

// Result is the outcome of resolving one source unit
type Result struct {
	Frames      []Layout
	Diagnostics []Diagnostic
}

// Options tune sizes and predeclared names
type Options struct {
	WordSize uint            // size of references and objects
	Sizes    map[string]uint // overrides per primitive type name
	Builtins []string        // extra predeclared names
}

// Resolver binds names and lays out frames for ChucK source. It holds no
// per-source state, so one resolver may serve concurrent Resolve calls.
type Resolver struct {
	in    *symbol.Interner
	opts  Options
	sizes map[lexer.TokenType]uint
}

// New creates a resolver sharing in for all the units it resolves
func New(in *symbol.Interner, opts Options) *Resolver {
	if opts.WordSize == 0 {
		opts.WordSize = 8
	}

	sizes := map[lexer.TokenType]uint{
		lexer.INT:   8,
		lexer.FLOAT: 8,
		lexer.DUR:   8,
		lexer.TIME:  8,
	}
	for name, size := range opts.Sizes {
		if t, ok := lexer.IsKeyword(name); ok && t.IsPrimitive() {
			sizes[t] = size
		}
	}

	return &Resolver{in: in, opts: opts, sizes: sizes}
}

// Resolve lexes src, resolves every name and lays out every frame
func (r *Resolver) Resolve(src string) (*Result, error) {
	p := &pass{
		r:      r,
		tokens: lexer.NewLexer(src).Tokenize(),
		table:  symbol.NewScopeTable[*Binding](r.in, 64),
		acts:   stack.NewStack[*activation](4),

		predeclared: make(map[int]bool),
	}

	for _, names := range [][]string{DefaultBuiltins, r.opts.Builtins} {
		for _, name := range names {
			p.bind(name, &Binding{Name: name, Kind: Builtin, owner: -1})
		}
	}

	p.beginActivation(CodeFrame)
	p.predeclareFunctions()
	for p.cur().Type != lexer.EOF && p.fatal == nil {
		if err := p.statement(); err != nil {
			return nil, err
		}
	}
	if p.fatal != nil {
		return nil, p.fatal
	}
	if err := p.endActivation(); err != nil {
		return nil, err
	}

	log.Debug("Resolved unit", "frames", len(p.layouts), "diagnostics", len(p.diags), "symbols", r.in.Len())

	return &Result{Frames: p.layouts, Diagnostics: p.diags}, nil
}

// activation is a frame being laid out
type activation struct {
	id     int
	frame  *frame.Frame
	locals []LocalInfo
}

// pass is the state of one Resolve call
type pass struct {
	r      *Resolver
	tokens []lexer.Token
	pos    int

	table   *symbol.ScopeTable[*Binding]
	acts    *stack.Stack[*activation]
	nextID  int
	layouts []Layout
	diags   []Diagnostic

	predeclared map[int]bool // token index of function names bound up front
	fatal       error        // stops the pass, e.g. the interner is full
}

func (p *pass) cur() lexer.Token {
	return p.peek(0)
}

// peek returns the token n positions ahead of the current one
func (p *pass) peek(n int) lexer.Token {
	if p.pos+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos+n]
}

func (p *pass) prev() lexer.Token {
	if p.pos == 0 {
		return lexer.Token{Type: lexer.EOF}
	}
	return p.tokens[p.pos-1]
}

func (p *pass) advance() lexer.Token {
	tok := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// expect consumes a token of type t or reports a syntax error
func (p *pass) expect(t lexer.TokenType) bool {
	if p.cur().Type != t {
		p.addSyntaxError("'" + t.String() + "'")
		return false
	}
	p.advance()
	return true
}

func (p *pass) act() *activation {
	a, _ := p.acts.Peek()
	return a
}

func (p *pass) beginActivation(name string) {
	p.acts.Push(&activation{id: p.nextID, frame: frame.New(name)})
	p.nextID++
}

func (p *pass) endActivation() error {
	a, _ := p.acts.Pop()
	if a.frame.Depth() != 0 {
		return fmt.Errorf("frame %s closed with %d open scopes: %w", a.frame.Name, a.frame.Depth(), frame.ErrUnbalancedScope)
	}

	// use counts are final once the frame is closed
	for i := range a.locals {
		a.locals[i].Uses = a.locals[i].binding.Uses
	}

	p.layouts = append(p.layouts, Layout{
		Name:   a.frame.Name,
		Size:   a.frame.MaxOffset(),
		Locals: a.locals,
	})

	log.Debug("Laid out frame", "frame", a.frame.Name, "size", a.frame.MaxOffset(), "locals", len(a.locals))
	return nil
}

// scoped runs fn inside a nested scope of both the symbol table and the
// current frame
func (p *pass) scoped(fn func() error) error {
	a := p.act()
	p.table.BeginScope()
	a.frame.PushScope()

	if err := fn(); err != nil {
		return err
	}

	released, err := a.frame.PopScope(nil)
	if err != nil {
		return fmt.Errorf("closing scope of %s: %w", a.frame.Name, err)
	}
	if err := p.table.EndScope(); err != nil {
		return fmt.Errorf("closing scope of %s: %w", a.frame.Name, err)
	}

	if len(released) > 0 {
		log.Debug("Released locals", "frame", a.frame.Name, "count", len(released), "offset", a.frame.Offset())
	}
	return nil
}

// declare binds name in the current scope and gives it a slot in the current frame
func (p *pass) declare(tok lexer.Token, typeName string, size uint, isRef, isObj, isGlobal bool) {
	a := p.act()

	if prev, ok := p.table.LookName(tok.Lexeme); ok && prev.owner == a.id && prev.Depth == p.table.Depth() {
		p.addDiagnostic(Redeclaration, tok, "previously declared at "+prev.Pos.String())
		return
	}

	local := a.frame.AllocLocal(size, tok.Lexeme, isRef, isObj, isGlobal)
	b := &Binding{
		Name:  tok.Lexeme,
		Kind:  Variable,
		Type:  typeName,
		Local: local,
		Depth: p.table.Depth(),
		Pos:   tok.Pos,
		owner: a.id,
	}
	if !p.bind(tok.Lexeme, b) {
		return
	}
	a.locals = append(a.locals, LocalInfo{Local: local, Type: typeName, Depth: a.frame.Depth(), Pos: tok.Pos, binding: b})
}

// declareFunction binds a function name in the current scope
func (p *pass) declareFunction(tok lexer.Token, returnType string) {
	a := p.act()

	if prev, ok := p.table.LookName(tok.Lexeme); ok && prev.owner == a.id && prev.Depth == p.table.Depth() && prev.Kind != Function {
		p.addDiagnostic(Redeclaration, tok, "previously declared at "+prev.Pos.String())
		return
	}

	p.bind(tok.Lexeme, &Binding{
		Name:  tok.Lexeme,
		Kind:  Function,
		Type:  returnType,
		Depth: p.table.Depth(),
		Pos:   tok.Pos,
		owner: a.id,
	})
}

// bind enters b under name, interning name within the interner's limit
func (p *pass) bind(name string, b *Binding) bool {
	sym, err := p.r.in.TryIntern(name)
	if err != nil {
		if p.fatal == nil {
			p.fatal = fmt.Errorf("binding %s: %w", name, err)
		}
		return false
	}

	p.table.Enter(sym, b)
	return true
}

// use resolves a referenced name
func (p *pass) use(tok lexer.Token) {
	b, ok := p.table.LookName(tok.Lexeme)
	if !ok {
		p.addDiagnostic(UndefinedIdentifier, tok, "")
		return
	}
	b.Uses++
}

// sizeOf returns the slot size of a declared variable
func (p *pass) sizeOf(t lexer.TokenType, isRef, isObj bool) uint {
	if isRef || isObj {
		return p.r.opts.WordSize
	}
	return p.r.sizes[t]
}
