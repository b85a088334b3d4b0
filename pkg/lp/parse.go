package lp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError reports a lexical or grammatical problem in an LP-format
// document, with the line and column of the offending token.
type ParseError struct {
	Line, Column int
	Message      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("lp: parse error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// section names recognized between "subject to" and "end".
const (
	secBounds  = "bounds"
	secBinary  = "binary"
	secBinary2 = "binaries"
	secGeneral = "general"
	secEnd     = "end"
)

// tokenizer splits an LP document into whitespace-delimited tokens,
// treating the operators <=, >=, = and the bare characters <, >, + and
// - as tokens of their own even when not surrounded by whitespace. It
// tracks line/column so errors can point at a location, mirroring the
// original format's `parser_stack`.
type tokenizer struct {
	r          *bufio.Reader
	line, col  int
	peeked     []rune
	peekedLine int
	peekedCol  int
	hasPeek    bool
}

func newTokenizer(r io.Reader) *tokenizer {
	return &tokenizer{r: bufio.NewReader(r), line: 1, col: 0}
}

func (t *tokenizer) readRune() (rune, bool) {
	ch, _, err := t.r.ReadRune()
	if err != nil {
		return 0, false
	}
	if ch == '\n' {
		t.line++
		t.col = 0
	} else {
		t.col++
	}
	return ch, true
}

func isOperatorChar(ch rune) bool {
	return ch == '<' || ch == '>' || ch == '='
}

func isTermChar(ch rune) bool {
	return ch == '+' || ch == '-'
}

// next returns the next token, its starting line/column, and whether a
// token was produced (false at end of input).
func (t *tokenizer) next() (string, int, int, bool) {
	// Skip whitespace and comments ('\' to end of line, as in most LP
	// dialects).
	for {
		ch, ok := t.readRune()
		if !ok {
			return "", 0, 0, false
		}
		if ch == '\\' {
			for {
				c2, ok2 := t.readRune()
				if !ok2 || c2 == '\n' {
					break
				}
			}
			continue
		}
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			continue
		}

		startLine, startCol := t.line, t.col

		if isOperatorChar(ch) {
			tok := string(ch)
			for {
				ch2, ok2 := t.peekRune()
				if ok2 && isOperatorChar(ch2) {
					t.readRune()
					tok += string(ch2)
					continue
				}
				break
			}
			return tok, startLine, startCol, true
		}

		if isTermChar(ch) {
			return string(ch), startLine, startCol, true
		}

		// General identifier/number token: runs until whitespace,
		// operator or +/-.
		var sb strings.Builder
		sb.WriteRune(ch)
		for {
			ch2, ok2 := t.peekRune()
			if !ok2 {
				break
			}
			if ch2 == ' ' || ch2 == '\t' || ch2 == '\r' || ch2 == '\n' ||
				isOperatorChar(ch2) || isTermChar(ch2) {
				break
			}
			t.readRune()
			sb.WriteRune(ch2)
		}
		return sb.String(), startLine, startCol, true
	}
}

func (t *tokenizer) peekRune() (rune, bool) {
	if t.hasPeek {
		if len(t.peeked) == 0 {
			return 0, false
		}
		return t.peeked[0], true
	}
	ch, _, err := t.r.ReadRune()
	if err != nil {
		return 0, false
	}
	_ = t.r.UnreadRune()
	return ch, true
}

func iequals(a, b string) bool {
	return strings.EqualFold(a, b)
}

// parser consumes tokens from a tokenizer and builds a Problem.
type parser struct {
	tok     *tokenizer
	lookTok string
	lookL   int
	lookC   int
	hasLook bool

	problem  Problem
	varIndex map[string]int
}

// ParseLP reads an LP-format document (objective sense, objective row,
// "subject to" constraints, optional "bounds"/"binary"/"general"
// sections, "end") and returns the corresponding Problem.
func ParseLP(r io.Reader) (*Problem, error) {
	p := &parser{tok: newTokenizer(r), varIndex: make(map[string]int)}

	sense, err := p.parseSense()
	if err != nil {
		return nil, err
	}
	p.problem.Sense = sense

	if err := p.parseObjective(); err != nil {
		return nil, err
	}

	if err := p.expectSubjectTo(); err != nil {
		return nil, err
	}

	section, err := p.parseConstraints()
	if err != nil {
		return nil, err
	}

	for section != secEnd {
		switch section {
		case secBounds:
			section, err = p.parseBounds()
		case secBinary, secBinary2:
			section, err = p.parseKindSection(Binary)
		case secGeneral:
			section, err = p.parseKindSection(General)
		default:
			return nil, p.errorf("unexpected section %q", section)
		}
		if err != nil {
			return nil, err
		}
	}

	p.finalizeObjective()

	return &p.problem, nil
}

func (p *parser) errorf(format string, args ...interface{}) error {
	line, col := p.lookL, p.lookC
	return &ParseError{Line: line, Column: col, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) peek() (string, bool) {
	if !p.hasLook {
		tok, l, c, ok := p.tok.next()
		if !ok {
			return "", false
		}
		p.lookTok, p.lookL, p.lookC, p.hasLook = tok, l, c, true
	}
	return p.lookTok, true
}

func (p *parser) pop() (string, bool) {
	tok, ok := p.peek()
	p.hasLook = false
	return tok, ok
}

func (p *parser) parseSense() (Sense, error) {
	tok, ok := p.pop()
	if !ok {
		return Minimize, p.errorf("empty document")
	}
	switch {
	case iequals(tok, "maximize") || iequals(tok, "max"):
		return Maximize, nil
	case iequals(tok, "minimize") || iequals(tok, "min"):
		return Minimize, nil
	default:
		return Minimize, p.errorf("expected maximize/minimize, got %q", tok)
	}
}

// variable interns a variable name and returns its column index.
func (p *parser) variable(name string) int {
	if idx, ok := p.varIndex[name]; ok {
		return idx
	}
	idx := len(p.problem.Variables)
	p.varIndex[name] = idx
	p.problem.Variables = append(p.problem.Variables, Variable{Name: name, Kind: Binary, Lo: 0, Hi: 1})
	return idx
}

// parseLinearExpr parses a signed sum of coefficient*variable terms
// until a terminator token (operator, section keyword or EOF) is seen.
// It returns the accumulated elements (merged by variable) and the
// constant term, and leaves the terminator unpopped.
func (p *parser) parseLinearExpr(terminators map[string]bool) ([]Element, float64, error) {
	var elems []Element
	var constant float64
	coeffByVar := make(map[int]int)
	order := make([]int, 0)

	sign := 1
	for {
		tok, ok := p.peek()
		if !ok {
			break
		}
		if terminators[strings.ToLower(tok)] {
			break
		}
		if isOperatorToken(tok) {
			break
		}

		switch tok {
		case "+":
			p.pop()
			continue
		case "-":
			p.pop()
			sign = -sign
			continue
		}

		p.pop()

		coeff := sign
		name := tok
		if n, err := strconv.ParseFloat(tok, 64); err == nil {
			// A bare number: either a constant term, or a coefficient
			// immediately followed by a variable name token.
			next, ok := p.peek()
			if ok && !terminators[strings.ToLower(next)] && !isOperatorToken(next) &&
				next != "+" && next != "-" {
				p.pop()
				coeff = sign * int(n)
				name = next
			} else {
				constant += float64(sign) * n
				sign = 1
				continue
			}
		}

		v := p.variable(name)
		if _, seen := coeffByVar[v]; !seen {
			order = append(order, v)
		}
		coeffByVar[v] += coeff
		sign = 1

		// Two terms must be separated by + or -.
		if next, ok := p.peek(); ok && !terminators[strings.ToLower(next)] &&
			!isOperatorToken(next) && next != "+" && next != "-" {
			return nil, 0, p.errorf("expected + or - before %q", next)
		}
	}

	for _, v := range order {
		elems = append(elems, Element{Coeff: coeffByVar[v], Var: v})
	}

	return elems, constant, nil
}

func isOperatorToken(tok string) bool {
	switch tok {
	case "<=", ">=", "=", "<", ">":
		return true
	default:
		return false
	}
}

var objectiveTerminators = map[string]bool{"subject": true, "st": true}

func (p *parser) parseObjective() error {
	if tok, ok := p.peek(); ok && strings.HasSuffix(tok, ":") {
		p.pop()
	}

	elems, constant, err := p.parseLinearExpr(objectiveTerminators)
	if err != nil {
		return err
	}

	n := len(p.problem.Variables)
	coeffs := make([]float64, n)
	for _, e := range elems {
		coeffs[e.Var] += float64(e.Coeff)
	}
	p.problem.Objective = Objective{Coefficients: coeffs, Constant: constant}
	return nil
}

// finalizeObjective extends the dense objective vector to cover
// variables that were only introduced later, in constraints or
// bounds/binary/general sections.
func (p *parser) finalizeObjective() {
	n := len(p.problem.Variables)
	if len(p.problem.Objective.Coefficients) < n {
		grown := make([]float64, n)
		copy(grown, p.problem.Objective.Coefficients)
		p.problem.Objective.Coefficients = grown
	}
}

func (p *parser) expectSubjectTo() error {
	tok, ok := p.pop()
	if !ok {
		return p.errorf("expected subject to / st")
	}
	if iequals(tok, "st") {
		return nil
	}
	if iequals(tok, "subject") {
		tok2, ok2 := p.pop()
		if !ok2 || !iequals(tok2, "to") {
			return p.errorf("expected 'to' after 'subject'")
		}
		return nil
	}
	return p.errorf("expected subject to / st, got %q", tok)
}

func toOp(tok string) (Op, bool) {
	switch tok {
	case "<=", "<":
		return OpLE, true
	case ">=", ">":
		return OpGE, true
	case "=":
		return OpEQ, true
	default:
		return OpEQ, false
	}
}

var constraintTerminators = map[string]bool{
	secBounds: true, secBinary: true, secBinary2: true, secGeneral: true, secEnd: true,
}

// parseConstraints reads zero or more "expr OP value" lines until a
// section keyword is seen, and returns that keyword.
func (p *parser) parseConstraints() (string, error) {
	for {
		tok, ok := p.peek()
		if !ok {
			return secEnd, nil
		}
		if constraintTerminators[strings.ToLower(tok)] {
			p.pop()
			return strings.ToLower(tok), nil
		}

		name := ""
		if strings.HasSuffix(tok, ":") {
			name = strings.TrimSuffix(tok, ":")
			p.pop()
		}

		elems, _, err := p.parseLinearExpr(constraintTerminators)
		if err != nil {
			return secEnd, err
		}

		opTok, ok := p.pop()
		if !ok {
			return secEnd, p.errorf("expected relational operator")
		}
		op, ok := toOp(opTok)
		if !ok {
			return secEnd, p.errorf("expected relational operator, got %q", opTok)
		}

		valTok, ok := p.pop()
		if !ok {
			return secEnd, p.errorf("expected right-hand side")
		}
		val, err := strconv.ParseFloat(valTok, 64)
		if err != nil {
			return secEnd, p.errorf("invalid right-hand side %q", valTok)
		}

		p.problem.Constraints = append(p.problem.Constraints, RawConstraint{
			Name:     name,
			Elements: elems,
			Op:       op,
			RHS:      int(val),
		})
	}
}

var boundsTerminators = map[string]bool{
	secBinary: true, secBinary2: true, secGeneral: true, secEnd: true,
}

// parseBounds reads "lo <= var <= hi", "var >= lo", "var <= hi" or
// "var = v" lines until the next section keyword.
func (p *parser) parseBounds() (string, error) {
	for {
		tok, ok := p.peek()
		if !ok {
			return secEnd, nil
		}
		if boundsTerminators[strings.ToLower(tok)] {
			p.pop()
			return strings.ToLower(tok), nil
		}

		first, _ := p.pop()

		if n, err := strconv.ParseFloat(first, 64); err == nil {
			opTok, ok := p.pop()
			if !ok {
				return secEnd, p.errorf("expected operator in bounds section")
			}
			op, ok := toOp(opTok)
			if !ok {
				return secEnd, p.errorf("expected operator, got %q", opTok)
			}
			varTok, ok := p.pop()
			if !ok {
				return secEnd, p.errorf("expected variable name")
			}
			v := p.variable(varTok)

			next, ok := p.peek()
			if ok && isOperatorToken(next) {
				op2Tok, _ := p.pop()
				op2, _ := toOp(op2Tok)
				hiTok, ok := p.pop()
				if !ok {
					return secEnd, p.errorf("expected upper bound")
				}
				hi, err := strconv.ParseFloat(hiTok, 64)
				if err != nil {
					return secEnd, p.errorf("invalid upper bound %q", hiTok)
				}
				p.setGeneralBound(v, int(n), int(hi))
				_ = op2
				continue
			}
			if op == OpLE {
				p.setGeneralBound(v, int(n), p.problem.Variables[v].Hi)
			} else {
				p.setGeneralBound(v, p.problem.Variables[v].Lo, int(n))
			}
			continue
		}

		v := p.variable(first)
		opTok, ok := p.pop()
		if !ok {
			return secEnd, p.errorf("expected operator in bounds section")
		}
		op, ok := toOp(opTok)
		if !ok {
			return secEnd, p.errorf("expected operator, got %q", opTok)
		}
		valTok, ok := p.pop()
		if !ok {
			return secEnd, p.errorf("expected bound value")
		}
		val, err := strconv.ParseFloat(valTok, 64)
		if err != nil {
			return secEnd, p.errorf("invalid bound value %q", valTok)
		}

		switch op {
		case OpLE:
			p.setGeneralBound(v, p.problem.Variables[v].Lo, int(val))
		case OpGE:
			p.setGeneralBound(v, int(val), p.problem.Variables[v].Hi)
		case OpEQ:
			p.setGeneralBound(v, int(val), int(val))
		}
	}
}

func (p *parser) setGeneralBound(v, lo, hi int) {
	p.problem.Variables[v].Kind = General
	p.problem.Variables[v].Lo = lo
	p.problem.Variables[v].Hi = hi
}

var kindTerminators = map[string]bool{
	secBinary: true, secBinary2: true, secGeneral: true, secBounds: true, secEnd: true,
}

// parseKindSection reads a whitespace-separated list of variable names
// and assigns them the given kind, until the next section keyword.
func (p *parser) parseKindSection(kind VariableKind) (string, error) {
	for {
		tok, ok := p.peek()
		if !ok {
			return secEnd, nil
		}
		if kindTerminators[strings.ToLower(tok)] {
			p.pop()
			return strings.ToLower(tok), nil
		}
		p.pop()
		v := p.variable(tok)
		p.problem.Variables[v].Kind = kind
		if kind == General && p.problem.Variables[v].Hi <= p.problem.Variables[v].Lo {
			p.problem.Variables[v].Hi = 1
		}
	}
}
