// Package parse implements the hand-written recursive-descent pattern
// parser (spec.md §4.1): literals with quote-escaping, balanced-brace
// placeholder parsing, the plural/ordinal/select case grammar including the
// offset rule, rich-text tag recognition, and style/skeleton resolution for
// number and date/time placeholders. Skeletons are fully resolved against a
// locale at parse time so a cached AST never reparses one.
package parse

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aretext/messageformat/ast"
	"github.com/aretext/messageformat/locale"
	"github.com/aretext/messageformat/span"
)

// maxDepth bounds plural/select/tag nesting (spec.md §5: "An implementation
// may bound recursion depth defensively; when a bound is imposed, exceeding
// it is a parse-time error").
const maxDepth = 100

// Parse parses a complete pattern into a Message. loc resolves any `j`
// locale-hour-cycle skeleton fields and is otherwise only consulted at
// parse time, never retained. ignoreTag disables `<...>` tag recognition
// (used by format_html, spec.md §6).
func Parse(pattern string, loc *locale.Data, ignoreTag bool) (ast.Message, error) {
	p := &parser{src: []rune(pattern), loc: loc, ignoreTag: ignoreTag}
	msg, err := p.parseMessage(false, 0)
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.src) {
		return nil, &Error{Span: p.here(), Kind: KindMismatchedBrace, Message: "unexpected '}'"}
	}
	return msg, nil
}

type parser struct {
	src       []rune
	pos       int
	line      int
	col       int
	loc       *locale.Data
	ignoreTag bool
}

func (p *parser) here() span.Span {
	return span.Span{Start: p.pos, End: p.pos, Line: p.line + 1, Column: p.col + 1}
}

func (p *parser) spanFrom(start int, startLine, startCol int) span.Span {
	return span.Span{Start: start, End: p.pos, Line: startLine + 1, Column: startCol + 1}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) peekAt(offset int) rune {
	i := p.pos + offset
	if i < 0 || i >= len(p.src) {
		return 0
	}
	return p.src[i]
}

func (p *parser) advance() rune {
	r := p.src[p.pos]
	p.pos++
	if r == '\n' {
		p.line++
		p.col = 0
	} else {
		p.col++
	}
	return r
}

// parseMessage parses a sequence of elements until EOF, an unescaped `}`
// belonging to an enclosing construct, or (inside a tag body) the matching
// close tag. inPlural controls whether a bare `#` is the distinguished
// Pound element or an ordinary literal character.
func (p *parser) parseMessage(inPlural bool, depth int) (ast.Message, error) {
	if depth > maxDepth {
		return nil, &Error{Span: p.here(), Kind: KindRecursionLimit}
	}
	var msg ast.Message
	var lit strings.Builder
	litStart, litLine, litCol := p.pos, p.line, p.col

	flush := func() {
		if lit.Len() > 0 {
			msg = append(msg, ast.Literal{Text: lit.String(), Sp: p.spanFrom(litStart, litLine, litCol)})
			lit.Reset()
		}
	}

	for !p.eof() {
		ch := p.peek()
		switch ch {
		case '}':
			flush()
			return msg, nil
		case '\'':
			if err := p.readQuoted(&lit); err != nil {
				return nil, err
			}
		case '#':
			if inPlural {
				flush()
				start, sl, sc := p.pos, p.line, p.col
				p.advance()
				msg = append(msg, ast.Pound{Sp: p.spanFrom(start, sl, sc)})
			} else {
				lit.WriteRune(p.advance())
			}
		case '{':
			flush()
			elem, err := p.parsePlaceholder(depth, inPlural)
			if err != nil {
				return nil, err
			}
			msg = append(msg, elem)
			litStart, litLine, litCol = p.pos, p.line, p.col
		case '<':
			if p.ignoreTag {
				lit.WriteRune(p.advance())
				continue
			}
			tag, ok, err := p.tryParseTag(depth, inPlural)
			if err != nil {
				return nil, err
			}
			if ok {
				flush()
				msg = append(msg, tag)
				litStart, litLine, litCol = p.pos, p.line, p.col
			} else {
				lit.WriteRune(p.advance())
			}
		default:
			lit.WriteRune(p.advance())
		}
	}
	flush()
	return msg, nil
}

// readQuoted implements spec.md §4.1's escape rules: `''` is a literal `'`;
// `'{`, `'}`, `'#` open a quoted span running to the next `'`, inside which
// `{`, `}`, `#` are literal.
func (p *parser) readQuoted(lit *strings.Builder) error {
	start := p.pos
	p.advance() // consume opening '
	if p.peek() == '\'' {
		p.advance()
		lit.WriteRune('\'')
		return nil
	}
	switch p.peek() {
	case '{', '}', '#':
	default:
		// A bare apostrophe with no special meaning: literal.
		lit.WriteRune('\'')
		return nil
	}
	for {
		if p.eof() {
			return &Error{Span: span.Span{Start: start, End: p.pos}, Kind: KindUnterminatedQuote}
		}
		if p.peek() == '\'' {
			p.advance()
			return nil
		}
		lit.WriteRune(p.advance())
	}
}

// parsePlaceholder parses `{` NAME (`,` TYPE (`,` STYLE-OR-ARGS)?)? `}`,
// assuming the opening `{` has not yet been consumed.
func (p *parser) parsePlaceholder(depth int, inPlural bool) (ast.Element, error) {
	start, sl, sc := p.pos, p.line, p.col
	p.advance() // consume '{'

	name, err := p.readName()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()

	if p.peek() == '}' {
		p.advance()
		return ast.Argument{Name: name, Sp: p.spanFrom(start, sl, sc)}, nil
	}
	if p.peek() != ',' {
		return nil, &Error{Span: p.here(), Kind: KindMismatchedBrace, Message: "expected ',' or '}'"}
	}
	p.advance() // consume ','
	p.skipSpaces()

	typeTok, err := p.readName()
	if err != nil {
		return nil, err
	}
	lowerType := cases.Lower(language.Und).String(typeTok)
	p.skipSpaces()

	switch lowerType {
	case "plural", "selectordinal", "select":
		if p.peek() != ',' {
			return nil, &Error{Span: p.here(), Kind: KindMismatchedBrace, Message: "expected ',' after " + lowerType}
		}
		p.advance() // consume ','
		if lowerType == "select" {
			return p.parseSelectBody(name, start, sl, sc, depth, inPlural)
		}
		return p.parsePluralBody(name, lowerType == "selectordinal", start, sl, sc, depth)
	}

	var rawArgs string
	if p.peek() == ',' {
		p.advance()
		p.skipSpaces()
		rawArgs, err = p.readBalanced()
		if err != nil {
			return nil, err
		}
	}
	if p.peek() != '}' {
		return nil, &Error{Span: p.here(), Kind: KindMismatchedBrace, Message: "expected '}'"}
	}
	p.advance()
	sp := p.spanFrom(start, sl, sc)

	switch lowerType {
	case "number":
		return p.buildNumber(name, rawArgs, sp)
	case "date":
		return p.buildDateTime(name, ast.KindDate, rawArgs, sp)
	case "time":
		return p.buildDateTime(name, ast.KindTime, rawArgs, sp)
	case "datetime":
		return p.buildDateTime(name, ast.KindDateTime, rawArgs, sp)
	case "daterange":
		return p.buildDateRange(name, rawArgs, sp)
	case "numberrange":
		return p.buildNumberRange(name, rawArgs, sp)
	case "list":
		return p.buildList(name, rawArgs, sp)
	case "relativetime":
		return p.buildRelativeTime(name, rawArgs, sp)
	case "duration":
		return p.buildDuration(name, rawArgs, sp)
	default:
		return p.buildCustom(name, typeTok, rawArgs, sp)
	}
}

// readBalanced reads the STYLE-OR-ARGS substring up to (not including) the
// `}` that closes the enclosing placeholder, counting nested `{`/`}` pairs.
// Quote-escaping isn't re-applied here: style/skeleton/template text is
// captured and handed to a sub-parser (or used verbatim) as-is.
func (p *parser) readBalanced() (string, error) {
	start := p.pos
	depth := 0
	for {
		if p.eof() {
			return "", &Error{Span: span.Span{Start: start, End: p.pos}, Kind: KindMismatchedBrace, Message: "unterminated placeholder"}
		}
		switch p.peek() {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return string(p.src[start:p.pos]), nil
			}
			depth--
		}
		p.advance()
	}
}

func (p *parser) readName() (string, error) {
	start := p.pos
	for !p.eof() {
		r := p.peek()
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.' {
			p.advance()
			continue
		}
		break
	}
	if p.pos == start {
		return "", &Error{Span: p.here(), Kind: KindMismatchedBrace, Message: "expected a name"}
	}
	return string(p.src[start:p.pos]), nil
}

func (p *parser) skipSpaces() {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.advance()
	}
}

// splitTopLevelCommas splits s on commas that aren't nested inside `{...}`.
func splitTopLevelCommas(s string) []string {
	var parts []string
	depth := 0
	start := 0
	runes := []rune(s)
	for i, r := range runes {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(string(runes[start:i])))
				start = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(string(runes[start:])))
	return parts
}
