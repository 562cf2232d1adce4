package parse

import (
	"strconv"
	"strings"

	"github.com/aretext/messageformat/ast"
)

// parsePluralBody parses the `offset:N? (KEY {child})+` grammar following
// `{name, plural,` or `{name, selectordinal,` (spec.md §4.1, §4.5). The
// opening `{` and `name, plural,`/`name, selectordinal,` prefix are already
// consumed; p is positioned just after the TYPE token's trailing comma.
func (p *parser) parsePluralBody(name string, isOrdinal bool, start, sl, sc int, depth int) (ast.Element, error) {
	plural := ast.Plural{Name: name, IsOrdinal: isOrdinal}

	p.skipSpaces()
	if p.matchLiteral("offset:") {
		p.skipSpaces()
		val, err := p.readSignedNumber()
		if err != nil {
			return nil, &Error{Span: p.here(), Kind: KindBadOffset, Message: err.Error()}
		}
		plural.HasOffset = true
		plural.Offset = val
		p.skipSpaces()
	}

	hasOther := false
	for {
		p.skipSpaces()
		if p.peek() == '}' {
			break
		}
		c, err := p.parseCase(depth, true, true)
		if err != nil {
			return nil, err
		}
		if !c.IsExact && c.Key == "other" {
			hasOther = true
		}
		plural.Cases = append(plural.Cases, c)
	}
	if !hasOther {
		kind := "plural"
		if isOrdinal {
			kind = "selectordinal"
		}
		return nil, &Error{Span: p.spanFrom(start, sl, sc), Kind: KindMissingOther, Message: kind + " block has no 'other' case"}
	}
	p.advance() // consume closing '}'
	plural.Sp = p.spanFrom(start, sl, sc)
	return plural, nil
}

// parseSelectBody parses the `(KEY {child})+` grammar following
// `{name, select,`.
func (p *parser) parseSelectBody(name string, start, sl, sc int, depth int, inPlural bool) (ast.Element, error) {
	sel := ast.Select{Name: name}
	hasOther := false
	for {
		p.skipSpaces()
		if p.peek() == '}' {
			break
		}
		c, err := p.parseCase(depth, false, inPlural)
		if err != nil {
			return nil, err
		}
		if c.Key == "other" {
			hasOther = true
		}
		sel.Cases = append(sel.Cases, c)
	}
	if !hasOther {
		return nil, &Error{Span: p.spanFrom(start, sl, sc), Kind: KindMissingOther, Message: "select block has no 'other' case"}
	}
	p.advance()
	sel.Sp = p.spanFrom(start, sl, sc)
	return sel, nil
}

// parseCase parses one `KEY {child-pattern}` arm. allowExact permits the
// `=<number>` exact-match form (plural/ordinal only).
func (p *parser) parseCase(depth int, allowExact bool, inPlural bool) (ast.Case, error) {
	start, sl, sc := p.pos, p.line, p.col
	var key string
	var isExact bool
	var exactVal float64

	if allowExact && p.peek() == '=' {
		p.advance()
		numStart := p.pos
		val, err := p.readSignedNumber()
		if err != nil {
			return ast.Case{}, &Error{Span: p.here(), Kind: KindMismatchedBrace, Message: "malformed exact-match key"}
		}
		isExact = true
		exactVal = val
		key = "=" + string(p.src[numStart:p.pos])
	} else {
		k, err := p.readName()
		if err != nil {
			return ast.Case{}, err
		}
		key = k
	}
	p.skipSpaces()
	if p.peek() != '{' {
		return ast.Case{}, &Error{Span: p.here(), Kind: KindMismatchedBrace, Message: "expected '{' to open case body"}
	}
	p.advance()
	child, err := p.parseMessage(inPlural, depth+1)
	if err != nil {
		return ast.Case{}, err
	}
	if p.peek() != '}' {
		return ast.Case{}, &Error{Span: p.here(), Kind: KindMismatchedBrace, Message: "unterminated case body"}
	}
	p.advance()
	return ast.Case{
		Key: key, IsExact: isExact, ExactValue: exactVal,
		Child: child, Sp: p.spanFrom(start, sl, sc),
	}, nil
}

func (p *parser) matchLiteral(s string) bool {
	runes := []rune(s)
	for i, r := range runes {
		if p.peekAt(i) != r {
			return false
		}
	}
	for range runes {
		p.advance()
	}
	return true
}

func (p *parser) readSignedNumber() (float64, error) {
	start := p.pos
	if p.peek() == '+' || p.peek() == '-' {
		p.advance()
	}
	digitsStart := p.pos
	for !p.eof() && isDigitRune(p.peek()) {
		p.advance()
	}
	if p.peek() == '.' {
		p.advance()
		for !p.eof() && isDigitRune(p.peek()) {
			p.advance()
		}
	}
	if p.pos == digitsStart {
		return 0, &Error{Span: p.here(), Kind: KindBadOffset, Message: "expected a number"}
	}
	text := string(p.src[start:p.pos])
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func isDigitRune(r rune) bool { return r >= '0' && r <= '9' }

// tryParseTag attempts to parse a rich-text `<name>...</name>` element
// starting at `<`. On a structural mismatch it rewinds and returns
// ok=false so the caller treats `<` as a literal character, per spec.md
// §4.1 ("if the next non-space character is a letter and the construct
// closes with a matching </NAME>").
func (p *parser) tryParseTag(depth int, inPlural bool) (ast.Element, bool, error) {
	checkpoint := *p
	start, sl, sc := p.pos, p.line, p.col
	p.advance() // consume '<'
	p.skipSpaces()

	if !isTagNameStart(p.peek()) {
		*p = checkpoint
		return nil, false, nil
	}
	name, err := p.readName()
	if err != nil {
		*p = checkpoint
		return nil, false, nil
	}
	if p.peek() != '>' {
		*p = checkpoint
		return nil, false, nil
	}
	p.advance() // consume '>'

	child, ok := p.scanTagBody(name, depth, inPlural)
	if !ok {
		*p = checkpoint
		return nil, false, nil
	}
	return ast.Tag{Name: name, Child: child, Sp: p.spanFrom(start, sl, sc)}, true, nil
}

// scanTagBody parses the tag's inner message, recursively invoking
// tryParseTag for any nested `<...>` construct (same-named or not) so it
// becomes a proper nested ast.Tag rather than literal markup text (spec.md
// §4.1: "the parser emits a Tag element whose child is the recursive parse
// of the inner substring"). Because a same-named inner tag is fully
// consumed, open-to-close, by its own recursive scanTagBody call before
// control returns here, the first bare `</name>` this loop sees is always
// this tag's own close tag.
func (p *parser) scanTagBody(name string, depth int, inPlural bool) (ast.Message, bool) {
	if depth > maxDepth {
		return nil, false
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
		if p.peek() == '<' && p.peekAt(1) == '/' {
			save := *p
			p.advance()
			p.advance()
			closeName, err := p.readName()
			if err == nil && closeName == name && p.peek() == '>' {
				p.advance()
				flush()
				return msg, true
			}
			*p = save
		}
		switch p.peek() {
		case '\'':
			if err := p.readQuoted(&lit); err != nil {
				return nil, false
			}
			continue
		case '#':
			if inPlural {
				flush()
				s, sl, sc := p.pos, p.line, p.col
				p.advance()
				msg = append(msg, ast.Pound{Sp: p.spanFrom(s, sl, sc)})
				continue
			}
		case '{':
			flush()
			elem, err := p.parsePlaceholder(depth+1, inPlural)
			if err != nil {
				return nil, false
			}
			msg = append(msg, elem)
			litStart, litLine, litCol = p.pos, p.line, p.col
			continue
		case '<':
			if !p.ignoreTag {
				tag, ok, err := p.tryParseTag(depth+1, inPlural)
				if err != nil {
					return nil, false
				}
				if ok {
					flush()
					msg = append(msg, tag)
					litStart, litLine, litCol = p.pos, p.line, p.col
					continue
				}
			}
		}
		lit.WriteRune(p.advance())
	}
	return nil, false
}

func isTagNameStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
