package saf

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// The composition column is stored as a dict-literal string, for example
// {'Aromatics': 0.12, 'Paraffins': 0.70, 'Naphthenes': 0.18}. Earlier
// tooling decoded it with a general-purpose expression evaluator, which
// is an arbitrary-code-execution hazard on stored data. ParseLiteral is
// the strict replacement: it accepts literal mappings, sequences,
// strings (single- or double-quoted) and numbers, and nothing else.

// ParseLiteral decodes a literal-structure string. The result is one of
// map[string]any, []any, string or float64.
func ParseLiteral(s string) (any, error) {
	p := &literalParser{input: s}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("trailing data at offset %d", p.pos)
	}
	return v, nil
}

// ParseComposition decodes a composition column value: a mapping from
// chemical component name to numeric proportion. Any other literal
// shape is an error.
func ParseComposition(s string) (map[string]float64, error) {
	v, err := ParseLiteral(s)
	if err != nil {
		return nil, fmt.Errorf("parse composition: %w", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("composition is %T, want a mapping", v)
	}
	out := make(map[string]float64, len(m))
	for k, raw := range m {
		n, ok := raw.(float64)
		if !ok {
			return nil, fmt.Errorf("composition value for %q is %T, want a number", k, raw)
		}
		out[k] = n
	}
	return out, nil
}

// FormatComposition renders a composition mapping back into the stored
// dict-literal form, components in sorted order so output is stable.
// Round-trips through ParseComposition.
func FormatComposition(m map[string]float64) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Backslashes must be escaped before quotes so escapes themselves
	// round-trip.
	escaper := strings.NewReplacer(`\`, `\\`, `'`, `\'`)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "'%s': %s", escaper.Replace(k),
			strconv.FormatFloat(m[k], 'g', -1, 64))
	}
	b.WriteByte('}')
	return b.String()
}

type literalParser struct {
	input string
	pos   int
}

func (p *literalParser) skipSpace() {
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
}

func (p *literalParser) peek() (byte, bool) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *literalParser) parseValue() (any, error) {
	c, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("unexpected end of input at offset %d", p.pos)
	}
	switch {
	case c == '{':
		return p.parseMapping()
	case c == '[':
		return p.parseSequence()
	case c == '\'' || c == '"':
		return p.parseString()
	case c == '-' || c == '+' || c >= '0' && c <= '9' || c == '.':
		return p.parseNumber()
	default:
		return nil, fmt.Errorf("unexpected character %q at offset %d", c, p.pos)
	}
}

func (p *literalParser) parseMapping() (map[string]any, error) {
	p.pos++ // consume '{'
	m := make(map[string]any)
	for {
		c, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("unterminated mapping at offset %d", p.pos)
		}
		if c == '}' {
			p.pos++
			return m, nil
		}
		if c != '\'' && c != '"' {
			return nil, fmt.Errorf("mapping key at offset %d must be a string", p.pos)
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}
		c, ok = p.peek()
		if !ok || c != ':' {
			return nil, fmt.Errorf("expected ':' after key %q at offset %d", key, p.pos)
		}
		p.pos++
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		m[key] = val

		c, ok = p.peek()
		if !ok {
			return nil, fmt.Errorf("unterminated mapping at offset %d", p.pos)
		}
		switch c {
		case ',':
			p.pos++ // trailing comma before '}' is fine
		case '}':
		default:
			return nil, fmt.Errorf("expected ',' or '}' at offset %d, got %q", p.pos, c)
		}
	}
}

func (p *literalParser) parseSequence() ([]any, error) {
	p.pos++ // consume '['
	var seq []any
	for {
		c, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("unterminated sequence at offset %d", p.pos)
		}
		if c == ']' {
			p.pos++
			return seq, nil
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		seq = append(seq, val)

		c, ok = p.peek()
		if !ok {
			return nil, fmt.Errorf("unterminated sequence at offset %d", p.pos)
		}
		switch c {
		case ',':
			p.pos++
		case ']':
		default:
			return nil, fmt.Errorf("expected ',' or ']' at offset %d, got %q", p.pos, c)
		}
	}
}

func (p *literalParser) parseString() (string, error) {
	quote := p.input[p.pos]
	p.pos++
	var b strings.Builder
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		switch c {
		case quote:
			p.pos++
			return b.String(), nil
		case '\\':
			if p.pos+1 >= len(p.input) {
				return "", fmt.Errorf("dangling escape at offset %d", p.pos)
			}
			next := p.input[p.pos+1]
			switch next {
			case '\'', '"', '\\':
				b.WriteByte(next)
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				return "", fmt.Errorf("unsupported escape \\%c at offset %d", next, p.pos)
			}
			p.pos += 2
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", fmt.Errorf("unterminated string at offset %d", p.pos)
}

func (p *literalParser) parseNumber() (float64, error) {
	start := p.pos
	if c := p.input[p.pos]; c == '-' || c == '+' {
		p.pos++
	}
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c >= '0' && c <= '9' || c == '.' || c == 'e' || c == 'E' {
			p.pos++
			continue
		}
		if (c == '-' || c == '+') && p.pos > start {
			// exponent sign only
			prev := p.input[p.pos-1]
			if prev == 'e' || prev == 'E' {
				p.pos++
				continue
			}
		}
		break
	}
	text := p.input[start:p.pos]
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q at offset %d", text, start)
	}
	return n, nil
}
