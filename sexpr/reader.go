package sexpr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnbalanced is returned when the input ends inside an open list or
// string.
var ErrUnbalanced = errors.New("unbalanced s-expression")

// ErrTrailingInput is returned by Read when text remains after the first
// complete expression.
var ErrTrailingInput = errors.New("trailing input after s-expression")

// Read parses exactly one s-expression from text.
func Read(text string) (any, error) {
	r := &reader{text: text}
	v, err := r.read()
	if err != nil {
		return nil, err
	}
	r.skipSpace()
	if r.pos < len(r.text) {
		return nil, fmt.Errorf("%w: %q", ErrTrailingInput, r.text[r.pos:])
	}
	tracer().Debugf("read s-expression %s", Print(v))
	return v, nil
}

type reader struct {
	text string
	pos  int
}

func (r *reader) skipSpace() {
	for r.pos < len(r.text) {
		ch := r.text[r.pos]
		if ch == ';' { // comment until end of line
			for r.pos < len(r.text) && r.text[r.pos] != '\n' {
				r.pos++
			}
			continue
		}
		if !isSpace(ch) {
			return
		}
		r.pos++
	}
}

// isSpace classifies ASCII whitespace only. The reader walks bytes, and a
// UTF-8 continuation byte must never be taken for whitespace, or multi-byte
// symbols would be split mid-rune.
func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func (r *reader) read() (any, error) {
	r.skipSpace()
	if r.pos >= len(r.text) {
		return nil, ErrUnbalanced
	}
	switch ch := r.text[r.pos]; ch {
	case '(':
		r.pos++
		return r.readList()
	case ')':
		return nil, fmt.Errorf("unexpected ')' at offset %d", r.pos)
	case '\'':
		r.pos++
		inner, err := r.read()
		if err != nil {
			return nil, err
		}
		return List(SymQuote, inner), nil
	case '`':
		r.pos++
		inner, err := r.read()
		if err != nil {
			return nil, err
		}
		return List(SymBackquote, inner), nil
	case ',':
		r.pos++
		inner, err := r.read()
		if err != nil {
			return nil, err
		}
		return List(SymUnquote, inner), nil
	case '"':
		return r.readString()
	default:
		return r.readAtom()
	}
}

func (r *reader) readList() (any, error) {
	var elems []any
	for {
		r.skipSpace()
		if r.pos >= len(r.text) {
			return nil, ErrUnbalanced
		}
		if r.text[r.pos] == ')' {
			r.pos++
			if elems == nil {
				return nil, nil // () is nil
			}
			return elems, nil
		}
		v, err := r.read()
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
}

func (r *reader) readString() (any, error) {
	start := r.pos
	r.pos++ // opening quote
	var sb strings.Builder
	for r.pos < len(r.text) {
		ch := r.text[r.pos]
		switch ch {
		case '"':
			r.pos++
			return sb.String(), nil
		case '\\':
			r.pos++
			if r.pos >= len(r.text) {
				return nil, ErrUnbalanced
			}
			switch esc := r.text[r.pos]; esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(esc)
			}
			r.pos++
		default:
			sb.WriteByte(ch)
			r.pos++
		}
	}
	return nil, fmt.Errorf("%w: string starting at offset %d", ErrUnbalanced, start)
}

func isDelimiter(ch byte) bool {
	return ch == '(' || ch == ')' || ch == '\'' || ch == '`' || ch == ',' ||
		ch == '"' || ch == ';' || isSpace(ch)
}

func (r *reader) readAtom() (any, error) {
	start := r.pos
	for r.pos < len(r.text) && !isDelimiter(r.text[r.pos]) {
		r.pos++
	}
	tok := r.text[start:r.pos]
	switch tok {
	case "nil":
		return nil, nil
	case "t":
		return true, nil
	}
	if n, err := strconv.Atoi(tok); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return f, nil
	}
	return Symbol(tok), nil
}
