// Package parse parses JSON text into ir nodes.
package parse

import (
	"bytes"

	"github.com/signadot/jdom/ir"
	"github.com/signadot/jdom/minify"
	"github.com/signadot/jdom/token"
)

// Parse parses a JSON document into a node tree. Content trailing the
// top-level value is ignored unless RequireFull is given. On failure
// the returned error is a *SyntaxError locating the first offending
// byte.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.stripComments {
		d = minify.Minify(append([]byte(nil), d...))
	}
	p := &parser{d: d}
	root := &ir.Node{}
	i, err := p.value(root, token.Skip(d, 0))
	if err != nil {
		return nil, err
	}
	if pOpts.requireFull {
		i = token.Skip(d, i)
		if i < len(d) {
			return nil, p.errAt(i, "trailing content")
		}
	}
	return root, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	d []byte
}

func (p *parser) errAt(i int, msg string) error {
	return &SyntaxError{Offset: i, Pos: token.PosAt(p.d, i), Msg: msg}
}

func (p *parser) hasPrefix(i int, kw string) bool {
	return bytes.HasPrefix(p.d[min(i, len(p.d)):], []byte(kw))
}

// value parses one value at d[i] into at, selected by lookahead on the
// first significant character, and returns the index past it.
func (p *parser) value(at *ir.Node, i int) (int, error) {
	d := p.d
	switch {
	case p.hasPrefix(i, "null"):
		at.Type = ir.NullType
		return i + 4, nil
	case p.hasPrefix(i, "false"):
		at.Type = ir.BoolType
		return i + 5, nil
	case p.hasPrefix(i, "true"):
		at.Type = ir.BoolType
		at.Bool = true
		return i + 4, nil
	}
	if i < len(d) {
		switch {
		case d[i] == '"':
			return p.str(at, i)
		case d[i] == '-' || (d[i] >= '0' && d[i] <= '9'):
			f, j := token.ScanNumber(d, i)
			ir.FromFloatAt(at, f)
			return j, nil
		case d[i] == '[':
			return p.array(at, i)
		case d[i] == '{':
			return p.object(at, i)
		}
	}
	return 0, p.errAt(i, "invalid value")
}

func (p *parser) str(at *ir.Node, i int) (int, error) {
	s, j, err := token.ScanString(p.d, i)
	if err != nil {
		return 0, p.errAt(i, "invalid string")
	}
	ir.FromStringAt(at, s)
	return j, nil
}

func (p *parser) array(at *ir.Node, i int) (int, error) {
	d := p.d
	at.Type = ir.ArrayType
	i = token.Skip(d, i+1)
	if i < len(d) && d[i] == ']' {
		return i + 1, nil
	}
	for {
		child := &ir.Node{}
		j, err := p.value(child, token.Skip(d, i))
		if err != nil {
			return 0, err
		}
		at.Append(child)
		i = token.Skip(d, j)
		if i < len(d) && d[i] == ',' {
			i++
			continue
		}
		break
	}
	if i < len(d) && d[i] == ']' {
		return i + 1, nil
	}
	return 0, p.errAt(i, "expected ',' or ']'")
}

func (p *parser) object(at *ir.Node, i int) (int, error) {
	d := p.d
	at.Type = ir.ObjectType
	i = token.Skip(d, i+1)
	if i < len(d) && d[i] == '}' {
		return i + 1, nil
	}
	for {
		i = token.Skip(d, i)
		key, j, err := token.ScanString(d, i)
		if err != nil {
			return 0, p.errAt(i, "expected member name")
		}
		i = token.Skip(d, j)
		if i >= len(d) || d[i] != ':' {
			return 0, p.errAt(i, "expected ':'")
		}
		child := &ir.Node{Key: key}
		j, err = p.value(child, token.Skip(d, i+1))
		if err != nil {
			return 0, err
		}
		at.Append(child)
		i = token.Skip(d, j)
		if i < len(d) && d[i] == ',' {
			i++
			continue
		}
		break
	}
	if i < len(d) && d[i] == '}' {
		return i + 1, nil
	}
	return 0, p.errAt(i, "expected ',' or '}'")
}
