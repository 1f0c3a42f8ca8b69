package eqcore

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/nominal-types/eqcore/types"
)

// parseType reads one of the textual type expressions this CLI accepts
// and builds the corresponding types.Type. It is a small hand-rolled
// recursive-descent parser over a deliberately tiny surface syntax —
// this module has no expression/type AST of its own to convert from, so
// the CLI needs its own minimal concrete syntax just to let a user type
// a type on a command line. It mirrors, in miniature, the job a
// compiler's AST-to-type converter does — here the "AST" is this file's
// own tokenizer.
//
// Grammar (informal):
//
//	type    := factor ('|' factor)*
//	factor  := "any()" | "none()" | "dynamic()" | "atom()" | "'" IDENT "'"
//	         | "number()" | "float()" | "pid()" | "port()" | "reference()"
//	         | "binary()" | "tuple()" | "fun()" | "[]"
//	         | "{" type ("," type)* "}"
//	         | "[" type "]"
//	         | "#" IDENT "{}"
//	         | IDENT
func parseType(src string) (types.Type, error) {
	p := &typeParser{toks: tokenize(src)}
	t, err := p.union()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("eqcore: unexpected trailing input at %q", strings.Join(p.toks[p.pos:], ""))
	}
	return t, nil
}

type typeParser struct {
	toks []string
	pos  int
}

func (p *typeParser) peek() string {
	if p.pos >= len(p.toks) {
		return ""
	}
	return p.toks[p.pos]
}

func (p *typeParser) next() string {
	t := p.peek()
	p.pos++
	return t
}

func (p *typeParser) expect(tok string) error {
	if p.peek() != tok {
		return fmt.Errorf("eqcore: expected %q, got %q", tok, p.peek())
	}
	p.pos++
	return nil
}

func (p *typeParser) union() (types.Type, error) {
	first, err := p.factor()
	if err != nil {
		return nil, err
	}
	elems := []types.Type{first}
	for p.peek() == "|" {
		p.next()
		next, err := p.factor()
		if err != nil {
			return nil, err
		}
		elems = append(elems, next)
	}
	if len(elems) == 1 {
		return elems[0], nil
	}
	return types.NewUnion(elems), nil
}

func (p *typeParser) factor() (types.Type, error) {
	tok := p.peek()
	switch {
	case tok == "":
		return nil, fmt.Errorf("eqcore: unexpected end of input")
	case tok == "'":
		p.next()
		name := p.next()
		if err := p.expect("'"); err != nil {
			return nil, err
		}
		return types.AtomLit{Value: name}, nil
	case tok == "{":
		p.next()
		var elems []types.Type
		if p.peek() != "}" {
			for {
				e, err := p.union()
				if err != nil {
					return nil, err
				}
				elems = append(elems, e)
				if p.peek() != "," {
					break
				}
				p.next()
			}
		}
		if err := p.expect("}"); err != nil {
			return nil, err
		}
		return types.Tuple{Elems: elems}, nil
	case tok == "[":
		p.next()
		if p.peek() == "]" {
			p.next()
			return types.Nil{}, nil
		}
		elem, err := p.union()
		if err != nil {
			return nil, err
		}
		if err := p.expect("]"); err != nil {
			return nil, err
		}
		return types.List{Elem: elem}, nil
	case tok == "#":
		p.next()
		name := p.next()
		if err := p.expect("{"); err != nil {
			return nil, err
		}
		if err := p.expect("}"); err != nil {
			return nil, err
		}
		return types.Record{Name: name}, nil
	case isIdent(tok):
		p.next()
		switch tok {
		case "any":
			return consumeUnit(p, types.Any{})
		case "none":
			return consumeUnit(p, types.None{})
		case "dynamic":
			return consumeUnit(p, types.Dynamic{})
		case "atom":
			return consumeUnit(p, types.Atom{})
		case "number":
			return consumeUnit(p, types.Number{})
		case "float":
			return consumeUnit(p, types.Float{})
		case "pid":
			return consumeUnit(p, types.Pid{})
		case "port":
			return consumeUnit(p, types.Port{})
		case "reference":
			return consumeUnit(p, types.Reference{})
		case "binary":
			return consumeUnit(p, types.Binary{})
		case "tuple":
			return consumeUnit(p, types.AnyTuple{})
		case "fun":
			return consumeUnit(p, types.AnyFun{})
		default:
			return types.Var{Name: tok}, nil
		}
	default:
		return nil, fmt.Errorf("eqcore: unexpected token %q", tok)
	}
}

// consumeUnit consumes an optional "()" suffix after a bare keyword,
// so both "any" and "any()" parse as the same nullary type.
func consumeUnit(p *typeParser, t types.Type) (types.Type, error) {
	if p.peek() == "(" {
		p.next()
		if err := p.expect(")"); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func isIdent(tok string) bool {
	if tok == "" {
		return false
	}
	for i, r := range tok {
		if i == 0 && !unicode.IsLetter(r) {
			return false
		}
		if i > 0 && !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// tokenize splits src into single-character punctuation tokens and
// maximal identifier runs, skipping whitespace.
func tokenize(src string) []string {
	var toks []string
	runes := []rune(src)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case strings.ContainsRune("{}[]()|,#'", r):
			toks = append(toks, string(r))
			i++
		default:
			j := i
			for j < len(runes) && !unicode.IsSpace(runes[j]) && !strings.ContainsRune("{}[]()|,#'", runes[j]) {
				j++
			}
			toks = append(toks, string(runes[i:j]))
			i = j
		}
	}
	return toks
}
