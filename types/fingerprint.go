package types

import (
	"fmt"
	"sort"
	"strings"
)

// Fingerprint produces a canonical structural string key for a Type. It
// is used both as the subtyping memo-set key and to
// canonicalize Union element ordering so that two structurally
// equal sets compare == as strings regardless of construction order.
// (NewShapeMap orders props by Key instead.)
//
// Fingerprint does not expand Remote or Opaque bodies — it is a syntactic
// key over the type as written, not its semantic expansion. Two distinct
// Remote aliases that happen to expand to the same body get distinct
// fingerprints, which is correct: the memo-set keys pairs of types as
// they recur through subType, not their unfoldings.
func Fingerprint(t Type) string {
	var b strings.Builder
	writeFingerprint(&b, t)
	return b.String()
}

func writeFingerprint(b *strings.Builder, t Type) {
	switch v := t.(type) {
	case Any:
		b.WriteString("any")
	case None:
		b.WriteString("none")
	case Dynamic:
		b.WriteString("dynamic")
	case Atom:
		b.WriteString("atom")
	case AtomLit:
		fmt.Fprintf(b, "atomlit(%q)", v.Value)
	case Number:
		b.WriteString("number")
	case Float:
		b.WriteString("float")
	case Pid:
		b.WriteString("pid")
	case Port:
		b.WriteString("port")
	case Reference:
		b.WriteString("reference")
	case Binary:
		b.WriteString("binary")
	case AnyTuple:
		b.WriteString("anytuple")
	case Tuple:
		b.WriteString("tuple(")
		for i, e := range v.Elems {
			if i > 0 {
				b.WriteByte(',')
			}
			writeFingerprint(b, e)
		}
		b.WriteByte(')')
	case Nil:
		b.WriteString("nil")
	case List:
		b.WriteString("list(")
		writeFingerprint(b, v.Elem)
		b.WriteByte(')')
	case AnyFun:
		b.WriteString("anyfun")
	case Fun:
		b.WriteString("fun(")
		b.WriteString(strings.Join(v.Forall, ","))
		b.WriteString(";")
		for i, a := range v.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			writeFingerprint(b, a)
		}
		b.WriteString(";")
		writeFingerprint(b, v.Result)
		b.WriteByte(')')
	case Record:
		fmt.Fprintf(b, "record(%s,%s)", v.Module, v.Name)
	case RefinedRecord:
		b.WriteString("refined(")
		writeFingerprint(b, v.Record)
		for _, f := range v.Fields {
			fmt.Fprintf(b, ",%s=", f.Name)
			writeFingerprint(b, f.Type)
		}
		b.WriteByte(')')
	case DictMap:
		b.WriteString("dict(")
		writeFingerprint(b, v.Key)
		b.WriteByte(',')
		writeFingerprint(b, v.Value)
		b.WriteByte(')')
	case ShapeMap:
		b.WriteString("shape(")
		for i, p := range v.Props {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(b, "%s:%v:", p.Key, p.Required)
			writeFingerprint(b, p.Value)
		}
		b.WriteByte(')')
	case Union:
		b.WriteString("union(")
		for i, e := range v.Elems {
			if i > 0 {
				b.WriteByte(',')
			}
			writeFingerprint(b, e)
		}
		b.WriteByte(')')
	case Opaque:
		fmt.Fprintf(b, "opaque(%s", v.ID)
		for _, a := range v.Args {
			b.WriteByte(',')
			writeFingerprint(b, a)
		}
		b.WriteByte(')')
	case Remote:
		fmt.Fprintf(b, "remote(%s", v.ID)
		for _, a := range v.Args {
			b.WriteByte(',')
			writeFingerprint(b, a)
		}
		b.WriteByte(')')
	case Var:
		fmt.Fprintf(b, "var(%s)", v.Name)
	default:
		panic(fmt.Sprintf("types: unreachable type variant in Fingerprint: %T", t))
	}
}

// Equal reports whether two types are structurally identical as written
// (not semantically equivalent — see subtype.Eqv for that).
func Equal(a, b Type) bool {
	return Fingerprint(a) == Fingerprint(b)
}

// NewUnion builds a canonical Union from a list of alternatives: it
// flattens nested unions, drops None, deduplicates by Fingerprint, and
// sorts the result so construction order never affects equality. An
// empty result collapses to None; a singleton result collapses to its
// one element.
func NewUnion(ts []Type) Type {
	flat := make([]Type, 0, len(ts))
	var flatten func(Type)
	flatten = func(t Type) {
		switch v := t.(type) {
		case Union:
			for _, e := range v.Elems {
				flatten(e)
			}
		case None:
			// drop
		default:
			flat = append(flat, t)
		}
	}
	for _, t := range ts {
		flatten(t)
	}

	seen := make(map[string]bool, len(flat))
	dedup := make([]Type, 0, len(flat))
	for _, t := range flat {
		fp := Fingerprint(t)
		if !seen[fp] {
			seen[fp] = true
			dedup = append(dedup, t)
		}
	}

	sort.Slice(dedup, func(i, j int) bool {
		return Fingerprint(dedup[i]) < Fingerprint(dedup[j])
	})

	switch len(dedup) {
	case 0:
		return None{}
	case 1:
		return dedup[0]
	default:
		return Union{Elems: dedup}
	}
}

// NewShapeMap builds a ShapeMap with its properties canonically sorted
// by key, mirroring the ordering discipline NewUnion applies to unions.
func NewShapeMap(props []ShapeProp) Type {
	sorted := make([]ShapeProp, len(props))
	copy(sorted, props)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
	return ShapeMap{Props: sorted}
}
