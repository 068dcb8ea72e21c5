package schema

import (
	"fmt"
	"strings"

	sw "github.com/reoring/skemawire"
)

// Describe renders a one-line human-readable summary of node's shape,
// e.g. "object{a:string, b:number?}". It is the codec-side analogue of
// the sibling validation library's JSONSchema() projection: every schema
// type answers a projection method, but this one is meant for debugging a
// fingerprint mismatch or logging a schema at startup, not for producing
// a JSON Schema document.
func Describe(node sw.Node) string {
	var b strings.Builder
	describe(&b, node)
	return b.String()
}

func describe(b *strings.Builder, node sw.Node) {
	switch dn := node.(type) {
	case sw.DecoratorNode:
		switch node.Kind() {
		case sw.KindOptional:
			describe(b, dn.Unwrap())
			b.WriteString("?")
		case sw.KindNullable:
			describe(b, dn.Unwrap())
			b.WriteString("|null")
		default:
			describe(b, dn.Unwrap())
		}
		return
	case sw.LazyNode:
		b.WriteString("lazy(...)")
		return
	}

	switch node.Kind() {
	case sw.KindObject:
		b.WriteString("object{")
		for i, f := range node.(sw.ObjectNode).Fields() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Name)
			b.WriteString(":")
			describe(b, f.Schema)
		}
		b.WriteString("}")
	case sw.KindArray:
		b.WriteString("array<")
		describe(b, node.(sw.ArrayNode).Element())
		b.WriteString(">")
	case sw.KindSet:
		b.WriteString("set<")
		describe(b, node.(sw.ArrayNode).Element())
		b.WriteString(">")
	case sw.KindTuple:
		b.WriteString("tuple[")
		for i, item := range node.(sw.TupleNode).Items() {
			if i > 0 {
				b.WriteString(", ")
			}
			describe(b, item)
		}
		b.WriteString("]")
	case sw.KindUnion, sw.KindDiscriminatedUnion:
		b.WriteString("union(")
		for i, opt := range node.(sw.UnionNode).Options() {
			if i > 0 {
				b.WriteString(" | ")
			}
			describe(b, opt)
		}
		b.WriteString(")")
	case sw.KindRecord:
		b.WriteString("record<string, ")
		describe(b, node.(sw.RecordNode).Value())
		b.WriteString(">")
	case sw.KindMap:
		mn := node.(sw.MapNode)
		b.WriteString("map<")
		describe(b, mn.Key())
		b.WriteString(", ")
		describe(b, mn.Value())
		b.WriteString(">")
	case sw.KindIntersection:
		in := node.(sw.IntersectionNode)
		describe(b, in.Left())
		b.WriteString(" & ")
		describe(b, in.Right())
	case sw.KindLiteral:
		fmt.Fprintf(b, "literal(%v)", node.(sw.LiteralNode).LiteralValue())
	default:
		b.WriteString(node.Kind().String())
	}
}
