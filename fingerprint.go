package skemawire

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Fingerprint computes the schema-identity hash of node: the first
// 8 bytes of the BLAKE3-256 digest of node's pre-order wire-family tag
// sequence (each node's tag before its children's). Two schemas that accept and produce byte-identical wire
// values for every input hash identically; anything about a schema that
// never shows up on the wire (field-name semantics beyond order,
// refinements, defaults, branding) contributes nothing.
func Fingerprint(node Node) uint64 {
	h := blake3.New()
	visitFingerprint(h, node, map[Node]bool{})
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8])
}

// visitFingerprint walks node the same way encodeValue would, writing one
// family-tag byte per concrete node before descending into its children
// in declaration order.
func visitFingerprint(h *blake3.Hasher, node Node, seenLazy map[Node]bool) {
	k := node.Kind()

	if k.decorator() {
		switch k {
		case KindLazy:
			ln := node.(LazyNode)
			if seenLazy[node] {
				return
			}
			seenLazy[node] = true
			visitFingerprint(h, ln.Resolve(), seenLazy)
		case KindPipeline:
			visitFingerprint(h, node.(PipelineNode).InSchema(), seenLazy)
		default:
			visitFingerprint(h, node.(DecoratorNode).Unwrap(), seenLazy)
		}
		return
	}

	if k == KindIntersection {
		in := node.(IntersectionNode)
		visitFingerprint(h, in.Left(), seenLazy)
		visitFingerprint(h, in.Right(), seenLazy)
		return
	}

	h.Write([]byte{familyTagOf(node)})

	switch k {
	case KindObject:
		for _, f := range node.(ObjectNode).Fields() {
			visitFingerprint(h, f.Schema, seenLazy)
		}
	case KindArray, KindSet:
		visitFingerprint(h, node.(ArrayNode).Element(), seenLazy)
	case KindTuple:
		for _, item := range node.(TupleNode).Items() {
			visitFingerprint(h, item, seenLazy)
		}
	case KindUnion, KindDiscriminatedUnion:
		for _, opt := range node.(UnionNode).Options() {
			visitFingerprint(h, opt, seenLazy)
		}
	case KindRecord:
		visitFingerprint(h, node.(RecordNode).Value(), seenLazy)
	case KindMap:
		mn := node.(MapNode)
		visitFingerprint(h, mn.Key(), seenLazy)
		visitFingerprint(h, mn.Value(), seenLazy)
	}
}

// familyTagOf maps a concrete schema node to the wire-family byte its
// encoded values carry in the high 3 bits of their header. Literal
// and enum nodes have no family of their own; they hash under whichever
// primitive family their declared value(s) belong to, since that is the
// only thing that ever reaches the wire for them.
func familyTagOf(node Node) byte {
	switch k := node.Kind(); k {
	case KindNumber, KindBigInt, KindBoolean, KindNaN:
		return tagNumeric
	case KindString:
		return tagString
	case KindObject:
		return tagObject
	case KindDate:
		return tagDate
	case KindArray, KindSet, KindTuple:
		return tagArray
	case KindUnion, KindDiscriminatedUnion:
		return tagUnion
	case KindRecord, KindMap:
		return tagMap
	case KindLiteral:
		if _, ok := node.(LiteralNode).LiteralValue().(string); ok {
			return tagString
		}
		return tagNumeric
	case KindEnum:
		if node.(EnumNode).MemberKind() == KindString {
			return tagString
		}
		return tagNumeric
	default:
		return tagReserved
	}
}
