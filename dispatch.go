package skemawire

import (
	"context"
	"math/big"
	"time"
)

// encodeValue is the schema-traversal dispatcher's encode half. It is
// invoked once per node in the schema tree, recursing through decorators
// and composite children.
func encodeValue(ctx context.Context, w *cursorWriter, node Node, value any, path string, catchReplaced bool) error {
	if node.Kind().refused() {
		return unserializableFault(path, node.Kind())
	}
	if node.IsNullable() && value == nil {
		w.writeByte(headerNull)
		return nil
	}
	if node.IsOptional() && isUndefined(value) {
		w.writeByte(headerUndefined)
		return nil
	}

	switch node.Kind() {
	case KindString:
		if un, ok := node.(UUIDNode); ok && un.IsUUID() {
			return encodeUUIDValue(w, path, value)
		}
		s, ok := value.(string)
		if !ok {
			return encodeFault(path, CodeValidationFailure, nil, "expected string")
		}
		return encodeString(w, path, s)
	case KindNumber, KindBigInt, KindBoolean, KindNaN:
		return encodeNumeric(ctx, w, path, value)
	case KindDate:
		t, ok := value.(time.Time)
		if !ok {
			return encodeFault(path, CodeValidationFailure, nil, "expected time.Time")
		}
		encodeDate(w, t)
		return nil
	case KindLiteral:
		ln := node.(LiteralNode)
		return encodeNumericOrString(ctx, w, path, ln.LiteralValue())
	case KindEnum:
		en := node.(EnumNode)
		return encodeEnumMember(ctx, w, path, en, value)
	case KindObject:
		return encodeObject(ctx, w, node.(ObjectNode), value, path)
	case KindArray:
		return encodeSequence(ctx, w, node.(ArrayNode).Element(), value, path, false)
	case KindSet:
		return encodeSequence(ctx, w, node.(ArrayNode).Element(), value, path, true)
	case KindTuple:
		return encodeTuple(ctx, w, node.(TupleNode).Items(), value, path)
	case KindUnion:
		return encodeUnion(ctx, w, node.(UnionNode), value, path)
	case KindDiscriminatedUnion:
		return encodeDiscriminatedUnion(ctx, w, node.(DiscriminatedUnionNode), value, path)
	case KindRecord:
		return encodeRecord(ctx, w, node.(RecordNode).Value(), value, path)
	case KindMap:
		return encodeMap(ctx, w, node.(MapNode), value, path)
	case KindIntersection:
		return encodeIntersection(ctx, w, node.(IntersectionNode), value, path)

	case KindOptional, KindNullable, KindReadonly, KindBranded, KindDefault:
		return encodeValue(ctx, w, node.(DecoratorNode).Unwrap(), value, path, catchReplaced)
	case KindLazy:
		return encodeValue(ctx, w, node.(LazyNode).Resolve(), value, path, catchReplaced)
	case KindPipeline:
		pn := node.(PipelineNode)
		return encodeValue(ctx, w, pn.InSchema(), value, path, catchReplaced)
	case KindCatch:
		cn := node.(CatchNode)
		inner := cn.Unwrap()
		if _, err := inner.Validate(value); err == nil {
			return encodeValue(ctx, w, inner, value, path, catchReplaced)
		} else {
			replacement := cn.Replacement(value, err)
			return encodeValue(ctx, w, inner, replacement, path, true)
		}
	case KindEffect:
		en := node.(EffectNode)
		switch en.Effect() {
		case EffectRefine:
			return encodeValue(ctx, w, en.Unwrap(), value, path, catchReplaced)
		case EffectPreprocess:
			pv, err := en.(PreprocessNode).Preprocess(value)
			if err != nil {
				return encodeFault(path, CodeValidationFailure, err, "preprocess failed")
			}
			return encodeValue(ctx, w, en.Unwrap(), pv, path, catchReplaced)
		case EffectTransform:
			if catchReplaced {
				return encodeFault(path, CodeTransformUnserializable, nil, "")
			}
			return encodeValue(ctx, w, en.Unwrap(), value, path, catchReplaced)
		}
	}
	return encodeFault(path, CodeUnserializableSchema, nil, "unhandled schema kind "+node.Kind().String())
}

// decodeValue is the schema-traversal dispatcher's decode half. It never
// re-validates; the caller (Decode) validates the fully reconstructed
// value exactly once, at the root.
func decodeValue(r *cursorReader, node Node, path string) (any, error) {
	if node.Kind().refused() {
		return nil, unserializableFault(path, node.Kind())
	}

	// The optional/nullable check applies per layer, not transitively:
	// check the CURRENT node's own optional/nullable flag against the
	// header before unwrapping a decorator, exactly mirroring encodeValue's
	// order. A marker the current decorator layer does not accept is left
	// for the next inner layer, as encodeValue would have emitted it there.
	header, err := r.peekByte(path)
	if err != nil {
		return nil, err
	}
	if wireTag(header) == tagObject {
		subkind := (header >> 2) & 0x3
		switch subkind {
		case objSubNull:
			if node.IsNullable() {
				_, _ = r.readByte(path)
				return nil, nil
			}
			if !node.Kind().decorator() {
				return nil, malformed(path, r.offset(), "unexpected null for a non-nullable schema")
			}
		case objSubUndefined:
			if node.IsOptional() {
				_, _ = r.readByte(path)
				return Undefined{}, nil
			}
			if !node.Kind().decorator() {
				return nil, malformed(path, r.offset(), "unexpected undefined for a non-optional schema")
			}
		case objSubAbsent:
			return nil, malformed(path, r.offset(), "absent marker outside a record field")
		}
	}

	switch node.Kind() {
	case KindOptional, KindNullable, KindReadonly, KindBranded, KindDefault, KindCatch:
		return decodeValue(r, node.(DecoratorNode).Unwrap(), path)
	case KindLazy:
		return decodeValue(r, node.(LazyNode).Resolve(), path)
	case KindPipeline:
		return decodeValue(r, node.(PipelineNode).InSchema(), path)
	case KindEffect:
		return decodeValue(r, node.(EffectNode).Unwrap(), path)
	}

	switch node.Kind() {
	case KindString:
		header, err := r.readByte(path)
		if err != nil {
			return nil, err
		}
		if wireTag(header) != tagString {
			return nil, malformed(path, r.offset()-1, "expected string wire tag")
		}
		if un, ok := node.(UUIDNode); ok && un.IsUUID() {
			return decodeUUIDValue(r, path, header)
		}
		return decodeString(r, path, header)
	case KindNumber, KindBigInt, KindBoolean, KindNaN:
		header, err := r.readByte(path)
		if err != nil {
			return nil, err
		}
		if wireTag(header) != tagNumeric {
			return nil, malformed(path, r.offset()-1, "expected numeric wire tag")
		}
		return decodeNumeric(r, path, header)
	case KindDate:
		header, err := r.readByte(path)
		if err != nil {
			return nil, err
		}
		if wireTag(header) != tagDate {
			return nil, malformed(path, r.offset()-1, "expected date wire tag")
		}
		return decodeDate(r, path)
	case KindLiteral:
		ln := node.(LiteralNode)
		v, err := decodeNumericOrString(r, path)
		if err != nil {
			return nil, err
		}
		if !valuesEqual(v, ln.LiteralValue()) {
			return nil, malformed(path, r.offset(), "decoded value does not match literal")
		}
		return v, nil
	case KindEnum:
		en := node.(EnumNode)
		return decodeEnumMember(r, path, en)
	case KindObject:
		header, err := r.readByte(path)
		if err != nil {
			return nil, err
		}
		if wireTag(header) != tagObject || (header>>2)&0x3 != objSubObject {
			return nil, malformed(path, r.offset()-1, "expected object body")
		}
		return decodeObjectBody(r, node.(ObjectNode), path)
	case KindArray:
		return decodeSequence(r, node.(ArrayNode).Element(), path, false)
	case KindSet:
		return decodeSequence(r, node.(ArrayNode).Element(), path, true)
	case KindTuple:
		return decodeTuple(r, node.(TupleNode).Items(), path)
	case KindUnion, KindDiscriminatedUnion:
		return decodeUnion(r, node.(UnionNode), path)
	case KindRecord:
		return decodeRecordBody(r, node.(RecordNode).Value(), path)
	case KindMap:
		return decodeMapBody(r, node.(MapNode), path)
	case KindIntersection:
		return decodeIntersection(r, node.(IntersectionNode), path)
	}
	return nil, malformed(path, r.offset(), "unhandled schema kind "+node.Kind().String())
}

// encodeNumericOrString dispatches a raw Go value (used for literals) to
// whichever primitive encoder matches its runtime type.
func encodeNumericOrString(ctx context.Context, w *cursorWriter, path string, v any) error {
	switch v.(type) {
	case string:
		return encodeString(w, path, v.(string))
	default:
		return encodeNumeric(ctx, w, path, v)
	}
}

func decodeNumericOrString(r *cursorReader, path string) (any, error) {
	header, err := r.peekByte(path)
	if err != nil {
		return nil, err
	}
	switch wireTag(header) {
	case tagString:
		_, _ = r.readByte(path)
		return decodeString(r, path, header)
	case tagNumeric:
		_, _ = r.readByte(path)
		return decodeNumeric(r, path, header)
	default:
		return nil, malformed(path, r.offset(), "expected a string or numeric literal")
	}
}

func encodeEnumMember(ctx context.Context, w *cursorWriter, path string, en EnumNode, value any) error {
	if en.MemberKind() == KindString {
		s, ok := value.(string)
		if !ok {
			return encodeFault(path, CodeValidationFailure, nil, "expected string enum member")
		}
		return encodeString(w, path, s)
	}
	return encodeNumeric(ctx, w, path, value)
}

func decodeEnumMember(r *cursorReader, path string, en EnumNode) (any, error) {
	if en.MemberKind() == KindString {
		header, err := r.readByte(path)
		if err != nil {
			return nil, err
		}
		if wireTag(header) != tagString {
			return nil, malformed(path, r.offset()-1, "expected string enum member")
		}
		return decodeString(r, path, header)
	}
	header, err := r.readByte(path)
	if err != nil {
		return nil, err
	}
	if wireTag(header) != tagNumeric {
		return nil, malformed(path, r.offset()-1, "expected numeric enum member")
	}
	return decodeNumeric(r, path, header)
}

// valuesEqual is the codec's notion of semantic equality for scalar
// literals: compared by value rather than identity, and NaN equals NaN.
func valuesEqual(a, b any) bool {
	if af, ok := a.(float64); ok {
		if bf, ok := b.(float64); ok {
			if af != af && bf != bf { // both NaN
				return true
			}
			return af == bf
		}
	}
	if ai, ok := a.(*big.Int); ok {
		if bi, ok := b.(*big.Int); ok {
			return ai.Cmp(bi) == 0
		}
	}
	return a == b
}
