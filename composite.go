package skemawire

import (
	"context"
	"reflect"
	"sort"
)

// ---- Object ----

func encodeObject(ctx context.Context, w *cursorWriter, obj ObjectNode, value any, path string) error {
	if obj.Passthrough() {
		return unserializableFault(path, KindObject)
	}
	m, ok := value.(map[string]any)
	if !ok {
		return encodeFault(path, CodeValidationFailure, nil, "expected object value")
	}
	w.writeByte(headerObject)
	for _, f := range obj.Fields() {
		fieldPath := path + "/" + f.Name
		fv, present := m[f.Name]
		if !present {
			if !f.Schema.IsOptional() {
				return encodeFault(fieldPath, CodeValidationFailure, nil, "required field is missing")
			}
			w.writeByte(headerAbsent)
			continue
		}
		if err := encodeValue(ctx, w, f.Schema, fv, fieldPath, false); err != nil {
			return err
		}
	}
	return nil
}

func decodeObjectBody(r *cursorReader, obj ObjectNode, path string) (any, error) {
	fields := obj.Fields()
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		fieldPath := path + "/" + f.Name
		header, err := r.peekByte(fieldPath)
		if err != nil {
			return nil, err
		}
		if wireTag(header) == tagObject && (header>>2)&0x3 == objSubAbsent {
			_, _ = r.readByte(fieldPath)
			continue
		}
		v, err := decodeValue(r, f.Schema, fieldPath)
		if err != nil {
			return nil, err
		}
		m[f.Name] = v
	}
	return m, nil
}

// ---- Array / Set ----

func encodeSequence(ctx context.Context, w *cursorWriter, elem Node, value any, path string, isSet bool) error {
	s, ok := value.([]any)
	if !ok {
		return encodeFault(path, CodeValidationFailure, nil, "expected array value")
	}
	if isSet {
		s = dedupe(s)
	}
	if err := writeSequenceLength(w, path, len(s)); err != nil {
		return err
	}
	for i, ev := range s {
		if err := encodeValue(ctx, w, elem, ev, path+"/"+itoa(i), false); err != nil {
			return err
		}
	}
	return nil
}

func decodeSequence(r *cursorReader, elem Node, path string, isSet bool) (any, error) {
	n, err := readSequenceLength(r, path)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		v, err := decodeValue(r, elem, path+"/"+itoa(i))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if isSet {
		out = dedupe(out)
	}
	return out, nil
}

func dedupe(in []any) []any {
	out := make([]any, 0, len(in))
	for _, v := range in {
		found := false
		for _, existing := range out {
			if reflect.DeepEqual(existing, v) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, v)
		}
	}
	return out
}

// writeSequenceLength implements the three-tier length form: short lengths
// fit inline, mid lengths add one trailing byte, long lengths add two.
func writeSequenceLength(w *cursorWriter, path string, n int) error {
	switch {
	case n < maxShortLen:
		w.writeByte(tagArray | (lenFormShort << 3) | byte(n))
	case n < maxMidLen:
		w.writeByte(tagArray | (lenFormMid << 3) | byte((n>>8)&0x7))
		w.writeByte(byte(n & 0xFF))
	case n < maxLongLen:
		w.writeByte(tagArray | (lenFormLong << 3) | byte((n>>16)&0x7))
		w.writeByte(byte((n >> 8) & 0xFF))
		w.writeByte(byte(n & 0xFF))
	default:
		return outOfRangeFault(path, "sequence length "+itoa(n)+" >= 2^19")
	}
	return nil
}

func readSequenceLength(r *cursorReader, path string) (int, error) {
	header, err := r.readByte(path)
	if err != nil {
		return 0, err
	}
	if wireTag(header) != tagArray {
		return 0, malformed(path, r.offset()-1, "expected array/tuple/set wire tag")
	}
	form := (header >> 3) & 0x3
	low3 := int(header & 0x7)
	switch form {
	case lenFormShort:
		return low3, nil
	case lenFormMid:
		b1, err := r.readByte(path)
		if err != nil {
			return 0, err
		}
		return low3<<8 | int(b1), nil
	case lenFormLong:
		b1, err := r.readByte(path)
		if err != nil {
			return 0, err
		}
		b2, err := r.readByte(path)
		if err != nil {
			return 0, err
		}
		return low3<<16 | int(b1)<<8 | int(b2), nil
	default:
		return 0, malformed(path, r.offset()-1, "reserved sequence length form")
	}
}

// ---- Tuple ----

func encodeTuple(ctx context.Context, w *cursorWriter, items []Node, value any, path string) error {
	s, ok := value.([]any)
	if !ok || len(s) != len(items) {
		return encodeFault(path, CodeValidationFailure, nil, "expected tuple of length "+itoa(len(items)))
	}
	if err := writeSequenceLength(w, path, len(items)); err != nil {
		return err
	}
	for i, item := range items {
		if err := encodeValue(ctx, w, item, s[i], path+"/"+itoa(i), false); err != nil {
			return err
		}
	}
	return nil
}

func decodeTuple(r *cursorReader, items []Node, path string) (any, error) {
	n, err := readSequenceLength(r, path)
	if err != nil {
		return nil, err
	}
	if n != len(items) {
		return nil, malformed(path, r.offset(), "tuple length mismatch")
	}
	out := make([]any, len(items))
	for i, item := range items {
		v, err := decodeValue(r, item, path+"/"+itoa(i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ---- Union ----

func encodeUnion(ctx context.Context, w *cursorWriter, u UnionNode, value any, path string) error {
	options := u.Options()
	if len(options) > maxUnionOptions {
		return unserializableFault(path, KindUnion)
	}
	for i, opt := range options {
		if _, err := opt.Validate(value); err == nil {
			w.writeByte(tagUnion | byte(i))
			return encodeValue(ctx, w, opt, value, path, false)
		}
	}
	return encodeFault(path, CodeValidationFailure, nil, "no union option accepts the value")
}

// encodeDiscriminatedUnion prefers matching the discriminator field
// directly and falls back to the generic validate-first scan when that
// fails, e.g. because the value's discriminator field is itself
// malformed.
func encodeDiscriminatedUnion(ctx context.Context, w *cursorWriter, u DiscriminatedUnionNode, value any, path string) error {
	options := u.Options()
	if len(options) > maxUnionOptions {
		return unserializableFault(path, KindUnion)
	}
	if m, ok := value.(map[string]any); ok {
		if tag, ok := m[u.Discriminator()].(string); ok {
			for i, opt := range options {
				obj, ok := opt.(ObjectNode)
				if !ok {
					continue
				}
				for _, f := range obj.Fields() {
					if f.Name != u.Discriminator() {
						continue
					}
					ln, ok := f.Schema.(LiteralNode)
					if ok && ln.LiteralValue() == tag {
						w.writeByte(tagUnion | byte(i))
						return encodeValue(ctx, w, opt, value, path, false)
					}
				}
			}
		}
	}
	return encodeUnion(ctx, w, u, value, path)
}

func decodeUnion(r *cursorReader, u UnionNode, path string) (any, error) {
	header, err := r.readByte(path)
	if err != nil {
		return nil, err
	}
	if wireTag(header) != tagUnion {
		return nil, malformed(path, r.offset()-1, "expected union wire tag")
	}
	idx := int(header & 0x1F)
	options := u.Options()
	if idx >= len(options) {
		return nil, malformed(path, r.offset()-1, "union option index out of range")
	}
	return decodeValue(r, options[idx], path)
}

// ---- Record / Map ----

// encodeRecord writes keys in sorted order rather than Go's randomized
// map iteration order, so encoding the same record twice produces the
// same bytes; decode does not depend on this (it reads whatever order it
// finds), but byte-for-byte reproducibility is worth the sort.
func encodeRecord(ctx context.Context, w *cursorWriter, valueSchema Node, value any, path string) error {
	m, ok := value.(map[string]any)
	if !ok {
		return encodeFault(path, CodeValidationFailure, nil, "expected record value")
	}
	if err := writeKeyedLength(w, path, mapKindRecord, len(m)); err != nil {
		return err
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := encodeString(w, path, k); err != nil {
			return err
		}
		if err := encodeValue(ctx, w, valueSchema, m[k], path+"/"+k, false); err != nil {
			return err
		}
	}
	return nil
}

func decodeRecordBody(r *cursorReader, valueSchema Node, path string) (any, error) {
	_, n, err := readKeyedHeader(r, path, mapKindRecord)
	if err != nil {
		return nil, err
	}
	m := make(map[string]any, n)
	for i := 0; i < n; i++ {
		header, err := r.readByte(path)
		if err != nil {
			return nil, err
		}
		if wireTag(header) != tagString {
			return nil, malformed(path, r.offset()-1, "expected string record key")
		}
		key, err := decodeString(r, path, header)
		if err != nil {
			return nil, err
		}
		v, err := decodeValue(r, valueSchema, path+"/"+key)
		if err != nil {
			return nil, err
		}
		m[key] = v
	}
	return m, nil
}

// encodeMap iterates value in Go's randomized map order; unlike
// encodeRecord its keys are not necessarily strings, so there is no
// single sort to apply. Two encodes of the same map can therefore differ
// byte-for-byte even though both decode back to an equal map.
func encodeMap(ctx context.Context, w *cursorWriter, mn MapNode, value any, path string) error {
	m, ok := value.(map[any]any)
	if !ok {
		return encodeFault(path, CodeValidationFailure, nil, "expected map value")
	}
	if err := writeKeyedLength(w, path, mapKindMap, len(m)); err != nil {
		return err
	}
	for k, v := range m {
		if err := encodeValue(ctx, w, mn.Key(), k, path, false); err != nil {
			return err
		}
		if err := encodeValue(ctx, w, mn.Value(), v, path, false); err != nil {
			return err
		}
	}
	return nil
}

func decodeMapBody(r *cursorReader, mn MapNode, path string) (any, error) {
	_, n, err := readKeyedHeader(r, path, mapKindMap)
	if err != nil {
		return nil, err
	}
	m := make(map[any]any, n)
	for i := 0; i < n; i++ {
		k, err := decodeValue(r, mn.Key(), path)
		if err != nil {
			return nil, err
		}
		v, err := decodeValue(r, mn.Value(), path)
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}

func writeKeyedLength(w *cursorWriter, path string, kindBit byte, n int) error {
	switch {
	case n < maxMapLen11:
		w.writeByte(tagMap | (kindBit << 4) | (mapLenForm11 << 3) | byte((n>>8)&0x7))
		w.writeByte(byte(n & 0xFF))
	case n < maxMapLen19:
		w.writeByte(tagMap | (kindBit << 4) | (mapLenForm19 << 3) | byte((n>>16)&0x7))
		w.writeByte(byte((n >> 8) & 0xFF))
		w.writeByte(byte(n & 0xFF))
	default:
		return outOfRangeFault(path, "map/record length "+itoa(n)+" >= 2^19")
	}
	return nil
}

// readKeyedHeader consumes the 2- or 3-byte map/record header and returns
// the container-kind bit plus the pair count.
func readKeyedHeader(r *cursorReader, path string, wantKind byte) (byte, int, error) {
	header, err := r.readByte(path)
	if err != nil {
		return 0, 0, err
	}
	if wireTag(header) != tagMap {
		return 0, 0, malformed(path, r.offset()-1, "expected map/record wire tag")
	}
	kindBit := (header >> 4) & 0x1
	if kindBit != wantKind {
		return 0, 0, malformed(path, r.offset()-1, "map/record container-kind mismatch")
	}
	form := (header >> 3) & 0x1
	low3 := int(header & 0x7)
	if form == mapLenForm11 {
		b1, err := r.readByte(path)
		if err != nil {
			return 0, 0, err
		}
		return kindBit, low3<<8 | int(b1), nil
	}
	b1, err := r.readByte(path)
	if err != nil {
		return 0, 0, err
	}
	b2, err := r.readByte(path)
	if err != nil {
		return 0, 0, err
	}
	return kindBit, low3<<16 | int(b1)<<8 | int(b2), nil
}

// ---- Intersection ----

func encodeIntersection(ctx context.Context, w *cursorWriter, in IntersectionNode, value any, path string) error {
	merged, mergedSchema, err := mergeIntersection(in, value, path)
	if err != nil {
		return err
	}
	return encodeValue(ctx, w, mergedSchema, merged, path, false)
}

func decodeIntersection(r *cursorReader, in IntersectionNode, path string) (any, error) {
	_, mergedSchema, err := mergeIntersection(in, nil, path)
	if err != nil {
		return nil, err
	}
	return decodeValue(r, mergedSchema, path)
}

// mergeIntersection implements the intersection policy: two record
// schemas merge into one (fields concatenated, right side wins on
// overlapping names); primitive intersections encode once under whichever
// side is a concrete primitive; anything else is rejected.
func mergeIntersection(in IntersectionNode, value any, path string) (any, Node, error) {
	left, right := in.Left(), in.Right()
	lo, lok := left.(ObjectNode)
	ro, rok := right.(ObjectNode)
	if lok && rok {
		fields := make([]Field, 0, len(lo.Fields())+len(ro.Fields()))
		seen := make(map[string]int, len(fields))
		for _, f := range lo.Fields() {
			seen[f.Name] = len(fields)
			fields = append(fields, f)
		}
		for _, f := range ro.Fields() {
			if idx, ok := seen[f.Name]; ok {
				fields[idx] = f
				continue
			}
			seen[f.Name] = len(fields)
			fields = append(fields, f)
		}
		return value, mergedObject{fields: fields}, nil
	}
	switch left.Kind() {
	case KindString, KindNumber, KindBigInt, KindBoolean, KindDate, KindNaN:
		return value, left, nil
	}
	switch right.Kind() {
	case KindString, KindNumber, KindBigInt, KindBoolean, KindDate, KindNaN:
		return value, right, nil
	}
	return nil, nil, unserializableFault(path, KindIntersection)
}

// mergedObject is a synthetic ObjectNode produced by intersecting two
// object schemas; it is never constructed by callers.
type mergedObject struct{ fields []Field }

func (mergedObject) Kind() Kind                { return KindObject }
func (mergedObject) IsOptional() bool          { return false }
func (mergedObject) IsNullable() bool          { return false }
func (m mergedObject) Fields() []Field         { return m.fields }
func (mergedObject) Passthrough() bool         { return false }
func (m mergedObject) Validate(v any) (any, error) {
	for _, f := range m.fields {
		mm, ok := v.(map[string]any)
		if !ok {
			return nil, Faults{{Path: "/", Code: CodeValidationFailure, Message: "expected object", Offset: -1}}
		}
		if fv, present := mm[f.Name]; present {
			if _, err := f.Schema.Validate(fv); err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}
