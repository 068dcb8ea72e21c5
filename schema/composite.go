package schema

import (
	sw "github.com/reoring/skemawire"
)

// Object builds an object schema from an ordered field list. Field order
// is significant: it is both the wire encode order and part of the
// schema-identity fingerprint. Unknown-key policies (strict/strip/
// passthrough) that the sibling validation library exposes have no
// wire-format equivalent here; passthrough shapes are the one object
// variant the codec always refuses, so this package never constructs one.
func Object(fields ...sw.Field) sw.Node { return objectNode{fields: fields} }

type objectNode struct{ fields []sw.Field }

func (objectNode) Kind() sw.Kind          { return sw.KindObject }
func (objectNode) IsOptional() bool       { return false }
func (objectNode) IsNullable() bool       { return false }
func (o objectNode) Fields() []sw.Field   { return o.fields }
func (objectNode) Passthrough() bool      { return false }
func (o objectNode) Validate(v any) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, typeFault(sw.KindObject, v)
	}
	out := make(map[string]any, len(m))
	for _, f := range o.fields {
		fv, present := m[f.Name]
		if !present {
			if !f.Schema.IsOptional() {
				return nil, fieldFault(f.Name, "required field is missing")
			}
			continue
		}
		vv, err := f.Schema.Validate(fv)
		if err != nil {
			return nil, wrapFieldFault(f.Name, err)
		}
		out[f.Name] = vv
	}
	return out, nil
}

// Array builds a variable-length sequence schema sharing one element
// schema across every position.
func Array(elem sw.Node) sw.Node { return sequenceNode{elem: elem, kind: sw.KindArray} }

// Set is Array's sibling: decode deduplicates structurally, encode treats
// the input the same way an array does.
func Set(elem sw.Node) sw.Node { return sequenceNode{elem: elem, kind: sw.KindSet} }

type sequenceNode struct {
	elem sw.Node
	kind sw.Kind
}

func (s sequenceNode) Kind() sw.Kind    { return s.kind }
func (sequenceNode) IsOptional() bool   { return false }
func (sequenceNode) IsNullable() bool   { return false }
func (s sequenceNode) Element() sw.Node { return s.elem }
func (s sequenceNode) Validate(v any) (any, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, typeFault(s.kind, v)
	}
	out := make([]any, len(arr))
	for i, ev := range arr {
		vv, err := s.elem.Validate(ev)
		if err != nil {
			return nil, wrapFieldFault(itoaIndex(i), err)
		}
		out[i] = vv
	}
	return out, nil
}

// Tuple builds a fixed-length, positionally-typed sequence schema.
func Tuple(items ...sw.Node) sw.Node { return tupleNode{items: items} }

type tupleNode struct{ items []sw.Node }

func (tupleNode) Kind() sw.Kind        { return sw.KindTuple }
func (tupleNode) IsOptional() bool     { return false }
func (tupleNode) IsNullable() bool     { return false }
func (t tupleNode) Items() []sw.Node   { return t.items }
func (t tupleNode) Validate(v any) (any, error) {
	arr, ok := v.([]any)
	if !ok || len(arr) != len(t.items) {
		return nil, typeFault(sw.KindTuple, v)
	}
	out := make([]any, len(arr))
	for i, item := range t.items {
		vv, err := item.Validate(arr[i])
		if err != nil {
			return nil, wrapFieldFault(itoaIndex(i), err)
		}
		out[i] = vv
	}
	return out, nil
}

// Union accepts the first option (in declared order) that validates the
// value; the codec relies on this exact order to assign wire option
// indices, so declaration order is part of the wire contract.
func Union(options ...sw.Node) sw.Node { return unionNode{options: options} }

type unionNode struct{ options []sw.Node }

func (unionNode) Kind() sw.Kind        { return sw.KindUnion }
func (unionNode) IsOptional() bool     { return false }
func (unionNode) IsNullable() bool     { return false }
func (u unionNode) Options() []sw.Node { return u.options }
func (u unionNode) Validate(v any) (any, error) {
	for _, opt := range u.options {
		if vv, err := opt.Validate(v); err == nil {
			return vv, nil
		}
	}
	return nil, typeFault(sw.KindUnion, v)
}

// DiscriminatedUnion narrows Union with the field name the encoder
// consults to pick a branch by comparing literals rather than by
// validating every option.
func DiscriminatedUnion(discriminator string, options ...sw.Node) sw.Node {
	return discriminatedUnionNode{unionNode: unionNode{options: options}, discriminator: discriminator}
}

type discriminatedUnionNode struct {
	unionNode
	discriminator string
}

func (discriminatedUnionNode) Kind() sw.Kind          { return sw.KindDiscriminatedUnion }
func (d discriminatedUnionNode) Discriminator() string { return d.discriminator }

// Record builds a string-keyed schema where every value shares one
// schema.
func Record(value sw.Node) sw.Node { return recordNode{value: value} }

type recordNode struct{ value sw.Node }

func (recordNode) Kind() sw.Kind      { return sw.KindRecord }
func (recordNode) IsOptional() bool   { return false }
func (recordNode) IsNullable() bool   { return false }
func (r recordNode) Value() sw.Node   { return r.value }
func (r recordNode) Validate(v any) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, typeFault(sw.KindRecord, v)
	}
	out := make(map[string]any, len(m))
	for k, mv := range m {
		vv, err := r.value.Validate(mv)
		if err != nil {
			return nil, wrapFieldFault(k, err)
		}
		out[k] = vv
	}
	return out, nil
}

// Map builds a schema with independently declared key and value schemas
// (Record is the string-keyed special case of this).
func Map(key, value sw.Node) sw.Node { return mapNode{key: key, value: value} }

type mapNode struct{ key, value sw.Node }

func (mapNode) Kind() sw.Kind    { return sw.KindMap }
func (mapNode) IsOptional() bool { return false }
func (mapNode) IsNullable() bool { return false }
func (m mapNode) Key() sw.Node   { return m.key }
func (m mapNode) Value() sw.Node { return m.value }
func (m mapNode) Validate(v any) (any, error) {
	in, ok := v.(map[any]any)
	if !ok {
		return nil, typeFault(sw.KindMap, v)
	}
	out := make(map[any]any, len(in))
	for k, mv := range in {
		vk, err := m.key.Validate(k)
		if err != nil {
			return nil, err
		}
		vv, err := m.value.Validate(mv)
		if err != nil {
			return nil, err
		}
		out[vk] = vv
	}
	return out, nil
}

// Intersection combines two schemas; the codec merges two object schemas
// field-by-field (right side wins on a name collision) and otherwise
// requires one side to be a concrete primitive.
func Intersection(left, right sw.Node) sw.Node { return intersectionNode{left: left, right: right} }

type intersectionNode struct{ left, right sw.Node }

func (intersectionNode) Kind() sw.Kind    { return sw.KindIntersection }
func (intersectionNode) IsOptional() bool { return false }
func (intersectionNode) IsNullable() bool { return false }
func (i intersectionNode) Left() sw.Node  { return i.left }
func (i intersectionNode) Right() sw.Node { return i.right }
// Validate runs both sides against the same input and, when both produce
// an object, merges the results (right wins on a name collision) so the
// value handed to the codec already carries every field the wire-level
// merge in the codec's intersection encoder expects.
func (i intersectionNode) Validate(v any) (any, error) {
	lv, err := i.left.Validate(v)
	if err != nil {
		return nil, err
	}
	rv, err := i.right.Validate(v)
	if err != nil {
		return nil, err
	}
	lm, lok := lv.(map[string]any)
	rm, rok := rv.(map[string]any)
	if lok && rok {
		out := make(map[string]any, len(lm)+len(rm))
		for k, val := range lm {
			out[k] = val
		}
		for k, val := range rm {
			out[k] = val
		}
		return out, nil
	}
	return rv, nil
}

func itoaIndex(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	p := len(buf)
	for i > 0 {
		p--
		buf[p] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		p--
		buf[p] = '-'
	}
	return string(buf[p:])
}
