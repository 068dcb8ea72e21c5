package schema

import sw "github.com/reoring/skemawire"

// Optional marks inner as additionally accepting the explicit-undefined
// value. It is the only decorator whose IsOptional reports true; every
// other decorator layer answers false so the dispatcher's per-layer
// optional check only fires here.
func Optional(inner sw.Node) sw.Node { return optionalNode{inner: inner} }

type optionalNode struct{ inner sw.Node }

func (optionalNode) Kind() sw.Kind     { return sw.KindOptional }
func (optionalNode) IsOptional() bool  { return true }
func (optionalNode) IsNullable() bool  { return false }
func (o optionalNode) Unwrap() sw.Node { return o.inner }
func (o optionalNode) Validate(v any) (any, error) {
	if _, ok := v.(sw.Undefined); ok {
		return v, nil
	}
	return o.inner.Validate(v)
}

// Nullable marks inner as additionally accepting Go nil (the null wire
// value). It is the only decorator whose IsNullable reports true.
func Nullable(inner sw.Node) sw.Node { return nullableNode{inner: inner} }

type nullableNode struct{ inner sw.Node }

func (nullableNode) Kind() sw.Kind     { return sw.KindNullable }
func (nullableNode) IsOptional() bool  { return false }
func (nullableNode) IsNullable() bool  { return true }
func (n nullableNode) Unwrap() sw.Node { return n.inner }
func (n nullableNode) Validate(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return n.inner.Validate(v)
}

// Readonly carries no wire-level meaning; the codec unwraps it and
// encodes/decodes exactly as if it were absent. It exists so a schema
// author can mark a field read-only for the validation library's own API
// without changing what goes on the wire.
func Readonly(inner sw.Node) sw.Node { return readonlyNode{inner: inner} }

type readonlyNode struct{ inner sw.Node }

func (readonlyNode) Kind() sw.Kind             { return sw.KindReadonly }
func (readonlyNode) IsOptional() bool          { return false }
func (readonlyNode) IsNullable() bool          { return false }
func (r readonlyNode) Unwrap() sw.Node         { return r.inner }
func (r readonlyNode) Validate(v any) (any, error) { return r.inner.Validate(v) }

// Branded is Readonly's sibling for nominal-typing brands: also wire
// transparent.
func Branded(inner sw.Node) sw.Node { return brandedNode{inner: inner} }

type brandedNode struct{ inner sw.Node }

func (brandedNode) Kind() sw.Kind             { return sw.KindBranded }
func (brandedNode) IsOptional() bool          { return false }
func (brandedNode) IsNullable() bool          { return false }
func (b brandedNode) Unwrap() sw.Node         { return b.inner }
func (b brandedNode) Validate(v any) (any, error) { return b.inner.Validate(v) }

// Lazy defers schema construction until traversal time, the standard way
// to describe a recursive schema without an infinite Go value:
//
//	var node sw.Node
//	node = schema.Object(sw.Field{Name: "next", Schema: schema.Optional(schema.Lazy(func() sw.Node { return node }))})
//
// Lazy returns a pointer so the fingerprint hasher's cycle-break check
// (a map keyed by sw.Node) can identify "the same lazy node visited
// again" by pointer identity; a plain struct value here would carry an
// unexported func field and panic the moment it is used as a map key.
func Lazy(resolve func() sw.Node) sw.Node { return &lazyNode{resolve: resolve} }

type lazyNode struct{ resolve func() sw.Node }

func (*lazyNode) Kind() sw.Kind      { return sw.KindLazy }
func (*lazyNode) IsOptional() bool   { return false }
func (*lazyNode) IsNullable() bool   { return false }
func (l *lazyNode) Resolve() sw.Node { return l.resolve() }
func (l *lazyNode) Validate(v any) (any, error) { return l.resolve().Validate(v) }

// Default substitutes value for an explicit-undefined input before inner
// ever sees it, so a defaulted field never reaches the wire in its
// undefined state. The codec's dispatcher treats KindDefault as
// transparent: Default resolves the value at Validate time, upstream of
// encoding, not at the wire layer.
func Default(inner sw.Node, value any) sw.Node { return defaultNode{inner: inner, value: value} }

type defaultNode struct {
	inner sw.Node
	value any
}

func (defaultNode) Kind() sw.Kind         { return sw.KindDefault }
func (defaultNode) IsOptional() bool      { return false }
func (defaultNode) IsNullable() bool      { return false }
func (d defaultNode) Unwrap() sw.Node     { return d.inner }
func (d defaultNode) DefaultValue() any   { return d.value }
func (d defaultNode) Validate(v any) (any, error) {
	if _, ok := v.(sw.Undefined); ok {
		return d.inner.Validate(d.value)
	}
	return d.inner.Validate(v)
}

// Catch supplies a fallback value when inner rejects the candidate,
// letting encode always succeed for a field guarded this way. Validate
// deliberately does not resolve the fallback itself; Encode's own
// traversal (dispatch.go) is the single place that decides whether a
// catch fired, since that decision also gates the TransformUnserializable
// check further down the same schema. Applying the fallback here too
// would make Encode's dispatcher see an already-valid value and never
// learn a substitution happened.
func Catch(inner sw.Node, replacement func(input any, cause error) any) sw.Node {
	return catchNode{inner: inner, replacement: replacement}
}

type catchNode struct {
	inner       sw.Node
	replacement func(input any, cause error) any
}

func (catchNode) Kind() sw.Kind     { return sw.KindCatch }
func (catchNode) IsOptional() bool  { return false }
func (catchNode) IsNullable() bool  { return false }
func (c catchNode) Unwrap() sw.Node { return c.inner }
func (c catchNode) Replacement(input any, cause error) any {
	return c.replacement(input, cause)
}
func (catchNode) Validate(v any) (any, error) { return v, nil }

// Pipeline composes an input-side and output-side schema. The codec
// always encodes/decodes through the input side; OutSchema exists for the
// validation library's own API surface, not for the wire.
func Pipeline(in, out sw.Node) sw.Node { return pipelineNode{in: in, out: out} }

type pipelineNode struct{ in, out sw.Node }

func (pipelineNode) Kind() sw.Kind      { return sw.KindPipeline }
func (pipelineNode) IsOptional() bool   { return false }
func (pipelineNode) IsNullable() bool   { return false }
func (p pipelineNode) InSchema() sw.Node  { return p.in }
func (p pipelineNode) OutSchema() sw.Node { return p.out }
func (p pipelineNode) Validate(v any) (any, error) { return p.in.Validate(v) }
