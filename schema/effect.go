package schema

import sw "github.com/reoring/skemawire"

// Refine attaches a predicate that runs only at Validate time; the wire
// format never sees it, so a refinement can reject a value the underlying
// type would otherwise accept without changing a single byte on the wire.
func Refine(inner sw.Node, predicate func(v any) error) sw.Node {
	return refineNode{inner: inner, predicate: predicate}
}

type refineNode struct {
	inner     sw.Node
	predicate func(v any) error
}

func (refineNode) Kind() sw.Kind         { return sw.KindEffect }
func (refineNode) IsOptional() bool      { return false }
func (refineNode) IsNullable() bool      { return false }
func (r refineNode) Unwrap() sw.Node     { return r.inner }
func (refineNode) Effect() sw.EffectKind { return sw.EffectRefine }
func (r refineNode) Validate(v any) (any, error) {
	vv, err := r.inner.Validate(v)
	if err != nil {
		return nil, err
	}
	if err := r.predicate(vv); err != nil {
		return nil, sw.Faults{{Path: "/", Code: sw.CodeValidationFailure, Message: err.Error(), Offset: -1, Cause: err}}
	}
	return vv, nil
}

// Preprocess runs fn on the candidate value before inner ever sees it,
// both at Validate time and at encode time; unlike Refine and Transform,
// this effect really does run during a normal Encode call.
func Preprocess(inner sw.Node, fn func(v any) (any, error)) sw.Node {
	return preprocessNode{inner: inner, fn: fn}
}

type preprocessNode struct {
	inner sw.Node
	fn    func(v any) (any, error)
}

func (preprocessNode) Kind() sw.Kind             { return sw.KindEffect }
func (preprocessNode) IsOptional() bool          { return false }
func (preprocessNode) IsNullable() bool          { return false }
func (p preprocessNode) Unwrap() sw.Node         { return p.inner }
func (preprocessNode) Effect() sw.EffectKind     { return sw.EffectPreprocess }
func (p preprocessNode) Preprocess(v any) (any, error) { return p.fn(v) }
func (p preprocessNode) Validate(v any) (any, error) {
	pv, err := p.fn(v)
	if err != nil {
		return nil, sw.Faults{{Path: "/", Code: sw.CodeValidationFailure, Message: err.Error(), Offset: -1, Cause: err}}
	}
	return p.inner.Validate(pv)
}

// Transform declares a post-parse projection that the codec never runs.
// fn is retained only so a caller working directly against the schema
// tree, outside Encode/Decode, can still ask for the transformed value
// via Apply; the codec itself always encodes and validates the
// pre-transform shape, and refuses outright if it is ever reached
// downstream of a Catch replacement (CodeTransformUnserializable).
func Transform(inner sw.Node, fn func(v any) (any, error)) sw.Node {
	return transformNode{inner: inner, fn: fn}
}

type transformNode struct {
	inner sw.Node
	fn    func(v any) (any, error)
}

func (transformNode) Kind() sw.Kind         { return sw.KindEffect }
func (transformNode) IsOptional() bool      { return false }
func (transformNode) IsNullable() bool      { return false }
func (t transformNode) Unwrap() sw.Node     { return t.inner }
func (transformNode) Effect() sw.EffectKind { return sw.EffectTransform }
func (t transformNode) Apply(v any) (any, error) { return t.fn(v) }
func (t transformNode) Validate(v any) (any, error) { return t.inner.Validate(v) }
