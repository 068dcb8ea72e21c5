package schema

import sw "github.com/reoring/skemawire"

// Any, Unknown, Never, Void, Func, Symbol, and Promise are the schema
// kinds the codec always refuses, raising CodeUnserializableSchema. They
// exist as constructors so a schema author can still declare them
// for the validation library's own purposes (e.g. a field the codec is
// never asked to touch); Encode and Decode reject them unconditionally.
func Any() sw.Node     { return refusedNode{kind: sw.KindAny} }
func Unknown() sw.Node { return refusedNode{kind: sw.KindUnknown} }
func Never() sw.Node   { return refusedNode{kind: sw.KindNever} }
func Void() sw.Node    { return refusedNode{kind: sw.KindVoid} }
func Func() sw.Node    { return refusedNode{kind: sw.KindFunc} }
func Symbol() sw.Node  { return refusedNode{kind: sw.KindSymbol} }
func Promise() sw.Node { return refusedNode{kind: sw.KindPromise} }

type refusedNode struct{ kind sw.Kind }

func (r refusedNode) Kind() sw.Kind    { return r.kind }
func (refusedNode) IsOptional() bool   { return false }
func (refusedNode) IsNullable() bool   { return false }
func (r refusedNode) Validate(v any) (any, error) {
	if r.kind == sw.KindNever {
		return nil, typeFault(r.kind, v)
	}
	return v, nil
}
