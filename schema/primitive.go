package schema

import (
	"math"
	"math/big"
	"time"

	"github.com/google/uuid"
	sw "github.com/reoring/skemawire"
)

// String returns the minimal string schema implementation. Grounded on
// the sibling validation library's stringSchema: a bare TypeCheck with no
// RuleCheck, since length/format rules are effect wrappers (Refine) here
// rather than schema-level options.
func String() sw.Node { return stringNode{} }

type stringNode struct{}

func (stringNode) Kind() sw.Kind       { return sw.KindString }
func (stringNode) IsOptional() bool    { return false }
func (stringNode) IsNullable() bool    { return false }
func (stringNode) Validate(v any) (any, error) {
	if _, ok := v.(string); !ok {
		return nil, typeFault(sw.KindString, v)
	}
	return v, nil
}

// Number accepts any Go int/int64/float64 value, preserving its concrete
// type so the codec's integer-narrowing policy sees a true integer rather
// than a float64 that merely holds an integral value. An integral
// float64 (3.0) is deliberately left as float64 and encoded as f64 on the
// wire; only a caller passing an actual int/int64 gets narrowed encoding.
func Number() sw.Node { return numberNode{} }

type numberNode struct{}

func (numberNode) Kind() sw.Kind    { return sw.KindNumber }
func (numberNode) IsOptional() bool { return false }
func (numberNode) IsNullable() bool { return false }
func (numberNode) Validate(v any) (any, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int64:
		return t, nil
	case float64:
		return t, nil
	default:
		return nil, typeFault(sw.KindNumber, v)
	}
}

// BigInt normalizes any of int, int64, *big.Int to *big.Int. The codec
// only accepts a bigint whose magnitude fits in a signed 64-bit wire
// slot; larger values fail at encode time with ValueOutOfRange, not here.
func BigInt() sw.Node { return bigIntNode{} }

type bigIntNode struct{}

func (bigIntNode) Kind() sw.Kind    { return sw.KindBigInt }
func (bigIntNode) IsOptional() bool { return false }
func (bigIntNode) IsNullable() bool { return false }
func (bigIntNode) Validate(v any) (any, error) {
	switch t := v.(type) {
	case *big.Int:
		return t, nil
	case int64:
		return big.NewInt(t), nil
	case int:
		return big.NewInt(int64(t)), nil
	default:
		return nil, typeFault(sw.KindBigInt, v)
	}
}

func Boolean() sw.Node { return boolNode{} }

type boolNode struct{}

func (boolNode) Kind() sw.Kind    { return sw.KindBoolean }
func (boolNode) IsOptional() bool { return false }
func (boolNode) IsNullable() bool { return false }
func (boolNode) Validate(v any) (any, error) {
	if _, ok := v.(bool); !ok {
		return nil, typeFault(sw.KindBoolean, v)
	}
	return v, nil
}

func Date() sw.Node { return dateNode{} }

type dateNode struct{}

func (dateNode) Kind() sw.Kind    { return sw.KindDate }
func (dateNode) IsOptional() bool { return false }
func (dateNode) IsNullable() bool { return false }
func (dateNode) Validate(v any) (any, error) {
	if _, ok := v.(time.Time); !ok {
		return nil, typeFault(sw.KindDate, v)
	}
	return v, nil
}

// NaN is the schema whose only valid value is the float64 NaN. It exists
// because the wire format gives NaN its own numeric subtype distinct from
// a general float64, so a caller can pin a field to "always NaN" the same
// way Literal pins a field to one concrete value.
func NaN() sw.Node { return nanNode{} }

type nanNode struct{}

func (nanNode) Kind() sw.Kind    { return sw.KindNaN }
func (nanNode) IsOptional() bool { return false }
func (nanNode) IsNullable() bool { return false }
func (nanNode) Validate(v any) (any, error) {
	f, ok := v.(float64)
	if !ok || !math.IsNaN(f) {
		return nil, typeFault(sw.KindNaN, v)
	}
	return v, nil
}

// Literal accepts exactly one runtime value, dispatched by that value's
// own kind: a string literal rides the string codec, a numeric literal
// rides the numeric codec.
func Literal(value any) sw.Node { return literalNode{value: value} }

type literalNode struct{ value any }

func (literalNode) Kind() sw.Kind         { return sw.KindLiteral }
func (literalNode) IsOptional() bool      { return false }
func (literalNode) IsNullable() bool      { return false }
func (l literalNode) LiteralValue() any   { return l.value }
func (l literalNode) Validate(v any) (any, error) {
	if !literalEqual(v, l.value) {
		return nil, typeFault(sw.KindLiteral, v)
	}
	return v, nil
}

func literalEqual(a, b any) bool {
	if af, ok := a.(float64); ok {
		if bf, ok := b.(float64); ok {
			return af == bf || (math.IsNaN(af) && math.IsNaN(bf))
		}
	}
	if ab, ok := a.(*big.Int); ok {
		if bb, ok := b.(*big.Int); ok {
			return ab.Cmp(bb) == 0
		}
	}
	return a == b
}

// Enum accepts one of a fixed set of members, all sharing memberKind
// (sw.KindString or sw.KindNumber): the only two primitive families the
// wire format lets an enum project onto.
func Enum(memberKind sw.Kind, members ...any) sw.Node {
	return enumNode{memberKind: memberKind, members: members}
}

type enumNode struct {
	memberKind sw.Kind
	members    []any
}

func (enumNode) Kind() sw.Kind             { return sw.KindEnum }
func (enumNode) IsOptional() bool          { return false }
func (enumNode) IsNullable() bool          { return false }
func (e enumNode) Members() []any          { return e.members }
func (e enumNode) MemberKind() sw.Kind     { return e.memberKind }
func (e enumNode) Validate(v any) (any, error) {
	for _, m := range e.members {
		if literalEqual(v, m) {
			return v, nil
		}
	}
	return nil, typeFault(sw.KindEnum, v)
}

// UUID is a string-family schema (schema.String()'s wire family) whose
// values pack as a raw 16-byte UUID instead of 36 bytes of hyphenated
// text (see the Domain Stack section of the design notes). It accepts
// either a uuid.UUID or a canonically-formatted UUID string, normalizing
// to uuid.UUID.
func UUID() sw.Node { return uuidNode{} }

type uuidNode struct{}

func (uuidNode) Kind() sw.Kind    { return sw.KindString }
func (uuidNode) IsOptional() bool { return false }
func (uuidNode) IsNullable() bool { return false }
func (uuidNode) IsUUID() bool     { return true }
func (uuidNode) Validate(v any) (any, error) {
	switch t := v.(type) {
	case uuid.UUID:
		return t, nil
	case string:
		id, err := uuid.Parse(t)
		if err != nil {
			return nil, typeFault(sw.KindString, v)
		}
		return id, nil
	default:
		return nil, typeFault(sw.KindString, v)
	}
}
