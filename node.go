package skemawire

// Kind identifies a schema node's category. It is the tag of the sum type
// the traversal dispatcher switches on: one variant per supported wire
// family, one per schema-level decorator, and one per refused kind.
type Kind int

const (
	// Concrete primitive kinds.
	KindString Kind = iota
	KindNumber
	KindBigInt
	KindBoolean
	KindDate
	KindNaN
	KindLiteral
	KindEnum

	// Concrete composite kinds.
	KindObject
	KindArray
	KindTuple
	KindSet
	KindUnion
	KindDiscriminatedUnion
	KindRecord
	KindMap
	KindIntersection

	// Decorator kinds: each wraps an inner schema (Pipeline wraps an input
	// and an output schema).
	KindOptional
	KindNullable
	KindReadonly
	KindBranded
	KindLazy
	KindDefault
	KindCatch
	KindPipeline
	KindEffect

	// Kinds the codec always refuses to serialize.
	KindAny
	KindUnknown
	KindNever
	KindVoid
	KindFunc
	KindSymbol
	KindPromise
)

// String renders a Kind for diagnostics; not part of the wire contract.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBigInt:
		return "bigint"
	case KindBoolean:
		return "boolean"
	case KindDate:
		return "date"
	case KindNaN:
		return "nan"
	case KindLiteral:
		return "literal"
	case KindEnum:
		return "enum"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	case KindSet:
		return "set"
	case KindUnion:
		return "union"
	case KindDiscriminatedUnion:
		return "discriminated_union"
	case KindRecord:
		return "record"
	case KindMap:
		return "map"
	case KindIntersection:
		return "intersection"
	case KindOptional:
		return "optional"
	case KindNullable:
		return "nullable"
	case KindReadonly:
		return "readonly"
	case KindBranded:
		return "branded"
	case KindLazy:
		return "lazy"
	case KindDefault:
		return "default"
	case KindCatch:
		return "catch"
	case KindPipeline:
		return "pipeline"
	case KindEffect:
		return "effect"
	case KindAny:
		return "any"
	case KindUnknown:
		return "unknown"
	case KindNever:
		return "never"
	case KindVoid:
		return "void"
	case KindFunc:
		return "func"
	case KindSymbol:
		return "symbol"
	case KindPromise:
		return "promise"
	default:
		return "unknown_kind"
	}
}

// refused reports whether k is one of the kinds the codec refuses to
// serialize outright, raising CodeUnserializableSchema.
func (k Kind) refused() bool {
	switch k {
	case KindAny, KindUnknown, KindNever, KindVoid, KindFunc, KindSymbol, KindPromise:
		return true
	default:
		return false
	}
}

func (k Kind) decorator() bool {
	switch k {
	case KindOptional, KindNullable, KindReadonly, KindBranded, KindLazy, KindDefault, KindCatch, KindPipeline, KindEffect:
		return true
	default:
		return false
	}
}

// EffectKind distinguishes the three effect wrappers a schema may carry.
type EffectKind int

const (
	EffectRefine EffectKind = iota
	EffectPreprocess
	EffectTransform
)

// Node is the capability set the codec requires from a schema collaborator.
// A concrete schema library (see the schema package) implements it; the
// codec never assumes anything about a Node beyond this interface and the
// family-specific accessor interfaces below, discovered by type assertion.
type Node interface {
	// Kind reports which family, decorator, or refused kind this node is.
	Kind() Kind

	// IsOptional reports whether THIS node is the optional decorator layer.
	// It is false for every other kind, including other decorators; the
	// dispatcher unwraps one layer at a time and checks this flag before
	// each unwrap, not transitively.
	IsOptional() bool

	// IsNullable reports whether THIS node is the nullable decorator layer.
	IsNullable() bool

	// Validate performs a safe-parse of v: TypeCheck+RuleCheck plus
	// decorator behavior such as default substitution and preprocessing,
	// returning either a valid, possibly-normalized value or an error. It
	// never panics. The schema package's Catch and Transform return the
	// value unchanged here: the encoder resolves a catch fallback itself,
	// and a transform function is not run by Validate.
	Validate(v any) (any, error)
}

// Field describes one named, ordered slot of an ObjectNode.
type Field struct {
	Name   string
	Schema Node
}

// ObjectNode is implemented by schemas of KindObject.
type ObjectNode interface {
	Node
	Fields() []Field
	// Passthrough reports whether unknown keys are preserved. The codec
	// rejects such schemas at encode time: their shape is not statically
	// known, so there is no fixed wire layout to encode against.
	Passthrough() bool
}

// ArrayNode is implemented by schemas of KindArray or KindSet: a variable
// length sequence sharing one element schema.
type ArrayNode interface {
	Node
	Element() Node
}

// TupleNode is implemented by schemas of KindTuple: a fixed length sequence
// of positional schemas.
type TupleNode interface {
	Node
	Items() []Node
}

// UnionNode is implemented by schemas of KindUnion or KindDiscriminatedUnion.
type UnionNode interface {
	Node
	Options() []Node
}

// DiscriminatedUnionNode narrows UnionNode with the discriminator field
// name, letting the encoder pick a branch by comparing the discriminator
// against each option's literal instead of by validating every option in
// order.
type DiscriminatedUnionNode interface {
	UnionNode
	Discriminator() string
}

// RecordNode is implemented by schemas of KindRecord: string-keyed, all
// values share one schema.
type RecordNode interface {
	Node
	Value() Node
}

// MapNode is implemented by schemas of KindMap: both key and value schemas
// are declared.
type MapNode interface {
	Node
	Key() Node
	Value() Node
}

// IntersectionNode is implemented by schemas of KindIntersection.
type IntersectionNode interface {
	Node
	Left() Node
	Right() Node
}

// LiteralNode is implemented by schemas of KindLiteral: exactly one runtime
// value is accepted, dispatched by that value's own kind.
type LiteralNode interface {
	Node
	LiteralValue() any
}

// EnumNode is implemented by schemas of KindEnum: a fixed member set,
// dispatched by the declared member kind (string or numeric).
type EnumNode interface {
	Node
	Members() []any
	MemberKind() Kind // KindString or KindNumber
}

// DecoratorNode is implemented by the schema-level decorators that wrap a
// single inner schema and exposes that schema. Lazy and Pipeline nodes do
// not implement it; they expose LazyNode and PipelineNode instead.
type DecoratorNode interface {
	Node
	Unwrap() Node
}

// DefaultNode additionally exposes the materialized default value.
type DefaultNode interface {
	DecoratorNode
	DefaultValue() any
}

// CatchNode additionally exposes the fallback hook run when the inner
// schema rejects a candidate value.
type CatchNode interface {
	DecoratorNode
	Replacement(input any, cause error) any
}

// PipelineNode composes an input-side and output-side schema; the codec
// encodes/decodes using the input side.
type PipelineNode interface {
	Node
	InSchema() Node
	OutSchema() Node
}

// LazyNode resolves to its inner schema on demand, enabling recursive
// schemas without an infinite Go value.
type LazyNode interface {
	Node
	Resolve() Node
}

// EffectNode is implemented by refine/preprocess/transform wrappers.
type EffectNode interface {
	DecoratorNode
	Effect() EffectKind
}

// PreprocessNode additionally exposes the pre-parse transform function.
type PreprocessNode interface {
	EffectNode
	Preprocess(v any) (any, error)
}
