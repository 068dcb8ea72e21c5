package schema

import (
	"testing"

	sw "github.com/reoring/skemawire"
)

func TestObjectRequiredFieldMissing(t *testing.T) {
	obj := Object(sw.Field{Name: "id", Schema: String()})
	if _, err := obj.Validate(map[string]any{}); err == nil {
		t.Errorf("Object.Validate missing required field = nil, want a fault")
	}
}

func TestObjectOptionalFieldMayBeAbsent(t *testing.T) {
	obj := Object(
		sw.Field{Name: "id", Schema: String()},
		sw.Field{Name: "nickname", Schema: Optional(String())},
	)
	got, err := obj.Validate(map[string]any{"id": "u1"})
	if err != nil {
		t.Fatal(err)
	}
	m := got.(map[string]any)
	if _, present := m["nickname"]; present {
		t.Errorf("Object.Validate: absent optional field surfaced as %#v", m["nickname"])
	}
}

func TestObjectRejectsNonMapInput(t *testing.T) {
	if _, err := Object().Validate("not a map"); err == nil {
		t.Errorf("Object.Validate(string) = nil, want a fault")
	}
}

func TestArrayValidatesEachElement(t *testing.T) {
	arr := Array(Number())
	got, err := arr.Validate([]any{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	out := got.([]any)
	if len(out) != 3 || out[0].(int64) != 1 {
		t.Errorf("Array.Validate = %#v", out)
	}
	if _, err := arr.Validate([]any{1, "two"}); err == nil {
		t.Errorf("Array.Validate with a bad element = nil, want a fault")
	}
}

func TestTupleRequiresExactLength(t *testing.T) {
	tup := Tuple(String(), Number())
	if _, err := tup.Validate([]any{"a", 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := tup.Validate([]any{"a"}); err == nil {
		t.Errorf("Tuple.Validate with too few items = nil, want a fault")
	}
	if _, err := tup.Validate([]any{"a", 1, 2}); err == nil {
		t.Errorf("Tuple.Validate with too many items = nil, want a fault")
	}
}

func TestUnionAcceptsMatchingOption(t *testing.T) {
	u := Union(String(), Number())
	got, err := u.Validate("x")
	if err != nil || got.(string) != "x" {
		t.Errorf("Union.Validate(string) = %#v, %v", got, err)
	}
	if _, err := u.Validate(true); err == nil {
		t.Errorf("Union.Validate(bool) with no matching option = nil, want a fault")
	}
}

func TestDiscriminatedUnionDelegatesToUnion(t *testing.T) {
	optA := Object(sw.Field{Name: "kind", Schema: Literal("a")})
	optB := Object(sw.Field{Name: "kind", Schema: Literal("b")}, sw.Field{Name: "n", Schema: Number()})
	du := DiscriminatedUnion("kind", optA, optB)
	got, err := du.Validate(map[string]any{"kind": "b", "n": 5})
	if err != nil {
		t.Fatal(err)
	}
	m := got.(map[string]any)
	if m["n"].(int64) != 5 {
		t.Errorf("DiscriminatedUnion.Validate = %#v", m)
	}
	if du.Kind() != sw.KindDiscriminatedUnion {
		t.Errorf("DiscriminatedUnion.Kind() = %v, want KindDiscriminatedUnion", du.Kind())
	}
}

func TestRecordValidatesEveryValue(t *testing.T) {
	rec := Record(Number())
	got, err := rec.Validate(map[string]any{"a": 1, "b": 2})
	if err != nil {
		t.Fatal(err)
	}
	m := got.(map[string]any)
	if m["a"].(int64) != 1 {
		t.Errorf("Record.Validate = %#v", m)
	}
}

func TestMapValidatesKeysAndValues(t *testing.T) {
	m := Map(String(), Number())
	got, err := m.Validate(map[any]any{"a": 1})
	if err != nil {
		t.Fatal(err)
	}
	out := got.(map[any]any)
	if out["a"].(int64) != 1 {
		t.Errorf("Map.Validate = %#v", out)
	}
}

func TestIntersectionMergesTwoObjects(t *testing.T) {
	left := Object(sw.Field{Name: "a", Schema: String()})
	right := Object(sw.Field{Name: "b", Schema: Number()})
	in := Intersection(left, right)
	got, err := in.Validate(map[string]any{"a": "x", "b": 1})
	if err != nil {
		t.Fatal(err)
	}
	m := got.(map[string]any)
	if m["a"] != "x" || m["b"].(int64) != 1 {
		t.Errorf("Intersection.Validate = %#v, want both fields present", m)
	}
}

func TestIntersectionRightWinsOnCollision(t *testing.T) {
	left := Object(sw.Field{Name: "a", Schema: BigInt()})
	right := Object(sw.Field{Name: "a", Schema: Number()})
	in := Intersection(left, right)
	got, err := in.Validate(map[string]any{"a": 1})
	if err != nil {
		t.Fatal(err)
	}
	if got.(map[string]any)["a"] != int64(1) {
		t.Errorf("Intersection.Validate collision = %#v", got)
	}
}

func TestIntersectionFallsBackToConcretePrimitive(t *testing.T) {
	in := Intersection(String(), String())
	got, err := in.Validate("x")
	if err != nil || got.(string) != "x" {
		t.Errorf("Intersection.Validate(primitive, primitive) = %#v, %v", got, err)
	}
}
