package skemawire_test

import (
	"context"
	"reflect"
	"testing"

	sw "github.com/reoring/skemawire"
	"github.com/reoring/skemawire/schema"
)

func TestIntegerRoundTrip(t *testing.T) {
	node := schema.Number()
	wire, err := sw.Encode(context.Background(), node, int64(42))
	if err != nil {
		t.Fatal(err)
	}
	if wire[0] != sw.ProtocolVersion {
		t.Errorf("envelope version = %d, want %d", wire[0], sw.ProtocolVersion)
	}
	body := wire[sw.EnvelopeSize:]
	if len(body) != 2 || body[0] != 0x00 || body[1] != 0x2A {
		t.Errorf("int8 body = % x, want [00 2a]", body)
	}
	got, err := sw.Decode(node, wire)
	if err != nil {
		t.Fatal(err)
	}
	if got != int64(42) {
		t.Errorf("decoded = %v, want 42", got)
	}
}

func TestStringRoundTrip(t *testing.T) {
	node := schema.String()
	wire, err := sw.Encode(context.Background(), node, "hi")
	if err != nil {
		t.Fatal(err)
	}
	body := wire[sw.EnvelopeSize:]
	want := []byte{0x20, 0x02, 'h', 'i'}
	if !reflect.DeepEqual(body, want) {
		t.Errorf("short-string body = % x, want % x", body, want)
	}
	got, err := sw.Decode(node, wire)
	if err != nil {
		t.Fatal(err)
	}
	if got != "hi" {
		t.Errorf("decoded = %v, want hi", got)
	}
}

func TestOptionalFieldTriState(t *testing.T) {
	node := schema.Object(
		sw.Field{Name: "a", Schema: schema.String()},
		sw.Field{Name: "b", Schema: schema.Optional(schema.Number())},
	)

	wire, err := sw.Encode(context.Background(), node, map[string]any{"a": "x"})
	if err != nil {
		t.Fatal(err)
	}
	got, err := sw.Decode(node, wire)
	if err != nil {
		t.Fatal(err)
	}
	m := got.(map[string]any)
	if len(m) != 1 || m["a"] != "x" {
		t.Errorf("absent b: decoded = %#v, want only a=x", m)
	}
	if _, present := m["b"]; present {
		t.Errorf("absent b: key b should not be present, got %#v", m["b"])
	}

	wireUndef, err := sw.Encode(context.Background(), node, map[string]any{"a": "x", "b": sw.Undefined{}})
	if err != nil {
		t.Fatal(err)
	}
	gotUndef, err := sw.Decode(node, wireUndef)
	if err != nil {
		t.Fatal(err)
	}
	mu := gotUndef.(map[string]any)
	if _, ok := mu["b"].(sw.Undefined); !ok {
		t.Errorf("explicit undefined b: decoded = %#v", mu["b"])
	}

	wireVal, err := sw.Encode(context.Background(), node, map[string]any{"a": "x", "b": int64(7)})
	if err != nil {
		t.Fatal(err)
	}
	gotVal, err := sw.Decode(node, wireVal)
	if err != nil {
		t.Fatal(err)
	}
	mv := gotVal.(map[string]any)
	if mv["b"] != int64(7) {
		t.Errorf("present b: decoded = %#v, want 7", mv["b"])
	}

	if reflect.DeepEqual(wire, wireUndef) || reflect.DeepEqual(wire, wireVal) || reflect.DeepEqual(wireUndef, wireVal) {
		t.Errorf("the three presence states must produce distinguishable wire output")
	}
}

func TestDiscriminatedUnionRoundTrip(t *testing.T) {
	optP := schema.Object(
		sw.Field{Name: "t", Schema: schema.Literal("p")},
		sw.Field{Name: "n", Schema: schema.Number()},
	)
	optQ := schema.Object(
		sw.Field{Name: "t", Schema: schema.Literal("q")},
	)
	node := schema.DiscriminatedUnion("t", optP, optQ)

	wire, err := sw.Encode(context.Background(), node, map[string]any{"t": "q"})
	if err != nil {
		t.Fatal(err)
	}
	body := wire[sw.EnvelopeSize:]
	if body[0] != 0xA1 {
		t.Errorf("discriminated union header = %#x, want 0xa1", body[0])
	}
	got, err := sw.Decode(node, wire)
	if err != nil {
		t.Fatal(err)
	}
	m := got.(map[string]any)
	if m["t"] != "q" {
		t.Errorf("decoded variant = %#v, want t=q", m)
	}
	if _, present := m["n"]; present {
		t.Errorf("decoded variant should not carry field n from the other branch, got %#v", m)
	}
}

func TestArrayMidLengthForm(t *testing.T) {
	node := schema.Array(schema.Number())
	values := make([]any, 8)
	for i := range values {
		values[i] = int64(0)
	}
	wire, err := sw.Encode(context.Background(), node, values)
	if err != nil {
		t.Fatal(err)
	}
	body := wire[sw.EnvelopeSize:]
	if body[0] != 0x88 || body[1] != 0x08 {
		t.Errorf("mid-form array length header = % x, want [88 08]", body[:2])
	}
	got, err := sw.Decode(node, wire)
	if err != nil {
		t.Fatal(err)
	}
	arr := got.([]any)
	if len(arr) != 8 {
		t.Errorf("decoded length = %d, want 8", len(arr))
	}
}

func TestLazyRecursiveRoundTrip(t *testing.T) {
	var node sw.Node
	node = schema.Object(
		sw.Field{Name: "v", Schema: schema.Number()},
		sw.Field{Name: "next", Schema: schema.Optional(schema.Nullable(schema.Lazy(func() sw.Node { return node })))},
	)

	value := map[string]any{
		"v": int64(1),
		"next": map[string]any{
			"v": int64(2),
			"next": map[string]any{
				"v":    int64(3),
				"next": nil,
			},
		},
	}

	fp1 := sw.Fingerprint(node)
	fp2 := sw.Fingerprint(node)
	if fp1 != fp2 {
		t.Fatalf("fingerprint of a recursive schema must be stable, got %d then %d", fp1, fp2)
	}

	wire, err := sw.Encode(context.Background(), node, value)
	if err != nil {
		t.Fatal(err)
	}
	got, err := sw.Decode(node, wire)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, value) {
		t.Errorf("round trip = %#v, want %#v", got, value)
	}
}

func TestFingerprintFieldRenameIsStable(t *testing.T) {
	a := schema.Object(sw.Field{Name: "id", Schema: schema.String()})
	b := schema.Object(sw.Field{Name: "name", Schema: schema.String()})
	if sw.Fingerprint(a) != sw.Fingerprint(b) {
		t.Errorf("renaming a field must not change the fingerprint")
	}
}

func TestFingerprintFieldOrderChanges(t *testing.T) {
	a := schema.Object(
		sw.Field{Name: "a", Schema: schema.String()},
		sw.Field{Name: "b", Schema: schema.Number()},
	)
	b := schema.Object(
		sw.Field{Name: "b", Schema: schema.Number()},
		sw.Field{Name: "a", Schema: schema.String()},
	)
	if sw.Fingerprint(a) == sw.Fingerprint(b) {
		t.Errorf("reordering fields must change the fingerprint")
	}
}

func TestCrossSchemaRejection(t *testing.T) {
	s1 := schema.String()
	s2 := schema.Number()
	wire, err := sw.Encode(context.Background(), s1, "hello")
	if err != nil {
		t.Fatal(err)
	}
	_, err = sw.Decode(s2, wire)
	fault, ok := err.(sw.Fault)
	if !ok {
		t.Fatalf("Decode with mismatched schema: err = %v (%T), want a Fault", err, err)
	}
	if fault.Code != sw.CodeSchemaMismatch {
		t.Errorf("Decode with mismatched schema: code = %s, want %s", fault.Code, sw.CodeSchemaMismatch)
	}
}

func TestUnionPicksFirstMatchingOption(t *testing.T) {
	node := schema.Union(schema.Number(), schema.BigInt())
	wire, err := sw.Encode(context.Background(), node, int64(5))
	if err != nil {
		t.Fatal(err)
	}
	body := wire[sw.EnvelopeSize:]
	if body[0]&0x1F != 0 {
		t.Errorf("union option index = %d, want 0", body[0]&0x1F)
	}
}
