// Package skemawire implements a schema-directed binary codec.
//
// Given a schema (a Node tree satisfying the small capability set described
// by this package: Kind, optionality, and Validate), Encode produces a
// compact byte sequence for a value that conforms to the schema, and Decode
// reconstructs an equivalent value from that byte sequence. Sender and
// receiver must agree on the schema; the wire format is not self-describing
// beyond a short 9-byte compatibility header (protocol version + schema
// identity fingerprint).
//
// Design policy:
//   - Keep the public API (Node and its family interfaces, Encode, Decode
//     and their compressed variants, Fingerprint, Fault) in the root
//     package; put the bit-level mechanics in unexported files alongside it.
//   - Schema construction lives in the schema subpackage; this package only
//     consumes the Node capability set, never a concrete schema type.
//   - Prefer black-box testing against Encode/Decode using schemas built
//     with the schema package.
//
// Typical usage:
//
//	s := schema.Object(skemawire.Field{Name: "id", Schema: schema.String()})
//	wire, err := skemawire.Encode(context.Background(), s, map[string]any{"id": "abc"})
//	v, err := skemawire.Decode(s, wire)
package skemawire
