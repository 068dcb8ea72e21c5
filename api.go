package skemawire

import "context"

// Encode validates value against node and serializes it as a 9-byte
// envelope (protocol version + schema fingerprint) followed by the wire
// body. Use context.Background() when no diagnostic warning sink is
// needed; attach one with WithWarn.
func Encode(ctx context.Context, node Node, value any) ([]byte, error) {
	validated, err := node.Validate(value)
	if err != nil {
		return nil, err
	}
	w := newCursorWriter()
	writeEnvelope(w, node)
	if err := encodeValue(ctx, w, node, validated, "/", false); err != nil {
		return nil, err
	}
	return w.bytes(), nil
}

// Decode verifies data's envelope against node, reconstructs the value
// from the wire body, and re-validates the result against node before
// returning it: decode round-trips through the same validation gate
// encode does, it is not merely encode's byte-level inverse.
func Decode(node Node, data []byte) (any, error) {
	if len(data) < EnvelopeSize {
		return nil, malformed("/", 0, "input shorter than the envelope")
	}
	r := newCursorReader(data)
	if err := readEnvelope(r, node); err != nil {
		return nil, err
	}
	v, err := decodeValue(r, node, "/")
	if err != nil {
		return nil, err
	}
	if r.remaining() != 0 {
		return nil, malformed("/", r.offset(), "trailing bytes after the decoded value")
	}
	vv, err := node.Validate(v)
	if err != nil {
		return nil, err
	}
	return vv, nil
}
