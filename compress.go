package skemawire

import (
	"context"

	"github.com/klauspost/compress/zstd"
)

// EncodeCompressed wraps Encode's envelope+body in a zstd frame. This is a
// storage convenience layered on top of the codec, not a change to the
// wire format: DecodeCompressed strips the zstd frame and hands the
// unmodified envelope+body to Decode.
func EncodeCompressed(ctx context.Context, node Node, value any) ([]byte, error) {
	raw, err := Encode(ctx, node, value)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(raw, nil), nil
}

// DecodeCompressed reverses EncodeCompressed.
func DecodeCompressed(node Node, data []byte) (any, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	raw, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, malformed("/", 0, "zstd frame is corrupt")
	}
	return Decode(node, raw)
}
