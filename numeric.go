package skemawire

import (
	"context"
	"math"
	"math/big"
)

// encodeNumeric implements the integer narrowing policy: pick the
// smallest wire form that exactly represents the value. A float64 that
// happens to hold an integral value (3.0) is not narrowed; only a value
// that is already an int/int64 in Go gets the narrower integer forms
// below, since narrowing a float64 would make the wire form depend on
// the value rather than the declared type.
func encodeNumeric(ctx context.Context, w *cursorWriter, path string, v any) error {
	switch t := v.(type) {
	case bool:
		if t {
			w.writeByte(tagNumeric | subTrue)
		} else {
			w.writeByte(tagNumeric | subFalse)
		}
		return nil
	case *big.Int:
		if t == nil || !t.IsInt64() {
			return outOfRangeFault(path, "bigint outside signed-64 range")
		}
		w.writeByte(tagNumeric | subBigIntI64)
		w.writeUintLE(uint64(t.Int64()), 8)
		return nil
	case int64:
		return encodeInt64(ctx, w, path, t)
	case int:
		return encodeInt64(ctx, w, path, int64(t))
	case float64:
		switch {
		case math.IsNaN(t):
			w.writeByte(tagNumeric | subNaN)
		case math.IsInf(t, 1):
			w.writeByte(tagNumeric | subPosInf)
		case math.IsInf(t, -1):
			w.writeByte(tagNumeric | subNegInf)
		default:
			w.writeByte(tagNumeric | subF64)
			w.writeUintLE(math.Float64bits(t), 8)
		}
		return nil
	default:
		return encodeFault(path, CodeValidationFailure, nil, "value is not a supported numeric/boolean type")
	}
}

func encodeInt64(ctx context.Context, w *cursorWriter, path string, n int64) error {
	switch {
	case n >= -1<<7 && n < 1<<7:
		w.writeByte(tagNumeric | subI8)
		w.writeUintLE(uint64(uint8(int8(n))), 1)
	case n >= -1<<15 && n < 1<<15:
		w.writeByte(tagNumeric | subI16)
		w.writeUintLE(uint64(uint16(int16(n))), 2)
	case n >= -1<<31 && n < 1<<31:
		w.writeByte(tagNumeric | subI32)
		w.writeUintLE(uint64(uint32(int32(n))), 4)
	default:
		w.writeByte(tagNumeric | subI64)
		w.writeUintLE(uint64(n), 8)
		if n > maxSafeInteger || n < minSafeInteger {
			emitWarn(ctx, path, n)
		}
	}
	return nil
}

func decodeNumeric(r *cursorReader, path string, header byte) (any, error) {
	sub := header & 0x0F
	switch sub {
	case subI8:
		b, err := r.take(path, 1)
		if err != nil {
			return nil, err
		}
		return int64(int8(b[0])), nil
	case subF64:
		u, err := r.readUintLE(path, 8)
		if err != nil {
			return nil, err
		}
		return math.Float64frombits(u), nil
	case subI16:
		u, err := r.readUintLE(path, 2)
		if err != nil {
			return nil, err
		}
		return int64(int16(u)), nil
	case subI32:
		u, err := r.readUintLE(path, 4)
		if err != nil {
			return nil, err
		}
		return int64(int32(u)), nil
	case subBigIntI64:
		u, err := r.readUintLE(path, 8)
		if err != nil {
			return nil, err
		}
		return big.NewInt(int64(u)), nil
	case subI64:
		u, err := r.readUintLE(path, 8)
		if err != nil {
			return nil, err
		}
		return int64(u), nil
	case subNaN:
		return math.NaN(), nil
	case subPosInf:
		return math.Inf(1), nil
	case subNegInf:
		return math.Inf(-1), nil
	case subTrue:
		return true, nil
	case subFalse:
		return false, nil
	default:
		return nil, malformed(path, r.offset()-1, "reserved numeric subtype")
	}
}
