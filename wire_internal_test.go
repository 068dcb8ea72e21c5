package skemawire

import (
	"context"
	"math/big"
	"testing"
)

func TestEncodeInt64Narrowing(t *testing.T) {
	cases := []struct {
		n        int64
		wantSub  byte
		wantLen  int
	}{
		{0, subI8, 1},
		{127, subI8, 1},
		{-128, subI8, 1},
		{128, subI16, 2},
		{-129, subI16, 2},
		{32768, subI32, 4},
		{-2147483649, subI64, 8},
		{1 << 40, subI64, 8},
	}
	for _, tc := range cases {
		w := newCursorWriter()
		if err := encodeInt64(context.Background(), w, "/", tc.n); err != nil {
			t.Fatalf("encodeInt64(%d): %v", tc.n, err)
		}
		got := w.bytes()
		if got[0]&0x0F != tc.wantSub {
			t.Errorf("encodeInt64(%d): header subtype = %#x, want %#x", tc.n, got[0]&0x0F, tc.wantSub)
		}
		if len(got)-1 != tc.wantLen {
			t.Errorf("encodeInt64(%d): payload length = %d, want %d", tc.n, len(got)-1, tc.wantLen)
		}
	}
}

func TestEncodeDecodeNumericRoundTrip(t *testing.T) {
	values := []any{int64(42), int64(-1), int64(1 << 40), 3.5, true, false, big.NewInt(9000)}
	for _, v := range values {
		w := newCursorWriter()
		if err := encodeNumeric(context.Background(), w, "/", v); err != nil {
			t.Fatalf("encodeNumeric(%v): %v", v, err)
		}
		r := newCursorReader(w.bytes())
		header, err := r.readByte("/")
		if err != nil {
			t.Fatalf("readByte: %v", err)
		}
		got, err := decodeNumeric(r, "/", header)
		if err != nil {
			t.Fatalf("decodeNumeric(%v): %v", v, err)
		}
		if bi, ok := v.(*big.Int); ok {
			gbi, ok := got.(*big.Int)
			if !ok || gbi.Cmp(bi) != 0 {
				t.Errorf("decodeNumeric(%v) = %v", v, got)
			}
			continue
		}
		if got != v {
			t.Errorf("decodeNumeric(%v) = %v, want %v", v, got, v)
		}
	}
}

func TestIntegerLiteralBody(t *testing.T) {
	w := newCursorWriter()
	if err := encodeInt64(context.Background(), w, "/", 42); err != nil {
		t.Fatal(err)
	}
	got := w.bytes()
	want := []byte{0x00, 0x2A}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("int8 body = % x, want % x", got, want)
	}
}

func TestStringLiteralBody(t *testing.T) {
	w := newCursorWriter()
	if err := encodeString(w, "/", "hi"); err != nil {
		t.Fatal(err)
	}
	got := w.bytes()
	want := []byte{0x20, 0x02, 'h', 'i'}
	if len(got) != len(want) {
		t.Fatalf("short-string body = % x, want % x", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("short-string body[%d] = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestArrayMidLengthFormHeader(t *testing.T) {
	w := newCursorWriter()
	if err := writeSequenceLength(w, "/", 8); err != nil {
		t.Fatal(err)
	}
	got := w.bytes()
	want := []byte{0x88, 0x08}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("mid-form array length header = % x, want % x", got, want)
	}
}
