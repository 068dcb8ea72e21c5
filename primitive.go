package skemawire

import (
	"time"
	"unicode/utf8"
)

func encodeString(w *cursorWriter, path string, s string) error {
	n := len(s)
	switch {
	case n < maxShortStringLen:
		nibble := byte((n >> 8) & 0x0F)
		w.writeByte(tagString | (strFormShort << 4) | nibble)
		w.writeByte(byte(n & 0xFF))
	case n < maxStringLen:
		nibble := byte((n >> 16) & 0x0F)
		w.writeByte(tagString | (strFormLong << 4) | nibble)
		w.writeByte(byte((n >> 8) & 0xFF))
		w.writeByte(byte(n & 0xFF))
	default:
		return outOfRangeFault(path, "string length "+itoa(n)+" >= 2^20 bytes")
	}
	w.writeBytes([]byte(s))
	return nil
}

func decodeString(r *cursorReader, path string, header byte) (string, error) {
	longForm := header&0x10 != 0
	nibble := int(header & 0x0F)
	var length int
	if !longForm {
		b1, err := r.readByte(path)
		if err != nil {
			return "", err
		}
		length = nibble<<8 | int(b1)
	} else {
		b1, err := r.readByte(path)
		if err != nil {
			return "", err
		}
		b2, err := r.readByte(path)
		if err != nil {
			return "", err
		}
		length = nibble<<16 | int(b1)<<8 | int(b2)
	}
	payload, err := r.take(path, length)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(payload) {
		return "", malformed(path, r.offset()-int64(length), "string payload is not valid UTF-8")
	}
	return string(payload), nil
}

func encodeDate(w *cursorWriter, t time.Time) {
	w.writeByte(headerDate)
	w.writeUintLE(uint64(t.UnixMilli()), 8)
}

func decodeDate(r *cursorReader, path string) (time.Time, error) {
	u, err := r.readUintLE(path, 8)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(int64(u)).UTC(), nil
}
