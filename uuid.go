package skemawire

import "github.com/google/uuid"

// UUIDNode marks a string-family schema whose values pack on the wire as
// the raw 16-byte binary form of a UUID rather than UTF-8 text
// (schema.UUID()). The dispatcher checks for it before falling back to
// the generic string codec, so a `uuid` field carries a 16-byte payload
// (after the 2-byte short string header) instead of the 36-byte textual
// form a plain string schema would give it.
type UUIDNode interface {
	Node
	IsUUID() bool
}

func encodeUUIDValue(w *cursorWriter, path string, value any) error {
	var id uuid.UUID
	switch t := value.(type) {
	case uuid.UUID:
		id = t
	case string:
		parsed, err := uuid.Parse(t)
		if err != nil {
			return encodeFault(path, CodeValidationFailure, err, "not a valid UUID")
		}
		id = parsed
	default:
		return encodeFault(path, CodeValidationFailure, nil, "expected a uuid.UUID or UUID string")
	}
	w.writeByte(tagString | (strFormShort << 4))
	w.writeByte(16)
	b, _ := id.MarshalBinary()
	w.writeBytes(b)
	return nil
}

func decodeUUIDValue(r *cursorReader, path string, header byte) (any, error) {
	if header&0x10 != 0 {
		return nil, malformed(path, r.offset()-1, "uuid payload must use the short string length form")
	}
	n, err := r.readByte(path)
	if err != nil {
		return nil, err
	}
	if n != 16 {
		return nil, malformed(path, r.offset()-1, "uuid payload must be exactly 16 bytes")
	}
	payload, err := r.take(path, 16)
	if err != nil {
		return nil, err
	}
	var id uuid.UUID
	if err := id.UnmarshalBinary(payload); err != nil {
		return nil, malformed(path, r.offset()-16, "malformed uuid payload")
	}
	return id, nil
}
