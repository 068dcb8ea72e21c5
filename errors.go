package skemawire

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/skemawire/i18n"
)

// Fault codes, one per distinguishable failure a decode or encode call can raise.
const (
	CodeValidationFailure       = "validation_failure"
	CodeUnserializableSchema    = "unserializable_schema"
	CodeValueOutOfRange         = "value_out_of_range"
	CodeTransformUnserializable = "transform_unserializable"
	CodeProtocolMismatch        = "protocol_mismatch"
	CodeSchemaMismatch          = "schema_mismatch"
	CodeMalformedInput          = "malformed_input"
)

// Fault is a single fatal error raised during an encode or decode call:
// a traversal path (slash-delimited, root "/"), a stable code, a human
// message, and an optional byte offset into the wire buffer for
// decode-side faults.
type Fault struct {
	Path    string
	Code    string
	Message string
	Offset  int64 // -1 when not applicable (encode side, or offset unknown)
	Cause   error
}

func (f Fault) Error() string {
	if f.Offset >= 0 {
		return fmt.Sprintf("%s at %s (offset %d): %s", f.Code, f.Path, f.Offset, f.Message)
	}
	return fmt.Sprintf("%s at %s: %s", f.Code, f.Path, f.Message)
}

func (f Fault) Unwrap() error { return f.Cause }

// Faults collects every fault produced by a single call; in practice
// encode/decode stop at the first one, but the slice shape lets a caller
// report more than one when both sides of an intersection fail, for
// instance.
type Faults []Fault

func (fs Faults) Error() string {
	if len(fs) == 0 {
		return ""
	}
	const maxShown = 3
	var b strings.Builder
	lim := len(fs)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fs[i].Error())
	}
	if len(fs) > lim {
		fmt.Fprintf(&b, "; ... (total %d)", len(fs))
	}
	return b.String()
}

func fault(path, code string, offset int64, cause error, msgArgs ...string) Fault {
	data := map[string]string{"path": path}
	if len(msgArgs) > 0 {
		data["detail"] = msgArgs[0]
	}
	msg := i18n.T(code, data)
	if len(msgArgs) > 0 {
		msg = msg + ": " + msgArgs[0]
	}
	return Fault{Path: path, Code: code, Message: msg, Offset: offset, Cause: cause}
}

func encodeFault(path, code string, cause error, detail ...string) error {
	return fault(path, code, -1, cause, detail...)
}

func decodeFault(path, code string, offset int64, cause error, detail ...string) error {
	return fault(path, code, offset, cause, detail...)
}

// unserializableFault names the refused kind so callers can tell "any" from
// "function" apart without string-matching the message.
func unserializableFault(path string, k Kind) error {
	return encodeFault(path, CodeUnserializableSchema, nil, "schema kind "+k.String()+" cannot be serialized")
}

func outOfRangeFault(path string, detail string) error {
	return encodeFault(path, CodeValueOutOfRange, nil, detail)
}

func malformed(path string, offset int64, detail string) error {
	return decodeFault(path, CodeMalformedInput, offset, nil, detail)
}

// WarnFunc receives non-fatal diagnostics, such as an integer exceeding
// safe-integer range. It must not block; a slow sink should hand off
// asynchronously itself.
type WarnFunc func(path, message string)

type warnKey struct{}

// WithWarn returns a child context that routes diagnostic warnings raised
// during Encode to fn. Decode takes no context and raises no warnings.
func WithWarn(ctx context.Context, fn WarnFunc) context.Context {
	return context.WithValue(ctx, warnKey{}, fn)
}

func warnFrom(ctx context.Context) WarnFunc {
	if ctx == nil {
		return nil
	}
	fn, _ := ctx.Value(warnKey{}).(WarnFunc)
	return fn
}

func emitWarn(ctx context.Context, path string, n int64) {
	fn := warnFrom(ctx)
	if fn == nil {
		return
	}
	fn(path, "integer "+strconv.FormatInt(n, 10)+" exceeds safe-integer range (±2^53-1)")
}

const maxSafeInteger = int64(1<<53) - 1
const minSafeInteger = -(int64(1<<53) - 1)
