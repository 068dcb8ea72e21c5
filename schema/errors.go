package schema

import (
	"fmt"

	sw "github.com/reoring/skemawire"
)

// typeFault reports that v does not match a schema's declared kind. This
// is the TypeCheck half of Validate; it never carries an Offset since it
// is always raised before any bytes exist.
func typeFault(want sw.Kind, v any) error {
	return sw.Faults{{
		Path:    "/",
		Code:    sw.CodeValidationFailure,
		Message: fmt.Sprintf("expected a %s value, got %T", want, v),
		Offset:  -1,
	}}
}

func fieldFault(name, detail string) error {
	return sw.Faults{{
		Path:    "/" + name,
		Code:    sw.CodeValidationFailure,
		Message: detail,
		Offset:  -1,
	}}
}

// wrapFieldFault prefixes a child field's fault path with name, so a
// nested Validate failure reports the full path from the root rather than
// just the failing leaf.
func wrapFieldFault(name string, err error) error {
	fs, ok := err.(sw.Faults)
	if !ok {
		return fieldFault(name, err.Error())
	}
	out := make(sw.Faults, len(fs))
	for i, f := range fs {
		f.Path = "/" + name + f.Path
		out[i] = f
	}
	return out
}
