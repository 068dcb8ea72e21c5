package skemawire

// Undefined is the sentinel value distinguishing "key present with the
// explicit undefined value" from "key absent". Absence itself is
// represented by the key's absence from a record's field map; there is
// no Go value for it, since it never appears as a value.
type Undefined struct{}

func isUndefined(v any) bool {
	_, ok := v.(Undefined)
	return ok
}
