// Package jsonschema decodes the small JSON-encoded literal/enum member
// lists a schema/yamlschema description can reference, using
// goccy/go-json rather than encoding/json for consistency with the rest
// of this module's dependency choices.
package jsonschema

import (
	"fmt"

	gojson "github.com/goccy/go-json"

	sw "github.com/reoring/skemawire"
)

// DecodeMembers parses a JSON array of string or numeric enum/literal
// members (e.g. `["draft","published","archived"]` or `[1,2,3]`) and
// reports which primitive family they belong to.
func DecodeMembers(raw []byte) (members []any, kind sw.Kind, err error) {
	var generic []any
	if err := gojson.Unmarshal(raw, &generic); err != nil {
		return nil, 0, fmt.Errorf("jsonschema: decoding member list: %w", err)
	}
	if len(generic) == 0 {
		return nil, 0, fmt.Errorf("jsonschema: member list must not be empty")
	}
	switch generic[0].(type) {
	case string:
		kind = sw.KindString
	case float64:
		kind = sw.KindNumber
	default:
		return nil, 0, fmt.Errorf("jsonschema: unsupported member type %T", generic[0])
	}
	for _, m := range generic {
		switch kind {
		case sw.KindString:
			s, ok := m.(string)
			if !ok {
				return nil, 0, fmt.Errorf("jsonschema: mixed member types in list")
			}
			members = append(members, s)
		case sw.KindNumber:
			f, ok := m.(float64)
			if !ok {
				return nil, 0, fmt.Errorf("jsonschema: mixed member types in list")
			}
			members = append(members, f)
		}
	}
	return members, kind, nil
}

// DecodeLiteral parses a single JSON scalar (string or number) as a
// literal value.
func DecodeLiteral(raw []byte) (any, error) {
	var v any
	if err := gojson.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("jsonschema: decoding literal: %w", err)
	}
	switch v.(type) {
	case string, float64:
		return v, nil
	default:
		return nil, fmt.Errorf("jsonschema: unsupported literal type %T", v)
	}
}
