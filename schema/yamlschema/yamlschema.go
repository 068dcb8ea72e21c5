// Package yamlschema loads a schema's structural shape (family and
// children, never value-level predicates such as Refine or Preprocess)
// from a small YAML description, using gopkg.in/yaml.v3. It lets a
// schema.Node tree be built declaratively (from a config file, a test
// fixture) instead of only through the schema package's Go constructors.
package yamlschema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	sw "github.com/reoring/skemawire"
	"github.com/reoring/skemawire/schema"
	"github.com/reoring/skemawire/schema/jsonschema"
)

// Desc is the YAML shape of a schema node. Only the fields relevant to
// Kind are read; everything else is ignored, matching this format's
// scope (shape only, no rules).
type Desc struct {
	Kind          string     `yaml:"kind"`
	Optional      bool       `yaml:"optional"`
	Nullable      bool       `yaml:"nullable"`
	Fields        []FieldDesc `yaml:"fields"`
	Element       *Desc      `yaml:"element"`
	Items         []Desc     `yaml:"items"`
	Options       []Desc     `yaml:"options"`
	Discriminator string     `yaml:"discriminator"`
	Key           *Desc      `yaml:"key"`
	Value         *Desc      `yaml:"value"`
	Left          *Desc      `yaml:"left"`
	Right         *Desc      `yaml:"right"`
	MembersJSON   string     `yaml:"membersJSON"`
	LiteralJSON   string     `yaml:"literalJSON"`
}

// FieldDesc is one entry of an object description's field list. Field
// order in the YAML document is preserved, since object field order is
// part of the wire contract and the schema-identity fingerprint.
type FieldDesc struct {
	Name   string `yaml:"name"`
	Schema Desc   `yaml:"schema"`
}

// Parse decodes a YAML document into a schema.Node tree.
func Parse(doc []byte) (sw.Node, error) {
	var d Desc
	if err := yaml.Unmarshal(doc, &d); err != nil {
		return nil, fmt.Errorf("yamlschema: %w", err)
	}
	return Build(d)
}

// Build converts an already-decoded Desc into a schema.Node tree.
func Build(d Desc) (sw.Node, error) {
	node, err := build(d)
	if err != nil {
		return nil, err
	}
	if d.Optional {
		node = schema.Optional(node)
	}
	if d.Nullable {
		node = schema.Nullable(node)
	}
	return node, nil
}

func build(d Desc) (sw.Node, error) {
	switch d.Kind {
	case "string":
		return schema.String(), nil
	case "number":
		return schema.Number(), nil
	case "bigint":
		return schema.BigInt(), nil
	case "boolean", "bool":
		return schema.Boolean(), nil
	case "date":
		return schema.Date(), nil
	case "nan":
		return schema.NaN(), nil
	case "uuid":
		return schema.UUID(), nil
	case "literal":
		v, err := jsonschema.DecodeLiteral([]byte(d.LiteralJSON))
		if err != nil {
			return nil, err
		}
		return schema.Literal(v), nil
	case "enum":
		members, kind, err := jsonschema.DecodeMembers([]byte(d.MembersJSON))
		if err != nil {
			return nil, err
		}
		return schema.Enum(kind, members...), nil
	case "object":
		fields := make([]sw.Field, 0, len(d.Fields))
		for _, fd := range d.Fields {
			fs, err := Build(fd.Schema)
			if err != nil {
				return nil, fmt.Errorf("yamlschema: field %q: %w", fd.Name, err)
			}
			fields = append(fields, sw.Field{Name: fd.Name, Schema: fs})
		}
		return schema.Object(fields...), nil
	case "array":
		elem, err := requireChild(d.Element, "array element")
		if err != nil {
			return nil, err
		}
		return schema.Array(elem), nil
	case "set":
		elem, err := requireChild(d.Element, "set element")
		if err != nil {
			return nil, err
		}
		return schema.Set(elem), nil
	case "tuple":
		items, err := buildAll(d.Items)
		if err != nil {
			return nil, err
		}
		return schema.Tuple(items...), nil
	case "union":
		options, err := buildAll(d.Options)
		if err != nil {
			return nil, err
		}
		if d.Discriminator != "" {
			return schema.DiscriminatedUnion(d.Discriminator, options...), nil
		}
		return schema.Union(options...), nil
	case "record":
		value, err := requireChild(d.Value, "record value")
		if err != nil {
			return nil, err
		}
		return schema.Record(value), nil
	case "map":
		key, err := requireChild(d.Key, "map key")
		if err != nil {
			return nil, err
		}
		value, err := requireChild(d.Value, "map value")
		if err != nil {
			return nil, err
		}
		return schema.Map(key, value), nil
	case "intersection":
		left, err := requireChild(d.Left, "intersection left")
		if err != nil {
			return nil, err
		}
		right, err := requireChild(d.Right, "intersection right")
		if err != nil {
			return nil, err
		}
		return schema.Intersection(left, right), nil
	default:
		return nil, fmt.Errorf("yamlschema: unknown kind %q", d.Kind)
	}
}

func requireChild(d *Desc, label string) (sw.Node, error) {
	if d == nil {
		return nil, fmt.Errorf("yamlschema: missing %s", label)
	}
	return Build(*d)
}

func buildAll(ds []Desc) ([]sw.Node, error) {
	out := make([]sw.Node, 0, len(ds))
	for i := range ds {
		n, err := Build(ds[i])
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
