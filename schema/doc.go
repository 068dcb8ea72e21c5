// Package schema builds skemawire.Node trees: the schema capability set
// the codec traverses to encode and decode values. Every constructor here
// returns a value satisfying skemawire.Node plus, for composite and
// decorator kinds, the matching family interface (skemawire.ObjectNode,
// skemawire.ArrayNode, and so on) that the codec discovers by type
// assertion.
//
// Construction is plain function calls rather than a fluent builder,
// since a schema tree here is a fixed, statically-known shape handed to
// Encode/Decode once; there is no incremental JSON-document walk to
// stream through the way the sibling validation library's dsl package
// builds one.
package schema
