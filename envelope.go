package skemawire

// writeEnvelope appends the 9-byte envelope (1 version byte, 8-byte
// big-endian schema fingerprint) to w.
func writeEnvelope(w *cursorWriter, node Node) {
	w.writeByte(ProtocolVersion)
	w.writeUint64BE(Fingerprint(node))
}

// readEnvelope consumes and verifies the 9-byte envelope, returning a
// ProtocolMismatch fault for an unknown version byte and a SchemaMismatch
// fault for a fingerprint that does not match node.
func readEnvelope(r *cursorReader, node Node) error {
	version, err := r.readByte("/")
	if err != nil {
		return err
	}
	if version != ProtocolVersion {
		return decodeFault("/", CodeProtocolMismatch, 0, nil, "unsupported protocol version "+itoa(int(version)))
	}
	got, err := r.readUint64BE("/")
	if err != nil {
		return err
	}
	want := Fingerprint(node)
	if got != want {
		return decodeFault("/", CodeSchemaMismatch, 1, nil, "schema fingerprint does not match the decoding schema")
	}
	return nil
}
