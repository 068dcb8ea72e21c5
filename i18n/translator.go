// Package i18n resolves codec fault codes to human-readable messages.
package i18n

// Translator retrieves localized messages for Fault codes. data carries
// optional metadata to embed in the message (for example, "path" or
// "want").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "validation_failure":
			return "値がスキーマを満たしていません"
		case "unserializable_schema":
			return "このスキーマ形状は符号化できません"
		case "value_out_of_range":
			return "値が許容範囲外です"
		case "transform_unserializable":
			return "catch の置換値を transform で再符号化できません"
		case "protocol_mismatch":
			return "プロトコルバージョンが一致しません"
		case "schema_mismatch":
			return "スキーマ指紋が一致しません"
		case "malformed_input":
			return "入力バイト列が不正です"
		}
	default: // "en"
		switch code {
		case "validation_failure":
			return "value does not satisfy schema"
		case "unserializable_schema":
			return "schema shape cannot be serialized"
		case "value_out_of_range":
			return "value is out of the wire form's range"
		case "transform_unserializable":
			return "catch replacement cannot pass through a transform"
		case "protocol_mismatch":
			return "envelope protocol version mismatch"
		case "schema_mismatch":
			return "envelope fingerprint mismatch"
		case "malformed_input":
			return "malformed wire input"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
