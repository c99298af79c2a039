package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var prettyJSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	IndentionStep:          2,
}.Froze()

// PrettyJson serializa o valor indentado, para logs de depuração
func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := prettyJSON.Unmarshal(raw, &decoded); err != nil {
			return string(raw)
		}
		in = decoded
	}

	buffer, err := prettyJSON.Marshal(in)
	if err != nil {
		return ""
	}

	return string(buffer)
}
