package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	transactionsKey = "transactions"
	bodyPreviewLen  = 256
)

// envelopeKeys are tried in order when a single-document result does not
// carry transactions at the top level.
var envelopeKeys = []string{"data", "content"}

// acceptSingle validates a single-document result and strips one level of
// envelope if needed.
func acceptSingle(body []byte) (json.RawMessage, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return nil, err
	}

	if _, ok := obj[transactionsKey]; ok {
		return json.RawMessage(body), nil
	}

	for _, key := range envelopeKeys {
		inner, ok := obj[key]
		if !ok {
			continue
		}

		innerObj, err := decodeObject(inner)
		if err != nil {
			continue
		}

		if _, ok := innerObj[transactionsKey]; ok {
			return inner, nil
		}
	}

	return nil, &SchemaError{
		Reason: fmt.Sprintf("no %q field at the top level or under %v", transactionsKey, envelopeKeys),
		Body:   preview(body),
	}
}

// acceptMulti accepts any JSON object as-is.
func acceptMulti(body []byte) (json.RawMessage, error) {
	if _, err := decodeObject(body); err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}

func decodeObject(b []byte) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage

	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &SchemaError{Reason: "response is not a JSON object", Body: preview(b)}
	}

	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, &SchemaError{Reason: "invalid JSON: " + err.Error(), Body: preview(b)}
	}

	return obj, nil
}

func preview(b []byte) string {
	if len(b) > bodyPreviewLen {
		return string(b[:bodyPreviewLen]) + "..."
	}
	return string(b)
}

// errorMessage extracts the failure text of a non-2xx response: JSON detail,
// then JSON error, then the raw body, then the status line.
func errorMessage(statusCode int, status string, body []byte) string {
	const fallback = "Processing failed"

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"detail", "error"} {
			if msg := jsonText(payload[key]); msg != "" {
				return msg
			}
		}
		return fallback
	}

	if text := string(bytes.TrimSpace(body)); text != "" {
		return text
	}

	return fmt.Sprintf("Server returned status %d: %s", statusCode, status)
}

func jsonText(raw json.RawMessage) string {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil && !b {
		return ""
	}

	return string(raw)
}
