package questiongen

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnparsable reports that no recovery stage could coerce the model
// response into structured question data.
var ErrUnparsable = errors.New("could not extract structured question data from model response")

// ParseQuestions recovers an ordered list of question records from raw model
// output. Models often wrap a well-formed JSON array in code fences or prose;
// the staged fallbacks salvage the array, but every success path passes a
// strict decode exactly once. On failure no partial results are returned.
func ParseQuestions(raw string) ([]map[string]interface{}, error) {
	clean := stripFences(raw)

	var decoded interface{}
	if err := json.Unmarshal([]byte(clean), &decoded); err == nil {
		return coerceRecords(decoded)
	}

	// The cleaned text is not valid JSON on its own. Try the greedy span
	// from the first '[' to the last ']', which covers arrays surrounded
	// by commentary.
	if span, ok := bracketSpan(clean); ok {
		var records []map[string]interface{}
		if err := json.Unmarshal([]byte(span), &records); err == nil {
			return records, nil
		}
	}

	return nil, fmt.Errorf("%w: no decodable JSON found", ErrUnparsable)
}

func stripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

func bracketSpan(s string) (string, bool) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// coerceRecords shapes a successfully decoded value into a record list:
// an array is used as-is, an object with a "questions" key yields its inner
// list, and any other object is wrapped as a single record.
func coerceRecords(v interface{}) ([]map[string]interface{}, error) {
	switch t := v.(type) {
	case []interface{}:
		return toRecordList(t)
	case map[string]interface{}:
		if inner, ok := t["questions"]; ok {
			list, ok := inner.([]interface{})
			if !ok {
				return nil, fmt.Errorf("%w: \"questions\" value is not an array", ErrUnparsable)
			}
			return toRecordList(list)
		}
		return []map[string]interface{}{t}, nil
	default:
		return nil, fmt.Errorf("%w: decoded value is not an object or array", ErrUnparsable)
	}
}

func toRecordList(items []interface{}) ([]map[string]interface{}, error) {
	records := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		record, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: array element is not an object", ErrUnparsable)
		}
		records = append(records, record)
	}
	return records, nil
}
