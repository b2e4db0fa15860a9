package extraction

import "encoding/json"

// firstJSONObject pulls the first balanced {...} span out of raw model output
// and parses it. Handles code fences and surrounding prose. Returns false when
// no parseable object exists.
func firstJSONObject(text string) (map[string]any, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range text {
		if start >= 0 && inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				var obj map[string]any
				if err := json.Unmarshal([]byte(text[start:i+1]), &obj); err != nil {
					return nil, false
				}
				return obj, true
			}
		case '"':
			if start >= 0 {
				inString = true
			}
		}
	}
	return nil, false
}

// stringField reads a string-typed key from a decoded JSON object, treating
// missing, null, and non-string values as absent.
func stringField(obj map[string]any, key string) string {
	if v, ok := obj[key].(string); ok {
		return v
	}
	return ""
}
