package normalize

import "encoding/json"

// decode unmarshals raw JSON into the loose any-typed form the probing
// helpers below operate on. A nil or unparseable payload decodes to nil.
func decode(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}
	return value
}

func asMap(value any) map[string]any {
	m, _ := value.(map[string]any)
	return m
}

func asSlice(value any) []any {
	s, _ := value.([]any)
	return s
}

// dig walks nested objects by key, returning nil as soon as a step is not an
// object or the key is absent. It is the typed stand-in for the original
// front end's optional chaining.
func dig(value any, keys ...string) any {
	for _, key := range keys {
		m := asMap(value)
		if m == nil {
			return nil
		}
		value = m[key]
	}
	return value
}

// str returns the first non-empty string among the named fields of m.
func str(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// num returns the first numeric value among the named fields of m.
func num(m map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		if f, ok := m[key].(float64); ok {
			return f, true
		}
	}
	return 0, false
}

func boolean(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}
