// Package schemas holds the JSON Schemas the suite validates API responses
// against. Schemas are plain maps fed to gojsonschema.
package schemas

// Envelope fields every API response carries.
var obligatoryFields = map[string]any{
	"IsSuccess":    map[string]any{"type": "boolean"},
	"ErrorMessage": map[string]any{"type": []string{"string", "null"}},
}

var obligatoryRequired = []string{"IsSuccess", "ErrorMessage"}

// envelope builds a response schema wrapping the entity schema under key.
func envelope(key string, entity map[string]any) map[string]any {
	props := map[string]any{key: entity}
	for k, v := range obligatoryFields {
		props[k] = v
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   append([]string{key}, obligatoryRequired...),
	}
}

// listEnvelope builds a response schema wrapping an array of entity under key.
func listEnvelope(key string, entity map[string]any) map[string]any {
	return envelope(key, map[string]any{
		"type":  "array",
		"items": entity,
	})
}

func enumOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
