package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xeipuuv/gojsonschema"
)

// Schema asserts that the raw JSON document matches the given schema.
func Schema(t *testing.T, schema map[string]any, document []byte) {
	t.Helper()

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		assert.Fail(t, "schema validation could not run", "error: %v", err)
		return
	}
	if result.Valid() {
		return
	}
	for _, desc := range result.Errors() {
		assert.Fail(t, "schema violation", "%s", desc)
	}
}
