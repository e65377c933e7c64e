// Package validate checks API responses: status code, the IsSuccess and
// ErrorMessage envelope fields, and optionally a JSON Schema. Checks are
// soft so one failed expectation does not hide the others.
package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salesportal-qa/sales-portal-tests/internal/apiclient"
)

// Expect describes what a response must look like. Nil pointer fields
// skip the corresponding check.
type Expect struct {
	Status       int
	IsSuccess    *bool
	ErrorMessage *string
	Schema       map[string]any
}

// Bool returns a pointer for Expect.IsSuccess.
func Bool(v bool) *bool { return &v }

// Str returns a pointer for Expect.ErrorMessage.
func Str(v string) *string { return &v }

type envelope struct {
	IsSuccess    bool    `json:"IsSuccess"`
	ErrorMessage *string `json:"ErrorMessage"`
}

// Response asserts the response against exp.
func Response(t *testing.T, resp *apiclient.Response, exp Expect) {
	t.Helper()

	assert.Equal(t, exp.Status, resp.Status, "unexpected status code, body: %s",
		apiclient.MaskSecrets(string(resp.Body)))

	if exp.IsSuccess == nil && exp.ErrorMessage == nil && exp.Schema == nil {
		return
	}

	var env envelope
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		assert.Fail(t, "response body is not a JSON envelope",
			"error: %v, body: %s", err, apiclient.MaskSecrets(string(resp.Body)))
		return
	}

	if exp.IsSuccess != nil {
		assert.Equal(t, *exp.IsSuccess, env.IsSuccess, "unexpected IsSuccess")
	}
	if exp.ErrorMessage != nil {
		if assert.NotNil(t, env.ErrorMessage, "expected error message %q, got null", *exp.ErrorMessage) {
			assert.Equal(t, *exp.ErrorMessage, *env.ErrorMessage, "unexpected ErrorMessage")
		}
	} else if exp.IsSuccess != nil && *exp.IsSuccess {
		assert.Nil(t, env.ErrorMessage, "expected null ErrorMessage on success")
	}

	if exp.Schema != nil {
		Schema(t, exp.Schema, resp.Body)
	}
}
