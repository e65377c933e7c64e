package apiclient

import "regexp"

const redacted = `"[REDACTED]"`

// Matches password/authorization values in serialized JSON. The value may
// be a string, escaped quotes included, or a bare number.
var secretPattern = regexp.MustCompile(`(?i)("(?:password|authorization)"\s*:\s*)(?:"(?:[^"\\]|\\.)*"|\d+)`)

// MaskSecrets replaces credential values in a JSON string so payloads are
// safe to put in logs and test output.
func MaskSecrets(payload string) string {
	return secretPattern.ReplaceAllString(payload, `$1`+redacted)
}
