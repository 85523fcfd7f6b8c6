package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runPayload(t *testing.T, args ...string) string {
	t.Helper()

	cmd := newPayloadCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestPayloadCommand_RedactsSecretByDefault(t *testing.T) {
	out := runPayload(t, "--secret", "hunter2")

	assert.Contains(t, out, `"x-bootstrap-secret": "REDACTED"`)
	assert.NotContains(t, out, "hunter2")
}

func TestPayloadCommand_RevealEmbedsSecret(t *testing.T) {
	out := runPayload(t, "--secret", "hunter2", "--reveal")

	var event struct {
		Version string            `json:"version"`
		Headers map[string]string `json:"headers"`
		Body    string            `json:"body"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &event))

	assert.Equal(t, "2.0", event.Version)
	assert.Equal(t, "hunter2", event.Headers["x-bootstrap-secret"])

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(event.Body), &body), "body should be JSON text")
	assert.Len(t, body, 3)
}

func TestPayloadCommand_WritesOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.json")
	out := runPayload(t, "--secret", "hunter2", "-o", path)

	assert.Contains(t, out, "Payload written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var event map[string]any
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "/admin/demo-bootstrap", event["rawPath"])
}
