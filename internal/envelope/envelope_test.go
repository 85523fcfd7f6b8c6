package envelope

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stagingParams() Params {
	return Params{
		RouteKey: "ANY /admin/{proxy+}",
		RawPath:  "/admin/demo-bootstrap",
		APIID:    "1oi4sd5b4i",
		Stage:    "$default",
		Secret:   "s3cret-value",
		Body: Body{
			PropertyServiceURL: "https://property.example.com",
			MortgageServiceURL: "https://mortgage.example.com",
			PaymentServiceURL:  "https://payment.example.com",
		},
		Now: func() time.Time {
			return time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)
		},
	}
}

func TestBuild_SecretPassthrough(t *testing.T) {
	event, err := Build(stagingParams())
	require.NoError(t, err)

	// The secret must land in the header byte-for-byte.
	assert.Equal(t, "s3cret-value", event.Headers[SecretHeader])
	assert.Equal(t, "application/json", event.Headers["content-type"])
}

func TestBuild_BodyIsDoubleEncoded(t *testing.T) {
	event, err := Build(stagingParams())
	require.NoError(t, err)

	// The body field is JSON text, not a raw object. Decoding it must
	// round-trip to the three service URLs.
	var body Body
	require.NoError(t, json.Unmarshal([]byte(event.Body), &body))
	assert.Equal(t, "https://property.example.com", body.PropertyServiceURL)
	assert.Equal(t, "https://mortgage.example.com", body.MortgageServiceURL)
	assert.Equal(t, "https://payment.example.com", body.PaymentServiceURL)
}

func TestBuild_GatewayFields(t *testing.T) {
	event, err := Build(stagingParams())
	require.NoError(t, err)

	assert.Equal(t, "2.0", event.Version)
	assert.Equal(t, "ANY /admin/{proxy+}", event.RouteKey)
	assert.Equal(t, "/admin/demo-bootstrap", event.RawPath)
	assert.Empty(t, event.RawQueryString)
	assert.False(t, event.IsBase64Encoded)

	rc := event.RequestContext
	assert.Equal(t, "anonymous", rc.AccountID)
	assert.Equal(t, "1oi4sd5b4i", rc.APIID)
	assert.Equal(t, "1oi4sd5b4i.execute-api.us-east-1.amazonaws.com", rc.DomainName)
	assert.Equal(t, "1oi4sd5b4i", rc.DomainPrefix)
	assert.Equal(t, "$default", rc.Stage)
	assert.Equal(t, "POST", rc.HTTP.Method)
	assert.Equal(t, "/admin/demo-bootstrap", rc.HTTP.Path)
	assert.Equal(t, "HTTP/1.1", rc.HTTP.Protocol)
	assert.Equal(t, "127.0.0.1", rc.HTTP.SourceIP)
}

func TestBuild_Timestamps(t *testing.T) {
	event, err := Build(stagingParams())
	require.NoError(t, err)

	rc := event.RequestContext
	assert.Equal(t, "test-1773309600", rc.RequestID)
	assert.Equal(t, "12/Mar/2026:10:00:00 +0000", rc.Time)
	assert.Equal(t, int64(1773309600000), rc.TimeEpoch)
}

func TestWrite_OverwritesPreviousPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	event, err := Build(stagingParams())
	require.NoError(t, err)
	require.NoError(t, Write(event, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2.0", decoded["version"])
	assert.Equal(t, false, decoded["isBase64Encoded"])
}
