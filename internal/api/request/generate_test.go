package request

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewBufferString(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestDecodeDeployment_Valid(t *testing.T) {
	r := newJSONRequest(`{
		"postgres_version": "14.10",
		"instance_type": "t3.medium",
		"num_replicas": 2,
		"max_connections": 100,
		"shared_buffers": "256MB"
	}`)

	cfg, err := DecodeDeployment(r)
	require.NoError(t, err)
	assert.Equal(t, "14.10", cfg.PostgresVersion)
	assert.Equal(t, "t3.medium", cfg.InstanceType)
	assert.Equal(t, 2, cfg.NumReplicas)
	assert.Equal(t, 100, cfg.MaxConnections)
	assert.Equal(t, "256MB", cfg.SharedBuffers)
}

func TestDecodeDeployment_InvalidJSON(t *testing.T) {
	_, err := DecodeDeployment(newJSONRequest("{bad json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestDecodeDeployment_FieldValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			"bad version",
			`{"postgres_version": "14.10.20", "instance_type": "t3.medium", "num_replicas": 1, "max_connections": 100, "shared_buffers": "256MB"}`,
			"postgres_version",
		},
		{
			"bad shared_buffers",
			`{"postgres_version": "14.10", "instance_type": "t3.medium", "num_replicas": 1, "max_connections": 100, "shared_buffers": "1.5GB"}`,
			"shared_buffers",
		},
		{
			"zero max_connections",
			`{"postgres_version": "14.10", "instance_type": "t3.medium", "num_replicas": 1, "max_connections": 0, "shared_buffers": "256MB"}`,
			"max_connections",
		},
		{
			"missing instance_type",
			`{"postgres_version": "14.10", "num_replicas": 1, "max_connections": 100, "shared_buffers": "256MB"}`,
			"instance_type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDeployment(newJSONRequest(tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
