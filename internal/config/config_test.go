package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any env vars that might interfere with defaults.
	os.Unsetenv("HTTP_LISTEN_ADDR")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("OUTPUT_DIR")
	os.Unsetenv("AWS_REGION")
	os.Unsetenv("AMI_ID")
	os.Unsetenv("S3_BUCKET")
	os.Unsetenv("INSTANCE_TYPES_FILE")
	os.Unsetenv("HISTORY_FILE")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, ":8001", cfg.HTTPListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, "ami-12345678", cfg.AMIID)
	assert.Equal(t, "", cfg.S3Bucket)
	assert.Equal(t, "", cfg.HistoryFile)
}

func TestLoad_AllEnvVars(t *testing.T) {
	t.Setenv("HTTP_LISTEN_ADDR", ":7071")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OUTPUT_DIR", "/var/lib/pginfra/artifacts")
	t.Setenv("INSTANCE_TYPES_FILE", "/etc/pginfra/instance-types.yaml")
	t.Setenv("HISTORY_FILE", "/var/lib/pginfra/history.jsonl")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("AMI_ID", "ami-87654321")
	t.Setenv("S3_BUCKET", "pginfra-artifacts")
	t.Setenv("S3_ENDPOINT", "http://localhost:7480")
	t.Setenv("S3_ACCESS_KEY", "ak")
	t.Setenv("S3_SECRET_KEY", "sk")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, ":7071", cfg.HTTPListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/var/lib/pginfra/artifacts", cfg.OutputDir)
	assert.Equal(t, "/etc/pginfra/instance-types.yaml", cfg.InstanceTypesFile)
	assert.Equal(t, "/var/lib/pginfra/history.jsonl", cfg.HistoryFile)
	assert.Equal(t, "eu-west-1", cfg.AWSRegion)
	assert.Equal(t, "ami-87654321", cfg.AMIID)
	assert.Equal(t, "pginfra-artifacts", cfg.S3Bucket)
	assert.Equal(t, "http://localhost:7480", cfg.S3Endpoint)
	assert.Equal(t, "ak", cfg.S3AccessKey)
	assert.Equal(t, "sk", cfg.S3SecretKey)
}

func TestValidate_EmptyOutputDir(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OUTPUT_DIR")
}

func TestValidate_S3MissingCredentials(t *testing.T) {
	cfg := &Config{
		OutputDir: ".",
		S3Bucket:  "pginfra-artifacts",
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3_ACCESS_KEY")
}

func TestValidate_AllPresent(t *testing.T) {
	cfg := &Config{
		OutputDir:   "/tmp/artifacts",
		S3Bucket:    "pginfra-artifacts",
		S3AccessKey: "ak",
		S3SecretKey: "sk",
	}

	assert.NoError(t, cfg.Validate())
}
