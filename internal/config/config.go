package config

import (
	"fmt"
	"os"
)

type Config struct {
	ServiceName       string
	HTTPListenAddr    string
	LogLevel          string
	OutputDir         string
	InstanceTypesFile string
	// HistoryFile enables the append-only generation log when set.
	HistoryFile string
	// Terraform rendering parameters.
	AWSRegion string
	AMIID     string
	// S3 upload of generated artifacts, enabled when S3Bucket is set.
	S3Bucket    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
}

func Load() (*Config, error) {
	cfg := &Config{
		ServiceName:       getEnv("SERVICE_NAME", "pginfra-api"),
		HTTPListenAddr:    getEnv("HTTP_LISTEN_ADDR", ":8001"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		OutputDir:         getEnv("OUTPUT_DIR", "."),
		InstanceTypesFile: getEnv("INSTANCE_TYPES_FILE", ""),
		HistoryFile:       getEnv("HISTORY_FILE", ""),
		AWSRegion:         getEnv("AWS_REGION", "us-east-1"),
		AMIID:             getEnv("AMI_ID", "ami-12345678"),
		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3AccessKey:       getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:       getEnv("S3_SECRET_KEY", ""),
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR must not be empty")
	}
	if c.S3Bucket != "" && (c.S3AccessKey == "" || c.S3SecretKey == "") {
		return fmt.Errorf("S3_BUCKET requires S3_ACCESS_KEY and S3_SECRET_KEY")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
