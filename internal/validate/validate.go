// Package validate holds the field rules for a submitted DeploymentConfig.
// Checks are pure per-field predicates; the first failing field is reported
// with a message describing its accepted format.
package validate

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/edvin/pginfra/internal/model"
)

var validate = validator.New()

// Major.minor only, e.g. "14.10". Patch segments are rejected.
var versionRegex = regexp.MustCompile(`^\d+\.\d+$`)

// Integer quantity with an MB or GB suffix, no separators or decimals.
var memRegex = regexp.MustCompile(`^\d+(MB|GB)$`)

func init() {
	validate.RegisterValidation("pg_version", func(fl validator.FieldLevel) bool {
		return versionRegex.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("pg_mem", func(fl validator.FieldLevel) bool {
		return memRegex.MatchString(fl.Field().String())
	})
}

// Config checks every field rule on cfg and returns a descriptive error for
// the first violation.
func Config(cfg *model.DeploymentConfig) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validation error: %w", err)
	}

	fe := verrs[0]
	switch fe.StructField() {
	case "PostgresVersion":
		return fmt.Errorf("postgres_version must be in the format X.Y (e.g. 14.10), got %q", cfg.PostgresVersion)
	case "InstanceType":
		return fmt.Errorf("instance_type is required")
	case "MaxConnections":
		return fmt.Errorf("max_connections must be at least 1, got %d", cfg.MaxConnections)
	case "SharedBuffers":
		return fmt.Errorf("invalid format for shared_buffers: %q. Use formats like '256MB' or '1GB'", cfg.SharedBuffers)
	}
	return fmt.Errorf("validation error: %s", fe.Error())
}
