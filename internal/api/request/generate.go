// Package request decodes and validates API request bodies.
package request

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/edvin/pginfra/internal/model"
	"github.com/edvin/pginfra/internal/validate"
)

// DecodeDeployment reads a DeploymentConfig from the request body and runs
// field validation on it. Catalog membership for instance_type is checked
// later by the generate service, which owns the loadable allow-list.
func DecodeDeployment(r *http.Request) (model.DeploymentConfig, error) {
	var cfg model.DeploymentConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validate.Config(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
