package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/edvin/pginfra/internal/api/request"
	"github.com/edvin/pginfra/internal/api/response"
	"github.com/edvin/pginfra/internal/core"
)

var generationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "pginfra_generations_total",
		Help: "Total number of successful artifact generations",
	},
)

type Generate struct {
	svc *core.GenerateService
}

func NewGenerate(svc *core.GenerateService) *Generate {
	return &Generate{svc: svc}
}

type generateResponse struct {
	Message       string `json:"message"`
	TerraformFile string `json:"terraform_file"`
	AnsibleFile   string `json:"ansible_file"`
}

// Create validates the submitted deployment config and renders both
// artifacts. All failures, whether validation or runtime, share the
// single 422 error envelope.
func (h *Generate) Create(w http.ResponseWriter, r *http.Request) {
	cfg, err := request.DecodeDeployment(r)
	if err != nil {
		response.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	rec, err := h.svc.Generate(r.Context(), cfg)
	if err != nil {
		response.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	generationsTotal.Inc()

	response.WriteJSON(w, http.StatusOK, generateResponse{
		Message:       "Terraform and Ansible files generated successfully.",
		TerraformFile: rec.TerraformFile,
		AnsibleFile:   rec.AnsibleFile,
	})
}
