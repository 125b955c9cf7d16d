package handler

import (
	"net/http"

	"github.com/edvin/pginfra/internal/api/response"
	"github.com/edvin/pginfra/internal/core"
)

type InstanceType struct {
	svc *core.GenerateService
}

func NewInstanceType(svc *core.GenerateService) *InstanceType {
	return &InstanceType{svc: svc}
}

// List returns the accepted instance types.
func (h *InstanceType) List(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string][]string{
		"instance_types": h.svc.InstanceTypes(),
	})
}
