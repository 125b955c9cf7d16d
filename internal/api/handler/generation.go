package handler

import (
	"net/http"

	"github.com/edvin/pginfra/internal/api/response"
	"github.com/edvin/pginfra/internal/core"
)

type Generation struct {
	svc *core.GenerateService
}

func NewGeneration(svc *core.GenerateService) *Generation {
	return &Generation{svc: svc}
}

// List returns all recorded generations from the history log.
func (h *Generation) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.History()
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, records)
}
