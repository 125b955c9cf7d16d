// Package core contains the business logic behind the API handlers.
package core

import (
	"github.com/edvin/pginfra/internal/catalog"
	"github.com/edvin/pginfra/internal/render"
	"github.com/edvin/pginfra/internal/store"
)

// Services aggregates all business-logic services for dependency injection
// into the API layer.
type Services struct {
	Generate *GenerateService
}

func NewServices(cat *catalog.Catalog, r *render.Renderer, outputDir string, history *store.History, uploader Uploader) *Services {
	return &Services{
		Generate: NewGenerateService(cat, r, outputDir, history, uploader),
	}
}
