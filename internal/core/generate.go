package core

import (
	"context"
	"time"

	"github.com/edvin/pginfra/internal/catalog"
	"github.com/edvin/pginfra/internal/model"
	"github.com/edvin/pginfra/internal/render"
	"github.com/edvin/pginfra/internal/store"
)

// Uploader pushes a rendered artifact set to object storage.
type Uploader interface {
	Upload(ctx context.Context, set *model.ArtifactSet) error
}

// GenerateService runs the validate-render-persist sequence for one
// submitted DeploymentConfig. Each call is self-contained; no state is
// shared between requests beyond the output directory and the history log.
type GenerateService struct {
	catalog   *catalog.Catalog
	renderer  *render.Renderer
	outputDir string
	history   *store.History
	uploader  Uploader
	now       func() time.Time
}

func NewGenerateService(cat *catalog.Catalog, r *render.Renderer, outputDir string, history *store.History, uploader Uploader) *GenerateService {
	return &GenerateService{
		catalog:   cat,
		renderer:  r,
		outputDir: outputDir,
		history:   history,
		uploader:  uploader,
		now:       time.Now,
	}
}

// WithClock replaces the generation-time source. Used by tests to pin
// artifact names.
func (s *GenerateService) WithClock(now func() time.Time) *GenerateService {
	s.now = now
	return s
}

// Generate checks cfg against the instance-type catalog, renders both
// artifacts, writes them to the output directory, and records the generation.
// cfg must already have passed field validation. If the Terraform write
// succeeds and a later step fails, the written file is left in place.
func (s *GenerateService) Generate(ctx context.Context, cfg model.DeploymentConfig) (*model.GenerationRecord, error) {
	if err := s.catalog.Check(cfg.InstanceType); err != nil {
		return nil, err
	}

	set, err := s.renderer.Render(cfg, s.now())
	if err != nil {
		return nil, err
	}

	if err := render.WriteAll(s.outputDir, set); err != nil {
		return nil, err
	}

	if s.uploader != nil {
		if err := s.uploader.Upload(ctx, set); err != nil {
			return nil, err
		}
	}

	rec, err := s.history.Append(model.GenerationRecord{
		GeneratedAt:   set.GeneratedAt,
		Config:        cfg,
		TerraformFile: set.Terraform.Name,
		AnsibleFile:   set.Ansible.Name,
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// History lists all recorded generations.
func (s *GenerateService) History() ([]model.GenerationRecord, error) {
	return s.history.List()
}

// InstanceTypes returns the accepted instance types in sorted order.
func (s *GenerateService) InstanceTypes() []string {
	return s.catalog.List()
}
