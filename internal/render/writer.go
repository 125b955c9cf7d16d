package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/edvin/pginfra/internal/model"
)

// WriteAll persists both artifacts to dir under their derived names,
// overwriting existing files. Artifacts are written in order; if the second
// write fails the first is left in place.
func WriteAll(dir string, set *model.ArtifactSet) error {
	for _, a := range []model.Artifact{set.Terraform, set.Ansible} {
		path := filepath.Join(dir, a.Name)
		if err := os.WriteFile(path, []byte(a.Body), 0644); err != nil {
			return fmt.Errorf("write %s: %w", a.Name, err)
		}
	}
	return nil
}
