// Package cli implements the pginfractl subcommands: offline artifact
// generation and inspection of the catalog and history without a running
// API server.
package cli

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/edvin/pginfra/internal/catalog"
	"github.com/edvin/pginfra/internal/core"
	"github.com/edvin/pginfra/internal/model"
	"github.com/edvin/pginfra/internal/render"
	"github.com/edvin/pginfra/internal/store"
	"github.com/edvin/pginfra/internal/validate"
)

// GenerateParams configure one offline generation run.
type GenerateParams struct {
	ConfigFile        string
	OutputDir         string
	InstanceTypesFile string
	HistoryFile       string
	Region            string
	AMI               string
}

// Generate reads a DeploymentConfig from a YAML file and runs the same
// validate-render-write path the API uses, printing the artifact names.
func Generate(p GenerateParams) error {
	data, err := os.ReadFile(p.ConfigFile)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var cfg model.DeploymentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if err := validate.Config(&cfg); err != nil {
		return err
	}

	cat, err := loadCatalog(p.InstanceTypesFile)
	if err != nil {
		return err
	}

	var history *store.History
	if p.HistoryFile != "" {
		history = store.NewHistory(p.HistoryFile)
	}

	svc := core.NewGenerateService(
		cat,
		render.New(render.Options{Region: p.Region, AMI: p.AMI}),
		p.OutputDir,
		history,
		nil,
	)

	rec, err := svc.Generate(context.Background(), cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Terraform: %s\n", rec.TerraformFile)
	fmt.Printf("Ansible:   %s\n", rec.AnsibleFile)
	return nil
}

// InstanceTypes prints the accepted instance types, one per line.
func InstanceTypes(typesFile string) error {
	cat, err := loadCatalog(typesFile)
	if err != nil {
		return err
	}
	for _, t := range cat.List() {
		fmt.Println(t)
	}
	return nil
}

// History prints all recorded generations from a history log.
func History(historyFile string) error {
	records, err := store.NewHistory(historyFile).List()
	if err != nil {
		return err
	}
	for _, rec := range records {
		fmt.Printf("%s  %s  %s  %s  replicas=%d\n",
			rec.GeneratedAt.Format("2006-01-02 15:04:05"),
			rec.ID,
			rec.TerraformFile,
			rec.AnsibleFile,
			rec.Config.NumReplicas,
		)
	}
	return nil
}

func loadCatalog(typesFile string) (*catalog.Catalog, error) {
	if typesFile == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(typesFile)
}
