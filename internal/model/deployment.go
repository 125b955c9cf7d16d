package model

import "time"

// DeploymentConfig describes a requested PostgreSQL deployment. It is built
// from a single request, validated once, and consumed once by the renderer.
type DeploymentConfig struct {
	PostgresVersion string `json:"postgres_version" yaml:"postgres_version" validate:"required,pg_version"`
	InstanceType    string `json:"instance_type" yaml:"instance_type" validate:"required"`
	NumReplicas     int    `json:"num_replicas" yaml:"num_replicas"`
	MaxConnections  int    `json:"max_connections" yaml:"max_connections" validate:"min=1"`
	SharedBuffers   string `json:"shared_buffers" yaml:"shared_buffers" validate:"required,pg_mem"`
}

// Artifact is one rendered document with its derived filename.
type Artifact struct {
	Name string
	Body string
}

// ArtifactSet is the output of one render: the Terraform descriptor and the
// Ansible playbook, named from the same generation timestamp.
type ArtifactSet struct {
	GeneratedAt time.Time
	Terraform   Artifact
	Ansible     Artifact
}

// GenerationRecord is one entry in the append-only generation history.
type GenerationRecord struct {
	ID            string           `json:"id"`
	GeneratedAt   time.Time        `json:"generated_at"`
	Config        DeploymentConfig `json:"config"`
	TerraformFile string           `json:"terraform_file"`
	AnsibleFile   string           `json:"ansible_file"`
}
