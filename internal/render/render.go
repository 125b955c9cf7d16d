// Package render turns one validated DeploymentConfig into a Terraform
// descriptor and an Ansible playbook. Rendering is a pure function of the
// config, the generation time, and the renderer options.
package render

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/edvin/pginfra/internal/model"
)

// timestampLayout gives second-granularity artifact names. Two renders within
// the same second produce the same names and the later one overwrites the
// earlier; the naming scheme is kept for compatibility with consumers of the
// generated files.
const timestampLayout = "20060102150405"

const terraformTemplate = `provider "aws" {
  region = "{{ .Region }}"
}

resource "aws_instance" "primary" {
  ami           = "{{ .AMI }}"
  instance_type = "{{ .InstanceType }}"
  tags = {
    Name = "PrimaryPostgres"
  }
}
{{ range .Replicas }}
resource "aws_instance" "replica_{{ . }}" {
  ami           = "{{ $.AMI }}"
  instance_type = "{{ $.InstanceType }}"
  tags = {
    Name = "ReplicaPostgres{{ . }}"
  }
}
{{ end }}
output "primary_ip" {
  value = aws_instance.primary.public_ip
}
`

const ansibleTemplate = `- hosts: all
  become: yes
  tasks:
    - name: Install PostgreSQL
      apt:
        name: postgresql-{{ .PostgresVersion }}
        state: present

    - name: Configure PostgreSQL
      template:
        src: pg_hba.conf.j2
        dest: /etc/postgresql/{{ .PostgresVersion }}/main/pg_hba.conf
      notify: restart postgresql

    - name: Set max_connections
      lineinfile:
        path: /etc/postgresql/{{ .PostgresVersion }}/main/postgresql.conf
        regexp: '^max_connections'
        line: 'max_connections = {{ .MaxConnections }}'

    - name: Set shared_buffers
      lineinfile:
        path: /etc/postgresql/{{ .PostgresVersion }}/main/postgresql.conf
        regexp: '^shared_buffers'
        line: 'shared_buffers = {{ .SharedBuffers }}'

  handlers:
    - name: restart postgresql
      service:
        name: postgresql
        state: restarted
`

var (
	terraformTmpl = template.Must(template.New("terraform").Parse(terraformTemplate))
	ansibleTmpl   = template.Must(template.New("ansible").Parse(ansibleTemplate))
)

// Options parameterize the Terraform provider and AMI used for all instances.
type Options struct {
	Region string
	AMI    string
}

type Renderer struct {
	opts Options
}

func New(opts Options) *Renderer {
	if opts.Region == "" {
		opts.Region = "us-east-1"
	}
	if opts.AMI == "" {
		opts.AMI = "ami-12345678"
	}
	return &Renderer{opts: opts}
}

type terraformData struct {
	Region       string
	AMI          string
	InstanceType string
	Replicas     []int
}

// Render produces both artifacts for cfg at the given generation time.
func (r *Renderer) Render(cfg model.DeploymentConfig, now time.Time) (*model.ArtifactSet, error) {
	ts := now.Format(timestampLayout)

	replicas := make([]int, 0, max(cfg.NumReplicas, 0))
	for i := 1; i <= cfg.NumReplicas; i++ {
		replicas = append(replicas, i)
	}

	var tf bytes.Buffer
	err := terraformTmpl.Execute(&tf, terraformData{
		Region:       r.opts.Region,
		AMI:          r.opts.AMI,
		InstanceType: cfg.InstanceType,
		Replicas:     replicas,
	})
	if err != nil {
		return nil, fmt.Errorf("render terraform descriptor: %w", err)
	}

	var pb bytes.Buffer
	if err := ansibleTmpl.Execute(&pb, cfg); err != nil {
		return nil, fmt.Errorf("render ansible playbook: %w", err)
	}

	return &model.ArtifactSet{
		GeneratedAt: now,
		Terraform: model.Artifact{
			Name: fmt.Sprintf("main_%s.tf", ts),
			Body: tf.String(),
		},
		Ansible: model.Artifact{
			Name: fmt.Sprintf("playbook_%s.yml", ts),
			Body: pb.String(),
		},
	}, nil
}
