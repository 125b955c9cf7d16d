// Package catalog holds the set of instance types accepted for deployment.
// The set is data, not code: the built-in defaults can be replaced at startup
// from a YAML file so new provider sizes don't require a rebuild.
package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultInstanceTypes are the EC2 sizes accepted out of the box.
var defaultInstanceTypes = []string{
	"t2.micro", "t2.small", "t2.medium",
	"t3.micro", "t3.small", "t3.medium",
	"m5.large", "m5.xlarge", "m5.2xlarge",
}

// Catalog is an immutable set of accepted instance-type identifiers.
type Catalog struct {
	types map[string]struct{}
	order []string
}

// Default returns the built-in instance-type set.
func Default() *Catalog {
	return New(defaultInstanceTypes)
}

// New builds a catalog from the given identifiers, preserving first-seen order
// and dropping duplicates.
func New(types []string) *Catalog {
	c := &Catalog{types: make(map[string]struct{}, len(types))}
	for _, t := range types {
		if _, ok := c.types[t]; ok {
			continue
		}
		c.types[t] = struct{}{}
		c.order = append(c.order, t)
	}
	return c
}

type catalogFile struct {
	InstanceTypes []string `yaml:"instance_types"`
}

// LoadFile reads a catalog from a YAML file of the form:
//
//	instance_types:
//	  - t3.medium
//	  - m5.large
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read instance types: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse instance types: %w", err)
	}
	if len(f.InstanceTypes) == 0 {
		return nil, fmt.Errorf("instance types file %s lists no instance_types", path)
	}

	return New(f.InstanceTypes), nil
}

// Contains reports whether t is an accepted instance type.
func (c *Catalog) Contains(t string) bool {
	_, ok := c.types[t]
	return ok
}

// List returns the accepted instance types in sorted order.
func (c *Catalog) List() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	sort.Strings(out)
	return out
}

// Check returns a descriptive error when t is not in the catalog, naming the
// offending value and enumerating every accepted one.
func (c *Catalog) Check(t string) error {
	if c.Contains(t) {
		return nil
	}
	return fmt.Errorf("invalid instance type: %q. Valid types are: %s", t, strings.Join(c.List(), ", "))
}
