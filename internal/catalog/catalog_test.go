package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ContainsKnownTypes(t *testing.T) {
	c := Default()

	for _, it := range []string{"t2.micro", "t3.medium", "m5.2xlarge"} {
		assert.True(t, c.Contains(it), it)
	}
	assert.False(t, c.Contains("t4g.nano"))
	assert.Len(t, c.List(), 9)
}

func TestNew_DropsDuplicates(t *testing.T) {
	c := New([]string{"t3.small", "t3.small", "m5.large"})

	assert.Equal(t, []string{"m5.large", "t3.small"}, c.List())
}

func TestCheck_UnknownTypeEnumeratesCatalog(t *testing.T) {
	c := New([]string{"t3.medium", "m5.large"})

	err := c.Check("x1e.32xlarge")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x1e.32xlarge"`)
	assert.Contains(t, err.Error(), "m5.large, t3.medium")
}

func TestCheck_KnownType(t *testing.T) {
	assert.NoError(t, Default().Check("t3.medium"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instance-types.yaml")
	content := "instance_types:\n  - c5.large\n  - c5.xlarge\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)

	assert.True(t, c.Contains("c5.large"))
	assert.False(t, c.Contains("t3.medium"))
	assert.Equal(t, []string{"c5.large", "c5.xlarge"}, c.List())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read instance types")
}

func TestLoadFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instance-types.yaml")
	require.NoError(t, os.WriteFile(path, []byte("instance_types: []\n"), 0644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no instance_types")
}

func TestLoadFile_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instance-types.yaml")
	require.NoError(t, os.WriteFile(path, []byte("instance_types: {broken"), 0644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse instance types")
}
