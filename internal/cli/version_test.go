package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		root := NewRootCmd()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs([]string{"version"})

		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "capstone "+Version)
	})

	t.Run("json", func(t *testing.T) {
		root := NewRootCmd()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs([]string{"version", "--format", "json"})

		require.NoError(t, root.Execute())
		var info versionInfo
		require.NoError(t, json.Unmarshal(out.Bytes(), &info))
		assert.Equal(t, Version, info.Version)
		assert.NotEmpty(t, info.GoVersion)
	})
}

func TestServeRejectsUnknownService(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVICE_NAME", "coordinator")

	root := NewRootCmd()
	root.SetArgs([]string{"serve", "billing"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVICE_NAME")
}
