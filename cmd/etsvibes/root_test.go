package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/etsvibes/internal/config"
)

func TestSetupLoadsConfig(t *testing.T) {
	root := testTree(t)
	resetFlags(t, root)
	extraRoots = nil
	t.Cleanup(func() { configPath = "" })

	configPath = filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(configPath, []byte("[paths]\nroots = "+root+"\n[edit]\nmoney = 42\n"), 0o644))

	require.NoError(t, setup())
	assert.Equal(t, int64(42), cfg.Money)
	assert.Equal(t, []string{root}, searchRoots())
	assert.Len(t, newDetector().Profiles(), 1)
}

func TestSetupBadConfig(t *testing.T) {
	resetFlags(t, t.TempDir())
	t.Cleanup(func() { configPath = "" })

	configPath = filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(configPath, []byte("[edit]\nmoney = -5\n"), 0o644))
	require.Error(t, setup())
}

func TestSearchRootsOrder(t *testing.T) {
	resetFlags(t, "/flag/root")
	cfg = config.Default()
	cfg.Roots = []string{"/config/root"}
	assert.Equal(t, []string{"/flag/root", "/config/root"}, searchRoots())
}

func TestEncryptOnSave(t *testing.T) {
	resetFlags(t, t.TempDir())
	assert.False(t, encryptOnSave(false))
	assert.True(t, encryptOnSave(true))
	cfg.Encrypt = true
	assert.True(t, encryptOnSave(false))
}

func TestVersionJSON(t *testing.T) {
	resetFlags(t, t.TempDir())
	jsonOut = true

	output, err := captureOutput(t, runVersion)
	require.NoError(t, err)
	assertJSON(t, output)
	assertContains(t, output, []string{`"version": "dev"`, `"platform"`})
}

func TestVersionText(t *testing.T) {
	resetFlags(t, t.TempDir())

	output, err := captureOutput(t, runVersion)
	require.NoError(t, err)
	assertContains(t, output, []string{"etsvibes dev", "commit:", "none detected"})
}
