package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/etsvibes/pkg/save"
	"github.com/joshuapare/etsvibes/pkg/sii"
)

func int64p(v int64) *int64 { return &v }

func TestEditMoney(t *testing.T) {
	root := testTree(t)
	resetFlags(t, root)
	dir := slotDir(root, "autosave")

	output, err := captureOutput(t, func() error {
		return runEdit([]string{"autosave"}, save.Edits{Money: int64p(123456)})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"€1.500", "€123.456", "Save updated successfully."})

	doc, variant := readDoc(t, filepath.Join(dir, "game.sii"))
	assert.Equal(t, sii.VariantPlainTagged, variant)
	money, ok := doc.Get(save.KeyMoney)
	require.True(t, ok)
	assert.Equal(t, "123456", money)
	xp, _ := doc.Get(save.KeyXP)
	assert.Equal(t, "2000", xp)

	// The backup holds the original encrypted save.
	backup, variant := readDoc(t, filepath.Join(dir, "game.sii.backup"))
	assert.Equal(t, sii.VariantEncrypted, variant)
	old, _ := backup.Get(save.KeyMoney)
	assert.Equal(t, "1500", old)

	info, _ := readDoc(t, filepath.Join(dir, "info.sii"))
	infoMoney, _ := info.Get(save.KeyInfoMoney)
	assert.Equal(t, "123456", infoMoney)
}

func TestEditXPLeavesInfoAlone(t *testing.T) {
	root := testTree(t)
	resetFlags(t, root)
	dir := slotDir(root, "autosave")
	before, err := os.ReadFile(filepath.Join(dir, "info.sii"))
	require.NoError(t, err)

	_, err = captureOutput(t, func() error {
		return runEdit([]string{"autosave"}, save.Edits{XP: int64p(99)})
	})
	require.NoError(t, err)

	doc, _ := readDoc(t, filepath.Join(dir, "game.sii"))
	xp, _ := doc.Get(save.KeyXP)
	assert.Equal(t, "99", xp)

	after, err := os.ReadFile(filepath.Join(dir, "info.sii"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestEditEncrypt(t *testing.T) {
	root := testTree(t)
	resetFlags(t, root)
	editEncrypt = true

	_, err := captureOutput(t, func() error {
		return runEdit([]string{"autosave"}, save.Edits{Money: int64p(7)})
	})
	require.NoError(t, err)

	doc, variant := readDoc(t, filepath.Join(slotDir(root, "autosave"), "game.sii"))
	assert.Equal(t, sii.VariantEncrypted, variant)
	money, _ := doc.Get(save.KeyMoney)
	assert.Equal(t, "7", money)

	// A plain save stays plain even with --encrypt.
	_, err = captureOutput(t, func() error {
		return runEdit([]string{"1"}, save.Edits{Money: int64p(8)})
	})
	require.NoError(t, err)
	_, variant = readDoc(t, filepath.Join(slotDir(root, "1"), "game.sii"))
	assert.Equal(t, sii.VariantPlainTagged, variant)
}

func TestEditJSON(t *testing.T) {
	root := testTree(t)
	resetFlags(t, root)
	jsonOut = true

	output, err := captureOutput(t, func() error {
		return runEdit([]string{"1"}, save.Edits{Money: int64p(5), XP: int64p(6)})
	})
	require.NoError(t, err)
	assertJSON(t, output)
	assertContains(t, output, []string{`"old": "300"`, `"new": "5"`, `"old": "40"`, `"applied": true`})
}

func TestEditMissingKey(t *testing.T) {
	root := testTree(t)
	writeFile(t, filepath.Join(slotDir(root, "1"), "game.sii"), []byte("SiiNunit\n{\n}\n"))
	resetFlags(t, root)

	output, err := captureOutput(t, func() error {
		return runEdit([]string{"1"}, save.Edits{Money: int64p(5)})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "money_account not found")
}

func TestEditErrors(t *testing.T) {
	root := testTree(t)

	tests := []struct {
		name    string
		args    []string
		edits   save.Edits
		profile string
		wantErr string
	}{
		{name: "no edits", args: []string{"autosave"}, wantErr: "nothing to do"},
		{name: "negative money", args: []string{"autosave"}, edits: save.Edits{Money: int64p(-1)}, wantErr: "negative"},
		{name: "unknown save", args: []string{"quicksave"}, edits: save.Edits{Money: int64p(1)}, wantErr: `save "quicksave" not found`},
		{name: "profile mismatch", args: []string{"autosave"}, edits: save.Edits{Money: int64p(1)}, profile: "nobody", wantErr: `in profile "nobody"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t, root)
			editProfile = tt.profile

			_, err := captureOutput(t, func() error { return runEdit(tt.args, tt.edits) })
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEditProfileFilter(t *testing.T) {
	root := testTree(t)
	resetFlags(t, root)
	editProfile = "truck"

	_, err := captureOutput(t, func() error {
		return runEdit([]string{"1"}, save.Edits{XP: int64p(1)})
	})
	require.NoError(t, err)
}
