package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/etsvibes/internal/config"
	"github.com/joshuapare/etsvibes/pkg/sii"
)

// testProfileName is the display name of the fixture profile.
const testProfileName = "Trucker"

// testSave renders a minimal game.sii body.
func testSave(money, xp string) string {
	return "SiiNunit\n{\n" +
		"bank : _nameless.1 {\n money_account: " + money + "\n}\n\n" +
		"economy : _nameless.2 {\n experience_points: " + xp + "\n}\n}\n"
}

// testInfo renders a minimal info.sii body.
func testInfo(money string) string {
	return "SiiNunit\n{\nsave_container : _nameless.1 {\n name: \"\"\n info_money_account: " + money + "\n}\n}\n"
}

// testTree builds <root>/profiles/<hex Trucker>/ with an encrypted "autosave"
// slot and a plain "1" slot and returns the root.
func testTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	prof := filepath.Join(root, "profiles", hex.EncodeToString([]byte(testProfileName)))
	writeFile(t, filepath.Join(prof, "profile.sii"), []byte("SiiNunit\n{\n}\n"))

	enc, err := sii.Encode(testSave("1500", "2000"))
	require.NoError(t, err)
	writeFile(t, filepath.Join(prof, "save", "autosave", "game.sii"), enc)

	info, err := sii.Encode(testInfo("1500"))
	require.NoError(t, err)
	writeFile(t, filepath.Join(prof, "save", "autosave", "info.sii"), info)

	writeFile(t, filepath.Join(prof, "save", "1", "game.sii"), []byte(testSave("300", "40")))
	return root
}

// slotDir returns the directory of a fixture save slot.
func slotDir(root, slot string) string {
	return filepath.Join(root, "profiles", hex.EncodeToString([]byte(testProfileName)), "save", slot)
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

// readDoc decodes a file on disk and returns its text and variant.
func readDoc(t *testing.T, path string) (*sii.Document, sii.Variant) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text, variant, err := sii.Decode(data)
	require.NoError(t, err)
	return sii.NewDocument(text), variant
}

// resetFlags restores global flag state and points the detector at root only.
func resetFlags(t *testing.T, root string) {
	t.Helper()
	verbose = false
	quiet = false
	jsonOut = false
	noDetect = true
	extraRoots = []string{root}
	cfg = config.Default()
	editMoney, editXP = 0, 0
	editProfile = ""
	editEncrypt = false
	quickEncrypt = false
	codecOutput = ""
	codecInPlace = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Drain concurrently so large outputs do not block the writer
	var buf bytes.Buffer
	done := make(chan error, 1)
	go func() {
		_, err := buf.ReadFrom(r)
		done <- err
	}()

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	if err := <-done; err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// syncBuffer is a bytes.Buffer safe for one writer and one reader goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
