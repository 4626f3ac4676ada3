// Package profile enumerates game profiles and their save slots.
package profile

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/joshuapare/etsvibes/pkg/save"
)

// File names inside a profile tree.
const (
	ProfileFile = "profile.sii"
	GameFile    = "game.sii"
	InfoFile    = "info.sii"
)

// Profile is one profile directory (<root>/profiles/<hex name>).
type Profile struct {
	Path string
	Name string
}

// DisplayName decodes the hex-encoded directory name, falling back to the raw
// name when it is not hex-encoded UTF-8.
func (p Profile) DisplayName() string {
	return DecodeName(p.Name)
}

// DecodeName decodes a hex-encoded profile directory name.
func DecodeName(name string) string {
	raw, err := hex.DecodeString(name)
	if err != nil || len(raw) == 0 || !utf8.Valid(raw) {
		return name
	}
	return string(raw)
}

// SaveFile is one save slot (<profile>/save/<name>).
type SaveFile struct {
	Profile Profile
	Dir     string
	Name    string
}

// GamePath is the slot's game.sii.
func (s SaveFile) GamePath() string {
	return filepath.Join(s.Dir, GameFile)
}

// InfoPath is the slot's info.sii.
func (s SaveFile) InfoPath() string {
	return filepath.Join(s.Dir, InfoFile)
}

// Sink returns a backing-up sink for game.sii.
func (s SaveFile) Sink() *save.FileSink {
	return save.NewFileSink(s.GamePath())
}

// InfoSink returns a backing-up sink for info.sii.
func (s SaveFile) InfoSink() *save.FileSink {
	return save.NewFileSink(s.InfoPath())
}

// ModTime returns game.sii's modification time.
func (s SaveFile) ModTime() (time.Time, error) {
	info, err := os.Stat(s.GamePath())
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// Detector finds profiles under a set of game data roots.
type Detector struct {
	Roots []string
}

// NewDetector returns a detector over roots, dropping duplicates.
func NewDetector(roots []string) *Detector {
	seen := make(map[string]bool)
	var uniq []string
	for _, r := range roots {
		if r == "" {
			continue
		}
		r = filepath.Clean(r)
		if seen[r] {
			continue
		}
		seen[r] = true
		uniq = append(uniq, r)
	}
	return &Detector{Roots: uniq}
}

// Profiles returns every <root>/profiles/<name> directory that holds a
// profile.sii.
func (d *Detector) Profiles() []Profile {
	var profiles []Profile
	for _, root := range d.Roots {
		dir := filepath.Join(root, "profiles")
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			path := filepath.Join(dir, e.Name())
			if !isFile(filepath.Join(path, ProfileFile)) {
				continue
			}
			profiles = append(profiles, Profile{Path: path, Name: e.Name()})
		}
	}
	return profiles
}

// Saves returns every save slot of p that holds a game.sii.
func (d *Detector) Saves(p Profile) []SaveFile {
	dir := filepath.Join(p.Path, "save")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var saves []SaveFile
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		s := SaveFile{Profile: p, Dir: filepath.Join(dir, e.Name()), Name: e.Name()}
		if isFile(s.GamePath()) {
			saves = append(saves, s)
		}
	}
	return saves
}

// AllSaves returns the saves of every profile.
func (d *Detector) AllSaves() []SaveFile {
	var saves []SaveFile
	for _, p := range d.Profiles() {
		saves = append(saves, d.Saves(p)...)
	}
	return saves
}

// Find returns the first save named saveName whose profile display name
// contains profileFilter (case-insensitive). An empty filter matches any
// profile.
func (d *Detector) Find(saveName, profileFilter string) (SaveFile, bool) {
	filter := strings.ToLower(profileFilter)
	for _, p := range d.Profiles() {
		if filter != "" && !strings.Contains(strings.ToLower(p.DisplayName()), filter) {
			continue
		}
		for _, s := range d.Saves(p) {
			if s.Name == saveName {
				return s, true
			}
		}
	}
	return SaveFile{}, false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
