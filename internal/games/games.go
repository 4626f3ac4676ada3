// Package games knows where Euro Truck Simulator 2 and American Truck
// Simulator keep their profiles on each platform.
package games

import (
	"os"
	"path/filepath"
	"runtime"
)

// Platform is an operating system family with its own save locations.
type Platform string

const (
	Windows Platform = "windows"
	Linux   Platform = "linux"
	MacOS   Platform = "macos"
)

// CurrentPlatform maps runtime.GOOS to a Platform. Unknown systems are
// treated as Linux.
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	default:
		return Linux
	}
}

// Type identifies a game.
type Type string

const (
	TypeETS2 Type = "ets2"
	TypeATS  Type = "ats"
)

// Game describes one supported title.
type Game struct {
	Type       Type
	Name       string
	SteamAppID string
}

var (
	ETS2 = Game{Type: TypeETS2, Name: "Euro Truck Simulator 2", SteamAppID: "227300"}
	ATS  = Game{Type: TypeATS, Name: "American Truck Simulator", SteamAppID: "270880"}

	// Supported lists every game etsvibes can edit.
	Supported = []Game{ETS2, ATS}
)

// Env holds the directories used to build search paths.
type Env struct {
	Home        string
	UserProfile string
	// SteamRoots are extra Steam installation directories (each containing
	// userdata/). On Windows the registry's SteamPath is added by EnvFromOS.
	SteamRoots []string
}

// EnvFromOS reads Env from the running system.
func EnvFromOS() Env {
	home, _ := os.UserHomeDir()
	env := Env{
		Home:        home,
		UserProfile: os.Getenv("USERPROFILE"),
	}
	if p := registrySteamPath(); p != "" {
		env.SteamRoots = append(env.SteamRoots, p)
	}
	return env
}

// folder is the game's directory name under Documents / share.
func (g Game) folder() string {
	return g.Name
}

// Paths returns the existing data directories for g. Each directory may hold
// a profiles/ folder.
func (g Game) Paths(p Platform, env Env) []string {
	switch p {
	case Windows:
		return g.windowsPaths(env)
	case Linux:
		return g.linuxPaths(env)
	case MacOS:
		return g.macPaths(env)
	}
	return nil
}

func (g Game) windowsPaths(env Env) []string {
	var paths []string
	if env.UserProfile != "" {
		paths = appendIfDir(paths, filepath.Join(env.UserProfile, "Documents", g.folder()))
		paths = appendIfDir(paths, filepath.Join(env.UserProfile, "OneDrive", "Documents", g.folder()))
	}

	steam := []string{
		`C:\Program Files (x86)\Steam`,
		`C:\Program Files\Steam`,
	}
	if env.UserProfile != "" {
		steam = append(steam, filepath.Join(env.UserProfile, "Steam"))
	}
	steam = append(steam, env.SteamRoots...)
	return append(paths, g.steamRemotes(steam)...)
}

func (g Game) linuxPaths(env Env) []string {
	var paths []string
	if env.Home == "" {
		return g.steamRemotes(env.SteamRoots)
	}
	paths = appendIfDir(paths, filepath.Join(env.Home, ".local", "share", g.folder()))

	steam := []string{
		filepath.Join(env.Home, ".steam", "steam"),
		filepath.Join(env.Home, ".local", "share", "Steam"),
		filepath.Join(env.Home, ".var", "app", "com.valvesoftware.Steam", ".steam", "steam"),
	}
	steam = append(steam, env.SteamRoots...)
	return append(paths, g.steamRemotes(steam)...)
}

func (g Game) macPaths(env Env) []string {
	if env.Home == "" {
		return nil
	}
	return appendIfDir(nil, filepath.Join(env.Home, "Library", "Application Support", g.folder()))
}

// steamRemotes returns <steam>/userdata/<user>/<appid>/remote for every Steam
// user that has cloud saves for g.
func (g Game) steamRemotes(steamRoots []string) []string {
	var paths []string
	seen := make(map[string]bool)
	for _, root := range steamRoots {
		userdata := filepath.Join(root, "userdata")
		if seen[userdata] {
			continue
		}
		seen[userdata] = true

		users, err := os.ReadDir(userdata)
		if err != nil {
			continue
		}
		for _, u := range users {
			if !u.IsDir() {
				continue
			}
			paths = appendIfDir(paths, filepath.Join(userdata, u.Name(), g.SteamAppID, "remote"))
		}
	}
	return paths
}

// Detect returns the supported games that have at least one data directory.
func Detect(p Platform, env Env) []Game {
	var found []Game
	for _, g := range Supported {
		if len(g.Paths(p, env)) > 0 {
			found = append(found, g)
		}
	}
	return found
}

// Roots returns the data directories of every supported game.
func Roots(p Platform, env Env) []string {
	var roots []string
	for _, g := range Supported {
		roots = append(roots, g.Paths(p, env)...)
	}
	return roots
}

func appendIfDir(paths []string, path string) []string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return append(paths, path)
	}
	return paths
}
