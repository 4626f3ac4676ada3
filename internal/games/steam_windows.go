//go:build windows

package games

import (
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

// registrySteamPath reads the Steam client's install directory from
// HKCU\Software\Valve\Steam\SteamPath.
func registrySteamPath() string {
	k, err := registry.OpenKey(registry.CURRENT_USER, `Software\Valve\Steam`, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer k.Close()

	p, _, err := k.GetStringValue("SteamPath")
	if err != nil {
		return ""
	}
	return filepath.Clean(p)
}
