//go:build !windows

package games

// registrySteamPath has no registry to read outside Windows.
func registrySteamPath() string { return "" }
