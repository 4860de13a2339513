// Package config locates and reads the user-level minecorg settings.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the minecorg configuration directory.
//
// Resolution:
//   - $MINECORG_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/minecorg if set (respects XDG on any platform)
//   - %AppData%/minecorg on Windows
//   - ~/.config/minecorg on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("MINECORG_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "minecorg")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "minecorg")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "minecorg")
}

// FilePath returns the settings file inside dir.
func FilePath(dir string) string {
	return filepath.Join(dir, fileName+"."+fileType)
}
