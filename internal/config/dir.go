// Package config locates hookkit's global configuration directory.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// EnvConfigHome overrides the configuration directory.
const EnvConfigHome = "HOOKKIT_CONFIG_HOME"

const appName = "hookkit"

// Dir returns the hookkit configuration directory, or "" when no home
// directory can be determined. A global hook template is looked up at
// <Dir>/hooks/pre-commit.
//
// Resolution:
//   - $HOOKKIT_CONFIG_HOME if set
//   - $XDG_CONFIG_HOME/hookkit if set (any platform)
//   - %AppData%/hookkit on Windows
//   - ~/.config/hookkit elsewhere
func Dir() string {
	if dir := os.Getenv(EnvConfigHome); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}
