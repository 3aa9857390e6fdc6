// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"os"
	"path/filepath"
	"runtime"
)

// homeDirectory resolves the user's home directory for the final
// search fallback. Unix reads HOME, Windows HOMEPATH; on macOS a
// missing HOME is reconstructed from USER or LOGNAME. Returns "" when
// nothing can be determined.
func homeDirectory() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("HOMEPATH")
	}

	if home := os.Getenv("HOME"); home != "" {
		return home
	}

	if runtime.GOOS == "darwin" {
		user := os.Getenv("USER")
		if user == "" {
			user = os.Getenv("LOGNAME")
		}
		if user != "" {
			return filepath.Join("/Users", user)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}
