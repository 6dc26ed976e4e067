// Package directories resolves where pwactl keeps its files.
package directories

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppName is the directory name used under the user's data home.
	AppName = "pwactl"
	// DirPermissions for created directories.
	DirPermissions = 0700
)

// ProjectDirs holds the resolved application directories.
type ProjectDirs struct {
	Data string
}

// Resolve returns the application directories, creating them if needed.
// A non-empty override is used as the data directory verbatim. Otherwise
// $XDG_DATA_HOME/pwactl is used, falling back to ~/.local/share/pwactl.
func Resolve(override string) (ProjectDirs, error) {
	data := override
	if data == "" {
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return ProjectDirs{}, fmt.Errorf("cannot determine home directory: %w", err)
			}
			dataHome = filepath.Join(home, ".local", "share")
		}
		data = filepath.Join(dataHome, AppName)
	}

	if err := os.MkdirAll(data, DirPermissions); err != nil {
		return ProjectDirs{}, fmt.Errorf("cannot create data directory: %w", err)
	}

	return ProjectDirs{Data: data}, nil
}
