package app

import (
	"io"

	"github.com/Siddhesh-Agarwal/pwactl/internal/backup"
	"github.com/Siddhesh-Agarwal/pwactl/internal/directories"
	"github.com/Siddhesh-Agarwal/pwactl/internal/logger"
	"github.com/Siddhesh-Agarwal/pwactl/internal/storage"
)

// App owns the in-memory storage between loading and saving it. It is not
// safe for concurrent use.
type App struct {
	dirs    directories.ProjectDirs
	log     *logger.Logger
	storage *storage.Storage
}

// Open loads the storage document from dirs.
func Open(dirs directories.ProjectDirs, log *logger.Logger) (*App, error) {
	log = log.With("path", storage.Path(dirs.Data))

	s, err := storage.Load(dirs.Data)
	if err != nil {
		log.Error("storage load failed", "error", err)
		return nil, err
	}
	log.Debug("storage loaded", "profiles", s.Profiles.Len(), "sites", s.Sites.Len())

	return &App{dirs: dirs, log: log, storage: s}, nil
}

// Storage returns the in-memory state for direct access.
func (a *App) Storage() *storage.Storage {
	return a.storage
}

// Save writes the whole in-memory state back to disk.
func (a *App) Save() error {
	if err := a.storage.Write(a.dirs.Data); err != nil {
		a.log.Error("storage write failed", "error", err)
		return err
	}
	a.log.Debug("storage written", "profiles", a.storage.Profiles.Len(), "sites", a.storage.Sites.Len())
	return nil
}

// Export writes an encrypted copy of the in-memory state to w.
func (a *App) Export(w io.Writer, password []byte) error {
	return backup.Export(w, a.storage, password)
}

// Import replaces the in-memory state with the contents of a backup. The
// caller still has to Save.
func (a *App) Import(r io.Reader, password []byte) error {
	s, err := backup.Import(r, password)
	if err != nil {
		return err
	}
	a.storage = s
	a.log.Info("backup imported", "profiles", s.Profiles.Len(), "sites", s.Sites.Len())
	return nil
}
