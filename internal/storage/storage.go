// Package storage persists the profiles and sites of an installation as a
// single JSON document.
//
// The document lives at <data dir>/config.json. Load reads it into a Storage
// value that the caller owns and mutates directly; Write replaces the whole
// document with the current contents. Neither operation locks the file or the
// value, so callers sharing a Storage between goroutines must synchronize.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Siddhesh-Agarwal/pwactl/internal/build"
	"github.com/Siddhesh-Agarwal/pwactl/internal/id"
	"github.com/Siddhesh-Agarwal/pwactl/internal/profile"
	"github.com/Siddhesh-Agarwal/pwactl/internal/site"
)

const (
	// FileName is the name of the document inside the data directory.
	FileName = "config.json"
	// FilePermissions for the document (read/write for owner only).
	FilePermissions = 0600
)

// Storage is the root of the persisted state.
type Storage struct {
	Profiles Collection[profile.Profile] `json:"profiles"`
	Sites    Collection[site.Site]       `json:"sites"`
}

// Default returns the state of a fresh installation: the default profile
// under the nil ID and no sites.
func Default() *Storage {
	s := &Storage{
		Profiles: NewCollection[profile.Profile](),
		Sites:    NewCollection[site.Site](),
	}
	s.Profiles.Set(id.Nil, profile.Default())
	return s
}

// Path returns the document path for dataDir.
func Path(dataDir string) string {
	return filepath.Join(dataDir, FileName)
}

// Load reads the document from dataDir. A missing document is not an error:
// Load returns Default without creating anything.
func Load(dataDir string) (*Storage, error) {
	path := Path(dataDir)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, &Error{Op: OpLoad, Kind: KindOpen, Path: path, Err: err}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Op: OpLoad, Kind: KindOpen, Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &Error{Op: OpLoad, Kind: KindOpen, Path: path, Err: err}
	}

	s, err := Decode(data)
	if err != nil {
		var serr *Error
		if errors.As(err, &serr) {
			serr.Path = path
		}
		return nil, err
	}
	return s, nil
}

// Write replaces the document in dataDir with s. Output is indented in debug
// builds and compact in release builds.
func (s *Storage) Write(dataDir string) error {
	path := Path(dataDir)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePermissions)
	if err != nil {
		return &Error{Op: OpWrite, Kind: KindOpen, Path: path, Err: err}
	}

	if err := Encode(f, s, build.Debug); err != nil {
		_ = f.Close()
		return &Error{Op: OpWrite, Kind: KindCodec, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &Error{Op: OpWrite, Kind: KindCodec, Path: path, Err: err}
	}
	return nil
}

// Encode writes s as a JSON document. The output only depends on the contents
// of s and on pretty.
func Encode(w io.Writer, s *Storage, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(s)
}

// Decode parses a JSON document. Fields missing from data keep their Default
// values and unknown fields are ignored.
func Decode(data []byte) (*Storage, error) {
	s := new(Storage)
	if err := json.Unmarshal(data, s); err != nil {
		return nil, &Error{Op: OpLoad, Kind: KindCodec, Err: err}
	}
	return s, nil
}

func (s *Storage) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errors.New("expected object, got null")
	}

	type plain Storage
	v := plain(*Default())
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = Storage(v)
	return nil
}
