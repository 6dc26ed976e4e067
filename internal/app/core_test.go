package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Siddhesh-Agarwal/pwactl/internal/directories"
	"github.com/Siddhesh-Agarwal/pwactl/internal/id"
	"github.com/Siddhesh-Agarwal/pwactl/internal/logger"
	"github.com/Siddhesh-Agarwal/pwactl/internal/site"
	"github.com/Siddhesh-Agarwal/pwactl/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openApp(t *testing.T, dir string) *App {
	t.Helper()
	a, err := Open(directories.ProjectDirs{Data: dir}, logger.NewNop())
	require.NoError(t, err)
	return a
}

func mailConfig() (site.Config, site.Manifest) {
	return site.Config{DocumentURL: "https://mail.example.com/inbox"},
		site.Manifest{Name: "Mail", StartURL: "/"}
}

func TestOpenFreshInstall(t *testing.T) {
	a := openApp(t, t.TempDir())

	assert.Equal(t, storage.Default(), a.Storage())
	require.Len(t, a.Profiles(), 1)
	assert.True(t, a.Profiles()[0].ULID.IsNil())
	assert.Empty(t, a.Sites())
}

func TestOpenReportsLoadErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, storage.FileName), []byte("{"), 0600))

	_, err := Open(directories.ProjectDirs{Data: dir}, logger.NewNop())
	assert.ErrorIs(t, err, storage.ErrCodec)
}

func TestProfileLifecycle(t *testing.T) {
	dir := t.TempDir()
	a := openApp(t, dir)

	p := a.CreateProfile("Work", "Work apps")
	name := "Office"
	empty := ""
	updated, err := a.UpdateProfile(p.ULID, ProfileUpdate{Name: &name, Description: &empty})
	require.NoError(t, err)
	assert.Equal(t, "Office", *updated.Name)
	assert.Nil(t, updated.Description)
	require.NoError(t, a.Save())

	reopened := openApp(t, dir)
	got, err := reopened.Profile(p.ULID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
	assert.Equal(t, []id.ID{id.Nil, p.ULID}, reopened.Storage().Profiles.Keys())

	_, err = reopened.UpdateProfile(id.New(), ProfileUpdate{})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestInstallAndRemoveSite(t *testing.T) {
	a := openApp(t, t.TempDir())
	p := a.CreateProfile("Work", "")

	cfg, manifest := mailConfig()
	s, err := a.InstallSite(p.ULID, cfg, manifest)
	require.NoError(t, err)
	assert.Equal(t, "https://mail.example.com/", s.Manifest.StartURL)
	assert.Equal(t, "https://mail.example.com/", s.Manifest.Scope)
	assert.Equal(t, p.ULID, s.Profile)

	owner, err := a.Profile(p.ULID)
	require.NoError(t, err)
	assert.Equal(t, []id.ID{s.ULID}, owner.Sites)

	removed, err := a.RemoveSite(s.ULID)
	require.NoError(t, err)
	assert.Equal(t, s, removed)
	assert.Empty(t, a.Sites())

	owner, err = a.Profile(p.ULID)
	require.NoError(t, err)
	assert.Empty(t, owner.Sites)

	_, err = a.RemoveSite(s.ULID)
	assert.ErrorIs(t, err, ErrSiteNotFound)
}

func TestInstallSiteErrors(t *testing.T) {
	a := openApp(t, t.TempDir())
	cfg, manifest := mailConfig()

	_, err := a.InstallSite(id.New(), cfg, manifest)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	manifest.StartURL = "https://elsewhere.example.org/"
	_, err = a.InstallSite(id.Nil, cfg, manifest)
	assert.ErrorIs(t, err, site.ErrCrossOrigin)
	assert.Empty(t, a.Sites())
}

func TestRemoveProfileRemovesSites(t *testing.T) {
	a := openApp(t, t.TempDir())
	work := a.CreateProfile("Work", "")
	cfg, manifest := mailConfig()

	kept, err := a.InstallSite(id.Nil, cfg, manifest)
	require.NoError(t, err)
	gone, err := a.InstallSite(work.ULID, cfg, manifest)
	require.NoError(t, err)

	removed, err := a.RemoveProfile(work.ULID)
	require.NoError(t, err)
	require.Len(t, removed, 1)
	assert.Equal(t, gone.ULID, removed[0].ULID)

	assert.False(t, a.Storage().Profiles.Has(work.ULID))
	assert.Equal(t, []id.ID{kept.ULID}, a.Storage().Sites.Keys())
}

func TestRemoveDefaultProfileKeepsIt(t *testing.T) {
	a := openApp(t, t.TempDir())
	cfg, manifest := mailConfig()
	_, err := a.InstallSite(id.Nil, cfg, manifest)
	require.NoError(t, err)

	removed, err := a.RemoveProfile(id.Nil)
	require.NoError(t, err)
	assert.Len(t, removed, 1)

	p, err := a.Profile(id.Nil)
	require.NoError(t, err)
	assert.Empty(t, p.Sites)
	assert.Empty(t, a.Sites())
}

func TestExportImport(t *testing.T) {
	a := openApp(t, t.TempDir())
	a.CreateProfile("Work", "")
	want := a.Storage()

	var buf bytes.Buffer
	require.NoError(t, a.Export(&buf, []byte("secret")))

	other := openApp(t, t.TempDir())
	require.NoError(t, other.Import(&buf, []byte("secret")))
	assert.Equal(t, want, other.Storage())
}

func TestSaveFailure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gone")
	a := openApp(t, dir)

	assert.ErrorIs(t, a.Save(), storage.ErrOpen)
}
