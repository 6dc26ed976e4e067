package app

import (
	"errors"
	"fmt"

	"github.com/Siddhesh-Agarwal/pwactl/internal/id"
	"github.com/Siddhesh-Agarwal/pwactl/internal/profile"
	"github.com/Siddhesh-Agarwal/pwactl/internal/site"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrSiteNotFound    = errors.New("site not found")
)

// ProfileUpdate lists the profile fields to change. Nil fields are kept and
// empty strings unset the field.
type ProfileUpdate struct {
	Name        *string
	Description *string
}

func (a *App) Profiles() []profile.Profile {
	return a.storage.Profiles.Values()
}

func (a *App) Sites() []site.Site {
	return a.storage.Sites.Values()
}

func (a *App) Profile(key id.ID) (profile.Profile, error) {
	p, ok := a.storage.Profiles.Get(key)
	if !ok {
		return profile.Profile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, key)
	}
	return p, nil
}

func (a *App) Site(key id.ID) (site.Site, error) {
	s, ok := a.storage.Sites.Get(key)
	if !ok {
		return site.Site{}, fmt.Errorf("%w: %s", ErrSiteNotFound, key)
	}
	return s, nil
}

func (a *App) CreateProfile(name, description string) profile.Profile {
	p := profile.New(name, description)
	a.storage.Profiles.Set(p.ULID, p)
	a.log.Info("profile created", "profile", p.ULID.String())
	return p
}

func (a *App) UpdateProfile(key id.ID, update ProfileUpdate) (profile.Profile, error) {
	p, err := a.Profile(key)
	if err != nil {
		return p, err
	}

	if update.Name != nil {
		p.SetName(*update.Name)
	}
	if update.Description != nil {
		p.SetDescription(*update.Description)
	}
	a.storage.Profiles.Set(key, p)
	return p, nil
}

// RemoveProfile removes a profile together with its sites. The default
// profile cannot be removed; only its sites are.
func (a *App) RemoveProfile(key id.ID) ([]site.Site, error) {
	p, err := a.Profile(key)
	if err != nil {
		return nil, err
	}

	var removed []site.Site
	for siteID, s := range a.storage.Sites.All() {
		if s.Profile == key || p.HasSite(siteID) {
			removed = append(removed, s)
		}
	}
	for _, s := range removed {
		a.storage.Sites.Delete(s.ULID)
	}

	if key.IsNil() {
		p.Sites = []id.ID{}
		a.storage.Profiles.Set(key, p)
		a.log.Info("default profile cleared", "sites", len(removed))
	} else {
		a.storage.Profiles.Delete(key)
		a.log.Info("profile removed", "profile", key.String(), "sites", len(removed))
	}
	return removed, nil
}

// InstallSite resolves manifest against cfg.DocumentURL and attaches the new
// site to the profile.
func (a *App) InstallSite(profileID id.ID, cfg site.Config, manifest site.Manifest) (site.Site, error) {
	p, err := a.Profile(profileID)
	if err != nil {
		return site.Site{}, err
	}

	resolved, err := site.ResolveManifest(manifest, cfg.DocumentURL)
	if err != nil {
		return site.Site{}, fmt.Errorf("invalid manifest: %w", err)
	}

	s := site.New(profileID, cfg, resolved)
	a.storage.Sites.Set(s.ULID, s)
	p.AddSite(s.ULID)
	a.storage.Profiles.Set(profileID, p)

	a.log.Info("site installed", "site", s.ULID.String(), "profile", profileID.String())
	return s, nil
}

func (a *App) RemoveSite(key id.ID) (site.Site, error) {
	s, err := a.Site(key)
	if err != nil {
		return s, err
	}

	a.storage.Sites.Delete(key)
	if p, ok := a.storage.Profiles.Get(s.Profile); ok {
		p.RemoveSite(key)
		a.storage.Profiles.Set(s.Profile, p)
	}

	a.log.Info("site removed", "site", key.String())
	return s, nil
}
