package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Siddhesh-Agarwal/pwactl/internal/cli/prompt"
	"github.com/Siddhesh-Agarwal/pwactl/internal/id"
	"github.com/Siddhesh-Agarwal/pwactl/internal/site"
	"github.com/spf13/cobra"
)

type siteView struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Profile  string `json:"profile" yaml:"profile"`
	StartURL string `json:"start_url" yaml:"start_url"`
}

type siteList []siteView

func (l siteList) Headers() []string {
	return []string{"ID", "Name", "Profile", "Start URL"}
}

func (l siteList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, s := range l {
		rows = append(rows, []string{s.ID, s.Name, s.Profile, s.StartURL})
	}
	return rows
}

func createSiteCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "site",
		Short: "Manage installed sites",
	}
	cmd.AddCommand(
		createSiteListCommand(e),
		createSiteInstallCommand(e),
		createSiteRemoveCommand(e),
		createSiteIconCommand(e),
	)
	return cmd
}

func createSiteListCommand(e *env) *cobra.Command {
	var profileFlag string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List installed sites",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter *id.ID
			if profileFlag != "" {
				key, err := parseID(profileFlag)
				if err != nil {
					return err
				}
				filter = &key
			}

			a, err := e.open()
			if err != nil {
				return err
			}

			var list siteList
			for _, s := range a.Sites() {
				if filter != nil && s.Profile != *filter {
					continue
				}
				list = append(list, siteView{
					ID:       s.ULID.String(),
					Name:     s.Name(),
					Profile:  s.Profile.String(),
					StartURL: s.StartURL(),
				})
			}
			return e.printer.Print(list)
		},
	}
	cmd.Flags().StringVar(&profileFlag, "profile", "", "only list sites of this profile")
	return cmd
}

func createSiteInstallCommand(e *env) *cobra.Command {
	var (
		profileFlag  string
		manifestFile string
		cfg          site.Config
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install a site into a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profileID := id.Nil
			if profileFlag != "" {
				var err error
				if profileID, err = parseID(profileFlag); err != nil {
					return err
				}
			}

			manifest, err := readManifest(manifestFile)
			if err != nil {
				return err
			}

			a, err := e.open()
			if err != nil {
				return err
			}
			s, err := a.InstallSite(profileID, cfg, manifest)
			if err != nil {
				return err
			}
			if err := a.Save(); err != nil {
				return err
			}
			e.printer.Success(fmt.Sprintf("Site %s installed as %s", s.Name(), s.ULID))
			return nil
		},
	}
	cmd.Flags().StringVar(&profileFlag, "profile", "", "profile ID (default profile if empty)")
	cmd.Flags().StringVar(&manifestFile, "manifest", "", "path to the web app manifest JSON")
	cmd.Flags().StringVar(&cfg.DocumentURL, "document-url", "", "URL of the page the manifest belongs to")
	cmd.Flags().StringVar(&cfg.ManifestURL, "manifest-url", "", "URL the manifest was fetched from")
	cmd.Flags().StringVar(&cfg.Name, "name", "", "override the app name")
	cmd.Flags().StringVar(&cfg.Description, "description", "", "override the app description")
	cmd.Flags().StringVar(&cfg.StartURL, "start-url", "", "override the start URL")
	cmd.Flags().StringSliceVar(&cfg.Categories, "category", nil, "app category (repeatable)")
	cmd.Flags().StringSliceVar(&cfg.Keywords, "keyword", nil, "app keyword (repeatable)")
	cmd.Flags().BoolVar(&cfg.LaunchOnLogin, "launch-on-login", false, "launch the app on login")
	_ = cmd.MarkFlagRequired("document-url")
	return cmd
}

func readManifest(path string) (site.Manifest, error) {
	var manifest site.Manifest
	if path == "" {
		return manifest, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return manifest, fmt.Errorf("read manifest: %w", err)
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return manifest, fmt.Errorf("parse manifest: %w", err)
	}
	return manifest, nil
}

func createSiteRemoveCommand(e *env) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Short:   "Remove an installed site",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := e.open()
			if err != nil {
				return err
			}
			s, err := a.Site(key)
			if err != nil {
				return err
			}

			ok, err := prompt.ConfirmWithForce(fmt.Sprintf("Remove site '%s'", s.Name()), force)
			if err != nil {
				return err
			}
			if !ok {
				e.printer.Warning("Removal cancelled")
				return nil
			}

			if _, err := a.RemoveSite(key); err != nil {
				return err
			}
			if err := a.Save(); err != nil {
				return err
			}
			e.printer.Success(fmt.Sprintf("Site %s removed", key))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "yes", "y", false, "remove without confirmation")
	return cmd
}

func createSiteIconCommand(e *env) *cobra.Command {
	var (
		size    int
		purpose string
	)

	cmd := &cobra.Command{
		Use:   "icon <id>",
		Short: "Print the best icon of a site for a given size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := e.open()
			if err != nil {
				return err
			}
			s, err := a.Site(key)
			if err != nil {
				return err
			}

			src, ok := site.PickIcon(site.IconList(s.Manifest.Icons, purpose), size)
			if !ok {
				return fmt.Errorf("site %s has no %s icons", key, purpose)
			}
			fmt.Fprintln(cmd.OutOrStdout(), src)
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 64, "desired icon size in pixels")
	cmd.Flags().StringVar(&purpose, "purpose", "any", "icon purpose (any|maskable|monochrome)")
	return cmd
}
