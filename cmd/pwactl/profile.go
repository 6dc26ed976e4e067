package main

import (
	"fmt"
	"strconv"

	"github.com/Siddhesh-Agarwal/pwactl/internal/app"
	"github.com/Siddhesh-Agarwal/pwactl/internal/cli/prompt"
	"github.com/Siddhesh-Agarwal/pwactl/internal/profile"
	"github.com/spf13/cobra"
)

type profileView struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Sites       int    `json:"sites" yaml:"sites"`
}

type profileList []profileView

func (l profileList) Headers() []string {
	return []string{"ID", "Name", "Description", "Sites"}
}

func (l profileList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, p := range l {
		rows = append(rows, []string{p.ID, p.Name, p.Description, strconv.Itoa(p.Sites)})
	}
	return rows
}

func newProfileView(p profile.Profile) profileView {
	v := profileView{ID: p.ULID.String(), Sites: len(p.Sites)}
	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.Description != nil {
		v.Description = *p.Description
	}
	return v
}

func createProfileCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage profiles",
	}
	cmd.AddCommand(
		createProfileListCommand(e),
		createProfileCreateCommand(e),
		createProfileUpdateCommand(e),
		createProfileRemoveCommand(e),
	)
	return cmd
}

func createProfileListCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List all profiles",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.open()
			if err != nil {
				return err
			}

			var list profileList
			for _, p := range a.Profiles() {
				list = append(list, newProfileView(p))
			}
			return e.printer.Print(list)
		},
	}
}

func createProfileCreateCommand(e *env) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.open()
			if err != nil {
				return err
			}

			p := a.CreateProfile(name, description)
			if err := a.Save(); err != nil {
				return err
			}
			e.printer.Success(fmt.Sprintf("Profile %s created", p.ULID))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "profile name")
	cmd.Flags().StringVar(&description, "description", "", "profile description")
	return cmd
}

func createProfileUpdateCommand(e *env) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the name or description of a profile",
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

			var update app.ProfileUpdate
			if cmd.Flags().Changed("name") {
				update.Name = &name
			}
			if cmd.Flags().Changed("description") {
				update.Description = &description
			}
			if _, err := a.UpdateProfile(key, update); err != nil {
				return err
			}
			if err := a.Save(); err != nil {
				return err
			}
			e.printer.Success(fmt.Sprintf("Profile %s updated", key))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new profile name (empty to unset)")
	cmd.Flags().StringVar(&description, "description", "", "new profile description (empty to unset)")
	return cmd
}

func createProfileRemoveCommand(e *env) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Short:   "Remove a profile and all of its sites",
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
			p, err := a.Profile(key)
			if err != nil {
				return err
			}

			ok, err := prompt.ConfirmWithForce(fmt.Sprintf("Remove profile '%s' and %d site(s)", p.DisplayName(), len(p.Sites)), force)
			if err != nil {
				return err
			}
			if !ok {
				e.printer.Warning("Removal cancelled")
				return nil
			}

			removed, err := a.RemoveProfile(key)
			if err != nil {
				return err
			}
			if err := a.Save(); err != nil {
				return err
			}
			if key.IsNil() {
				e.printer.Success(fmt.Sprintf("Default profile cleared, %d site(s) removed", len(removed)))
			} else {
				e.printer.Success(fmt.Sprintf("Profile %s removed with %d site(s)", key, len(removed)))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "yes", "y", false, "remove without confirmation")
	return cmd
}
