package main

import (
	"fmt"
	"os"

	"github.com/Siddhesh-Agarwal/pwactl/internal/cli/prompt"
	"github.com/spf13/cobra"
)

func createBackupCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or import an encrypted copy of all profiles and sites",
	}
	cmd.AddCommand(
		createBackupExportCommand(e),
		createBackupImportCommand(e),
	)
	return cmd
}

func createBackupExportCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write an encrypted backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.open()
			if err != nil {
				return err
			}
			password, err := prompt.NewPassword()
			if err != nil {
				return err
			}

			f, err := os.OpenFile(args[0], os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
			if err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
			if err := a.Export(f, password); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("write backup: %w", err)
			}
			e.printer.Success(fmt.Sprintf("Backup written to %s", args[0]))
			return nil
		},
	}
}

func createBackupImportCommand(e *env) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all profiles and sites with the contents of a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.open()
			if err != nil {
				return err
			}

			ok, err := prompt.ConfirmWithForce("Replace all profiles and sites", force)
			if err != nil {
				return err
			}
			if !ok {
				e.printer.Warning("Import cancelled")
				return nil
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open backup: %w", err)
			}
			defer f.Close()

			password, err := prompt.Password("Enter backup password: ")
			if err != nil {
				return err
			}
			if err := a.Import(f, password); err != nil {
				return err
			}
			if err := a.Save(); err != nil {
				return err
			}
			e.printer.Success("Backup imported")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "yes", "y", false, "import without confirmation")
	return cmd
}
