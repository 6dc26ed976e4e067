package main

import (
	"fmt"
	"os"

	"github.com/Siddhesh-Agarwal/pwactl/internal/app"
	"github.com/Siddhesh-Agarwal/pwactl/internal/build"
	"github.com/Siddhesh-Agarwal/pwactl/internal/cli/output"
	"github.com/Siddhesh-Agarwal/pwactl/internal/cli/prompt"
	"github.com/Siddhesh-Agarwal/pwactl/internal/config"
	"github.com/Siddhesh-Agarwal/pwactl/internal/directories"
	"github.com/Siddhesh-Agarwal/pwactl/internal/id"
	"github.com/Siddhesh-Agarwal/pwactl/internal/logger"
	"github.com/Siddhesh-Agarwal/pwactl/internal/storage"
	"github.com/spf13/cobra"
)

var version = "dev"

// env carries what every command needs once flags are parsed.
type env struct {
	dataDir string
	output  string
	verbose bool
	noColor bool

	log     *logger.Logger
	dirs    directories.ProjectDirs
	printer *output.Printer
}

func main() {
	e := &env{}
	rootCmd := newRootCommand(e)

	err := rootCmd.Execute()
	if e.log != nil {
		e.log.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand(e *env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pwactl",
		Short:         "Manage web app profiles and sites",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&e.dataDir, "data-dir", "", "data directory (default $XDG_DATA_HOME/pwactl)")
	rootCmd.PersistentFlags().StringVarP(&e.output, "output", "o", "", "output format (table|json|yaml)")
	rootCmd.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&e.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		createPathCommand(e),
		createVersionCommand(),
		createProfileCommand(e),
		createSiteCommand(e),
		createBackupCommand(e),
	)
	return rootCmd
}

func (e *env) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if e.verbose {
		level = "debug"
	}
	if e.log, err = logger.New(level); err != nil {
		return err
	}

	if e.dataDir == "" {
		e.dataDir = cfg.DataDir
	}
	if e.dirs, err = directories.Resolve(e.dataDir); err != nil {
		return err
	}

	if !cmd.Flags().Changed("output") {
		e.output = cfg.Output
	}
	format, err := output.ParseFormat(e.output)
	if err != nil {
		return err
	}
	color := !e.noColor && prompt.IsTerminal(os.Stdout)
	e.printer = output.NewPrinter(cmd.OutOrStdout(), format, color)
	return nil
}

func (e *env) open() (*app.App, error) {
	return app.Open(e.dirs, e.log)
}

func createPathCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the location of the storage document",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), storage.Path(e.dirs.Data))
		},
	}
}

func createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pwactl %s (%s build)\n", version, build.Mode())
		},
	}
}

func parseID(s string) (id.ID, error) {
	v, err := id.Parse(s)
	if err != nil {
		return id.Nil, fmt.Errorf("invalid ID %q: %w", s, err)
	}
	return v, nil
}
