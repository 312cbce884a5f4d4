// ABOUTME: Root cobra command for itemsctl with the persistent connection flags
// ABOUTME: Builds the items client before any subcommand runs and closes it afterwards

package cli

import (
	"github.com/spf13/cobra"

	"items-app-api/core/interfaces"
	logruslogger "items-app-api/infrastructure/logger/logrus"
	"items-app-api/itemslib"
	"items-app-api/pkg/config"
)

// Deps carries the flag values and the client shared by subcommands
type Deps struct {
	BaseURL string
	Path    string
	DBPath  string
	Memory  bool
	Verbose bool

	// Options are appended after the flag-derived options. Tests use it to
	// inject a store or source.
	Options []itemslib.Option

	Client *itemslib.Client
}

// NewRootCmd builds the itemsctl root command and its subcommands
func NewRootCmd(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = &Deps{}
	}

	cmd := &cobra.Command{
		Use:           "itemsctl",
		Short:         "Inspect and manage the local item cache",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			options := []itemslib.Option{
				itemslib.WithBaseURL(deps.BaseURL),
				itemslib.WithPath(deps.Path),
				itemslib.WithLogger(newCLILogger(cmd, deps.Verbose)),
			}
			if deps.Memory {
				options = append(options, itemslib.WithMemoryStore())
			} else {
				options = append(options, itemslib.WithSQLitePath(deps.DBPath))
			}
			options = append(options, deps.Options...)

			client, err := itemslib.NewClient(options...)
			if err != nil {
				return err
			}
			deps.Client = client
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if deps.Client == nil {
				return nil
			}
			return deps.Client.Close()
		},
	}

	cmd.PersistentFlags().StringVar(&deps.BaseURL, "base-url", config.DefaultBaseURL, "base URL of the item service")
	cmd.PersistentFlags().StringVar(&deps.Path, "path", config.DefaultItemsPath, "item list path relative to the base URL")
	cmd.PersistentFlags().StringVar(&deps.DBPath, "db", itemslib.DefaultSQLitePath, "SQLite database file")
	cmd.PersistentFlags().BoolVar(&deps.Memory, "memory", false, "keep items in memory instead of SQLite")
	cmd.PersistentFlags().BoolVarP(&deps.Verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(
		NewListCmd(deps),
		NewResetCmd(deps),
	)

	return cmd
}

// newCLILogger logs warnings to stderr, or everything with --verbose
func newCLILogger(cmd *cobra.Command, verbose bool) interfaces.Logger {
	level := "warn"
	if verbose {
		level = "debug"
	}
	logger, err := logruslogger.NewLoggerWithWriter(config.LogConfig{
		Backend: "logrus",
		Level:   level,
		Format:  "text",
	}, cmd.ErrOrStderr())
	if err != nil {
		return itemslib.QuietLogger()
	}
	return logger
}
