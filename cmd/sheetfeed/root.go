package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/sheetfeed/internal/app"
	"github.com/five82/sheetfeed/pkg/sheetfeed"
)

type rootFlags struct {
	ConfigPath string
	PrefsPath  string
	XML        bool
	Verbose    bool
}

// cli carries what every subcommand needs once the root has run.
type cli struct {
	flags  rootFlags
	env    *app.Env
	stdout io.Writer
	stderr io.Writer
}

// Execute runs the command tree for args and reports errors on stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	c := &cli{stdout: stdout, stderr: stderr}
	root := c.newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	_, _ = fmt.Fprintln(stderr, formatError(err))
	return err
}

func (c *cli) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sheetfeed",
		Short:         "Read spreadsheets through the feed API",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Example: strings.TrimSpace(`
  # Worksheets of a published spreadsheet
  sheetfeed info 0AvS3NAJ_ABCdEfGhIjKlMnOpQrStUvWxYz

  # Rows matching a structured query
  sheetfeed rows <key> od6 --sq 'age > 30' --orderby column:age

  # A cell range as JSON
  sheetfeed cells <key> Sheet1 --range A1:C10 --json

  # Save a worksheet to Excel
  sheetfeed export <key> od6 --out sheet.xlsx

  # Browse interactively
  sheetfeed browse <key>
`),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			env, err := app.Setup(app.Options{
				ConfigPath: c.flags.ConfigPath,
				PrefsPath:  c.flags.PrefsPath,
				XML:        c.flags.XML,
				Logger:     newLogger(c.stderr, c.flags.Verbose),
			})
			if err != nil {
				return err
			}
			c.env = env
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.flags.ConfigPath, "config", "", "Config file (default ~/.config/sheetfeed/config.toml)")
	root.PersistentFlags().StringVar(&c.flags.PrefsPath, "prefs", "", "Preferences file (default ~/.config/sheetfeed/prefs.toml)")
	root.PersistentFlags().BoolVar(&c.flags.XML, "xml", false, "Request the legacy XML feed")
	root.PersistentFlags().BoolVarP(&c.flags.Verbose, "verbose", "v", false, "Log feed requests to stderr")

	root.AddCommand(c.newInfoCmd())
	root.AddCommand(c.newRowsCmd())
	root.AddCommand(c.newCellsCmd())
	root.AddCommand(c.newExportCmd())
	root.AddCommand(c.newBrowseCmd())
	root.AddCommand(c.newRecentCmd())
	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// formatError turns feed errors into a line a user can act on.
func formatError(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case sheetfeed.IsInvalidCredential(err):
		return err.Error() + " Check auth_token/access_token or SHEETFEED_AUTH_TOKEN/SHEETFEED_ACCESS_TOKEN."
	case sheetfeed.IsAccessDenied(err):
		return err.Error() + " Publish the spreadsheet or configure a credential."
	}
	return err.Error()
}
