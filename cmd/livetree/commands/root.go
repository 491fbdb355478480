// Package commands implements the livetree command line.
package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"go.trai.ch/livetree/internal/app"
	"go.trai.ch/livetree/internal/build"
	"go.trai.ch/livetree/internal/core/domain"
)

// CLI represents the command line interface for livetree.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "livetree [path]",
		Short: "Watch a directory and show its tree as it changes",
		Long: "livetree draws the directory tree of path (default \".\") and redraws it whenever\n" +
			"the filesystem changes, highlighting the entries that changed.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runRoot,
	}
	addTreeFlags(rootCmd)

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func addTreeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntP(domain.FlagLevel, "L", 0, "Descend at most this many levels (0 = unlimited)")
	f.StringArrayP(domain.FlagIgnore, "I", nil, "Ignore entries matching the glob (repeatable)")
	f.BoolP(domain.FlagAll, "a", false, "Show hidden entries")
	f.BoolP(domain.FlagDirsOnly, "D", false, "List directories only")
	f.BoolP(domain.FlagFollowSymlinks, "f", false, "Follow symbolic links to directories")
	f.Int(domain.FlagDebounce, int(domain.DefaultDebounce/time.Millisecond),
		"Debounce window in milliseconds (minimum 50)")
	f.Bool(domain.FlagNoColor, false, "Disable colors (also set by NO_COLOR)")
	f.CountP(domain.FlagVerbose, "v", "Increase log verbosity")
	f.BoolP(domain.FlagQuiet, "q", false, "Only log warnings and errors")
	f.Bool(domain.FlagNoTitle, false, "Do not set the terminal window title")
	f.Int(domain.FlagMaxEntries, domain.DefaultMaxEntries, "Maximum entries to show (0 = unlimited)")
	f.Int(domain.FlagHighlight, int(domain.DefaultHighlight/time.Second),
		"Seconds a changed entry stays highlighted (0-3600)")
	f.Bool(domain.FlagNoDefaultIgnores, false, "Do not ignore .git, node_modules and similar entries")
	f.String(domain.FlagLogFile, "", "Also write JSON logs to this file")
	f.String(domain.FlagConfig, "", "Path to the config file")
}

func (c *CLI) runRoot(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()

	s := domain.DefaultSettings()
	if len(args) == 1 {
		s.Path = args[0]
	}
	s.MaxDepth, _ = f.GetInt(domain.FlagLevel)
	if ignore, _ := f.GetStringArray(domain.FlagIgnore); len(ignore) > 0 {
		s.Ignore = ignore
	}
	s.ShowHidden, _ = f.GetBool(domain.FlagAll)
	s.DirsOnly, _ = f.GetBool(domain.FlagDirsOnly)
	s.FollowSymlinks, _ = f.GetBool(domain.FlagFollowSymlinks)
	debounceMS, _ := f.GetInt(domain.FlagDebounce)
	s.Debounce = time.Duration(debounceMS) * time.Millisecond
	s.NoColor, _ = f.GetBool(domain.FlagNoColor)
	s.Verbose, _ = f.GetCount(domain.FlagVerbose)
	s.Quiet, _ = f.GetBool(domain.FlagQuiet)
	s.NoTitle, _ = f.GetBool(domain.FlagNoTitle)
	s.MaxEntries, _ = f.GetInt(domain.FlagMaxEntries)
	highlightSec, _ := f.GetInt(domain.FlagHighlight)
	s.Highlight = time.Duration(highlightSec) * time.Second
	s.NoDefaultIgnores, _ = f.GetBool(domain.FlagNoDefaultIgnores)
	s.LogFile, _ = f.GetString(domain.FlagLogFile)
	configPath, _ := f.GetString(domain.FlagConfig)

	return c.app.Run(cmd.Context(), app.RunOptions{
		Settings:   s,
		ConfigPath: configPath,
		Changed:    f.Changed,
	})
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
