package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/projectmanager/internal/buildinfo"
	"github.com/dmitrijs2005/projectmanager/internal/client/client"
	"github.com/dmitrijs2005/projectmanager/internal/client/config"
	"github.com/spf13/cobra"
)

// newClient is a test seam for the API client constructor.
var newClient = func(cfg *config.Config) client.Client {
	return client.NewHTTPClient(cfg.APIURL, cfg.RequestTimeout)
}

// NewRootCommand builds the command tree. The persistent flags mirror the
// ones read by config.LoadConfig so both parsers accept the same command
// line; values given here win.
func NewRootCommand(cfg *config.Config, in io.Reader, out io.Writer) *cobra.Command {
	var (
		app        *App
		configPath string
		timeout    = int(cfg.RequestTimeout.Seconds())
	)
	getApp := func() *App { return app }

	root := &cobra.Command{
		Use:           "pmcli",
		Short:         "Command-line client for the project management API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg.RequestTimeout = time.Duration(timeout) * time.Second
			app = NewApp(newClient(cfg), in, out)
		},
	}

	root.PersistentFlags().StringVarP(&cfg.APIURL, "api", "a", cfg.APIURL, "base URL of the API")
	root.PersistentFlags().IntVarP(&timeout, "timeout", "t", timeout, "request timeout (in seconds)")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to JSON config file")

	root.SetIn(in)
	root.SetOut(out)

	root.AddCommand(
		projectsCommand(getApp),
		tasksCommand(getApp),
		usersCommand(getApp),
		summaryCommand(getApp),
		shellCommand(getApp),
		versionCommand(),
	)
	return root
}

// Run executes args and returns the process exit code. Failures print the
// server's detail text to errOut.
func Run(ctx context.Context, cfg *config.Config, args []string, in io.Reader, out, errOut io.Writer) int {
	root := NewRootCommand(cfg, in, out)
	root.SetArgs(args)
	root.SetErr(errOut)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(errOut, "Error:", client.Detail(err))
		return 1
	}
	return 0
}

func summaryCommand(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show project and task counts per status and users per role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().Summary(cmd.Context())
		},
	}
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}

func shellCommand(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive prompt (type 'help' for commands)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			printlnFn("Welcome to the project manager shell (type 'help' for commands)")
			runREPL(cmd.Context(), a, a.reader)
			return nil
		},
	}
}
