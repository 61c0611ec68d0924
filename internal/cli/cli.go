// Package cli is the command line surface of apiconfig: it prints the
// endpoint registry resolved against the configured base URL.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aicontext/webclient-go/internal/config"
	"github.com/aicontext/webclient-go/internal/endpoints"
)

const cmdName = "apiconfig"

// App holds the root command and the registry it reports on.
type App struct {
	rootCmd  cobra.Command
	cfg      *config.Config
	registry *endpoints.Registry
	log      *slog.Logger
}

// New registers the commands. The registry is built from cfg.APIBaseURL.
func New(cfg *config.Config, log *slog.Logger) *App {
	a := App{
		cfg:      cfg,
		registry: endpoints.New(cfg.APIBaseURL),
		log:      log,
	}
	a.rootCmd = cobra.Command{
		Use:   fmt.Sprintf("%s COMMAND", cmdName),
		Short: "Inspect the web client API endpoint registry",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Parsing succeeded, runtime errors should not print usage.
			a.rootCmd.SilenceUsage = true
			a.log.Debug("Resolved API configuration",
				"base_url", a.cfg.APIBaseURL,
				"v1_base", a.registry.Base(),
			)
		},
		// Errors are reported by the caller through the logger.
		SilenceErrors: true,
	}

	a.installList()
	a.installResolve()
	a.installBase()

	return &a
}

// Run executes the command selected by the arguments.
func (a *App) Run() error {
	return a.rootCmd.Execute()
}

// UsageError reports whether the last error came from argument parsing.
func (a *App) UsageError() bool {
	return !a.rootCmd.SilenceUsage
}

// SetArgs overrides the process arguments.
func (a *App) SetArgs(args ...string) {
	a.rootCmd.SetArgs(args)
}

// SetOutput redirects command output.
func (a *App) SetOutput(w io.Writer) {
	a.rootCmd.SetOut(w)
	a.rootCmd.SetErr(w)
}

func (a *App) installList() {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := a.registry.Catalog()
			out := cmd.OutOrStdout()

			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(catalog)
			case "text":
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				for _, e := range catalog {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Group, e.Name, e.Template)
				}
				return tw.Flush()
			default:
				return fmt.Errorf("unknown format %q, want text or json", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or json")

	a.rootCmd.AddCommand(cmd)
}

func (a *App) installResolve() {
	cmd := &cobra.Command{
		Use:   "resolve GROUP NAME [ID]",
		Short: "Print the URL of one endpoint",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := a.registry.Resolve(args[0], args[1], args[2:]...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}

	a.rootCmd.AddCommand(cmd)
}

func (a *App) installBase() {
	cmd := &cobra.Command{
		Use:   "base",
		Short: "Print the base URL, the versioned base and the request timeout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "base_url=%s\n", a.cfg.APIBaseURL)
			fmt.Fprintf(out, "v1_base=%s\n", a.registry.Base())
			fmt.Fprintf(out, "timeout_ms=%d\n", a.cfg.APITimeout.Milliseconds())
			return nil
		},
	}

	a.rootCmd.AddCommand(cmd)
}
