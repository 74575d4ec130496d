// Package main is the entry point for the tabula CLI.
//
// Usage:
//
//	tabula                       # Start the dashboard
//	tabula print posts -q qui    # Print one page of a table
//	tabula user 3                # Show one user as YAML
//	tabula logs -n 50            # Tail the application log
//	tabula version               # Show version info
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/tabula/internal/app"
	"github.com/five82/tabula/internal/placeholder"
)

// Version information, set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd starts the dashboard when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "tabula",
	Short: "A terminal dashboard for JSONPlaceholder users, posts and todos",
	Long: `tabula loads users, posts and todos from a JSONPlaceholder API and shows
them in searchable, sortable, paginated tables.

Settings are read from ~/.config/tabula/config.toml:
  api_base  = "https://jsonplaceholder.typicode.com"
  timeout   = "10s"
  page_size = 10
  log_file  = "~/.local/state/tabula/tabula.log"
  log_level = "info"
  seq_url   = ""`,
	SilenceUsage: true,
	RunE:         runDashboard,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to config file (default ~/.config/tabula/config.toml)")
	rootCmd.PersistentFlags().String("prefs", "", "path to preferences file (default ~/.config/tabula/prefs.toml)")
	rootCmd.PersistentFlags().String("log-level", "", "override the configured log level")

	rootCmd.AddCommand(versionCmd)
}

// options builds app options from the persistent flags.
func options(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	prefsPath, _ := cmd.Flags().GetString("prefs")
	level, _ := cmd.Flags().GetString("log-level")
	return app.Options{ConfigPath: configPath, PrefsPath: prefsPath, LogLevel: level}
}

// openEnv opens an Env for a one-shot command, logging to stderr as well.
func openEnv(cmd *cobra.Command) (*app.Env, error) {
	opts := options(cmd)
	opts.Stderr = true
	return app.Open(opts)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	return app.Run(cmd.Context(), options(cmd))
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this tabula binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "tabula %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built:  %s\n", date)
	},
}

// Execute runs the root command until it finishes or a signal arrives.
func Execute() int {
	placeholder.Version = version

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Cobra already prints the error
		return 1
	}
	return 0
}

func main() {
	os.Exit(Execute())
}
