package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/five82/tabula/internal/app"
)

// logsCmd prints the tail of the application log.
var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Print recent application log records",
	Long: `Print the most recent records of the JSON application log in a readable
form. Records below --level are skipped.

Example:
  tabula logs -n 100 --level warn`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().IntP("lines", "n", 50, "number of records to print")
	logsCmd.Flags().String("level", "", "minimum level: debug, info, warn or error")
}

func runLogs(cmd *cobra.Command, args []string) error {
	lines, _ := cmd.Flags().GetInt("lines")
	level, _ := cmd.Flags().GetString("level")

	env, err := app.Open(options(cmd))
	if err != nil {
		return err
	}
	defer env.Close()

	color := cmd.OutOrStdout() == os.Stdout && isatty.IsTerminal(os.Stdout.Fd())
	return env.Tail(cmd.OutOrStdout(), lines, level, color)
}
