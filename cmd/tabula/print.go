package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/tabula/internal/app"
	"github.com/five82/tabula/internal/dashboard"
)

// printCmd prints one page of a table without starting the dashboard.
var printCmd = &cobra.Command{
	Use:   "print <users|posts|todos>",
	Short: "Print one page of a table",
	Long: `Load the dataset once and print one page of a table.

Search, sort and paging behave as in the dashboard. The sort column must be
sortable; --desc reverses it.

Example:
  tabula print users --sort name --desc
  tabula print posts -q "qui est" --page 2 --page-size 20`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: dashboard.Keys(dashboard.Sheets(dashboard.Actions{})),
	RunE:      runPrint,
}

func init() {
	rootCmd.AddCommand(printCmd)

	printCmd.Flags().StringP("query", "q", "", "search query")
	printCmd.Flags().String("sort", "", "column key to sort by, e.g. name or title")
	printCmd.Flags().Bool("desc", false, "sort descending")
	printCmd.Flags().Int("page", 1, "page to print")
	printCmd.Flags().Int("page-size", 0, "rows per page (default from prefs or config)")
}

func runPrint(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	sortKey, _ := cmd.Flags().GetString("sort")
	desc, _ := cmd.Flags().GetBool("desc")
	page, _ := cmd.Flags().GetInt("page")
	size, _ := cmd.Flags().GetInt("page-size")

	env, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	return env.Print(cmd.Context(), cmd.OutOrStdout(), app.PrintOptions{
		Sheet:    args[0],
		Query:    query,
		SortKey:  strings.TrimSpace(sortKey),
		Desc:     desc,
		Page:     page,
		PageSize: size,
	})
}
