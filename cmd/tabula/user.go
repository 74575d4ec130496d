package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// userCmd shows a single user.
var userCmd = &cobra.Command{
	Use:   "user <id>",
	Short: "Show one user as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid user id %q", args[0])
		}

		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		return env.ShowUser(cmd.Context(), cmd.OutOrStdout(), id)
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
}
