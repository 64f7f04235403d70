package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check that pair documents hold no clashing pairs",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		failed := 0
		for _, path := range args {
			set, err := loadSet(path)
			if err != nil {
				failed++
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", path, color.RedString("%v", err))
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, color.GreenString("ok, %d pairs", set.Size()))
		}
		if failed > 0 {
			bailf("%d of %d documents are invalid", failed, len(args))
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
