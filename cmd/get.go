package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get FILE KEY...",
	Short: "Print the counterpart of each key",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		set, err := loadSet(args[0])
		checkErr(err)
		missing := 0
		for _, key := range args[1:] {
			value, err := set.Get(key)
			if err != nil {
				missing++
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", key, color.RedString("%v", err))
				continue
			}
			// lenient sets hand back the zero value for a missing key
			if !set.Contains(key) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", key, color.YellowString("<none>"))
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", key, color.GreenString("%s", value))
		}
		if missing > 0 {
			bailf("%d of %d keys not found", missing, len(args)-1)
		}
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
