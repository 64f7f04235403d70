package cmd

import (
	"fmt"
	"strings"

	"github.com/GrayChrysTea/coupled-values/coupled"
	"github.com/spf13/cobra"
)

var showSorted bool

var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Print the pairs of a document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		set, err := loadSet(args[0])
		checkErr(err)
		if showSorted {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(coupled.SortedValues(set), "\n"))
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), set)
	},
}

func init() {
	showCmd.Flags().BoolVarP(&showSorted, "sorted", "s", false, "print every value in ascending order instead")
	rootCmd.AddCommand(showCmd)
}
