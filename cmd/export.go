package cmd

import (
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var exportIndent bool

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Print a document as a JSON list of pairs",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		set, err := loadSet(args[0])
		checkErr(err)
		enc := json.NewEncoder(cmd.OutOrStdout())
		if exportIndent {
			enc.SetIndent("", "  ")
		}
		checkErr(enc.Encode(set))
	},
}

func init() {
	exportCmd.Flags().BoolVarP(&exportIndent, "indent", "i", false, "indent the output")
	rootCmd.AddCommand(exportCmd)
}
