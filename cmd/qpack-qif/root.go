package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "qpack-qif",
	Short: "Encode and decode QIF header lists through the QPACK codec",
	Long: "qpack-qif drives the hc package's encoder and decoder against QIF\n" +
		"(QPACK/HPACK Interop Format) header lists, for cross-implementation\n" +
		"interop testing and for exercising the codec from the command line.",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable diagnostic logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
