package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// vendoredCmd represents the vendored command
var vendoredCmd = &cobra.Command{
	Use:   "vendored PATH...",
	Short: "Check whether paths are vendored/third-party",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ix, err := buildIndex()
		if err != nil {
			return err
		}

		exitCode := 0
		for _, path := range args {
			vendored, err := ix.IsVendored(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", path, err)
				exitCode = 1
				continue
			}
			if vendored {
				fmt.Printf("%s: vendored\n", path)
			} else {
				fmt.Printf("%s: not vendored\n", path)
			}
		}

		if exitCode != 0 {
			os.Exit(exitCode)
		}
		return nil
	},
}
