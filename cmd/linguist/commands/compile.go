package commands

import (
	"fmt"

	"github.com/drshade/linguist/internal/config"
	"github.com/spf13/cobra"
)

// compileCmd represents the compile command
var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Write a compiled snapshot of the language dataset",
	Long: `Parses the active dataset (embedded or from definitions_dir) and
writes it as a msgpack snapshot. Point snapshot_path at the output to
skip YAML parsing on startup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		// Never compile from a snapshot; that would be a no-op copy.
		cfg.SnapshotPath = ""

		d, err := loadDataset(cfg)
		if err != nil {
			return err
		}

		if err := d.CompileToFile(output); err != nil {
			return err
		}
		fmt.Printf("Wrote dataset snapshot to %s (%d languages)\n", output, len(d.Langs))
		return nil
	},
}

func init() {
	compileCmd.Flags().StringP("output", "o", "linguist.dataset", "Output snapshot file")
}
