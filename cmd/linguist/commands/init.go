package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/drshade/linguist/internal/config"
	"github.com/drshade/linguist/internal/dataset"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize linguist configuration interactively",
	Long: `Guides you through setting up linguist configuration step by step.
Creates a config file selecting the dataset source and verbosity.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit()
	},
}

func runInit() error {
	var source string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Dataset source").
				Description("Where should language definitions come from?").
				Options(
					huh.NewOption("Embedded (built into the binary)", "embedded"),
					huh.NewOption("Definitions directory (languages.yml etc.)", "directory"),
					huh.NewOption("Compiled snapshot file", "snapshot"),
				).
				Value(&source),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}

	cfg := config.DefaultConfig()

	switch source {
	case "directory":
		dir := ""
		form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Definitions directory").
					Placeholder("./definitions").
					Value(&dir),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("interactive prompt failed: %w", err)
		}
		if _, err := dataset.Load(dir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: definitions did not load cleanly: %v\n", err)
		}
		cfg.DefinitionsDir = dir
	case "snapshot":
		path := ""
		form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Snapshot file").
					Placeholder("linguist.dataset").
					Value(&path),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("interactive prompt failed: %w", err)
		}
		cfg.SnapshotPath = path
	}

	verbose := false
	form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable verbose logging?").
				Value(&verbose),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}
	cfg.Verbose = verbose

	path := config.GlobalConfigPath()
	if err := cfg.Save(path); err != nil {
		return err
	}
	fmt.Printf("Configuration written to %s\n", path)
	return nil
}
