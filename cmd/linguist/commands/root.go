package commands

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/drshade/linguist/internal/classifier"
	"github.com/drshade/linguist/internal/config"
	"github.com/drshade/linguist/internal/dataset"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "linguist",
	Short: "linguist - Detect programming languages in files",
	Long: `linguist detects the programming language of files by file extension,
exact filename, and content analysis, and flags vendored paths.

Commands:
  detect      Detect the language of one or more files
  vendored    Check whether paths are vendored/third-party
  compile     Write a compiled snapshot of the language dataset
  init        Initialize linguist configuration interactively

Use "linguist [command] --help" for more information about a command.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(detectCmd)
	RootCmd.AddCommand(vendoredCmd)
	RootCmd.AddCommand(compileCmd)
	RootCmd.AddCommand(initCmd)
}

// loadDataset resolves the active dataset from configuration: compiled
// snapshot first, then a definitions directory, then the embedded copy.
func loadDataset(cfg *config.Config) (*dataset.Dataset, error) {
	if cfg.SnapshotPath != "" {
		d, err := dataset.LoadCompiledFile(cfg.SnapshotPath)
		if err != nil {
			return nil, fmt.Errorf("loading snapshot: %w", err)
		}
		return d, nil
	}
	if cfg.DefinitionsDir != "" {
		d, err := dataset.Load(cfg.DefinitionsDir)
		if err != nil {
			return nil, fmt.Errorf("loading definitions: %w", err)
		}
		return d, nil
	}
	return dataset.Default()
}

// buildIndex loads configuration and constructs the classifier index.
func buildIndex() (*classifier.Index, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if cfg.SnapshotPath == "" && cfg.DefinitionsDir == "" {
		return classifier.Default(), nil
	}

	d, err := loadDataset(cfg)
	if err != nil {
		return nil, err
	}
	return classifier.NewIndex(d), nil
}
