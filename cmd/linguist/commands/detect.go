package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/drshade/linguist/internal/classifier"
	"github.com/spf13/cobra"
)

// detectCmd represents the detect command
var detectCmd = &cobra.Command{
	Use:   "detect [flags] FILE...",
	Short: "Detect the language of one or more files",
	Long: `Detects the programming language of each file by extension, exact
filename, and content heuristics. With no method flags, all three
methods run. Vendored paths are marked.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		byExtension, _ := cmd.Flags().GetBool("by-extension")
		byFilename, _ := cmd.Flags().GetBool("by-filename")
		byContent, _ := cmd.Flags().GetBool("by-content")
		all, _ := cmd.Flags().GetBool("all")

		// Default to every method unless specific ones were selected.
		if all || (!byExtension && !byFilename && !byContent) {
			byExtension, byFilename, byContent = true, true, true
		}

		ix, err := buildIndex()
		if err != nil {
			return err
		}

		anySuccess := false
		anyError := false
		for _, path := range args {
			if err := detectFile(ix, path, byExtension, byFilename, byContent); err != nil {
				fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", path, err)
				anyError = true
			} else {
				anySuccess = true
			}
		}

		if !anySuccess && anyError {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	detectCmd.Flags().BoolP("by-extension", "e", false, "Detect by file extension only")
	detectCmd.Flags().BoolP("by-filename", "f", false, "Detect by exact filename only")
	detectCmd.Flags().BoolP("by-content", "c", false, "Detect by content heuristics only")
	detectCmd.Flags().BoolP("all", "a", false, "Use all detection methods")
}

func detectFile(ix *classifier.Index, path string, byExtension, byFilename, byContent bool) error {
	vendored, err := ix.IsVendored(path)
	if err != nil {
		return err
	}
	marker := ""
	if vendored {
		marker = " [vendored]"
	}

	foundAny := false

	if byExtension {
		matches, err := ix.ByExtension(path)
		if err != nil {
			log.Warn("detection by extension failed", "path", path, "error", err)
		} else if len(matches) > 0 {
			foundAny = true
			fmt.Printf("%s: %s (by extension)%s\n", path, joinNames(matches), marker)
		}
	}

	if byFilename {
		matches, err := ix.ByFilename(path)
		if err != nil {
			log.Warn("detection by filename failed", "path", path, "error", err)
		} else if len(matches) > 0 {
			foundAny = true
			fmt.Printf("%s: %s (by filename)%s\n", path, joinNames(matches), marker)
		}
	}

	if byContent {
		content, err := os.ReadFile(path)
		if err != nil {
			log.Warn("failed to read file", "path", path, "error", err)
		} else {
			matches, err := ix.Disambiguate(path, string(content))
			if err != nil {
				log.Warn("disambiguation failed", "path", path, "error", err)
			} else if len(matches) > 0 {
				foundAny = true
				fmt.Printf("%s: %s (by content)%s\n", path, joinNames(matches), marker)
			}
		}
	}

	if !foundAny {
		fmt.Printf("%s: Unknown%s\n", path, marker)
	}
	return nil
}

func joinNames(matches []classifier.Match) string {
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Name)
	}
	return strings.Join(names, ", ")
}
