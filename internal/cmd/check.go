package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alamintokder/bazar-sodai/internal/catalog"
	"github.com/alamintokder/bazar-sodai/internal/config"
)

var checkPath string

var checkCmd = &cobra.Command{
	Use:   "check-catalog",
	Short: "Validate the catalog data file",
	Long: `Load the catalog data file and validate its structure: unique category
ids, every category leaf xor composite, and non-negative prices. Useful
before deploying an edited data file.`,
	RunE: checkCatalog,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkPath, "path", "", "Catalog file to check (defaults to the configured path)")
}

func checkCatalog(cmd *cobra.Command, args []string) error {
	path := checkPath
	if path == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		path = cfg.Catalog.Path
	}

	snapshot, err := catalog.Load(path)
	if err != nil {
		return err
	}

	fmt.Printf("Catalog %s is valid\n", path)
	fmt.Printf("  categories: %d\n", len(snapshot.Categories))

	leaf, composite := 0, 0
	for i := range snapshot.Categories {
		if snapshot.Categories[i].IsLeaf() {
			leaf++
		} else {
			composite++
		}
	}
	fmt.Printf("  leaf: %d, composite: %d\n", leaf, composite)
	fmt.Printf("  items: %d\n", snapshot.ItemCount())

	return nil
}
