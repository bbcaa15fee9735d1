package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database, catalogue and config information",
	Long:  `Display the config and database locations, the active catalogue and the import history size.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg := cfgFile.Config()

	fmt.Println("cubealg Status")
	fmt.Println("==============")
	fmt.Println()

	fmt.Printf("Config: %s\n", cfgFile.Path())
	fmt.Printf("Max depth: %d\n", getMaxDepth())
	if cfg.CataloguePath != "" {
		fmt.Printf("Catalogue file: %s\n", cfg.CataloguePath)
	}
	fmt.Println()

	path, err := getDBPath()
	if err != nil {
		return err
	}
	fmt.Printf("Database: %s\n", path)

	db, err := storage.Open(path)
	if err != nil {
		fmt.Printf("  unavailable: %v\n", err)
	} else {
		defer db.Close()
		if err := db.MigrateUp(); err != nil {
			fmt.Printf("  migration failed: %v\n", err)
		} else {
			printDBStatus(db)
		}
	}
	fmt.Println()

	cat, source, err := loadCatalogue()
	if err != nil {
		fmt.Printf("Active catalogue: error: %v\n", err)
		return nil
	}
	nAlgs, nCases := cat.Len()
	fmt.Printf("Active catalogue: %s (%d algorithms, %d cases)\n", source, nAlgs, nCases)

	return nil
}

func printDBStatus(db *storage.DB) {
	if size, err := db.Size(); err == nil {
		fmt.Printf("  Size: %s\n", humanize.Bytes(uint64(size)))
	}
	if v, err := db.CurrentVersion(); err == nil {
		fmt.Printf("  Schema version: %d\n", v)
	}

	repo := storage.NewCatalogueRepository(db)
	latest, err := repo.Latest()
	if err != nil || latest == nil {
		fmt.Println("  No catalogue imported")
		return
	}
	fmt.Printf("  Latest import: %s (%s) from %s\n",
		latest.ImportID[:8], humanize.Time(latest.ImportedAt), latest.Source)

	if algs, cases, err := repo.Count(); err == nil {
		fmt.Printf("  Active import: %s algorithms, %s cases\n",
			humanize.Comma(int64(algs)), humanize.Comma(int64(cases)))
	}
	if imports, err := repo.Imports(0); err == nil {
		fmt.Printf("  Imports: %d\n", len(imports))
	}
}
