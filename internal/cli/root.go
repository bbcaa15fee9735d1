// Package cli implements the command-line interface for cubealg.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg/internal/algorithm"
	"github.com/SeamusWaldron/cubealg/internal/catalogue"
	"github.com/SeamusWaldron/cubealg/internal/config"
	"github.com/SeamusWaldron/cubealg/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath        string
	cataloguePath string
	configPath    string
	maxDepth      int
	verbose       bool

	// Loaded in PersistentPreRunE.
	cfgFile *config.File

	log = logrus.New()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubealg",
	Short: "3x3 cube notation and algorithm toolkit",
	Long: `cubealg parses cube move notation, applies moves to a simulated 3x3 cube,
expands catalogue algorithms that reference other algorithms, folds
cancelling moves at step boundaries, and derives the problem state each
catalogue case is solved from.

The catalogue is read from --catalogue, the configured catalogue path,
the latest import in the database, or the built-in catalogue, in that order.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		} else {
			log.SetLevel(logrus.WarnLevel)
		}

		var err error
		if configPath != "" {
			cfgFile, err = config.NewFile(configPath)
		} else {
			cfgFile, err = config.NewDefaultFile()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		log.WithField("config", cfgFile.Path()).Debug("config loaded")
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubealg/catalogue.db)")
	rootCmd.PersistentFlags().StringVar(&cataloguePath, "catalogue", "", "Catalogue YAML file (overrides the database)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cubealg/config.json)")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", algorithm.DefaultMaxDepth, "Maximum algorithm reference depth (0 forbids references)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// getDBPath returns the database path from flag, config or default.
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfgFile != nil && cfgFile.Config().DBPath != "" {
		return cfgFile.Config().DBPath, nil
	}
	return storage.DefaultDBPath()
}

// openDB opens and migrates the catalogue database.
func openDB() (*storage.DB, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return openDBAt(path)
}

func openDBAt(path string) (*storage.DB, error) {
	db, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.WithField("db", path).Debug("database opened")
	return db, nil
}

// getMaxDepth returns the depth bound from flag, config or default.
func getMaxDepth() int {
	configured := 0
	if cfgFile != nil {
		configured = cfgFile.Config().MaxDepth
	}
	return resolveMaxDepth(rootCmd.PersistentFlags().Changed("max-depth"), maxDepth, configured)
}

// resolveMaxDepth prefers an explicitly set flag, including 0, over the
// configured value. A configured value of 0 means unset.
func resolveMaxDepth(flagSet bool, flag, configured int) int {
	switch {
	case flagSet:
		return flag
	case configured > 0:
		return configured
	default:
		return algorithm.DefaultMaxDepth
	}
}

// loadCatalogue resolves the active catalogue and describes where it came from.
func loadCatalogue() (*catalogue.Static, string, error) {
	path := cataloguePath
	if path == "" && cfgFile != nil {
		path = cfgFile.Config().CataloguePath
	}
	if path != "" {
		cat, err := catalogue.LoadYAML(path)
		if err != nil {
			return nil, "", err
		}
		log.WithField("catalogue", path).Debug("catalogue loaded from file")
		return cat, path, nil
	}

	dbFile, err := getDBPath()
	if err != nil {
		return nil, "", err
	}
	cat, ok, err := loadStoredCatalogue(dbFile)
	if err != nil {
		return nil, "", err
	}
	if ok {
		return cat, "database " + dbFile, nil
	}

	cat, err = catalogue.Default()
	if err != nil {
		return nil, "", err
	}
	return cat, "built-in", nil
}

// loadStoredCatalogue returns the latest catalogue imported into the database
// at path. It reports false, and creates nothing, when no database file exists.
func loadStoredCatalogue(path string) (*catalogue.Static, bool, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.WithField("db", path).Debug("no database, using built-in catalogue")
		return nil, false, nil
	}

	db, err := openDBAt(path)
	if err != nil {
		log.WithError(err).Warn("database unavailable, using built-in catalogue")
		return nil, false, nil
	}
	defer db.Close()

	cat, err := storage.NewCatalogueRepository(db).Load()
	switch {
	case err == nil:
		return cat, true, nil
	case errors.Is(err, storage.ErrNoCatalogue):
		log.Debug("no catalogue imported, using built-in catalogue")
		return nil, false, nil
	default:
		return nil, false, err
	}
}

// newExpander creates an expander over cat honoring --max-depth.
func newExpander(cat algorithm.Catalogue) *algorithm.Expander {
	depth := getMaxDepth()
	log.WithField("depth", depth).Debug("expander configured")
	return algorithm.NewExpander(cat, algorithm.WithMaxDepth(depth))
}
