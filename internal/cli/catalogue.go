package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg/internal/analysis"
	"github.com/SeamusWaldron/cubealg/internal/catalogue"
	"github.com/SeamusWaldron/cubealg/internal/notation"
	"github.com/SeamusWaldron/cubealg/internal/storage"
	"github.com/SeamusWaldron/cubealg/pkg/types"
)

var catalogueCmd = &cobra.Command{
	Use:     "catalogue",
	Aliases: []string{"cat"},
	Short:   "Manage the algorithm catalogue",
	Long:    `Import, list, check and export the algorithm catalogue.`,
}

var catalogueImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a catalogue YAML file into the database",
	Long: `Validate a catalogue YAML file and store it in the database as a new
import. The latest import becomes the active catalogue.

Without a file the built-in catalogue is imported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogueImport,
}

var catalogueListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the cases and algorithms of the active catalogue",
	RunE:  runCatalogueList,
}

var catalogueLintCmd = &cobra.Command{
	Use:   "lint [file]",
	Short: "Check a catalogue for expansion, notation and layer problems",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalogueLint,
}

var catalogueExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the active catalogue as YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalogueExport,
}

var catalogueTriggersCmd = &cobra.Command{
	Use:   "triggers",
	Short: "Show shared triggers and repeated move sequences",
	RunE:  runCatalogueTriggers,
}

var catalogueHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List previous catalogue imports",
	RunE:  runCatalogueHistory,
}

var (
	catalogueGroup    string
	catalogueJSON     bool
	catalogueLimit    int
	catalogueMinN     int
	catalogueMaxN     int
	catalogueTopK     int
	catalogueFailWarn bool
)

func init() {
	rootCmd.AddCommand(catalogueCmd)
	catalogueCmd.AddCommand(catalogueImportCmd)
	catalogueCmd.AddCommand(catalogueListCmd)
	catalogueCmd.AddCommand(catalogueLintCmd)
	catalogueCmd.AddCommand(catalogueExportCmd)
	catalogueCmd.AddCommand(catalogueTriggersCmd)
	catalogueCmd.AddCommand(catalogueHistoryCmd)

	catalogueListCmd.Flags().StringVarP(&catalogueGroup, "group", "g", "", "Only show cases of this group (oll, pll)")
	catalogueLintCmd.Flags().BoolVar(&catalogueJSON, "json", false, "Output as JSON")
	catalogueLintCmd.Flags().BoolVar(&catalogueFailWarn, "strict", false, "Fail on warnings as well as errors")
	catalogueHistoryCmd.Flags().IntVarP(&catalogueLimit, "limit", "n", 10, "Number of imports to show")
	catalogueTriggersCmd.Flags().IntVar(&catalogueMinN, "min-n", 3, "Shortest repeated sequence to report")
	catalogueTriggersCmd.Flags().IntVar(&catalogueMaxN, "max-n", 6, "Longest repeated sequence to report")
	catalogueTriggersCmd.Flags().IntVar(&catalogueTopK, "top", 5, "Sequences to show per length")
}

func runCatalogueImport(cmd *cobra.Command, args []string) error {
	var (
		cat    *catalogue.Static
		source string
		err    error
	)
	if len(args) == 1 {
		source, err = filepath.Abs(args[0])
		if err != nil {
			return err
		}
		cat, err = catalogue.LoadYAML(source)
	} else {
		source = "built-in"
		cat, err = catalogue.Default()
	}
	if err != nil {
		return err
	}

	report := analysis.Lint(cat, newExpander(cat))
	if !report.OK() {
		printLint(report)
		return fmt.Errorf("catalogue has %d errors, not imported", report.Count(analysis.SeverityError))
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := storage.NewCatalogueRepository(db).Import(cat, source)
	if err != nil {
		return fmt.Errorf("failed to import catalogue: %w", err)
	}
	if err := cfgFile.SetLastImport(id); err != nil {
		log.WithError(err).Warn("failed to record import in config")
	}

	nAlgs, nCases := cat.Len()
	log.WithFields(logrus.Fields{"import": id, "source": source}).Info("catalogue imported")
	fmt.Printf("Imported %d algorithms and %d cases from %s\n", nAlgs, nCases, source)
	fmt.Println(statusStyle.Render("  import " + id))
	if n := report.Count(analysis.SeverityWarning); n > 0 {
		fmt.Println(warnStyle.Render(fmt.Sprintf("  %d warnings; run 'cubealg catalogue lint' for details", n)))
	}
	return nil
}

func runCatalogueList(cmd *cobra.Command, args []string) error {
	cat, source, err := loadCatalogue()
	if err != nil {
		return err
	}

	nAlgs, nCases := cat.Len()
	fmt.Println(titleStyle.Render("Catalogue"))
	fmt.Println(statusStyle.Render(fmt.Sprintf("  %s: %d algorithms, %d cases", source, nAlgs, nCases)))
	fmt.Println()

	exp := newExpander(cat)
	for _, c := range cat.Cases() {
		if catalogueGroup != "" && !strings.EqualFold(c.Group, catalogueGroup) {
			continue
		}
		name := c.ID
		if c.Name != "" {
			name += " " + statusStyle.Render(c.Name)
		}
		fmt.Println(stepStyle.Render(strings.ToUpper(c.Group)) + " " + name)
		for i, a := range cat.AlgorithmsForCase(c.ID) {
			marker := " "
			if i == 0 {
				marker = "*"
			}
			effective := a.Simplified
			if x, err := exp.Expand(a); err == nil {
				effective = x.Notation()
			}
			fmt.Printf("  %s %-10s %s\n", marker, a.ID, moveStyle.Render(effective))
		}
	}

	return nil
}

func runCatalogueLint(cmd *cobra.Command, args []string) error {
	var (
		cat *catalogue.Static
		err error
	)
	if len(args) == 1 {
		cat, err = catalogue.LoadYAML(args[0])
	} else {
		cat, _, err = loadCatalogue()
	}
	if err != nil {
		return err
	}

	report := analysis.Lint(cat, newExpander(cat))

	if catalogueJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		printLint(report)
	}

	if !report.OK() {
		return fmt.Errorf("%d errors", report.Count(analysis.SeverityError))
	}
	if catalogueFailWarn && report.Count(analysis.SeverityWarning) > 0 {
		return fmt.Errorf("%d warnings", report.Count(analysis.SeverityWarning))
	}
	return nil
}

func printLint(report *analysis.LintReport) {
	for _, issue := range report.Issues {
		line := issue.String()
		switch issue.Severity {
		case analysis.SeverityError:
			fmt.Println(errorStyle.Render(line))
		case analysis.SeverityWarning:
			fmt.Println(warnStyle.Render(line))
		default:
			fmt.Println(statusStyle.Render(line))
		}
	}
	fmt.Printf("%d algorithms, %d cases: %d errors, %d warnings, %d notes\n",
		report.Algorithms, report.Cases,
		report.Count(analysis.SeverityError),
		report.Count(analysis.SeverityWarning),
		report.Count(analysis.SeverityInfo))
}

func runCatalogueExport(cmd *cobra.Command, args []string) error {
	cat, _, err := loadCatalogue()
	if err != nil {
		return err
	}

	data, err := cat.EncodeYAML()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(args[0], data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", args[0], err)
	}
	fmt.Printf("Exported catalogue to %s (%s)\n", args[0], humanize.Bytes(uint64(len(data))))
	return nil
}

func runCatalogueTriggers(cmd *cobra.Command, args []string) error {
	cat, _, err := loadCatalogue()
	if err != nil {
		return err
	}
	exp := newExpander(cat)

	triggers := analysis.CatalogueTriggers(cat.Algorithms(), exp)
	effective := make(map[string][]types.Move)
	for _, a := range cat.Algorithms() {
		x, err := exp.Expand(a)
		if err != nil {
			log.WithError(err).WithField("algorithm", a.ID).Warn("skipping")
			continue
		}
		effective[a.ID] = x.Moves
	}

	fmt.Println(titleStyle.Render("Shared triggers"))
	if len(triggers) == 0 {
		fmt.Println(statusStyle.Render("  (none)"))
	}
	for _, t := range triggers {
		users := 0
		for _, moves := range effective {
			if analysis.DetectTriggers(moves, []analysis.Trigger{t}).Counts[t.Name] > 0 {
				users++
			}
		}
		fmt.Printf("  %-10s %-24s used by %d\n", t.Name, moveStyle.Render(notation.Format(t.Sequence)), users)
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("Repeated sequences"))
	report := analysis.MineNGramsAcrossAlgorithms(effective, catalogueMinN, catalogueMaxN, catalogueTopK)
	for n := catalogueMinN; n <= catalogueMaxN; n++ {
		grams := report.TopNGrams[n]
		if len(grams) == 0 {
			continue
		}
		fmt.Println(stepStyle.Render(fmt.Sprintf("  n=%d", n)))
		for _, g := range grams {
			fmt.Printf("    %-24s x%d\n", strings.Join(g.Sequence, " "), g.Count)
		}
	}
	return nil
}

func runCatalogueHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := storage.NewCatalogueRepository(db).Imports(catalogueLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No catalogue imported. Import one with: cubealg catalogue import [file]")
		return nil
	}

	for i, r := range records {
		marker := " "
		if i == 0 {
			marker = "*"
		}
		fmt.Printf("%s %s  %-12s %3d algorithms %3d cases  %s\n",
			marker, r.ImportID[:8], humanize.Time(r.ImportedAt), r.AlgorithmCount, r.CaseCount, r.Source)
	}
	return nil
}
