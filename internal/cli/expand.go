package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg/internal/algorithm"
	"github.com/SeamusWaldron/cubealg/internal/analysis"
	"github.com/SeamusWaldron/cubealg/internal/cancellation"
	"github.com/SeamusWaldron/cubealg/internal/catalogue"
)

var expandCmd = &cobra.Command{
	Use:   "expand <algorithm-or-case-id>",
	Short: "Expand a catalogue algorithm into its effective moves",
	Long: `Resolve every reference of an algorithm, fold cancelling moves at step
boundaries and print the annotated and effective sequences.

A case ID expands the primary algorithm of that case.

Examples:
  cubealg expand oll-45
  cubealg expand pll-t --json`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

var expandJSON bool

func init() {
	rootCmd.AddCommand(expandCmd)
	expandCmd.Flags().BoolVar(&expandJSON, "json", false, "Output as JSON")
}

type expandOutput struct {
	AlgorithmID   string                      `json:"algorithm_id"`
	Definition    string                      `json:"definition"`
	Effective     string                      `json:"effective"`
	Simplified    string                      `json:"simplified,omitempty"`
	Metrics       analysis.Metrics            `json:"metrics"`
	Cancelled     int                         `json:"cancelled"`
	MovesByStep   []cancellation.StepMoves    `json:"moves_by_step"`
	MovesWithMeta []cancellation.MoveWithMeta `json:"moves_with_meta"`
	Triggers      []analysis.TriggerMatch     `json:"triggers,omitempty"`
}

// resolveAlgorithm finds an algorithm by ID, falling back to the primary
// algorithm of a case with that ID.
func resolveAlgorithm(cat *catalogue.Static, id string) (algorithm.Algorithm, error) {
	if a, ok := cat.Algorithm(id); ok {
		return a, nil
	}
	if algs := cat.AlgorithmsForCase(id); len(algs) > 0 {
		log.WithField("case", id).Debugf("using primary algorithm %s", algs[0].ID)
		return algs[0], nil
	}
	return algorithm.Algorithm{}, fmt.Errorf("%w: %q", algorithm.ErrUnknownAlgorithm, id)
}

func runExpand(cmd *cobra.Command, args []string) error {
	cat, source, err := loadCatalogue()
	if err != nil {
		return err
	}
	log.WithField("source", source).Debug("catalogue resolved")

	alg, err := resolveAlgorithm(cat, args[0])
	if err != nil {
		return err
	}

	exp := newExpander(cat)
	x, err := exp.Expand(alg)
	if err != nil {
		return fmt.Errorf("failed to expand %s: %w", alg.ID, err)
	}

	triggers := analysis.CatalogueTriggers(cat.Algorithms(), exp)
	out := expandOutput{
		AlgorithmID:   alg.ID,
		Definition:    alg.String(),
		Effective:     x.Notation(),
		Simplified:    alg.Simplified,
		Metrics:       analysis.Measure(x.Moves),
		Cancelled:     cancellation.CancelledCount(x.MovesWithMeta),
		MovesByStep:   x.MovesByStep,
		MovesWithMeta: x.MovesWithMeta,
		Triggers:      analysis.DetectTriggers(x.Moves, triggers).Matches,
	}

	if expandJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(titleStyle.Render(alg.ID))
	fmt.Println(statusStyle.Render("  " + out.Definition))
	fmt.Println()

	fmt.Println(titleStyle.Render("Steps"))
	fmt.Print(renderAnnotated(x.MovesWithMeta, -1))
	fmt.Println()

	fmt.Println(titleStyle.Render("Effective"))
	fmt.Println("  " + moveStyle.Render(out.Effective))
	fmt.Println(statusStyle.Render(fmt.Sprintf("  HTM %d  QTM %d  STM %d  ETM %d  (%d cancelled)",
		out.Metrics.HTM, out.Metrics.QTM, out.Metrics.STM, out.Metrics.ETM, out.Cancelled)))

	if alg.Simplified != "" && alg.Simplified != out.Effective {
		fmt.Println(warnStyle.Render("  stored simplified form differs: " + alg.Simplified))
	}

	if len(out.Triggers) > 0 {
		fmt.Println()
		fmt.Println(titleStyle.Render("Triggers"))
		for _, m := range out.Triggers {
			fmt.Printf("  %-12s moves %d-%d\n", m.TriggerName, m.StartIndex+1, m.EndIndex+1)
		}
	}

	return nil
}
