package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg/internal/analysis"
	"github.com/SeamusWaldron/cubealg/internal/notation"
)

var parseCmd = &cobra.Command{
	Use:   "parse <notation>...",
	Short: "Parse move notation into canonical form",
	Long: `Parse move notation and print it in canonical form with its turn metrics.

Unknown tokens are skipped. Use --strict to fail when nothing parses.

Examples:
  cubealg parse "R U R' U'"
  cubealg parse r U2 "M'" --describe`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

var (
	parseDescribe bool
	parseStrict   bool
	parseJSON     bool
)

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVarP(&parseDescribe, "describe", "d", false, "Describe each move in words")
	parseCmd.Flags().BoolVar(&parseStrict, "strict", false, "Fail when no moves are found")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Output as JSON")
}

type parseOutput struct {
	Input     string           `json:"input"`
	Canonical string           `json:"canonical"`
	Inverse   string           `json:"inverse"`
	Moves     []string         `json:"moves"`
	Metrics   analysis.Metrics `json:"metrics"`
}

func runParse(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")

	moves, err := notation.ParseChecked(input)
	if err != nil {
		if parseStrict {
			return err
		}
		log.WithField("input", input).Warn("no moves found")
	}
	log.WithField("moves", len(moves)).Debug("parsed")

	out := parseOutput{
		Input:     input,
		Canonical: notation.Format(moves),
		Inverse:   notation.Format(notation.InvertMoves(moves)),
		Moves:     make([]string, len(moves)),
		Metrics:   analysis.Measure(moves),
	}
	for i, m := range moves {
		out.Moves[i] = m.Notation()
	}

	if parseJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(titleStyle.Render("Canonical"))
	if out.Canonical == "" {
		fmt.Println(statusStyle.Render("  (no moves)"))
	} else {
		fmt.Println("  " + moveStyle.Render(out.Canonical))
	}
	fmt.Printf("  Inverse: %s\n", out.Inverse)
	fmt.Println(statusStyle.Render(fmt.Sprintf("  %d moves  HTM %d  QTM %d  STM %d  ETM %d",
		len(moves), out.Metrics.HTM, out.Metrics.QTM, out.Metrics.STM, out.Metrics.ETM)))

	if parseDescribe && len(moves) > 0 {
		fmt.Println()
		fmt.Println(titleStyle.Render("Moves"))
		for _, m := range moves {
			fmt.Printf("  %-4s %s\n", m.Notation(), notation.Describe(m))
		}
	}

	return nil
}
