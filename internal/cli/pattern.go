package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg/internal/catalogue"
	"github.com/SeamusWaldron/cubealg/internal/notation"
	"github.com/SeamusWaldron/cubealg/internal/pattern"
)

var patternCmd = &cobra.Command{
	Use:   "pattern <case-id>",
	Short: "Show the problem state a case is solved from",
	Long: `Derive the state a catalogue case starts from by applying the inverse of
its primary algorithm to a solved cube, and show it from above.

OLL cases are shown with the top color highlighted and an orientation grid.
PLL cases are shown with the side strips around the top face.

Examples:
  cubealg pattern oll-27
  cubealg pattern pll-t --rotation y
  cubealg pattern pll-ua --all`,
	Args: cobra.ExactArgs(1),
	RunE: runPattern,
}

var (
	patternRotation string
	patternAll      bool
	patternPlain    bool
	patternJSON     bool
)

func init() {
	rootCmd.AddCommand(patternCmd)
	patternCmd.Flags().StringVarP(&patternRotation, "rotation", "r", "", "View rotation: y, y2 or y'")
	patternCmd.Flags().BoolVar(&patternAll, "all", false, "Show all four rotations")
	patternCmd.Flags().BoolVar(&patternPlain, "plain", false, "Print sticker letters without color")
	patternCmd.Flags().BoolVar(&patternJSON, "json", false, "Output as JSON")
}

func runPattern(cmd *cobra.Command, args []string) error {
	caseID := args[0]

	rot, ok := pattern.ParseRotation(patternRotation)
	if !ok {
		return fmt.Errorf("invalid rotation %q (want y, y2 or y')", patternRotation)
	}

	cat, _, err := loadCatalogue()
	if err != nil {
		return err
	}
	deriver := pattern.NewDeriver(cat, newExpander(cat))

	var patterns []*pattern.DerivedPattern
	if patternAll {
		patterns, err = deriver.DeriveAll(caseID)
	} else {
		var p *pattern.DerivedPattern
		p, err = deriver.Derive(caseID, rot)
		if p != nil {
			patterns = append(patterns, p)
		}
	}
	if err != nil {
		return err
	}
	if len(patterns) == 0 {
		fmt.Printf("No algorithms for case %q\n", caseID)
		return nil
	}

	if patternJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(patterns)
	}

	c, _ := cat.Case(caseID)
	for i, p := range patterns {
		if i > 0 {
			fmt.Println()
		}
		printPattern(c, p)
	}
	return nil
}

func printPattern(c catalogue.Case, p *pattern.DerivedPattern) {
	title := p.CaseID
	if c.Name != "" {
		title += " (" + c.Name + ")"
	}
	if p.Rotation != pattern.RotNone {
		title += " " + p.Rotation.String()
	}
	fmt.Println(titleStyle.Render(title))
	fmt.Println(statusStyle.Render("  algorithm " + p.AlgorithmID))
	fmt.Println(statusStyle.Render("  setup     " + notation.Format(p.Setup)))
	fmt.Println()

	if c.Group == catalogue.GroupOLL {
		masked := *p
		masked.State = p.TopMask
		masked.Sides = pattern.SidesOf(p.TopMask)
		fmt.Print(renderTopView(&masked, patternPlain))
		fmt.Println()
		fmt.Print(renderOrientation(p.Orientation))
	} else {
		fmt.Print(renderTopView(p, patternPlain))
	}

	if !p.F2LIntact {
		fmt.Println(warnStyle.Render("first two layers are not intact in this state"))
	}
}
