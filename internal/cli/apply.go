package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg/internal/cube"
	"github.com/SeamusWaldron/cubealg/internal/notation"
)

var applyCmd = &cobra.Command{
	Use:   "apply <notation>...",
	Short: "Apply moves to a solved cube and show the result",
	Long: `Apply a move sequence to a solved cube and print the resulting net.

Examples:
  cubealg apply "R U R' U'"
  cubealg apply --inverse "R U R' U R U2 R'"
  cubealg apply --animate "r U M'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

var (
	applyInverse bool
	applyAnimate bool
	applyPlain   bool
)

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVarP(&applyInverse, "inverse", "i", false, "Apply the inverse sequence (the setup for the input)")
	applyCmd.Flags().BoolVarP(&applyAnimate, "animate", "a", false, "Print the animation hint for each move")
	applyCmd.Flags().BoolVar(&applyPlain, "plain", false, "Print sticker letters without color")
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := notation.ParseChecked(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if applyInverse {
		moves = notation.InvertMoves(moves)
	}

	c := cube.Solved().ApplyMoves(moves)

	fmt.Println(titleStyle.Render("Moves: ") + moveStyle.Render(notation.Format(moves)))
	fmt.Println()
	fmt.Print(renderNet(c, applyPlain))
	fmt.Println()

	fmt.Printf("Solved: %s  F2L: %s  Top oriented: %s\n",
		yesNo(c.IsSolved()), yesNo(c.IsF2LSolved()), yesNo(c.IsTopOriented()))

	if applyAnimate {
		fmt.Println()
		fmt.Println(titleStyle.Render("Animation"))
		for _, m := range moves {
			a := cube.MoveAnimation(m)
			scope := fmt.Sprintf("layers %v", a.Layers)
			if a.FullCube {
				scope = "whole cube"
			}
			fmt.Printf("  %-4s axis %c %+4d°  %s\n", m.Notation(), a.Axis, a.Degrees, scope)
		}
	}

	return nil
}

func yesNo(b bool) string {
	if b {
		return moveStyle.Render("yes")
	}
	return statusStyle.Render("no")
}
