package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubealg/internal/algorithm"
	"github.com/SeamusWaldron/cubealg/internal/cancellation"
	"github.com/SeamusWaldron/cubealg/internal/cube"
	"github.com/SeamusWaldron/cubealg/internal/notation"
)

var stepCmd = &cobra.Command{
	Use:   "step <algorithm-or-case-id>",
	Short: "Step through an algorithm move by move",
	Long: `Open an interactive viewer that starts from the state the algorithm solves
and applies one effective move per key press.

Keyboard shortcuts:
  →/l/space  - Next move
  ←/h        - Previous move
  g/G        - Jump to start/end
  p          - Toggle plain stickers
  q/Esc      - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runStep,
}

func init() {
	rootCmd.AddCommand(stepCmd)
}

func runStep(cmd *cobra.Command, args []string) error {
	cat, _, err := loadCatalogue()
	if err != nil {
		return err
	}
	alg, err := resolveAlgorithm(cat, args[0])
	if err != nil {
		return err
	}
	x, err := newExpander(cat).Expand(alg)
	if err != nil {
		return fmt.Errorf("failed to expand %s: %w", alg.ID, err)
	}

	p := tea.NewProgram(newStepModel(alg, x), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer error: %w", err)
	}
	return nil
}

// stepModel walks the live entries of an annotated sequence.
type stepModel struct {
	alg   algorithm.Algorithm
	moves []cancellation.MoveWithMeta
	// live holds the indices into moves of the entries that are applied.
	live []int
	// states[i] is the cube after the first i live moves.
	states []cube.Cube
	pos    int
	plain  bool
}

func newStepModel(alg algorithm.Algorithm, x *algorithm.Expansion) *stepModel {
	m := &stepModel{alg: alg, moves: x.MovesWithMeta}
	for i, mm := range x.MovesWithMeta {
		if !mm.Cancelled {
			m.live = append(m.live, i)
		}
	}

	c := cube.Solved().ApplyMoves(notation.InvertMoves(x.Moves))
	m.states = append(m.states, c)
	for _, i := range m.live {
		c = c.Apply(x.MovesWithMeta[i].Move)
		m.states = append(m.states, c)
	}
	return m
}

func (m *stepModel) Init() tea.Cmd {
	return nil
}

func (m *stepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "right", "l", " ", "n":
			if m.pos < len(m.live) {
				m.pos++
			}
		case "left", "h", "b":
			if m.pos > 0 {
				m.pos--
			}
		case "g", "home":
			m.pos = 0
		case "G", "end":
			m.pos = len(m.live)
		case "p":
			m.plain = !m.plain
		}
	}
	return m, nil
}

// current returns the index into moves of the last applied entry, or -1.
func (m *stepModel) current() int {
	if m.pos == 0 {
		return -1
	}
	return m.live[m.pos-1]
}

func (m *stepModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("cubealg step: " + m.alg.ID))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.alg.String()))
	b.WriteString("\n\n")

	b.WriteString(renderAnnotated(m.moves, m.current()))
	b.WriteString("\n")

	state := m.states[m.pos]
	b.WriteString(renderNet(state, m.plain))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Move %d/%d", m.pos, len(m.live)))
	if i := m.current(); i >= 0 {
		mv := m.moves[i].Move
		a := cube.MoveAnimation(mv)
		b.WriteString("  " + moveStyle.Render(mv.Notation()))
		b.WriteString("  " + notation.Describe(mv))
		b.WriteString(statusStyle.Render(fmt.Sprintf("  (%c %+d°)", a.Axis, a.Degrees)))
	}
	b.WriteString("\n")
	if state.IsSolved() {
		b.WriteString(moveStyle.Render("Solved"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("→ next  ← back  g/G start/end  p plain  q quit"))
	b.WriteString("\n")

	return b.String()
}
