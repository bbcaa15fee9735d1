package analysis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubealg/internal/algorithm"
	"github.com/SeamusWaldron/cubealg/internal/catalogue"
	"github.com/SeamusWaldron/cubealg/internal/cube"
	"github.com/SeamusWaldron/cubealg/internal/notation"
	"github.com/SeamusWaldron/cubealg/pkg/types"
)

// Severity ranks lint issues.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Issue kinds.
const (
	IssueExpand     = "expand"
	IssueNotation   = "notation"
	IssueSimplified = "simplified"
	IssueRedundant  = "redundant"
	IssueTrigger    = "trigger"
	IssueEmptyCase  = "empty-case"
	IssueLastLayer  = "last-layer"
	IssueAlternate  = "alternate"
)

// Issue is one lint finding about an algorithm or a case.
type Issue struct {
	Severity Severity `json:"severity"`
	Subject  string   `json:"subject"`
	Kind     string   `json:"kind"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s [%s]: %s", i.Severity, i.Subject, i.Kind, i.Message)
}

// LintReport collects the issues found in a catalogue.
type LintReport struct {
	Algorithms int     `json:"algorithms"`
	Cases      int     `json:"cases"`
	Issues     []Issue `json:"issues"`
}

// Count returns how many issues have severity s.
func (r *LintReport) Count(s Severity) int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == s {
			n++
		}
	}
	return n
}

// OK reports whether the catalogue has no errors.
func (r *LintReport) OK() bool {
	return r.Count(SeverityError) == 0
}

// For returns the issues about subject.
func (r *LintReport) For(subject string) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Subject == subject {
			out = append(out, i)
		}
	}
	return out
}

func (r *LintReport) add(sev Severity, subject, kind, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		Severity: sev,
		Subject:  subject,
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Lint checks every algorithm and case of cat.
//
// Algorithms must expand, their simplified string must reach the same state
// as the effective moves, and the effective moves should hold no adjacent
// pair that could still be merged. Literal steps that spell out a trigger
// are noted. Cases should list at least one algorithm, their problem state
// should only disturb the last layer, and alternate algorithms should solve
// the primary's problem state up to a final U turn.
func Lint(cat *catalogue.Static, exp *algorithm.Expander) *LintReport {
	algs := cat.Algorithms()
	cases := cat.Cases()
	report := &LintReport{Algorithms: len(algs), Cases: len(cases)}

	triggers := CatalogueTriggers(algs, exp)
	expanded := make(map[string][]types.Move, len(algs))

	for _, a := range algs {
		x, err := exp.Expand(a)
		if err != nil {
			report.add(SeverityError, a.ID, IssueExpand, "%v", err)
			continue
		}
		expanded[a.ID] = x.Moves

		lintSteps(report, a, triggers)
		lintSimplified(report, a, x)

		if rep := AnalyzeRepetitions(x.Moves); rep.Redundant() {
			var pairs []string
			for _, c := range rep.ImmediateCancellations {
				pairs = append(pairs, fmt.Sprintf("%s %s cancels", c.Move1, c.Move2))
			}
			for _, m := range rep.MergeOpportunities {
				pairs = append(pairs, fmt.Sprintf("%s %s is %s", m.Move1, m.Move2, m.MergedMove))
			}
			report.add(SeverityWarning, a.ID, IssueRedundant, "%s", strings.Join(pairs, "; "))
		}
	}

	for _, c := range cases {
		lintCase(report, c, expanded)
	}

	return report
}

func lintSteps(report *LintReport, a algorithm.Algorithm, triggers []Trigger) {
	for i, step := range a.Steps {
		if step.Kind != algorithm.StepMoves {
			continue
		}

		moves, err := notation.ParseChecked(step.Moves)
		if errors.Is(err, notation.ErrNoMoves) {
			report.add(SeverityWarning, a.ID, IssueNotation, "step %d %q contains no moves", i, step.Moves)
			continue
		}

		var others []Trigger
		for _, t := range triggers {
			if t.Name != a.ID {
				others = append(others, t)
			}
		}
		for _, m := range DetectTriggers(moves, others).Matches {
			report.add(SeverityInfo, a.ID, IssueTrigger, "step %d spells out [%s] at move %d", i, m.TriggerName, m.StartIndex)
		}
	}
}

func lintSimplified(report *LintReport, a algorithm.Algorithm, x *algorithm.Expansion) {
	if a.Simplified == "" {
		return
	}

	simplified := notation.Parse(a.Simplified)
	want := cube.Solved().ApplyMoves(x.Moves)
	if !cube.Solved().ApplyMoves(simplified).Equal(want) {
		report.add(SeverityError, a.ID, IssueSimplified, "%q does not reach the state of %q", a.Simplified, x.Notation())
		return
	}
	if got := notation.Format(simplified); got != x.Notation() {
		report.add(SeverityInfo, a.ID, IssueSimplified, "%q is equivalent to the expansion %q", got, x.Notation())
	}
}

var aufs = [][]types.Move{
	nil,
	{{Base: types.BaseU, Turn: types.TurnCW}},
	{{Base: types.BaseU, Turn: types.Turn180}},
	{{Base: types.BaseU, Turn: types.TurnCCW}},
}

func lintCase(report *LintReport, c catalogue.Case, expanded map[string][]types.Move) {
	if len(c.AlgorithmIDs) == 0 {
		report.add(SeverityWarning, c.ID, IssueEmptyCase, "no algorithms")
		return
	}

	primary, ok := expanded[c.AlgorithmIDs[0]]
	if !ok {
		// Expansion failure already reported.
		return
	}

	problem := cube.Solved().ApplyMoves(notation.InvertMoves(primary))
	if !problem.IsF2LSolved() {
		report.add(SeverityWarning, c.ID, IssueLastLayer, "problem state disturbs the first two layers")
	}

	for _, id := range c.AlgorithmIDs[1:] {
		alt, ok := expanded[id]
		if !ok {
			continue
		}
		after := problem.ApplyMoves(alt)
		solved := false
		for _, auf := range aufs {
			if after.ApplyMoves(auf).IsSolved() {
				solved = true
				break
			}
		}
		if !solved {
			report.add(SeverityWarning, c.ID, IssueAlternate, "%s does not solve the case of %s", id, c.AlgorithmIDs[0])
		}
	}
}
