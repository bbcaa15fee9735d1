package catalogue

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubealg/internal/algorithm"
)

//go:embed default.yaml
var defaultYAML []byte

// File is the YAML layout of a catalogue.
type File struct {
	Algorithms []AlgorithmEntry `yaml:"algorithms"`
	Cases      []CaseEntry      `yaml:"cases"`
}

// AlgorithmEntry is one algorithm in a catalogue file.
type AlgorithmEntry struct {
	ID         string      `yaml:"id"`
	Simplified string      `yaml:"simplified,omitempty"`
	Steps      []StepEntry `yaml:"steps"`
}

// StepEntry is a step: either moves, or ref with optional invert/repeat.
type StepEntry struct {
	Moves  string `yaml:"moves,omitempty"`
	Ref    string `yaml:"ref,omitempty"`
	Invert bool   `yaml:"invert,omitempty"`
	Repeat int    `yaml:"repeat,omitempty"`
}

// CaseEntry is one case in a catalogue file.
type CaseEntry struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name,omitempty"`
	Group      string   `yaml:"group,omitempty"`
	Algorithms []string `yaml:"algorithms"`
}

func (e StepEntry) step() (algorithm.Step, error) {
	switch {
	case e.Ref != "" && e.Moves != "":
		return algorithm.Step{}, fmt.Errorf("%w: both moves and ref set", ErrInvalidStep)
	case e.Ref != "":
		return algorithm.RefStep(e.Ref, e.Invert, e.Repeat), nil
	case e.Invert || e.Repeat != 0:
		return algorithm.Step{}, fmt.Errorf("%w: invert/repeat on a moves step", ErrInvalidStep)
	default:
		// An empty moves step is allowed and expands to nothing.
		return algorithm.MovesStep(e.Moves), nil
	}
}

func entryFromStep(s algorithm.Step) StepEntry {
	if s.Kind == algorithm.StepRef {
		e := StepEntry{Ref: s.Ref, Invert: s.Invert}
		if s.Repeat > 1 {
			e.Repeat = s.Repeat
		}
		return e
	}
	return StepEntry{Moves: s.Moves}
}

// ParseYAML builds a catalogue from YAML data.
func ParseYAML(data []byte) (*Static, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalogue: %w", err)
	}
	return FromFile(f)
}

// FromFile builds a catalogue from a decoded File.
func FromFile(f File) (*Static, error) {
	s := New()

	for _, ae := range f.Algorithms {
		a := algorithm.Algorithm{ID: ae.ID, Simplified: ae.Simplified}
		for i, se := range ae.Steps {
			step, err := se.step()
			if err != nil {
				return nil, fmt.Errorf("algorithm %q step %d: %w", ae.ID, i, err)
			}
			a.Steps = append(a.Steps, step)
		}
		if err := s.AddAlgorithm(a); err != nil {
			return nil, err
		}
	}

	for _, ce := range f.Cases {
		err := s.AddCase(Case{
			ID:           ce.ID,
			Name:         ce.Name,
			Group:        ce.Group,
			AlgorithmIDs: ce.Algorithms,
		})
		if err != nil {
			return nil, err
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ToFile converts the catalogue back to its file layout.
func (s *Static) ToFile() File {
	var f File
	for _, a := range s.Algorithms() {
		ae := AlgorithmEntry{ID: a.ID, Simplified: a.Simplified}
		for _, step := range a.Steps {
			ae.Steps = append(ae.Steps, entryFromStep(step))
		}
		f.Algorithms = append(f.Algorithms, ae)
	}
	for _, c := range s.Cases() {
		f.Cases = append(f.Cases, CaseEntry{
			ID:         c.ID,
			Name:       c.Name,
			Group:      c.Group,
			Algorithms: c.AlgorithmIDs,
		})
	}
	return f
}

// EncodeYAML encodes the catalogue as YAML in its file layout.
func (s *Static) EncodeYAML() ([]byte, error) {
	data, err := yaml.Marshal(s.ToFile())
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalogue: %w", err)
	}
	return data, nil
}

// LoadYAML reads a catalogue file.
func LoadYAML(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue: %w", err)
	}
	return ParseYAML(data)
}

// Default returns the built-in catalogue.
func Default() (*Static, error) {
	return ParseYAML(defaultYAML)
}
