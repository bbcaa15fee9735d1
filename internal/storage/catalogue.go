package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubealg/internal/algorithm"
	"github.com/SeamusWaldron/cubealg/internal/catalogue"
	"github.com/SeamusWaldron/cubealg/internal/notation"
)

// ErrNoCatalogue is returned when nothing has been imported yet.
var ErrNoCatalogue = errors.New("storage: no catalogue imported")

// ImportRecord describes one imported catalogue.
type ImportRecord struct {
	ImportID       string
	Source         string
	ImportedAt     time.Time
	AlgorithmCount int
	CaseCount      int
}

// CatalogueRepository stores catalogues as import batches. The most recent
// import is the active catalogue.
type CatalogueRepository struct {
	db *DB
}

// NewCatalogueRepository creates a new catalogue repository.
func NewCatalogueRepository(db *DB) *CatalogueRepository {
	return &CatalogueRepository{db: db}
}

// Import stores cat as a new batch and returns its ID. Literal moves are
// stored in canonical notation.
func (r *CatalogueRepository) Import(cat *catalogue.Static, source string) (string, error) {
	id := uuid.New().String()
	importedAt := time.Now().UTC()
	nAlgs, nCases := cat.Len()

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO imports (import_id, source, imported_at, algorithm_count, case_count)
			VALUES (?, ?, ?, ?, ?)
		`, id, source, importedAt.Format(time.RFC3339), nAlgs, nCases)
		if err != nil {
			return fmt.Errorf("failed to create import: %w", err)
		}

		for pos, a := range cat.Algorithms() {
			if err := insertAlgorithm(tx, id, pos, a); err != nil {
				return err
			}
		}

		for pos, c := range cat.Cases() {
			if err := insertCase(tx, id, pos, c); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

func insertAlgorithm(tx *sql.Tx, importID string, pos int, a algorithm.Algorithm) error {
	var simplified *string
	if a.Simplified != "" {
		simplified = &a.Simplified
	}

	_, err := tx.Exec(`
		INSERT INTO algorithms (import_id, algorithm_id, position, simplified)
		VALUES (?, ?, ?, ?)
	`, importID, a.ID, pos, simplified)
	if err != nil {
		return fmt.Errorf("failed to store algorithm %q: %w", a.ID, err)
	}

	for i, s := range a.Steps {
		var moves, ref *string
		switch s.Kind {
		case algorithm.StepMoves:
			canonical := notation.Format(notation.Parse(s.Moves))
			moves = &canonical
		case algorithm.StepRef:
			ref = &s.Ref
		}

		_, err := tx.Exec(`
			INSERT INTO algorithm_steps (import_id, algorithm_id, step_index, kind, moves, ref, invert, repeat_count)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, importID, a.ID, i, s.Kind.String(), moves, ref, s.Invert, s.Repetitions())
		if err != nil {
			return fmt.Errorf("failed to store step %d of %q: %w", i, a.ID, err)
		}
	}

	return nil
}

func insertCase(tx *sql.Tx, importID string, pos int, c catalogue.Case) error {
	_, err := tx.Exec(`
		INSERT INTO cases (import_id, case_id, position, name, case_group)
		VALUES (?, ?, ?, ?, ?)
	`, importID, c.ID, pos, c.Name, c.Group)
	if err != nil {
		return fmt.Errorf("failed to store case %q: %w", c.ID, err)
	}

	for i, algID := range c.AlgorithmIDs {
		_, err := tx.Exec(`
			INSERT INTO case_algorithms (import_id, case_id, ordinal, algorithm_id)
			VALUES (?, ?, ?, ?)
		`, importID, c.ID, i, algID)
		if err != nil {
			return fmt.Errorf("failed to link case %q: %w", c.ID, err)
		}
	}

	return nil
}

// Latest returns the active import, or nil if there is none.
func (r *CatalogueRepository) Latest() (*ImportRecord, error) {
	imports, err := r.Imports(1)
	if err != nil {
		return nil, err
	}
	if len(imports) == 0 {
		return nil, nil
	}
	return &imports[0], nil
}

// Imports lists imports, newest first. A limit of zero or less lists all.
func (r *CatalogueRepository) Imports(limit int) ([]ImportRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.Query(`
		SELECT import_id, source, imported_at, algorithm_count, case_count
		FROM imports
		ORDER BY imported_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list imports: %w", err)
	}
	defer rows.Close()

	var imports []ImportRecord
	for rows.Next() {
		var rec ImportRecord
		var importedAtStr string
		if err := rows.Scan(&rec.ImportID, &rec.Source, &importedAtStr, &rec.AlgorithmCount, &rec.CaseCount); err != nil {
			return nil, fmt.Errorf("failed to scan import: %w", err)
		}
		rec.ImportedAt, _ = time.Parse(time.RFC3339, importedAtStr)
		imports = append(imports, rec)
	}

	return imports, rows.Err()
}

// Count returns the algorithm and case counts of the active import.
func (r *CatalogueRepository) Count() (algorithms, cases int, err error) {
	rec, err := r.Latest()
	if err != nil {
		return 0, 0, err
	}
	if rec == nil {
		return 0, 0, nil
	}
	return rec.AlgorithmCount, rec.CaseCount, nil
}

// Load reads the active catalogue.
func (r *CatalogueRepository) Load() (*catalogue.Static, error) {
	rec, err := r.Latest()
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNoCatalogue
	}
	return r.LoadImport(rec.ImportID)
}

// LoadImport reads the catalogue stored under importID.
func (r *CatalogueRepository) LoadImport(importID string) (*catalogue.Static, error) {
	var f catalogue.File

	// The pool holds a single connection, so each result set is drained
	// before the next query.
	algs, err := r.loadAlgorithms(importID)
	if err != nil {
		return nil, err
	}
	if len(algs) == 0 {
		var n int
		if err := r.db.QueryRow("SELECT COUNT(*) FROM imports WHERE import_id = ?", importID).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to check import: %w", err)
		}
		if n == 0 {
			return nil, fmt.Errorf("%w: import %q not found", ErrNoCatalogue, importID)
		}
	}

	steps, err := r.loadSteps(importID)
	if err != nil {
		return nil, err
	}
	for i := range algs {
		algs[i].Steps = steps[algs[i].ID]
	}
	f.Algorithms = algs

	cases, err := r.loadCases(importID)
	if err != nil {
		return nil, err
	}
	links, err := r.loadCaseLinks(importID)
	if err != nil {
		return nil, err
	}
	for i := range cases {
		cases[i].Algorithms = links[cases[i].ID]
	}
	f.Cases = cases

	return catalogue.FromFile(f)
}

func (r *CatalogueRepository) loadAlgorithms(importID string) ([]catalogue.AlgorithmEntry, error) {
	rows, err := r.db.Query(`
		SELECT algorithm_id, simplified
		FROM algorithms
		WHERE import_id = ?
		ORDER BY position
	`, importID)
	if err != nil {
		return nil, fmt.Errorf("failed to get algorithms: %w", err)
	}
	defer rows.Close()

	var algs []catalogue.AlgorithmEntry
	for rows.Next() {
		var a catalogue.AlgorithmEntry
		var simplified sql.NullString
		if err := rows.Scan(&a.ID, &simplified); err != nil {
			return nil, fmt.Errorf("failed to scan algorithm: %w", err)
		}
		a.Simplified = simplified.String
		algs = append(algs, a)
	}

	return algs, rows.Err()
}

func (r *CatalogueRepository) loadSteps(importID string) (map[string][]catalogue.StepEntry, error) {
	rows, err := r.db.Query(`
		SELECT algorithm_id, kind, moves, ref, invert, repeat_count
		FROM algorithm_steps
		WHERE import_id = ?
		ORDER BY algorithm_id, step_index
	`, importID)
	if err != nil {
		return nil, fmt.Errorf("failed to get steps: %w", err)
	}
	defer rows.Close()

	steps := make(map[string][]catalogue.StepEntry)
	for rows.Next() {
		var algID, kind string
		var moves, ref sql.NullString
		var invert bool
		var repeat int
		if err := rows.Scan(&algID, &kind, &moves, &ref, &invert, &repeat); err != nil {
			return nil, fmt.Errorf("failed to scan step: %w", err)
		}

		var e catalogue.StepEntry
		switch kind {
		case "moves":
			if err := checkNotation(moves.String); err != nil {
				return nil, fmt.Errorf("algorithm %q: %w", algID, err)
			}
			e.Moves = moves.String
		case "ref":
			e.Ref = ref.String
			e.Invert = invert
			if repeat > 1 {
				e.Repeat = repeat
			}
		default:
			return nil, fmt.Errorf("algorithm %q: unknown step kind %q", algID, kind)
		}
		steps[algID] = append(steps[algID], e)
	}

	return steps, rows.Err()
}

// checkNotation verifies that stored moves are canonical tokens.
func checkNotation(text string) error {
	for _, tok := range strings.Fields(text) {
		if _, ok := notation.ParseMove(tok); !ok {
			return fmt.Errorf("corrupt stored move %q", tok)
		}
	}
	return nil
}

func (r *CatalogueRepository) loadCases(importID string) ([]catalogue.CaseEntry, error) {
	rows, err := r.db.Query(`
		SELECT case_id, name, case_group
		FROM cases
		WHERE import_id = ?
		ORDER BY position
	`, importID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cases: %w", err)
	}
	defer rows.Close()

	var cases []catalogue.CaseEntry
	for rows.Next() {
		var c catalogue.CaseEntry
		var name, group sql.NullString
		if err := rows.Scan(&c.ID, &name, &group); err != nil {
			return nil, fmt.Errorf("failed to scan case: %w", err)
		}
		c.Name, c.Group = name.String, group.String
		cases = append(cases, c)
	}

	return cases, rows.Err()
}

func (r *CatalogueRepository) loadCaseLinks(importID string) (map[string][]string, error) {
	rows, err := r.db.Query(`
		SELECT case_id, algorithm_id
		FROM case_algorithms
		WHERE import_id = ?
		ORDER BY case_id, ordinal
	`, importID)
	if err != nil {
		return nil, fmt.Errorf("failed to get case algorithms: %w", err)
	}
	defer rows.Close()

	links := make(map[string][]string)
	for rows.Next() {
		var caseID, algID string
		if err := rows.Scan(&caseID, &algID); err != nil {
			return nil, fmt.Errorf("failed to scan case algorithm: %w", err)
		}
		links[caseID] = append(links[caseID], algID)
	}

	return links, rows.Err()
}

// Delete removes an import and everything stored under it.
func (r *CatalogueRepository) Delete(importID string) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		// Steps and case links reference their parents, not the import.
		for _, q := range []string{
			"DELETE FROM algorithm_steps WHERE import_id = ?",
			"DELETE FROM case_algorithms WHERE import_id = ?",
			"DELETE FROM algorithms WHERE import_id = ?",
			"DELETE FROM cases WHERE import_id = ?",
			"DELETE FROM imports WHERE import_id = ?",
		} {
			if _, err := tx.Exec(q, importID); err != nil {
				return fmt.Errorf("failed to delete import: %w", err)
			}
		}
		return nil
	})
}
