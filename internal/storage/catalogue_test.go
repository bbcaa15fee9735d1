package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/kr/pretty"

	"github.com/SeamusWaldron/cubealg/internal/catalogue"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.MigrateUp(); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestMigrateUp(t *testing.T) {
	db := openTestDB(t)

	v, err := db.CurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if v != LatestVersion() {
		t.Errorf("version = %d, want %d", v, LatestVersion())
	}

	// A second run has nothing to apply.
	if err := db.MigrateUp(); err != nil {
		t.Errorf("second MigrateUp: %v", err)
	}
	if size, err := db.Size(); err != nil || size == 0 {
		t.Errorf("Size() = %d, %v", size, err)
	}
}

func TestImportAndLoad(t *testing.T) {
	db := openTestDB(t)
	repo := NewCatalogueRepository(db)

	if _, err := repo.Load(); !errors.Is(err, ErrNoCatalogue) {
		t.Fatalf("empty store: got %v, want ErrNoCatalogue", err)
	}
	if a, c, err := repo.Count(); err != nil || a != 0 || c != 0 {
		t.Errorf("empty Count() = %d, %d, %v", a, c, err)
	}

	cat, err := catalogue.Default()
	if err != nil {
		t.Fatal(err)
	}
	id, err := repo.Import(cat, "default")
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("Import returned an empty ID")
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Diff(cat.ToFile(), loaded.ToFile()); len(diff) > 0 {
		t.Errorf("loaded catalogue differs: %v", diff)
	}

	wantAlgs, wantCases := cat.Len()
	a, c, err := repo.Count()
	if err != nil || a != wantAlgs || c != wantCases {
		t.Errorf("Count() = %d, %d, %v; want %d, %d", a, c, err, wantAlgs, wantCases)
	}
}

func TestImportNormalizesMoves(t *testing.T) {
	db := openTestDB(t)
	repo := NewCatalogueRepository(db)

	cat, err := catalogue.ParseYAML([]byte(`
algorithms:
  - id: messy
    steps:
      - moves: "(R U R' U')x2 F²"
`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Import(cat, "inline"); err != nil {
		t.Fatal(err)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	a, ok := loaded.Algorithm("messy")
	if !ok {
		t.Fatal("messy missing")
	}
	if got := a.Steps[0].Moves; got != "R U R' U' x2 F2" {
		t.Errorf("stored moves = %q", got)
	}
}

func TestLatestImportWins(t *testing.T) {
	db := openTestDB(t)
	repo := NewCatalogueRepository(db)

	first, err := catalogue.ParseYAML([]byte("algorithms: [{id: a, steps: [{moves: R}]}]"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := catalogue.ParseYAML([]byte("algorithms: [{id: b, steps: [{moves: U}]}]"))
	if err != nil {
		t.Fatal(err)
	}

	firstID, err := repo.Import(first, "first")
	if err != nil {
		t.Fatal(err)
	}
	secondID, err := repo.Import(second, "second")
	if err != nil {
		t.Fatal(err)
	}

	imports, err := repo.Imports(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(imports) != 2 || imports[0].ImportID != secondID || imports[1].ImportID != firstID {
		t.Fatalf("imports = %# v", pretty.Formatter(imports))
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := loaded.Algorithm("b"); !ok {
		t.Error("latest import should be active")
	}

	old, err := repo.LoadImport(firstID)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := old.Algorithm("a"); !ok {
		t.Error("older import should still load by ID")
	}

	if err := repo.Delete(secondID); err != nil {
		t.Fatal(err)
	}
	latest, err := repo.Latest()
	if err != nil || latest == nil || latest.ImportID != firstID {
		t.Errorf("after delete Latest() = %+v, %v", latest, err)
	}
	if _, err := repo.LoadImport(secondID); !errors.Is(err, ErrNoCatalogue) {
		t.Errorf("deleted import: got %v, want ErrNoCatalogue", err)
	}
}

func TestCheckNotation(t *testing.T) {
	if err := checkNotation("R U2 x' M"); err != nil {
		t.Error(err)
	}
	if err := checkNotation("R Q"); err == nil {
		t.Error("Q is not a move")
	}
}
