package skelgen

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// snapshotTree walks base and records every entry: directories map to "",
// files map to their content.
func snapshotTree(t *testing.T, base string) map[string]string {
	t.Helper()
	snap := make(map[string]string)
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if d.IsDir() {
			snap[rel] = ""
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		snap[rel] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot %s: %v", base, err)
	}
	return snap
}

func TestMaterializeCreatesEveryDeclaredPath(t *testing.T) {
	base := t.TempDir()
	var sum Summary
	if err := Materialize(base, DefaultLayout(), Options{}, &sum); err != nil {
		t.Fatalf("materialize: %v", err)
	}

	wantDirs := []string{
		"core/govinfo", "core/analysis", "core/nlp", "core/anomaly", "core/evidence",
		"ingestion/pdf", "ingestion/excel", "ingestion/html", "ingestion/glamor",
		"proof/exporters", "tests", "deploy",
	}
	for _, d := range wantDirs {
		info, err := os.Stat(filepath.Join(base, filepath.FromSlash(d)))
		if err != nil {
			t.Fatalf("expected directory %s: %v", d, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %s to be a directory", d)
		}
	}

	wantFiles := []string{
		"core/govinfo/GovInfoTerminator.ts",
		"core/govinfo/LegalProvision.ts",
		"ingestion/excel/ExcelProcessor.ts",
		"proof/exporters/CsvExporter.ts",
		"deploy/deploy.sh",
		"deploy/run_pipeline.sh",
	}
	for _, f := range wantFiles {
		data, err := os.ReadFile(filepath.Join(base, filepath.FromSlash(f)))
		if err != nil {
			t.Fatalf("expected stub %s: %v", f, err)
		}
		want := string(StubContent(filepath.Base(f)))
		if string(data) != want {
			t.Fatalf("stub %s content = %q, want %q", f, data, want)
		}
	}

	entries, err := os.ReadDir(filepath.Join(base, "tests"))
	if err != nil {
		t.Fatalf("read tests dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected tests/ to be empty, found %d entries", len(entries))
	}
}

func TestMaterializeIsIdempotent(t *testing.T) {
	base := t.TempDir()
	var first Summary
	if err := Materialize(base, DefaultLayout(), Options{}, &first); err != nil {
		t.Fatalf("first run: %v", err)
	}
	before := snapshotTree(t, base)

	var second Summary
	if err := Materialize(base, DefaultLayout(), Options{}, &second); err != nil {
		t.Fatalf("second run: %v", err)
	}
	after := snapshotTree(t, base)

	if len(before) != len(after) {
		t.Fatalf("entry count changed: %d -> %d", len(before), len(after))
	}
	for path, content := range before {
		got, ok := after[path]
		if !ok {
			t.Fatalf("path %s disappeared on second run", path)
		}
		if got != content {
			t.Fatalf("content of %s changed on second run", path)
		}
	}

	if len(second.Dirs) != 0 || len(second.Created) != 0 {
		t.Fatalf("second run reported new work: dirs=%v created=%v", second.Dirs, second.Created)
	}
	if len(second.Skipped) != len(first.Created) {
		t.Fatalf("second run skipped %d files, want %d", len(second.Skipped), len(first.Created))
	}
}

func TestMaterializeNeverOverwritesExistingFiles(t *testing.T) {
	base := t.TempDir()
	custom := "export class GovInfoTerminator {}\n"
	dir := filepath.Join(base, "core", "govinfo")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "GovInfoTerminator.ts")
	if err := os.WriteFile(target, []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}

	var sum Summary
	if err := Materialize(base, DefaultLayout(), Options{}, &sum); err != nil {
		t.Fatalf("materialize: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != custom {
		t.Fatalf("existing file was rewritten: %q", data)
	}

	sibling := filepath.Join(dir, "LegalProvision.ts")
	data, err = os.ReadFile(sibling)
	if err != nil {
		t.Fatalf("expected sibling stub to be created: %v", err)
	}
	if string(data) != string(StubContent("LegalProvision.ts")) {
		t.Fatalf("sibling stub has wrong content: %q", data)
	}

	skipped := false
	for _, p := range sum.Skipped {
		if p == target {
			skipped = true
		}
	}
	if !skipped {
		t.Fatalf("expected %s to be reported as skipped, got %v", target, sum.Skipped)
	}
}

func TestMaterializeAbortsOnPathConflict(t *testing.T) {
	base := t.TempDir()
	tree := Dir{
		{Name: "alpha", Child: FileList{"a.ts"}},
		{Name: "beta", Child: FileList{"b.ts"}},
	}
	// A regular file where a declared directory should go is fatal.
	if err := os.WriteFile(filepath.Join(base, "beta"), []byte("not a dir"), 0644); err != nil {
		t.Fatal(err)
	}

	var sum Summary
	err := Materialize(base, tree, Options{}, &sum)
	if err == nil {
		t.Fatal("expected a fatal error, got nil")
	}

	// No rollback: what was created before the failure stays.
	if _, statErr := os.Stat(filepath.Join(base, "alpha", "a.ts")); statErr != nil {
		t.Fatalf("expected alpha/a.ts to survive the aborted run: %v", statErr)
	}
	data, readErr := os.ReadFile(filepath.Join(base, "beta"))
	if readErr != nil || string(data) != "not a dir" {
		t.Fatalf("conflicting file was altered: %q, %v", data, readErr)
	}
}

func TestMaterializeFatalWhenDirDeclaredOverFile(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "core"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	var sum Summary
	if err := Materialize(base, DefaultLayout(), Options{}, &sum); err == nil {
		t.Fatal("expected error when a declared directory path holds a file")
	}
}

func TestMaterializeDryRunTouchesNothing(t *testing.T) {
	base := t.TempDir()
	var sum Summary
	if err := Materialize(base, DefaultLayout(), Options{DryRun: true}, &sum); err != nil {
		t.Fatalf("dry run: %v", err)
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("dry run wrote to disk: %v", entries)
	}
	if len(sum.Dirs) == 0 || len(sum.Created) == 0 {
		t.Fatalf("dry run reported no pending work: %+v", sum)
	}
}
