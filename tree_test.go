package skelgen

import (
	"path"
	"testing"
)

// flattenLayout collects every directory and file path declared by a tree.
func flattenLayout(prefix string, tree Dir, dirs, files *[]string) {
	for _, entry := range tree {
		p := path.Join(prefix, entry.Name)
		*dirs = append(*dirs, p)
		switch child := entry.Child.(type) {
		case Dir:
			flattenLayout(p, child, dirs, files)
		case FileList:
			for _, f := range child {
				*files = append(*files, path.Join(p, f))
			}
		}
	}
}

func TestDefaultLayoutShape(t *testing.T) {
	var dirs, files []string
	flattenLayout("", DefaultLayout(), &dirs, &files)

	wantDirs := map[string]bool{
		"core": true, "core/govinfo": true, "core/analysis": true,
		"core/nlp": true, "core/anomaly": true, "core/evidence": true,
		"ingestion": true, "ingestion/pdf": true, "ingestion/excel": true,
		"ingestion/html": true, "ingestion/glamor": true,
		"proof": true, "proof/exporters": true,
		"tests": true, "deploy": true,
	}
	got := make(map[string]bool, len(dirs))
	for _, d := range dirs {
		got[d] = true
	}
	for d := range wantDirs {
		if !got[d] {
			t.Fatalf("layout is missing directory %s", d)
		}
	}
	for d := range got {
		if !wantDirs[d] {
			t.Fatalf("layout declares unexpected directory %s", d)
		}
	}

	wantFiles := []string{
		"core/govinfo/GovInfoTerminator.ts",
		"core/govinfo/LegalProvision.ts",
		"ingestion/glamor/GlamorClient.ts",
		"proof/exporters/ReportExporter.ts",
		"deploy/deploy.sh",
		"deploy/run_pipeline.sh",
	}
	gotFiles := make(map[string]bool, len(files))
	for _, f := range files {
		gotFiles[f] = true
	}
	for _, f := range wantFiles {
		if !gotFiles[f] {
			t.Fatalf("layout is missing file %s", f)
		}
	}
}

func TestDefaultLayoutReturnsFreshCopies(t *testing.T) {
	a := DefaultLayout()
	a[0].Name = "mutated"
	b := DefaultLayout()
	if b[0].Name != "core" {
		t.Fatalf("layout shares state across calls: %s", b[0].Name)
	}
}
