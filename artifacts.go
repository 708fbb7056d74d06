package skelgen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// PackageManifest models the generated package.json.
type PackageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Main            string            `json:"main"`
	Scripts         ManifestScripts   `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

type ManifestScripts struct {
	Start string `json:"start"`
	Test  string `json:"test"`
}

// CompilerConfig models the generated tsconfig.json.
type CompilerConfig struct {
	CompilerOptions CompilerOptions `json:"compilerOptions"`
	Include         []string        `json:"include"`
}

type CompilerOptions struct {
	Target          string `json:"target"`
	Module          string `json:"module"`
	Strict          bool   `json:"strict"`
	OutDir          string `json:"outDir"`
	EsModuleInterop bool   `json:"esModuleInterop"`
}

func defaultManifest() PackageManifest {
	return PackageManifest{
		Name:    "insider-terminator",
		Version: "0.1.0",
		Main:    "core/govinfo/GovInfoTerminator.ts",
		Scripts: ManifestScripts{
			Start: "ts-node core/govinfo/GovInfoTerminator.ts",
			Test:  "jest",
		},
		Dependencies: map[string]string{},
		DevDependencies: map[string]string{
			"@types/node": "^20.12.7",
			"jest":        "^29.7.0",
			"ts-node":     "^10.9.2",
			"typescript":  "^5.4.5",
		},
	}
}

func defaultCompilerConfig() CompilerConfig {
	return CompilerConfig{
		CompilerOptions: CompilerOptions{
			Target:          "ES2022",
			Module:          "commonjs",
			Strict:          true,
			OutDir:          "dist",
			EsModuleInterop: true,
		},
		Include: []string{"core", "ingestion", "proof"},
	}
}

const readmeContent = `# insider-terminator

Analysis platform for surfacing insider-trading anomalies around legislative
events. Cross-references GovInfo legal provisions with trading disclosures,
flags statistical outliers, and assembles exportable evidence packages.

Generated by skelgen; fill in the stubs under core/, ingestion/ and proof/.
`

const architectureContent = `# Architecture

Top-level layout:

- core/govinfo — GovInfo retrieval and legal-provision modeling
- core/analysis — trade-window analysis against disclosure timelines
- core/nlp — entity extraction and provision classification
- core/anomaly — baseline models and anomaly detection
- core/evidence — evidence assembly for flagged findings
- ingestion/pdf, ingestion/excel, ingestion/html, ingestion/glamor — source
  document ingestion per format and feed
- proof/exporters — report and CSV export of evidence packages
- tests — test suites
- deploy — deploy script and pipeline entry point
`

// RootArtifact is one generated top-level file. Unlike stubs, artifacts are
// canonical output and are rewritten on every run.
type RootArtifact struct {
	RelPath string
	Content []byte
}

// RootArtifacts renders the four fixed artifacts. Rendering is pure; no
// filesystem access happens here.
func RootArtifacts() ([]RootArtifact, error) {
	manifest, err := marshalArtifact(defaultManifest())
	if err != nil {
		return nil, fmt.Errorf("render package.json: %w", err)
	}
	compiler, err := marshalArtifact(defaultCompilerConfig())
	if err != nil {
		return nil, fmt.Errorf("render tsconfig.json: %w", err)
	}
	return []RootArtifact{
		{RelPath: "package.json", Content: manifest},
		{RelPath: "tsconfig.json", Content: compiler},
		{RelPath: "README.md", Content: []byte(readmeContent)},
		{RelPath: filepath.Join("docs", "ARCHITECTURE.md"), Content: []byte(architectureContent)},
	}, nil
}

func marshalArtifact(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// WriteRootArtifacts writes every artifact under base, overwriting whatever
// is already there. Parent directories (docs/) are created on demand.
func WriteRootArtifacts(base string, opts Options, sum *Summary) error {
	artifacts, err := RootArtifacts()
	if err != nil {
		return err
	}

	for _, a := range artifacts {
		path := filepath.Join(base, a.RelPath)

		if opts.DryRun {
			sum.Artifacts = append(sum.Artifacts, path)
			continue
		}

		if _, err := ensureDir(filepath.Dir(path)); err != nil {
			return err
		}
		if err := os.WriteFile(path, a.Content, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		sum.Artifacts = append(sum.Artifacts, path)
	}
	return nil
}
