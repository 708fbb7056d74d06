package skelgen

import (
	"fmt"
)

// Config carries the per-run settings resolved from the CLI.
type Config struct {
	DryRun     bool
	LayoutPath string // "" uses the compiled-in layout; "-" reads stdin/clipboard
}

// App wires the layout source, the materializer and the artifact writer.
type App struct {
	cfg            *Config
	pathResolver   *PathResolver
	sourceProvider *SourceProvider
}

func NewApp(cfg *Config) (*App, error) {
	pr, err := NewPathResolver()
	if err != nil {
		return nil, err
	}
	return &App{
		cfg:            cfg,
		pathResolver:   pr,
		sourceProvider: NewSourceProvider(),
	}, nil
}

// Base returns the directory being scaffolded.
func (a *App) Base() string { return a.pathResolver.Base() }

// Execute runs one scaffold pass: materialize the tree, then regenerate the
// root artifacts. The first fatal error aborts the run; everything created
// before it stays on disk.
func (a *App) Execute() (Summary, error) {
	tree, err := a.layout()
	if err != nil {
		return Summary{}, err
	}

	base := a.pathResolver.Base()
	opts := Options{DryRun: a.cfg.DryRun}

	var sum Summary
	if err := Materialize(base, tree, opts, &sum); err != nil {
		return sum, err
	}
	if err := WriteRootArtifacts(base, opts, &sum); err != nil {
		return sum, err
	}

	switch {
	case a.cfg.DryRun:
		sum.Message = "Dry run, nothing written"
	case sum.empty():
		sum.Message = "Nothing to do"
	default:
		sum.Message = "Scaffold complete"
	}
	a.relativizeSummaryPaths(&sum)
	return sum, nil
}

// layout picks the tree to materialize: the compiled-in default, or the
// parsed override when --layout was given.
func (a *App) layout() (Dir, error) {
	if a.cfg.LayoutPath == "" {
		return DefaultLayout(), nil
	}

	layoutPath := a.cfg.LayoutPath
	if layoutPath != "-" {
		layoutPath = a.pathResolver.Resolve(layoutPath)
	}
	content, err := a.sourceProvider.GetContent(layoutPath)
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, fmt.Errorf("layout source is empty")
	}

	if block, ok, err := ExtractLayoutBlock([]byte(content)); err != nil {
		return nil, err
	} else if ok {
		content = block
	}

	return ParseLayout(content)
}

func (a *App) relativizeSummaryPaths(s *Summary) {
	relList := func(paths []string) []string {
		var res []string
		for _, p := range paths {
			res = append(res, a.pathResolver.Rel(p))
		}
		return res
	}
	s.Dirs = relList(s.Dirs)
	s.Created = relList(s.Created)
	s.Skipped = relList(s.Skipped)
	s.Artifacts = relList(s.Artifacts)
}
