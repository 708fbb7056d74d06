package skelgen

// Options control a single scaffolding run.
type Options struct {
	DryRun bool
}

// Summary reports what one run did (or, under DryRun, would do).
type Summary struct {
	Dirs      []string // directories created
	Created   []string // stub files created
	Skipped   []string // stub paths that already existed and were left alone
	Artifacts []string // root artifacts written
	Message   string
}

func (s *Summary) empty() bool {
	return len(s.Dirs) == 0 && len(s.Created) == 0 &&
		len(s.Skipped) == 0 && len(s.Artifacts) == 0
}
