package skelgen

import (
	"fmt"
	"path/filepath"
)

// StubContent is the fixed placeholder written into every declared file
// that does not exist yet.
func StubContent(name string) []byte {
	return []byte(fmt.Sprintf("// TODO: implement %s\n", name))
}

// Materialize walks the declared tree under base, creating every missing
// directory and stub file. Existing directories are benign; existing files
// are never rewritten. The first fatal filesystem error aborts the walk and
// whatever was created before it stays on disk.
func Materialize(base string, tree Dir, opts Options, sum *Summary) error {
	for _, entry := range tree {
		childPath := filepath.Join(base, entry.Name)

		if opts.DryRun {
			if !exists(childPath) {
				sum.Dirs = append(sum.Dirs, childPath)
			}
		} else {
			created, err := ensureDir(childPath)
			if err != nil {
				return err
			}
			if created {
				sum.Dirs = append(sum.Dirs, childPath)
			}
		}

		switch child := entry.Child.(type) {
		case FileList:
			if err := materializeFiles(childPath, child, opts, sum); err != nil {
				return err
			}
		case Dir:
			if err := Materialize(childPath, child, opts, sum); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown node type %T at %s", entry.Child, childPath)
		}
	}
	return nil
}

func materializeFiles(dir string, files FileList, opts Options, sum *Summary) error {
	for _, name := range files {
		filePath := filepath.Join(dir, name)

		if opts.DryRun {
			if exists(filePath) {
				sum.Skipped = append(sum.Skipped, filePath)
			} else {
				sum.Created = append(sum.Created, filePath)
			}
			continue
		}

		created, err := createFileIfAbsent(filePath, StubContent(name))
		if err != nil {
			return err
		}
		if created {
			sum.Created = append(sum.Created, filePath)
		} else {
			sum.Skipped = append(sum.Skipped, filePath)
		}
	}
	return nil
}
