package skelgen

import (
	"bufio"
	"fmt"
	"strings"
)

type treeLine struct {
	name  string
	dir   bool
	depth int
}

// ParseLayout turns a tree-style text description into a Dir. Both the
// pseudo-graphic (├──/└──) and ASCII (|--/`--) branch markers are accepted;
// lines without a marker declare top-level directories. A name ending in
// "/" is a directory, as is any name with deeper lines below it.
func ParseLayout(content string) (Dir, error) {
	lines, err := scanTreeLines(content)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("layout is empty")
	}

	tree, next, err := buildEntries(lines, 0, 0)
	if err != nil {
		return nil, err
	}
	if next != len(lines) {
		return nil, fmt.Errorf("line %q: inconsistent nesting", lines[next].name)
	}
	return tree, nil
}

func scanTreeLines(content string) ([]treeLine, error) {
	sc := bufio.NewScanner(strings.NewReader(content))
	sc.Buffer(make([]byte, 0, 1024), 1024*1024)

	var lines []treeLine
	lineNum := 0
	for sc.Scan() {
		lineNum++
		raw := strings.TrimRight(sc.Text(), "\r\n")
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || isTreeSummary(trimmed) {
			continue
		}

		depth, name, ok := parseTreeLine(raw)
		if !ok {
			// No branch marker: a top-level directory name.
			depth, name = 0, trimmed
		}

		isDir := strings.HasSuffix(name, "/")
		name = strings.TrimSuffix(name, "/")
		if err := validateName(name); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		lines = append(lines, treeLine{name: name, dir: isDir, depth: depth})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	// A node with deeper lines below it is a directory even without the
	// trailing slash.
	for i := range lines {
		if !lines[i].dir && i+1 < len(lines) && lines[i+1].depth > lines[i].depth {
			lines[i].dir = true
		}
	}
	return lines, nil
}

// buildEntries assembles the consecutive lines at the given depth into a
// Dir, recursing for subdirectories. Returns the index of the first
// unconsumed line.
func buildEntries(lines []treeLine, i, depth int) (Dir, int, error) {
	var tree Dir
	for i < len(lines) && lines[i].depth == depth {
		n := lines[i]
		if !n.dir {
			return nil, i, fmt.Errorf("file %q must be declared inside a directory", n.name)
		}
		i++

		files := FileList{}
		if i < len(lines) && lines[i].depth > depth {
			if lines[i].depth != depth+1 {
				return nil, i, fmt.Errorf("inconsistent nesting under %q", n.name)
			}

			hasDir, hasFile := false, false
			for j := i; j < len(lines) && lines[j].depth > depth; j++ {
				if lines[j].depth == depth+1 {
					if lines[j].dir {
						hasDir = true
					} else {
						hasFile = true
					}
				}
			}
			if hasDir && hasFile {
				return nil, i, fmt.Errorf("directory %q mixes files and subdirectories", n.name)
			}

			if hasDir {
				sub, next, err := buildEntries(lines, i, depth+1)
				if err != nil {
					return nil, next, err
				}
				tree = append(tree, Entry{Name: n.name, Child: sub})
				i = next
				continue
			}

			for i < len(lines) && lines[i].depth == depth+1 {
				files = append(files, lines[i].name)
				i++
			}
		}
		tree = append(tree, Entry{Name: n.name, Child: files})
	}
	return tree, i, nil
}

// parseTreeLine extracts the depth and the node name from one branch line.
func parseTreeLine(line string) (int, string, bool) {
	markers := []string{"├── ", "└── ", "|-- ", "`-- ", "+-- ",
		"├──", "└──", "|--", "`--", "+--"}
	idx, used := -1, ""
	for _, m := range markers {
		if i := strings.Index(line, m); i != -1 && (idx == -1 || i < idx) {
			idx, used = i, m
		}
	}
	if idx == -1 {
		return 0, "", false
	}

	name := strings.TrimSpace(line[idx+len(used):])
	// Markers at column zero sit directly under a top-level directory.
	return countDepth(line[:idx]) + 1, name, true
}

// countDepth reduces the line prefix to spaces and counts four-column
// indentation groups.
func countDepth(prefix string) int {
	s := prefix
	for _, r := range []string{"│", "└", "├", "─", "|"} {
		s = strings.ReplaceAll(s, r, " ")
	}
	spaces := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			spaces++
		}
	}
	return spaces / 4
}

// isTreeSummary matches the trailing "N directories, M files" line that the
// tree command appends.
func isTreeSummary(line string) bool {
	s := strings.ToLower(line)
	return (strings.Contains(s, "directories") || strings.Contains(s, "directory")) &&
		(strings.Contains(s, "files") || strings.Contains(s, "file"))
}

func validateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("empty name")
	case name == "." || name == "..":
		return fmt.Errorf("invalid name %q", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("name %q must be a single path segment", name)
	}
	return nil
}
