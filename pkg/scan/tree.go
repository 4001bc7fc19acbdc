// File: pkg/scan/tree.go
package scan

import (
	"os"
	"path"
	"path/filepath"
	"sort"
)

// Tree connector and prefix glyphs. A non-final sibling gets connectorMiddle
// and extends the prefix for its children with prefixContinue; the final
// sibling gets connectorLast and prefixBlank.
const (
	connectorMiddle = "├── "
	connectorLast   = "└── "
	prefixContinue  = "│   "
	prefixBlank     = "    "
)

// BuildTree renders the filtered directory tree rooted at directory as an
// ordered list of display lines, depth-first and pre-order. Entries are
// sorted lexicographically by name (byte order) and filtered through the
// policy. A directory that cannot be read contributes no lines; the entry
// itself still appears in its parent's listing. Symlinked directories are
// never descended into.
func BuildTree(directory string, policy Policy) []string {
	return buildTree(directory, "", "", policy, 0)
}

func buildTree(directory, relDir, prefix string, policy Policy, depth int) []string {
	if depth > maxTreeDepth {
		return nil
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil // unreadable subtree fails softly
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	type treeEntry struct {
		name  string
		isDir bool
	}
	var filtered []treeEntry
	for _, entry := range entries {
		name := entry.Name()
		relPath := path.Join(relDir, name)
		// IsDir is false for symlinks, so a symlinked directory is
		// treated as a leaf and never followed.
		if entry.IsDir() {
			if policy.IncludeDir(name, relPath) {
				filtered = append(filtered, treeEntry{name: name, isDir: true})
			}
		} else if policy.IncludeFile(name, relPath) {
			filtered = append(filtered, treeEntry{name: name})
		}
	}

	var lines []string
	for i, entry := range filtered {
		last := i == len(filtered)-1
		connector := connectorMiddle
		extension := prefixContinue
		if last {
			connector = connectorLast
			extension = prefixBlank
		}
		lines = append(lines, prefix+connector+entry.name)
		if entry.isDir {
			childDir := filepath.Join(directory, entry.name)
			childRel := path.Join(relDir, entry.name)
			lines = append(lines, buildTree(childDir, childRel, prefix+extension, policy, depth+1)...)
		}
	}
	return lines
}
