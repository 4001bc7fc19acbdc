// File: pkg/scan/collect.go
package scan

import (
	"os"
	"path"
	"path/filepath"
	"sort"
)

// CollectFiles walks the directory tree rooted at root, applying the same
// policy, ordering, and pruning as BuildTree, and reads every surviving
// file. It returns the collected entries in traversal order together with
// the files it visited but skipped. A failed read or non-text content skips
// that file only; an unreadable directory silently contributes nothing.
// Recorded paths are root-relative with forward slashes.
func CollectFiles(root string, policy Policy) ([]FileEntry, []SkippedFile) {
	var entries []FileEntry
	var skipped []SkippedFile
	collectFiles(root, "", policy, 0, &entries, &skipped)
	return entries, skipped
}

func collectFiles(directory, relDir string, policy Policy, depth int, entries *[]FileEntry, skipped *[]SkippedFile) {
	if depth > maxTreeDepth {
		return
	}

	dirEntries, err := os.ReadDir(directory)
	if err != nil {
		return
	}

	sort.Slice(dirEntries, func(i, j int) bool {
		return dirEntries[i].Name() < dirEntries[j].Name()
	})

	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		relPath := path.Join(relDir, name)
		fullPath := filepath.Join(directory, name)

		if dirEntry.IsDir() {
			// Pruned directories are never descended into, so their
			// contents are neither read nor reported.
			if policy.IncludeDir(name, relPath) {
				collectFiles(fullPath, relPath, policy, depth+1, entries, skipped)
			}
			continue
		}

		if !policy.IncludeFile(name, relPath) {
			continue
		}

		content, readErr := os.ReadFile(fullPath)
		if readErr != nil {
			*skipped = append(*skipped, SkippedFile{Path: relPath, Reason: SkipUnreadable, Err: readErr})
			continue
		}
		if isBinaryContent(content) {
			*skipped = append(*skipped, SkippedFile{Path: relPath, Reason: SkipBinary})
			continue
		}
		*entries = append(*entries, FileEntry{Path: relPath, Content: string(content)})
	}
}
