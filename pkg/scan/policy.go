// File: pkg/scan/policy.go
package scan

import (
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// Policy is the immutable exclusion rule set applied to every filesystem
// entry during a scan. It is constructed once at startup and shared by the
// tree builder and the content collector, so the two outputs always agree on
// which entries exist.
type Policy struct {
	dirs       map[string]struct{} // excluded directory names, exact match
	files      map[string]struct{} // excluded file names, exact match
	extensions map[string]struct{} // excluded extensions, lower-cased with leading dot
	gitignore  *gitignore.GitIgnore
}

// DefaultExcludedDirs are directory names pruned from every scan.
var DefaultExcludedDirs = []string{".git", ".next", "node_modules"}

// DefaultExcludedFiles are file names omitted from every scan. The output
// artifact itself is listed so that a second run over the same tree produces
// byte-identical output.
var DefaultExcludedFiles = []string{
	"package.json",
	"package-lock.json",
	".DS_Store",
	"README.md",
	DefaultOutputFile,
}

// DefaultExcludedExtensions are file extensions omitted from every scan.
// Matching is case-insensitive against the lower-cased extension.
var DefaultExcludedExtensions = []string{
	".png", ".jpg", ".jpeg", ".gif", ".ico",
	".pdf", ".zip", ".tar", ".gz", ".mp3", ".mp4",
	".csv", ".xlsx", ".json", ".enc",
}

// NewPolicy builds a Policy from explicit exclusion sets. Extensions are
// normalized to lower case and are expected to carry their leading dot.
func NewPolicy(dirs, files, extensions []string) Policy {
	policy := Policy{
		dirs:       make(map[string]struct{}, len(dirs)),
		files:      make(map[string]struct{}, len(files)),
		extensions: make(map[string]struct{}, len(extensions)),
	}
	for _, name := range dirs {
		policy.dirs[name] = struct{}{}
	}
	for _, name := range files {
		policy.files[name] = struct{}{}
	}
	for _, extension := range extensions {
		policy.extensions[strings.ToLower(extension)] = struct{}{}
	}
	return policy
}

// DefaultPolicy returns the compiled-in exclusion sets.
func DefaultPolicy() Policy {
	return NewPolicy(DefaultExcludedDirs, DefaultExcludedFiles, DefaultExcludedExtensions)
}

// WithGitignore returns a copy of the policy that additionally excludes any
// path matched by the provided gitignore matcher. A nil matcher leaves the
// policy unchanged.
func (p Policy) WithGitignore(matcher *gitignore.GitIgnore) Policy {
	p.gitignore = matcher
	return p
}

// IncludeDir reports whether a directory entry survives the policy.
// Directory names match exactly and case-sensitively.
func (p Policy) IncludeDir(name, relPath string) bool {
	if _, excluded := p.dirs[name]; excluded {
		return false
	}
	// Trailing slash so directory-only gitignore patterns ("build/") match.
	return !p.matchesGitignore(relPath + "/")
}

// IncludeFile reports whether a file entry survives the policy. File names
// match exactly; extensions match case-insensitively against the lower-cased
// extension including the leading dot. A file with no extension is never
// excluded on extension grounds.
func (p Policy) IncludeFile(name, relPath string) bool {
	if _, excluded := p.files[name]; excluded {
		return false
	}
	if extension := strings.ToLower(filepath.Ext(name)); extension != "" {
		if _, excluded := p.extensions[extension]; excluded {
			return false
		}
	}
	return !p.matchesGitignore(relPath)
}

func (p Policy) matchesGitignore(relPath string) bool {
	if p.gitignore == nil || relPath == "" || relPath == "/" {
		return false
	}
	return p.gitignore.MatchesPath(relPath)
}
