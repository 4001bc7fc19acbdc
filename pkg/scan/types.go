// File: pkg/scan/types.go
package scan

// Arguments holds the configuration for a single scan run. A nil exclusion
// slice means the compiled-in default set; an empty non-nil slice disables
// that exclusion category entirely.
type Arguments struct {
	Directory          string   // Root directory to scan.
	Output             string   // Destination path for the rendered artifact.
	ExcludedDirs       []string // Directory names to prune.
	ExcludedFiles      []string // File names to omit.
	ExcludedExtensions []string // File extensions to omit.
	UseGitignore       bool     // If true, a root .gitignore augments the exclusion policy.
	CountTokens        bool     // If true, report a token estimate for the artifact.
	TokenModel         string   // Model used to pick a tokenizer encoding.
	CopyToClip         bool     // If true, copy the artifact to the system clipboard.
}

// FileEntry is one collected file: its root-relative path (forward slashes)
// and its raw content. Entries are recorded in traversal order.
type FileEntry struct {
	Path    string
	Content string
}

// SkipReason classifies why the collector omitted a file.
type SkipReason string

const (
	// SkipUnreadable marks a file whose read failed.
	SkipUnreadable SkipReason = "unreadable"
	// SkipBinary marks a file whose content is not text.
	SkipBinary SkipReason = "binary content"
)

// SkippedFile records a file the collector visited but did not include,
// with the reason and underlying error when one exists.
type SkippedFile struct {
	Path   string
	Reason SkipReason
	Err    error
}

const (
	// DefaultOutputFile is the artifact written by a zero-argument run.
	DefaultOutputFile = "output.txt"

	// maxTreeDepth bounds recursion so pathological nesting or an
	// undetected directory cycle cannot exhaust the stack.
	maxTreeDepth = 255
)
