package scan

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// recordingCopier captures clipboard writes in tests.
type recordingCopier struct {
	copied []string
}

func (copier *recordingCopier) Copy(text string) error {
	copier.copied = append(copier.copied, text)
	return nil
}

func TestRunWritesArtifact(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "a.txt", "hello")
	writeTestFile(t, root, "node_modules/x.js", "x")

	outputPath := filepath.Join(root, "output.txt")
	args := Arguments{Directory: root, Output: outputPath}

	if err := Run(args, &recordingCopier{}, zap.NewNop()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	artifact := string(content)

	if !strings.HasPrefix(artifact, "# Project file structure\n📁 "+filepath.Base(root)+"\n") {
		t.Errorf("artifact missing tree header: %q", artifact)
	}
	if !strings.Contains(artifact, "└── a.txt") {
		t.Errorf("artifact missing tree line for a.txt: %q", artifact)
	}
	if !strings.Contains(artifact, "\n## a.txt\n```\nhello\n```\n") {
		t.Errorf("artifact missing content block for a.txt: %q", artifact)
	}
	if strings.Contains(artifact, "node_modules") {
		t.Errorf("pruned directory leaked into artifact: %q", artifact)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "a.txt", "hello")
	writeTestFile(t, root, "sub/b.txt", "world")

	outputPath := filepath.Join(root, "output.txt")
	args := Arguments{Directory: root, Output: outputPath}

	if err := Run(args, &recordingCopier{}, zap.NewNop()); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	first, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read first artifact: %v", err)
	}

	// The artifact lives inside the scanned tree; the second run must
	// exclude it and produce byte-identical output.
	if err := Run(args, &recordingCopier{}, zap.NewNop()); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	second, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read second artifact: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatalf("artifact changed between identical runs:\nfirst  %q\nsecond %q", first, second)
	}
}

func TestRunExcludesCustomOutputName(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "a.txt", "hello")

	outputPath := filepath.Join(root, "prompt.md")
	args := Arguments{Directory: root, Output: outputPath}

	if err := Run(args, &recordingCopier{}, zap.NewNop()); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := Run(args, &recordingCopier{}, zap.NewNop()); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if strings.Contains(string(content), "## prompt.md") {
		t.Fatalf("scan ingested its own artifact: %q", content)
	}
}

func TestRunOutputWriteFailureIsFatal(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "a.txt", "hello")

	args := Arguments{
		Directory: root,
		Output:    filepath.Join(root, "missing-dir", "output.txt"),
	}

	if err := Run(args, &recordingCopier{}, zap.NewNop()); err == nil {
		t.Fatal("expected an error when the output file cannot be written")
	}
}

func TestRunCopiesArtifactToClipboard(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "a.txt", "hello")

	outputPath := filepath.Join(root, "output.txt")
	copier := &recordingCopier{}
	args := Arguments{Directory: root, Output: outputPath, CopyToClip: true}

	if err := Run(args, copier, zap.NewNop()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	written, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if len(copier.copied) != 1 || copier.copied[0] != string(written) {
		t.Fatalf("clipboard did not receive the artifact: %+v", copier.copied)
	}
}

func TestRunHonorsGitignoreLayer(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "keep.txt", "keep")
	writeTestFile(t, root, "drop.log", "drop")
	writeTestFile(t, root, ".gitignore", "*.log\n")

	outputPath := filepath.Join(root, "output.txt")
	args := Arguments{Directory: root, Output: outputPath, UseGitignore: true}

	if err := Run(args, &recordingCopier{}, zap.NewNop()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if strings.Contains(string(content), "drop.log") {
		t.Errorf("gitignored file leaked into artifact: %q", content)
	}
	if !strings.Contains(string(content), "keep.txt") {
		t.Errorf("expected keep.txt in artifact: %q", content)
	}
}
