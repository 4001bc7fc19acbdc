package scan

import "testing"

func TestRenderArtifactLayout(t *testing.T) {
	treeLines := []string{
		"├── a.txt",
		"└── sub",
		"    └── b.txt",
	}
	files := []FileEntry{
		{Path: "a.txt", Content: "hello"},
		{Path: "sub/b.txt", Content: "world"},
	}

	artifact := RenderArtifact("myproject", treeLines, files)

	expected := "# Project file structure\n" +
		"📁 myproject\n" +
		"├── a.txt\n" +
		"└── sub\n" +
		"    └── b.txt\n" +
		"\n# Code files\n" +
		"\n## a.txt\n```\nhello\n```\n" +
		"\n## sub/b.txt\n```\nworld\n```\n"
	if artifact != expected {
		t.Fatalf("unexpected artifact:\ngot  %q\nwant %q", artifact, expected)
	}
}

func TestRenderArtifactEmptyScan(t *testing.T) {
	artifact := RenderArtifact("empty", nil, nil)

	expected := "# Project file structure\n📁 empty\n\n# Code files\n"
	if artifact != expected {
		t.Fatalf("unexpected artifact: %q", artifact)
	}
}
