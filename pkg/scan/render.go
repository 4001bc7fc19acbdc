// File: pkg/scan/render.go
package scan

import "strings"

// RenderArtifact assembles the final prompt artifact: the directory tree
// under a "# Project file structure" header, then every collected file under
// "# Code files" as a fenced block titled with its relative path.
func RenderArtifact(rootName string, treeLines []string, files []FileEntry) string {
	var builder strings.Builder

	builder.WriteString("# Project file structure\n")
	builder.WriteString("📁 " + rootName)
	for _, line := range treeLines {
		builder.WriteString("\n" + line)
	}

	builder.WriteString("\n\n# Code files\n")
	for _, file := range files {
		builder.WriteString("\n## " + file.Path + "\n")
		builder.WriteString("```\n")
		builder.WriteString(file.Content)
		builder.WriteString("\n```\n")
	}

	return builder.String()
}
