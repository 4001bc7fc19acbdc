package scan

import (
	"strings"
	"testing"
)

func TestIsBinaryContent(t *testing.T) {
	cases := []struct {
		name    string
		content string
		binary  bool
	}{
		{"empty", "", false},
		{"plain text", "package main\n\nfunc main() {}\n", false},
		{"utf8 text", "héllo wörld — 日本語\n", false},
		{"nul byte", "ab\x00cd", true},
		{"mostly control bytes", strings.Repeat("\x01\x02\x03", 50), true},
		{"nul beyond sniff window", strings.Repeat("a", sniffLen) + "\x00", false},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := isBinaryContent([]byte(testCase.content)); got != testCase.binary {
				t.Errorf("isBinaryContent(%q) = %v, want %v", testCase.content, got, testCase.binary)
			}
		})
	}
}
