// File: pkg/scan/binary.go
package scan

import "bytes"

// sniffLen is how many leading bytes are inspected to decide whether a file
// is text.
const sniffLen = 512

// isBinaryContent reports whether content looks like binary data rather than
// text: a NUL byte anywhere in the sniffed window, or more than 30%
// non-printable bytes.
func isBinaryContent(content []byte) bool {
	sample := content
	if len(sample) > sniffLen {
		sample = sample[:sniffLen]
	}
	if len(sample) == 0 {
		return false // empty files are text
	}
	if bytes.IndexByte(sample, 0) >= 0 {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(sample)) > 0.3
}

// isPrintable reports whether a byte is printable ASCII or common whitespace.
// Bytes above 127 are allowed so UTF-8 text is not misclassified.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t' || b >= 128
}
