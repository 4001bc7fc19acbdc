// File: pkg/scan/tokens.go
package scan

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

const (
	defaultTokenModel    = "gpt-4o"
	fallbackEncodingName = "cl100k_base"
)

// CountTokens estimates how many tokens the artifact occupies in a prompt
// for the given model. Unknown models fall back to the cl100k_base encoding;
// the name of the encoding actually used is returned alongside the count.
func CountTokens(artifact, model string) (int, string, error) {
	model = strings.TrimSpace(strings.ToLower(model))
	if model == "" {
		model = defaultTokenModel
	}

	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil || encoding == nil {
		encoding, err = tiktoken.GetEncoding(fallbackEncodingName)
		if err != nil {
			return 0, "", fmt.Errorf("initialize fallback tokenizer: %w", err)
		}
		model = fallbackEncodingName
	}

	return len(encoding.Encode(artifact, nil, nil)), model, nil
}
