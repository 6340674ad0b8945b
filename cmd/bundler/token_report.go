package main

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

const defaultTokenModel = "gpt-4"

// countTokens returns how many tokens model's encoding produces for text.
func countTokens(text string, model string) (int, error) {
	tkm, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return 0, fmt.Errorf("failed to get tokenizer for model %q: %w", model, err)
	}
	return len(tkm.Encode(text, nil, nil)), nil
}

// formatTokenReport renders the --tcount line printed after a bundle run.
func formatTokenReport(tokens int, files int, model string) string {
	perFile := 0
	if files > 0 {
		perFile = tokens / files
	}
	return fmt.Sprintf("tokens: %d (model: %s, ~%d per file)\n", tokens, model, perFile)
}
