package tasks

import (
	"context"
	"fmt"

	"cscreen/internal/llm"
	"cscreen/pkg/schema"
)

// ExecuteEPDExtractionTask extracts a structured product declaration from
// the text of one EPD document.
func ExecuteEPDExtractionTask(
	client *llm.Client,
	ctx context.Context,
	input *EPDExtractionInput,
) (*EPDExtractionOutput, error) {
	if input.DocumentText == "" {
		return nil, fmt.Errorf("document %s: no text to extract from", input.DocumentName)
	}

	prompt := llm.BuildEPDExtractionPrompt(input.DocumentText)

	result, err := llm.GenerateStructured[EPDExtractionOutput](
		client,
		ctx,
		"",
		prompt,
		ValidateEPDOutput,
	)
	if err != nil {
		return nil, fmt.Errorf("EPD extraction for %s failed: %w", input.DocumentName, err)
	}

	return result, nil
}

// ValidateEPDOutput rejects declarations with out-of-range values. A
// declaration with every field null is accepted; the engine degrades the
// affected clauses to "not checked" instead.
func ValidateEPDOutput(output *EPDExtractionOutput) error {
	return schema.ValidateDeclaration(output)
}
