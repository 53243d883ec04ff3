package tasks

import (
	"context"
	"fmt"

	"cscreen/internal/llm"
	"cscreen/pkg/schema"
)

// ExecuteDrawingExtractionTask extracts element-specific requirements and
// exposure classes from the text of one technical drawing.
func ExecuteDrawingExtractionTask(
	client *llm.Client,
	ctx context.Context,
	input *DrawingExtractionInput,
) (*DrawingExtractionOutput, error) {
	if input.DocumentText == "" {
		return nil, fmt.Errorf("document %s: no text to extract from", input.DocumentName)
	}

	prompt := llm.BuildDrawingExtractionPrompt(input.DocumentText)

	result, err := llm.GenerateStructured[DrawingExtractionOutput](
		client,
		ctx,
		"",
		prompt,
		ValidateDrawingOutput,
	)
	if err != nil {
		return nil, fmt.Errorf("drawing extraction for %s failed: %w", input.DocumentName, err)
	}

	return result, nil
}

// ValidateDrawingOutput rejects drawing constraints with out-of-range
// values or empty exposure-class codes.
func ValidateDrawingOutput(output *DrawingExtractionOutput) error {
	return schema.ValidateDrawingConstraints(output)
}
