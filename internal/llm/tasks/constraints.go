package tasks

import (
	"context"
	"fmt"

	"cscreen/internal/llm"
	"cscreen/pkg/schema"
)

// ExecuteConstraintExtractionTask extracts technical constraints from the
// scenario's free-text project description.
func ExecuteConstraintExtractionTask(
	client *llm.Client,
	ctx context.Context,
	input *ConstraintExtractionInput,
) (*ConstraintExtractionOutput, error) {
	if input.CustomInfo == "" {
		return nil, fmt.Errorf("no custom information to extract from")
	}

	prompt := llm.BuildConstraintExtractionPrompt(input.CustomInfo)

	result, err := llm.GenerateStructured[ConstraintExtractionOutput](
		client,
		ctx,
		"",
		prompt,
		ValidateConstraintOutput,
	)
	if err != nil {
		return nil, fmt.Errorf("constraint extraction failed: %w", err)
	}

	return result, nil
}

// ValidateConstraintOutput rejects constraints with out-of-range values.
// All-null output is valid: the user text simply stated no requirement.
func ValidateConstraintOutput(output *ConstraintExtractionOutput) error {
	return schema.ValidateUserConstraints(output)
}
