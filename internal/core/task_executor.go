package core

import (
	"context"

	"cscreen/internal/llm"
	"cscreen/internal/llm/tasks"
)

// TaskExecutor abstracts extraction task execution for testability.
type TaskExecutor interface {
	ExtractEPD(ctx context.Context, input *tasks.EPDExtractionInput) (*tasks.EPDExtractionOutput, error)
	ExtractConstraints(ctx context.Context, input *tasks.ConstraintExtractionInput) (*tasks.ConstraintExtractionOutput, error)
	ExtractDrawing(ctx context.Context, input *tasks.DrawingExtractionInput) (*tasks.DrawingExtractionOutput, error)
}

// LLMTaskExecutor implements TaskExecutor against the real provider.
type LLMTaskExecutor struct {
	client *llm.Client
}

// NewLLMTaskExecutor creates a TaskExecutor backed by the extraction client.
func NewLLMTaskExecutor(client *llm.Client) *LLMTaskExecutor {
	return &LLMTaskExecutor{client: client}
}

func (e *LLMTaskExecutor) ExtractEPD(ctx context.Context, input *tasks.EPDExtractionInput) (*tasks.EPDExtractionOutput, error) {
	return tasks.ExecuteEPDExtractionTask(e.client, ctx, input)
}

func (e *LLMTaskExecutor) ExtractConstraints(ctx context.Context, input *tasks.ConstraintExtractionInput) (*tasks.ConstraintExtractionOutput, error) {
	return tasks.ExecuteConstraintExtractionTask(e.client, ctx, input)
}

func (e *LLMTaskExecutor) ExtractDrawing(ctx context.Context, input *tasks.DrawingExtractionInput) (*tasks.DrawingExtractionOutput, error) {
	return tasks.ExecuteDrawingExtractionTask(e.client, ctx, input)
}
