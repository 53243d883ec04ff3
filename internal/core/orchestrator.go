package core

import (
	"context"
	"fmt"
	"sync"

	"cscreen/internal/engine"
	"cscreen/internal/llm/tasks"
	"cscreen/internal/regulation"
	"cscreen/pkg/schema"
)

// Orchestrator runs one screening scenario end to end: regulation lookup,
// parallel document extraction, requirement combination, and per-product
// evaluation. It holds no per-run state and is safe to share across
// concurrent runs.
type Orchestrator struct {
	executor TaskExecutor
	regs     *regulation.Repository
	logger   Logger
}

// NewOrchestrator creates an orchestrator.
func NewOrchestrator(executor TaskExecutor, regs *regulation.Repository, logger Logger) *Orchestrator {
	return &Orchestrator{
		executor: executor,
		regs:     regs,
		logger:   logger,
	}
}

// RunScenario executes the full pipeline for one scenario.
//
// Regulation errors (table missing or malformed) and a failed extraction
// of the user's own constraints are terminal: without them the combined
// requirement set would be silently weaker than the user asked for.
// Per-document extraction failures are not: they are recorded on that
// document's result and every sibling still gets evaluated.
func (o *Orchestrator) RunScenario(ctx context.Context, scenario *Scenario) (*ScreeningResult, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	runID, err := schema.NewRunID()
	if err != nil {
		return nil, fmt.Errorf("generate run ID: %w", err)
	}

	o.logger.Info("screening run started",
		"run_id", runID,
		"jurisdiction", scenario.Jurisdiction,
		"epds", len(scenario.EPDs),
		"drawings", len(scenario.Drawings),
	)

	table, err := o.regs.Load(scenario.Jurisdiction)
	if err != nil {
		return nil, err
	}

	var user *schema.UserConstraints
	if scenario.CustomInfo != "" {
		extracted, err := o.executor.ExtractConstraints(ctx, &tasks.ConstraintExtractionInput{
			CustomInfo: scenario.CustomInfo,
		})
		if err != nil {
			return nil, fmt.Errorf("extract user constraints: %w", err)
		}
		user = extracted
	}

	drawingResults := o.extractDrawings(ctx, scenario.Drawings)
	var extracted []schema.DrawingConstraints
	for _, dr := range drawingResults {
		if dr.Constraints != nil {
			extracted = append(extracted, *dr.Constraints)
		}
	}
	drawing := engine.MergeDrawingConstraints(extracted)

	requirements := engine.Combine(
		[]any{scenario.ExposureClasses},
		map[string]schema.ClauseVector(table),
		drawing,
		user,
	)

	o.logger.Debug("requirements combined",
		"run_id", runID,
		"classes", requirements.SourceExposureClasses,
	)

	productResults := o.screenProducts(ctx, scenario.EPDs, requirements)

	o.logger.Info("screening run finished",
		"run_id", runID,
		"products", len(productResults),
	)

	return &ScreeningResult{
		RunID:           runID,
		Jurisdiction:    scenario.Jurisdiction,
		UserConstraints: user,
		Requirements:    requirements,
		Drawings:        drawingResults,
		Products:        productResults,
	}, nil
}

// documentID tags one document result for cross-referencing in logs and
// archives. ID generation failing is no reason to drop the result, so the
// ID is left empty and the failure logged.
func (o *Orchestrator) documentID(name string) string {
	id, err := schema.NewDocumentID()
	if err != nil {
		o.logger.Warn("document ID generation failed",
			"document", name,
			"error", err.Error(),
		)
		return ""
	}
	return id
}

// extractDrawings runs drawing extraction concurrently. Failures land on
// the individual result and never abort siblings.
func (o *Orchestrator) extractDrawings(ctx context.Context, drawings []Document) []DrawingResult {
	results := make([]DrawingResult, len(drawings))

	var wg sync.WaitGroup
	for i, doc := range drawings {
		wg.Add(1)
		go func(i int, doc Document) {
			defer wg.Done()
			results[i].ID = o.documentID(doc.Name)
			results[i].Document = doc.Name

			constraints, err := o.executor.ExtractDrawing(ctx, &tasks.DrawingExtractionInput{
				DocumentName: doc.Name,
				DocumentText: doc.Text,
			})
			if err != nil {
				o.logger.Warn("drawing extraction failed",
					"document", doc.Name,
					"error", err.Error(),
				)
				results[i].Error = err.Error()
				return
			}
			results[i].Constraints = constraints
		}(i, doc)
	}
	wg.Wait()

	return results
}

// screenProducts extracts, derives and evaluates every EPD concurrently
// against the already-combined requirement record.
func (o *Orchestrator) screenProducts(ctx context.Context, epds []Document, requirements *schema.RequirementRecord) []ProductResult {
	results := make([]ProductResult, len(epds))

	var wg sync.WaitGroup
	for i, doc := range epds {
		wg.Add(1)
		go func(i int, doc Document) {
			defer wg.Done()
			results[i].ID = o.documentID(doc.Name)
			results[i].Document = doc.Name

			declaration, err := o.executor.ExtractEPD(ctx, &tasks.EPDExtractionInput{
				DocumentName: doc.Name,
				DocumentText: doc.Text,
			})
			if err != nil {
				o.logger.Warn("EPD extraction failed",
					"document", doc.Name,
					"error", err.Error(),
				)
				results[i].Error = err.Error()
				return
			}

			metrics := engine.DeriveMetrics(declaration)
			verdict := engine.Evaluate(metrics, requirements)

			results[i].Declaration = declaration
			results[i].Metrics = &metrics
			results[i].Verdict = &verdict
		}(i, doc)
	}
	wg.Wait()

	return results
}
