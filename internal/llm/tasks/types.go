// Package tasks wraps each document extraction as a typed input/output
// pair with a validation closure, so the orchestrator can run them behind
// a mockable executor seam.
package tasks

import (
	"cscreen/pkg/schema"
)

// EPD Extraction Task Types

// EPDExtractionInput is the input for product declaration extraction.
type EPDExtractionInput struct {
	DocumentName string `json:"document_name"`
	DocumentText string `json:"document_text"`
}

// EPDExtractionOutput is the structured product declaration; the wire
// contract is the canonical schema record.
type EPDExtractionOutput = schema.ProductDeclaration

// Constraint Extraction Task Types

// ConstraintExtractionInput is the input for free-text constraint
// extraction.
type ConstraintExtractionInput struct {
	CustomInfo string `json:"custom_info"`
}

// ConstraintExtractionOutput carries the user-stated clauses.
type ConstraintExtractionOutput = schema.UserConstraints

// Drawing Extraction Task Types

// DrawingExtractionInput is the input for drawing requirement extraction.
type DrawingExtractionInput struct {
	DocumentName string `json:"document_name"`
	DocumentText string `json:"document_text"`
}

// DrawingExtractionOutput carries element-specific clauses and
// drawing-annotated exposure classes.
type DrawingExtractionOutput = schema.DrawingConstraints
