package core

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cscreen/pkg/schema"
)

// Document is one uploaded file after text extraction. PDF-to-text
// conversion happens upstream; the pipeline only sees text.
type Document struct {
	Name string `yaml:"name" json:"name"`
	Text string `yaml:"text" json:"text"`
}

// Scenario is the full input of one screening run. No state survives a
// run; everything the pipeline needs arrives here explicitly.
type Scenario struct {
	// Jurisdiction selects the regulation clause table, e.g. "en206".
	Jurisdiction string `yaml:"jurisdiction" json:"jurisdiction"`

	// ExposureClasses are the user's direct class selections.
	ExposureClasses []string `yaml:"exposure_classes" json:"exposure_classes"`

	// CustomInfo is free-text project constraints, extracted when non-empty.
	CustomInfo string `yaml:"custom_info" json:"custom_info"`

	// EPDs are the product declarations to screen.
	EPDs []Document `yaml:"epds" json:"epds"`

	// Drawings are technical drawings contributing requirements.
	Drawings []Document `yaml:"drawings" json:"drawings"`
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	return &scenario, nil
}

// Validate checks that the scenario identifies a regulation and at least
// one requirement source.
func (s *Scenario) Validate() error {
	if s.Jurisdiction == "" {
		return &ValidationError{Field: "jurisdiction", Message: "is required"}
	}
	if len(s.ExposureClasses) == 0 && s.CustomInfo == "" && len(s.Drawings) == 0 {
		return &ValidationError{Message: "scenario contributes no requirements: select exposure classes, add custom info, or attach drawings"}
	}
	for i, d := range s.EPDs {
		if d.Name == "" {
			return &ValidationError{Field: fmt.Sprintf("epds[%d].name", i), Message: "is required"}
		}
	}
	for i, d := range s.Drawings {
		if d.Name == "" {
			return &ValidationError{Field: fmt.Sprintf("drawings[%d].name", i), Message: "is required"}
		}
	}
	return nil
}

// DrawingResult is the extraction outcome for one drawing. Error carries a
// provider failure message; a failed drawing contributes no constraints
// and never aborts the run.
type DrawingResult struct {
	ID          string                     `yaml:"id" json:"id"`
	Document    string                     `yaml:"document" json:"document"`
	Constraints *schema.DrawingConstraints `yaml:"constraints,omitempty" json:"constraints,omitempty"`
	Error       string                     `yaml:"error,omitempty" json:"error,omitempty"`
}

// ProductResult is the screening outcome for one EPD. Either Error is set
// (extraction failed, siblings unaffected) or the declaration, derived
// metrics and verdict are.
type ProductResult struct {
	ID          string                     `yaml:"id" json:"id"`
	Document    string                     `yaml:"document" json:"document"`
	Declaration *schema.ProductDeclaration `yaml:"declaration,omitempty" json:"declaration,omitempty"`
	Metrics     *schema.DerivedMetrics     `yaml:"metrics,omitempty" json:"metrics,omitempty"`
	Verdict     *schema.Verdict            `yaml:"verdict,omitempty" json:"verdict,omitempty"`
	Error       string                     `yaml:"error,omitempty" json:"error,omitempty"`
}

// ScreeningResult is the complete outcome of one run.
type ScreeningResult struct {
	RunID           string                    `yaml:"run_id" json:"run_id"`
	Jurisdiction    string                    `yaml:"jurisdiction" json:"jurisdiction"`
	UserConstraints *schema.UserConstraints   `yaml:"user_constraints,omitempty" json:"user_constraints,omitempty"`
	Requirements    *schema.RequirementRecord `yaml:"requirements" json:"requirements"`
	Drawings        []DrawingResult           `yaml:"drawings,omitempty" json:"drawings,omitempty"`
	Products        []ProductResult           `yaml:"products,omitempty" json:"products,omitempty"`
}
