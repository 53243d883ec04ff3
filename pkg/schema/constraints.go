package schema

// ElementRequirements are the element-specific clauses extracted from a
// technical drawing's annotations. Each field is optional.
type ElementRequirements struct {
	StrengthClassMPa *int     `json:"strength_class_mpa" yaml:"strength_class_mpa"`
	MinCementContent *float64 `json:"min_cement_content" yaml:"min_cement_content"`
	MaxWCRatio       *float64 `json:"max_w_c_ratio" yaml:"max_w_c_ratio"`
	MaxAggregateSize *float64 `json:"max_aggregate_size" yaml:"max_aggregate_size"`
}

// DrawingConstraints is the full extraction result for one drawing:
// element-specific requirement clauses plus any exposure classes annotated
// on the drawing itself.
type DrawingConstraints struct {
	ElementSpecificReqs    ElementRequirements `json:"element_specific_reqs" yaml:"element_specific_reqs"`
	DrawingExposureClasses []string            `json:"drawing_exposure_classes" yaml:"drawing_exposure_classes"`
}

// ClauseVector maps drawing clauses onto the canonical clause shape.
// Drawing strength annotations are cylinder-class figures.
func (d *DrawingConstraints) ClauseVector() ClauseVector {
	return ClauseVector{
		MaxWC:            d.ElementSpecificReqs.MaxWCRatio,
		MinCement:        d.ElementSpecificReqs.MinCementContent,
		StrengthMinCyl:   d.ElementSpecificReqs.StrengthClassMPa,
		MaxAggregateSize: d.ElementSpecificReqs.MaxAggregateSize,
	}
}

// UserConstraints are the clauses extracted from the scenario's free-text
// project description. Each field is optional.
type UserConstraints struct {
	MinCementContent *float64 `json:"min_cement_content" yaml:"min_cement_content"`
	MaxWCRatio       *float64 `json:"max_w_c_ratio" yaml:"max_w_c_ratio"`
	MinMPaStrength   *int     `json:"min_mpa_strength" yaml:"min_mpa_strength"`
	MaxAggregateSize *float64 `json:"max_aggregate_size" yaml:"max_aggregate_size"`
}

// ClauseVector maps user clauses onto the canonical clause shape.
// User strength constraints are treated as cylinder figures.
func (u *UserConstraints) ClauseVector() ClauseVector {
	return ClauseVector{
		MaxWC:            u.MaxWCRatio,
		MinCement:        u.MinCementContent,
		StrengthMinCyl:   u.MinMPaStrength,
		MaxAggregateSize: u.MaxAggregateSize,
	}
}
