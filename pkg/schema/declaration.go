package schema

// MaterialFraction is one named composition entry of a product declaration.
type MaterialFraction struct {
	Name       string  `json:"name" yaml:"name"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// ProductDeclaration is the structured content of one EPD, as returned by
// the extraction provider. Read-only input; the engine never mutates it.
type ProductDeclaration struct {
	// Density is the overall density in kg/m3.
	Density *float64 `json:"density" yaml:"density"`

	// StrengthMPa is the declared compressive strength.
	StrengthMPa *float64 `json:"MPa" yaml:"MPa"`

	// MaxAggregateSize is the declared maximum aggregate size in mm.
	MaxAggregateSize *float64 `json:"max_aggregate_size" yaml:"max_aggregate_size"`

	// MatComp lists the declared material fractions by mass percentage.
	MatComp []MaterialFraction `json:"mat_comp" yaml:"mat_comp"`
}

// DerivedMetrics are the comparable physical metrics computed from a
// declaration. Computed per run, never persisted with the declaration.
// A nil field means the inputs needed to derive it were missing; the
// evaluator skips the corresponding clause.
type DerivedMetrics struct {
	CalculatedWC     *float64 `json:"calculated_wc" yaml:"calculated_wc"`
	CementContent    *float64 `json:"cement_content_kg_m3" yaml:"cement_content_kg_m3"`
	StrengthMPa      *float64 `json:"strength_mpa" yaml:"strength_mpa"`
	MaxAggregateSize *float64 `json:"max_aggregate_size" yaml:"max_aggregate_size"`
}
