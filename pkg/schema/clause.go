package schema

// ClauseVector is the set of material requirement clauses contributed by one
// source (a regulation row, a drawing, user text) or produced by combining
// several sources. Every field is optional: nil means "unconstrained by this
// source". A ClauseVector never stores a sentinel in place of nil.
type ClauseVector struct {
	// MaxWC is the maximum allowed water/cement ratio. Stricter = smaller.
	MaxWC *float64 `json:"max_wc,omitempty" yaml:"max_wc,omitempty"`

	// MinCement is the minimum cement content in kg/m3. Stricter = larger.
	MinCement *float64 `json:"min_cement,omitempty" yaml:"min_cement,omitempty"`

	// StrengthMinCyl is the minimum cylinder compressive strength in MPa.
	StrengthMinCyl *int `json:"strength_min_cyl,omitempty" yaml:"strength_min_cyl,omitempty"`

	// StrengthMinCube is the minimum cube compressive strength in MPa.
	StrengthMinCube *int `json:"strength_min_cube,omitempty" yaml:"strength_min_cube,omitempty"`

	// MaxAggregateSize is the maximum aggregate size in mm. Stricter = smaller.
	MaxAggregateSize *float64 `json:"max_aggregate_size,omitempty" yaml:"max_aggregate_size,omitempty"`
}

// IsEmpty reports whether no clause is set.
func (c *ClauseVector) IsEmpty() bool {
	return c.MaxWC == nil &&
		c.MinCement == nil &&
		c.StrengthMinCyl == nil &&
		c.StrengthMinCube == nil &&
		c.MaxAggregateSize == nil
}

// Float returns a pointer to v. Convenience for building optional fields.
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}
