package schema

import "fmt"

// Bounds used when validating extraction output before it enters the engine.
const (
	PercentageMin = 0.0
	PercentageMax = 100.0
)

// ValidateClauseVector checks that every set clause carries a physically
// meaningful value. nil fields are always valid ("unconstrained").
func ValidateClauseVector(c *ClauseVector) error {
	if c.MaxWC != nil && *c.MaxWC <= 0 {
		return fmt.Errorf("max_wc must be positive, got %v", *c.MaxWC)
	}
	if c.MinCement != nil && *c.MinCement < 0 {
		return fmt.Errorf("min_cement cannot be negative, got %v", *c.MinCement)
	}
	if c.StrengthMinCyl != nil && *c.StrengthMinCyl < 0 {
		return fmt.Errorf("strength_min_cyl cannot be negative, got %d", *c.StrengthMinCyl)
	}
	if c.StrengthMinCube != nil && *c.StrengthMinCube < 0 {
		return fmt.Errorf("strength_min_cube cannot be negative, got %d", *c.StrengthMinCube)
	}
	if c.MaxAggregateSize != nil && *c.MaxAggregateSize <= 0 {
		return fmt.Errorf("max_aggregate_size must be positive, got %v", *c.MaxAggregateSize)
	}
	return nil
}

// ValidateDeclaration checks a product declaration as returned by the
// extraction provider. Missing fields are allowed; present fields must be
// in range.
func ValidateDeclaration(d *ProductDeclaration) error {
	if d.Density != nil && *d.Density <= 0 {
		return fmt.Errorf("density must be positive, got %v", *d.Density)
	}
	if d.StrengthMPa != nil && *d.StrengthMPa < 0 {
		return fmt.Errorf("MPa cannot be negative, got %v", *d.StrengthMPa)
	}
	if d.MaxAggregateSize != nil && *d.MaxAggregateSize <= 0 {
		return fmt.Errorf("max_aggregate_size must be positive, got %v", *d.MaxAggregateSize)
	}
	for i, m := range d.MatComp {
		if m.Name == "" {
			return fmt.Errorf("mat_comp[%d]: name is required", i)
		}
		if m.Percentage < PercentageMin || m.Percentage > PercentageMax {
			return fmt.Errorf("mat_comp[%d]: percentage must be %v-%v, got %v",
				i, PercentageMin, PercentageMax, m.Percentage)
		}
	}
	return nil
}

// ValidateUserConstraints checks free-text-derived constraints.
func ValidateUserConstraints(u *UserConstraints) error {
	cv := u.ClauseVector()
	if err := ValidateClauseVector(&cv); err != nil {
		return err
	}
	return nil
}

// ValidateDrawingConstraints checks drawing-derived constraints, including
// that every drawing exposure class is a non-empty code.
func ValidateDrawingConstraints(d *DrawingConstraints) error {
	cv := d.ClauseVector()
	if err := ValidateClauseVector(&cv); err != nil {
		return err
	}
	for i, ec := range d.DrawingExposureClasses {
		if ec == "" {
			return fmt.Errorf("drawing_exposure_classes[%d]: empty class code", i)
		}
	}
	return nil
}
