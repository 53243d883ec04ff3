package engine

import (
	"strings"

	"cscreen/pkg/schema"
)

// DeriveMetrics computes comparable physical metrics from a product
// declaration. Pure: the declaration is never mutated, and a metric whose
// inputs are missing stays nil rather than failing.
//
// Water and cement fractions are matched by substring on the entry name,
// case-insensitively, accepting the Spanish labels that appear on EPDs
// from Spanish producers ("agua", "CEM I 42.5"). Fractions accumulate
// additively across multiple matching entries. An entry matching both
// markers counts as water only.
func DeriveMetrics(d *schema.ProductDeclaration) schema.DerivedMetrics {
	metrics := schema.DerivedMetrics{}
	if d.StrengthMPa != nil {
		metrics.StrengthMPa = schema.Float(*d.StrengthMPa)
	}
	if d.MaxAggregateSize != nil {
		metrics.MaxAggregateSize = schema.Float(*d.MaxAggregateSize)
	}

	var waterPct, cementPct float64
	for _, m := range d.MatComp {
		name := strings.ToLower(m.Name)
		switch {
		case strings.Contains(name, "water") || strings.Contains(name, "agua"):
			waterPct += m.Percentage
		case strings.Contains(name, "cement") || strings.Contains(name, "cem "):
			cementPct += m.Percentage
		}
	}

	if cementPct > 0 {
		metrics.CalculatedWC = schema.Float(waterPct / cementPct)
	}
	if d.Density != nil && cementPct > 0 {
		metrics.CementContent = schema.Float(cementPct / 100 * *d.Density)
	}

	return metrics
}
