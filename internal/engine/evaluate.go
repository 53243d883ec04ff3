package engine

import (
	"fmt"

	"cscreen/pkg/schema"
)

// Evaluate compares derived metrics against a combined requirement record
// clause by clause. A clause is skipped when either side is nil, or when
// the requirement is still at its permissive marker (a w/c ceiling of 1.0,
// a floor of zero); skipped clauses produce no finding and do not affect
// the verdict.
//
// When no clause was checkable at all, the verdict passes with a single
// informational finding. Absence of data is not treated as failure.
func Evaluate(metrics schema.DerivedMetrics, req *schema.RequirementRecord) schema.Verdict {
	verdict := schema.Verdict{Pass: true}

	// Check 1: water/cement ratio ceiling
	if req.MaxWC != nil && metrics.CalculatedWC != nil && *req.MaxWC < seedMaxWC {
		if *metrics.CalculatedWC > *req.MaxWC {
			verdict.Pass = false
			verdict.Details = append(verdict.Details,
				fmt.Sprintf("FAIL: EPD w/c ratio (%.2f) exceeds required max (%v).",
					*metrics.CalculatedWC, *req.MaxWC))
		} else {
			verdict.Details = append(verdict.Details,
				fmt.Sprintf("PASS: EPD w/c ratio (%.2f) meets required max (%v).",
					*metrics.CalculatedWC, *req.MaxWC))
		}
	}

	// Check 2: cement content floor
	if req.MinCement != nil && metrics.CementContent != nil && *req.MinCement > seedMinCement {
		if *metrics.CementContent < *req.MinCement {
			verdict.Pass = false
			verdict.Details = append(verdict.Details,
				fmt.Sprintf("FAIL: EPD cement content (%.0f kg/m3) is below required min (%v kg/m3).",
					*metrics.CementContent, *req.MinCement))
		} else {
			verdict.Details = append(verdict.Details,
				fmt.Sprintf("PASS: EPD cement content (%.0f kg/m3) meets required min (%v kg/m3).",
					*metrics.CementContent, *req.MinCement))
		}
	}

	// Check 3: strength floor. The declaration carries a single MPa figure,
	// so the cylinder floor is checked when present and the cube floor only
	// as a fallback.
	if floor, label := strengthFloor(req); floor != nil && metrics.StrengthMPa != nil && *floor > seedStrength {
		if *metrics.StrengthMPa < float64(*floor) {
			verdict.Pass = false
			verdict.Details = append(verdict.Details,
				fmt.Sprintf("FAIL: EPD strength (%v MPa) is below required min %s strength (%d MPa).",
					*metrics.StrengthMPa, label, *floor))
		} else {
			verdict.Details = append(verdict.Details,
				fmt.Sprintf("PASS: EPD strength (%v MPa) meets required min %s strength (%d MPa).",
					*metrics.StrengthMPa, label, *floor))
		}
	}

	// Check 4: aggregate size ceiling
	if req.MaxAggregateSize != nil && metrics.MaxAggregateSize != nil {
		if *metrics.MaxAggregateSize > *req.MaxAggregateSize {
			verdict.Pass = false
			verdict.Details = append(verdict.Details,
				fmt.Sprintf("FAIL: EPD aggregate size (%v mm) exceeds required max (%v mm).",
					*metrics.MaxAggregateSize, *req.MaxAggregateSize))
		} else {
			verdict.Details = append(verdict.Details,
				fmt.Sprintf("PASS: EPD aggregate size (%v mm) meets required max (%v mm).",
					*metrics.MaxAggregateSize, *req.MaxAggregateSize))
		}
	}

	if len(verdict.Details) == 0 {
		verdict.Details = append(verdict.Details, "No specific requirements found to check against.")
	}

	return verdict
}

func strengthFloor(req *schema.RequirementRecord) (*int, string) {
	if req.StrengthMinCyl != nil {
		return req.StrengthMinCyl, "cylinder"
	}
	if req.StrengthMinCube != nil {
		return req.StrengthMinCube, "cube"
	}
	return nil, ""
}
