// Package engine implements the requirement-aggregation and
// compliance-verification core: combining clause contributions from
// regulation tables, drawings and user text into one most-stringent
// requirement record, deriving comparable metrics from a product
// declaration, and evaluating those metrics clause by clause.
//
// Everything here is pure: no I/O, no shared state, safe for concurrent
// use across independent evaluation runs.
package engine

import (
	"math"

	"cscreen/pkg/schema"
)

// Permissive fold seeds. A field still at its seed after folding every
// source was never constrained and is re-nulled in the output record.
const (
	seedMaxWC     = 1.0
	seedMinCement = 0.0
	seedStrength  = 0
)

// FlattenExposureClasses collapses exposure-class input of arbitrary
// nesting into a deduplicated flat set. Extraction providers return
// classes as strings, lists, or lists of lists depending on the document;
// anything that is not a string or a list is dropped.
func FlattenExposureClasses(sources ...any) []string {
	seen := make(map[string]bool)
	var out []string

	var walk func(item any)
	walk = func(item any) {
		switch v := item.(type) {
		case nil:
		case string:
			if v != "" && !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		case []string:
			for _, s := range v {
				walk(s)
			}
		case []any:
			for _, nested := range v {
				walk(nested)
			}
		}
	}

	for _, src := range sources {
		walk(src)
	}
	return out
}

// accumulator carries the running fold state. Touched flags distinguish a
// contributed value that happens to equal its seed from a field no source
// ever constrained.
type accumulator struct {
	maxWC        float64
	minCement    float64
	strengthCyl  int
	strengthCube int
	maxAggregate float64

	touchedWC        bool
	touchedCement    bool
	touchedCyl       bool
	touchedCube      bool
	touchedAggregate bool
}

func newAccumulator() *accumulator {
	return &accumulator{
		maxWC:        seedMaxWC,
		minCement:    seedMinCement,
		strengthCyl:  seedStrength,
		strengthCube: seedStrength,
		maxAggregate: math.Inf(1),
	}
}

// fold applies one source's clauses. Ceilings take the minimum, floors the
// maximum; nil fields never participate, so a source can only tighten the
// running value.
func (a *accumulator) fold(cv schema.ClauseVector) {
	if cv.MaxWC != nil {
		a.maxWC = math.Min(a.maxWC, *cv.MaxWC)
		a.touchedWC = true
	}
	if cv.MinCement != nil {
		a.minCement = math.Max(a.minCement, *cv.MinCement)
		a.touchedCement = true
	}
	if cv.StrengthMinCyl != nil {
		a.strengthCyl = max(a.strengthCyl, *cv.StrengthMinCyl)
		a.touchedCyl = true
	}
	if cv.StrengthMinCube != nil {
		a.strengthCube = max(a.strengthCube, *cv.StrengthMinCube)
		a.touchedCube = true
	}
	if cv.MaxAggregateSize != nil {
		a.maxAggregate = math.Min(a.maxAggregate, *cv.MaxAggregateSize)
		a.touchedAggregate = true
	}
}

// vector materializes the fold result, re-nulling untouched fields so the
// permissive seeds never leak into the requirement record.
func (a *accumulator) vector() schema.ClauseVector {
	var cv schema.ClauseVector
	if a.touchedWC {
		cv.MaxWC = schema.Float(a.maxWC)
	}
	if a.touchedCement {
		cv.MinCement = schema.Float(a.minCement)
	}
	if a.touchedCyl {
		cv.StrengthMinCyl = schema.Int(a.strengthCyl)
	}
	if a.touchedCube {
		cv.StrengthMinCube = schema.Int(a.strengthCube)
	}
	if a.touchedAggregate {
		cv.MaxAggregateSize = schema.Float(a.maxAggregate)
	}
	return cv
}

// MergeDrawingConstraints folds the extraction results of several drawings
// into one constraint record: per-clause most stringent value, exposure
// classes unioned in encounter order. Returns nil for an empty input so a
// scenario without drawings combines identically to drawing=nil.
func MergeDrawingConstraints(drawings []schema.DrawingConstraints) *schema.DrawingConstraints {
	if len(drawings) == 0 {
		return nil
	}

	acc := newAccumulator()
	var classes []any
	for i := range drawings {
		acc.fold(drawings[i].ClauseVector())
		classes = append(classes, drawings[i].DrawingExposureClasses)
	}

	cv := acc.vector()
	return &schema.DrawingConstraints{
		ElementSpecificReqs: schema.ElementRequirements{
			StrengthClassMPa: cv.StrengthMinCyl,
			MinCementContent: cv.MinCement,
			MaxWCRatio:       cv.MaxWC,
			MaxAggregateSize: cv.MaxAggregateSize,
		},
		DrawingExposureClasses: FlattenExposureClasses(classes...),
	}
}

// Combine folds every contributing source into the single most stringent
// requirement record.
//
// Exposure classes from the scenario selection and the drawing extraction
// are unioned first; each class present in the regulation table contributes
// its clause row. Drawing clauses fold next, user clauses last. Because the
// fold is tightening-only, later sources can never loosen an earlier bound;
// the ordering fixes which source "wins" only in the sense that user
// constraints are never silently weakened by defaults.
//
// Classes absent from the table contribute nothing but still appear in the
// record's provenance set.
func Combine(
	exposureClasses []any,
	table map[string]schema.ClauseVector,
	drawing *schema.DrawingConstraints,
	user *schema.UserConstraints,
) *schema.RequirementRecord {
	sources := []any{exposureClasses}
	if drawing != nil {
		sources = append(sources, drawing.DrawingExposureClasses)
	}
	combined := FlattenExposureClasses(sources...)

	acc := newAccumulator()
	for _, ec := range combined {
		if row, ok := table[ec]; ok {
			acc.fold(row)
		}
	}
	if drawing != nil {
		acc.fold(drawing.ClauseVector())
	}
	if user != nil {
		acc.fold(user.ClauseVector())
	}

	return schema.NewRequirementRecord(acc.vector(), combined)
}
