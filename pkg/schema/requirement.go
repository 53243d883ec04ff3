package schema

import "sort"

// RequirementRecord is the fully combined clause vector for one evaluation
// run, plus the provenance: every exposure class that contributed to it.
// It is created once by the combiner and read-only afterwards.
type RequirementRecord struct {
	ClauseVector `yaml:",inline"`

	// SourceExposureClasses is the sorted, deduplicated union of exposure
	// classes from the scenario selection and drawing extraction. Classes
	// absent from the regulation table still appear here.
	SourceExposureClasses []string `json:"source_exposure_classes" yaml:"source_exposure_classes"`
}

// NewRequirementRecord builds a record from a combined vector and the
// contributing class set. The class set is copied and sorted.
func NewRequirementRecord(combined ClauseVector, classes []string) *RequirementRecord {
	sorted := make([]string, len(classes))
	copy(sorted, classes)
	sort.Strings(sorted)
	return &RequirementRecord{
		ClauseVector:          combined,
		SourceExposureClasses: sorted,
	}
}
