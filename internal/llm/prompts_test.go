package llm

import (
	"strings"
	"testing"
)

func TestBuildEPDExtractionPrompt(t *testing.T) {
	prompt := BuildEPDExtractionPrompt("Density: 2400 kg/m3")

	for _, key := range []string{"density", "MPa", "max_aggregate_size", "mat_comp"} {
		if !strings.Contains(prompt, key) {
			t.Errorf("prompt missing key %q", key)
		}
	}
	if !strings.Contains(prompt, "Density: 2400 kg/m3") {
		t.Error("prompt must embed the document text")
	}
}

func TestBuildConstraintExtractionPrompt(t *testing.T) {
	prompt := BuildConstraintExtractionPrompt("w/c below 0.45 please")

	for _, key := range []string{"min_cement_content", "max_w_c_ratio", "min_mpa_strength", "max_aggregate_size"} {
		if !strings.Contains(prompt, key) {
			t.Errorf("prompt missing key %q", key)
		}
	}
	if !strings.Contains(prompt, "w/c below 0.45 please") {
		t.Error("prompt must embed the user text")
	}
}

func TestBuildDrawingExtractionPrompt(t *testing.T) {
	prompt := BuildDrawingExtractionPrompt("Concrete C30/37, exposure XC4")

	for _, key := range []string{"element_specific_reqs", "strength_class_mpa", "drawing_exposure_classes"} {
		if !strings.Contains(prompt, key) {
			t.Errorf("prompt missing key %q", key)
		}
	}
	if !strings.Contains(prompt, "Concrete C30/37, exposure XC4") {
		t.Error("prompt must embed the drawing text")
	}
}
