package llm

import (
	"testing"

	"cscreen/pkg/schema"
)

func TestLoadFixtureEPD(t *testing.T) {
	fixture, err := LoadFixture("epd_extraction")
	if err != nil {
		t.Fatalf("failed to load fixture: %v", err)
	}

	var decl schema.ProductDeclaration
	if err := fixture.UnmarshalOutput(&decl); err != nil {
		t.Fatalf("failed to unmarshal output: %v", err)
	}

	if err := schema.ValidateDeclaration(&decl); err != nil {
		t.Errorf("recorded declaration should validate: %v", err)
	}
	if decl.Density == nil || *decl.Density != 2400 {
		t.Errorf("unexpected density: %+v", decl.Density)
	}
	if len(decl.MatComp) != 4 {
		t.Errorf("expected 4 fractions, got %d", len(decl.MatComp))
	}
}

func TestLoadFixtureConstraints(t *testing.T) {
	fixture, err := LoadFixture("constraint_extraction")
	if err != nil {
		t.Fatalf("failed to load fixture: %v", err)
	}

	var user schema.UserConstraints
	if err := fixture.UnmarshalOutput(&user); err != nil {
		t.Fatalf("failed to unmarshal output: %v", err)
	}

	if user.MaxWCRatio == nil || *user.MaxWCRatio != 0.45 {
		t.Errorf("unexpected max_w_c_ratio: %+v", user.MaxWCRatio)
	}
	if user.MaxAggregateSize != nil {
		t.Error("null fixture field must stay nil")
	}
}

func TestLoadFixtureDrawing(t *testing.T) {
	fixture, err := LoadFixture("drawing_extraction")
	if err != nil {
		t.Fatalf("failed to load fixture: %v", err)
	}

	var drawing schema.DrawingConstraints
	if err := fixture.UnmarshalOutput(&drawing); err != nil {
		t.Fatalf("failed to unmarshal output: %v", err)
	}

	if err := schema.ValidateDrawingConstraints(&drawing); err != nil {
		t.Errorf("recorded drawing constraints should validate: %v", err)
	}
	if len(drawing.DrawingExposureClasses) != 2 {
		t.Errorf("expected 2 exposure classes, got %v", drawing.DrawingExposureClasses)
	}
}

func TestLoadFixtureMissing(t *testing.T) {
	if _, err := LoadFixture("does_not_exist"); err == nil {
		t.Error("expected error for missing fixture")
	}
}
