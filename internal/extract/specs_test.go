package extract

import (
	"strings"
	"testing"
)

func TestTechSpecExtractor_MaterialsAndStandards(t *testing.T) {
	e := NewTechSpecExtractor()

	got := e.Extract("Zábradlí z oceli, povrchová úprava pozink, svary dle ISO 9001.")

	if len(got.Materials) != 2 {
		t.Fatalf("Expected 2 materials, got %d: %+v", len(got.Materials), got.Materials)
	}
	if !strings.EqualFold(got.Materials[0].Material, "ocel") {
		t.Errorf("Expected ocel, got %s", got.Materials[0].Material)
	}
	if !strings.EqualFold(got.Materials[1].Material, "pozink") {
		t.Errorf("Expected pozink, got %s", got.Materials[1].Material)
	}

	if len(got.Standards) != 1 {
		t.Fatalf("Expected 1 standard, got %d: %+v", len(got.Standards), got.Standards)
	}
	if got.Standards[0].Standard != "ISO 9001" {
		t.Errorf("Expected ISO 9001, got %s", got.Standards[0].Standard)
	}
}

func TestTechSpecExtractor_CzechStandardCode(t *testing.T) {
	e := NewTechSpecExtractor()

	got := e.Extract("Tepelná ochrana budov dle ČSN 73 0540")

	if len(got.Standards) != 1 {
		t.Fatalf("Expected 1 standard, got %d: %+v", len(got.Standards), got.Standards)
	}
	if got.Standards[0].Standard != "ČSN 73 0540" {
		t.Errorf("Expected ČSN 73 0540, got %s", got.Standards[0].Standard)
	}
}

func TestTechSpecExtractor_SteelGradeIsMaterial(t *testing.T) {
	e := NewTechSpecExtractor()

	got := e.Extract("Nosníky z materiálu S355")

	var found bool
	for _, m := range got.Materials {
		if m.Material == "S355" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected steel grade S355 among materials, got %+v", got.Materials)
	}
}

func TestTechSpecExtractor_EmptyShape(t *testing.T) {
	e := NewTechSpecExtractor()

	got := e.Extract("Bez technických údajů.")

	if got.Materials == nil || got.Standards == nil ||
		got.Certifications == nil || got.TechnicalParameters == nil {
		t.Error("Expected empty but non-nil spec slices")
	}
	if len(got.Materials) != 0 || len(got.Standards) != 0 {
		t.Errorf("Expected no materials or standards, got %+v", got)
	}
}
