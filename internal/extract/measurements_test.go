package extract

import (
	"testing"

	"github.com/jkratochvil/stavex/internal/model"
)

func TestMeasurementExtractor_ThreeDimensional(t *testing.T) {
	e := NewMeasurementExtractor(nil)

	got := e.Extract("Rozměry nádrže: 2500x1200x800 mm")

	// Exactly one measurement per axis; the axis values must not leak
	// into the single-value family.
	if len(got) != 3 {
		t.Fatalf("Expected exactly 3 measurements, got %d: %+v", len(got), got)
	}

	wantKinds := []model.MeasurementKind{model.MeasurementLength, model.MeasurementWidth, model.MeasurementHeight}
	wantValues := []float64{2500, 1200, 800}
	for i, m := range got {
		if m.Kind != wantKinds[i] {
			t.Errorf("measurement %d: expected kind %s, got %s", i, wantKinds[i], m.Kind)
		}
		if m.Value != wantValues[i] {
			t.Errorf("measurement %d: expected value %g, got %g", i, wantValues[i], m.Value)
		}
		if m.Unit != "mm" {
			t.Errorf("measurement %d: expected unit mm, got %s", i, m.Unit)
		}
		if m.Confidence != 0.9 {
			t.Errorf("measurement %d: expected confidence 0.9, got %g", i, m.Confidence)
		}
	}
}

func TestMeasurementExtractor_TwoDimensional(t *testing.T) {
	e := NewMeasurementExtractor(nil)

	got := e.Extract("Deska 600x400 cm dle výkresu")

	if len(got) != 2 {
		t.Fatalf("Expected exactly 2 measurements, got %d: %+v", len(got), got)
	}
	if got[0].Kind != model.MeasurementLength || got[1].Kind != model.MeasurementWidth {
		t.Errorf("Expected length+width, got %s+%s", got[0].Kind, got[1].Kind)
	}
	for i, m := range got {
		if m.Confidence != 0.8 {
			t.Errorf("measurement %d: expected confidence 0.8, got %g", i, m.Confidence)
		}
	}
}

func TestMeasurementExtractor_SingleValueWithDecimalComma(t *testing.T) {
	e := NewMeasurementExtractor(nil)

	got := e.Extract("délka profilu 12,5 m")

	if len(got) != 1 {
		t.Fatalf("Expected 1 measurement, got %d: %+v", len(got), got)
	}
	m := got[0]
	if m.Value != 12.5 {
		t.Errorf("Expected value 12.5, got %g", m.Value)
	}
	if m.Unit != "m" {
		t.Errorf("Expected unit m, got %s", m.Unit)
	}
	if m.Kind != model.MeasurementSingle {
		t.Errorf("Expected single_measurement, got %s", m.Kind)
	}
	if m.Confidence != 0.7 {
		t.Errorf("Expected confidence 0.7, got %g", m.Confidence)
	}
}

func TestMeasurementExtractor_LoadCapacity(t *testing.T) {
	e := NewMeasurementExtractor(nil)

	got := e.Extract("nosnost: 500 kg")

	var found bool
	for _, m := range got {
		if m.Kind == model.MeasurementLoadCapacity && m.Value == 500 && m.Unit == "kg" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a load_capacity measurement of 500 kg, got %+v", got)
	}
}

func TestMeasurementExtractor_Temperature(t *testing.T) {
	e := NewMeasurementExtractor(nil)

	got := e.Extract("provozní teplota -15 °C")

	var found bool
	for _, m := range got {
		if m.Kind == model.MeasurementTemperature && m.Value == -15 {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a temperature measurement of -15, got %+v", got)
	}
}

func TestMeasurementExtractor_ContextWindow(t *testing.T) {
	e := NewMeasurementExtractor(nil)

	got := e.Extract("Maximální nosnost konstrukce je 500 kg podle statického výpočtu.")
	if len(got) == 0 {
		t.Fatal("Expected at least one measurement")
	}
	if got[0].Context == "" {
		t.Error("Expected a non-empty context window")
	}
}

func TestMeasurementExtractor_NoMeasurements(t *testing.T) {
	e := NewMeasurementExtractor(nil)

	got := e.Extract("Tento dokument neobsahuje žádné hodnoty.")
	if len(got) != 0 {
		t.Errorf("Expected no measurements, got %+v", got)
	}
}
