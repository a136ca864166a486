package saf

import (
	"math"
	"testing"
)

func sampleRecords() []TestRecord {
	return []TestRecord{
		{
			FuelType:         "HEFA-SPK",
			TestConditions:   "Sea Level",
			Composition:      map[string]float64{"Paraffins": 0.85, "Aromatics": 0.15},
			Thrust:           10, FlightRange: 20, PayloadCapacity: 5,
			ComplianceStatus: StatusCompliant,
		},
		{
			FuelType:         "ATJ-SPK",
			TestConditions:   "Cruise",
			Composition:      map[string]float64{"Iso-paraffins": 1.0},
			Thrust:           8, FlightRange: 16, PayloadCapacity: 4,
			ComplianceStatus: "Non-Compliant",
		},
		{
			FuelType:         "HEFA-SPK",
			TestConditions:   "Cruise",
			Composition:      map[string]float64{"Paraffins": 0.60, "Aromatics": 0.40},
			Thrust:           14, FlightRange: 24, PayloadCapacity: 7,
			ComplianceStatus: "Non-Compliant",
		},
	}
}

func TestFuelTypes_FirstSeenOrder(t *testing.T) {
	store := NewRecordStore(sampleRecords())

	fuels := store.FuelTypes()
	if len(fuels) != 2 {
		t.Fatalf("expected 2 fuel types, got %d", len(fuels))
	}
	if fuels[0] != "HEFA-SPK" || fuels[1] != "ATJ-SPK" {
		t.Errorf("expected first-seen order [HEFA-SPK ATJ-SPK], got %v", fuels)
	}
	if store.DefaultFuel() != "HEFA-SPK" {
		t.Errorf("default fuel should be the first-seen type, got %q", store.DefaultFuel())
	}
}

func TestDefaultFuel_EmptyStore(t *testing.T) {
	store := NewRecordStore(nil)
	if store.DefaultFuel() != "" {
		t.Errorf("empty store should have no default fuel")
	}
	if store.Len() != 0 {
		t.Errorf("empty store length should be 0")
	}
}

func TestByFuel(t *testing.T) {
	store := NewRecordStore(sampleRecords())

	matches := store.ByFuel("HEFA-SPK")
	if len(matches) != 2 {
		t.Fatalf("expected 2 HEFA-SPK records, got %d", len(matches))
	}
	// Load order must be preserved: Sea Level row first.
	if matches[0].TestConditions != "Sea Level" || matches[1].TestConditions != "Cruise" {
		t.Errorf("ByFuel changed load order: %v, %v", matches[0].TestConditions, matches[1].TestConditions)
	}

	if got := store.ByFuel("Jet A-1"); len(got) != 0 {
		t.Errorf("unknown fuel should yield no records, got %d", len(got))
	}
}

func TestHasFuel(t *testing.T) {
	store := NewRecordStore(sampleRecords())
	if !store.HasFuel("ATJ-SPK") {
		t.Error("expected ATJ-SPK to be present")
	}
	if store.HasFuel("Jet A-1") {
		t.Error("did not expect Jet A-1 to be present")
	}
}

func TestFirstComposition(t *testing.T) {
	store := NewRecordStore(sampleRecords())

	comp, ok := store.FirstComposition("HEFA-SPK")
	if !ok {
		t.Fatal("expected a composition for HEFA-SPK")
	}
	// The first matching record wins even though a later HEFA-SPK row
	// carries a different mixture.
	if comp["Paraffins"] != 0.85 {
		t.Errorf("expected first record's composition, got %v", comp)
	}

	if _, ok := store.FirstComposition("Jet A-1"); ok {
		t.Error("unknown fuel should have no composition")
	}
}

func TestMeanPerformance(t *testing.T) {
	store := NewRecordStore(sampleRecords())

	means := MeanPerformance(store.ByFuel("HEFA-SPK"))
	if means.Count != 2 {
		t.Fatalf("expected 2 records in the mean, got %d", means.Count)
	}
	if means.Thrust != 12 || means.FlightRange != 22 || means.PayloadCapacity != 6 {
		t.Errorf("expected means (12, 22, 6), got (%v, %v, %v)",
			means.Thrust, means.FlightRange, means.PayloadCapacity)
	}

	// A single matching record yields its raw values.
	single := MeanPerformance(store.ByFuel("ATJ-SPK"))
	if single.Thrust != 8 || single.FlightRange != 16 || single.PayloadCapacity != 4 {
		t.Errorf("single-record means should equal raw values, got %+v", single)
	}
}

func TestMeanPerformance_Empty(t *testing.T) {
	means := MeanPerformance(nil)
	if means.Count != 0 {
		t.Errorf("expected zero count, got %d", means.Count)
	}
	if math.IsNaN(means.Thrust) || means.Thrust != 0 {
		t.Errorf("empty mean must be 0, not NaN: %v", means.Thrust)
	}
}

func TestCompliantCount(t *testing.T) {
	store := NewRecordStore(sampleRecords())
	if got := CompliantCount(store.ByFuel("HEFA-SPK")); got != 1 {
		t.Errorf("expected 1 compliant HEFA-SPK record, got %d", got)
	}
	if got := CompliantCount(store.ByFuel("ATJ-SPK")); got != 0 {
		t.Errorf("expected 0 compliant ATJ-SPK records, got %d", got)
	}
}
