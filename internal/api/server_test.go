package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/skyfuel-data/saf.report/internal/saf"
	"github.com/skyfuel-data/saf.report/internal/units"
)

func testStore() *saf.RecordStore {
	return saf.NewRecordStore([]saf.TestRecord{
		{
			TestID:           "t1",
			FuelType:         "HEFA-SPK",
			TestConditions:   "Sea Level",
			Composition:      map[string]float64{"Paraffins": 0.85, "Aromatics": 0.15},
			CO2Emission:      2100,
			NOxEmission:      9,
			Thrust:           10, FlightRange: 20, PayloadCapacity: 5,
			ComplianceStatus: saf.StatusCompliant,
		},
		{
			TestID:           "t2",
			FuelType:         "HEFA-SPK",
			TestConditions:   "Cruise",
			Composition:      map[string]float64{"Paraffins": 0.85, "Aromatics": 0.15},
			CO2Emission:      1950,
			NOxEmission:      7,
			Thrust:           14, FlightRange: 24, PayloadCapacity: 7,
			ComplianceStatus: "Non-Compliant",
		},
		{
			TestID:           "t3",
			FuelType:         "ATJ-SPK",
			TestConditions:   "Cruise",
			Composition:      map[string]float64{"Iso-paraffins": 1.0},
			CO2Emission:      2000,
			Thrust:           8, FlightRange: 16, PayloadCapacity: 4,
			ComplianceStatus: "Pending",
		},
	})
}

func doRequest(t *testing.T, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	mux := NewServer(testStore(), units.GPerKG).ServeMux()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestListFuels(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/fuels")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Fuels   []string `json:"fuels"`
		Default string   `json:"default"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Fuels) != 2 || body.Fuels[0] != "HEFA-SPK" || body.Fuels[1] != "ATJ-SPK" {
		t.Errorf("unexpected fuels %v", body.Fuels)
	}
	if body.Default != "HEFA-SPK" {
		t.Errorf("default should be the first-seen fuel, got %q", body.Default)
	}
}

func TestListFuels_MethodNotAllowed(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/fuels")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestListRecords_ByFuel(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/records?fuel=HEFA-SPK")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var records []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["test_id"] != "t1" || records[1]["test_id"] != "t2" {
		t.Errorf("records out of load order: %v", records)
	}
	if records[0]["co2_emission"].(float64) != 2100 {
		t.Errorf("expected g/kg by default, got %v", records[0]["co2_emission"])
	}
}

func TestListRecords_UnitsConversion(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/records?fuel=HEFA-SPK&units=kgkg")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var records []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got := records[0]["co2_emission"].(float64); got != 2.1 {
		t.Errorf("expected 2.1 kg/kg, got %v", got)
	}
	if got := records[0]["emission_units"]; got != "kgkg" {
		t.Errorf("expected kgkg units marker, got %v", got)
	}
}

func TestListRecords_InvalidUnits(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/records?units=mph")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid units, got %d", rec.Code)
	}
}

func TestListRecords_UnknownFuelIsEmptyList(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/records?fuel=Jet-A1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var records []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty list, got %d records", len(records))
	}
}

func TestFuelSummary(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/summary?fuel=HEFA-SPK")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["records"].(float64) != 2 {
		t.Errorf("expected 2 records, got %v", body["records"])
	}
	if body["compliant"].(float64) != 1 {
		t.Errorf("expected 1 compliant record, got %v", body["compliant"])
	}
	if body["mean_thrust"].(float64) != 12 {
		t.Errorf("expected mean thrust 12, got %v", body["mean_thrust"])
	}
}

func TestFuelSummary_DefaultFuel(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/summary")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["fuel"] != "HEFA-SPK" {
		t.Errorf("expected default fuel summary, got %v", body["fuel"])
	}
}

func TestFuelSummary_UnknownFuel(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/summary?fuel=Jet-A1")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown fuel, got %d", rec.Code)
	}
}
