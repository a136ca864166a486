// Package api exposes the record set as JSON for tooling and the
// dashboard's own debugging.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/skyfuel-data/saf.report/internal/saf"
	"github.com/skyfuel-data/saf.report/internal/units"
)

type Server struct {
	store *saf.RecordStore
	units string
}

// NewServer creates an API server over the loaded record set. units is
// the default emission unit for responses; see the units package.
func NewServer(store *saf.RecordStore, defaultUnits string) *Server {
	if !units.IsValid(defaultUnits) {
		defaultUnits = units.GPerKG
	}
	return &Server{store: store, units: defaultUnits}
}

// ServeMux returns the API routing table, intended to be mounted under
// /api/.
func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/fuels", s.listFuels)
	mux.HandleFunc("/records", s.listRecords)
	mux.HandleFunc("/summary", s.fuelSummary)
	return mux
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// requestUnits resolves the emission units for a request. Invalid
// values are rejected rather than silently defaulted so callers notice
// typos.
func (s *Server) requestUnits(r *http.Request) (string, error) {
	u := r.URL.Query().Get("units")
	if u == "" {
		return s.units, nil
	}
	if !units.IsValid(u) {
		return "", fmt.Errorf("invalid units %q (valid: %s)", u, units.GetValidUnitsString())
	}
	return u, nil
}

func (s *Server) listFuels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	fuels := s.store.FuelTypes()
	s.writeJSON(w, map[string]any{
		"fuels":   fuels,
		"default": s.store.DefaultFuel(),
	})
}

// recordAPI is the JSON shape of one test record.
type recordAPI struct {
	TestID               string             `json:"test_id"`
	FuelType             string             `json:"fuel_type"`
	Composition          map[string]float64 `json:"composition"`
	CO2Emission          float64            `json:"co2_emission"`
	NOxEmission          float64            `json:"nox_emission"`
	ParticulateMatter    float64            `json:"particulate_matter"`
	CombustionEfficiency float64            `json:"combustion_efficiency"`
	ResidueFormation     float64            `json:"residue_formation"`
	CostPerUnitReduction float64            `json:"cost_per_unit_reduction"`
	TestConditions       string             `json:"test_conditions"`
	Thrust               float64            `json:"thrust"`
	FlightRange          float64            `json:"flight_range"`
	PayloadCapacity      float64            `json:"payload_capacity"`
	ComplianceStatus     string             `json:"compliance_status"`
	EmissionUnits        string             `json:"emission_units"`
}

func toRecordAPI(r saf.TestRecord, emissionUnits string) recordAPI {
	return recordAPI{
		TestID:               r.TestID,
		FuelType:             r.FuelType,
		Composition:          r.Composition,
		CO2Emission:          units.ConvertEmission(r.CO2Emission, emissionUnits),
		NOxEmission:          units.ConvertEmission(r.NOxEmission, emissionUnits),
		ParticulateMatter:    r.ParticulateMatter,
		CombustionEfficiency: r.CombustionEfficiency,
		ResidueFormation:     r.ResidueFormation,
		CostPerUnitReduction: r.CostPerUnitReduction,
		TestConditions:       r.TestConditions,
		Thrust:               r.Thrust,
		FlightRange:          r.FlightRange,
		PayloadCapacity:      r.PayloadCapacity,
		ComplianceStatus:     r.ComplianceStatus,
		EmissionUnits:        emissionUnits,
	}
}

// listRecords returns the records for one fuel type (?fuel=), or the
// whole set when no fuel is given. Gaseous emissions are converted to
// the requested units.
func (s *Server) listRecords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	emissionUnits, err := s.requestUnits(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records := s.store.Records()
	if fuel := r.URL.Query().Get("fuel"); fuel != "" {
		records = s.store.ByFuel(fuel)
	}

	out := make([]recordAPI, 0, len(records))
	for _, rec := range records {
		out = append(out, toRecordAPI(rec, emissionUnits))
	}
	s.writeJSON(w, out)
}

// fuelSummary returns per-fuel aggregates: flight performance means
// and the compliance count feeding the gauge.
func (s *Server) fuelSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	fuel := r.URL.Query().Get("fuel")
	if fuel == "" {
		fuel = s.store.DefaultFuel()
	}
	if !s.store.HasFuel(fuel) {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("unknown fuel type %q", fuel))
		return
	}

	matches := s.store.ByFuel(fuel)
	means := saf.MeanPerformance(matches)
	s.writeJSON(w, map[string]any{
		"fuel":              fuel,
		"records":           len(matches),
		"compliant":         saf.CompliantCount(matches),
		"mean_thrust":       means.Thrust,
		"mean_flight_range": means.FlightRange,
		"mean_payload":      means.PayloadCapacity,
	})
}
