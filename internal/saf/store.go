package saf

import "gonum.org/v1/gonum/stat"

// RecordStore holds the full loaded record set for the process lifetime.
// It is read-only after construction, so it may be shared between request
// handlers without synchronisation.
type RecordStore struct {
	records   []TestRecord
	fuelTypes []string
}

// NewRecordStore builds a store over the loaded records. Fuel types are
// remembered in first-seen order; that order drives the selector options
// and the default selection.
func NewRecordStore(records []TestRecord) *RecordStore {
	s := &RecordStore{records: records}
	seen := make(map[string]bool, 8)
	for _, r := range records {
		if !seen[r.FuelType] {
			seen[r.FuelType] = true
			s.fuelTypes = append(s.fuelTypes, r.FuelType)
		}
	}
	return s
}

// Len returns the total number of loaded records.
func (s *RecordStore) Len() int { return len(s.records) }

// Records returns the full record set in load order. Callers must not
// modify the returned slice.
func (s *RecordStore) Records() []TestRecord { return s.records }

// FuelTypes returns the distinct fuel types in first-seen order. The
// first entry is the dashboard's default selection.
func (s *RecordStore) FuelTypes() []string { return s.fuelTypes }

// DefaultFuel returns the selector's default option, or "" for an empty
// store.
func (s *RecordStore) DefaultFuel() string {
	if len(s.fuelTypes) == 0 {
		return ""
	}
	return s.fuelTypes[0]
}

// HasFuel reports whether any record matches the fuel type.
func (s *RecordStore) HasFuel(fuel string) bool {
	for _, ft := range s.fuelTypes {
		if ft == fuel {
			return true
		}
	}
	return false
}

// ByFuel returns the records matching a fuel type, preserving load
// order. An unknown fuel yields an empty slice, never an error.
func (s *RecordStore) ByFuel(fuel string) []TestRecord {
	var out []TestRecord
	for _, r := range s.records {
		if r.FuelType == fuel {
			out = append(out, r)
		}
	}
	return out
}

// FirstComposition returns the composition mapping of the first record
// matching the fuel type. Compositions are assumed constant per fuel
// type, so the first match stands in for all of them; the second return
// is false when no record matches.
func (s *RecordStore) FirstComposition(fuel string) (map[string]float64, bool) {
	for _, r := range s.records {
		if r.FuelType == fuel {
			return r.Composition, true
		}
	}
	return nil, false
}

// PerformanceMeans holds the per-fuel flight performance averages shown
// on the radar chart.
type PerformanceMeans struct {
	Thrust          float64
	FlightRange     float64
	PayloadCapacity float64
	Count           int
}

// MeanPerformance computes arithmetic means of thrust, flight range and
// payload capacity over the given records. Zero records yield zero
// means rather than NaN.
func MeanPerformance(records []TestRecord) PerformanceMeans {
	if len(records) == 0 {
		return PerformanceMeans{}
	}
	thrust := make([]float64, len(records))
	rng := make([]float64, len(records))
	payload := make([]float64, len(records))
	for i, r := range records {
		thrust[i] = r.Thrust
		rng[i] = r.FlightRange
		payload[i] = r.PayloadCapacity
	}
	return PerformanceMeans{
		Thrust:          stat.Mean(thrust, nil),
		FlightRange:     stat.Mean(rng, nil),
		PayloadCapacity: stat.Mean(payload, nil),
		Count:           len(records),
	}
}

// CompliantCount returns how many of the records carry the Compliant
// status.
func CompliantCount(records []TestRecord) int {
	n := 0
	for i := range records {
		if records[i].Compliant() {
			n++
		}
	}
	return n
}
