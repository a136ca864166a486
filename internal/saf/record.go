// Package saf holds the domain model for sustainable aviation fuel test
// records: the record type, the composition literal decoder, and the
// in-memory record store the dashboard reads from.
package saf

import "time"

// StatusCompliant is the compliance_status value counted by the
// regulatory compliance gauge.
const StatusCompliant = "Compliant"

// TestRecord is one SAF test observation as stored in the
// saf_emissions_data table. Emissions are g/kg of fuel burned except
// ParticulateMatter (mg/kg); ResidueFormation is mg; cost is USD per
// unit of emission reduction.
type TestRecord struct {
	TestID               string
	FuelType             string
	Composition          map[string]float64
	CO2Emission          float64
	NOxEmission          float64
	ParticulateMatter    float64
	CombustionEfficiency float64
	ResidueFormation     float64
	CostPerUnitReduction float64
	TestConditions       string
	Thrust               float64
	FlightRange          float64
	PayloadCapacity      float64
	ComplianceStatus     string
	RecordedAt           time.Time
}

// Compliant reports whether the record passed regulatory compliance.
func (r *TestRecord) Compliant() bool {
	return r.ComplianceStatus == StatusCompliant
}
