// Command seed-saf populates a SAF emissions database with a small
// realistic sample set so a fresh checkout can render the dashboard.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/skyfuel-data/saf.report/internal/db"
	"github.com/skyfuel-data/saf.report/internal/saf"
)

var (
	dbDriver      = flag.String("db-driver", "sqlite", "Database driver: sqlite or postgres")
	dbPath        = flag.String("db", "saf.db", "SQLite file path or Postgres DSN")
	migrationsDir = flag.String("migrations", "migrations", "Migrations directory")
)

// sampleRecords covers four certified SAF pathways under three test
// conditions each, with plausible emissions figures.
func sampleRecords() []saf.TestRecord {
	type pathway struct {
		fuel        string
		composition map[string]float64
		co2Base     float64
		noxBase     float64
		pmBase      float64
		effBase     float64
		costBase    float64
		thrust      float64
		flightRange float64
		payload     float64
		compliant   []string
	}
	pathways := []pathway{
		{
			fuel:        "HEFA-SPK",
			composition: map[string]float64{"n-Paraffins": 0.18, "Iso-paraffins": 0.67, "Cycloparaffins": 0.13, "Aromatics": 0.02},
			co2Base:     2080, noxBase: 8.4, pmBase: 11, effBase: 98.1, costBase: 135,
			thrust: 96, flightRange: 5400, payload: 18.5,
			compliant: []string{saf.StatusCompliant, saf.StatusCompliant, "Non-Compliant"},
		},
		{
			fuel:        "ATJ-SPK",
			composition: map[string]float64{"Iso-paraffins": 0.94, "Cycloparaffins": 0.05, "Aromatics": 0.01},
			co2Base:     2050, noxBase: 7.9, pmBase: 9, effBase: 97.6, costBase: 162,
			thrust: 93, flightRange: 5150, payload: 17.8,
			compliant: []string{saf.StatusCompliant, "Pending", saf.StatusCompliant},
		},
		{
			fuel:        "FT-SPK",
			composition: map[string]float64{"n-Paraffins": 0.32, "Iso-paraffins": 0.55, "Cycloparaffins": 0.13},
			co2Base:     2120, noxBase: 9.1, pmBase: 13, effBase: 97.9, costBase: 148,
			thrust: 95, flightRange: 5300, payload: 18.1,
			compliant: []string{saf.StatusCompliant, "Non-Compliant", saf.StatusCompliant},
		},
		{
			fuel:        "HFS-SIP",
			composition: map[string]float64{"Farnesane": 0.90, "Iso-paraffins": 0.10},
			co2Base:     2150, noxBase: 9.8, pmBase: 16, effBase: 97.2, costBase: 189,
			thrust: 91, flightRange: 4900, payload: 17.2,
			compliant: []string{"Pending", saf.StatusCompliant, "Non-Compliant"},
		},
	}
	conditions := []string{"Sea Level Static", "Cruise Altitude", "Cold Start"}

	var records []saf.TestRecord
	for _, p := range pathways {
		for i, cond := range conditions {
			drift := float64(i)
			records = append(records, saf.TestRecord{
				FuelType:             p.fuel,
				Composition:          p.composition,
				CO2Emission:          p.co2Base + 15*drift,
				NOxEmission:          p.noxBase + 0.6*drift,
				ParticulateMatter:    p.pmBase + 1.5*drift,
				CombustionEfficiency: p.effBase - 0.4*drift,
				ResidueFormation:     2.0 + 0.8*drift,
				CostPerUnitReduction: p.costBase + 6*drift,
				TestConditions:       cond,
				Thrust:               p.thrust - drift,
				FlightRange:          p.flightRange - 40*drift,
				PayloadCapacity:      p.payload - 0.2*drift,
				ComplianceStatus:     p.compliant[i],
			})
		}
	}
	return records
}

func main() {
	flag.Parse()

	database, err := db.NewDB(*dbDriver, *dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if err := database.MigrateUp(*migrationsDir); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	ctx := context.Background()
	records := sampleRecords()
	for i := range records {
		if err := database.InsertTestRecord(ctx, &records[i]); err != nil {
			log.Fatalf("failed to insert record %d: %v", i, err)
		}
	}
	log.Printf("seeded %d SAF test records", len(records))
}
