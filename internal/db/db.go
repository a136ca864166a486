// Package db is the database/sql layer over the saf_emissions_data
// table. SQLite (modernc.org/sqlite) is the default driver; PostgreSQL
// (lib/pq) is supported for deployments that keep the test records in
// the production warehouse.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/skyfuel-data/saf.report/internal/saf"
)

// Driver names accepted by NewDB.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type DB struct {
	*sql.DB
	driver string
}

// NewDB opens a database handle for the given driver and DSN. For
// SQLite the DSN is the database file path. The schema is managed by
// migrations, not here; call MigrateUp before loading.
func NewDB(driver, dsn string) (*DB, error) {
	switch driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	return &DB{DB: sqlDB, driver: driver}, nil
}

// Driver returns the driver name the handle was opened with.
func (db *DB) Driver() string { return db.driver }

// loadQuery is the fixed projection the dashboard loads once at
// startup. flight_range maps to the original data set's "range" column;
// the word is reserved in too many places to keep.
const loadQuery = `
	SELECT
		test_id,
		fuel_type,
		composition,
		co2_emission,
		nox_emission,
		particulate_matter,
		combustion_efficiency,
		residue_formation,
		cost_per_unit_reduction,
		test_conditions,
		thrust,
		flight_range,
		payload_capacity,
		compliance_status,
		recorded_at
	FROM saf_emissions_data
	ORDER BY recorded_at, test_id`

// LoadTestRecords executes the projection query and decodes every
// composition column eagerly. Any connection, scan or decode failure is
// returned as an error; the caller treats it as fatal because the
// dashboard cannot serve without the full record set.
func (db *DB) LoadTestRecords(ctx context.Context) ([]saf.TestRecord, error) {
	rows, err := db.QueryContext(ctx, loadQuery)
	if err != nil {
		return nil, fmt.Errorf("query saf_emissions_data: %w", err)
	}
	defer rows.Close()

	var records []saf.TestRecord
	for rows.Next() {
		var (
			r           saf.TestRecord
			composition string
			recordedAt  sql.NullTime
		)
		if err := rows.Scan(
			&r.TestID,
			&r.FuelType,
			&composition,
			&r.CO2Emission,
			&r.NOxEmission,
			&r.ParticulateMatter,
			&r.CombustionEfficiency,
			&r.ResidueFormation,
			&r.CostPerUnitReduction,
			&r.TestConditions,
			&r.Thrust,
			&r.FlightRange,
			&r.PayloadCapacity,
			&r.ComplianceStatus,
			&recordedAt,
		); err != nil {
			return nil, fmt.Errorf("scan saf_emissions_data row: %w", err)
		}
		if recordedAt.Valid {
			r.RecordedAt = recordedAt.Time
		}
		r.Composition, err = saf.ParseComposition(composition)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", r.TestID, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// InsertTestRecord writes one record, assigning a UUID test_id if the
// record has none. Used by the seed tool and tests; the dashboard never
// writes.
func (db *DB) InsertTestRecord(ctx context.Context, r *saf.TestRecord) error {
	if r.TestID == "" {
		r.TestID = uuid.NewString()
	}
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now().UTC()
	}
	composition := saf.FormatComposition(r.Composition)

	query := `
		INSERT INTO saf_emissions_data (
			test_id, fuel_type, composition,
			co2_emission, nox_emission, particulate_matter,
			combustion_efficiency, residue_formation, cost_per_unit_reduction,
			test_conditions, thrust, flight_range, payload_capacity,
			compliance_status, recorded_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if db.driver == DriverPostgres {
		query = `
		INSERT INTO saf_emissions_data (
			test_id, fuel_type, composition,
			co2_emission, nox_emission, particulate_matter,
			combustion_efficiency, residue_formation, cost_per_unit_reduction,
			test_conditions, thrust, flight_range, payload_capacity,
			compliance_status, recorded_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	}

	_, err := db.ExecContext(ctx, query,
		r.TestID, r.FuelType, composition,
		r.CO2Emission, r.NOxEmission, r.ParticulateMatter,
		r.CombustionEfficiency, r.ResidueFormation, r.CostPerUnitReduction,
		r.TestConditions, r.Thrust, r.FlightRange, r.PayloadCapacity,
		r.ComplianceStatus, r.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("insert test record: %w", err)
	}
	return nil
}
