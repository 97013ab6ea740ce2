package postgres

import (
	"context"
	"database/sql"
	"time"

	"fprsim/domain/core"
	"fprsim/domain/sim"
	"fprsim/internal/errors"
	"fprsim/ports"

	"github.com/jmoiron/sqlx"
)

// ResultRepositoryImpl implements ports.ResultRepository for PostgreSQL
type ResultRepositoryImpl struct {
	db *sqlx.DB
}

var _ ports.ResultRepository = (*ResultRepositoryImpl)(nil)

// NewResultRepository creates a new PostgreSQL result repository
func NewResultRepository(db *sqlx.DB) *ResultRepositoryImpl {
	return &ResultRepositoryImpl{db: db}
}

// resultRow mirrors the simulation_results table
type resultRow struct {
	ID            string    `db:"id"`
	MeanTreatment float64   `db:"mean_treatment"`
	MeanControl   float64   `db:"mean_control"`
	SDTreatment   float64   `db:"sd_treatment"`
	SDControl     float64   `db:"sd_control"`
	Participants  int       `db:"participants"`
	Alpha         float64   `db:"alpha"`
	Trials        int       `db:"trials"`
	Seed          int64     `db:"seed"`
	Significant   int       `db:"significant"`
	EmpiricalRate float64   `db:"empirical_rate"`
	RuntimeMs     int64     `db:"runtime_ms"`
	CreatedAt     time.Time `db:"created_at"`
}

func (r resultRow) toDomain() sim.SimulationResult {
	return sim.SimulationResult{
		RunID: core.RunID(r.ID),
		Spec: sim.PopulationSpec{
			MeanTreatment: r.MeanTreatment,
			MeanControl:   r.MeanControl,
			SDTreatment:   r.SDTreatment,
			SDControl:     r.SDControl,
		},
		Participants:  r.Participants,
		Alpha:         r.Alpha,
		Trials:        r.Trials,
		Seed:          r.Seed,
		Significant:   r.Significant,
		EmpiricalRate: r.EmpiricalRate,
		RuntimeMs:     r.RuntimeMs,
		CreatedAt:     r.CreatedAt,
	}
}

// Migrate creates the simulation_results table if it does not exist
func (r *ResultRepositoryImpl) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS simulation_results (
			id              TEXT PRIMARY KEY,
			mean_treatment  DOUBLE PRECISION NOT NULL,
			mean_control    DOUBLE PRECISION NOT NULL,
			sd_treatment    DOUBLE PRECISION NOT NULL,
			sd_control      DOUBLE PRECISION NOT NULL,
			participants    INTEGER NOT NULL,
			alpha           DOUBLE PRECISION NOT NULL,
			trials          INTEGER NOT NULL,
			seed            BIGINT NOT NULL,
			significant     INTEGER NOT NULL,
			empirical_rate  DOUBLE PRECISION NOT NULL,
			runtime_ms      BIGINT NOT NULL,
			created_at      TIMESTAMPTZ NOT NULL
		)
	`)
	return errors.Wrap(err, "failed to migrate simulation_results")
}

// SaveResult persists one simulation result
func (r *ResultRepositoryImpl) SaveResult(ctx context.Context, result *sim.SimulationResult) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO simulation_results (id, mean_treatment, mean_control, sd_treatment, sd_control,
			participants, alpha, trials, seed, significant, empirical_rate, runtime_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, result.RunID.String(), result.Spec.MeanTreatment, result.Spec.MeanControl,
		result.Spec.SDTreatment, result.Spec.SDControl, result.Participants, result.Alpha,
		result.Trials, result.Seed, result.Significant, result.EmpiricalRate,
		result.RuntimeMs, result.CreatedAt)

	return errors.Wrapf(err, "failed to save simulation result %s", result.RunID)
}

// GetResult retrieves a simulation result by run ID
func (r *ResultRepositoryImpl) GetResult(ctx context.Context, id core.RunID) (*sim.SimulationResult, error) {
	var row resultRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, mean_treatment, mean_control, sd_treatment, sd_control,
			participants, alpha, trials, seed, significant, empirical_rate, runtime_ms, created_at
		FROM simulation_results
		WHERE id = $1
	`, id.String())

	if err == sql.ErrNoRows {
		return nil, core.NewNotFoundError("simulation result", id.String())
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load simulation result %s", id)
	}

	result := row.toDomain()
	return &result, nil
}

// ListResults returns recent simulation results, newest first
func (r *ResultRepositoryImpl) ListResults(ctx context.Context, limit int) ([]sim.SimulationResult, error) {
	if limit < 1 {
		limit = 50
	}

	var rows []resultRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, mean_treatment, mean_control, sd_treatment, sd_control,
			participants, alpha, trials, seed, significant, empirical_rate, runtime_ms, created_at
		FROM simulation_results
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list simulation results")
	}

	results := make([]sim.SimulationResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, row.toDomain())
	}
	return results, nil
}
