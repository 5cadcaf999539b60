package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aaraainfra/weekly-mis/internal/domain"
	"github.com/aaraainfra/weekly-mis/internal/repository"
)

// currentReportID pins the singleton row. A fuller system would key reports
// by week; this one keeps a single "current week" document, matching the
// weekly_reports table it was built against.
const currentReportID = 1

type ReportRepository struct {
	db *DB
}

func NewReportRepository(db *DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Get reads the current report document from its fixed row.
func (r *ReportRepository) Get(ctx context.Context) (*domain.WeeklyData, error) {
	var payload []byte
	query := `SELECT report_data FROM weekly_reports WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, currentReportID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query weekly report: %w", err)
	}

	var doc domain.WeeklyData
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decode weekly report: %w", err)
	}

	return &doc, nil
}

// Upsert writes the whole document into the fixed row: update when present,
// insert when absent. Existence check and write share one transaction so the
// first two saves cannot both insert.
func (r *ReportRepository) Upsert(ctx context.Context, doc *domain.WeeklyData) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode weekly report: %w", err)
	}

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var exists bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM weekly_reports WHERE id = $1)`,
			currentReportID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check weekly report row: %w", err)
		}

		if exists {
			_, err = tx.ExecContext(ctx,
				`UPDATE weekly_reports SET report_data = $1, updated_at = $2 WHERE id = $3`,
				payload, time.Now().UTC(), currentReportID,
			)
			if err != nil {
				return fmt.Errorf("update weekly report: %w", err)
			}
			return nil
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO weekly_reports (id, report_data, updated_at) VALUES ($1, $2, $3)`,
			currentReportID, payload, time.Now().UTC(),
		)
		if err != nil {
			return fmt.Errorf("insert weekly report: %w", err)
		}
		return nil
	})
}

// Ping probes the connection pool.
func (r *ReportRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return r.db.PingContext(ctx)
}
