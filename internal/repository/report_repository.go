package repository

import (
	"context"
	"errors"

	"github.com/aaraainfra/weekly-mis/internal/domain"
)

// ErrNotFound is returned by Get when the singleton report row does not
// exist yet. It is an expected condition, not a storage failure.
var ErrNotFound = errors.New("weekly report not found")

// ReportRepository persists the single current-week document.
type ReportRepository interface {
	// Get reads the stored document, or ErrNotFound when no row exists.
	Get(ctx context.Context) (*domain.WeeklyData, error)
	// Upsert replaces the stored document, inserting the row on first save.
	Upsert(ctx context.Context, doc *domain.WeeklyData) error
	// Ping probes storage liveness. Advisory only; Get and Upsert do not
	// consult it.
	Ping(ctx context.Context) error
}
