package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aaraainfra/weekly-mis/internal/cache"
	"github.com/aaraainfra/weekly-mis/internal/domain"
	"github.com/aaraainfra/weekly-mis/internal/repository"
	"github.com/rs/zerolog/log"
)

// ReportService mediates all access to the weekly document. The read path
// favors availability: Fetch always hands back something renderable. The
// write path favors correctness signaling: Save never hides a failed write.
type ReportService struct {
	repo  repository.ReportRepository
	cache cache.ReportCache
}

func NewReportService(repo repository.ReportRepository, reportCache cache.ReportCache) *ReportService {
	if reportCache == nil {
		reportCache = cache.NewNoopReportCache()
	}
	return &ReportService{repo: repo, cache: reportCache}
}

// Fetch returns the current weekly document. It never fails: a missing row
// or an unreachable store degrades to the built-in default document, logged
// but invisible to the caller.
func (s *ReportService) Fetch(ctx context.Context) domain.WeeklyData {
	if doc, ok, err := s.cache.Get(ctx); err != nil {
		log.Warn().Err(err).Msg("report cache read failed")
	} else if ok {
		return *doc
	}

	doc, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error().Err(err).Msg("weekly report fetch failed, serving default document")
		}
		return domain.DefaultWeeklyData()
	}

	if err := s.cache.Set(ctx, doc); err != nil {
		log.Warn().Err(err).Msg("report cache write failed")
	}

	return *doc
}

// Save normalizes and persists the whole document. Unlike Fetch it
// propagates failures; the caller keeps its draft and retries.
func (s *ReportService) Save(ctx context.Context, doc domain.WeeklyData) error {
	doc.Normalize()

	if err := s.repo.Upsert(ctx, &doc); err != nil {
		return fmt.Errorf("save weekly report: %w", err)
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("report cache invalidation failed")
	}
	if err := s.cache.Set(ctx, &doc); err != nil {
		log.Warn().Err(err).Msg("report cache refresh failed")
	}

	return nil
}

// SaveFinance merges only the finance section into the stored document and
// persists the result. This is the restricted save available to the finance
// role.
func (s *ReportService) SaveFinance(ctx context.Context, finance domain.FinanceData) (domain.WeeklyData, error) {
	doc := s.Fetch(ctx)
	doc.Finance = finance

	if err := s.Save(ctx, doc); err != nil {
		return domain.WeeklyData{}, err
	}

	return doc, nil
}

// CheckConnection reports storage reachability for the status indicator.
// Advisory only: Fetch and Save never consult it.
func (s *ReportService) CheckConnection(ctx context.Context) bool {
	if err := s.repo.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("storage connection probe failed")
		return false
	}
	return true
}
