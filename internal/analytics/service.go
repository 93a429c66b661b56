// Package analytics provides the daily comment breakdown service.
package analytics

import (
	"context"
	"time"

	"github.com/odryna/blog-platform/backend/internal/apperror"
	"github.com/odryna/blog-platform/backend/internal/models"
	"github.com/odryna/blog-platform/backend/internal/repository"
)

const dateLayout = "2006-01-02"

type Service struct {
	repo repository.AnalyticsRepository
}

func NewService(repo repository.AnalyticsRepository) *Service {
	return &Service{repo: repo}
}

// ParseDates parses the optional date_from/date_to query values. Empty
// strings mean an unbounded side; anything that is not YYYY-MM-DD fails
// validation naming the offending field.
func ParseDates(dateFrom, dateTo string) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if dateFrom != "" {
		parsed, err := time.Parse(dateLayout, dateFrom)
		if err != nil {
			return nil, nil, apperror.ValidationFailed("date_from", "date_from must be a date in YYYY-MM-DD format")
		}
		from = &parsed
	}

	if dateTo != "" {
		parsed, err := time.Parse(dateLayout, dateTo)
		if err != nil {
			return nil, nil, apperror.ValidationFailed("date_to", "date_to must be a date in YYYY-MM-DD format")
		}
		to = &parsed
	}

	return from, to, nil
}

// DailyBreakdown returns the sparse per-day comment series for the range.
// A range with no comments yields an empty slice, not nil, so it encodes
// as [] rather than null.
func (s *Service) DailyBreakdown(ctx context.Context, from, to *time.Time) ([]models.DailyCommentStats, error) {
	stats, err := s.repo.DailyCommentBreakdown(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []models.DailyCommentStats{}
	}
	return stats, nil
}
