package gormdb

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/odryna/blog-platform/backend/internal/models"
)

type AnalyticsRepo struct {
	db *gorm.DB
}

func NewAnalyticsRepo(db *gorm.DB) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

type dailyRow struct {
	Day     time.Time
	Total   int
	Blocked int
}

// DailyCommentBreakdown groups comment counts by calendar day. Days with no
// comments are simply absent from the result.
func (r *AnalyticsRepo) DailyCommentBreakdown(ctx context.Context, from, to *time.Time) ([]models.DailyCommentStats, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("created_at::date AS day, COUNT(*) AS total, SUM(CASE WHEN is_blocked THEN 1 ELSE 0 END) AS blocked")

	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		// to is a calendar date; include the whole day
		q = q.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	var rows []dailyRow
	if err := q.Group("created_at::date").Order("day asc").Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := make([]models.DailyCommentStats, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, models.DailyCommentStats{
			Date:            row.Day.Format("2006-01-02"),
			TotalComments:   row.Total,
			BlockedComments: row.Blocked,
		})
	}
	return stats, nil
}
