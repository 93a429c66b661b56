package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odryna/blog-platform/backend/internal/apperror"
	"github.com/odryna/blog-platform/backend/internal/moderation"
	"github.com/odryna/blog-platform/backend/internal/repository/inmemory"
)

func TestParseDates(t *testing.T) {
	from, to, err := ParseDates("2024-05-01", "2024-05-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), *from)
	assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), *to)
}

func TestParseDates_EmptyMeansUnbounded(t *testing.T) {
	from, to, err := ParseDates("", "")
	require.NoError(t, err)
	assert.Nil(t, from)
	assert.Nil(t, to)
}

func TestParseDates_MalformedInputNamesTheField(t *testing.T) {
	tests := []struct {
		dateFrom, dateTo, field string
	}{
		{"05/01/2024", "", "date_from"},
		{"not-a-date", "", "date_from"},
		{"2024-05-01", "2024-13-99", "date_to"},
		{"", "tomorrow", "date_to"},
	}

	for _, tt := range tests {
		_, _, err := ParseDates(tt.dateFrom, tt.dateTo)
		require.ErrorIs(t, err, apperror.ErrValidation)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, tt.field, appErr.Field)
	}
}

func TestDailyBreakdown_EmptyRangeIsNotNil(t *testing.T) {
	store := inmemory.New(moderation.New(nil))
	svc := NewService(store)

	stats, err := svc.DailyBreakdown(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, stats)
	assert.Empty(t, stats)
}
