package service

import (
	"testing"
	"time"

	"flou-backend/internal/entity"

	"github.com/stretchr/testify/assert"
)

func checkinAt(t time.Time) *entity.DailyCheckin {
	return &entity.DailyCheckin{CreatedAt: t}
}

func TestComputeCheckinStreak(t *testing.T) {
	now := time.Date(2026, 3, 12, 15, 30, 0, 0, time.UTC)
	day := func(offset int) time.Time {
		return now.AddDate(0, 0, -offset)
	}

	tests := []struct {
		name     string
		checkins []*entity.DailyCheckin
		expected int
	}{
		{
			name:     "no checkins",
			checkins: nil,
			expected: 0,
		},
		{
			name:     "single checkin today",
			checkins: []*entity.DailyCheckin{checkinAt(day(0))},
			expected: 1,
		},
		{
			name: "three consecutive days ending today",
			checkins: []*entity.DailyCheckin{
				checkinAt(day(0)), checkinAt(day(1)), checkinAt(day(2)),
			},
			expected: 3,
		},
		{
			name: "streak alive when newest is yesterday",
			checkins: []*entity.DailyCheckin{
				checkinAt(day(1)), checkinAt(day(2)),
			},
			expected: 2,
		},
		{
			name:     "streak dead when newest is two days ago",
			checkins: []*entity.DailyCheckin{checkinAt(day(2)), checkinAt(day(3))},
			expected: 0,
		},
		{
			name: "gap breaks the count",
			checkins: []*entity.DailyCheckin{
				checkinAt(day(0)), checkinAt(day(1)), checkinAt(day(3)), checkinAt(day(4)),
			},
			expected: 2,
		},
		{
			name: "multiple checkins same day count once",
			checkins: []*entity.DailyCheckin{
				checkinAt(day(0)), checkinAt(day(0).Add(-2 * time.Hour)), checkinAt(day(1)),
			},
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, computeCheckinStreak(tt.checkins, now))
		})
	}
}