package service

import (
	"time"

	"flou-backend/internal/entity"
)

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// computeCheckinStreak counts consecutive days with at least one check-in,
// ending today or yesterday. A gap of a single missed day (yesterday without
// a check-in today counts; the day before yesterday alone does not) breaks
// the streak.
func computeCheckinStreak(checkins []*entity.DailyCheckin, now time.Time) int {
	if len(checkins) == 0 {
		return 0
	}

	// Collect distinct days, newest first. Checkins arrive ordered by
	// created_at DESC but duplicates within a day are common.
	days := make([]time.Time, 0, len(checkins))
	seen := make(map[time.Time]bool, len(checkins))
	for _, c := range checkins {
		day := dateOf(c.CreatedAt.In(now.Location()))
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}

	today := dateOf(now)
	yesterday := today.AddDate(0, 0, -1)
	if !days[0].Equal(today) && !days[0].Equal(yesterday) {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, -1).Equal(days[i]) {
			streak++
			continue
		}
		break
	}
	return streak
}
