package quran

import (
	"fmt"
	"time"
)

// Achievement labels, awarded the first time a counter lands exactly on the
// trigger value. Streak milestones take priority over totals and at most one
// fires per completion.
const (
	AchievementWeekWarrior     = "Week Warrior"
	AchievementMonthMaster     = "Month Master"
	AchievementCenturyChampion = "Century Champion"
	AchievementHundredVerses   = "Hundred Verses"
	AchievementThousandVerses  = "Thousand Verses"
)

// RecordCompletion computes the streak and total after a lesson completion.
//
// Streak transitions by calendar-day delta between the last completion and
// today: no prior completion starts a streak at 1; same-day completions leave
// it unchanged; exactly one day extends it; two or more days (and clock skew
// where the last completion is in the future) reset it to 1.
//
// The result is purely computed. The caller persists NewStreak/NewTotal, sets
// lastCompletedDate to today, and applies longestStreak = max(longest, new).
func RecordCompletion(streak StreakState, versesCompleted int, today time.Time) (*ProgressUpdate, error) {
	if versesCompleted < 0 {
		return nil, fmt.Errorf("%w: verses completed must be non-negative, got %d", ErrInvalidInput, versesCompleted)
	}

	newStreak := 1
	if streak.LastCompletedDate != nil {
		switch daysBetween(*streak.LastCompletedDate, today) {
		case 0:
			newStreak = streak.CurrentStreak
		case 1:
			newStreak = streak.CurrentStreak + 1
		}
	}

	newTotal := streak.TotalVersesCompleted + versesCompleted

	var achievement string
	switch {
	case newStreak == 7:
		achievement = AchievementWeekWarrior
	case newStreak == 30:
		achievement = AchievementMonthMaster
	case newStreak == 100:
		achievement = AchievementCenturyChampion
	case newTotal == 100:
		achievement = AchievementHundredVerses
	case newTotal == 1000:
		achievement = AchievementThousandVerses
	}

	return &ProgressUpdate{
		VersesCompleted: versesCompleted,
		NewStreak:       newStreak,
		NewTotal:        newTotal,
		Achievement:     achievement,
	}, nil
}

// daysBetween counts whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}
