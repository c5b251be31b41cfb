package quran

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/quran-quest/quran-quest-api/internal/database"
)

var ErrUserNotFound = errors.New("user not found")

// ReminderTarget is a user due for a daily reminder email.
type ReminderTarget struct {
	UserID        int
	Username      string
	Email         string
	CurrentStreak int
	DailyAyats    int
}

// ProgressRepo persists the per-user reading position and streak snapshot.
// Updates go through single-row statements so concurrent completions for the
// same user cannot interleave partial writes.
type ProgressRepo interface {
	GetUserProgress(ctx context.Context, userID int) (*UserProgress, error)
	ApplyCompletion(ctx context.Context, userID int, next ReadingPosition, update ProgressUpdate, completedAt time.Time) (*UserProgress, error)
	ResetProgress(ctx context.Context, userID int) error
	GetReminderTargets(ctx context.Context) ([]ReminderTarget, error)
}

type repository struct {
	db *sql.DB
}

func NewProgressRepo(dbService database.Service) ProgressRepo {
	return &repository{db: dbService.DB()}
}

func (r *repository) GetUserProgress(ctx context.Context, userID int) (*UserProgress, error) {
	query := `
		SELECT current_surah, current_verse, current_streak, longest_streak,
		       total_verses_completed, last_completed_date, daily_ayats
		FROM users
		WHERE id = $1 AND is_active = TRUE
	`

	var p UserProgress
	var lastCompleted sql.NullTime
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.Position.Surah,
		&p.Position.Verse,
		&p.Streak.CurrentStreak,
		&p.Streak.LongestStreak,
		&p.Streak.TotalVersesCompleted,
		&lastCompleted,
		&p.DailyAyats,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	p.UserID = userID
	if lastCompleted.Valid {
		t := lastCompleted.Time
		p.Streak.LastCompletedDate = &t
	}
	return &p, nil
}

// ApplyCompletion commits a lesson completion in one statement: the streak
// counters, the longest-streak rule, the completion date, and the advanced
// reading cursor.
func (r *repository) ApplyCompletion(ctx context.Context, userID int, next ReadingPosition, update ProgressUpdate, completedAt time.Time) (*UserProgress, error) {
	query := `
		UPDATE users SET
			current_streak = $2,
			longest_streak = GREATEST(longest_streak, $2),
			total_verses_completed = $3,
			last_completed_date = $4,
			current_surah = $5,
			current_verse = $6,
			updated_at = now()
		WHERE id = $1 AND is_active = TRUE
	`

	res, err := r.db.ExecContext(ctx, query, userID,
		update.NewStreak, update.NewTotal, completedAt, next.Surah, next.Verse)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrUserNotFound
	}

	return r.GetUserProgress(ctx, userID)
}

func (r *repository) ResetProgress(ctx context.Context, userID int) error {
	query := `
		UPDATE users SET
			current_surah = 1,
			current_verse = 1,
			current_streak = 0,
			longest_streak = 0,
			total_verses_completed = 0,
			last_completed_date = NULL,
			updated_at = now()
		WHERE id = $1 AND is_active = TRUE
	`

	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// GetReminderTargets lists active users who have not completed a lesson today.
func (r *repository) GetReminderTargets(ctx context.Context) ([]ReminderTarget, error) {
	query := `
		SELECT id, username, email, current_streak, daily_ayats
		FROM users
		WHERE is_active = TRUE
		  AND (last_completed_date IS NULL OR last_completed_date < CURRENT_DATE)
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var targets []ReminderTarget
	for rows.Next() {
		var t ReminderTarget
		if err := rows.Scan(&t.UserID, &t.Username, &t.Email, &t.CurrentStreak, &t.DailyAyats); err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}

	return targets, rows.Err()
}
