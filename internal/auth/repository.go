package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/quran-quest/quran-quest-api/internal/database"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInternalServer     = errors.New("internal server error")
)

const userColumns = `
	id, email, username, password,
	daily_ayats, learning_mode, preferred_language, timezone,
	current_surah, current_verse, current_streak, longest_streak,
	total_verses_completed, last_completed_date,
	created_at, updated_at, is_active
`

// Repository defines the methods the Auth module provides for DB operations.
type Repository interface {
	CreateUser(ctx context.Context, user User) (*User, error)
	GetUserByID(ctx context.Context, userID int) (*User, error)
	GetUserByLogin(ctx context.Context, emailOrUsername string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	UpdateUserProfile(ctx context.Context, userID int, req UpdateProfileRequest) (*User, error)
	GetStats(ctx context.Context) (*Stats, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(dbService database.Service) Repository {
	return &repository{db: dbService.DB()}
}

func scanUser(row *sql.Row) (*User, error) {
	var u User
	var lastCompleted sql.NullTime
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.Password,
		&u.DailyAyats, &u.LearningMode, &u.PreferredLanguage, &u.Timezone,
		&u.CurrentSurah, &u.CurrentVerse, &u.CurrentStreak, &u.LongestStreak,
		&u.TotalVersesCompleted, &lastCompleted,
		&u.CreatedAt, &u.UpdatedAt, &u.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if lastCompleted.Valid {
		t := lastCompleted.Time
		u.LastCompletedDate = &t
	}
	return &u, nil
}

func (r *repository) CreateUser(ctx context.Context, user User) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	// Check if email or username exists
	var exists bool
	checkQuery := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 OR username = $2)`
	err := r.db.QueryRowContext(ctx, checkQuery, user.Email, user.Username).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	query := `
		INSERT INTO users (email, username, password, daily_ayats, learning_mode, preferred_language)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	row := r.db.QueryRowContext(ctx, query,
		user.Email, user.Username, user.Password,
		user.DailyAyats, user.LearningMode, user.PreferredLanguage,
	)
	return scanUser(row)
}

func (r *repository) GetUserByID(ctx context.Context, userID int) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND is_active = TRUE`
	return scanUser(r.db.QueryRowContext(ctx, query, userID))
}

func (r *repository) GetUserByLogin(ctx context.Context, emailOrUsername string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE (email = $1 OR username = $1) AND is_active = TRUE`
	return scanUser(r.db.QueryRowContext(ctx, query, emailOrUsername))
}

func (r *repository) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND is_active = TRUE`
	return scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *repository) UpdateUserProfile(ctx context.Context, userID int, req UpdateProfileRequest) (*User, error) {
	// COALESCE/NULLIF keep unset fields untouched so partial updates work.
	query := `
		UPDATE users SET
			username = COALESCE(NULLIF($2, ''), username),
			daily_ayats = CASE WHEN $3 > 0 THEN $3 ELSE daily_ayats END,
			learning_mode = COALESCE(NULLIF($4, ''), learning_mode),
			preferred_language = COALESCE(NULLIF($5, ''), preferred_language),
			timezone = COALESCE(NULLIF($6, ''), timezone),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns

	row := r.db.QueryRowContext(ctx, query, userID,
		req.Username, req.DailyAyats, req.LearningMode, req.PreferredLanguage, req.Timezone)
	return scanUser(row)
}

func (r *repository) GetStats(ctx context.Context) (*Stats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE last_completed_date >= CURRENT_DATE),
			COALESCE(SUM(total_verses_completed), 0),
			COALESCE(ROUND(AVG(current_streak), 2), 0)
		FROM users
		WHERE is_active = TRUE
	`

	var s Stats
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.TotalUsers, &s.ActiveUsersToday, &s.TotalVersesCompleted, &s.AverageStreak)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
