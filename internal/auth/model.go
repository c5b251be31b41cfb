// User model definition
package auth

import "time"

type RegisterRequest struct {
	Email             string `json:"email"`
	Username          string `json:"username"`
	Password          string `json:"password"`
	DailyAyats        int    `json:"daily_ayats"`
	LearningMode      string `json:"learning_mode"`
	PreferredLanguage string `json:"preferred_language"`
}

type LoginRequest struct {
	// Email accepts either the email address or the username.
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Username          string `json:"username"`
	DailyAyats        int    `json:"daily_ayats"`
	LearningMode      string `json:"learning_mode"`
	PreferredLanguage string `json:"preferred_language"`
	Timezone          string `json:"timezone"`
}

type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"-"`

	// Profile settings
	DailyAyats        int    `json:"daily_ayats"`
	LearningMode      string `json:"learning_mode"`
	PreferredLanguage string `json:"preferred_language"`
	Timezone          string `json:"timezone"`

	// Progress tracking
	CurrentSurah         int        `json:"current_surah"`
	CurrentVerse         int        `json:"current_verse"`
	CurrentStreak        int        `json:"current_streak"`
	LongestStreak        int        `json:"longest_streak"`
	TotalVersesCompleted int        `json:"total_verses_completed"`
	LastCompletedDate    *time.Time `json:"last_completed_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	IsActive  bool      `json:"is_active"`
	Token     string    `json:"token,omitempty"`
}

// PublicProfile is the view of a user exposed to other users (search, friends).
type PublicProfile struct {
	ID                   int    `json:"id"`
	Username             string `json:"username"`
	CurrentStreak        int    `json:"current_streak"`
	LongestStreak        int    `json:"longest_streak"`
	TotalVersesCompleted int    `json:"total_verses_completed"`
}

// Stats is the aggregate over all users.
type Stats struct {
	TotalUsers           int     `json:"total_users"`
	ActiveUsersToday     int     `json:"active_users_today"`
	TotalVersesCompleted int     `json:"total_verses_completed"`
	AverageStreak        float64 `json:"average_streak"`
}
