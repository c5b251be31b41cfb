package quran

import "time"

// Surah is one of the 114 chapters. The catalog entries are immutable after load.
type Surah struct {
	Number         int    `json:"number"`
	Name           string `json:"name"`
	EnglishName    string `json:"english_name"`
	NumberOfAyahs  int    `json:"number_of_ayahs"`
	RevelationType string `json:"revelation_type"` // "Meccan" or "Medinan"
}

// Verse is a single ayah fetched from the upstream content provider.
type Verse struct {
	SurahNo         int    `json:"surah_no"`
	AyahNo          int    `json:"ayah_no"`
	Arabic          string `json:"arabic"`
	English         string `json:"english"`
	Transliteration string `json:"transliteration,omitempty"`
}

// ReadingPosition marks the next unread verse for a user.
type ReadingPosition struct {
	Surah int `json:"current_surah"`
	Verse int `json:"current_verse"`
}

// StreakState is the streak snapshot stored on the user row. The core never
// mutates it; callers persist the values returned by RecordCompletion.
type StreakState struct {
	CurrentStreak        int        `json:"current_streak"`
	LongestStreak        int        `json:"longest_streak"`
	TotalVersesCompleted int        `json:"total_verses_completed"`
	LastCompletedDate    *time.Time `json:"last_completed_date,omitempty"`
}

// DailyLesson is the computed lesson for one day. CurrentSurah/CurrentVerse echo
// the stored position the lesson was planned from; NextSurah/NextVerse is where
// the cursor lands once the lesson is completed.
type DailyLesson struct {
	Verses       []Verse `json:"verses"`
	TotalVerses  int     `json:"total_verses"`
	CurrentSurah int     `json:"current_surah"`
	CurrentVerse int     `json:"current_verse"`
	NextSurah    int     `json:"next_surah"`
	NextVerse    int     `json:"next_verse"`
}

// ProgressUpdate is the result of completing a lesson. Purely computed; the
// caller persists NewStreak/NewTotal and applies the longest-streak rule.
type ProgressUpdate struct {
	VersesCompleted int    `json:"verses_completed"`
	NewStreak       int    `json:"new_streak"`
	NewTotal        int    `json:"new_total"`
	Achievement     string `json:"achievement,omitempty"`
}

// SurahStatus describes a surah relative to a user's reading position.
type SurahStatus string

const (
	StatusCompleted SurahStatus = "completed"
	StatusCurrent   SurahStatus = "current"
	StatusAvailable SurahStatus = "available"
)

// SurahProgress is one roadmap entry.
type SurahProgress struct {
	Number             int         `json:"number"`
	Name               string      `json:"name"`
	EnglishName        string      `json:"english_name"`
	NumberOfAyahs      int         `json:"number_of_ayahs"`
	Status             SurahStatus `json:"status"`
	ProgressPercentage int         `json:"progress_percentage"`
}

// UserProgress is the progress snapshot read from and written to the users table.
type UserProgress struct {
	UserID     int             `json:"user_id,omitempty"`
	Position   ReadingPosition `json:"position"`
	Streak     StreakState     `json:"streak"`
	DailyAyats int             `json:"daily_ayats"`
}
