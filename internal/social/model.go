package social

import "time"

type Friendship struct {
	ID         int        `json:"id"`
	UserID     int        `json:"user_id"`
	FriendID   int        `json:"friend_id"`
	Status     string     `json:"status"` // "pending", "accepted", "declined"
	CreatedAt  time.Time  `json:"created_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
}

type FriendRequest struct {
	FriendID int `json:"friend_id"`
}

// Friend is a user on the friends list, with their streaks for comparison.
type Friend struct {
	ID                   int    `json:"id"`
	Username             string `json:"username"`
	CurrentStreak        int    `json:"current_streak"`
	LongestStreak        int    `json:"longest_streak"`
	TotalVersesCompleted int    `json:"total_verses_completed"`
}

type Thread struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	AuthorID       int       `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	ThreadType     string    `json:"thread_type"` // "discussion" or "ayah-share"
	CreatedAt      time.Time `json:"created_at"`
	LikesCount     int       `json:"likes_count"`
	CommentsCount  int       `json:"comments_count"`

	// Ayah payload, set only for ayah-share threads
	AyahSurah       int    `json:"ayah_surah,omitempty"`
	AyahVerse       int    `json:"ayah_verse,omitempty"`
	AyahArabic      string `json:"ayah_arabic,omitempty"`
	AyahTranslation string `json:"ayah_translation,omitempty"`
}

type ThreadDetail struct {
	Thread
	IsLiked  bool      `json:"is_liked"`
	Comments []Comment `json:"comments"`
}

type CreateThreadRequest struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	ThreadType      string `json:"thread_type"`
	AyahSurah       int    `json:"ayah_surah,omitempty"`
	AyahVerse       int    `json:"ayah_verse,omitempty"`
	AyahArabic      string `json:"ayah_arabic,omitempty"`
	AyahTranslation string `json:"ayah_translation,omitempty"`
}

type Comment struct {
	ID             int       `json:"id"`
	Content        string    `json:"content"`
	AuthorID       int       `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	ThreadID       int       `json:"thread_id"`
	ParentID       int       `json:"parent_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	Replies        []Comment `json:"replies,omitempty"`
}

type CreateCommentRequest struct {
	Content  string `json:"content"`
	ParentID int    `json:"parent_id,omitempty"`
}

type LeaderboardEntry struct {
	Rank                 int    `json:"rank"`
	Username             string `json:"username"`
	CurrentStreak        int    `json:"current_streak"`
	LongestStreak        int    `json:"longest_streak"`
	TotalVersesCompleted int    `json:"total_verses_completed"`
}
