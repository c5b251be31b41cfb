package social

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/quran-quest/quran-quest-api/internal/database"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrAlreadyExists  = errors.New("record already exists")
	ErrSelfFriendship = errors.New("cannot send friend request to yourself")
	ErrInternalServer = errors.New("internal server error")
)

type Repository interface {
	// friendships
	CreateFriendship(ctx context.Context, userID, friendID int) (*Friendship, error)
	SetFriendshipStatus(ctx context.Context, friendshipID, friendID int, status string) error
	GetFriends(ctx context.Context, userID int) ([]Friend, error)
	GetPendingRequests(ctx context.Context, userID int) ([]Friendship, error)

	// threads
	CreateThread(ctx context.Context, authorID int, req CreateThreadRequest) (*Thread, error)
	GetThreads(ctx context.Context, threadType string, offset, limit int) ([]Thread, error)
	GetThreadDetail(ctx context.Context, threadID, viewerID int) (*ThreadDetail, error)
	ToggleLike(ctx context.Context, threadID, userID int) (bool, error)
	CreateComment(ctx context.Context, threadID, authorID int, req CreateCommentRequest) (*Comment, error)

	// leaderboard
	GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(dbService database.Service) Repository {
	return &repository{db: dbService.DB()}
}

func (r *repository) CreateFriendship(ctx context.Context, userID, friendID int) (*Friendship, error) {
	if userID == friendID {
		return nil, ErrSelfFriendship
	}

	// Check if friend exists
	var friendExists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1 AND is_active = TRUE)`, friendID,
	).Scan(&friendExists)
	if err != nil {
		return nil, err
	}
	if !friendExists {
		return nil, ErrNotFound
	}

	// A friendship in either direction blocks a new request
	var exists bool
	err = r.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM friendships
			WHERE (user_id = $1 AND friend_id = $2) OR (user_id = $2 AND friend_id = $1)
		)
	`, userID, friendID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	query := `
		INSERT INTO friendships (user_id, friend_id)
		VALUES ($1, $2)
		RETURNING id, user_id, friend_id, status, created_at
	`

	var f Friendship
	err = r.db.QueryRowContext(ctx, query, userID, friendID).
		Scan(&f.ID, &f.UserID, &f.FriendID, &f.Status, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// SetFriendshipStatus accepts or declines a pending request. Only the
// recipient of the request may change its status.
func (r *repository) SetFriendshipStatus(ctx context.Context, friendshipID, friendID int, status string) error {
	var acceptedAt interface{}
	if status == "accepted" {
		acceptedAt = time.Now()
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE friendships
		SET status = $3, accepted_at = $4
		WHERE id = $1 AND friend_id = $2 AND status = 'pending'
	`, friendshipID, friendID, status, acceptedAt)
	if err != nil {
		return err
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) GetFriends(ctx context.Context, userID int) ([]Friend, error) {
	query := `
		SELECT u.id, u.username, u.current_streak, u.longest_streak, u.total_verses_completed
		FROM friendships f
		JOIN users u ON u.id = CASE WHEN f.user_id = $1 THEN f.friend_id ELSE f.user_id END
		WHERE (f.user_id = $1 OR f.friend_id = $1) AND f.status = 'accepted'
		ORDER BY u.current_streak DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var friends []Friend
	for rows.Next() {
		var f Friend
		if err := rows.Scan(&f.ID, &f.Username, &f.CurrentStreak, &f.LongestStreak, &f.TotalVersesCompleted); err != nil {
			return nil, err
		}
		friends = append(friends, f)
	}
	return friends, rows.Err()
}

func (r *repository) GetPendingRequests(ctx context.Context, userID int) ([]Friendship, error) {
	query := `
		SELECT id, user_id, friend_id, status, created_at
		FROM friendships
		WHERE friend_id = $1 AND status = 'pending'
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []Friendship
	for rows.Next() {
		var f Friendship
		if err := rows.Scan(&f.ID, &f.UserID, &f.FriendID, &f.Status, &f.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, f)
	}
	return requests, rows.Err()
}

func (r *repository) CreateThread(ctx context.Context, authorID int, req CreateThreadRequest) (*Thread, error) {
	query := `
		INSERT INTO threads (title, content, author_id, thread_type, ayah_surah, ayah_verse, ayah_arabic, ayah_translation)
		VALUES ($1, $2, $3, $4, NULLIF($5, 0), NULLIF($6, 0), NULLIF($7, ''), NULLIF($8, ''))
		RETURNING id, created_at
	`

	t := Thread{
		Title:           req.Title,
		Content:         req.Content,
		AuthorID:        authorID,
		ThreadType:      req.ThreadType,
		AyahSurah:       req.AyahSurah,
		AyahVerse:       req.AyahVerse,
		AyahArabic:      req.AyahArabic,
		AyahTranslation: req.AyahTranslation,
	}

	err := r.db.QueryRowContext(ctx, query,
		req.Title, req.Content, authorID, req.ThreadType,
		req.AyahSurah, req.AyahVerse, req.AyahArabic, req.AyahTranslation,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx, `SELECT username FROM users WHERE id = $1`, authorID).
		Scan(&t.AuthorUsername)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func scanThread(rows *sql.Rows, t *Thread) error {
	var ayahSurah, ayahVerse sql.NullInt64
	var ayahArabic, ayahTranslation sql.NullString
	err := rows.Scan(
		&t.ID, &t.Title, &t.Content, &t.AuthorID, &t.AuthorUsername, &t.ThreadType,
		&ayahSurah, &ayahVerse, &ayahArabic, &ayahTranslation,
		&t.CreatedAt, &t.LikesCount, &t.CommentsCount,
	)
	if err != nil {
		return err
	}
	t.AyahSurah = int(ayahSurah.Int64)
	t.AyahVerse = int(ayahVerse.Int64)
	t.AyahArabic = ayahArabic.String
	t.AyahTranslation = ayahTranslation.String
	return nil
}

const threadColumns = `
	t.id, t.title, t.content, t.author_id, u.username, t.thread_type,
	t.ayah_surah, t.ayah_verse, t.ayah_arabic, t.ayah_translation,
	t.created_at,
	(SELECT COUNT(*) FROM likes l WHERE l.thread_id = t.id),
	(SELECT COUNT(*) FROM comments c WHERE c.thread_id = t.id)
`

func (r *repository) GetThreads(ctx context.Context, threadType string, offset, limit int) ([]Thread, error) {
	query := `
		SELECT ` + threadColumns + `
		FROM threads t
		JOIN users u ON u.id = t.author_id
		WHERE t.is_active = TRUE AND ($1 = '' OR t.thread_type = $1)
		ORDER BY t.created_at DESC
		OFFSET $2 LIMIT $3
	`

	rows, err := r.db.QueryContext(ctx, query, threadType, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var threads []Thread
	for rows.Next() {
		var t Thread
		if err := scanThread(rows, &t); err != nil {
			return nil, err
		}
		threads = append(threads, t)
	}
	return threads, rows.Err()
}

func (r *repository) GetThreadDetail(ctx context.Context, threadID, viewerID int) (*ThreadDetail, error) {
	query := `
		SELECT ` + threadColumns + `
		FROM threads t
		JOIN users u ON u.id = t.author_id
		WHERE t.id = $1 AND t.is_active = TRUE
	`

	rows, err := r.db.QueryContext(ctx, query, threadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrNotFound
	}

	var detail ThreadDetail
	if err := scanThread(rows, &detail.Thread); err != nil {
		return nil, err
	}
	rows.Close()

	err = r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM likes WHERE thread_id = $1 AND user_id = $2)`,
		threadID, viewerID,
	).Scan(&detail.IsLiked)
	if err != nil {
		return nil, err
	}

	comments, err := r.getComments(ctx, threadID)
	if err != nil {
		return nil, err
	}
	detail.Comments = comments

	return &detail, nil
}

// getComments loads a thread's comments and nests replies one level deep
// under their parent, matching how the frontend renders them.
func (r *repository) getComments(ctx context.Context, threadID int) ([]Comment, error) {
	query := `
		SELECT c.id, c.content, c.author_id, u.username, c.thread_id,
		       COALESCE(c.parent_id, 0), c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.thread_id = $1 AND c.is_active = TRUE
		ORDER BY c.created_at
	`

	rows, err := r.db.QueryContext(ctx, query, threadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all []Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.AuthorID, &c.AuthorUsername, &c.ThreadID, &c.ParentID, &c.CreatedAt); err != nil {
			return nil, err
		}
		all = append(all, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	byID := make(map[int]int) // comment id -> index in top-level slice
	topLevel := make([]Comment, 0, len(all))
	for _, c := range all {
		if c.ParentID == 0 {
			topLevel = append(topLevel, c)
			byID[c.ID] = len(topLevel) - 1
		}
	}
	for _, c := range all {
		if c.ParentID != 0 {
			if i, ok := byID[c.ParentID]; ok {
				topLevel[i].Replies = append(topLevel[i].Replies, c)
			}
		}
	}

	return topLevel, nil
}

func (r *repository) ToggleLike(ctx context.Context, threadID, userID int) (bool, error) {
	var threadExists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1 AND is_active = TRUE)`, threadID,
	).Scan(&threadExists)
	if err != nil {
		return false, err
	}
	if !threadExists {
		return false, ErrNotFound
	}

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM likes WHERE thread_id = $1 AND user_id = $2`, threadID, userID)
	if err != nil {
		return false, err
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return false, nil // unliked
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO likes (thread_id, user_id) VALUES ($1, $2)`, threadID, userID)
	if err != nil {
		return false, err
	}
	return true, nil // now liked
}

func (r *repository) CreateComment(ctx context.Context, threadID, authorID int, req CreateCommentRequest) (*Comment, error) {
	var threadExists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1 AND is_active = TRUE)`, threadID,
	).Scan(&threadExists)
	if err != nil {
		return nil, err
	}
	if !threadExists {
		return nil, ErrNotFound
	}

	query := `
		INSERT INTO comments (content, author_id, thread_id, parent_id)
		VALUES ($1, $2, $3, NULLIF($4, 0))
		RETURNING id, created_at
	`

	c := Comment{
		Content:  req.Content,
		AuthorID: authorID,
		ThreadID: threadID,
		ParentID: req.ParentID,
	}
	err = r.db.QueryRowContext(ctx, query, req.Content, authorID, threadID, req.ParentID).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx, `SELECT username FROM users WHERE id = $1`, authorID).
		Scan(&c.AuthorUsername)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	query := `
		SELECT username, current_streak, longest_streak, total_verses_completed
		FROM users
		WHERE is_active = TRUE
		ORDER BY current_streak DESC, total_verses_completed DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	rank := 1
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.Username, &e.CurrentStreak, &e.LongestStreak, &e.TotalVersesCompleted); err != nil {
			return nil, err
		}
		e.Rank = rank
		rank++
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
