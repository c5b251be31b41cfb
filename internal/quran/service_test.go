package quran

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

// fakeProgressRepo keeps one user's progress in memory and records writes so
// tests can assert what the service committed.
type fakeProgressRepo struct {
	progress *UserProgress

	appliedNext   *ReadingPosition
	appliedUpdate *ProgressUpdate
	appliedAt     time.Time
	resetCalled   bool
}

func (f *fakeProgressRepo) GetUserProgress(_ context.Context, userID int) (*UserProgress, error) {
	if f.progress == nil {
		return nil, ErrUserNotFound
	}
	p := *f.progress
	p.UserID = userID
	return &p, nil
}

func (f *fakeProgressRepo) ApplyCompletion(_ context.Context, userID int, next ReadingPosition, update ProgressUpdate, completedAt time.Time) (*UserProgress, error) {
	if f.progress == nil {
		return nil, ErrUserNotFound
	}
	f.appliedNext = &next
	f.appliedUpdate = &update
	f.appliedAt = completedAt

	f.progress.Position = next
	f.progress.Streak.CurrentStreak = update.NewStreak
	if update.NewStreak > f.progress.Streak.LongestStreak {
		f.progress.Streak.LongestStreak = update.NewStreak
	}
	f.progress.Streak.TotalVersesCompleted = update.NewTotal
	t := completedAt
	f.progress.Streak.LastCompletedDate = &t
	return f.GetUserProgress(context.Background(), userID)
}

func (f *fakeProgressRepo) ResetProgress(_ context.Context, _ int) error {
	f.resetCalled = true
	return nil
}

func (f *fakeProgressRepo) GetReminderTargets(_ context.Context) ([]ReminderTarget, error) {
	return nil, nil
}

func newTestService(repo ProgressRepo, src VerseSource, now time.Time) QuranService {
	svc := NewQuranService(repo, src, nil, zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc
}

func TestGetDailyLessonDoesNotMoveCursor(t *testing.T) {
	repo := &fakeProgressRepo{progress: &UserProgress{
		Position:   ReadingPosition{Surah: 1, Verse: 1},
		DailyAyats: 3,
	}}
	src := &fakeSource{counts: map[int]int{1: 7}}
	svc := newTestService(repo, src, day(2026, 3, 10))

	lesson, err := svc.GetDailyLesson(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetDailyLesson: %v", err)
	}
	if lesson.TotalVerses != 3 {
		t.Errorf("TotalVerses: got %d, want 3", lesson.TotalVerses)
	}
	if repo.appliedNext != nil {
		t.Error("GetDailyLesson must not write through the repository")
	}
}

func TestCompleteLessonCommitsCursorAndStreak(t *testing.T) {
	yesterday := day(2026, 3, 9)
	repo := &fakeProgressRepo{progress: &UserProgress{
		Position: ReadingPosition{Surah: 2, Verse: 5},
		Streak: StreakState{
			CurrentStreak:        4,
			LongestStreak:        4,
			TotalVersesCompleted: 20,
			LastCompletedDate:    &yesterday,
		},
		DailyAyats: 2,
	}}
	src := &fakeSource{counts: map[int]int{2: 286}}
	svc := newTestService(repo, src, day(2026, 3, 10))

	update, err := svc.CompleteLesson(context.Background(), 42)
	if err != nil {
		t.Fatalf("CompleteLesson: %v", err)
	}

	// Day rollover steps to (2,6); a two-verse lesson covers (2,6) and (2,7).
	if update.VersesCompleted != 2 || update.NewStreak != 5 || update.NewTotal != 22 {
		t.Errorf("update: got %+v, want 2 verses, streak 5, total 22", update)
	}
	if repo.appliedNext == nil {
		t.Fatal("completion was not persisted")
	}
	if *repo.appliedNext != (ReadingPosition{Surah: 2, Verse: 8}) {
		t.Errorf("committed cursor: got %+v, want (2,8)", *repo.appliedNext)
	}
	if !repo.appliedAt.Equal(day(2026, 3, 10)) {
		t.Errorf("completion timestamp: got %v", repo.appliedAt)
	}
}

func TestCompleteLessonSameDayRepeat(t *testing.T) {
	// Completing twice on the same day re-reads from the committed cursor but
	// keeps the streak flat.
	yesterday := day(2026, 3, 9)
	repo := &fakeProgressRepo{progress: &UserProgress{
		Position: ReadingPosition{Surah: 1, Verse: 1},
		Streak: StreakState{
			CurrentStreak:     2,
			LongestStreak:     2,
			LastCompletedDate: &yesterday,
		},
		DailyAyats: 2,
	}}
	src := &fakeSource{counts: map[int]int{1: 7}}
	svc := newTestService(repo, src, day(2026, 3, 10))

	first, err := svc.CompleteLesson(context.Background(), 42)
	if err != nil {
		t.Fatalf("first CompleteLesson: %v", err)
	}
	if first.NewStreak != 3 {
		t.Errorf("first NewStreak: got %d, want 3", first.NewStreak)
	}

	second, err := svc.CompleteLesson(context.Background(), 42)
	if err != nil {
		t.Fatalf("second CompleteLesson: %v", err)
	}
	if second.NewStreak != 3 {
		t.Errorf("second NewStreak: got %d, want 3 (same-day repeats keep the streak)", second.NewStreak)
	}
	if second.NewTotal != first.NewTotal+second.VersesCompleted {
		t.Errorf("second NewTotal: got %d", second.NewTotal)
	}
}

func TestCompleteLessonUnknownUser(t *testing.T) {
	repo := &fakeProgressRepo{}
	src := &fakeSource{counts: map[int]int{1: 7}}
	svc := newTestService(repo, src, day(2026, 3, 10))

	if _, err := svc.CompleteLesson(context.Background(), 7); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("got %v, want ErrUserNotFound", err)
	}
}

func TestGetSurahProgress(t *testing.T) {
	repo := &fakeProgressRepo{progress: &UserProgress{
		Position:   ReadingPosition{Surah: 3, Verse: 101},
		DailyAyats: 3,
	}}
	svc := newTestService(repo, &fakeSource{}, day(2026, 3, 10))

	sp, err := svc.GetSurahProgress(context.Background(), 42, 3)
	if err != nil {
		t.Fatalf("GetSurahProgress: %v", err)
	}
	if sp.Status != StatusCurrent {
		t.Errorf("status: got %q, want %q", sp.Status, StatusCurrent)
	}
	// Surah 3 has 200 ayahs; 100 read is 50 percent.
	if sp.ProgressPercentage != 50 {
		t.Errorf("percent: got %d, want 50", sp.ProgressPercentage)
	}

	if _, err := svc.GetSurahProgress(context.Background(), 42, 400); !errors.Is(err, ErrSurahNotFound) {
		t.Errorf("got %v, want ErrSurahNotFound", err)
	}
}

func TestGetVerseValidation(t *testing.T) {
	svc := newTestService(&fakeProgressRepo{}, &fakeSource{counts: map[int]int{1: 7}}, day(2026, 3, 10))

	if _, err := svc.GetVerse(context.Background(), 0, 1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("surah 0: got %v, want ErrInvalidInput", err)
	}
	if _, err := svc.GetVerse(context.Background(), 1, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("verse 0: got %v, want ErrInvalidInput", err)
	}

	v, err := svc.GetVerse(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("GetVerse: %v", err)
	}
	if v.SurahNo != 1 || v.AyahNo != 5 {
		t.Errorf("verse: got (%d,%d), want (1,5)", v.SurahNo, v.AyahNo)
	}
}
