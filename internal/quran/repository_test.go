package quran

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/quran-quest/quran-quest-api/internal/database"
	"github.com/quran-quest/quran-quest-api/pkg/config"
)

func startTestDB(t *testing.T) database.Service {
	t.Helper()

	ctx := context.Background()
	container, err := postgres.Run(
		ctx,
		"postgres:latest",
		postgres.WithDatabase("quran_quest_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		t.Fatalf("starting postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminating container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}

	db := database.New(&config.Config{
		DBHost:     host,
		DBPort:     port.Port(),
		DBName:     "quran_quest_test",
		DBUser:     "postgres",
		DBPassword: "password",
		DBSchema:   "public",
	})
	if err := db.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestProgressRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	db := startTestDB(t)
	repo := NewProgressRepo(db)
	ctx := context.Background()

	var userID int
	err := db.DB().QueryRowContext(ctx,
		`INSERT INTO users (email, username, password, daily_ayats) VALUES ($1, $2, $3, $4) RETURNING id`,
		"amina@example.com", "amina", "hashed", 2,
	).Scan(&userID)
	if err != nil {
		t.Fatalf("seeding user: %v", err)
	}

	t.Run("fresh user progress", func(t *testing.T) {
		p, err := repo.GetUserProgress(ctx, userID)
		if err != nil {
			t.Fatalf("GetUserProgress: %v", err)
		}
		if p.Position != (ReadingPosition{Surah: 1, Verse: 1}) {
			t.Errorf("position: got %+v, want (1,1)", p.Position)
		}
		if p.Streak.CurrentStreak != 0 || p.Streak.LastCompletedDate != nil {
			t.Errorf("streak: got %+v, want zero state", p.Streak)
		}
		if p.DailyAyats != 2 {
			t.Errorf("daily ayats: got %d, want 2", p.DailyAyats)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		if _, err := repo.GetUserProgress(ctx, 999999); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("got %v, want ErrUserNotFound", err)
		}
	})

	completedAt := time.Date(2026, 3, 10, 19, 30, 0, 0, time.UTC)

	t.Run("apply completion", func(t *testing.T) {
		p, err := repo.ApplyCompletion(ctx, userID,
			ReadingPosition{Surah: 1, Verse: 3},
			ProgressUpdate{VersesCompleted: 2, NewStreak: 1, NewTotal: 2},
			completedAt)
		if err != nil {
			t.Fatalf("ApplyCompletion: %v", err)
		}
		if p.Position != (ReadingPosition{Surah: 1, Verse: 3}) {
			t.Errorf("cursor: got %+v, want (1,3)", p.Position)
		}
		if p.Streak.CurrentStreak != 1 || p.Streak.LongestStreak != 1 || p.Streak.TotalVersesCompleted != 2 {
			t.Errorf("streak: got %+v", p.Streak)
		}
		if p.Streak.LastCompletedDate == nil || !p.Streak.LastCompletedDate.Equal(completedAt) {
			t.Errorf("last completed: got %v, want %v", p.Streak.LastCompletedDate, completedAt)
		}
	})

	t.Run("longest streak never regresses", func(t *testing.T) {
		// Simulate a broken chain: new streak 1 while longest is already higher.
		if _, err := db.DB().ExecContext(ctx,
			`UPDATE users SET current_streak = 5, longest_streak = 5 WHERE id = $1`, userID); err != nil {
			t.Fatalf("seeding streak: %v", err)
		}

		p, err := repo.ApplyCompletion(ctx, userID,
			ReadingPosition{Surah: 1, Verse: 5},
			ProgressUpdate{VersesCompleted: 2, NewStreak: 1, NewTotal: 4},
			completedAt.AddDate(0, 0, 3))
		if err != nil {
			t.Fatalf("ApplyCompletion: %v", err)
		}
		if p.Streak.CurrentStreak != 1 || p.Streak.LongestStreak != 5 {
			t.Errorf("streak: got current %d longest %d, want 1/5",
				p.Streak.CurrentStreak, p.Streak.LongestStreak)
		}
	})

	t.Run("reminder targets", func(t *testing.T) {
		// The seeded completion date is fixed in the past, so the user is due.
		targets, err := repo.GetReminderTargets(ctx)
		if err != nil {
			t.Fatalf("GetReminderTargets: %v", err)
		}
		found := false
		for _, tgt := range targets {
			if tgt.UserID == userID {
				found = true
				if tgt.Email != "amina@example.com" || tgt.DailyAyats != 2 {
					t.Errorf("target: got %+v", tgt)
				}
			}
		}
		if !found {
			t.Error("seeded user missing from reminder targets")
		}
	})

	t.Run("reset progress", func(t *testing.T) {
		if err := repo.ResetProgress(ctx, userID); err != nil {
			t.Fatalf("ResetProgress: %v", err)
		}
		p, err := repo.GetUserProgress(ctx, userID)
		if err != nil {
			t.Fatalf("GetUserProgress: %v", err)
		}
		if p.Position != (ReadingPosition{Surah: 1, Verse: 1}) || p.Streak.CurrentStreak != 0 ||
			p.Streak.LongestStreak != 0 || p.Streak.TotalVersesCompleted != 0 ||
			p.Streak.LastCompletedDate != nil {
			t.Errorf("after reset: got %+v", p)
		}

		if err := repo.ResetProgress(ctx, 999999); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("reset unknown user: got %v, want ErrUserNotFound", err)
		}
	})
}
