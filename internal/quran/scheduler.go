package quran

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// StartScheduler runs the daily reminder job until the context is cancelled.
// Reminders go out in the evening so users still have time to keep a streak.
func (s *QuranService) StartScheduler(ctx context.Context) {
	scheduler := gocron.NewScheduler(time.UTC)

	if _, err := scheduler.Every(1).Day().At("18:00").Do(func() {
		s.runStreakReminders(ctx)
	}); err != nil {
		s.log.Error("failed to schedule reminder job", zap.Error(err))
		return
	}

	scheduler.StartAsync()
	s.log.Info("reminder scheduler started")

	<-ctx.Done()
	scheduler.Stop()
	s.log.Info("reminder scheduler stopped")
}

// runStreakReminders emails every user who has not completed today's lesson.
func (s *QuranService) runStreakReminders(ctx context.Context) {
	targets, err := s.repo.GetReminderTargets(ctx)
	if err != nil {
		s.log.Error("failed to fetch reminder targets", zap.Error(err))
		return
	}

	s.log.Info("running streak reminder check", zap.Int("users", len(targets)))

	for _, t := range targets {
		data := map[string]interface{}{
			"Name":          t.Username,
			"CurrentStreak": t.CurrentStreak,
			"DailyAyats":    t.DailyAyats,
			"DashboardURL":  "https://quranquest.app/dashboard",
		}

		if err := s.mail.SendHTML(t.Email, "Your daily Quran lesson is waiting", "reminder.html", data); err != nil {
			s.log.Warn("failed to send reminder",
				zap.Int("user_id", t.UserID),
				zap.Error(err),
			)
			continue
		}
	}
}
