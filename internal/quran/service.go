package quran

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/quran-quest/quran-quest-api/internal/mail"
)

// QuranService glues the pure lesson/streak engine to the progress repository
// and the upstream verse provider.
type QuranService struct {
	repo ProgressRepo
	src  VerseSource
	mail *mail.Mailer
	log  *zap.Logger

	// now is swappable in tests
	now func() time.Time
}

func NewQuranService(repo ProgressRepo, src VerseSource, mail *mail.Mailer, log *zap.Logger) QuranService {
	return QuranService{
		repo: repo,
		src:  src,
		mail: mail,
		log:  log,
		now:  time.Now,
	}
}

func (s *QuranService) GetSurahList() []Surah {
	return ListSurahs()
}

func (s *QuranService) GetSurah(number int) (Surah, error) {
	return LookupSurah(number)
}

func (s *QuranService) GetSurahInfo(ctx context.Context, number int) (*ChapterInfo, error) {
	if number < FirstSurah || number > LastSurah {
		return nil, fmt.Errorf("%w: surah number must be between 1 and 114", ErrInvalidInput)
	}
	return s.src.FetchChapterInfo(ctx, number)
}

func (s *QuranService) GetVerse(ctx context.Context, surah, verse int) (*Verse, error) {
	if surah < FirstSurah || surah > LastSurah {
		return nil, fmt.Errorf("%w: surah number must be between 1 and 114", ErrInvalidInput)
	}
	if verse < 1 {
		return nil, fmt.Errorf("%w: verse number must be positive", ErrInvalidInput)
	}
	return s.src.FetchVerse(ctx, surah, verse)
}

// GetDailyLesson plans today's lesson from the user's stored position. It does
// not move the cursor; that happens on completion.
func (s *QuranService) GetDailyLesson(ctx context.Context, userID int) (*DailyLesson, error) {
	progress, err := s.repo.GetUserProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	return PlanDailyLesson(ctx, s.src, progress.Position, progress.DailyAyats,
		progress.Streak.LastCompletedDate, s.now())
}

// CompleteLesson re-plans today's lesson to count its verses, computes the
// streak update, and commits both the counters and the advanced cursor.
func (s *QuranService) CompleteLesson(ctx context.Context, userID int) (*ProgressUpdate, error) {
	progress, err := s.repo.GetUserProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	lesson, err := PlanDailyLesson(ctx, s.src, progress.Position, progress.DailyAyats,
		progress.Streak.LastCompletedDate, now)
	if err != nil {
		return nil, err
	}

	update, err := RecordCompletion(progress.Streak, lesson.TotalVerses, now)
	if err != nil {
		return nil, err
	}

	next := ReadingPosition{Surah: lesson.NextSurah, Verse: lesson.NextVerse}
	if _, err := s.repo.ApplyCompletion(ctx, userID, next, *update, now); err != nil {
		return nil, err
	}

	if update.Achievement != "" {
		s.log.Info("achievement unlocked",
			zap.Int("user_id", userID),
			zap.String("achievement", update.Achievement),
		)
	}

	return update, nil
}

func (s *QuranService) GetUserProgress(ctx context.Context, userID int) (*UserProgress, error) {
	return s.repo.GetUserProgress(ctx, userID)
}

func (s *QuranService) ResetProgress(ctx context.Context, userID int) error {
	return s.repo.ResetProgress(ctx, userID)
}

// GetSurahProgress returns the status and percent for one surah on the roadmap.
func (s *QuranService) GetSurahProgress(ctx context.Context, userID, surahNumber int) (*SurahProgress, error) {
	surah, err := LookupSurah(surahNumber)
	if err != nil {
		return nil, err
	}

	progress, err := s.repo.GetUserProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &SurahProgress{
		Number:             surah.Number,
		Name:               surah.Name,
		EnglishName:        surah.EnglishName,
		NumberOfAyahs:      surah.NumberOfAyahs,
		Status:             StatusOf(progress.Position, surah.Number),
		ProgressPercentage: PercentOf(progress.Position, surah.Number, surah.NumberOfAyahs),
	}, nil
}

// GetRoadmap projects all 114 surahs against the user's position.
func (s *QuranService) GetRoadmap(ctx context.Context, userID int) (*UserProgress, []SurahProgress, error) {
	progress, err := s.repo.GetUserProgress(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return progress, Roadmap(progress.Position), nil
}
