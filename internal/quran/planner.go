package quran

import (
	"context"
	"fmt"
	"time"
)

// ErrInvalidInput reports a contract violation by the caller (bad surah number,
// non-positive quota). The planner fails fast instead of producing garbage.
var ErrInvalidInput = fmt.Errorf("invalid input")

// PlanDailyLesson computes the ordered verses for today's lesson from a user's
// stored reading position.
//
// If the user completed a lesson on a previous day, the working position first
// advances by one verse (the stored position still points at the last verse
// drawn into yesterday's lesson). First-ever lessons and repeated requests on
// the same day draw from the stored position as-is, so the lesson is
// regenerable idempotently within a day.
//
// Missing verses roll over to the next surah with a single bounded retry per
// slot; a provider miss past surah 114 ends the draw early. A lesson shorter
// than the quota is degraded output, not an error.
func PlanDailyLesson(ctx context.Context, src VerseSource, pos ReadingPosition, quota int, lastCompleted *time.Time, today time.Time) (*DailyLesson, error) {
	if pos.Surah < FirstSurah || pos.Surah > LastSurah {
		return nil, fmt.Errorf("%w: surah number must be between 1 and 114, got %d", ErrInvalidInput, pos.Surah)
	}
	if pos.Verse < 1 {
		return nil, fmt.Errorf("%w: verse number must be positive, got %d", ErrInvalidInput, pos.Verse)
	}
	if quota <= 0 {
		return nil, fmt.Errorf("%w: daily quota must be positive, got %d", ErrInvalidInput, quota)
	}

	surah := pos.Surah
	verse := pos.Verse

	// New calendar day since the last completion: the stored position was the
	// tail of the completed lesson, so step past it before drawing.
	if lastCompleted != nil && dateOnly(*lastCompleted).Before(dateOnly(today)) {
		verse++
		info, err := src.FetchChapterInfo(ctx, surah)
		if err != nil || verse > info.TotalAyah {
			surah++
			verse = 1
		}
	}

	verses := make([]Verse, 0, quota)
	for i := 0; i < quota; i++ {
		if surah > LastSurah {
			break
		}

		v, err := src.FetchVerse(ctx, surah, verse)
		if err == nil {
			verses = append(verses, *v)
			verse++
			continue
		}

		// Verse exhausted in this surah (or provider miss): try once at the
		// start of the next surah, then give the slot up.
		surah++
		verse = 1
		if surah > LastSurah {
			break
		}
		v, err = src.FetchVerse(ctx, surah, verse)
		if err == nil {
			verses = append(verses, *v)
			verse++
		}
	}

	return &DailyLesson{
		Verses:       verses,
		TotalVerses:  len(verses),
		CurrentSurah: pos.Surah,
		CurrentVerse: pos.Verse,
		NextSurah:    surah,
		NextVerse:    verse,
	}, nil
}

// dateOnly truncates a timestamp to its calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
