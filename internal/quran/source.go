package quran

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ErrVerseNotFound covers both true content absence and upstream failures:
// the planner treats an unreachable provider the same as a missing coordinate.
var ErrVerseNotFound = errors.New("verse not found")

// VerseSource provides verse content by (surah, verse) coordinate.
type VerseSource interface {
	FetchVerse(ctx context.Context, surah, verse int) (*Verse, error)
	FetchChapterInfo(ctx context.Context, surah int) (*ChapterInfo, error)
}

// ChapterInfo is the upstream's metadata for one surah.
type ChapterInfo struct {
	SurahName string `json:"surahName"`
	TotalAyah int    `json:"totalAyah"`
}

// APIVerseSource fetches verses from the public Quran API
// (https://quranapi.pages.dev/api/{surah}/{verse}.json).
type APIVerseSource struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func NewAPIVerseSource(baseURL string, log *zap.Logger) *APIVerseSource {
	return &APIVerseSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// versePayload mirrors the upstream JSON shape for a single ayah.
type versePayload struct {
	Arabic1         string `json:"arabic1"`
	English         string `json:"english"`
	Transliteration string `json:"transliteration"`
}

func (s *APIVerseSource) FetchVerse(ctx context.Context, surah, verse int) (*Verse, error) {
	url := fmt.Sprintf("%s/%d/%d.json", s.baseURL, surah, verse)

	var payload versePayload
	if err := s.getJSON(ctx, url, &payload); err != nil {
		// Upstream errors degrade to not-found so lesson planning never aborts
		// on a flaky provider. Keep the real cause in the logs.
		s.log.Warn("verse fetch failed",
			zap.Int("surah", surah),
			zap.Int("verse", verse),
			zap.Error(err),
		)
		return nil, ErrVerseNotFound
	}

	return &Verse{
		SurahNo:         surah,
		AyahNo:          verse,
		Arabic:          payload.Arabic1,
		English:         payload.English,
		Transliteration: payload.Transliteration,
	}, nil
}

func (s *APIVerseSource) FetchChapterInfo(ctx context.Context, surah int) (*ChapterInfo, error) {
	url := fmt.Sprintf("%s/%d.json", s.baseURL, surah)

	var info ChapterInfo
	if err := s.getJSON(ctx, url, &info); err != nil {
		s.log.Warn("surah info fetch failed", zap.Int("surah", surah), zap.Error(err))
		return nil, ErrVerseNotFound
	}
	return &info, nil
}

func (s *APIVerseSource) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
