package quran

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/quran-quest/quran-quest-api/internal/auth"
	"github.com/quran-quest/quran-quest-api/pkg/response"
)

type QuranHandler struct {
	service QuranService
}

func NewQuranHandler(service QuranService) QuranHandler {
	return QuranHandler{service: service}
}

func surahParam(r *http.Request) (int, error) {
	n, err := strconv.Atoi(chi.URLParam(r, "surahNumber"))
	if err != nil {
		return 0, errors.New("surah number must be an integer")
	}
	if n < FirstSurah || n > LastSurah {
		return 0, errors.New("surah number must be between 1 and 114")
	}
	return n, nil
}

func (h *QuranHandler) GetSurahListHandler(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.service.GetSurahList(), "Ok")
}

func (h *QuranHandler) GetSurahInfoHandler(w http.ResponseWriter, r *http.Request) {
	number, err := surahParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid surah number", err.Error())
		return
	}

	info, err := h.service.GetSurahInfo(r.Context(), number)
	if err != nil {
		response.Error(w, http.StatusNotFound, "Surah not found", err.Error())
		return
	}

	response.Success(w, info, "Ok")
}

func (h *QuranHandler) GetVerseHandler(w http.ResponseWriter, r *http.Request) {
	number, err := surahParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid surah number", err.Error())
		return
	}

	verseNo, err := strconv.Atoi(chi.URLParam(r, "verseNumber"))
	if err != nil || verseNo < 1 {
		response.Error(w, http.StatusBadRequest, "Invalid verse number", "verse number must be a positive integer")
		return
	}

	verse, err := h.service.GetVerse(r.Context(), number, verseNo)
	if err != nil {
		response.Error(w, http.StatusNotFound, "Verse not found", err.Error())
		return
	}

	response.Success(w, verse, "Ok")
}

func (h *QuranHandler) GetDailyLessonHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	lesson, err := h.service.GetDailyLesson(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "User not found", err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get daily lesson", err.Error())
		return
	}

	response.Success(w, lesson, "Ok")
}

func (h *QuranHandler) CompleteLessonHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	update, err := h.service.CompleteLesson(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "User not found", err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to complete lesson", err.Error())
		return
	}

	response.Success(w, update, "Lesson completed")
}

func (h *QuranHandler) GetUserProgressHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	progress, err := h.service.GetUserProgress(r.Context(), userID)
	if err != nil {
		response.Error(w, http.StatusNotFound, "User not found", err.Error())
		return
	}

	response.Success(w, progress, "Ok")
}

func (h *QuranHandler) ResetProgressHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	if err := h.service.ResetProgress(r.Context(), userID); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to reset progress", err.Error())
		return
	}

	response.Success(w, "Ok", "Progress reset successfully")
}

func (h *QuranHandler) GetSurahProgressHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	number, err := surahParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid surah number", err.Error())
		return
	}

	progress, err := h.service.GetSurahProgress(r.Context(), userID, number)
	if err != nil {
		response.Error(w, http.StatusNotFound, "Surah not found", err.Error())
		return
	}

	response.Success(w, progress, "Ok")
}

func (h *QuranHandler) GetRoadmapHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	progress, roadmap, err := h.service.GetRoadmap(r.Context(), userID)
	if err != nil {
		response.Error(w, http.StatusNotFound, "User not found", err.Error())
		return
	}

	response.Success(w, map[string]interface{}{
		"user_progress": progress,
		"surahs":        roadmap,
	}, "Ok")
}
