package quran

// StatusOf reports a surah's standing relative to a reading position: surahs
// before the cursor are completed, the cursor's surah is current, the rest
// are available.
func StatusOf(pos ReadingPosition, surahNumber int) SurahStatus {
	switch {
	case surahNumber < pos.Surah:
		return StatusCompleted
	case surahNumber == pos.Surah:
		return StatusCurrent
	default:
		return StatusAvailable
	}
}

// PercentOf returns the percent of a surah read, 0..100. The position's verse
// points at the next unread ayah, so verse-1 ayahs are done. totalVerses must
// be positive.
func PercentOf(pos ReadingPosition, surahNumber, totalVerses int) int {
	switch {
	case surahNumber < pos.Surah:
		return 100
	case surahNumber > pos.Surah:
		return 0
	}

	pct := (pos.Verse - 1) * 100 / totalVerses
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Roadmap projects the whole catalog against a reading position.
func Roadmap(pos ReadingPosition) []SurahProgress {
	out := make([]SurahProgress, 0, len(surahs))
	for _, s := range surahs {
		out = append(out, SurahProgress{
			Number:             s.Number,
			Name:               s.Name,
			EnglishName:        s.EnglishName,
			NumberOfAyahs:      s.NumberOfAyahs,
			Status:             StatusOf(pos, s.Number),
			ProgressPercentage: PercentOf(pos, s.Number, s.NumberOfAyahs),
		})
	}
	return out
}
