package quran

import "testing"

func TestStatusOf(t *testing.T) {
	pos := ReadingPosition{Surah: 10, Verse: 4}

	if got := StatusOf(pos, 9); got != StatusCompleted {
		t.Errorf("surah before cursor: got %q, want %q", got, StatusCompleted)
	}
	if got := StatusOf(pos, 10); got != StatusCurrent {
		t.Errorf("cursor surah: got %q, want %q", got, StatusCurrent)
	}
	if got := StatusOf(pos, 11); got != StatusAvailable {
		t.Errorf("surah after cursor: got %q, want %q", got, StatusAvailable)
	}
}

func TestPercentOf(t *testing.T) {
	cases := []struct {
		name  string
		pos   ReadingPosition
		surah int
		total int
		want  int
	}{
		{"completed surah", ReadingPosition{Surah: 5, Verse: 1}, 3, 100, 100},
		{"future surah", ReadingPosition{Surah: 5, Verse: 1}, 7, 100, 0},
		{"current at first verse", ReadingPosition{Surah: 5, Verse: 1}, 5, 100, 0},
		{"current halfway", ReadingPosition{Surah: 5, Verse: 51}, 5, 100, 50},
		{"floors the ratio", ReadingPosition{Surah: 5, Verse: 3}, 5, 7, 28},
		{"clamped at 100", ReadingPosition{Surah: 5, Verse: 500}, 5, 100, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PercentOf(tc.pos, tc.surah, tc.total); got != tc.want {
				t.Errorf("PercentOf: got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestRoadmap(t *testing.T) {
	pos := ReadingPosition{Surah: 2, Verse: 10}
	roadmap := Roadmap(pos)

	if len(roadmap) != 114 {
		t.Fatalf("roadmap length: got %d, want 114", len(roadmap))
	}

	first := roadmap[0]
	if first.Number != 1 || first.Status != StatusCompleted || first.ProgressPercentage != 100 {
		t.Errorf("surah 1: got %+v, want completed at 100%%", first)
	}

	second := roadmap[1]
	if second.Status != StatusCurrent {
		t.Errorf("surah 2 status: got %q, want %q", second.Status, StatusCurrent)
	}
	if second.ProgressPercentage < 1 || second.ProgressPercentage > 99 {
		t.Errorf("surah 2 percent: got %d, want partial", second.ProgressPercentage)
	}

	last := roadmap[113]
	if last.Number != 114 || last.Status != StatusAvailable || last.ProgressPercentage != 0 {
		t.Errorf("surah 114: got %+v, want available at 0%%", last)
	}
}
