package quran

import "fmt"

// ErrSurahNotFound is returned for surah numbers outside 1..114.
var ErrSurahNotFound = fmt.Errorf("surah not found")

// surahs holds all 114 surahs in order. Loaded once at process start and shared
// read-only across requests; never mutated.
var surahs = []Surah{
	{1, "الفاتحة", "Al-Fatihah", 7, "Meccan"},
	{2, "البقرة", "Al-Baqarah", 286, "Medinan"},
	{3, "آل عمران", "Aal-E-Imran", 200, "Medinan"},
	{4, "النساء", "An-Nisa", 176, "Medinan"},
	{5, "المائدة", "Al-Ma'idah", 120, "Medinan"},
	{6, "الأنعام", "Al-An'am", 165, "Meccan"},
	{7, "الأعراف", "Al-A'raf", 206, "Meccan"},
	{8, "الأنفال", "Al-Anfal", 75, "Medinan"},
	{9, "التوبة", "At-Tawbah", 129, "Medinan"},
	{10, "يونس", "Yunus", 109, "Meccan"},
	{11, "هود", "Hud", 123, "Meccan"},
	{12, "يوسف", "Yusuf", 111, "Meccan"},
	{13, "الرعد", "Ar-Ra'd", 43, "Medinan"},
	{14, "إبراهيم", "Ibrahim", 52, "Meccan"},
	{15, "الحجر", "Al-Hijr", 99, "Meccan"},
	{16, "النحل", "An-Nahl", 128, "Meccan"},
	{17, "الإسراء", "Al-Isra", 111, "Meccan"},
	{18, "الكهف", "Al-Kahf", 110, "Meccan"},
	{19, "مريم", "Maryam", 98, "Meccan"},
	{20, "طه", "Ta-Ha", 135, "Meccan"},
	{21, "الأنبياء", "Al-Anbiya", 112, "Meccan"},
	{22, "الحج", "Al-Hajj", 78, "Medinan"},
	{23, "المؤمنون", "Al-Mu'minun", 118, "Meccan"},
	{24, "النور", "An-Nur", 64, "Medinan"},
	{25, "الفرقان", "Al-Furqan", 77, "Meccan"},
	{26, "الشعراء", "Ash-Shu'ara", 227, "Meccan"},
	{27, "النمل", "An-Naml", 93, "Meccan"},
	{28, "القصص", "Al-Qasas", 88, "Meccan"},
	{29, "العنكبوت", "Al-Ankabut", 69, "Meccan"},
	{30, "الروم", "Ar-Rum", 60, "Meccan"},
	{31, "لقمان", "Luqman", 34, "Meccan"},
	{32, "السجدة", "As-Sajdah", 30, "Meccan"},
	{33, "الأحزاب", "Al-Ahzab", 73, "Medinan"},
	{34, "سبأ", "Saba", 54, "Meccan"},
	{35, "فاطر", "Fatir", 45, "Meccan"},
	{36, "يس", "Ya-Sin", 83, "Meccan"},
	{37, "الصافات", "As-Saffat", 182, "Meccan"},
	{38, "ص", "Sad", 88, "Meccan"},
	{39, "الزمر", "Az-Zumar", 75, "Meccan"},
	{40, "غافر", "Ghafir", 85, "Meccan"},
	{41, "فصلت", "Fussilat", 54, "Meccan"},
	{42, "الشورى", "Ash-Shura", 53, "Meccan"},
	{43, "الزخرف", "Az-Zukhruf", 89, "Meccan"},
	{44, "الدخان", "Ad-Dukhan", 59, "Meccan"},
	{45, "الجاثية", "Al-Jathiyah", 37, "Meccan"},
	{46, "الأحقاف", "Al-Ahqaf", 35, "Meccan"},
	{47, "محمد", "Muhammad", 38, "Medinan"},
	{48, "الفتح", "Al-Fath", 29, "Medinan"},
	{49, "الحجرات", "Al-Hujurat", 18, "Medinan"},
	{50, "ق", "Qaf", 45, "Meccan"},
	{51, "الذاريات", "Adh-Dhariyat", 60, "Meccan"},
	{52, "الطور", "At-Tur", 49, "Meccan"},
	{53, "النجم", "An-Najm", 62, "Meccan"},
	{54, "القمر", "Al-Qamar", 55, "Meccan"},
	{55, "الرحمن", "Ar-Rahman", 78, "Medinan"},
	{56, "الواقعة", "Al-Waqi'ah", 96, "Meccan"},
	{57, "الحديد", "Al-Hadid", 29, "Medinan"},
	{58, "المجادلة", "Al-Mujadila", 22, "Medinan"},
	{59, "الحشر", "Al-Hashr", 24, "Medinan"},
	{60, "الممتحنة", "Al-Mumtahanah", 13, "Medinan"},
	{61, "الصف", "As-Saff", 14, "Medinan"},
	{62, "الجمعة", "Al-Jumu'ah", 11, "Medinan"},
	{63, "المنافقون", "Al-Munafiqun", 11, "Medinan"},
	{64, "التغابن", "At-Taghabun", 18, "Medinan"},
	{65, "الطلاق", "At-Talaq", 12, "Medinan"},
	{66, "التحريم", "At-Tahrim", 12, "Medinan"},
	{67, "الملك", "Al-Mulk", 30, "Meccan"},
	{68, "القلم", "Al-Qalam", 52, "Meccan"},
	{69, "الحاقة", "Al-Haqqah", 52, "Meccan"},
	{70, "المعارج", "Al-Ma'arij", 44, "Meccan"},
	{71, "نوح", "Nuh", 28, "Meccan"},
	{72, "الجن", "Al-Jinn", 28, "Meccan"},
	{73, "المزمل", "Al-Muzzammil", 20, "Meccan"},
	{74, "المدثر", "Al-Muddaththir", 56, "Meccan"},
	{75, "القيامة", "Al-Qiyamah", 40, "Meccan"},
	{76, "الإنسان", "Al-Insan", 31, "Medinan"},
	{77, "المرسلات", "Al-Mursalat", 50, "Meccan"},
	{78, "النبأ", "An-Naba", 40, "Meccan"},
	{79, "النازعات", "An-Nazi'at", 46, "Meccan"},
	{80, "عبس", "Abasa", 42, "Meccan"},
	{81, "التكوير", "At-Takwir", 29, "Meccan"},
	{82, "الانفطار", "Al-Infitar", 19, "Meccan"},
	{83, "المطففين", "Al-Mutaffifin", 36, "Meccan"},
	{84, "الانشقاق", "Al-Inshiqaq", 25, "Meccan"},
	{85, "البروج", "Al-Buruj", 22, "Meccan"},
	{86, "الطارق", "At-Tariq", 17, "Meccan"},
	{87, "الأعلى", "Al-A'la", 19, "Meccan"},
	{88, "الغاشية", "Al-Ghashiyah", 26, "Meccan"},
	{89, "الفجر", "Al-Fajr", 30, "Meccan"},
	{90, "البلد", "Al-Balad", 20, "Meccan"},
	{91, "الشمس", "Ash-Shams", 15, "Meccan"},
	{92, "الليل", "Al-Layl", 21, "Meccan"},
	{93, "الضحى", "Ad-Duha", 11, "Meccan"},
	{94, "الشرح", "Ash-Sharh", 8, "Meccan"},
	{95, "التين", "At-Tin", 8, "Meccan"},
	{96, "العلق", "Al-Alaq", 19, "Meccan"},
	{97, "القدر", "Al-Qadr", 5, "Meccan"},
	{98, "البينة", "Al-Bayyinah", 8, "Medinan"},
	{99, "الزلزلة", "Az-Zalzalah", 8, "Medinan"},
	{100, "العاديات", "Al-Adiyat", 11, "Meccan"},
	{101, "القارعة", "Al-Qari'ah", 11, "Meccan"},
	{102, "التكاثر", "At-Takathur", 8, "Meccan"},
	{103, "العصر", "Al-Asr", 3, "Meccan"},
	{104, "الهمزة", "Al-Humazah", 9, "Meccan"},
	{105, "الفيل", "Al-Fil", 5, "Meccan"},
	{106, "قريش", "Quraysh", 4, "Meccan"},
	{107, "الماعون", "Al-Ma'un", 7, "Meccan"},
	{108, "الكوثر", "Al-Kawthar", 3, "Meccan"},
	{109, "الكافرون", "Al-Kafirun", 6, "Meccan"},
	{110, "النصر", "An-Nasr", 3, "Medinan"},
	{111, "المسد", "Al-Masad", 5, "Meccan"},
	{112, "الإخلاص", "Al-Ikhlas", 4, "Meccan"},
	{113, "الفلق", "Al-Falaq", 5, "Meccan"},
	{114, "الناس", "An-Nas", 6, "Meccan"},
}

// FirstSurah and LastSurah bound valid surah numbers.
const (
	FirstSurah = 1
	LastSurah  = 114
)

// LookupSurah returns the catalog entry for a surah number.
func LookupSurah(number int) (Surah, error) {
	if number < FirstSurah || number > LastSurah {
		return Surah{}, fmt.Errorf("%w: %d", ErrSurahNotFound, number)
	}
	return surahs[number-1], nil
}

// ListSurahs returns all surahs ordered by number. The returned slice is a copy
// so callers cannot corrupt the catalog.
func ListSurahs() []Surah {
	out := make([]Surah, len(surahs))
	copy(out, surahs)
	return out
}
