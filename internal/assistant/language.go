package assistant

import "unicode"

// Locale is one of the three response languages the catalog has strings for.
type Locale string

const (
	LocaleRus Locale = "rus"
	LocaleEng Locale = "eng"
	LocaleRom Locale = "rom"

	// LocaleUnsupported means the message is dominated by a script we have
	// no translations for; the pipeline must short-circuit with the
	// "language not supported" reply instead of classifying intent.
	LocaleUnsupported Locale = "unsupported"

	// LocaleNone means not enough signal either way; the caller keeps the
	// profile-configured language.
	LocaleNone Locale = ""
)

// ValidLocale reports whether l is one of the three supported locales.
func ValidLocale(l Locale) bool {
	return l == LocaleRus || l == LocaleEng || l == LocaleRom
}

// minLetters is the minimum dominant-script count before we trust the
// classification over the user's profile setting.
const minLetters = 5

var romanianDiacritics = map[rune]bool{
	'ă': true, 'â': true, 'î': true, 'ș': true, 'ş': true, 'ț': true, 'ţ': true,
	'Ă': true, 'Â': true, 'Î': true, 'Ș': true, 'Ş': true, 'Ț': true, 'Ţ': true,
}

// DetectLanguage classifies the dominant script of a message by character
// counting. Rules, in order: Cyrillic majority above the threshold wins as
// rus; Latin majority above the threshold wins as eng; any Romanian
// diacritic wins as rom; a majority of letters from some other script wins
// as unsupported; otherwise no signal.
func DetectLanguage(message string) Locale {
	var cyr, lat, other int
	hasDiacritic := false
	for _, r := range message {
		switch {
		case romanianDiacritics[r]:
			hasDiacritic = true
		case r >= 'а' && r <= 'я' || r >= 'А' && r <= 'Я' || r == 'ё' || r == 'Ё':
			cyr++
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			lat++
		case unicode.IsLetter(r):
			other++
		}
	}
	switch {
	case cyr > lat && cyr > minLetters:
		return LocaleRus
	case lat > cyr && lat > minLetters:
		return LocaleEng
	case hasDiacritic:
		return LocaleRom
	case other > cyr && other > lat && other > minLetters:
		return LocaleUnsupported
	default:
		return LocaleNone
	}
}
