package assistant

import (
	"regexp"
	"strconv"
	"strings"

	"stayfinder/internal/currency"
	"stayfinder/internal/domain"
)

type IntentKind int

const (
	IntentShowExamples IntentKind = iota
	IntentGreeting
	IntentContactSupport
	IntentHotelSearch
	IntentUnknownCurrency
	IntentUnrecognized
)

func (k IntentKind) String() string {
	switch k {
	case IntentShowExamples:
		return "examples"
	case IntentGreeting:
		return "greeting"
	case IntentContactSupport:
		return "support"
	case IntentHotelSearch:
		return "search"
	case IntentUnknownCurrency:
		return "unknown_currency"
	default:
		return "unrecognized"
	}
}

// Intent is the classified purpose of a message. Filter is populated only
// for IntentHotelSearch.
type Intent struct {
	Kind   IntentKind
	Filter domain.SearchFilter
}

// Keyword sets per locale. Substring matching against the lower-cased
// message, so Russian stems ("отел") cover the case variants.
var (
	examplesKeywords = map[Locale][]string{
		LocaleRus: {"сводка", "примеры", "помощь"},
		LocaleEng: {"examples", "summary", "help"},
		LocaleRom: {"exemple", "rezumat", "ajutor"},
	}
	supportKeywords = map[Locale][]string{
		LocaleRus: {"поддержка", "поддержку", "админ", "support"},
		LocaleEng: {"support", "admin", "operator"},
		LocaleRom: {"suport", "admin", "operator"},
	}
	searchKeywords = map[Locale][]string{
		LocaleRus: {"отел", "гостиниц", "найди", "ищу", "покажи", "hotel"},
		LocaleEng: {"hotel", "find", "search", "show me", "looking for"},
		LocaleRom: {"hotel", "cazare", "caut", "cauta", "arata", "arată"},
	}
	goodReviewKeywords = []string{
		"хорош", "отличн", "высокий рейтинг", "лучшие",
		"good", "excellent", "best", "top rated",
		"bune", "excelente",
	}
	noReviewPhrases = []string{
		"без отзывов", "no reviews", "fără recenzii", "fara recenzii",
	}
)

// currencyForms is the lexical table: every grammatical case, abbreviation
// and symbol we recognize for each currency, scanned in this order with
// first-substring-match-wins. It deliberately knows more currencies than
// the rate table can convert (gbp, pln), which is what trips the
// unknown-currency gate.
var currencyForms = []struct {
	code  string
	forms []string
}{
	{"usd", []string{"долларов", "доллара", "доллар", "доларов", "долара", "долар", "дол.", "dollars", "dollar", "usd", "$"}},
	{"eur", []string{"евро", "euro", "eur", "€"}},
	{"uah", []string{"гривен", "гривни", "гривны", "гривна", "грн", "hryvnia", "uah", "₴"}},
	{"rub", []string{"рублей", "рубля", "рубль", "руб", "rubles", "ruble", "rub", "₽"}},
	{"mdl", []string{"леев", "лея", "лей", "mdl"}},
	{"ron", []string{"леи", "lei", "ron"}},
	{"gbp", []string{"фунтов", "фунта", "фунт", "pounds", "pound", "gbp", "£"}},
	{"pln", []string{"злотых", "злотый", "zloty", "pln", "zł"}},
}

const starsAlt = `звёзд[а-яё]*|звезд[а-яё]*|star[a-z]*|stele`

var (
	maxPriceRe = regexp.MustCompile(`(?:up to|until|under|maxim|max|până la|pana la|до|sub)\s*(\d+(?:[.,]\d+)?)\s*([\p{L}$€₴₽£.]+)?`)
	minPriceRe = regexp.MustCompile(`(?:from|de la|минимум|min|от)\s*(\d+(?:[.,]\d+)?)\s*([\p{L}$€₴₽£.]+)?`)

	starsRangeRe  = regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*(?:` + starsAlt + `)`)
	starsSingleRe = regexp.MustCompile(`(\d+)\s*(?:` + starsAlt + `)`)

	cityRe = regexp.MustCompile(`(?:^|[^\p{L}])(?:в|in|la|în)\s+([\p{L}-]+)`)
)

// intentRule is one step of the priority chain. Rules run in order and the
// first match wins; HotelSearch additionally triggers entity extraction.
type intentRule struct {
	kind  IntentKind
	match func(raw, lower string, loc Locale) bool
}

var intentRules = []intentRule{
	{IntentShowExamples, func(_, lower string, loc Locale) bool {
		return containsAny(lower, examplesKeywords[loc])
	}},
	{IntentGreeting, func(raw, _ string, _ Locale) bool {
		return strings.TrimSpace(raw) == ""
	}},
	{IntentContactSupport, func(_, lower string, loc Locale) bool {
		return containsAny(lower, supportKeywords[loc])
	}},
	{IntentHotelSearch, func(_, lower string, loc Locale) bool {
		return containsAny(lower, searchKeywords[loc])
	}},
}

// Extractor turns raw message text into an Intent. City mentions are
// resolved against the vocabulary snapshot held by Cities.
type Extractor struct {
	Cities *CityResolver
}

func (e Extractor) Extract(message string, loc Locale) Intent {
	lower := strings.ToLower(strings.TrimSpace(message))
	for _, rule := range intentRules {
		if !rule.match(message, lower, loc) {
			continue
		}
		if rule.kind != IntentHotelSearch {
			return Intent{Kind: rule.kind}
		}
		return e.extractSearch(lower)
	}
	return Intent{Kind: IntentUnrecognized}
}

func (e Extractor) extractSearch(lower string) Intent {
	f := domain.SearchFilter{Currency: currency.Base}

	// Currency anywhere in the message; a unit word directly after the
	// price number overrides it later (locality wins).
	if code, ok := detectCurrency(lower); ok {
		f.Currency = code
	}

	e.extractPrice(lower, &f)

	// Validation gate: a price bound in a currency the rate table cannot
	// convert aborts extraction; silently defaulting would search against
	// the wrong bound.
	if (f.MinPrice != nil || f.MaxPrice != nil) && !currency.Known(f.Currency) {
		return Intent{Kind: IntentUnknownCurrency}
	}

	if m := starsRangeRe.FindStringSubmatch(lower); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		f.MinStars, f.MaxStars = &lo, &hi
	} else if m := starsSingleRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		f.MinStars, f.MaxStars = &n, &n
	}

	if m := cityRe.FindStringSubmatch(lower); m != nil {
		span := m[1]
		if resolved := e.Cities.Resolve(span); resolved != "" {
			f.City = resolved
		} else {
			// Unknown to the vocabulary: keep the raw text for an
			// exact-match attempt rather than dropping the constraint.
			f.City = span
		}
	}

	f.WantGoodReviews = containsAny(lower, goodReviewKeywords)
	f.WantNoReviews = containsAny(lower, noReviewPhrases)

	return Intent{Kind: IntentHotelSearch, Filter: f}
}

// extractPrice applies the first (leftmost) price pattern only: one bound
// per message, "up to" markers set the max and "from" markers the min.
// Messages with several price constraints are a documented limitation.
func (e Extractor) extractPrice(lower string, f *domain.SearchFilter) {
	maxIdx := maxPriceRe.FindStringSubmatchIndex(lower)
	minIdx := minPriceRe.FindStringSubmatchIndex(lower)

	pick := func(idx []int, dst **float64) {
		amount, unit := priceGroups(lower, idx)
		v, err := strconv.ParseFloat(strings.ReplaceAll(amount, ",", "."), 64)
		if err != nil {
			return
		}
		*dst = &v
		if unit != "" {
			if code, ok := unitCurrency(unit); ok {
				f.Currency = code
			}
		}
	}

	switch {
	case maxIdx != nil && (minIdx == nil || maxIdx[0] <= minIdx[0]):
		pick(maxIdx, &f.MaxPrice)
	case minIdx != nil:
		pick(minIdx, &f.MinPrice)
	}
}

func priceGroups(s string, idx []int) (amount, unit string) {
	if idx[2] >= 0 {
		amount = s[idx[2]:idx[3]]
	}
	if len(idx) >= 6 && idx[4] >= 0 {
		unit = s[idx[4]:idx[5]]
	}
	return amount, unit
}

// detectCurrency scans the lexical table for the first form found anywhere
// in the message.
func detectCurrency(lower string) (string, bool) {
	for _, c := range currencyForms {
		for _, form := range c.forms {
			if strings.Contains(lower, form) {
				return c.code, true
			}
		}
	}
	return "", false
}

// unitCurrency matches a word that directly followed the number against the
// lexical table. Exact form match after trimming a trailing dot.
func unitCurrency(unit string) (string, bool) {
	unit = strings.TrimSuffix(unit, ".")
	for _, c := range currencyForms {
		for _, form := range c.forms {
			if unit == strings.TrimSuffix(form, ".") {
				return c.code, true
			}
		}
	}
	return "", false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
