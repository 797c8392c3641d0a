package assistant_test

import (
	"context"
	"strings"
	"testing"

	"stayfinder/internal/assistant"
	"stayfinder/internal/domain"
)

func newService(t *testing.T, repo *fakeRepo) *assistant.Service {
	t.Helper()
	svc := assistant.NewService(repo)
	if err := svc.Cities().Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	return svc
}

func review(rating float64) domain.Review {
	return domain.Review{User: "Guest", Text: "ok stay", Rating: rating}
}

func TestReply_SearchConvertsBoundsAndFormats(t *testing.T) {
	repo := &fakeRepo{
		cities: []string{"Chișinău"},
		hotels: []domain.Hotel{
			{ID: "a1", Name: "Budget Inn", City: "Chișinău", PriceUSD: 40, Category: 3,
				Reviews: []domain.Review{review(4.0), review(5.0)}},
		},
	}
	svc := newService(t, repo)

	out := svc.Reply(context.Background(), "отели в Кишинёве до 50 евро", assistant.LocaleRus)

	if repo.lastQuery == nil {
		t.Fatal("no query reached the store")
	}
	q := repo.lastQuery
	if q.City != "Chișinău" {
		t.Fatalf("query city = %q", q.City)
	}
	if q.MaxPriceUSD == nil || *q.MaxPriceUSD != 58.82 {
		t.Fatalf("max price usd = %v, want 58.82", q.MaxPriceUSD)
	}
	if q.Limit != 5 {
		t.Fatalf("limit = %d", q.Limit)
	}

	for _, want := range []string{
		"<strong>Найдено отелей:</strong>",
		"<strong>Budget Inn</strong> (Chișinău)",
		"3 звёзд",
		"34.00 €", // 40 usd displayed in the requested currency
		"Рейтинг: 4.5/5",
		"<a href='/search/hotel/a1' target='_blank'>",
		"<em>50.00 € ≈ 58.82 $</em>",
		"Хотите уточнить",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("reply missing %q:\n%s", want, out)
		}
	}
}

func TestReply_GoodReviewsFilterRunsAfterTheCap(t *testing.T) {
	// Six hotels in the store, limit 5. The post-filter sees only the first
	// five, so the excellent sixth hotel never surfaces.
	repo := &fakeRepo{
		cities: []string{"București"},
		hotels: []domain.Hotel{
			{ID: "h1", Name: "Alpha", City: "București", PriceUSD: 20, Category: 3, Reviews: []domain.Review{review(4.5)}},
			{ID: "h2", Name: "Beta", City: "București", PriceUSD: 22, Category: 3, Reviews: []domain.Review{review(3.0)}},
			{ID: "h3", Name: "Gamma", City: "București", PriceUSD: 24, Category: 3, Reviews: []domain.Review{review(4.0)}},
			{ID: "h4", Name: "Delta", City: "București", PriceUSD: 26, Category: 3, Reviews: []domain.Review{review(2.0)}},
			{ID: "h5", Name: "Epsilon", City: "București", PriceUSD: 28, Category: 3, Reviews: []domain.Review{review(3.9)}},
			{ID: "h6", Name: "Zeta", City: "București", PriceUSD: 30, Category: 3, Reviews: []domain.Review{review(5.0)}},
		},
	}
	svc := newService(t, repo)

	out := svc.Reply(context.Background(), "find hotels with good reviews", assistant.LocaleEng)

	if n := strings.Count(out, "• <strong>"); n != 2 {
		t.Fatalf("listed %d hotels, want 2:\n%s", n, out)
	}
	for _, want := range []string{"Alpha", "Gamma"} {
		if !strings.Contains(out, want) {
			t.Fatalf("reply missing %q", want)
		}
	}
	for _, banned := range []string{"Epsilon", "Zeta"} {
		if strings.Contains(out, banned) {
			t.Fatalf("reply should not list %q:\n%s", banned, out)
		}
	}
}

func TestReply_GoodReviewsCanFilterEverythingOut(t *testing.T) {
	repo := &fakeRepo{
		cities: []string{"Iași"},
		hotels: []domain.Hotel{
			{ID: "m1", Name: "Meh", City: "Iași", PriceUSD: 15, Category: 2, Reviews: []domain.Review{review(3.0)}},
		},
	}
	svc := newService(t, repo)

	out := svc.Reply(context.Background(), "find hotels with good reviews", assistant.LocaleEng)
	if !strings.Contains(out, "<strong>No hotels found.</strong>") {
		t.Fatalf("want the no-results reply, got:\n%s", out)
	}
}

func TestReply_TopReviewsOnlyForCategoryFive(t *testing.T) {
	repo := &fakeRepo{
		cities: []string{"Constanța"},
		hotels: []domain.Hotel{
			{ID: "r1", Name: "Sea View Resort", City: "Constanța", PriceUSD: 47, Category: 5,
				Reviews: []domain.Review{
					{User: "Ana", Text: "first", Rating: 5},
					{User: "Bob", Text: "second", Rating: 4},
					{User: "Чарли", Text: "third", Rating: 5},
					{User: "Dan", Text: "fourth", Rating: 5},
				}},
			{ID: "r2", Name: "City Center Motel", City: "Constanța", PriceUSD: 19, Category: 4,
				Reviews: []domain.Review{{User: "Eva", Text: "motel note", Rating: 4}}},
		},
	}
	svc := newService(t, repo)

	out := svc.Reply(context.Background(), "find hotels in Constanta", assistant.LocaleEng)

	if n := strings.Count(out, "Top reviews:"); n != 1 {
		t.Fatalf("top-reviews label count = %d, want 1:\n%s", n, out)
	}
	for _, want := range []string{"«first» — Ana", "«second» — Bob", "«third» — Чарли"} {
		if !strings.Contains(out, want) {
			t.Fatalf("reply missing %q", want)
		}
	}
	// only the first three in storage order, and nothing from the
	// category-4 hotel
	for _, banned := range []string{"fourth", "motel note"} {
		if strings.Contains(out, banned) {
			t.Fatalf("reply should not quote %q:\n%s", banned, out)
		}
	}
}

func TestReply_StoreFailureReadsAsNoResults(t *testing.T) {
	repo := &fakeRepo{cities: []string{"Chișinău"}}
	svc := newService(t, repo)
	repo.err = errStoreDown

	out := svc.Reply(context.Background(), "найди отели", assistant.LocaleRus)
	if !strings.Contains(out, "<strong>Не нашёл отелей.</strong>") {
		t.Fatalf("store failure should read as no results, got:\n%s", out)
	}
}

func TestReply_UnsupportedLanguage(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(t, repo)

	out := svc.Reply(context.Background(), "我想找一家酒店谢谢", assistant.LocaleRus)
	if !strings.Contains(out, "этот язык не поддерживается") {
		t.Fatalf("want unsupported-language reply in profile locale, got:\n%s", out)
	}
	if repo.lastQuery != nil {
		t.Fatal("unsupported language must not reach the store")
	}
}

func TestReply_DetectedLanguageOverridesProfile(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(t, repo)

	// Profile says English, message is clearly Russian; the reply follows
	// the message.
	out := svc.Reply(context.Background(), "найди отели пожалуйста", assistant.LocaleEng)
	if !strings.Contains(out, "Не нашёл отелей") {
		t.Fatalf("want Russian reply, got:\n%s", out)
	}
}

func TestReply_InvalidProfileLocaleDefaultsToEnglish(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(t, repo)

	// "hi" is too short for detection, so the (invalid) profile locale
	// falls back to English.
	out := svc.Reply(context.Background(), "hi", assistant.Locale("xx"))
	if !strings.Contains(out, "I didn't understand that.") {
		t.Fatalf("want English unrecognized reply, got:\n%s", out)
	}
}

func TestGenericError_Localized(t *testing.T) {
	if got := assistant.GenericError(assistant.LocaleRus); !strings.Contains(got, "Что-то пошло не так") {
		t.Fatalf("rus generic error = %q", got)
	}
	if got := assistant.GenericError(assistant.Locale("zz")); !strings.Contains(got, "Something went wrong") {
		t.Fatalf("fallback generic error = %q", got)
	}
}
