package assistant_test

import (
	"context"
	"testing"

	"stayfinder/internal/assistant"
)

func TestCityResolver_Aliases(t *testing.T) {
	r := assistant.NewCityResolver(&fakeRepo{})
	// aliases work without any snapshot at all
	cases := map[string]string{
		"кишинев":    "Chișinău",
		"Кишинёв":    "Chișinău",
		"кишиневе":   "Chișinău",
		"chisinau":   "Chișinău",
		"бухаресте":  "București",
		"iasi":       "Iași",
		"брашов":     "Brașov",
		"constanta!": "Constanța", // punctuation stripped before lookup
	}
	for in, want := range cases {
		if got := r.Resolve(in); got != want {
			t.Fatalf("Resolve(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCityResolver_SnapshotSubstringMatch(t *testing.T) {
	repo := &fakeRepo{cities: []string{"Chișinău", "București", "Iași"}}
	r := assistant.NewCityResolver(repo)

	// before the snapshot is taken only aliases resolve
	if got := r.Resolve("chișin"); got != "" {
		t.Fatalf("pre-refresh Resolve = %q, want empty", got)
	}
	if err := r.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	if got := r.Resolve("chișin"); got != "Chișinău" {
		t.Fatalf("partial input: got %q", got)
	}
	// the other direction: input longer than the stored name
	if got := r.Resolve("iași city"); got == "" {
		t.Fatalf("expected containment match for longer input")
	}
	if got := r.Resolve("atlantis"); got != "" {
		t.Fatalf("unknown city should not resolve, got %q", got)
	}
}

func TestCityResolver_FirstMatchWinsInSnapshotOrder(t *testing.T) {
	repo := &fakeRepo{cities: []string{"Borisov", "Bor"}}
	r := assistant.NewCityResolver(repo)
	if err := r.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	// both candidates contain (or are contained in) "bor"; the scan stops
	// at the first snapshot entry
	if got := r.Resolve("bor"); got != "Borisov" {
		t.Fatalf("got %q, want first snapshot entry", got)
	}
}

func TestCityResolver_RefreshErrorKeepsOldSnapshot(t *testing.T) {
	repo := &fakeRepo{cities: []string{"Chișinău"}}
	r := assistant.NewCityResolver(repo)
	if err := r.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	repo.err = errStoreDown
	if err := r.Refresh(context.Background()); err == nil {
		t.Fatalf("expected refresh error")
	}
	if got := r.Resolve("chișin"); got != "Chișinău" {
		t.Fatalf("old snapshot should survive a failed refresh, got %q", got)
	}
}
