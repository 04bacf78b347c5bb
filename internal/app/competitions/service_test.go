package competitions

import (
	"context"
	"errors"
	"testing"

	domain "football-stats-service/internal/domain/competitions"
	"football-stats-service/internal/domain/matches"
	"football-stats-service/internal/providers"
	"football-stats-service/internal/store"
	"football-stats-service/internal/teststubs"
)

func testCodes() []domain.Code {
	return []domain.Code{{Code: "WC", ID: 43, Country: "International"}, {Code: "PL", ID: 2, Country: "England"}}
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	svc := NewService(nil, nil, testCodes())

	for _, code := range []string{"pl", "PL", " Pl "} {
		got, err := svc.Resolve(code)
		if err != nil || got.ID != 2 {
			t.Fatalf("Resolve(%q) = %+v, %v", code, got, err)
		}
	}
}

func TestResolveUnknownCode(t *testing.T) {
	svc := NewService(nil, nil, testCodes())

	_, err := svc.Resolve("XYZ")
	if !errors.Is(err, ErrUnknownCompetition) {
		t.Fatalf("expected ErrUnknownCompetition, got %v", err)
	}
	if err.Error() != "Competition XYZ not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestCompetitionsFetchesOnceThenServesSnapshot(t *testing.T) {
	provider := &teststubs.StubProvider{Competitions: teststubs.SampleCompetitions()}
	svc := NewService(provider, store.NewCatalogStore(), testCodes())

	for i := 0; i < 3; i++ {
		got, err := svc.Competitions(context.Background())
		if err != nil || len(got) != 3 {
			t.Fatalf("unexpected competitions %v %v", got, err)
		}
	}
	if provider.Calls.Load() != 1 {
		t.Fatalf("expected one upstream fetch, got %d", provider.Calls.Load())
	}
}

func TestReplaceCatalogUpdatesSnapshot(t *testing.T) {
	provider := &teststubs.StubProvider{}
	svc := NewService(provider, store.NewCatalogStore(), testCodes())
	svc.ReplaceCatalog([]domain.Competition{{CompetitionID: 9, SeasonID: 281}})

	got, err := svc.Competitions(context.Background())
	if err != nil || len(got) != 1 || got[0].CompetitionID != 9 {
		t.Fatalf("unexpected competitions %v %v", got, err)
	}
	if provider.Calls.Load() != 0 {
		t.Fatalf("expected no upstream call, got %d", provider.Calls.Load())
	}
}

func TestCompetitionsPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&teststubs.StubProvider{Err: boom}, store.NewCatalogStore(), nil)
	if _, err := svc.Competitions(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected provider error, got %v", err)
	}

	svc = NewService(nil, nil, nil)
	if _, err := svc.Competitions(context.Background()); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestMatchesResolvesCodeToDatasetID(t *testing.T) {
	provider := &teststubs.StubProvider{Matches: []matches.Match{
		{MatchID: 1, CompetitionID: 43, SeasonID: 106},
		{MatchID: 2, CompetitionID: 2, SeasonID: 27},
	}}
	svc := NewService(provider, nil, testCodes())

	got, err := svc.Matches(context.Background(), "wc", 106)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || got[0].MatchID != 1 {
		t.Fatalf("unexpected matches %+v", got)
	}

	if _, err := svc.Matches(context.Background(), "DED", 106); !errors.Is(err, ErrUnknownCompetition) {
		t.Fatalf("expected unknown competition, got %v", err)
	}
	if provider.Calls.Load() != 1 {
		t.Fatalf("unknown codes must not reach the provider, got %d calls", provider.Calls.Load())
	}
}

func TestCodesReturnsCopy(t *testing.T) {
	svc := NewService(nil, nil, testCodes())
	codes := svc.Codes()
	codes[0].ID = 0
	if svc.Codes()[0].ID != 43 {
		t.Fatal("expected Codes to return a copy")
	}
}
