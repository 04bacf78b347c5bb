package competitions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "football-stats-service/internal/domain/competitions"
	"football-stats-service/internal/domain/matches"
	"football-stats-service/internal/providers"
)

// ErrUnknownCompetition reports a competition code missing from the registry.
var ErrUnknownCompetition = errors.New("competition not found")

// UnknownCompetitionError carries the code the client asked for.
type UnknownCompetitionError struct {
	Code string
}

func (e *UnknownCompetitionError) Error() string {
	return fmt.Sprintf("Competition %s not found", e.Code)
}

func (e *UnknownCompetitionError) Unwrap() error { return ErrUnknownCompetition }

// Store defines the contract for the in-memory catalog snapshot.
type Store interface {
	ListCompetitions() []domain.Competition
	SetCompetitions(items []domain.Competition)
	Loaded() bool
}

// Provider is the subset of the dataset accessor this service reads from.
type Provider interface {
	providers.CompetitionProvider
	providers.MatchProvider
}

// Service resolves client competition codes and serves the catalog and match lists.
type Service struct {
	provider Provider
	store    Store
	codes    []domain.Code
	byCode   map[string]domain.Code
}

// NewService constructs a Service. Codes are matched case-insensitively.
func NewService(provider Provider, store Store, codes []domain.Code) *Service {
	byCode := make(map[string]domain.Code, len(codes))
	for _, c := range codes {
		byCode[strings.ToUpper(c.Code)] = c
	}
	return &Service{
		provider: provider,
		store:    store,
		codes:    codes,
		byCode:   byCode,
	}
}

// Competitions returns the catalog snapshot once loaded, otherwise fetches it live and keeps it.
func (s *Service) Competitions(ctx context.Context) ([]domain.Competition, error) {
	if s.store != nil && s.store.Loaded() {
		return s.store.ListCompetitions(), nil
	}
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	items, err := s.provider.FetchCompetitions(ctx)
	if err != nil {
		return nil, err
	}
	s.ReplaceCatalog(items)
	return items, nil
}

// ReplaceCatalog swaps the catalog snapshot.
func (s *Service) ReplaceCatalog(items []domain.Competition) {
	if s.store != nil {
		s.store.SetCompetitions(items)
	}
}

// Codes returns the registry in configuration order.
func (s *Service) Codes() []domain.Code {
	out := make([]domain.Code, len(s.codes))
	copy(out, s.codes)
	return out
}

// Resolve maps a client code such as "pl" to its registry entry.
func (s *Service) Resolve(code string) (domain.Code, error) {
	c, ok := s.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return domain.Code{}, &UnknownCompetitionError{Code: code}
	}
	return c, nil
}

// Matches lists the matches of the competition identified by code for one season.
func (s *Service) Matches(ctx context.Context, code string, seasonID int) ([]matches.Match, error) {
	c, err := s.Resolve(code)
	if err != nil {
		return nil, err
	}
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	return s.provider.FetchMatches(ctx, c.ID, seasonID)
}
