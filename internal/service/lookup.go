package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mwhite7112/woodpantry-drinks/internal/cocktaildb"
)

// FetchByName returns the drink called name, serving it from the cache when
// possible. The upstream match whose name equals the query wins, otherwise the
// first match is used; it is cached under its own name and under the query.
func (s *Service) FetchByName(ctx context.Context, name string) (DrinkRecord, error) {
	key := Normalize(name)
	if key == "" {
		return DrinkRecord{}, fmt.Errorf("%w: drink name is required", ErrValidation)
	}

	if rec, ok := s.cache.get(key); ok {
		return rec, nil
	}

	drinks, err := s.source.Search(ctx, strings.TrimSpace(name))
	if err != nil {
		return DrinkRecord{}, upstreamError("search", err)
	}
	if len(drinks) == 0 {
		return DrinkRecord{}, fmt.Errorf("%w: drink %q", ErrNotFound, strings.TrimSpace(name))
	}

	rec, err := newDrinkRecord(bestMatch(drinks, key))
	if err != nil {
		return DrinkRecord{}, err
	}
	s.cache.put(rec, key)
	return rec, nil
}

// FetchRandom returns a random drink and caches it under its name.
func (s *Service) FetchRandom(ctx context.Context) (DrinkRecord, error) {
	d, err := s.source.Random(ctx)
	if err != nil {
		return DrinkRecord{}, upstreamError("random", err)
	}
	if len(d) == 0 {
		return DrinkRecord{}, fmt.Errorf("%w: random returned an empty drink", ErrTransport)
	}

	rec, err := newDrinkRecord(d)
	if err != nil {
		return DrinkRecord{}, err
	}
	s.cache.put(rec)
	return rec, nil
}

// IsAlcoholic reports whether the drink called name contains alcohol. The
// alcoholic and non-alcoholic filter listings are consulted first; names in
// neither (or both) fall back to the status on the drink's own record.
func (s *Service) IsAlcoholic(ctx context.Context, name string) (bool, error) {
	key := Normalize(name)
	if key == "" {
		return false, fmt.Errorf("%w: drink name is required", ErrValidation)
	}

	if err := s.refs.load(ctx, s.source); err != nil {
		return false, err
	}
	inAlcoholic, inNon := s.refs.lookup(key)
	switch {
	case inAlcoholic && !inNon:
		return true, nil
	case inNon && !inAlcoholic:
		return false, nil
	}

	rec, err := s.FetchByName(ctx, name)
	if err != nil {
		return false, err
	}
	return alcoholicStatus(rec)
}

// CountAlcoholic counts how many of names are alcoholic. Names the upstream
// does not know are skipped; any other failure aborts the count.
func (s *Service) CountAlcoholic(ctx context.Context, names []string) (int, error) {
	count := 0
	for _, name := range names {
		alcoholic, err := s.IsAlcoholic(ctx, name)
		if errors.Is(err, ErrNotFound) {
			slog.Warn("skipping unknown drink", "name", name)
			continue
		}
		if err != nil {
			return 0, err
		}
		if alcoholic {
			count++
		}
	}
	return count, nil
}

// bestMatch returns the drink whose normalized name equals key, falling back
// to the first result.
func bestMatch(drinks []cocktaildb.Drink, key string) cocktaildb.Drink {
	for _, d := range drinks {
		if Normalize(d.Field(cocktaildb.FieldName)) == key {
			return d
		}
	}
	return drinks[0]
}

func alcoholicStatus(rec DrinkRecord) (bool, error) {
	switch {
	case strings.EqualFold(rec.Alcoholic, "Alcoholic"):
		return true, nil
	case strings.EqualFold(rec.Alcoholic, "Non alcoholic"):
		return false, nil
	default:
		return false, fmt.Errorf("%w: drink %q has alcoholic status %q", ErrUnrecognized, rec.Name, rec.Alcoholic)
	}
}

func upstreamError(op string, err error) error {
	return fmt.Errorf("%w: cocktaildb %s: %w", ErrTransport, op, err)
}

// --- reference sets ---

// load fetches both filter listings unless a previous call already did. The
// lock is held for the fetch so concurrent callers share one load.
func (r *referenceSets) load(ctx context.Context, source cocktaildb.Source) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded {
		return nil
	}

	alcoholic, err := fetchNames(ctx, source, cocktaildb.FilterAlcoholic)
	if err != nil {
		return err
	}
	nonAlcoholic, err := fetchNames(ctx, source, cocktaildb.FilterNonAlcoholic)
	if err != nil {
		return err
	}

	r.alcoholic, r.nonAlcoholic, r.loaded = alcoholic, nonAlcoholic, true
	slog.Info("loaded alcoholic reference sets", "alcoholic", len(alcoholic), "non_alcoholic", len(nonAlcoholic))
	return nil
}

func (r *referenceSets) lookup(key string) (inAlcoholic, inNonAlcoholic bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, inAlcoholic = r.alcoholic[key]
	_, inNonAlcoholic = r.nonAlcoholic[key]
	return inAlcoholic, inNonAlcoholic
}

func fetchNames(ctx context.Context, source cocktaildb.Source, filter cocktaildb.AlcoholicFilter) (map[string]struct{}, error) {
	summaries, err := source.FilterByAlcoholic(ctx, filter)
	if err != nil {
		return nil, upstreamError("filter "+string(filter), err)
	}
	names := make(map[string]struct{}, len(summaries))
	for _, d := range summaries {
		if k := Normalize(d.Name); k != "" {
			names[k] = struct{}{}
		}
	}
	return names, nil
}
