package service

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/mwhite7112/woodpantry-drinks/internal/metrics"
)

// ListResult is returned by AddDrink and RemoveDrink.
type ListResult struct {
	Status string      `json:"status"`
	Drink  DrinkRecord `json:"drink"`
	// Updated is set when AddDrink replaced an entry instead of appending.
	Updated bool `json:"updated"`
}

// drinkList is the working list. Names are unique case-insensitively.
type drinkList struct {
	mu     sync.Mutex
	drinks []DrinkRecord
}

// AddDrink resolves name through FetchByName and stores the record. A drink
// already held under the same case-insensitive name is replaced in place.
func (s *Service) AddDrink(ctx context.Context, name string) (ListResult, error) {
	rec, err := s.FetchByName(ctx, name)
	if err != nil {
		return ListResult{}, err
	}

	s.list.mu.Lock()
	defer s.list.mu.Unlock()

	for i, held := range s.list.drinks {
		if strings.EqualFold(held.Name, rec.Name) {
			s.list.drinks[i] = rec
			return ListResult{
				Status:  fmt.Sprintf("Updated %s in your list.", rec.Name),
				Drink:   rec,
				Updated: true,
			}, nil
		}
	}

	s.list.drinks = append(s.list.drinks, rec)
	metrics.DrinkListSize.Set(float64(len(s.list.drinks)))
	slog.Info("drink added to list", "name", rec.Name, "id", rec.ID)

	return ListResult{Status: fmt.Sprintf("Added %s to your list.", rec.Name), Drink: rec}, nil
}

// RemoveDrink removes the first held drink matching name case-insensitively.
// On a miss the error suggests the closest held name, if any is close enough.
func (s *Service) RemoveDrink(name string) (ListResult, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ListResult{}, fmt.Errorf("%w: drink name is required", ErrValidation)
	}

	s.list.mu.Lock()
	defer s.list.mu.Unlock()

	for i, held := range s.list.drinks {
		if strings.EqualFold(held.Name, trimmed) {
			s.list.drinks = slices.Delete(s.list.drinks, i, i+1)
			metrics.DrinkListSize.Set(float64(len(s.list.drinks)))
			slog.Info("drink removed from list", "name", held.Name, "id", held.ID)
			return ListResult{Status: fmt.Sprintf("Removed %s from your list.", held.Name), Drink: held}, nil
		}
	}

	names := make([]string, len(s.list.drinks))
	for i, held := range s.list.drinks {
		names[i] = held.Name
	}
	if suggestion, ok := closestName(trimmed, names, s.threshold); ok {
		return ListResult{}, fmt.Errorf("%w: %s not found in the list, did you mean %s?", ErrNotFound, trimmed, suggestion)
	}
	return ListResult{}, fmt.Errorf("%w: %s not found in the list", ErrNotFound, trimmed)
}

// ListNames returns the held names sorted case-insensitively. Names equal
// apart from case are ordered byte-wise, so "Martini" precedes "martini".
func (s *Service) ListNames() []string {
	drinks := s.ListDrinks()
	names := make([]string, len(drinks))
	for i, d := range drinks {
		names[i] = d.Name
	}
	return names
}

// ListDrinks returns a snapshot of the held records in ListNames order.
func (s *Service) ListDrinks() []DrinkRecord {
	s.list.mu.Lock()
	drinks := slices.Clone(s.list.drinks)
	s.list.mu.Unlock()

	if drinks == nil {
		drinks = []DrinkRecord{}
	}
	slices.SortStableFunc(drinks, func(a, b DrinkRecord) int {
		return compareNames(a.Name, b.Name)
	})
	return drinks
}

func compareNames(a, b string) int {
	if c := cmp.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}
