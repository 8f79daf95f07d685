package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mwhite7112/woodpantry-drinks/internal/cocktaildb"
	"github.com/mwhite7112/woodpantry-drinks/internal/mocks"
)

// serveDrinks answers every Search with a drink whose name is the query.
func serveDrinks(src *mocks.MockSource) {
	src.EXPECT().Search(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, name string) ([]cocktaildb.Drink, error) {
			return []cocktaildb.Drink{namedDrink(len(name), name, "Cocktail", "Alcoholic")}, nil
		}).Maybe()
}

func addAll(t *testing.T, svc *Service, names ...string) {
	t.Helper()
	for _, n := range names {
		_, err := svc.AddDrink(context.Background(), n)
		require.NoError(t, err)
	}
}

// ---------------------------------------------------------------------------
// AddDrink
// ---------------------------------------------------------------------------

func TestAddDrink_Appends(t *testing.T) {
	t.Parallel()
	svc, src := newTestService(t)
	src.EXPECT().Search(mock.Anything, "margarita").
		Return([]cocktaildb.Drink{margaritaDrink()}, nil).Once()

	result, err := svc.AddDrink(context.Background(), "margarita")
	require.NoError(t, err)
	assert.Equal(t, "Added Margarita to your list.", result.Status)
	assert.False(t, result.Updated)
	assert.Equal(t, 11007, result.Drink.ID)
	assert.Equal(t, []string{"Margarita"}, svc.ListNames())
}

func TestAddDrink_ReAddOverwritesInPlace(t *testing.T) {
	t.Parallel()
	svc, src := newTestService(t)
	serveDrinks(src)
	addAll(t, svc, "Mojito", "Negroni")

	result, err := svc.AddDrink(context.Background(), "MOJITO")
	require.NoError(t, err)
	assert.True(t, result.Updated)
	assert.Equal(t, "Updated Mojito in your list.", result.Status)
	assert.Equal(t, []string{"Mojito", "Negroni"}, svc.ListNames())
}

func TestAddDrink_LookupFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		drinks  []cocktaildb.Drink
		err     error
		wantErr error
	}{
		{name: "empty name", query: " ", wantErr: ErrValidation},
		{name: "unknown drink", query: "Ghost", drinks: nil, wantErr: ErrNotFound},
		{name: "upstream down", query: "Ghost", err: errors.New("connection refused"), wantErr: ErrTransport},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc, src := newTestService(t)
			if tc.wantErr != ErrValidation {
				src.EXPECT().Search(mock.Anything, tc.query).Return(tc.drinks, tc.err).Once()
			}

			_, err := svc.AddDrink(context.Background(), tc.query)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, svc.ListNames())
		})
	}
}

// ---------------------------------------------------------------------------
// RemoveDrink
// ---------------------------------------------------------------------------

func TestRemoveDrink_CaseInsensitive(t *testing.T) {
	t.Parallel()
	svc, src := newTestService(t)
	serveDrinks(src)
	addAll(t, svc, "Old Fashioned", "Sazerac")

	result, err := svc.RemoveDrink("  old FASHIONED ")
	require.NoError(t, err)
	assert.Equal(t, "Removed Old Fashioned from your list.", result.Status)
	assert.Equal(t, "Old Fashioned", result.Drink.Name)
	assert.Equal(t, []string{"Sazerac"}, svc.ListNames())
}

func TestRemoveDrink_NotFoundLeavesListUnchanged(t *testing.T) {
	t.Parallel()
	svc, src := newTestService(t)
	serveDrinks(src)
	addAll(t, svc, "Martini", "Daiquiri")
	before := svc.ListDrinks()

	_, err := svc.RemoveDrink("NonExistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "NonExistent not found in the list")
	assert.NotContains(t, err.Error(), "did you mean")

	assert.Equal(t, before, svc.ListDrinks())
}

func TestRemoveDrink_SuggestsCloseName(t *testing.T) {
	t.Parallel()
	svc, src := newTestService(t)
	serveDrinks(src)
	addAll(t, svc, "Daiquiri", "Martini")

	_, err := svc.RemoveDrink("Daquiri")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "did you mean Daiquiri?")
	assert.Len(t, svc.ListNames(), 2)
}

func TestRemoveDrink_EmptyName(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := svc.RemoveDrink("")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

// ---------------------------------------------------------------------------
// ListNames / ListDrinks
// ---------------------------------------------------------------------------

func TestListNames_Empty(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	names := svc.ListNames()
	assert.NotNil(t, names)
	assert.Empty(t, names)
	assert.NotNil(t, svc.ListDrinks())
}

func TestListNames_CaseInsensitiveOrder(t *testing.T) {
	t.Parallel()
	svc, src := newTestService(t)
	serveDrinks(src)
	addAll(t, svc, "Martini", "margarita")

	assert.Equal(t, []string{"margarita", "Martini"}, svc.ListNames())

	drinks := svc.ListDrinks()
	require.Len(t, drinks, 2)
	assert.Equal(t, "margarita", drinks[0].Name)
}

func TestCompareNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{a: "margarita", b: "Martini", want: -1},
		{a: "Zombie", b: "aviation", want: 1},
		{a: "Martini", b: "martini", want: -1},
		{a: "martini", b: "Martini", want: 1},
		{a: "Mojito", b: "Mojito", want: 0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, compareNames(tc.a, tc.b), "%q vs %q", tc.a, tc.b)
	}
}

// ---------------------------------------------------------------------------
// Scenarios
// ---------------------------------------------------------------------------

func TestList_AddAddRemoveScenario(t *testing.T) {
	t.Parallel()
	svc, src := newTestService(t)
	src.EXPECT().Search(mock.Anything, "Margarita").
		Return([]cocktaildb.Drink{margaritaDrink()}, nil).Once()
	src.EXPECT().Search(mock.Anything, "Martini").
		Return([]cocktaildb.Drink{namedDrink(11728, "Martini", "Cocktail", "Alcoholic")}, nil).Once()

	_, err := svc.AddDrink(context.Background(), "Margarita")
	require.NoError(t, err)
	assert.Equal(t, []string{"Margarita"}, svc.ListNames())

	_, err = svc.AddDrink(context.Background(), "Martini")
	require.NoError(t, err)
	assert.Equal(t, []string{"Margarita", "Martini"}, svc.ListNames())

	_, err = svc.RemoveDrink("Margarita")
	require.NoError(t, err)
	assert.Equal(t, []string{"Martini"}, svc.ListNames())
}

func TestList_ConcurrentAddThenRemove(t *testing.T) {
	t.Parallel()
	svc, src := newTestService(t)
	serveDrinks(src)

	names := []string{"Mojito", "Negroni", "Gimlet", "Sidecar", "Paloma"}
	const workers = 50

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.AddDrink(context.Background(), names[i%len(names)])
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.ElementsMatch(t, names, svc.ListNames(), "concurrent adds must not duplicate entries")

	var removed atomic.Int32
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.RemoveDrink(names[i%len(names)])
			if err == nil {
				removed.Add(1)
				return
			}
			assert.ErrorIs(t, err, ErrNotFound)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(len(names)), removed.Load(), "each drink is removed exactly once")
	assert.Empty(t, svc.ListNames())
}
