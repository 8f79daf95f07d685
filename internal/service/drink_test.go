package service

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhite7112/woodpantry-drinks/internal/cocktaildb"
)

// upstreamDrink builds a cocktaildb.Drink from plain strings. An empty value
// is stored as JSON null.
func upstreamDrink(fields map[string]string) cocktaildb.Drink {
	d := make(cocktaildb.Drink, len(fields))
	for k, v := range fields {
		if v == "" {
			d[k] = nil
			continue
		}
		v := v
		d[k] = &v
	}
	return d
}

func margaritaDrink() cocktaildb.Drink {
	return upstreamDrink(map[string]string{
		"idDrink":         "11007",
		"strDrink":        "Margarita",
		"strCategory":     "Ordinary Drink",
		"strAlcoholic":    "Alcoholic",
		"strGlass":        "Cocktail glass",
		"strInstructions": "Rub the rim of the glass with the lime slice.",
		"strDrinkThumb":   "https://example.test/margarita.jpg",
		"strIngredient1":  "Tequila",
		"strIngredient2":  "Triple sec",
		"strIngredient3":  "Lime juice",
		"strIngredient4":  "Salt",
		"strIngredient5":  "",
		"strMeasure1":     "1 1/2 oz ",
		"strMeasure2":     "1/2 oz ",
		"strMeasure3":     "1 oz ",
		"strMeasure4":     "",
	})
}

func namedDrink(id int, name, category, alcoholic string) cocktaildb.Drink {
	return upstreamDrink(map[string]string{
		"idDrink":        strconv.Itoa(id),
		"strDrink":       name,
		"strCategory":    category,
		"strAlcoholic":   alcoholic,
		"strIngredient1": "Gin",
		"strMeasure1":    "2 oz",
	})
}

func deref(values []*string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if v != nil {
			out[i] = *v
		}
	}
	return out
}

// slots pads values with empty entries to the fixed slot count.
func slots(values ...string) []string {
	out := make([]string, cocktaildb.IngredientSlots)
	copy(out, values)
	return out
}

func TestNewDrinkRecord_Margarita(t *testing.T) {
	t.Parallel()

	rec, err := newDrinkRecord(margaritaDrink())
	require.NoError(t, err)

	assert.Equal(t, 11007, rec.ID)
	assert.Equal(t, "Margarita", rec.Name)
	assert.Equal(t, "Ordinary Drink", rec.Category)
	assert.Equal(t, "Alcoholic", rec.Alcoholic)
	assert.Equal(t, "Cocktail glass", rec.Glass)
	require.Len(t, rec.Ingredients, cocktaildb.IngredientSlots)
	require.Len(t, rec.Measures, cocktaildb.IngredientSlots)
	assert.Equal(t, slots("Tequila", "Triple sec", "Lime juice", "Salt"), deref(rec.Ingredients))
	assert.Equal(t, slots("1 1/2 oz", "1/2 oz", "1 oz"), deref(rec.Measures))
	assert.Nil(t, rec.Measures[3])
	assert.Nil(t, rec.Ingredients[4])
	assert.Nil(t, rec.Ingredients[14])
}

func TestIngredientSlots(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		fields          map[string]string
		wantIngredients []string
		wantMeasures    []string
	}{
		{
			name:            "no ingredients at all",
			fields:          map[string]string{},
			wantIngredients: slots(),
			wantMeasures:    slots(),
		},
		{
			name: "measure without ingredient keeps its slot",
			fields: map[string]string{
				"strIngredient1": "Vodka",
				"strMeasure1":    "1 oz",
				"strMeasure2":    "top up",
			},
			wantIngredients: slots("Vodka"),
			wantMeasures:    slots("1 oz", "top up"),
		},
		{
			name: "gap in the middle is positional",
			fields: map[string]string{
				"strIngredient1": "Rum",
				"strIngredient3": "Mint",
				"strMeasure1":    "2 oz",
			},
			wantIngredients: slots("Rum", "", "Mint"),
			wantMeasures:    slots("2 oz"),
		},
		{
			name: "whitespace-only values count as empty",
			fields: map[string]string{
				"strIngredient1": "Rum",
				"strIngredient2": "   ",
				"strMeasure2":    " ",
			},
			wantIngredients: slots("Rum"),
			wantMeasures:    slots(),
		},
		{
			name: "two ingredients one measure",
			fields: map[string]string{
				"strIngredient1": "Gin",
				"strIngredient2": "Tonic",
				"strMeasure1":    "2 oz",
			},
			wantIngredients: slots("Gin", "Tonic"),
			wantMeasures:    slots("2 oz"),
		},
		{
			name: "last slot is read",
			fields: map[string]string{
				"strIngredient15": "Bitters",
			},
			wantIngredients: slots("", "", "", "", "", "", "", "", "", "", "", "", "", "", "Bitters"),
			wantMeasures:    slots(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ingredients, measures := ingredientSlots(upstreamDrink(tc.fields))
			require.Len(t, ingredients, cocktaildb.IngredientSlots)
			require.Len(t, measures, cocktaildb.IngredientSlots)
			assert.Equal(t, tc.wantIngredients, deref(ingredients))
			assert.Equal(t, tc.wantMeasures, deref(measures))
		})
	}
}

func TestNewDrinkRecord_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(cocktaildb.Drink)
		wantErr error
	}{
		{
			name:    "missing id",
			mutate:  func(d cocktaildb.Drink) { delete(d, "idDrink") },
			wantErr: ErrTransport,
		},
		{
			name: "non-integer id",
			mutate: func(d cocktaildb.Drink) {
				v := "eleven"
				d["idDrink"] = &v
			},
			wantErr: ErrTransport,
		},
		{
			name:    "null name",
			mutate:  func(d cocktaildb.Drink) { d["strDrink"] = nil },
			wantErr: ErrTransport,
		},
		{
			name: "unknown category",
			mutate: func(d cocktaildb.Drink) {
				v := "Smoothie"
				d["strCategory"] = &v
			},
			wantErr: ErrUnrecognized,
		},
		{
			name:    "missing category",
			mutate:  func(d cocktaildb.Drink) { delete(d, "strCategory") },
			wantErr: ErrUnrecognized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d := margaritaDrink()
			tc.mutate(d)

			_, err := newDrinkRecord(d)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewDrinkRecord_AcceptsEveryCategory(t *testing.T) {
	t.Parallel()

	for i, c := range Categories {
		rec, err := newDrinkRecord(namedDrink(i+1, "Drink "+strconv.Itoa(i), c, "Alcoholic"))
		require.NoError(t, err, c)
		assert.Equal(t, c, rec.Category)
	}
}
