package cocktaildb

import (
	"context"
	"errors"
	"strings"
)

// ErrMalformed is returned when the upstream answers with a payload that is
// not the expected JSON envelope.
var ErrMalformed = errors.New("malformed cocktaildb response")

// Source is the read surface of the CocktailDB API. Both Client and
// BreakerClient implement it.
type Source interface {
	// Search returns every drink whose name matches name. An empty slice
	// means no match.
	Search(ctx context.Context, name string) ([]Drink, error)
	// Random returns one randomly chosen drink.
	Random(ctx context.Context) (Drink, error)
	// FilterByAlcoholic lists the drinks carrying the given alcoholic tag.
	FilterByAlcoholic(ctx context.Context, filter AlcoholicFilter) ([]DrinkSummary, error)
}

// Drink is one entry of the "drinks" array as returned by search.php and
// random.php. Every upstream value is a string or null; null decodes to a nil
// pointer.
type Drink map[string]*string

// Field returns the trimmed value stored under key, or "" when the key is
// absent or null.
func (d Drink) Field(key string) string {
	v, ok := d[key]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

// DrinkSummary is one entry of a filter.php listing.
type DrinkSummary struct {
	ID    string `json:"idDrink"`
	Name  string `json:"strDrink"`
	Thumb string `json:"strDrinkThumb"`
}

// AlcoholicFilter is the value of filter.php's "a" parameter.
type AlcoholicFilter string

const (
	FilterAlcoholic    AlcoholicFilter = "Alcoholic"
	FilterNonAlcoholic AlcoholicFilter = "Non_Alcoholic"
)

// Upstream field names.
const (
	FieldID           = "idDrink"
	FieldName         = "strDrink"
	FieldCategory     = "strCategory"
	FieldAlcoholic    = "strAlcoholic"
	FieldGlass        = "strGlass"
	FieldInstructions = "strInstructions"
	FieldThumbnail    = "strDrinkThumb"
)

// IngredientSlots is the number of strIngredientN / strMeasureN pairs the
// API exposes per drink.
const IngredientSlots = 15
