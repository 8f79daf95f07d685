package service

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/mwhite7112/woodpantry-drinks/internal/cocktaildb"
)

// DrinkRecord is the normalized form of an upstream drink. Records are never
// mutated after construction; a cache refresh replaces the whole value.
type DrinkRecord struct {
	ID           int    `json:"id"`
	Name         string `json:"name" validate:"required"`
	Category     string `json:"category" validate:"drinkcategory"`
	Alcoholic    string `json:"alcoholic"`
	Glass        string `json:"glass"`
	Instructions string `json:"instructions"`
	Thumbnail    string `json:"thumbnail"`
	// Ingredients and Measures are positional: Measures[i] belongs to
	// Ingredients[i]. Both always hold cocktaildb.IngredientSlots entries and
	// a nil entry marks an empty slot.
	Ingredients []*string `json:"ingredients"`
	Measures    []*string `json:"measures"`
}

// Categories is the closed set of drink categories the upstream uses.
var Categories = []string{
	"Cocktail",
	"Ordinary Drink",
	"Punch / Party Drink",
	"Shake",
	"Other / Unknown",
	"Cocoa",
	"Shot",
	"Coffee / Tea",
	"Homemade Liqueur",
	"Beer",
	"Soft Drink",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	known := make(map[string]struct{}, len(Categories))
	for _, c := range Categories {
		known[c] = struct{}{}
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("drinkcategory", func(fl validator.FieldLevel) bool {
		_, ok := known[fl.Field().String()]
		return ok
	})
	return v
}

// newDrinkRecord validates one upstream drink and converts it. Missing or
// malformed identity fields are reported as ErrTransport since they mean the
// upstream payload is broken; an unknown category is ErrUnrecognized.
func newDrinkRecord(d cocktaildb.Drink) (DrinkRecord, error) {
	rawID := d.Field(cocktaildb.FieldID)
	if rawID == "" {
		return DrinkRecord{}, fmt.Errorf("%w: drink is missing %s", ErrTransport, cocktaildb.FieldID)
	}
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return DrinkRecord{}, fmt.Errorf("%w: %s %q is not an integer", ErrTransport, cocktaildb.FieldID, rawID)
	}

	rec := DrinkRecord{
		ID:           id,
		Name:         d.Field(cocktaildb.FieldName),
		Category:     d.Field(cocktaildb.FieldCategory),
		Alcoholic:    d.Field(cocktaildb.FieldAlcoholic),
		Glass:        d.Field(cocktaildb.FieldGlass),
		Instructions: d.Field(cocktaildb.FieldInstructions),
		Thumbnail:    d.Field(cocktaildb.FieldThumbnail),
	}
	rec.Ingredients, rec.Measures = ingredientSlots(d)

	if err := validate.Struct(rec); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return DrinkRecord{}, fmt.Errorf("validate drink %d: %w", id, err)
		}
		for _, fe := range verrs {
			if fe.Tag() == "drinkcategory" {
				return DrinkRecord{}, fmt.Errorf("%w: drink %d has category %q", ErrUnrecognized, id, rec.Category)
			}
		}
		return DrinkRecord{}, fmt.Errorf("%w: drink %d: %v", ErrTransport, id, verrs)
	}
	return rec, nil
}

// ingredientSlots reads strIngredient1..15 and strMeasure1..15 into two
// fixed-size slot arrays. Empty and null values leave the slot nil.
func ingredientSlots(d cocktaildb.Drink) (ingredients, measures []*string) {
	ingredients = make([]*string, cocktaildb.IngredientSlots)
	measures = make([]*string, cocktaildb.IngredientSlots)

	for i := range cocktaildb.IngredientSlots {
		n := strconv.Itoa(i + 1)
		if v := d.Field("strIngredient" + n); v != "" {
			ingredients[i] = &v
		}
		if v := d.Field("strMeasure" + n); v != "" {
			measures[i] = &v
		}
	}
	return ingredients, measures
}
