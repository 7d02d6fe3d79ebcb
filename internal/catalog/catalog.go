// Package catalog is the recipe source of the bot: drink, ingredient and
// category records fetched from TheCocktailDB.
package catalog

//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks

import (
	"context"
	"strings"
)

// Portion is one ingredient line of a drink. Measure is empty when upstream
// does not give one.
type Portion struct {
	Name    string `json:"name"`
	Measure string `json:"measure,omitempty"`
}

// Drink is a full drink record.
type Drink struct {
	Name         string    `json:"name"`
	Type         string    `json:"type,omitempty"`
	Category     string    `json:"category,omitempty"`
	Alcoholic    bool      `json:"alcoholic"`
	Glass        string    `json:"glass,omitempty"`
	Instructions string    `json:"instructions,omitempty"`
	Image        string    `json:"image,omitempty"`
	Ingredients  []Portion `json:"ingredients,omitempty"`
}

// HasIngredient reports whether the drink lists name, ignoring case.
func (d Drink) HasIngredient(name string) bool {
	for _, p := range d.Ingredients {
		if strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}

// LazyDrink is the short drink shape returned by filter queries.
type LazyDrink struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Ingredient is an ingredient record.
type Ingredient struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	Alcohol     bool   `json:"alcohol"`
}

// Catalog answers recipe queries. An empty result is not an error; failures
// are classified as transport or parse errors.
type Catalog interface {
	FindDrinksByName(ctx context.Context, name string) ([]Drink, error)
	FindIngredientByName(ctx context.Context, name string) ([]Ingredient, error)
	FindDrinksByIngredient(ctx context.Context, ingredient string) ([]LazyDrink, error)
	FindDrinksByCategory(ctx context.Context, category string) ([]LazyDrink, error)
	FindDrinksByFirstLetter(ctx context.Context, letter rune) ([]Drink, error)
	ListIngredientNames(ctx context.Context) ([]string, error)
	ListCategoryNames(ctx context.Context) ([]string, error)
}
