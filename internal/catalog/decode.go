package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// record is one upstream object; every value is a string or null.
type record map[string]any

func (r record) str(key string) string {
	s, _ := r[key].(string)
	return strings.TrimSpace(s)
}

var errNoName = errors.New("record without a name")

// decodeItems extracts the record list from an upstream envelope such as
// {"drinks": [...]} or {"ingredients": [...]}. A missing, null or non-array
// list means "no results" (upstream answers "None Found" strings at times).
func decodeItems(body []byte) ([]record, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	for _, key := range []string{"drinks", "ingredients"} {
		raw := bytes.TrimSpace(envelope[key])
		if len(raw) == 0 || raw[0] != '[' {
			continue
		}
		var items []record
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		return items, nil
	}
	return nil, nil
}

func decodeDrink(r record) (Drink, error) {
	d := Drink{
		Name:         r.str("strDrink"),
		Type:         r.str("strTags"),
		Category:     r.str("strCategory"),
		Alcoholic:    isAlcoholic(r.str("strAlcoholic")),
		Glass:        r.str("strGlass"),
		Instructions: r.str("strInstructions"),
		Image:        r.str("strDrinkThumb"),
	}
	if d.Name == "" {
		return Drink{}, errNoName
	}
	for i := 1; ; i++ {
		key := fmt.Sprintf("strIngredient%d", i)
		if _, present := r[key]; !present {
			break
		}
		name := r.str(key)
		if name == "" {
			continue
		}
		d.Ingredients = append(d.Ingredients, Portion{
			Name:    name,
			Measure: r.str(fmt.Sprintf("strMeasure%d", i)),
		})
	}
	return d, nil
}

// isAlcoholic is a best-effort reading of the free-text strAlcoholic field:
// any value containing "Alcoholic" counts. "Non alcoholic" is lower case
// upstream and therefore does not match.
func isAlcoholic(v string) bool {
	return strings.Contains(v, "Alcoholic")
}

func decodeLazyDrink(r record) (LazyDrink, error) {
	d := LazyDrink{Name: r.str("strDrink"), Image: r.str("strDrinkThumb")}
	if d.Name == "" {
		return LazyDrink{}, errNoName
	}
	return d, nil
}

func decodeIngredient(r record) (Ingredient, error) {
	ing := Ingredient{
		Name:        r.str("strIngredient"),
		Description: r.str("strDescription"),
		Type:        r.str("strType"),
	}
	if ing.Name == "" {
		return Ingredient{}, errNoName
	}
	switch raw := r["strAlcohol"]; raw {
	case "Yes":
		ing.Alcohol = true
	case "No":
		ing.Alcohol = false
	default:
		return Ingredient{}, fmt.Errorf("ingredient %q: unexpected strAlcohol %v", ing.Name, raw)
	}
	return ing, nil
}

// decodeName reads list entries, which carry their value under one key.
func decodeName(key string) func(record) (string, error) {
	return func(r record) (string, error) {
		if v := r.str(key); v != "" {
			return v, nil
		}
		return "", errNoName
	}
}
