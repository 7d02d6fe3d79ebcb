package game

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/m3rciful/barbot/internal/catalog"
	"github.com/m3rciful/barbot/internal/catalog/mocks"
	"github.com/m3rciful/barbot/internal/errs"
)

// seqRand replays values modulo n, then keeps returning zero.
type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) Intn(n int) int {
	if s.i >= len(s.vals) {
		return 0
	}
	v := s.vals[s.i] % n
	s.i++
	return v
}

func drink(name string, ingredients ...string) catalog.Drink {
	d := catalog.Drink{Name: name}
	for _, ing := range ingredients {
		d.Ingredients = append(d.Ingredients, catalog.Portion{Name: ing})
	}
	return d
}

func names(drinks []catalog.Drink) []string {
	out := make([]string, len(drinks))
	for i, d := range drinks {
		out[i] = d.Name
	}
	return out
}

func TestScenarioNarrowing(t *testing.T) {
	pool := []catalog.Drink{
		drink("Screwdriver", "Vodka"),
		drink("Gimlet", "Gin"),
		drink("Daiquiri", "Rum"),
		drink("Bloody Mary", "Vodka"),
	}
	e := New(&seqRand{}, Options{})

	assert.Equal(t, []string{"Vodka", "Gin", "Rum"}, e.Distinguishing(pool))

	r, err := e.Next(pool)
	require.NoError(t, err)
	require.False(t, r.Done())
	assert.Equal(t, [2]string{"Vodka", "Gin"}, r.Options)

	r, err = e.Choose(r.Candidates, "Vodka")
	require.NoError(t, err)
	require.False(t, r.Done())
	assert.Equal(t, []string{"Gimlet", "Daiquiri"}, names(r.Candidates))
	assert.Equal(t, [2]string{"Gin", "Rum"}, r.Options)

	r, err = e.Choose(r.Candidates, "Gin")
	require.NoError(t, err)
	require.True(t, r.Done())
	assert.Equal(t, "Daiquiri", r.Winner.Name)
}

func TestEliminateKeepsIngredientlessDrinks(t *testing.T) {
	pool := []catalog.Drink{
		drink("A", "Vodka", "Lime"),
		drink("B"),
		drink("C", "vodka"),
		drink("D", "Rum"),
	}
	got := Eliminate(pool, "Vodka")
	assert.Equal(t, []string{"B", "D"}, names(got))
	for _, d := range got {
		assert.False(t, d.HasIngredient("Vodka"))
	}
}

func TestIngredientlessDrinksAreNeverOffered(t *testing.T) {
	e := New(&seqRand{}, Options{})
	pool := []catalog.Drink{drink("Water"), drink("Tonic"), drink("Gin Tonic", "Gin", "Tonic water")}
	assert.Equal(t, []string{"Gin"}, e.Distinguishing(pool))

	r, err := e.Next(pool)
	require.NoError(t, err)
	require.True(t, r.Done())
	assert.Equal(t, "Water", r.Winner.Name)
}

func TestSamplingIsRandomPerCandidate(t *testing.T) {
	e := New(&seqRand{vals: []int{2, 1}}, Options{})
	pool := []catalog.Drink{
		drink("A", "Gin", "Lime", "Sugar"),
		drink("B", "Rum", "Mint"),
	}
	assert.Equal(t, []string{"Sugar", "Mint"}, e.Distinguishing(pool))
}

func TestDistinguishingIgnoresCase(t *testing.T) {
	e := New(&seqRand{}, Options{})
	pool := []catalog.Drink{
		drink("A", "Lime juice"),
		drink("B", "lime juice"),
		drink("C", "Gin"),
	}
	assert.Equal(t, []string{"Lime juice", "Gin"}, e.Distinguishing(pool))

	r, err := e.Next(pool)
	require.NoError(t, err)
	require.False(t, r.Done())
	assert.Equal(t, [2]string{"Lime juice", "Gin"}, r.Options)

	r, err = e.Choose(r.Candidates, r.Options[0])
	require.NoError(t, err)
	require.True(t, r.Done())
	assert.Equal(t, "C", r.Winner.Name)
}

func TestEliminationThatEmptiesPoolPicksFirst(t *testing.T) {
	e := New(&seqRand{}, Options{})
	pool := []catalog.Drink{drink("A", "Gin"), drink("B", "Gin", "Rum")}
	r, err := e.Choose(pool, "Gin")
	require.NoError(t, err)
	require.True(t, r.Done())
	assert.Equal(t, "A", r.Winner.Name)
}

func TestEmptyPoolIsInternal(t *testing.T) {
	e := New(&seqRand{}, Options{})
	_, err := e.Next(nil)
	assert.True(t, errs.Is(err, errs.Internal))
	_, err = e.Choose(nil, "Gin")
	assert.True(t, errs.Is(err, errs.Internal))
}

func TestGameTerminates(t *testing.T) {
	ingredients := []string{"Vodka", "Gin", "Rum", "Tequila", "Lime", "Sugar", "Mint", "Soda"}
	for seed := int64(1); seed <= 50; seed++ {
		rnd := NewRand(seed)
		e := New(rnd, Options{})

		n := 1 + rnd.Intn(20)
		pool := make([]catalog.Drink, 0, n)
		for i := range n {
			k := rnd.Intn(4)
			var ings []string
			for range k {
				ings = append(ings, ingredients[rnd.Intn(len(ingredients))])
			}
			pool = append(pool, drink(fmt.Sprintf("drink-%d", i), ings...))
		}
		original := names(pool)

		r, err := e.Next(pool)
		require.NoError(t, err)
		rounds := 0
		for !r.Done() {
			rounds++
			require.LessOrEqual(t, rounds, n, "seed %d", seed)
			before := len(r.Candidates)
			r, err = e.Choose(r.Candidates, r.Options[rnd.Intn(2)])
			require.NoError(t, err)
			if !r.Done() {
				require.Less(t, len(r.Candidates), before)
			}
		}
		assert.Contains(t, original, r.Winner.Name, "seed %d", seed)
	}
}

func TestThin(t *testing.T) {
	pool := []catalog.Drink{drink("a"), drink("b"), drink("c"), drink("d"), drink("e")}
	assert.Equal(t, []string{"a", "c", "e"}, names(Thin(pool)))
	assert.Equal(t, []string{"a"}, names(Thin(pool[:1])))
	assert.Empty(t, Thin(nil))
}

func TestSeedRetriesDistinctLetters(t *testing.T) {
	ctrl := gomock.NewController(t)
	cat := mocks.NewMockCatalog(ctrl)
	// Each draw indexes the untried letters: 0 -> 'a', 0 -> 'b', 1 -> 'd'.
	e := New(&seqRand{vals: []int{0, 0, 1}}, Options{Thin: true})

	gomock.InOrder(
		cat.EXPECT().FindDrinksByFirstLetter(gomock.Any(), 'a').Return(nil, nil),
		cat.EXPECT().FindDrinksByFirstLetter(gomock.Any(), 'b').Return([]catalog.Drink{}, nil),
		cat.EXPECT().FindDrinksByFirstLetter(gomock.Any(), 'd').Return([]catalog.Drink{
			drink("Caipirinha", "Cachaca"), drink("Cosmopolitan", "Vodka"), drink("Cuba Libre", "Rum"),
		}, nil),
	)

	got, err := e.Seed(context.Background(), cat)
	require.NoError(t, err)
	assert.Equal(t, []string{"Caipirinha", "Cuba Libre"}, names(got))
}

func TestSeedGivesUpAfterBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	cat := mocks.NewMockCatalog(ctrl)
	e := New(NewRand(7), Options{SeedAttempts: 3})

	cat.EXPECT().FindDrinksByFirstLetter(gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)

	_, err := e.Seed(context.Background(), cat)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.Transport))
}

func TestSeedPropagatesCatalogError(t *testing.T) {
	ctrl := gomock.NewController(t)
	cat := mocks.NewMockCatalog(ctrl)
	e := New(NewRand(1), Options{})
	down := errs.E(errs.Transport, "catalog.drinks_by_letter", errors.New("down"))

	cat.EXPECT().FindDrinksByFirstLetter(gomock.Any(), gomock.Any()).Return(nil, down)

	_, err := e.Seed(context.Background(), cat)
	assert.ErrorIs(t, err, down)
}
