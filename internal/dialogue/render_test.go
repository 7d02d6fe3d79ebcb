package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m3rciful/barbot/internal/game"
)

type fixedRand int

func (f fixedRand) Intn(n int) int { return int(f) % n }

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestSelectShowsAllWithinLimit(t *testing.T) {
	items := seq(5)
	assert.Equal(t, items, Select(fixedRand(3), items, 5))
	assert.Equal(t, items, Select(fixedRand(3), items, 10))
	assert.Equal(t, items, Select(fixedRand(3), items, 0))
	assert.Empty(t, Select(fixedRand(0), []int{}, 3))
}

func TestSelectWindow(t *testing.T) {
	items := seq(10)
	assert.Equal(t, []int{0, 1, 2}, Select(fixedRand(0), items, 3))
	assert.Equal(t, []int{4, 5, 6}, Select(fixedRand(4), items, 3))
	assert.Equal(t, []int{7, 8, 9}, Select(fixedRand(7), items, 3))
}

func TestSelectCoversEveryOffset(t *testing.T) {
	items := seq(12)
	const limit = 5
	rnd := game.NewRand(99)
	starts := map[int]int{}
	for range 2000 {
		got := Select(rnd, items, limit)
		if !assert.Len(t, got, limit) {
			return
		}
		for i := 1; i < len(got); i++ {
			assert.Equal(t, got[i-1]+1, got[i])
		}
		starts[got[0]]++
	}
	assert.Len(t, starts, len(items)-limit+1)
}
