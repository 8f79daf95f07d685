package service

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrinkCache_PutAndGet(t *testing.T) {
	t.Parallel()
	c := newDrinkCache()

	_, ok := c.get("margarita")
	assert.False(t, ok)

	c.put(DrinkRecord{ID: 11007, Name: "Margarita"}, "  MARG ", "")

	rec, ok := c.get("margarita")
	require.True(t, ok)
	assert.Equal(t, 11007, rec.ID)

	rec, ok = c.get("marg")
	require.True(t, ok)
	assert.Equal(t, "Margarita", rec.Name)

	assert.Equal(t, 2, c.len())
}

func TestDrinkCache_PutOverwrites(t *testing.T) {
	t.Parallel()
	c := newDrinkCache()

	c.put(DrinkRecord{ID: 1, Name: "Mojito"})
	c.put(DrinkRecord{ID: 2, Name: "MOJITO"})

	rec, ok := c.get("mojito")
	require.True(t, ok)
	assert.Equal(t, 2, rec.ID)
	assert.Equal(t, 1, c.len())
}

func TestDrinkCache_ConcurrentPut(t *testing.T) {
	t.Parallel()
	c := newDrinkCache()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.put(DrinkRecord{ID: i, Name: fmt.Sprintf("Drink %d", i)})
			_, _ = c.get("drink 0")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, n, c.len())
}
