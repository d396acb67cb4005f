package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Create_AssignsIncreasingIDs(t *testing.T) {
	c := NewCatalog()

	tea, err := c.Create("Tea", 20.0, "")
	require.NoError(t, err)
	coffee, err := c.Create("Coffee", 30.0, "")
	require.NoError(t, err)

	assert.Equal(t, uint(1), tea.ID)
	assert.Equal(t, uint(2), coffee.ID)

	items := c.List()
	require.Len(t, items, 2)
	assert.Equal(t, "Tea", items[0].Name)
	assert.Equal(t, "Coffee", items[1].Name)
}

func TestCatalog_Create_Validation(t *testing.T) {
	c := NewCatalog()

	_, err := c.Create("", 10.0, "")
	assert.ErrorIs(t, err, ErrInvalidItem)

	_, err = c.Create("Tea", -1.0, "")
	assert.ErrorIs(t, err, ErrInvalidItem)

	// invalid items must not consume ids
	tea, err := c.Create("Tea", 0, "")
	require.NoError(t, err)
	assert.Equal(t, uint(1), tea.ID)
}

func TestCatalog_Create_ConcurrentIDsUnique(t *testing.T) {
	c := NewCatalog()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := c.Create("Samosa", 15.0, "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	seen := make(map[uint]bool)
	for _, item := range c.List() {
		assert.False(t, seen[item.ID], "duplicate id %d", item.ID)
		seen[item.ID] = true
	}
	assert.Len(t, seen, n)
}

func TestCatalog_Update(t *testing.T) {
	c := NewCatalog()
	item, err := c.Create("Tea", 20.0, "old.png")
	require.NoError(t, err)

	// name/price always updated, image kept when none supplied
	updated, replaced, err := c.Update(item.ID, "Masala Tea", 25.0, "")
	require.NoError(t, err)
	assert.Equal(t, "Masala Tea", updated.Name)
	assert.Equal(t, 25.0, updated.Price)
	assert.Equal(t, "old.png", updated.ImageURL)
	assert.Empty(t, replaced)

	// new image replaces and reports the old one
	updated, replaced, err = c.Update(item.ID, "Masala Tea", 25.0, "new.png")
	require.NoError(t, err)
	assert.Equal(t, "new.png", updated.ImageURL)
	assert.Equal(t, "old.png", replaced)
}

func TestCatalog_Update_NotFound(t *testing.T) {
	c := NewCatalog()
	_, _, err := c.Update(42, "Tea", 20.0, "")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCatalog_List_ReturnsCopy(t *testing.T) {
	c := NewCatalog()
	_, err := c.Create("Tea", 20.0, "")
	require.NoError(t, err)

	items := c.List()
	items[0].Name = "mutated"

	assert.Equal(t, "Tea", c.List()[0].Name)
}
