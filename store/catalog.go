package store

import (
	"errors"
	"math"
	"sync"

	"github.com/dh139/cafef/models"
)

var (
	ErrInvalidItem  = errors.New("invalid menu item")
	ErrItemNotFound = errors.New("menu item not found")
)

// Catalog is the in-memory collection of menu items. It is the only shared
// mutable structure in the process; id assignment and appends happen under
// one lock so concurrent admin requests can never mint duplicate ids.
// State lives for the process lifetime only — a restart starts empty.
type Catalog struct {
	mu     sync.RWMutex
	items  []models.MenuItem
	nextID uint
}

// NewCatalog creates an empty catalog. Ids start at 1.
func NewCatalog() *Catalog {
	return &Catalog{nextID: 1}
}

// List returns all items in insertion order. The returned slice is a copy,
// safe for the caller to hold across later mutations.
func (c *Catalog) List() []models.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// Create validates and appends a new item, assigning the next id.
func (c *Catalog) Create(name string, price float64, imageURL string) (models.MenuItem, error) {
	if name == "" {
		return models.MenuItem{}, ErrInvalidItem
	}
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return models.MenuItem{}, ErrInvalidItem
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	item := models.MenuItem{
		ID:       c.nextID,
		Name:     name,
		Price:    price,
		ImageURL: imageURL,
	}
	c.nextID++
	c.items = append(c.items, item)
	return item, nil
}

// Update rewrites name and price of the item with the given id. The image is
// replaced only when imageURL is non-empty; the previous image name is
// returned so the caller can release the old file once the new one is in
// place. Returns ErrItemNotFound for unknown ids.
func (c *Catalog) Update(id uint, name string, price float64, imageURL string) (models.MenuItem, string, error) {
	if name == "" {
		return models.MenuItem{}, "", ErrInvalidItem
	}
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return models.MenuItem{}, "", ErrInvalidItem
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID != id {
			continue
		}
		c.items[i].Name = name
		c.items[i].Price = price

		var replaced string
		if imageURL != "" {
			replaced = c.items[i].ImageURL
			c.items[i].ImageURL = imageURL
		}
		return c.items[i], replaced, nil
	}
	return models.MenuItem{}, "", ErrItemNotFound
}
