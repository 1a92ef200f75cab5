package content

import (
	"sort"

	"github.com/deremos/RealmBot_Go/internal/domain"
)

// Catalog holds all static game content keyed by id. It is loaded once at
// startup and read-only afterwards; engines receive it by reference.
type Catalog struct {
	Items     map[string]domain.Item
	Monsters  map[string]domain.Monster
	Locations map[string]domain.Location
	Quests    map[string]domain.Quest

	// StartLocation is the safe zone new profiles spawn in.
	StartLocation string

	itemNames     *NameIndex
	locationNames *NameIndex
}

// Item looks up an item definition by id.
func (c *Catalog) Item(id string) (domain.Item, bool) {
	it, ok := c.Items[id]
	return it, ok
}

// Monster looks up a monster definition by id.
func (c *Catalog) Monster(id string) (domain.Monster, bool) {
	m, ok := c.Monsters[id]
	return m, ok
}

// Location looks up a location definition by id.
func (c *Catalog) Location(id string) (domain.Location, bool) {
	l, ok := c.Locations[id]
	return l, ok
}

// Quest looks up a quest definition by id.
func (c *Catalog) Quest(id string) (domain.Quest, bool) {
	q, ok := c.Quests[id]
	return q, ok
}

// ItemList returns all items sorted by required level then id, for shop
// listings.
func (c *Catalog) ItemList() []domain.Item {
	items := make([]domain.Item, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].RequiredLevel != items[j].RequiredLevel {
			return items[i].RequiredLevel < items[j].RequiredLevel
		}
		return items[i].ID < items[j].ID
	})
	return items
}

// LocationList returns all locations sorted by minimum level then id.
func (c *Catalog) LocationList() []domain.Location {
	locs := make([]domain.Location, 0, len(c.Locations))
	for _, l := range c.Locations {
		locs = append(locs, l)
	}
	sort.Slice(locs, func(i, j int) bool {
		if locs[i].MinLevel != locs[j].MinLevel {
			return locs[i].MinLevel < locs[j].MinLevel
		}
		return locs[i].ID < locs[j].ID
	})
	return locs
}

// ResolveItem maps user-typed text to an item id, tolerating close typos.
func (c *Catalog) ResolveItem(input string) (string, bool) {
	return c.itemNames.Resolve(input)
}

// ResolveLocation maps user-typed text to a location id, tolerating close typos.
func (c *Catalog) ResolveLocation(input string) (string, bool) {
	return c.locationNames.Resolve(input)
}
