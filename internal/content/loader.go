package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/deremos/RealmBot_Go/internal/domain"
)

// Sentinel errors for the content loader
var (
	ErrDuplicateID      = errors.New("duplicate id")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrDanglingRef      = errors.New("reference to unknown id")
	ErrNoStartLocation  = errors.New("no safe-zone start location")
)

// Paths names the four catalog config files.
type Paths struct {
	Items     string
	Monsters  string
	Locations string
	Quests    string
}

// DefaultPaths returns the conventional configs layout under dir.
func DefaultPaths(dir string) Paths {
	return Paths{
		Items:     dir + "/items.json",
		Monsters:  dir + "/monsters.json",
		Locations: dir + "/locations.json",
		Quests:    dir + "/quests.json",
	}
}

type itemsConfig struct {
	Version string        `json:"version"`
	Items   []domain.Item `json:"items"`
}

type monstersConfig struct {
	Version  string           `json:"version"`
	Monsters []domain.Monster `json:"monsters"`
}

type locationsConfig struct {
	Version       string            `json:"version"`
	StartLocation string            `json:"start_location"`
	Locations     []domain.Location `json:"locations"`
}

type questsConfig struct {
	Version string         `json:"version"`
	Quests  []domain.Quest `json:"quests"`
}

// Load reads, validates and assembles all four catalogs. The returned Catalog
// is immutable by convention: nothing mutates it after this call.
func Load(paths Paths) (*Catalog, error) {
	var items itemsConfig
	if err := readConfig(paths.Items, &items); err != nil {
		return nil, err
	}
	var monsters monstersConfig
	if err := readConfig(paths.Monsters, &monsters); err != nil {
		return nil, err
	}
	var locations locationsConfig
	if err := readConfig(paths.Locations, &locations); err != nil {
		return nil, err
	}
	var quests questsConfig
	if err := readConfig(paths.Quests, &quests); err != nil {
		return nil, err
	}

	return NewCatalog(items.Items, monsters.Monsters, locations.Locations, quests.Quests, locations.StartLocation)
}

// NewCatalog assembles and validates a catalog from already-parsed content.
// Tests use it to build small fixture catalogs without config files.
func NewCatalog(items []domain.Item, monsters []domain.Monster, locations []domain.Location, quests []domain.Quest, startLocation string) (*Catalog, error) {
	cat := &Catalog{
		Items:         make(map[string]domain.Item, len(items)),
		Monsters:      make(map[string]domain.Monster, len(monsters)),
		Locations:     make(map[string]domain.Location, len(locations)),
		Quests:        make(map[string]domain.Quest, len(quests)),
		StartLocation: startLocation,
	}

	for _, it := range items {
		if err := validateItem(it); err != nil {
			return nil, err
		}
		if _, dup := cat.Items[it.ID]; dup {
			return nil, fmt.Errorf("%w: item %q", ErrDuplicateID, it.ID)
		}
		cat.Items[it.ID] = it
	}
	for _, m := range monsters {
		if err := validateMonster(m); err != nil {
			return nil, err
		}
		if _, dup := cat.Monsters[m.ID]; dup {
			return nil, fmt.Errorf("%w: monster %q", ErrDuplicateID, m.ID)
		}
		cat.Monsters[m.ID] = m
	}
	for _, l := range locations {
		if l.ID == "" || l.Name == "" {
			return nil, fmt.Errorf("%w: location missing id or name", ErrInvalidConfig)
		}
		if _, dup := cat.Locations[l.ID]; dup {
			return nil, fmt.Errorf("%w: location %q", ErrDuplicateID, l.ID)
		}
		cat.Locations[l.ID] = l
	}
	for _, q := range quests {
		if q.ID == "" || q.Name == "" {
			return nil, fmt.Errorf("%w: quest missing id or name", ErrInvalidConfig)
		}
		if _, dup := cat.Quests[q.ID]; dup {
			return nil, fmt.Errorf("%w: quest %q", ErrDuplicateID, q.ID)
		}
		cat.Quests[q.ID] = q
	}

	if err := cat.checkReferences(); err != nil {
		return nil, err
	}

	itemNames := make(map[string]string, len(cat.Items))
	for id, it := range cat.Items {
		itemNames[id] = it.Name
	}
	locationNames := make(map[string]string, len(cat.Locations))
	for id, l := range cat.Locations {
		locationNames[id] = l.Name
	}
	cat.itemNames = NewNameIndex(itemNames)
	cat.locationNames = NewNameIndex(locationNames)

	return cat, nil
}

func readConfig(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read content config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse content config %s: %w", path, err)
	}
	return nil
}

func validateItem(it domain.Item) error {
	if it.ID == "" || it.Name == "" {
		return fmt.Errorf("%w: item missing id or name", ErrInvalidConfig)
	}
	switch it.Type {
	case domain.ItemTypeWeapon, domain.ItemTypeArmor, domain.ItemTypeAccessory,
		domain.ItemTypeConsumable, domain.ItemTypeMaterial:
	default:
		return fmt.Errorf("%w: item %q has unknown type %q", ErrInvalidConfig, it.ID, it.Type)
	}
	if it.Value < 0 || it.RequiredLevel < 0 {
		return fmt.Errorf("%w: item %q has negative value or level", ErrInvalidConfig, it.ID)
	}
	return nil
}

func validateMonster(m domain.Monster) error {
	if m.ID == "" || m.Name == "" {
		return fmt.Errorf("%w: monster missing id or name", ErrInvalidConfig)
	}
	if m.Health <= 0 || m.Attack < 0 || m.Defense < 0 {
		return fmt.Errorf("%w: monster %q has invalid stats", ErrInvalidConfig, m.ID)
	}
	if m.DropChance < 0 || m.DropChance > 1 {
		return fmt.Errorf("%w: monster %q drop_chance outside [0,1]", ErrInvalidConfig, m.ID)
	}
	if m.GoldReward.Min > m.GoldReward.Max {
		return fmt.Errorf("%w: monster %q gold range inverted", ErrInvalidConfig, m.ID)
	}
	if m.MinLevel > m.MaxLevel {
		return fmt.Errorf("%w: monster %q level range inverted", ErrInvalidConfig, m.ID)
	}
	return nil
}

// checkReferences verifies cross-catalog id references and the start location.
func (c *Catalog) checkReferences() error {
	for _, m := range c.Monsters {
		for _, drop := range m.PossibleDrops {
			if _, ok := c.Items[drop]; !ok {
				return fmt.Errorf("%w: monster %q drops item %q", ErrDanglingRef, m.ID, drop)
			}
		}
	}
	for _, l := range c.Locations {
		for _, id := range append(append([]string(nil), l.CommonMonsters...), l.RareMonsters...) {
			if _, ok := c.Monsters[id]; !ok {
				return fmt.Errorf("%w: location %q lists monster %q", ErrDanglingRef, l.ID, id)
			}
		}
	}
	for _, q := range c.Quests {
		if q.Requirement.Type == domain.QuestRequirementKill && q.Requirement.MonsterID != "" {
			if _, ok := c.Monsters[q.Requirement.MonsterID]; !ok {
				return fmt.Errorf("%w: quest %q targets monster %q", ErrDanglingRef, q.ID, q.Requirement.MonsterID)
			}
		}
		for _, item := range q.Reward.Items {
			if _, ok := c.Items[item]; !ok {
				return fmt.Errorf("%w: quest %q rewards item %q", ErrDanglingRef, q.ID, item)
			}
		}
	}

	start, ok := c.Locations[c.StartLocation]
	if !ok || !start.SafeZone {
		return fmt.Errorf("%w: %q", ErrNoStartLocation, c.StartLocation)
	}
	return nil
}
