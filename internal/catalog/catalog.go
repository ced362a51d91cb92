// internal/catalog/catalog.go
//
// Entity catalog for the game engine.
//
// Responsibilities:
//   - Hold the ordered, immutable list of candidate entities.
//   - Normalize names to a single canonical case (uppercase) and index them.
//   - Validate records on load (unique names, positive measures, stage >= 1).
//   - Supply lookups, a uniformly random pick, and prefix suggestions.
//
// Sources (see load.go):
//   - Embedded default from the assets package.
//   - CATALOG_FILE pointing at a .json or .yaml/.yml file.
//
// A Catalog is built once and never mutated, so it can be shared freely
// between sessions and goroutines.

package catalog

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"

	"github.com/samber/lo"
)

// ErrEmpty is returned when a catalog would contain no entities.
var ErrEmpty = errors.New("catalog: no entities")

// EntityRecord is one candidate entity.
// Type2 is optional; the empty string means the slot is absent.
type EntityRecord struct {
	Name           string  `json:"name" yaml:"name"`
	ID             int     `json:"id" yaml:"id"`
	Generation     int     `json:"generation" yaml:"generation"`
	Type1          string  `json:"type1" yaml:"type1"`
	Type2          string  `json:"type2,omitempty" yaml:"type2,omitempty"`
	Height         float64 `json:"height" yaml:"height"`
	Weight         float64 `json:"weight" yaml:"weight"`
	EvolutionStage int     `json:"evolutionStage" yaml:"evolutionStage"`
}

// HasType2 reports whether the optional second type is present.
func (e EntityRecord) HasType2() bool { return e.Type2 != "" }

// Catalog is an ordered, read-only collection of entities keyed by name.
type Catalog struct {
	records []EntityRecord
	byName  map[string]int // normalized name -> index into records
}

// Normalize maps a user-typed name to the canonical stored form.
func Normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// New validates records and builds a Catalog preserving their order.
// Names are normalized; a duplicate after normalization is an error.
func New(records []EntityRecord) (*Catalog, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	c := &Catalog{
		records: make([]EntityRecord, 0, len(records)),
		byName:  make(map[string]int, len(records)),
	}
	for i, r := range records {
		r.Name = Normalize(r.Name)
		r.Type1 = strings.TrimSpace(r.Type1)
		r.Type2 = strings.TrimSpace(r.Type2)
		if err := validate(r); err != nil {
			return nil, fmt.Errorf("catalog: record %d (%q): %w", i, r.Name, err)
		}
		if _, dup := c.byName[r.Name]; dup {
			return nil, fmt.Errorf("catalog: record %d: duplicate name %q", i, r.Name)
		}
		c.byName[r.Name] = len(c.records)
		c.records = append(c.records, r)
	}
	return c, nil
}

// validate enforces the record schema.
func validate(r EntityRecord) error {
	switch {
	case r.Name == "":
		return errors.New("name is required")
	case r.ID <= 0:
		return errors.New("id must be positive")
	case r.Type1 == "":
		return errors.New("type1 is required")
	case !positiveFinite(r.Height):
		return errors.New("height must be a positive finite number")
	case !positiveFinite(r.Weight):
		return errors.New("weight must be a positive finite number")
	case r.EvolutionStage < 1:
		return errors.New("evolutionStage must be >= 1")
	}
	return nil
}

// positiveFinite rejects NaN and ±Inf, which have no place in an ordering.
func positiveFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0
}

// Len returns the number of entities.
func (c *Catalog) Len() int { return len(c.records) }

// At returns the entity at position i in catalog order.
func (c *Catalog) At(i int) EntityRecord { return c.records[i] }

// Lookup finds an entity by case-insensitive name.
func (c *Catalog) Lookup(name string) (EntityRecord, bool) {
	i, ok := c.byName[Normalize(name)]
	if !ok {
		return EntityRecord{}, false
	}
	return c.records[i], true
}

// Contains reports whether name resolves to a catalog entry.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.byName[Normalize(name)]
	return ok
}

// Records returns a copy of all entities in catalog order.
func (c *Catalog) Records() []EntityRecord {
	return append([]EntityRecord(nil), c.records...)
}

// Names returns all canonical names in catalog order.
func (c *Catalog) Names() []string {
	return lo.Map(c.records, func(r EntityRecord, _ int) string { return r.Name })
}

// randReader is the entropy source for Random.
var randReader io.Reader = rand.Reader

// Random returns a uniformly chosen entity using crypto/rand.
func (c *Catalog) Random() (EntityRecord, error) {
	nBig, err := rand.Int(randReader, big.NewInt(int64(len(c.records))))
	if err != nil {
		return EntityRecord{}, fmt.Errorf("catalog: random pick: %w", err)
	}
	return c.records[nBig.Int64()], nil
}

// Suggest returns entities whose name starts with prefix (case-insensitive),
// skipping any name for which exclude returns true. An empty prefix matches
// everything. limit <= 0 means no limit. Results keep catalog order.
func (c *Catalog) Suggest(prefix string, exclude func(name string) bool, limit int) []EntityRecord {
	p := Normalize(prefix)
	out := lo.Filter(c.records, func(r EntityRecord, _ int) bool {
		if exclude != nil && exclude(r.Name) {
			return false
		}
		return strings.HasPrefix(r.Name, p)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
