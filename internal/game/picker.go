// internal/game/picker.go
//
// Secret selection strategies.
//   - RandomPicker: uniform choice over the catalog (the normal game).
//   - FixedPicker:  a named entity (tests, forced answers).
//   - DailyPicker:  the same entity for everyone on a given UTC date.

package game

import (
	"fmt"
	"time"

	"github.com/robalobadob/pokedle/apps/go-server/internal/catalog"
	"github.com/robalobadob/pokedle/apps/go-server/internal/daily"
)

// Picker chooses the secret entity when a session starts.
type Picker interface {
	Pick(cat *catalog.Catalog) (catalog.EntityRecord, error)
}

// PickerFunc adapts a function to the Picker interface.
type PickerFunc func(cat *catalog.Catalog) (catalog.EntityRecord, error)

// Pick calls f.
func (f PickerFunc) Pick(cat *catalog.Catalog) (catalog.EntityRecord, error) { return f(cat) }

// RandomPicker picks uniformly at random.
func RandomPicker() Picker {
	return PickerFunc(func(cat *catalog.Catalog) (catalog.EntityRecord, error) {
		return cat.Random()
	})
}

// FixedPicker always picks the entity called name.
func FixedPicker(name string) Picker {
	return PickerFunc(func(cat *catalog.Catalog) (catalog.EntityRecord, error) {
		rec, ok := cat.Lookup(name)
		if !ok {
			return catalog.EntityRecord{}, fmt.Errorf("secret %q: %w", name, ErrNotFound)
		}
		return rec, nil
	})
}

// DailyPicker picks deterministically from the date reported by now and salt.
// A nil now uses time.Now.
func DailyPicker(salt string, now func() time.Time) Picker {
	if now == nil {
		now = time.Now
	}
	sched := daily.NewSchedule(salt)
	return PickerFunc(func(cat *catalog.Catalog) (catalog.EntityRecord, error) {
		return cat.At(sched.Index(now(), cat.Len())), nil
	})
}
