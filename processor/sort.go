package processor

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"chris-cli/models"

	"github.com/pkg/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// fieldFunc extracts the sortable value of an item; nil means the item
// has no value for the field.
type fieldFunc[T any] func(T) interface{}

// SortBy returns a new slice ordered by the values the accessor yields.
// A nil accessor is a stable no-op copy. Items with a nil field value
// sort after every defined value, and reverse does not move them:
// reverse flips only comparisons between two defined values.
func SortBy[T any](items []T, value fieldFunc[T], reverse bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	if value == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		return less(value(out[i]), value(out[j]), reverse)
	})
	return out
}

// SortItems orders listing items by a named field. Unknown field names
// are an error; an empty field is a no-op copy.
func SortItems(items []models.ListItem, field string, reverse bool) ([]models.ListItem, error) {
	if field == "" {
		return SortBy(items, nil, reverse), nil
	}
	value, err := listField(field)
	if err != nil {
		return nil, err
	}
	return SortBy(items, value, reverse), nil
}

func listField(name string) (fieldFunc[models.ListItem], error) {
	switch name {
	case "name":
		return func(it models.ListItem) interface{} { return it.Name }, nil
	case "type":
		return func(it models.ListItem) interface{} { return string(it.Type) }, nil
	case "size":
		return func(it models.ListItem) interface{} { return it.Size }, nil
	case "owner":
		return func(it models.ListItem) interface{} { return it.Owner }, nil
	case "date":
		return func(it models.ListItem) interface{} {
			if it.Date.IsZero() {
				return nil
			}
			return it.Date
		}, nil
	case "target":
		return func(it models.ListItem) interface{} {
			if it.Target == "" {
				return nil
			}
			return it.Target
		}, nil
	}
	return nil, errors.Errorf("unknown sort field %q", name)
}

func less(a, b interface{}, reverse bool) bool {
	if a == nil || b == nil {
		// Nils last in both directions.
		return b == nil && a != nil
	}
	c := compareValues(a, b)
	if reverse {
		c = -c
	}
	return c < 0
}

// compareValues orders two defined values by their runtime kind:
// numbers numerically, strings by collation, timestamps by instant, and
// anything else by its collated string form.
func compareValues(a, b interface{}) int {
	switch av := a.(type) {
	case int64:
		if bv, ok := b.(int64); ok {
			return compareInt64(av, bv)
		}
	case int:
		if bv, ok := b.(int); ok {
			return compareInt64(int64(av), int64(bv))
		}
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			switch {
			case av.Before(bv):
				return -1
			case av.After(bv):
				return 1
			}
			return 0
		}
	case string:
		if bv, ok := b.(string); ok {
			return collateStrings(av, bv)
		}
	}
	return collateStrings(fmt.Sprint(a), fmt.Sprint(b))
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

var (
	// Collators carry internal buffers and are not safe for
	// concurrent use, so the shared one is locked.
	collatorMu sync.Mutex
	collator   = collate.New(language.Und)
)

func collateStrings(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}
