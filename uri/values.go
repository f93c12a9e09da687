package uri

import (
	"iter"
	"maps"
	"slices"
)

// Values maps a parameter key to its value.
// Keys are case-sensitive and hold a single value each.
type Values map[string]string

// Get returns the value associated with the key and whether the key is present.
func (vals Values) Get(key string) (string, bool) {
	v, ok := vals[key]
	return v, ok
}

// Has checks whether a given key is present.
func (vals Values) Has(key string) bool {
	_, ok := vals[key]
	return ok
}

// Set sets the key to value, replacing any existing value.
// Set on a nil Values panics like any nil map assignment.
func (vals Values) Set(key, value string) Values {
	vals[key] = value
	return vals
}

// Del deletes the value associated with the key.
func (vals Values) Del(key string) Values {
	delete(vals, key)
	return vals
}

// Keys returns the keys in ascending order.
func (vals Values) Keys() []string {
	return slices.Sorted(maps.Keys(vals))
}

// All iterates over key/value pairs in ascending key order.
func (vals Values) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range vals.Keys() {
			if !yield(k, vals[k]) {
				return
			}
		}
	}
}

// Clone returns a copy of the map. Empty maps are cloned to nil.
func (vals Values) Clone() Values {
	if len(vals) == 0 {
		return nil
	}
	return maps.Clone(vals)
}

// Equal reports whether both maps hold the same key/value pairs.
// Nil and empty maps are equal.
func (vals Values) Equal(other Values) bool {
	return maps.Equal(vals, other)
}
