// Package syncutil provides map implementations sharing one interface
// with different concurrency guarantees.
package syncutil

import (
	"iter"
	"maps"
)

// Map is a key-value storage.
// Implementations differ only in whether they may be used from multiple goroutines.
type Map[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, val V)
	Del(key K) (V, bool)
	Has(key K) bool
	Len() int
	Clear()
	// All returns an iterator over a snapshot of the map entries.
	All() iter.Seq2[K, V]
}

var (
	_ Map[string, any] = PlainMap[string, any](nil)
	_ Map[string, any] = (*RWMap[string, any])(nil)
	_ Map[string, any] = (*ShardMap[string, any])(nil)
)

// PlainMap is a [Map] backed by a built-in map without any synchronization.
// It must not be used concurrently without external locking.
type PlainMap[K comparable, V any] map[K]V

func (m PlainMap[K, V]) Get(key K) (V, bool) {
	v, ok := m[key]
	return v, ok
}

func (m PlainMap[K, V]) Set(key K, val V) { m[key] = val }

func (m PlainMap[K, V]) Del(key K) (V, bool) {
	v, ok := m[key]
	if ok {
		delete(m, key)
	}
	return v, ok
}

func (m PlainMap[K, V]) Has(key K) bool {
	_, ok := m[key]
	return ok
}

func (m PlainMap[K, V]) Len() int { return len(m) }

func (m PlainMap[K, V]) Clear() { clear(m) }

func (m PlainMap[K, V]) All() iter.Seq2[K, V] { return maps.All(maps.Clone(m)) }
