package queue

import "math/rand"

// Source assigns priorities to items. ok=false means the source has no
// opinion about item.
type Source[T comparable] interface {
	Lookup(item T) (priority float64, ok bool)
}

// Func adapts a total function into a Source.
type Func[T comparable] func(item T) float64

// Lookup always succeeds.
func (f Func[T]) Lookup(item T) (float64, bool) { return f(item), true }

// Table is a Source backed by a map; absent keys miss.
type Table[T comparable] map[T]float64

// Lookup returns the stored priority, if any.
func (t Table[T]) Lookup(item T) (float64, bool) {
	p, ok := t[item]
	return p, ok
}

// Memo is a Source that never misses: it consults an inner Source and
// falls back to a uniform random draw, optionally remembering the draw.
type Memo[T comparable] struct {
	inner Source[T]
	rnd   *rand.Rand
	cache map[T]float64 // nil when caching is off
}

// Fallback wraps src so that misses are filled with r.Float64(). A nil src
// misses on everything. With cache set, each key is resolved at most once
// for the life of the returned value.
func Fallback[T comparable](src Source[T], r *rand.Rand, cache bool) *Memo[T] {
	m := &Memo[T]{inner: src, rnd: r}
	if cache {
		m.cache = make(map[T]float64)
	}

	return m
}

// Lookup resolves item; ok is always true.
func (m *Memo[T]) Lookup(item T) (float64, bool) {
	if m.cache != nil {
		if p, hit := m.cache[item]; hit {
			return p, true
		}
	}

	p, ok := 0.0, false
	if m.inner != nil {
		p, ok = m.inner.Lookup(item)
	}
	if !ok {
		p = m.rnd.Float64()
	}
	if m.cache != nil {
		m.cache[item] = p
	}

	return p, true
}

// Cached returns the number of memoized keys.
func (m *Memo[T]) Cached() int { return len(m.cache) }
