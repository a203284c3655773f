package core

import "encoding/json"

// Bucket is a single key of a Tally with its count.
type Bucket[K comparable] struct {
	Key   K   `json:"index"`
	Count int `json:"count"`
}

// Tally is a frequency table that remembers the order keys were first seen.
// The zero value is not usable; create one with NewTally.
type Tally[K comparable] struct {
	keys   []K
	counts map[K]int
}

// NewTally creates an empty Tally.
func NewTally[K comparable]() *Tally[K] {
	return &Tally[K]{counts: make(map[K]int)}
}

// Add increments the count for k, inserting it at the end if unseen.
func (t *Tally[K]) Add(k K) {
	if _, ok := t.counts[k]; !ok {
		t.keys = append(t.keys, k)
	}
	t.counts[k]++
}

// Count returns the count for k, or 0.
func (t *Tally[K]) Count(k K) int {
	return t.counts[k]
}

// Len returns the number of distinct keys.
func (t *Tally[K]) Len() int {
	return len(t.keys)
}

// Total returns the sum of all counts.
func (t *Tally[K]) Total() int {
	n := 0
	for _, c := range t.counts {
		n += c
	}
	return n
}

// Keys returns the keys in first-seen order.
func (t *Tally[K]) Keys() []K {
	out := make([]K, len(t.keys))
	copy(out, t.keys)
	return out
}

// Buckets returns key/count pairs in first-seen order.
func (t *Tally[K]) Buckets() []Bucket[K] {
	out := make([]Bucket[K], 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, Bucket[K]{Key: k, Count: t.counts[k]})
	}
	return out
}

// MarshalJSON encodes the tally as an ordered array of {"index", "count"} rows.
func (t *Tally[K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Buckets())
}
