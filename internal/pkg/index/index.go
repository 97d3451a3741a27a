// Package index provides the secondary index structures shared by the
// in-memory stores.
//
// SetIndex maps a secondary key to a set of primary keys and removes a key
// as soon as its set becomes empty. NameTokenIndex layers whitespace
// tokenization on top of a case-insensitive SetIndex.
//
// Neither type is safe for concurrent use. Each store guards its primary
// table and all of its indexes with one lock so they change together.
package index

import (
	"maps"
	"slices"
	"strings"
)

// SetIndex is a set-valued secondary index: key -> set of members.
type SetIndex struct {
	fold    func(string) string
	buckets map[string]map[string]struct{}
}

// NewSetIndex creates an index with exact-match keys.
func NewSetIndex() *SetIndex {
	return &SetIndex{buckets: make(map[string]map[string]struct{})}
}

// NewFoldedSetIndex creates an index whose keys match case-insensitively.
func NewFoldedSetIndex() *SetIndex {
	x := NewSetIndex()
	x.fold = strings.ToLower
	return x
}

func (x *SetIndex) normalize(key string) string {
	if x.fold == nil {
		return key
	}
	return x.fold(key)
}

// Add puts member into the bucket for key, creating the bucket if needed.
func (x *SetIndex) Add(key, member string) {
	key = x.normalize(key)
	bucket, ok := x.buckets[key]
	if !ok {
		bucket = make(map[string]struct{})
		x.buckets[key] = bucket
	}
	bucket[member] = struct{}{}
}

// Remove takes member out of the bucket for key and drops the bucket once
// it is empty. Missing keys and members are ignored.
func (x *SetIndex) Remove(key, member string) {
	key = x.normalize(key)
	bucket, ok := x.buckets[key]
	if !ok {
		return
	}
	delete(bucket, member)
	if len(bucket) == 0 {
		delete(x.buckets, key)
	}
}

// Members returns the members of the bucket for key in ascending order.
// The result is a copy and is empty, not nil, when the bucket is absent.
func (x *SetIndex) Members(key string) []string {
	bucket := x.buckets[x.normalize(key)]
	members := make([]string, 0, len(bucket))
	for m := range bucket {
		members = append(members, m)
	}
	slices.Sort(members)
	return members
}

// Contains reports whether member is in the bucket for key.
func (x *SetIndex) Contains(key, member string) bool {
	_, ok := x.buckets[x.normalize(key)][member]
	return ok
}

// HasKey reports whether a bucket exists for key.
func (x *SetIndex) HasKey(key string) bool {
	_, ok := x.buckets[x.normalize(key)]
	return ok
}

// Keys returns every bucket key in ascending order.
func (x *SetIndex) Keys() []string {
	return slices.Sorted(maps.Keys(x.buckets))
}

// Len returns the number of buckets.
func (x *SetIndex) Len() int {
	return len(x.buckets)
}
