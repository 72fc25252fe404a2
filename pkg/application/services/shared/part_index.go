// Package shared holds small data structures used by more than one
// application service.
package shared

import "github.com/devkrishnan/mrpnet/pkg/domain/entities"

// PartIndex groups a slice of records by part, the same "slice plus
// map[Part][]int position index" shape the teacher's in-memory BOM
// repository uses to avoid re-scanning on every lookup.
type PartIndex[T any] struct {
	records []T
	byPart  map[entities.Part][]int
	partOf  func(T) entities.Part
}

// NewPartIndex builds an index over records, keyed by partOf(record).
func NewPartIndex[T any](records []T, partOf func(T) entities.Part) *PartIndex[T] {
	idx := &PartIndex[T]{
		records: records,
		byPart:  make(map[entities.Part][]int, len(records)),
		partOf:  partOf,
	}
	for i, r := range records {
		p := partOf(r)
		idx.byPart[p] = append(idx.byPart[p], i)
	}
	return idx
}

// Get returns the records belonging to part, in insertion order.
func (idx *PartIndex[T]) Get(part entities.Part) []T {
	positions := idx.byPart[part]
	if len(positions) == 0 {
		return nil
	}
	out := make([]T, len(positions))
	for i, pos := range positions {
		out[i] = idx.records[pos]
	}
	return out
}

// Add appends a record and updates the index.
func (idx *PartIndex[T]) Add(r T) {
	idx.records = append(idx.records, r)
	p := idx.partOf(r)
	idx.byPart[p] = append(idx.byPart[p], len(idx.records)-1)
}

// All returns every indexed record.
func (idx *PartIndex[T]) All() []T {
	return idx.records
}

// Parts returns every distinct part present in the index.
func (idx *PartIndex[T]) Parts() []entities.Part {
	parts := make([]entities.Part, 0, len(idx.byPart))
	for p := range idx.byPart {
		parts = append(parts, p)
	}
	return parts
}

// Len returns the number of indexed records.
func (idx *PartIndex[T]) Len() int {
	return len(idx.records)
}
