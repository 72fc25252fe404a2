// Package effectivity resolves which BOM edges are active on a given date.
package effectivity

import (
	"fmt"
	"time"

	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
)

// Resolver filters BOM edges by date effectivity and checks for overlapping
// effectivity windows between the same parent/child pair.
type Resolver struct{}

// NewResolver creates a new date-effectivity resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ActiveEdges returns the subset of edges active on today, per §3:
// effectiveFrom ≤ today < effectiveTo.
func (r *Resolver) ActiveEdges(today time.Time, edges []entities.BOMEdge) []entities.BOMEdge {
	active := make([]entities.BOMEdge, 0, len(edges))
	for _, e := range edges {
		if e.IsActive(today) {
			active = append(active, e)
		}
	}
	return active
}

// ActiveChildren returns the active child edges of part on today.
func (r *Resolver) ActiveChildren(today time.Time, part entities.Part, edges []entities.BOMEdge) []entities.BOMEdge {
	children := make([]entities.BOMEdge, 0)
	for _, e := range edges {
		if e.ParentPart == part && e.IsActive(today) {
			children = append(children, e)
		}
	}
	return children
}

// ValidateNoOverlap checks that no two edges for the same parent/child pair
// have overlapping effectivity windows, which would make "the" quantityPer
// for that pair ambiguous on some date.
func (r *Resolver) ValidateNoOverlap(edges []entities.BOMEdge) error {
	byPair := make(map[string][]entities.BOMEdge)
	for _, e := range edges {
		key := fmt.Sprintf("%s->%s", e.ParentPart, e.ChildPart)
		byPair[key] = append(byPair[key], e)
	}

	for key, group := range byPair {
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if windowsOverlap(group[i], group[j]) {
					return fmt.Errorf("effectivity overlap for %s: [%v-%v] and [%v-%v]",
						key, group[i].EffectiveFrom, group[i].EffectiveTo,
						group[j].EffectiveFrom, group[j].EffectiveTo)
				}
			}
		}
	}
	return nil
}

// windowsOverlap reports whether two edges' [EffectiveFrom, EffectiveTo)
// windows intersect. A zero EffectiveTo is treated as unbounded.
func windowsOverlap(a, b entities.BOMEdge) bool {
	aEnd := a.EffectiveTo
	bEnd := b.EffectiveTo
	unbounded := time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)
	if aEnd.IsZero() {
		aEnd = unbounded
	}
	if bEnd.IsZero() {
		bEnd = unbounded
	}
	return a.EffectiveFrom.Before(bEnd) && b.EffectiveFrom.Before(aEnd)
}
